package currency

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rates – курсы валют отображения к USD. Суммы всегда хранятся и сравниваются
// в USD, конвертация применяется только при выводе.
type Rates struct {
	RUBPerUSD float64
	EURPerUSD float64
}

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"RUB": "₽",
}

// Валюты без дробной части при отображении.
var zeroDecimal = map[string]bool{
	"RUB": true,
}

// Convert переводит сумму в USD в валюту отображения.
func (r Rates) Convert(amountUSD float64, target string) float64 {
	switch target {
	case "RUB":
		return amountUSD * r.RUBPerUSD
	case "EUR":
		return amountUSD * r.EURPerUSD
	default:
		return amountUSD
	}
}

// FormatPrice форматирует уже сконвертированную сумму: целые валюты – без
// дробной части и с разделителем тысяч, остальные – ровно два знака.
func FormatPrice(amount float64, currency string) string {
	symbol, ok := symbols[currency]
	if !ok {
		symbol = currency + " "
	}
	if zeroDecimal[currency] {
		return symbol + groupThousands(int64(math.Round(amount)))
	}
	return symbol + fmt.Sprintf("%.2f", amount)
}

// FormatUSD – цена в USD без конвертации.
func FormatUSD(amountUSD float64) string {
	return FormatPrice(amountUSD, "USD")
}

// FormatConverted – конвертация и форматирование одним вызовом.
func (r Rates) FormatConverted(amountUSD float64, target string) string {
	return FormatPrice(r.Convert(amountUSD, target), target)
}

func groupThousands(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatInt(v, 10)
	if len(s) > 3 {
		var b strings.Builder
		pre := len(s) % 3
		if pre > 0 {
			b.WriteString(s[:pre])
		}
		for i := pre; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteString(" ")
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	if neg {
		return "-" + s
	}
	return s
}
