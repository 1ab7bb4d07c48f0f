package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	t.Run("USDAlwaysTwoDecimals", func(t *testing.T) {
		assert.Equal(t, "$10.00", FormatPrice(10, "USD"))
		assert.Equal(t, "$10.50", FormatPrice(10.5, "USD"))
		assert.Equal(t, "$0.99", FormatPrice(0.99, "USD"))
	})

	t.Run("EURAlwaysTwoDecimals", func(t *testing.T) {
		assert.Equal(t, "€9.20", FormatPrice(9.2, "EUR"))
	})

	t.Run("RUBNeverShowsDecimals", func(t *testing.T) {
		assert.Equal(t, "₽950", FormatPrice(950, "RUB"))
		assert.Equal(t, "₽951", FormatPrice(950.7, "RUB"))
		assert.NotContains(t, FormatPrice(1234.56, "RUB"), ".")
	})

	t.Run("RUBThousandsGrouping", func(t *testing.T) {
		assert.Equal(t, "₽23 750", FormatPrice(23750, "RUB"))
		assert.Equal(t, "₽1 000 000", FormatPrice(1000000, "RUB"))
	})

	t.Run("UnknownCurrencyCodePrefix", func(t *testing.T) {
		assert.Equal(t, "GBP 5.00", FormatPrice(5, "GBP"))
	})
}

func TestConvert(t *testing.T) {
	rates := Rates{RUBPerUSD: 95, EURPerUSD: 0.92}

	assert.Equal(t, 950.0, rates.Convert(10, "RUB"))
	assert.InDelta(t, 9.2, rates.Convert(10, "EUR"), 1e-9)
	// Неизвестная валюта отображается в USD
	assert.Equal(t, 10.0, rates.Convert(10, "XXX"))

	assert.Equal(t, "₽950", rates.FormatConverted(10, "RUB"))
	assert.Equal(t, "$10.00", rates.FormatConverted(10, "USD"))
}
