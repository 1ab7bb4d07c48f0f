package referral

// Line – глубина реферальной сети: 1 – прямые приглашения,
// 2 – приглашённые приглашёнными, 3 – третье колено.
type Line int

const (
	Line1 Line = 1
	Line2 Line = 2
	Line3 Line = 3
)

// LineCommission – иллюстративная выплата по одной линии для экрана-объяснялки.
type LineCommission struct {
	Line     Line    `json:"line"`
	Pct      float64 `json:"pct"`
	Amount   float64 `json:"amount"`
	Unlocked bool    `json:"unlocked"`
}

// CommissionForLine считает комиссию реферера с покупки amount на глубине line.
// Глубина выплат ограничена собственным уровнем реферера: уровень 1 не получает
// ничего с линий 2 и 3.
func CommissionForLine(amount float64, line Line, ownLevel int, cfg ProgramConfig) float64 {
	if amount <= 0 || line < Line1 || line > Line3 {
		return 0
	}
	if ownLevel < int(line) {
		return 0
	}
	norm := cfg.Normalize()
	return amount * norm.CommissionPct[line-1] / 100
}

// CommissionBreakdown возвращает все три линии для покупки amount с точки
// зрения реферера уровня ownLevel.
func CommissionBreakdown(amount float64, ownLevel int, cfg ProgramConfig) [3]LineCommission {
	norm := cfg.Normalize()
	var out [3]LineCommission
	for i := 0; i < 3; i++ {
		line := Line(i + 1)
		out[i] = LineCommission{
			Line:     line,
			Pct:      norm.CommissionPct[i],
			Amount:   CommissionForLine(amount, line, ownLevel, cfg),
			Unlocked: ownLevel >= int(line),
		}
	}
	return out
}
