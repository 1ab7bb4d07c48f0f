package referral

import "math"

// CareerLevel – уровень карьерной программы. Таблица уровней строится из
// конфигурации программы, порядок по ID.
type CareerLevel struct {
	ID             int     `json:"id"`
	Label          string  `json:"label"`
	MinTurnoverUSD float64 `json:"min_turnover_usd"`
	MaxTurnoverUSD float64 `json:"max_turnover_usd"` // 0 – без верхней границы
	Color          string  `json:"color"`
}

// ProgramConfig – глобальные настройки реферальной программы. Источник истины –
// бэкенд (/api/webapp/referral/settings); клиент их только читает.
type ProgramConfig struct {
	Level2ThresholdUSD float64 `json:"level2_threshold_usd"`
	Level3ThresholdUSD float64 `json:"level3_threshold_usd"`
	// Проценты комиссии по линиям: индекс 0 – линия 1 (прямые приглашения).
	CommissionPct [3]float64 `json:"commission_pct"`
}

// FallbackConfig используется только когда настройки не удалось получить с
// бэкенда. Ответы, построенные на нём, помечаются как fallback.
var FallbackConfig = ProgramConfig{
	Level2ThresholdUSD: 250,
	Level3ThresholdUSD: 1000,
	CommissionPct:      [3]float64{20, 10, 5},
}

// CareerProgress – производное состояние пользователя в программе. Не хранится,
// вычисляется заново на каждый запрос профиля.
type CareerProgress struct {
	CurrentTurnoverUSD float64      `json:"current_turnover_usd"`
	CurrentLevel       CareerLevel  `json:"current_level"`
	NextLevel          *CareerLevel `json:"next_level,omitempty"`
	ProgressPercent    float64      `json:"progress_percent"`
}

var levelLabels = [3]string{"Starter", "Partner", "Elite"}
var levelColors = [3]string{"#8E8E93", "#AF52DE", "#FFD60A"}

// Normalize подставляет fallback-значения вместо отсутствующих или
// бессмысленных полей конфигурации.
func (c ProgramConfig) Normalize() ProgramConfig {
	out := c
	if !(out.Level2ThresholdUSD > 0) || math.IsInf(out.Level2ThresholdUSD, 0) {
		out.Level2ThresholdUSD = FallbackConfig.Level2ThresholdUSD
	}
	if !(out.Level3ThresholdUSD > out.Level2ThresholdUSD) || math.IsInf(out.Level3ThresholdUSD, 0) {
		out.Level3ThresholdUSD = FallbackConfig.Level3ThresholdUSD
		if out.Level3ThresholdUSD <= out.Level2ThresholdUSD {
			out.Level3ThresholdUSD = out.Level2ThresholdUSD * 4
		}
	}
	// Все нули – проводное представление отсутствующего поля; одиночный ноль
	// по конкретной линии оставляем как осознанную настройку.
	if out.CommissionPct == ([3]float64{}) {
		out.CommissionPct = FallbackConfig.CommissionPct
	}
	for i, pct := range out.CommissionPct {
		if pct < 0 || math.IsNaN(pct) || math.IsInf(pct, 0) {
			out.CommissionPct[i] = FallbackConfig.CommissionPct[i]
		}
	}
	return out
}

// Levels возвращает таблицу из трёх уровней по конфигурации.
func (c ProgramConfig) Levels() [3]CareerLevel {
	cfg := c.Normalize()
	return [3]CareerLevel{
		{ID: 1, Label: levelLabels[0], MinTurnoverUSD: 0, MaxTurnoverUSD: cfg.Level2ThresholdUSD, Color: levelColors[0]},
		{ID: 2, Label: levelLabels[1], MinTurnoverUSD: cfg.Level2ThresholdUSD, MaxTurnoverUSD: cfg.Level3ThresholdUSD, Color: levelColors[1]},
		{ID: 3, Label: levelLabels[2], MinTurnoverUSD: cfg.Level3ThresholdUSD, MaxTurnoverUSD: 0, Color: levelColors[2]},
	}
}

// DeriveProgress вычисляет текущий уровень, следующий уровень и процент
// прогресса к нему. Пороги включительные, сравнение всегда в USD.
// Прогресс считается относительно следующего порога (не нормируется по
// диапазону уровня) и обрезается в [0,100].
func DeriveProgress(turnoverUSD float64, cfg ProgramConfig) CareerProgress {
	if turnoverUSD < 0 || math.IsNaN(turnoverUSD) || math.IsInf(turnoverUSD, 0) {
		turnoverUSD = 0
	}
	norm := cfg.Normalize()
	levels := norm.Levels()

	// Уровни проверяются сверху вниз, порог включительный
	switch {
	case turnoverUSD >= norm.Level3ThresholdUSD:
		return CareerProgress{
			CurrentTurnoverUSD: turnoverUSD,
			CurrentLevel:       levels[2],
			NextLevel:          nil,
			ProgressPercent:    100,
		}
	case turnoverUSD >= norm.Level2ThresholdUSD:
		next := levels[2]
		return CareerProgress{
			CurrentTurnoverUSD: turnoverUSD,
			CurrentLevel:       levels[1],
			NextLevel:          &next,
			ProgressPercent:    clampPercent(turnoverUSD / norm.Level3ThresholdUSD * 100),
		}
	default:
		next := levels[1]
		return CareerProgress{
			CurrentTurnoverUSD: turnoverUSD,
			CurrentLevel:       levels[0],
			NextLevel:          &next,
			ProgressPercent:    clampPercent(turnoverUSD / norm.Level2ThresholdUSD * 100),
		}
	}
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
