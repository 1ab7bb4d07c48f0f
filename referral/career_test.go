package referral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = ProgramConfig{
	Level2ThresholdUSD: 250,
	Level3ThresholdUSD: 1000,
	CommissionPct:      [3]float64{20, 10, 5},
}

func TestDeriveProgress(t *testing.T) {
	t.Run("NewUser", func(t *testing.T) {
		p := DeriveProgress(0, testConfig)
		assert.Equal(t, 1, p.CurrentLevel.ID)
		require.NotNil(t, p.NextLevel)
		assert.Equal(t, 2, p.NextLevel.ID)
		assert.Equal(t, "Partner", p.NextLevel.Label)
		assert.Equal(t, 0.0, p.ProgressPercent)
	})

	t.Run("BelowLevel2Threshold", func(t *testing.T) {
		p := DeriveProgress(100, testConfig)
		assert.Equal(t, 1, p.CurrentLevel.ID)
		require.NotNil(t, p.NextLevel)
		assert.Equal(t, 2, p.NextLevel.ID)
		assert.InDelta(t, 40.0, p.ProgressPercent, 1e-9)
	})

	t.Run("ThresholdInclusive", func(t *testing.T) {
		// Ровно на пороге – уровень повышен
		p := DeriveProgress(250, testConfig)
		assert.Equal(t, 2, p.CurrentLevel.ID)

		p = DeriveProgress(1000, testConfig)
		assert.Equal(t, 3, p.CurrentLevel.ID)
		assert.Nil(t, p.NextLevel)
	})

	t.Run("MidTier", func(t *testing.T) {
		// Прогресс относительно следующего порога, не диапазона уровня
		p := DeriveProgress(500, testConfig)
		assert.Equal(t, 2, p.CurrentLevel.ID)
		require.NotNil(t, p.NextLevel)
		assert.Equal(t, 3, p.NextLevel.ID)
		assert.InDelta(t, 50.0, p.ProgressPercent, 1e-9)
	})

	t.Run("MaxLevel", func(t *testing.T) {
		p := DeriveProgress(250000, testConfig)
		assert.Equal(t, 3, p.CurrentLevel.ID)
		assert.Nil(t, p.NextLevel)
		assert.Equal(t, 100.0, p.ProgressPercent)
		assert.Equal(t, 0.0, p.CurrentLevel.MaxTurnoverUSD)
	})

	t.Run("BadTurnoverTreatedAsZero", func(t *testing.T) {
		for _, turnover := range []float64{-5, math.NaN(), math.Inf(1), math.Inf(-1)} {
			p := DeriveProgress(turnover, testConfig)
			assert.Equal(t, 1, p.CurrentLevel.ID)
			assert.Equal(t, 0.0, p.ProgressPercent)
			assert.Equal(t, 0.0, p.CurrentTurnoverUSD)
		}
	})

	t.Run("MissingConfigFallsBack", func(t *testing.T) {
		p := DeriveProgress(0, ProgramConfig{})
		require.NotNil(t, p.NextLevel)
		assert.Equal(t, FallbackConfig.Level2ThresholdUSD, p.NextLevel.MinTurnoverUSD)

		// Отсутствующие проценты тоже заменяются дефолтами, а не нулями
		assert.Equal(t, FallbackConfig.CommissionPct, ProgramConfig{}.Normalize().CommissionPct)
		assert.Equal(t, 20.0, CommissionForLine(100, Line1, 1, ProgramConfig{}))
	})

	t.Run("DeliberateZeroLinePreserved", func(t *testing.T) {
		custom := ProgramConfig{
			Level2ThresholdUSD: 250,
			Level3ThresholdUSD: 1000,
			CommissionPct:      [3]float64{15, 0, 5},
		}
		assert.Equal(t, [3]float64{15, 0, 5}, custom.Normalize().CommissionPct)
		assert.Equal(t, 0.0, CommissionForLine(100, Line2, 3, custom))
	})

	t.Run("Idempotent", func(t *testing.T) {
		a := DeriveProgress(777, testConfig)
		b := DeriveProgress(777, testConfig)
		assert.Equal(t, a, b)
	})
}

func TestProgressClamp(t *testing.T) {
	// Пользователь уровня 2 у самого порога третьего уровня
	p := DeriveProgress(999.99, testConfig)
	assert.Equal(t, 2, p.CurrentLevel.ID)
	assert.LessOrEqual(t, p.ProgressPercent, 100.0)
	assert.Greater(t, p.ProgressPercent, 99.0)
}

func TestLevelsTable(t *testing.T) {
	levels := testConfig.Levels()
	require.Len(t, levels[:], 3)
	// Нижняя граница N+1 равна порогу разблокировки N+1
	assert.Equal(t, levels[0].MaxTurnoverUSD, levels[1].MinTurnoverUSD)
	assert.Equal(t, levels[1].MaxTurnoverUSD, levels[2].MinTurnoverUSD)
	assert.Equal(t, 250.0, levels[1].MinTurnoverUSD)
	assert.Equal(t, 1000.0, levels[2].MinTurnoverUSD)
}
