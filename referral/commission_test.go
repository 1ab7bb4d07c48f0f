package referral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommissionForLine(t *testing.T) {
	t.Run("Level1EarnsOnlyLine1", func(t *testing.T) {
		assert.Equal(t, 20.0, CommissionForLine(100, Line1, 1, testConfig))
		assert.Equal(t, 0.0, CommissionForLine(100, Line2, 1, testConfig))
		assert.Equal(t, 0.0, CommissionForLine(100, Line3, 1, testConfig))
	})

	t.Run("Level3EarnsAllLines", func(t *testing.T) {
		assert.Equal(t, 20.0, CommissionForLine(100, Line1, 3, testConfig))
		assert.Equal(t, 10.0, CommissionForLine(100, Line2, 3, testConfig))
		assert.Equal(t, 5.0, CommissionForLine(100, Line3, 3, testConfig))
	})

	t.Run("Level2CappedAtLine2", func(t *testing.T) {
		assert.Equal(t, 10.0, CommissionForLine(100, Line2, 2, testConfig))
		assert.Equal(t, 0.0, CommissionForLine(100, Line3, 2, testConfig))
	})

	t.Run("DegenerateInputs", func(t *testing.T) {
		assert.Equal(t, 0.0, CommissionForLine(0, Line1, 3, testConfig))
		assert.Equal(t, 0.0, CommissionForLine(-50, Line1, 3, testConfig))
		assert.Equal(t, 0.0, CommissionForLine(100, Line(0), 3, testConfig))
		assert.Equal(t, 0.0, CommissionForLine(100, Line(4), 3, testConfig))
	})
}

func TestCommissionBreakdown(t *testing.T) {
	rows := CommissionBreakdown(200, 2, testConfig)

	assert.Equal(t, Line1, rows[0].Line)
	assert.True(t, rows[0].Unlocked)
	assert.Equal(t, 40.0, rows[0].Amount)

	assert.True(t, rows[1].Unlocked)
	assert.Equal(t, 20.0, rows[1].Amount)

	// Линия 3 показывается, но для уровня 2 не разблокирована
	assert.False(t, rows[2].Unlocked)
	assert.Equal(t, 0.0, rows[2].Amount)
	assert.Equal(t, 5.0, rows[2].Pct)
}
