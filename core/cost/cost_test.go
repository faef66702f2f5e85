package cost

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyCostReferenceValue(t *testing.T) {
	got := MonthlyCost(1.0, 4, decimal.NewFromInt(7))
	assert.True(t, got.Equal(decimal.NewFromInt(840)), "got %s", got)
}

func TestDefaultHoursPerDay(t *testing.T) {
	e := NewEstimator(0)
	assert.Equal(t, 4.0, e.HoursPerDay())

	got := e.MonthlyCost(2.5, decimal.NewFromFloat(10))
	// 2.5 * 4 * 30 * 10
	assert.True(t, got.Equal(decimal.NewFromInt(3000)), "got %s", got)
}

func TestProjectionSteps(t *testing.T) {
	p := NewEstimator(6).Project(6.0, decimal.NewFromFloat(7.5))

	assert.True(t, p.DailyKwh.Equal(decimal.NewFromInt(36)))
	assert.True(t, p.MonthlyKwh.Equal(decimal.NewFromInt(1080)))
	assert.True(t, p.Cost.Equal(decimal.NewFromInt(8100)))
	assert.Equal(t, "6 kW * 6 h/day * 30 days * 7.5/kWh", p.Formula)
}

func TestZeroLoadCostsNothing(t *testing.T) {
	assert.True(t, NewEstimator(4).MonthlyCost(0, decimal.NewFromInt(50)).IsZero())
}

func TestCostIsLinearInLoad(t *testing.T) {
	e := NewEstimator(4)
	rate := decimal.NewFromFloat(7)
	one := e.MonthlyCost(1.25, rate)
	two := e.MonthlyCost(2.5, rate)
	assert.True(t, two.Equal(one.Mul(decimal.NewFromInt(2))))
}
