// Package cost projects monthly energy cost from connected load.
package cost

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DaysPerMonth is the fixed billing month length
const DaysPerMonth = 30

// DefaultHoursPerDay is the usage assumption when none is given
const DefaultHoursPerDay = 4.0

// Projection is a monthly cost projection with its derivation
type Projection struct {
	// LoadKw is the connected load the projection is based on
	LoadKw decimal.Decimal `json:"load_kw"`

	// HoursPerDay is the daily usage assumption
	HoursPerDay decimal.Decimal `json:"hours_per_day"`

	// DailyKwh is LoadKw * HoursPerDay
	DailyKwh decimal.Decimal `json:"daily_kwh"`

	// MonthlyKwh is DailyKwh * DaysPerMonth
	MonthlyKwh decimal.Decimal `json:"monthly_kwh"`

	// UnitCost is the price per kWh
	UnitCost decimal.Decimal `json:"unit_cost"`

	// Cost is MonthlyKwh * UnitCost
	Cost decimal.Decimal `json:"cost"`

	// Formula describes how the cost was calculated
	Formula string `json:"formula"`
}

// Estimator projects energy cost for a fixed daily usage assumption
type Estimator struct {
	hoursPerDay decimal.Decimal
}

// NewEstimator creates an estimator. A non-positive hoursPerDay selects
// DefaultHoursPerDay.
func NewEstimator(hoursPerDay float64) *Estimator {
	if hoursPerDay <= 0 {
		hoursPerDay = DefaultHoursPerDay
	}
	return &Estimator{hoursPerDay: decimal.NewFromFloat(hoursPerDay)}
}

// HoursPerDay returns the usage assumption
func (e *Estimator) HoursPerDay() float64 {
	return e.hoursPerDay.InexactFloat64()
}

// Project computes the monthly projection for totalKw at unitCost per kWh.
// unitCost bounds are enforced at the input boundary, not here.
func (e *Estimator) Project(totalKw float64, unitCost decimal.Decimal) Projection {
	load := decimal.NewFromFloat(totalKw)
	daily := load.Mul(e.hoursPerDay)
	monthly := daily.Mul(decimal.NewFromInt(DaysPerMonth))

	return Projection{
		LoadKw:      load,
		HoursPerDay: e.hoursPerDay,
		DailyKwh:    daily,
		MonthlyKwh:  monthly,
		UnitCost:    unitCost,
		Cost:        monthly.Mul(unitCost),
		Formula: fmt.Sprintf("%s kW * %s h/day * %d days * %s/kWh",
			load.String(), e.hoursPerDay.String(), DaysPerMonth, unitCost.String()),
	}
}

// MonthlyCost is the scalar view of Project
func (e *Estimator) MonthlyCost(totalKw float64, unitCost decimal.Decimal) decimal.Decimal {
	return e.Project(totalKw, unitCost).Cost
}

// MonthlyCost projects cost with an explicit hours-per-day assumption
func MonthlyCost(totalKw, hoursPerDay float64, costPerKwh decimal.Decimal) decimal.Decimal {
	return NewEstimator(hoursPerDay).MonthlyCost(totalKw, costPerKwh)
}
