// Package types - Session summary
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary is the result of one full session run
type Summary struct {
	// SessionID identifies the run in logs and exports
	SessionID string `json:"session_id"`

	// InputHash identifies the inputs; equal inputs give equal hashes
	InputHash string `json:"input_hash"`

	// Rooms are the per-room results in room creation order
	Rooms []RoomResult `json:"rooms"`

	// TotalLoadKw is the sum of every room's load
	TotalLoadKw float64 `json:"total_load_kw"`

	// TotalAmperes is the total load at nominal voltage
	TotalAmperes float64 `json:"total_amperes"`

	// MainBreaker is the recommended main circuit protection
	MainBreaker string `json:"main_breaker"`

	// MainCable is the recommended main cable size
	MainCable string `json:"main_cable"`

	// Overload is set when the total current exceeds the single-circuit threshold
	Overload bool `json:"overload"`

	// MonthlyCost is the projected monthly energy cost
	MonthlyCost decimal.Decimal `json:"monthly_cost"`

	// MonthlyKwh is the projected monthly energy use
	MonthlyKwh decimal.Decimal `json:"monthly_kwh"`

	// UnitCost is the price per kWh the projection used
	UnitCost decimal.Decimal `json:"unit_cost"`

	// HoursPerDay is the daily usage assumption the projection used
	HoursPerDay float64 `json:"hours_per_day"`

	// Currency is the billing currency
	Currency Currency `json:"currency"`

	// GeneratedAt is when the summary was produced
	GeneratedAt time.Time `json:"generated_at"`
}

// OverloadedRooms returns the labels of rooms that exceed the threshold
func (s *Summary) OverloadedRooms() []string {
	var labels []string
	for _, r := range s.Rooms {
		if r.Overload {
			labels = append(labels, r.Label)
		}
	}
	return labels
}
