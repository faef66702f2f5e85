// Package types - Room types
package types

// RoomInput is one room as collected at the input boundary
type RoomInput struct {
	// Label is the display name (template name or "Room N")
	Label string `json:"label"`

	// Template is the room template the quantities started from, empty for custom rooms
	Template string `json:"template,omitempty"`

	// Quantities holds appliance counts; unset entries are zero
	Quantities Quantities `json:"quantities"`
}

// LoadLine is the contribution of one appliance to a room's load
type LoadLine struct {
	Appliance string  `json:"appliance"`
	Quantity  int     `json:"quantity"`
	RatedKw   float64 `json:"rated_kw"`
	LoadKw    float64 `json:"load_kw"`
}

// RoomResult is the derived electrical assessment of one room
type RoomResult struct {
	// Label identifies the room
	Label string `json:"label"`

	// LoadKw is the connected load in kW
	LoadKw float64 `json:"load_kw"`

	// Amperes is the current drawn at nominal voltage
	Amperes float64 `json:"amperes"`

	// Breaker is the recommended circuit protection
	Breaker string `json:"breaker"`

	// Cable is the recommended cable size
	Cable string `json:"cable"`

	// Overload is set when the current exceeds the single-circuit threshold
	Overload bool `json:"overload"`

	// Lines breaks the load down per appliance
	Lines []LoadLine `json:"lines,omitempty"`
}
