// Package session drives one estimation run from collected room inputs to a
// finished summary.
package session

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"home-load/core/catalog"
	"home-load/core/cost"
	"home-load/core/determinism"
	"home-load/core/types"
	"home-load/internal/config"
	"home-load/internal/errors"
)

// Mode is how the rooms of a request were collected
type Mode string

const (
	// ModeTemplate is a single room seeded from a room template
	ModeTemplate Mode = "template"

	// ModeCustom is N rooms with every appliance entered by hand
	ModeCustom Mode = "custom"

	// ModePlan is a set of rooms read from a plan file
	ModePlan Mode = "plan"
)

// Request is the structured input for one session
type Request struct {
	Mode        Mode
	Rooms       []types.RoomInput
	UnitCost    decimal.Decimal
	HoursPerDay float64
	Currency    types.Currency
}

// TemplateRoom seeds a room from a template and applies overrides on top.
// Overrides may add appliances the template does not list.
func TemplateRoom(templates *catalog.TemplateCatalog, name string, overrides types.Quantities) (types.RoomInput, error) {
	t, err := templates.Lookup(name)
	if err != nil {
		return types.RoomInput{}, err
	}
	return types.RoomInput{
		Label:      t.Name,
		Template:   t.Name,
		Quantities: t.Quantities().Merge(overrides),
	}, nil
}

// CustomRoom labels the index-th (1-based) custom room
func CustomRoom(index int, q types.Quantities) types.RoomInput {
	return types.RoomInput{
		Label:      fmt.Sprintf("Room %d", index),
		Quantities: q.Clone(),
	}
}

// TemplateRequest builds a single-room request from a built-in template
func TemplateRequest(name string, overrides types.Quantities, unitCost decimal.Decimal) (*Request, error) {
	room, err := TemplateRoom(catalog.DefaultTemplates(), name, overrides)
	if err != nil {
		return nil, err
	}
	return &Request{
		Mode:        ModeTemplate,
		Rooms:       []types.RoomInput{room},
		UnitCost:    unitCost,
		HoursPerDay: cost.DefaultHoursPerDay,
		Currency:    types.CurrencyPKR,
	}, nil
}

// CustomRequest builds a request with one custom room per quantity map
func CustomRequest(rooms []types.Quantities, unitCost decimal.Decimal) *Request {
	inputs := make([]types.RoomInput, len(rooms))
	for i, q := range rooms {
		inputs[i] = CustomRoom(i+1, q)
	}
	return &Request{
		Mode:        ModeCustom,
		Rooms:       inputs,
		UnitCost:    unitCost,
		HoursPerDay: cost.DefaultHoursPerDay,
		Currency:    types.CurrencyPKR,
	}
}

// Validate applies the input boundary rules. Unknown appliance names are
// reported as such; every other violation is an invalid input.
func (r *Request) Validate(c *catalog.Catalog) error {
	if r.UnitCost.LessThan(decimal.NewFromFloat(config.MinUnitCost)) {
		return errors.InvalidInput("unit cost", "must be at least %.2f, got %s", config.MinUnitCost, r.UnitCost.StringFixed(2))
	}
	if err := config.CheckHoursPerDay(r.HoursPerDay); err != nil {
		return err
	}
	if len(r.Rooms) < 1 {
		return errors.InvalidInput("rooms", "at least one room is required")
	}
	if r.Mode == ModeTemplate && len(r.Rooms) != 1 {
		return errors.InvalidInput("rooms", "template mode takes exactly one room, got %d", len(r.Rooms))
	}

	for _, room := range r.Rooms {
		for _, name := range room.Quantities.Names() {
			if !c.Has(name) {
				return fmt.Errorf("room %q: %w", room.Label, errors.UnknownAppliance(name))
			}
			if qty := room.Quantities.Get(name); qty < 0 {
				return errors.InvalidInput("quantity", "room %q has %d x %s", room.Label, qty, name)
			}
		}
	}
	return nil
}

// Fingerprint hashes everything that affects the result. Zero quantities are
// skipped, so a room listing "Fan = 0" matches one that omits the fan.
func (r *Request) Fingerprint() determinism.ContentHash {
	h := determinism.NewHasher("homeload/request/v1").Add(
		r.UnitCost.String(),
		strconv.FormatFloat(r.HoursPerDay, 'f', -1, 64),
		string(r.Currency),
	)
	for _, room := range r.Rooms {
		h.Add("room", room.Label)
		for _, name := range room.Quantities.Names() {
			if qty := room.Quantities.Get(name); qty != 0 {
				h.Add(name, strconv.Itoa(qty))
			}
		}
	}
	return h.Sum()
}
