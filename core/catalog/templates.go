// Package catalog - Room templates
package catalog

import (
	"home-load/core/types"
	"home-load/internal/errors"
)

// Custom is the pseudo-template that starts a room with every quantity at zero.
const Custom = "Custom"

// TemplateEntry is one default appliance count in a template
type TemplateEntry struct {
	Appliance string `json:"appliance"`
	Quantity  int    `json:"quantity"`
}

// RoomTemplate is a named set of default appliance quantities
type RoomTemplate struct {
	Name    string          `json:"name"`
	Entries []TemplateEntry `json:"entries"`
}

// Quantities returns a fresh mapping of the template defaults
func (t RoomTemplate) Quantities() types.Quantities {
	q := make(types.Quantities, len(t.Entries))
	for _, e := range t.Entries {
		q[e.Appliance] = e.Quantity
	}
	return q
}

// Appliances returns the template's appliance names in template order
func (t RoomTemplate) Appliances() []string {
	names := make([]string, len(t.Entries))
	for i, e := range t.Entries {
		names[i] = e.Appliance
	}
	return names
}

// TemplateCatalog is the read-only set of room templates
type TemplateCatalog struct {
	entries map[string]RoomTemplate
	order   []string
}

func (tc *TemplateCatalog) register(t RoomTemplate) {
	if _, exists := tc.entries[t.Name]; !exists {
		tc.order = append(tc.order, t.Name)
	}
	tc.entries[t.Name] = t
}

// Lookup returns the template for name
func (tc *TemplateCatalog) Lookup(name string) (RoomTemplate, error) {
	t, ok := tc.entries[name]
	if !ok {
		return RoomTemplate{}, errors.UnknownTemplate(name)
	}
	entries := make([]TemplateEntry, len(t.Entries))
	copy(entries, t.Entries)
	return RoomTemplate{Name: t.Name, Entries: entries}, nil
}

// Names returns template names in catalog order
func (tc *TemplateCatalog) Names() []string {
	out := make([]string, len(tc.order))
	copy(out, tc.order)
	return out
}

// Choices returns the selectable options: Custom followed by every template.
func (tc *TemplateCatalog) Choices() []string {
	return append([]string{Custom}, tc.Names()...)
}

var templates = buildTemplates()

// DefaultTemplates returns the built-in room templates
func DefaultTemplates() *TemplateCatalog {
	return templates
}

func buildTemplates() *TemplateCatalog {
	tc := &TemplateCatalog{entries: make(map[string]RoomTemplate)}

	tc.register(RoomTemplate{Name: "Bedroom", Entries: []TemplateEntry{
		{"Fan", 1}, {"Bulb", 2}, {"Mobile Charger", 2}, {"AC", 1}, {"LCD/TV", 1}, {"Laptop Charger", 1},
	}})
	tc.register(RoomTemplate{Name: "Living Room", Entries: []TemplateEntry{
		{"Fan", 2}, {"Bulb", 4}, {"AC", 1}, {"LCD/TV", 1}, {"Laptop Charger", 1}, {"Mobile Charger", 1},
	}})
	tc.register(RoomTemplate{Name: "Kitchen", Entries: []TemplateEntry{
		{"Oven", 1}, {"Juicer", 1}, {"Bulb", 2}, {"Fridge", 1},
	}})
	tc.register(RoomTemplate{Name: "Washroom", Entries: []TemplateEntry{
		{"Geyser", 1}, {"Bulb", 1}, {"Motor", 1},
	}})
	tc.register(RoomTemplate{Name: "Laundry Room", Entries: []TemplateEntry{
		{"Washing Machine", 1}, {"Spinner", 1}, {"Iron", 1},
	}})

	return tc
}
