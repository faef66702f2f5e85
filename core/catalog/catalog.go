// Package catalog - Authoritative appliance and room template catalogs
// These fixed tables are the closed vocabulary every room input is checked against.
package catalog

import (
	"home-load/internal/errors"
)

// ApplianceSpec is a catalog entry for an appliance
type ApplianceSpec struct {
	Name        string  `json:"name"`
	RatedKw     float64 `json:"rated_kw"`
	Description string  `json:"description"`
}

// Catalog is the authoritative appliance catalog. It is read-only once built.
type Catalog struct {
	entries map[string]ApplianceSpec
	order   []string
}

func newCatalog() *Catalog {
	return &Catalog{
		entries: make(map[string]ApplianceSpec),
	}
}

func (c *Catalog) register(spec ApplianceSpec) {
	if _, exists := c.entries[spec.Name]; !exists {
		c.order = append(c.order, spec.Name)
	}
	c.entries[spec.Name] = spec
}

// Lookup returns the appliance spec for name
func (c *Catalog) Lookup(name string) (ApplianceSpec, error) {
	spec, ok := c.entries[name]
	if !ok {
		return ApplianceSpec{}, errors.UnknownAppliance(name)
	}
	return spec, nil
}

// Has reports whether name is in the catalog
func (c *Catalog) Has(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Describe returns the help text for an appliance, empty if unknown
func (c *Catalog) Describe(name string) string {
	return c.entries[name].Description
}

// Names returns the appliance names in catalog order
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// All returns every spec in catalog order
func (c *Catalog) All() []ApplianceSpec {
	out := make([]ApplianceSpec, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.entries[name])
	}
	return out
}

// Len returns the number of appliances
func (c *Catalog) Len() int {
	return len(c.order)
}
