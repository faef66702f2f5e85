// Package load sums appliance power ratings into room loads.
package load

import (
	"sort"

	"home-load/core/catalog"
	"home-load/core/types"
)

// Calculator computes connected load from appliance quantities
type Calculator struct {
	catalog *catalog.Catalog
}

// NewCalculator creates a calculator over an appliance catalog.
// A nil catalog selects the built-in one.
func NewCalculator(c *catalog.Catalog) *Calculator {
	if c == nil {
		c = catalog.Default()
	}
	return &Calculator{catalog: c}
}

// TotalLoad returns the sum of rated power times quantity, in kW.
// The result is not rounded.
func (c *Calculator) TotalLoad(q types.Quantities) (float64, error) {
	total := 0.0
	for _, name := range q.Names() {
		spec, err := c.catalog.Lookup(name)
		if err != nil {
			return 0, err
		}
		total += spec.RatedKw * float64(q.Get(name))
	}
	return total, nil
}

// Breakdown returns one line per appliance with a non-zero quantity,
// in catalog order.
func (c *Calculator) Breakdown(q types.Quantities) ([]types.LoadLine, error) {
	lines := make([]types.LoadLine, 0, len(q))
	for _, name := range q.Names() {
		spec, err := c.catalog.Lookup(name)
		if err != nil {
			return nil, err
		}
		qty := q.Get(name)
		if qty == 0 {
			continue
		}
		lines = append(lines, types.LoadLine{
			Appliance: name,
			Quantity:  qty,
			RatedKw:   spec.RatedKw,
			LoadKw:    spec.RatedKw * float64(qty),
		})
	}

	rank := make(map[string]int, c.catalog.Len())
	for i, name := range c.catalog.Names() {
		rank[name] = i
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return rank[lines[i].Appliance] < rank[lines[j].Appliance]
	})
	return lines, nil
}
