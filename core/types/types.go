// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

import "sort"

// Quantities maps appliance names to how many of each are installed in a room.
// It is a total function: absent names read as zero.
type Quantities map[string]int

// Get returns the quantity for an appliance, zero when unset
func (q Quantities) Get(name string) int {
	if q == nil {
		return 0
	}
	return q[name]
}

// Set records a quantity
func (q Quantities) Set(name string, qty int) {
	q[name] = qty
}

// Clone returns an independent copy
func (q Quantities) Clone() Quantities {
	out := make(Quantities, len(q))
	for k, v := range q {
		out[k] = v
	}
	return out
}

// Merge returns a copy of q with every entry of overrides applied on top.
func (q Quantities) Merge(overrides Quantities) Quantities {
	out := q.Clone()
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Names returns the appliance names present in the map, sorted.
func (q Quantities) Names() []string {
	names := make([]string, 0, len(q))
	for k := range q {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Total returns the number of appliance units across all names
func (q Quantities) Total() int {
	n := 0
	for _, v := range q {
		n += v
	}
	return n
}
