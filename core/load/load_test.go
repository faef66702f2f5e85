package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"home-load/core/catalog"
	"home-load/core/types"
	"home-load/internal/errors"
)

func TestTotalLoadSingleAppliance(t *testing.T) {
	calc := NewCalculator(nil)
	for _, spec := range catalog.Default().All() {
		for _, qty := range []int{0, 1, 3, 17} {
			got, err := calc.TotalLoad(types.Quantities{spec.Name: qty})
			require.NoError(t, err)
			assert.InDelta(t, spec.RatedKw*float64(qty), got, 1e-9, spec.Name)
		}
	}
}

func TestTotalLoadIsAdditive(t *testing.T) {
	calc := NewCalculator(nil)
	a := types.Quantities{"Fan": 2, "Bulb": 4, "AC": 1}
	b := types.Quantities{"Geyser": 1, "Fridge": 1}

	la, err := calc.TotalLoad(a)
	require.NoError(t, err)
	lb, err := calc.TotalLoad(b)
	require.NoError(t, err)
	lab, err := calc.TotalLoad(a.Merge(b))
	require.NoError(t, err)

	assert.InDelta(t, la+lb, lab, 1e-9)
}

func TestTotalLoadEmptyIsZero(t *testing.T) {
	got, err := NewCalculator(nil).TotalLoad(nil)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestTotalLoadBedroomDefaults(t *testing.T) {
	bedroom, err := catalog.DefaultTemplates().Lookup("Bedroom")
	require.NoError(t, err)

	got, err := NewCalculator(nil).TotalLoad(bedroom.Quantities())
	require.NoError(t, err)
	assert.InDelta(t, 2.365, got, 1e-9)
}

func TestTotalLoadUnknownAppliance(t *testing.T) {
	_, err := NewCalculator(nil).TotalLoad(types.Quantities{"Fan": 1, "Toaster": 1})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeUnknownAppliance))
}

func TestBreakdownOrderAndZeroes(t *testing.T) {
	lines, err := NewCalculator(nil).Breakdown(types.Quantities{"Geyser": 2, "Bulb": 3, "Fan": 0})
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, "Bulb", lines[0].Appliance)
	assert.InDelta(t, 0.18, lines[0].LoadKw, 1e-9)
	assert.Equal(t, "Geyser", lines[1].Appliance)
	assert.InDelta(t, 6.0, lines[1].LoadKw, 1e-9)
}
