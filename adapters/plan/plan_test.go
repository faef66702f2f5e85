package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"home-load/core/catalog"
	"home-load/core/session"
	"home-load/core/types"
	"home-load/internal/config"
	"home-load/internal/errors"
)

const hclPlan = `
unit_cost     = 9.5
hours_per_day = 6

room "Master Bedroom" {
  template   = "Bedroom"
  quantities = { AC = 2, "LCD/TV" = 0 }
}

room "Shed" {
  quantities = { Motor = 1, Bulb = 1 }
}

room "Kitchen" {
  template = "Kitchen"
}
`

const yamlPlanSrc = `
unit_cost: 12
rooms:
  - label: Laundry
    template: Laundry Room
  - quantities:
      Geyser: 2
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestParseHCL(t *testing.T) {
	p, err := ParseHCL([]byte(hclPlan), "house.hcl")
	require.NoError(t, err)

	require.NotNil(t, p.UnitCost)
	assert.Equal(t, 9.5, *p.UnitCost)
	require.NotNil(t, p.HoursPerDay)
	assert.Equal(t, 6.0, *p.HoursPerDay)

	require.Len(t, p.Rooms, 3)
	assert.Equal(t, "Master Bedroom", p.Rooms[0].Label)
	assert.Equal(t, "Bedroom", p.Rooms[0].Template)
	assert.Equal(t, types.Quantities{"AC": 2, "LCD/TV": 0}, p.Rooms[0].Quantities)
	assert.Equal(t, 5, p.Rooms[0].Line)
	assert.Equal(t, "", p.Rooms[1].Template)
	assert.Empty(t, p.Rooms[2].Quantities)
}

func TestParseHCLRejectsFractionalQuantity(t *testing.T) {
	_, err := ParseHCL([]byte(`room "A" { quantities = { Fan = 1.5 } }`), "bad.hcl")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeParsing))
	assert.Contains(t, err.Error(), "whole number")
}

func TestParseHCLRejectsUnknownAttribute(t *testing.T) {
	_, err := ParseHCL([]byte(`voltage = 110`), "bad.hcl")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeParsing))
}

func TestParseHCLSyntaxError(t *testing.T) {
	_, err := ParseHCL([]byte(`room "A" {`), "bad.hcl")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeParsing))
}

func TestParseYAML(t *testing.T) {
	p, err := ParseYAML([]byte(yamlPlanSrc), "house.yaml")
	require.NoError(t, err)

	require.NotNil(t, p.UnitCost)
	assert.Equal(t, 12.0, *p.UnitCost)
	assert.Nil(t, p.HoursPerDay)
	require.Len(t, p.Rooms, 2)
	assert.Equal(t, "Laundry Room", p.Rooms[0].Template)
	assert.Equal(t, 2, p.Rooms[1].Quantities.Get("Geyser"))
}

func TestLoadByExtension(t *testing.T) {
	p, err := Load(writeFile(t, "house.hcl", hclPlan))
	require.NoError(t, err)
	assert.Len(t, p.Rooms, 3)

	p, err = Load(writeFile(t, "house.yml", yamlPlanSrc))
	require.NoError(t, err)
	assert.Len(t, p.Rooms, 2)

	_, err = Load(writeFile(t, "house.toml", ""))
	assert.True(t, errors.IsType(err, errors.TypeNotSupported))

	_, err = Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.True(t, errors.IsType(err, errors.TypeParsing))
}

func TestRequestResolvesTemplatesAndDefaults(t *testing.T) {
	p, err := ParseHCL([]byte(hclPlan), "house.hcl")
	require.NoError(t, err)

	req, err := p.Request(catalog.DefaultTemplates(), config.Default())
	require.NoError(t, err)

	assert.Equal(t, session.ModePlan, req.Mode)
	assert.True(t, req.UnitCost.Equal(decimal.NewFromFloat(9.5)))
	assert.Equal(t, 6.0, req.HoursPerDay)
	require.Len(t, req.Rooms, 3)

	bedroom := req.Rooms[0]
	assert.Equal(t, "Master Bedroom", bedroom.Label)
	assert.Equal(t, 2, bedroom.Quantities.Get("AC"))
	assert.Equal(t, 0, bedroom.Quantities.Get("LCD/TV"))
	assert.Equal(t, 1, bedroom.Quantities.Get("Fan"))

	assert.Equal(t, "Shed", req.Rooms[1].Label)
	assert.Equal(t, 1, req.Rooms[2].Quantities.Get("Fridge"))

	assert.NoError(t, req.Validate(catalog.Default()))
}

func TestRequestFallsBackToConfig(t *testing.T) {
	p, err := ParseYAML([]byte("rooms:\n  - quantities: {Fan: 1}\n"), "x.yaml")
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Estimate.UnitCost = 11
	req, err := p.Request(catalog.DefaultTemplates(), cfg)
	require.NoError(t, err)

	assert.True(t, req.UnitCost.Equal(decimal.NewFromInt(11)))
	assert.Equal(t, 4.0, req.HoursPerDay)
	assert.Equal(t, "Room 1", req.Rooms[0].Label)
}

func TestRequestUnknownTemplate(t *testing.T) {
	p := &Plan{Rooms: []Room{{Label: "Garage", Template: "Garage"}}}
	_, err := p.Request(catalog.DefaultTemplates(), config.Default())
	assert.True(t, errors.IsType(err, errors.TypeUnknownTemplate))
}

func TestRequestRejectsNonFiniteValues(t *testing.T) {
	tests := []struct {
		name string
		file string
		src  string
	}{
		{"nan hours", "house.yaml", "hours_per_day: .nan\nrooms:\n  - template: Bedroom\n"},
		{"infinite unit cost", "house.yaml", "unit_cost: .inf\nrooms:\n  - template: Bedroom\n"},
		{"negative infinite hours", "house.yaml", "hours_per_day: -.inf\nrooms:\n  - template: Bedroom\n"},
		{"unit cost beyond float range", "house.hcl", "unit_cost = 1e400\nroom \"Den\" {\n  template = \"Bedroom\"\n}\n"},
		{"hours beyond float range", "house.hcl", "hours_per_day = 1e400\nroom \"Den\" {\n  template = \"Bedroom\"\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Load(writeFile(t, tt.file, tt.src))
			require.NoError(t, err)

			req, err := p.Request(catalog.DefaultTemplates(), config.Default())
			require.Error(t, err)
			assert.Nil(t, req)
			assert.True(t, errors.IsType(err, errors.TypeInvalidInput), "got %v", err)
			assert.Contains(t, err.Error(), tt.file)
		})
	}
}

func TestRequestRoomErrorsCarryFileAndLine(t *testing.T) {
	src := "unit_cost: 8\nrooms:\n  - template: Bedroom\n  - label: Garage\n    template: Garage\n"
	p, err := ParseYAML([]byte(src), "house.yaml")
	require.NoError(t, err)

	_, err = p.Request(catalog.DefaultTemplates(), config.Default())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeUnknownTemplate))
	assert.Contains(t, err.Error(), "house.yaml:4: room Garage")

	var de *errors.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "house.yaml", de.Context["file"])
	assert.Equal(t, 4, de.Context["line"])
}

func TestRequestRejectsUnknownApplianceWithLine(t *testing.T) {
	p, err := ParseHCL([]byte(hclPlan+"\nroom \"Garage\" {\n  quantities = { Toaster = 1 }\n}\n"), "house.hcl")
	require.NoError(t, err)

	_, err = p.Request(catalog.DefaultTemplates(), config.Default())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeUnknownAppliance))
	assert.Contains(t, err.Error(), "house.hcl:18: room Garage")
}

func TestRequestRejectsNegativeQuantity(t *testing.T) {
	p := &Plan{Source: "house.yaml", Rooms: []Room{{Quantities: types.Quantities{"Fan": -2}, Line: 3}}}
	_, err := p.Request(catalog.DefaultTemplates(), config.Default())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInvalidInput))
	assert.Contains(t, err.Error(), "house.yaml:3: room #1")
}
