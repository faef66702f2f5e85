package plan

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"home-load/core/types"
	"home-load/internal/errors"
)

var rootSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "unit_cost"},
		{Name: "hours_per_day"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "room", LabelNames: []string{"label"}},
	},
}

var roomSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "template"},
		{Name: "quantities"},
	},
}

// ParseHCL parses an HCL plan:
//
//	unit_cost     = 7
//	hours_per_day = 4
//
//	room "Master Bedroom" {
//	  template   = "Bedroom"
//	  quantities = { AC = 2, "LCD/TV" = 0 }
//	}
func ParseHCL(src []byte, filename string) (*Plan, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing(filename, diags)
	}

	content, diags := file.Body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, errors.Parsing(filename, diags)
	}

	p := &Plan{Source: filename}

	if attr, ok := content.Attributes["unit_cost"]; ok {
		v, err := numberAttr(attr)
		if err != nil {
			return nil, errors.Parsing(filename, err)
		}
		p.UnitCost = &v
	}
	if attr, ok := content.Attributes["hours_per_day"]; ok {
		v, err := numberAttr(attr)
		if err != nil {
			return nil, errors.Parsing(filename, err)
		}
		p.HoursPerDay = &v
	}

	for _, block := range content.Blocks {
		room, err := parseRoomBlock(block)
		if err != nil {
			return nil, errors.Parsing(filename, err)
		}
		p.Rooms = append(p.Rooms, room)
	}

	return p, nil
}

func parseRoomBlock(block *hcl.Block) (Room, error) {
	room := Room{
		Label:      block.Labels[0],
		Quantities: make(types.Quantities),
		Line:       block.DefRange.Start.Line,
	}

	content, diags := block.Body.Content(roomSchema)
	if diags.HasErrors() {
		return room, diags
	}

	if attr, ok := content.Attributes["template"]; ok {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return room, diags
		}
		if val.IsNull() || !val.IsKnown() || val.Type() != cty.String {
			return room, fmt.Errorf("%s: room %q: template must be a string", attr.Range, room.Label)
		}
		room.Template = val.AsString()
	}

	if attr, ok := content.Attributes["quantities"]; ok {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return room, diags
		}
		q, err := quantitiesFromCty(val)
		if err != nil {
			return room, fmt.Errorf("%s: room %q: %w", attr.Range, room.Label, err)
		}
		room.Quantities = q
	}

	return room, nil
}

func numberAttr(attr *hcl.Attribute) (float64, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.IsNull() || !val.IsKnown() || val.Type() != cty.Number {
		return 0, fmt.Errorf("%s: %s must be a number", attr.Range, attr.Name)
	}
	f, _ := val.AsBigFloat().Float64()
	return f, nil
}

// quantitiesFromCty converts an object or map of whole numbers
func quantitiesFromCty(val cty.Value) (types.Quantities, error) {
	if val.IsNull() || !val.IsKnown() {
		return nil, fmt.Errorf("quantities must be a known value")
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return nil, fmt.Errorf("quantities must be an object, got %s", val.Type().FriendlyName())
	}

	q := make(types.Quantities)
	iter := val.ElementIterator()
	for iter.Next() {
		k, v := iter.Element()
		name := k.AsString()
		if v.IsNull() || !v.IsKnown() || v.Type() != cty.Number {
			return nil, fmt.Errorf("quantity for %q must be a number", name)
		}
		bf := v.AsBigFloat()
		if !bf.IsInt() {
			return nil, fmt.Errorf("quantity for %q must be a whole number, got %s", name, bf.Text('g', -1))
		}
		n, acc := bf.Int64()
		if acc != big.Exact {
			return nil, fmt.Errorf("quantity for %q is out of range", name)
		}
		q[name] = int(n)
	}
	return q, nil
}
