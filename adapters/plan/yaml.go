package plan

import (
	"gopkg.in/yaml.v3"

	"home-load/core/types"
	"home-load/internal/errors"
)

type yamlPlan struct {
	UnitCost    *float64   `yaml:"unit_cost"`
	HoursPerDay *float64   `yaml:"hours_per_day"`
	Rooms       []yamlRoom `yaml:"rooms"`
}

type yamlRoom struct {
	Label      string         `yaml:"label"`
	Template   string         `yaml:"template"`
	Quantities map[string]int `yaml:"quantities"`
	line       int
}

// UnmarshalYAML records the source line of each room
func (r *yamlRoom) UnmarshalYAML(node *yaml.Node) error {
	type plain yamlRoom
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*r = yamlRoom(p)
	r.line = node.Line
	return nil
}

// ParseYAML parses a YAML plan:
//
//	unit_cost: 7
//	rooms:
//	  - label: Master Bedroom
//	    template: Bedroom
//	    quantities: {AC: 2}
func ParseYAML(src []byte, filename string) (*Plan, error) {
	var doc yamlPlan
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, errors.Parsing(filename, err)
	}

	p := &Plan{
		Source:      filename,
		UnitCost:    doc.UnitCost,
		HoursPerDay: doc.HoursPerDay,
	}
	for _, r := range doc.Rooms {
		q := make(types.Quantities, len(r.Quantities))
		for k, v := range r.Quantities {
			q[k] = v
		}
		p.Rooms = append(p.Rooms, Room{
			Label:      r.Label,
			Template:   r.Template,
			Quantities: q,
			Line:       r.line,
		})
	}
	return p, nil
}
