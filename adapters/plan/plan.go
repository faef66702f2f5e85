// Package plan reads household plan files so an estimate can run without
// interactive prompts. HCL (.hcl) and YAML (.yaml, .yml) are supported.
package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"home-load/core/catalog"
	"home-load/core/session"
	"home-load/core/types"
	"home-load/internal/config"
	"home-load/internal/errors"
)

// Plan is a parsed plan file
type Plan struct {
	// Source is the file the plan was read from
	Source string

	// UnitCost overrides the configured unit cost when set
	UnitCost *float64

	// HoursPerDay overrides the configured usage assumption when set
	HoursPerDay *float64

	// Rooms are the rooms in file order
	Rooms []Room
}

// Room is one room block of a plan
type Room struct {
	Label      string
	Template   string
	Quantities types.Quantities
	Line       int
}

// Load parses a plan file, choosing the syntax by extension
func Load(path string) (*Plan, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing("failed to read plan", err).WithContext("file", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return ParseHCL(src, path)
	case ".yaml", ".yml":
		return ParseYAML(src, path)
	default:
		return nil, errors.NotSupported("plan file extension " + filepath.Ext(path))
	}
}

// Request resolves the plan into a session request. Rooms with a template
// start from its defaults; rooms without one start from zero. Values missing
// from the plan fall back to cfg. Errors about a room carry the file and the
// line of its block.
func (p *Plan) Request(templates *catalog.TemplateCatalog, cfg *config.Config) (*session.Request, error) {
	unitCost, hours := cfg.Estimate.UnitCost, cfg.Estimate.HoursPerDay
	if p.UnitCost != nil {
		unitCost = *p.UnitCost
	}
	if p.HoursPerDay != nil {
		hours = *p.HoursPerDay
	}
	if err := config.CheckUnitCost(unitCost); err != nil {
		return nil, p.fileError(err)
	}
	if err := config.CheckHoursPerDay(hours); err != nil {
		return nil, p.fileError(err)
	}

	req := &session.Request{
		Mode:        session.ModePlan,
		UnitCost:    decimal.NewFromFloat(unitCost),
		HoursPerDay: hours,
		Currency:    cfg.Currency,
	}

	appliances := catalog.Default()
	for i, r := range p.Rooms {
		for _, name := range r.Quantities.Names() {
			if !appliances.Has(name) {
				return nil, p.roomError(i, errors.UnknownAppliance(name))
			}
			if qty := r.Quantities.Get(name); qty < 0 {
				return nil, p.roomError(i, errors.InvalidInput("quantity", "%d x %s", qty, name))
			}
		}

		var room types.RoomInput
		if r.Template != "" && r.Template != catalog.Custom {
			var err error
			room, err = session.TemplateRoom(templates, r.Template, r.Quantities)
			if err != nil {
				return nil, p.roomError(i, err)
			}
		} else {
			room = session.CustomRoom(i+1, r.Quantities)
		}
		if r.Label != "" {
			room.Label = r.Label
		}
		req.Rooms = append(req.Rooms, room)
	}

	return req, nil
}

// fileError keeps the type of err and names the plan file
func (p *Plan) fileError(err error) error {
	typ, ok := errors.TypeOf(err)
	if !ok {
		typ = errors.TypeInvalidInput
	}
	return errors.Wrap(typ, p.Source, err).WithContext("file", p.Source)
}

// roomError keeps the type of err and points at the i-th room block
func (p *Plan) roomError(i int, err error) error {
	r := p.Rooms[i]
	name := r.Label
	if name == "" {
		name = fmt.Sprintf("#%d", i+1)
	}
	typ, ok := errors.TypeOf(err)
	if !ok {
		typ = errors.TypeInvalidInput
	}
	return errors.Wrap(typ, fmt.Sprintf("%s:%d: room %s", p.Source, r.Line, name), err).
		WithContext("file", p.Source).
		WithContext("line", r.Line)
}
