// Package prompt collects a session request through interactive line prompts.
// Every value is checked here, so invalid input never reaches the calculators.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"home-load/core/catalog"
	"home-load/core/session"
	"home-load/core/types"
	"home-load/internal/config"
	"home-load/internal/errors"
)

// Prompter asks questions on w and reads answers from r
type Prompter struct {
	reader    *bufio.Reader
	writer    io.Writer
	catalog   *catalog.Catalog
	templates *catalog.TemplateCatalog
	logger    *zap.Logger
}

// Option configures a Prompter
type Option func(*Prompter)

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(p *Prompter) {
		p.logger = l
	}
}

// New creates a prompter over the built-in catalogs
func New(r io.Reader, w io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		reader:    bufio.NewReader(r),
		writer:    w,
		catalog:   catalog.Default(),
		templates: catalog.DefaultTemplates(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// readLine returns the next trimmed line. An empty answer at end of input
// is reported as io.ErrUnexpectedEOF.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		if err == io.EOF {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ask repeats question until parse accepts the answer. An empty answer
// selects def.
func (p *Prompter) ask(ctx context.Context, question, def string, parse func(string) error) error {
	for {
		fmt.Fprintf(p.writer, "%s [%s]: ", question, def)
		answer, err := p.readLine(ctx)
		if err != nil {
			fmt.Fprintln(p.writer)
			return err
		}
		if answer == "" {
			answer = def
		}
		if err := parse(answer); err != nil {
			p.logger.Debug("rejected input", zap.String("question", question), zap.String("answer", answer), zap.Error(err))
			fmt.Fprintf(p.writer, "  %v. Please try again.\n", err)
			continue
		}
		return nil
	}
}

// Decimal asks for a number no lower than min
func (p *Prompter) Decimal(ctx context.Context, question string, min, def decimal.Decimal) (decimal.Decimal, error) {
	var out decimal.Decimal
	err := p.ask(ctx, question, def.StringFixed(2), func(s string) error {
		v, err := decimal.NewFromString(s)
		if err != nil {
			return errors.InvalidInput(question, "%q is not a number", s)
		}
		if v.LessThan(min) {
			return errors.InvalidInput(question, "must be at least %s", min.StringFixed(2))
		}
		out = v
		return nil
	})
	return out, err
}

// Int asks for a whole number no lower than min
func (p *Prompter) Int(ctx context.Context, question string, min, def int) (int, error) {
	var out int
	err := p.ask(ctx, question, strconv.Itoa(def), func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return errors.InvalidInput(question, "%q is not a whole number", s)
		}
		if v < min {
			return errors.InvalidInput(question, "must be at least %d", min)
		}
		out = v
		return nil
	})
	return out, err
}

// Choice asks for one of options, by number or by name (case-insensitive)
func (p *Prompter) Choice(ctx context.Context, question string, options []string, def string) (string, error) {
	fmt.Fprintf(p.writer, "%s\n", question)
	for i, o := range options {
		fmt.Fprintf(p.writer, "  %d) %s\n", i+1, o)
	}

	var out string
	err := p.ask(ctx, "Choice", def, func(s string) error {
		if n, err := strconv.Atoi(s); err == nil {
			if n < 1 || n > len(options) {
				return errors.InvalidInput("choice", "pick 1 to %d", len(options))
			}
			out = options[n-1]
			return nil
		}
		for _, o := range options {
			if strings.EqualFold(o, s) {
				out = o
				return nil
			}
		}
		return errors.InvalidInput("choice", "%q is not one of the options", s)
	})
	return out, err
}

// Collect runs the full question sequence: unit cost, room template, then
// quantities for either the template room or each custom room.
func (p *Prompter) Collect(ctx context.Context, cfg *config.Config) (*session.Request, error) {
	symbol := cfg.Currency.Symbol()

	unitCost, err := p.Decimal(ctx, fmt.Sprintf("Enter Cost per Unit (%s/kWh)", strings.TrimSpace(symbol)),
		decimal.NewFromFloat(config.MinUnitCost), decimal.NewFromFloat(cfg.Estimate.UnitCost))
	if err != nil {
		return nil, err
	}

	choice, err := p.Choice(ctx, "Select Room Template", p.templates.Choices(), catalog.Custom)
	if err != nil {
		return nil, err
	}

	req := &session.Request{
		UnitCost:    unitCost,
		HoursPerDay: cfg.Estimate.HoursPerDay,
		Currency:    cfg.Currency,
	}

	if choice == catalog.Custom {
		req.Mode = session.ModeCustom
		req.Rooms, err = p.customRooms(ctx)
	} else {
		req.Mode = session.ModeTemplate
		var room types.RoomInput
		room, err = p.templateRoom(ctx, choice)
		req.Rooms = []types.RoomInput{room}
	}
	if err != nil {
		return nil, err
	}

	p.logger.Debug("request collected", zap.String("mode", string(req.Mode)), zap.Int("rooms", len(req.Rooms)))
	return req, nil
}

func (p *Prompter) templateRoom(ctx context.Context, name string) (types.RoomInput, error) {
	t, err := p.templates.Lookup(name)
	if err != nil {
		return types.RoomInput{}, err
	}

	fmt.Fprintf(p.writer, "\n%s Configuration\n", t.Name)
	overrides := make(types.Quantities, len(t.Entries))
	for _, e := range t.Entries {
		qty, err := p.Int(ctx, fmt.Sprintf("Number of %ss", e.Appliance), 0, e.Quantity)
		if err != nil {
			return types.RoomInput{}, err
		}
		overrides[e.Appliance] = qty
	}
	return session.TemplateRoom(p.templates, name, overrides)
}

func (p *Prompter) customRooms(ctx context.Context) ([]types.RoomInput, error) {
	n, err := p.Int(ctx, "Number of Rooms", 1, 1)
	if err != nil {
		return nil, err
	}

	rooms := make([]types.RoomInput, 0, n)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(p.writer, "\nRoom %d\n", i)
		q := make(types.Quantities, p.catalog.Len())
		for _, spec := range p.catalog.All() {
			fmt.Fprintf(p.writer, "  (%s)\n", p.catalog.Describe(spec.Name))
			qty, err := p.Int(ctx, fmt.Sprintf("Number of %ss in Room %d", spec.Name, i), 0, 0)
			if err != nil {
				return nil, err
			}
			q[spec.Name] = qty
		}
		rooms = append(rooms, session.CustomRoom(i, q))
	}
	return rooms, nil
}
