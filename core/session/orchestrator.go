package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"home-load/core/advisor"
	"home-load/core/catalog"
	"home-load/core/cost"
	"home-load/core/load"
	"home-load/core/types"
)

// Orchestrator runs the calculation sequence for a request
type Orchestrator struct {
	catalog *catalog.Catalog
	calc    *load.Calculator
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = l
	}
}

// WithCatalog replaces the appliance catalog
func WithCatalog(c *catalog.Catalog) Option {
	return func(o *Orchestrator) {
		o.catalog = c
	}
}

// WithClock replaces the time source used to stamp summaries
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

// WithIDSource replaces the session id generator
func WithIDSource(newID func() string) Option {
	return func(o *Orchestrator) {
		o.newID = newID
	}
}

// New creates an orchestrator over the built-in catalog
func New(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		catalog: catalog.Default(),
		logger:  zap.NewNop(),
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(o)
	}
	o.calc = load.NewCalculator(o.catalog)
	return o
}

// Run validates req, assesses every room, then the whole installation.
func (o *Orchestrator) Run(ctx context.Context, req *Request) (*types.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(o.catalog); err != nil {
		return nil, err
	}

	id := o.newID()
	log := o.logger.With(zap.String("session_id", id), zap.String("mode", string(req.Mode)))

	summary := &types.Summary{
		SessionID:   id,
		InputHash:   req.Fingerprint().Hex(),
		Rooms:       make([]types.RoomResult, 0, len(req.Rooms)),
		UnitCost:    req.UnitCost,
		HoursPerDay: req.HoursPerDay,
		Currency:    req.Currency,
		GeneratedAt: o.now(),
	}
	if summary.Currency == "" {
		summary.Currency = types.CurrencyPKR
	}

	for _, room := range req.Rooms {
		result, err := o.assessRoom(room)
		if err != nil {
			return nil, fmt.Errorf("room %q: %w", room.Label, err)
		}
		log.Debug("room assessed",
			zap.String("room", result.Label),
			zap.Float64("load_kw", result.LoadKw),
			zap.Float64("amperes", result.Amperes),
			zap.String("breaker", result.Breaker))
		if result.Overload {
			log.Warn("room overloaded", zap.String("room", result.Label), zap.Float64("amperes", result.Amperes))
		}
		summary.Rooms = append(summary.Rooms, result)
		summary.TotalLoadKw += result.LoadKw
	}

	whole := advisor.ForLoad(summary.TotalLoadKw)
	summary.TotalAmperes = whole.Amperes
	summary.MainBreaker = whole.Breaker()
	summary.MainCable = whole.Cable()
	summary.Overload = whole.Overload
	if whole.Overload {
		log.Warn("installation overloaded", zap.Float64("amperes", whole.Amperes), zap.String("main_breaker", summary.MainBreaker))
	}

	projection := cost.NewEstimator(req.HoursPerDay).Project(summary.TotalLoadKw, req.UnitCost)
	summary.MonthlyCost = projection.Cost
	summary.MonthlyKwh = projection.MonthlyKwh

	log.Info("session complete",
		zap.Int("rooms", len(summary.Rooms)),
		zap.Float64("total_kw", summary.TotalLoadKw),
		zap.String("main_breaker", summary.MainBreaker),
		zap.String("monthly_cost", summary.MonthlyCost.StringFixed(2)),
		zap.String("formula", projection.Formula))

	return summary, nil
}

func (o *Orchestrator) assessRoom(room types.RoomInput) (types.RoomResult, error) {
	kw, err := o.calc.TotalLoad(room.Quantities)
	if err != nil {
		return types.RoomResult{}, err
	}
	lines, err := o.calc.Breakdown(room.Quantities)
	if err != nil {
		return types.RoomResult{}, err
	}
	rec := advisor.ForLoad(kw)
	return types.RoomResult{
		Label:    room.Label,
		LoadKw:   kw,
		Amperes:  rec.Amperes,
		Breaker:  rec.Breaker(),
		Cable:    rec.Cable(),
		Overload: rec.Overload,
		Lines:    lines,
	}, nil
}
