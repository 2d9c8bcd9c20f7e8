package plan

import (
	"time"

	"github.com/google/uuid"

	"github.com/abrokate/powerplant-coding-challenge/core/logger"
	"github.com/abrokate/powerplant-coding-challenge/core/metrics"
	"github.com/abrokate/powerplant-coding-challenge/internal/eventbus"
)

// PlanComputed is published on the event bus after every successful
// computation so broadcasters can pick it up without coupling to the engine.
type PlanComputed struct {
	PlanID      string
	Load        float64
	Strategy    string
	Assignments []Assignment
	Elapsed     time.Duration
	ComputedAt  time.Time
}

// Planner turns dispatch requests into production plans. The computation
// itself is pure; logging, metrics and event publication are the only side
// effects. A nil sink or bus disables the respective concern.
type Planner struct {
	alloc    Allocator
	strategy string
	log      logger.Logger
	sink     metrics.MetricsSink
	bus      eventbus.EventBus
}

// NewPlanner assembles a planner around the given allocator. A nil allocator
// defaults to the merit-order strategy.
func NewPlanner(alloc Allocator, log logger.Logger, sink metrics.MetricsSink, bus eventbus.EventBus) *Planner {
	if alloc == nil {
		alloc = MeritAllocator{}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	strategy := "custom"
	if named, ok := alloc.(interface{ Name() string }); ok {
		strategy = named.Name()
	}
	return &Planner{alloc: alloc, strategy: strategy, log: log, sink: sink, bus: bus}
}

// ComputePlan computes the production plan for a validated request. It
// returns one assignment per plant in request order, or an InfeasibleError
// when no constraint-satisfying plan exists.
func (p *Planner) ComputePlan(req Request) ([]Assignment, error) {
	start := time.Now()
	planID := uuid.NewString()

	evaluated := EvaluateFleet(req.Plants, req.Fuels)
	sorted := MeritOrder(evaluated)

	order := make([]string, len(sorted))
	for i, ep := range sorted {
		order[i] = ep.Name
	}
	p.log.Debugw("merit order computed", map[string]any{
		"plan_id": planID,
		"load_mw": req.Load,
		"order":   order,
	})

	raw, err := p.alloc.Allocate(sorted, req.Load)
	if err != nil {
		p.log.Warnf("plan %s rejected: %v", planID, err)
		p.record(planID, req, nil, time.Since(start), false)
		return nil, err
	}

	assignments := Finalize(sorted, raw, req.Load)
	elapsed := time.Since(start)
	p.log.Infof("plan %s computed for %g MW across %d plants in %s", planID, req.Load, len(req.Plants), elapsed)
	p.record(planID, req, assignments, elapsed, true)

	if p.bus != nil {
		p.bus.Publish(PlanComputed{
			PlanID:      planID,
			Load:        req.Load,
			Strategy:    p.strategy,
			Assignments: assignments,
			Elapsed:     elapsed,
			ComputedAt:  start,
		})
	}
	return assignments, nil
}

func (p *Planner) record(planID string, req Request, assignments []Assignment, elapsed time.Duration, feasible bool) {
	ev := metrics.PlanEvent{
		PlanID:     planID,
		Load:       req.Load,
		Strategy:   p.strategy,
		PlantCount: len(req.Plants),
		Feasible:   feasible,
		Elapsed:    elapsed,
		Time:       time.Now(),
	}
	if len(assignments) > 0 {
		ev.Assignments = make(map[string]float64, len(assignments))
		for _, a := range assignments {
			ev.Assignments[a.Name] = a.Power
		}
	}
	if err := p.sink.RecordPlan(ev); err != nil {
		p.log.Errorf("record plan %s: %v", planID, err)
	}
}
