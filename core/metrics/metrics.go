package metrics

import "time"

// PlanEvent captures one plan computation for observability sinks.
type PlanEvent struct {
	PlanID     string
	Load       float64
	Strategy   string
	PlantCount int
	Feasible   bool
	Elapsed    time.Duration
	Time       time.Time
	// Assignments maps plant name to granted MW. Empty when infeasible.
	Assignments map[string]float64
}

// MetricsSink records plan computations.
type MetricsSink interface {
	RecordPlan(ev PlanEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPlan(PlanEvent) error { return nil }
