package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/abrokate/powerplant-coding-challenge/core/metrics"
)

// PromSink records plan computations as Prometheus metrics.
type PromSink struct {
	plans   *prometheus.CounterVec
	compute *prometheus.HistogramVec
	load    prometheus.Histogram
}

// NewPromSink registers plan metrics on the default Prometheus registerer.
// The /metrics server is started separately with StartPromServer.
func NewPromSink() (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	plans := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "production_plans_total",
		Help: "Total number of production plan computations",
	}, []string{"outcome", "strategy"})
	compute := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "production_plan_compute_seconds",
		Help:    "Time spent computing a production plan",
		Buckets: prometheus.DefBuckets,
	}, []string{"strategy"})
	load := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "production_plan_load_mw",
		Help:    "Requested load per plan in MW",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})

	if err := reg.Register(plans); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			plans = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(compute); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			compute = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(load); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			load = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{plans: plans, compute: compute, load: load}, nil
}

// RecordPlan increments the counters and observes timings for one plan.
func (s *PromSink) RecordPlan(ev coremetrics.PlanEvent) error {
	outcome := "ok"
	if !ev.Feasible {
		outcome = "infeasible"
	}
	s.plans.WithLabelValues(outcome, ev.Strategy).Inc()
	s.compute.WithLabelValues(ev.Strategy).Observe(ev.Elapsed.Seconds())
	s.load.Observe(ev.Load)
	return nil
}
