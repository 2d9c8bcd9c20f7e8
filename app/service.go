// Package app wires the configuration into a running service: planner, HTTP
// endpoint, metrics sinks and the optional plan broadcast.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	apiplan "github.com/abrokate/powerplant-coding-challenge/api/plan"
	"github.com/abrokate/powerplant-coding-challenge/config"
	coremetrics "github.com/abrokate/powerplant-coding-challenge/core/metrics"
	"github.com/abrokate/powerplant-coding-challenge/core/plan"
	"github.com/abrokate/powerplant-coding-challenge/infra/logger"
	"github.com/abrokate/powerplant-coding-challenge/infra/metrics"
	"github.com/abrokate/powerplant-coding-challenge/infra/mqtt"
	"github.com/abrokate/powerplant-coding-challenge/internal/eventbus"
)

// Service runs the production-plan API.
type Service struct {
	planner  *plan.Planner
	srv      *http.Server
	bus      *eventbus.Bus
	pub      mqtt.Publisher
	log      logger.Logger
	promAddr string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	var alloc plan.Allocator = plan.MeritAllocator{}
	if cfg.Dispatch.Strategy == "lp" {
		alloc = plan.NewLPAllocator()
	}

	bus := eventbus.New()
	planner := plan.NewPlanner(alloc, logger.New("planner"), sink, bus)

	mux := http.NewServeMux()
	mux.Handle("/productionplan", apiplan.NewHandler(planner, logger.New("api")))
	srv := &http.Server{Addr: cfg.API.Addr, Handler: mux}

	var pub mqtt.Publisher
	if cfg.MQTT.Enabled {
		pub, err = mqtt.NewPahoPublisher(cfg.MQTT, logger.New("plan-publisher"))
		if err != nil {
			return nil, fmt.Errorf("mqtt publisher: %w", err)
		}
	}

	promAddr := ""
	if cfg.Metrics.PrometheusEnabled() {
		promAddr = cfg.Metrics.PrometheusAddr
	}

	return &Service{
		planner:  planner,
		srv:      srv,
		bus:      bus,
		pub:      pub,
		log:      logg,
		promAddr: promAddr,
	}, nil
}

// Planner exposes the wired planner, mainly for one-shot CLI use.
func (s *Service) Planner() *plan.Planner { return s.planner }

// Run starts the service and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.pub != nil {
		sub := s.bus.Subscribe()
		go s.forwardPlans(ctx, sub)
	}
	if s.promAddr != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("http shutdown: %v", err)
		}
	}()
	s.log.Infof("production plan API listening on %s", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// forwardPlans relays computed plans from the event bus to the broadcast
// publisher. Broadcast failures are logged, never propagated to requests.
func (s *Service) forwardPlans(ctx context.Context, sub <-chan eventbus.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub:
			if !ok {
				return
			}
			pc, ok := ev.(plan.PlanComputed)
			if !ok {
				continue
			}
			msg := mqtt.PlanMessage{
				PlanID:     pc.PlanID,
				Load:       pc.Load,
				Strategy:   pc.Strategy,
				ComputedAt: pc.ComputedAt,
				Plan:       pc.Assignments,
			}
			if err := s.pub.PublishPlan(msg); err != nil {
				s.log.Errorf("broadcast plan %s: %v", pc.PlanID, err)
			}
		}
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	if s.pub != nil {
		return s.pub.Close()
	}
	return nil
}
