package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/andresuchdata/chainsight/internal/cache"
	"github.com/andresuchdata/chainsight/internal/pipeline"
)

// ErrRunInProgress is returned when a trigger arrives while a run is active.
var ErrRunInProgress = errors.New("pipeline run already in progress")

// RunState is a snapshot of the most recent pipeline run.
type RunState struct {
	Status     string              `json:"status"`
	StartedAt  time.Time           `json:"started_at,omitempty"`
	FinishedAt time.Time           `json:"finished_at,omitempty"`
	Error      string              `json:"error,omitempty"`
	Report     *pipeline.RunReport `json:"report,omitempty"`
}

// PipelineService runs the analytics pipeline in the background and tracks
// the state of the latest run. At most one run is active at a time.
type PipelineService struct {
	env   *pipeline.Env
	cache cache.DashboardCache

	mu      sync.Mutex
	running bool
	state   RunState
}

func NewPipelineService(env *pipeline.Env, cacheImpl cache.DashboardCache) *PipelineService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopDashboardCache()
	}
	return &PipelineService{
		env:   env,
		cache: cacheImpl,
		state: RunState{Status: "idle"},
	}
}

// Trigger starts a full pipeline run in the background.
func (s *PipelineService) Trigger(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrRunInProgress
	}
	s.running = true
	s.state = RunState{Status: "running", StartedAt: time.Now()}
	s.mu.Unlock()

	go s.run(context.WithoutCancel(ctx))
	return nil
}

func (s *PipelineService) run(ctx context.Context) {
	runner := pipeline.NewRunner(s.env, pipeline.Full()...)
	report, err := runner.Run(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.state.FinishedAt = time.Now()
	s.state.Report = report
	if err != nil {
		s.state.Status = "failed"
		s.state.Error = err.Error()
		log.Error().Err(err).Msg("background pipeline run failed")
		return
	}
	s.state.Status = "completed"

	// Dashboards changed on disk, cached copies are stale.
	if err := s.cache.InvalidateAll(ctx); err != nil {
		log.Warn().Err(err).Msg("could not invalidate dashboard cache after run")
	}
}

// Status returns a snapshot of the latest run.
func (s *PipelineService) Status() RunState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
