package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/andresuchdata/chainsight/internal/dataset"
	"github.com/andresuchdata/chainsight/pkg/logger"
)

// Runner executes stages sequentially. A schema problem in any stage aborts
// the run; there is no value in computing on top of malformed inputs.
type Runner struct {
	env    *Env
	stages []Stage
}

// NewRunner builds a runner over the given stages, in order.
func NewRunner(env *Env, stages ...Stage) *Runner {
	return &Runner{env: env, stages: stages}
}

// Full is the standard end-to-end stage order, without the synthetic
// extract.
func Full() []Stage {
	return []Stage{TransformStage{}, PredictStage{}, OptimizeStage{}, DashboardStage{}}
}

// Run executes the stages and returns the aggregated report. The returned
// error is the first stage failure, with the stage name attached.
func (r *Runner) Run(ctx context.Context) (*RunReport, error) {
	run := &RunReport{StartedAt: time.Now()}
	for _, stage := range r.stages {
		log := logger.Log.With().Str("stage", stage.Name()).Logger()
		log.Info().Msg("stage started")

		report, err := stage.Run(ctx, r.env)
		run.Stages = append(run.Stages, report)
		if err != nil {
			if dataset.IsSchemaError(err) {
				log.Error().Err(err).Msg("schema validation failed")
			} else {
				log.Error().Err(err).Msg("stage failed")
			}
			run.CompletedAt = time.Now()
			return run, fmt.Errorf("stage %s: %w", stage.Name(), err)
		}

		ev := log.Info().Dur("elapsed", report.Duration())
		for name, n := range report.Counts {
			ev = ev.Int(name, n)
		}
		ev.Msg("stage completed")
	}
	run.CompletedAt = time.Now()
	return run, nil
}
