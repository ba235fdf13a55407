// Package simulation drives the navigation core headlessly. Each session wires an orchestrator,
// camera controller, input aggregator and collision resolver to a seeded random input script,
// steps it on a simulated clock, and checks collision soundness and pitch bounds after every frame.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-room/engine/config"
	"github.com/Carmen-Shannon/oxy-room/engine/room"
)

var errCaptureDenied = errors.New("scripted capture denial")

// Runner plays many independent sessions concurrently.
type Runner interface {
	// Run plays every session and collects their results. Sessions run in parallel on a
	// worker pool; each one is single-threaded and owns all of its state.
	//
	// Parameters:
	//   - ctx: cancels the run; sessions stop at the next simulated second
	//
	// Returns:
	//   - Report: per-session results in session order
	//   - error: the context error if the run was cancelled, or a configuration error
	Run(ctx context.Context) (Report, error)

	// Close stops the worker pool. The runner must not be used afterwards.
	Close()
}

type runnerImpl struct {
	layout   *room.Layout
	tuning   config.Tuning
	sessions int
	seed     uint64
	duration time.Duration
	step     time.Duration
	workers  int
	denyRate float64
	logger   *slog.Logger

	// pool is created by the first valid Run and reused by every later one.
	pool     worker.DynamicWorkerPool
	poolOnce sync.Once
}

var _ Runner = &runnerImpl{}

// NewRunner creates a runner. Without options it plays 8 one-minute sessions in the default room.
//
// Parameters:
//   - options: functional options to configure the runner
//
// Returns:
//   - Runner: the newly created runner
func NewRunner(options ...RunnerOption) Runner {
	r := &runnerImpl{
		tuning:   config.Default(),
		sessions: 8,
		seed:     1,
		duration: time.Minute,
		step:     time.Second / 60,
		workers:  max(runtime.NumCPU()-1, 1),
		denyRate: 0.05,
		logger:   slog.Default(),
	}
	for _, opt := range options {
		opt(r)
	}
	if r.layout == nil {
		r.layout = room.Default()
	}
	return r
}

func (r *runnerImpl) Run(ctx context.Context) (Report, error) {
	if r.sessions <= 0 || r.step <= 0 || r.duration < 0 {
		return Report{}, fmt.Errorf("simulation: sessions=%d step=%v duration=%v", r.sessions, r.step, r.duration)
	}
	if err := r.tuning.Validate(); err != nil {
		return Report{}, fmt.Errorf("simulation: %w", err)
	}
	if !r.layout.SpawnClear(r.tuning.CollisionRadius, r.tuning.CollisionPadding) {
		return Report{}, fmt.Errorf("simulation: %w: spawn overlaps an obstacle", room.ErrInvalidLayout)
	}

	r.poolOnce.Do(func() {
		r.pool = worker.NewDynamicWorkerPool(max(r.workers, 1), max(r.sessions, 64), time.Second)
	})
	pool := r.pool
	results := make([]SessionResult, r.sessions)
	errs := make([]error, r.sessions)

	start := time.Now()
	var wg sync.WaitGroup
	for i := range r.sessions {
		wg.Add(1)
		id := i
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				s := newSession(id, r.seed, r.layout, r.tuning, r.step, r.duration, r.denyRate, r.logger)
				results[id], errs[id] = s.run(ctx)
				return nil, errs[id]
			},
		})
	}
	wg.Wait()

	report := Report{Sessions: results}
	r.logger.Info("simulation finished",
		"sessions", r.sessions,
		"frames", report.Frames(),
		"zooms", report.Zooms(),
		"violations", len(report.Violations()),
		"elapsed", time.Since(start),
	)
	if err := errors.Join(errs...); err != nil {
		return report, err
	}
	return report, nil
}

func (r *runnerImpl) Close() {
	if r.pool != nil {
		r.pool.Stop()
	}
}
