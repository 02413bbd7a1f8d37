package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/seantiz/letterfreq/internal/model"
)

// ErrInvalidWorkerCount is returned when the worker count is not positive.
var ErrInvalidWorkerCount = errors.New("invalid worker count")

// Strategy selects how workers combine their counts.
type Strategy string

const (
	// StrategyMerge gives every worker a private histogram and sums them
	// after all workers have joined. No lock is taken while counting.
	StrategyMerge Strategy = model.StrategyMerge
	// StrategyShared has all workers increment one histogram guarded by a
	// mutex. Each increment is a single locked read-modify-write.
	StrategyShared Strategy = model.StrategyShared
)

// ParseStrategy converts a strategy name to a Strategy. The empty string
// selects StrategyMerge.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyMerge:
		return StrategyMerge, nil
	case StrategyShared:
		return StrategyShared, nil
	default:
		return "", fmt.Errorf("unknown strategy %q", s)
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithStrategy selects the accumulation strategy.
func WithStrategy(s Strategy) Option {
	return func(e *Engine) {
		e.strategy = s
	}
}

// WithFilter restricts counting to runes for which keep returns true.
// A nil keep counts every rune.
func WithFilter(keep func(rune) bool) Option {
	return func(e *Engine) {
		e.keep = keep
	}
}

// WithClock overrides the time source used for run timestamps and durations.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Engine counts rune frequencies across a fixed number of goroutines.
// An Engine holds no per-run state and is safe for concurrent use.
type Engine struct {
	logger   *slog.Logger
	strategy Strategy
	keep     func(rune) bool
	now      func() time.Time
}

// NewEngine creates a frequency engine. A nil logger discards all output.
func NewEngine(logger *slog.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	e := &Engine{
		logger:   logger,
		strategy: StrategyMerge,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.strategy != StrategyShared {
		e.strategy = StrategyMerge
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// Frequency counts every rune in lines using workers goroutines and the
// merge strategy. It fails with ErrInvalidWorkerCount if workers < 1.
func Frequency(lines []string, workers int) (Histogram, error) {
	return NewEngine(nil).Count(lines, workers)
}

// Count returns the combined histogram of lines counted by workers goroutines.
func (e *Engine) Count(lines []string, workers int) (Histogram, error) {
	_, h, err := e.Run(lines, workers)
	return h, err
}

// Run counts lines like Count and also returns a record describing the run.
// The histogram is returned only after every worker has finished; on error
// no histogram is returned.
func (e *Engine) Run(lines []string, workers int) (model.Run, Histogram, error) {
	strategy := string(e.strategy)
	if workers <= 0 {
		runsTotal.WithLabelValues(strategy, model.StatusRejected).Inc()
		e.logger.Warn("rejected frequency run", "workers", workers, "lines", len(lines))
		return model.Run{}, nil, fmt.Errorf("%w: %d", ErrInvalidWorkerCount, workers)
	}

	start := e.now()
	run := model.Run{
		ID:        model.NewID(),
		Strategy:  strategy,
		Workers:   workers,
		Lines:     len(lines),
		StartedAt: start.UTC(),
	}
	workersRequested.Observe(float64(workers))

	chunks := Partition(len(lines), workers)
	largest := 0
	if len(chunks) > 0 {
		largest = chunks[0].Len()
	}
	e.logger.Debug("partitioned input",
		"run_id", run.ID,
		"workers", workers,
		"active_workers", len(chunks),
		"chunk_size", largest,
	)

	var (
		h   Histogram
		err error
	)
	switch e.strategy {
	case StrategyShared:
		h, err = e.countShared(lines, chunks)
	default:
		h, err = e.countMerge(lines, chunks)
	}
	run.Duration = e.now().Sub(start)

	if err != nil {
		runsTotal.WithLabelValues(strategy, model.StatusFailed).Inc()
		e.logger.Error("frequency run failed", "run_id", run.ID, "error", err)
		return model.Run{}, nil, fmt.Errorf("count run %s: %w", run.ID, err)
	}

	run.Runes = h.Total()
	run.Distinct = len(h)

	runsTotal.WithLabelValues(strategy, model.StatusCompleted).Inc()
	linesTotal.Add(float64(run.Lines))
	runesTotal.Add(float64(run.Runes))
	runDuration.Observe(run.Duration.Seconds())

	e.logger.Info("frequency run completed",
		"run_id", run.ID,
		"strategy", strategy,
		"workers", workers,
		"lines", run.Lines,
		"runes", run.Runes,
		"distinct", run.Distinct,
		"duration_ms", run.Duration.Milliseconds(),
	)
	return run, h, nil
}

// countMerge counts each chunk into a private histogram and sums them once
// every worker has returned.
func (e *Engine) countMerge(lines []string, chunks []Chunk) (Histogram, error) {
	parts := make([]Histogram, len(chunks))

	var g errgroup.Group
	for i, c := range chunks {
		g.Go(func() error {
			if err := c.check(len(lines)); err != nil {
				return fmt.Errorf("worker %d: %w", i, err)
			}
			h := make(Histogram)
			for _, line := range lines[c.Start:c.End] {
				for _, r := range line {
					if e.keep != nil && !e.keep(r) {
						continue
					}
					h[r]++
				}
			}
			parts[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return MergeAll(parts...), nil
}

// countShared counts every chunk into one histogram behind a mutex.
func (e *Engine) countShared(lines []string, chunks []Chunk) (Histogram, error) {
	var mu sync.Mutex
	shared := make(Histogram)

	var g errgroup.Group
	for i, c := range chunks {
		g.Go(func() error {
			if err := c.check(len(lines)); err != nil {
				return fmt.Errorf("worker %d: %w", i, err)
			}
			for _, line := range lines[c.Start:c.End] {
				for _, r := range line {
					if e.keep != nil && !e.keep(r) {
						continue
					}
					mu.Lock()
					shared[r]++
					mu.Unlock()
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return shared, nil
}
