package costfield

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/roverrun/terrain"
)

// Sentinel errors for cost propagation.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("costfield: grid is nil")

	// ErrMissingBaseStation is returned when no cell is a base station.
	ErrMissingBaseStation = errors.New("costfield: no base station in grid")

	// ErrQueueOverflow signals a cell queued more often than the grid has
	// cells. It cannot happen while the Pending discipline holds.
	ErrQueueOverflow = errors.New("costfield: expansion queue overflow")
)

// Option configures a propagation run via functional arguments.
type Option func(*Options)

// Options holds callbacks and the logger for a run.
type Options struct {
	// OnEnqueue is called after a cell is queued (the base station included).
	OnEnqueue func(p terrain.Position)

	// OnDequeue is called right before a queued cell is relaxed.
	OnDequeue func(p terrain.Position)

	// OnFinalize is called after a cost is written, by Propagate and Repair.
	OnFinalize func(p terrain.Position, c terrain.Cost)

	// Logger receives a debug summary per phase.
	Logger *slog.Logger
}

// DefaultOptions returns no-op hooks and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		OnEnqueue:  func(terrain.Position) {},
		OnDequeue:  func(terrain.Position) {},
		OnFinalize: func(terrain.Position, terrain.Cost) {},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p terrain.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(p terrain.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnFinalize registers a callback to run after each cost write.
func WithOnFinalize(fn func(p terrain.Position, c terrain.Cost)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// WithLogger sets the logger for run summaries.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Result summarises a run.
//   - Base: where propagation started.
//   - Enqueued: cells put in the queue, the base station included.
//   - Processed: cells dequeued and relaxed.
//   - Repaired: cells rewritten by the correction sweep (Compute only).
type Result struct {
	Base      terrain.Position
	Enqueued  int
	Processed int
	Repaired  int
}
