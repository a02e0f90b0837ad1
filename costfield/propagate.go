package costfield

import (
	"fmt"

	"github.com/katalvlaran/roverrun/fifo"
	"github.com/katalvlaran/roverrun/terrain"
)

// walker encapsulates mutable propagation state.
type walker struct {
	grid  *terrain.Grid
	opts  Options
	queue *fifo.Queue[terrain.Position]
	relax relaxer
	res   *Result
}

// Propagate fills g's cost buffer by expanding outward from the base
// station in FIFO order. Costs must all be Unknown on entry.
// Returns ErrNilGrid, ErrMissingBaseStation (cost buffer untouched) or
// ErrQueueOverflow.
func Propagate(g *terrain.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := buildOptions(opts)

	base, err := g.FindBaseStation()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingBaseStation, err)
	}
	q, err := fifo.New[terrain.Position](g.Cells())
	if err != nil {
		return nil, fmt.Errorf("costfield: expansion queue: %w", err)
	}

	w := &walker{
		grid:  g,
		opts:  o,
		queue: q,
		res:   &Result{Base: base},
	}
	w.relax = relaxer{grid: g, queue: q, onEnqueue: o.OnEnqueue}

	// The base station is queued as-is; its zero cost comes from Relax.
	if err = w.queue.Enqueue(base); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueueOverflow, err)
	}
	o.OnEnqueue(base)

	if err = w.loop(); err != nil {
		return w.res, err
	}
	w.res.Enqueued = w.queue.Total()
	o.Logger.Debug("costfield: propagation finished",
		"base", base.String(),
		"enqueued", w.res.Enqueued,
		"processed", w.res.Processed,
	)

	return w.res, nil
}

// loop relaxes queued cells until the queue drains.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		p, err := w.queue.Dequeue()
		if err != nil {
			return err
		}
		w.opts.OnDequeue(p)

		c, err := w.relax.relax(p)
		if err != nil {
			return err
		}
		w.grid.SetCostAt(p, c)
		w.res.Processed++
		w.opts.OnFinalize(p, c)
	}
	return nil
}
