package costfield

import (
	"fmt"

	"github.com/katalvlaran/roverrun/fifo"
	"github.com/katalvlaran/roverrun/terrain"
)

// relaxer carries what one relaxation needs. The neighbour buffer is
// reused across calls.
type relaxer struct {
	grid      *terrain.Grid
	queue     *fifo.Queue[terrain.Position] // nil: pure local relaxation
	onEnqueue func(p terrain.Position)
	nbrs      []terrain.Position
}

// Relax computes the cost of cell p from its neighbours' current costs.
//
// With a non-nil q, every Unknown neighbour is enqueued and marked Pending
// on the way. Relax does not write p's own cost; the caller does.
//
// The base station relaxes to 0. Any other cell relaxes to the cheapest
// finalized neighbour plus its own penalty; with no finalized neighbour
// its current cost is returned unchanged.
// Returns ErrNilGrid, or ErrQueueOverflow if q runs out of room.
func Relax(g *terrain.Grid, p terrain.Position, q *fifo.Queue[terrain.Position]) (terrain.Cost, error) {
	if g == nil {
		return terrain.Cost{}, ErrNilGrid
	}
	r := relaxer{grid: g, queue: q, onEnqueue: func(terrain.Position) {}}
	return r.relax(p)
}

func (r *relaxer) relax(p terrain.Position) (terrain.Cost, error) {
	var best terrain.Cost
	r.nbrs = r.grid.AppendNeighbors(r.nbrs[:0], p)
	for _, n := range r.nbrs {
		c := r.grid.CostAt(n)
		switch c.State {
		case terrain.Finalized:
			if best.State != terrain.Finalized || c.Value < best.Value {
				best = c
			}
		case terrain.Unknown:
			if r.queue == nil {
				continue
			}
			if err := r.queue.Enqueue(n); err != nil {
				return terrain.Cost{}, fmt.Errorf("%w: queueing %v: %w", ErrQueueOverflow, n, err)
			}
			r.grid.SetCostAt(n, terrain.Cost{State: terrain.Pending})
			r.onEnqueue(n)
		}
	}

	soil := r.grid.SoilAt(p)
	if soil == terrain.BaseStation {
		return terrain.Known(0), nil
	}
	if best.State != terrain.Finalized {
		return r.grid.CostAt(p), nil
	}
	return best.Add(soil.Penalty()), nil
}
