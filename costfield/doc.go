// Package costfield computes, for every cell of a terrain.Grid, the
// accumulated movement cost from the base station.
//
// What
//
//   - Relax recomputes one cell: the cheapest finalized neighbour (left,
//     right, up, down; no diagonals) plus the cell's own soil penalty.
//     The base station always relaxes to 0. Given a queue, Relax also
//     enqueues every Unknown neighbour and marks it Pending so it is never
//     queued twice.
//   - Propagate seeds a bounded FIFO with the base station and relaxes
//     cells in dequeue order until the queue drains. Every cell is
//     enqueued at most once, so a run enqueues at most Width×Height cells.
//   - Repair makes one row-major sweep and re-relaxes, without a queue,
//     every non-crevasse cell whose cost is still above
//     terrain.UnreachableThreshold.
//   - Compute runs Propagate then Repair.
//
// Ordering
//
//	Propagation is a single FIFO pass followed by a single repair sweep,
//	not a relaxation to a fixed point. A cell is finalized from whichever
//	neighbours were finalized when it was dequeued; a cheaper neighbour
//	finalized later does not revisit it. Costs are therefore upper bounds
//	that are exact on trees and on most open terrain, and may be loose on
//	grids where the FIFO order closes a cycle from the expensive side.
//
// Crevasses
//
//	Crevasse cells are enqueued and relaxed like any other cell, which
//	keeps propagation flowing behind them, but their 10000 penalty pushes
//	every cost derived through them above terrain.UnreachableThreshold.
//	Repair never touches a crevasse.
//
// Hooks
//
//	WithOnEnqueue, WithOnDequeue and WithOnFinalize observe the run;
//	WithLogger receives a debug summary.
//
// Errors
//
//   - ErrNilGrid            if the grid pointer is nil.
//   - ErrMissingBaseStation if the grid has no BaseStation cell; the cost
//     buffer is left untouched. Also matches terrain.ErrBaseStationNotFound.
//   - ErrQueueOverflow      if a cell would be queued beyond capacity; this
//     is an internal consistency fault and wraps fifo.ErrFull.
//
// Complexity: O(W×H) time, O(W×H) memory for the queue.
package costfield
