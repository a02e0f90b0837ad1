package costfield

import (
	"github.com/katalvlaran/roverrun/terrain"
)

// Repair sweeps g once in row-major order and re-relaxes, without a queue,
// every non-crevasse cell whose cost is not finalized or lies above
// terrain.UnreachableThreshold. It returns the number of cells re-relaxed.
//
// One sweep only: a repaired cell may still depend on a stale neighbour
// further down the sweep.
func Repair(g *terrain.Grid, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	o := buildOptions(opts)
	r := relaxer{grid: g, onEnqueue: o.OnEnqueue}

	repaired := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Soil(x, y) == terrain.Crevasse || !g.Cost(x, y).Unreachable() {
				continue
			}
			p := terrain.Position{X: x, Y: y}
			c, err := r.relax(p)
			if err != nil {
				return repaired, err
			}
			g.SetCostAt(p, c)
			repaired++
			o.OnFinalize(p, c)
		}
	}
	o.Logger.Debug("costfield: repair sweep finished", "repaired", repaired)

	return repaired, nil
}

// Compute runs Propagate followed by Repair and returns the combined result.
// When Propagate fails, Repair is skipped and the error is returned as is.
func Compute(g *terrain.Grid, opts ...Option) (*Result, error) {
	res, err := Propagate(g, opts...)
	if err != nil {
		return res, err
	}
	res.Repaired, err = Repair(g, opts...)

	return res, err
}
