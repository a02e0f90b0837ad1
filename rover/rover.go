package rover

import (
	"fmt"

	"github.com/katalvlaran/roverrun/terrain"
)

// Apply returns the localisation after executing m. Turns change only the
// orientation, translations change only the position. The result may lie
// outside any grid; check it with Valid.
func (l Localisation) Apply(m Move) Localisation {
	if int(m) >= len(moveSteps) {
		return l
	}
	if t := moveTurns[m]; t != 0 {
		return Localisation{Pos: l.Pos, Ori: l.Ori.Rotate(t)}
	}
	d, n := heading[l.Ori%4], moveSteps[m]
	return Localisation{Pos: l.Pos.Offset(d[0]*n, d[1]*n), Ori: l.Ori}
}

// Valid reports whether the rover stands on g.
func (l Localisation) Valid(g *terrain.Grid) bool {
	return g.Contains(l.Pos)
}

// Step is one executed move and where it left the rover.
type Step struct {
	Move  Move
	After Localisation
	Soil  terrain.Soil
	Cost  terrain.Cost
}

// Trace is the outcome of Replay.
type Trace struct {
	Start Localisation
	Steps []Step
}

// End returns the last localisation reached.
func (t *Trace) End() Localisation {
	if len(t.Steps) == 0 {
		return t.Start
	}
	return t.Steps[len(t.Steps)-1].After
}

// Replay executes moves from start on g, one after the other, and records
// the soil and cost under the rover after each move. It stops at the first
// move that leaves the map (ErrOffMap) or ends on a crevasse (ErrCrevasse);
// the returned trace holds every step completed before that.
// Replay only reads g.
func Replay(g *terrain.Grid, start Localisation, moves []Move) (*Trace, error) {
	if !start.Valid(g) {
		return nil, fmt.Errorf("%w: %v on %d×%d map", ErrInvalidStart, start.Pos, g.Width, g.Height)
	}
	tr := &Trace{Start: start, Steps: make([]Step, 0, len(moves))}
	cur := start
	for i, m := range moves {
		next := cur.Apply(m)
		if !next.Valid(g) {
			return tr, fmt.Errorf("%w: move %d (%v) from %v", ErrOffMap, i+1, m, cur)
		}
		soil := g.SoilAt(next.Pos)
		if soil == terrain.Crevasse {
			return tr, fmt.Errorf("%w: move %d (%v) to %v", ErrCrevasse, i+1, m, next.Pos)
		}
		tr.Steps = append(tr.Steps, Step{Move: m, After: next, Soil: soil, Cost: g.CostAt(next.Pos)})
		cur = next
	}
	return tr, nil
}
