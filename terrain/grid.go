package terrain

import "fmt"

// neighborOffsets lists the axis-aligned neighbours in visiting order:
// left, right, up, down. The order is part of the propagation contract.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a Width×Height map of soils and movement costs.
// soils[y*Width+x] and costs[y*Width+x] describe cell (x, y).
type Grid struct {
	Width, Height int
	soils         []Soil
	costs         []Cost
}

// NewGrid allocates a grid of the given dimensions. Every soil starts as
// BaseStation (code 0) and every cost as Unknown; the loader overwrites the
// soils before any propagation runs.
// Returns ErrInvalidDimensions or ErrAllocation; on error no Grid is built.
// Complexity: O(W×H) time and memory.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrInvalidDimensions, width, height)
	}
	if width > MaxCells/height {
		return nil, fmt.Errorf("%w: %d×%d exceeds %d cells", ErrAllocation, width, height, MaxCells)
	}
	n := width * height
	// Both buffers exist before the Grid does; a failure above leaves
	// nothing for the caller to release.
	soils := make([]Soil, n)
	costs := make([]Cost, n)

	return &Grid{Width: width, Height: height, soils: soils, costs: costs}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Contains reports whether p lies within the grid boundaries.
func (g *Grid) Contains(p Position) bool {
	return g.InBounds(p.X, p.Y)
}

// Cells returns Width×Height.
func (g *Grid) Cells() int {
	return g.Width * g.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Position converts a row-major index back to a coordinate.
// Complexity: O(1).
func (g *Grid) Position(idx int) Position {
	return Position{X: idx % g.Width, Y: idx / g.Width}
}

// mustIndex returns the buffer index of (x,y) or panics.
func (g *Grid) mustIndex(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("terrain: cell (%d,%d) outside %d×%d grid", x, y, g.Width, g.Height))
	}
	return g.Index(x, y)
}

// Soil returns the soil at (x,y). Panics when out of bounds.
func (g *Grid) Soil(x, y int) Soil {
	return g.soils[g.mustIndex(x, y)]
}

// SetSoil stores the soil at (x,y). Panics when out of bounds.
func (g *Grid) SetSoil(x, y int, s Soil) {
	g.soils[g.mustIndex(x, y)] = s
}

// Cost returns the cost at (x,y). Panics when out of bounds.
func (g *Grid) Cost(x, y int) Cost {
	return g.costs[g.mustIndex(x, y)]
}

// SetCost stores the cost at (x,y). Panics when out of bounds.
func (g *Grid) SetCost(x, y int, c Cost) {
	g.costs[g.mustIndex(x, y)] = c
}

// SoilAt is Soil for a Position.
func (g *Grid) SoilAt(p Position) Soil {
	return g.Soil(p.X, p.Y)
}

// CostAt is Cost for a Position.
func (g *Grid) CostAt(p Position) Cost {
	return g.Cost(p.X, p.Y)
}

// SetCostAt is SetCost for a Position.
func (g *Grid) SetCostAt(p Position, c Cost) {
	g.SetCost(p.X, p.Y, c)
}

// Costs returns a row-major copy of the cost buffer.
func (g *Grid) Costs() []Cost {
	out := make([]Cost, len(g.costs))
	copy(out, g.costs)
	return out
}

// Soils returns a row-major copy of the soil buffer.
func (g *Grid) Soils() []Soil {
	out := make([]Soil, len(g.soils))
	copy(out, g.soils)
	return out
}

// ResetCosts marks every cell Unknown again.
func (g *Grid) ResetCosts() {
	for i := range g.costs {
		g.costs[i] = Cost{}
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		Width:  g.Width,
		Height: g.Height,
		soils:  make([]Soil, len(g.soils)),
		costs:  make([]Cost, len(g.costs)),
	}
	copy(c.soils, g.soils)
	copy(c.costs, g.costs)

	return c
}

// FindBaseStation scans the soils in row-major order and returns the first
// BaseStation cell, or ErrBaseStationNotFound.
// Complexity: O(W×H).
func (g *Grid) FindBaseStation() (Position, error) {
	for i, s := range g.soils {
		if s == BaseStation {
			return g.Position(i), nil
		}
	}
	return Position{}, ErrBaseStationNotFound
}

// Neighbors returns the in-bounds axis-aligned neighbours of p in the
// order left, right, up, down.
func (g *Grid) Neighbors(p Position) []Position {
	return g.AppendNeighbors(make([]Position, 0, len(neighborOffsets)), p)
}

// AppendNeighbors appends the neighbours of p to dst, in Neighbors order,
// so hot loops can reuse one buffer.
func (g *Grid) AppendNeighbors(dst []Position, p Position) []Position {
	for _, d := range neighborOffsets {
		n := p.Offset(d[0], d[1])
		if g.Contains(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// Reachable reports whether the rover can get to (x,y) from the base
// station: the cell is in bounds, not a crevasse, and its cost is finalized
// at or below UnreachableThreshold.
func (g *Grid) Reachable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	i := g.Index(x, y)
	return g.soils[i] != Crevasse && !g.costs[i].Unreachable()
}
