package terrain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roverrun/terrain"
)

//----------------------------------------------------------------------------//
// NewGrid
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects bad dimensions without
// returning a partially built grid.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		err  error
	}{
		{"ZeroWidth", 0, 3, terrain.ErrInvalidDimensions},
		{"ZeroHeight", 3, 0, terrain.ErrInvalidDimensions},
		{"Negative", -1, 4, terrain.ErrInvalidDimensions},
		{"TooLarge", terrain.MaxCells, 2, terrain.ErrAllocation},
		{"Overflow", int(^uint(0) >> 1), int(^uint(0) >> 1), terrain.ErrAllocation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := terrain.NewGrid(tc.w, tc.h)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%d,%d) error = %v; want %v", tc.w, tc.h, err, tc.err)
			}
			assert.Nil(t, g)
		})
	}
}

// TestNewGrid_InitialState checks dimensions and that every cost starts Unknown.
func TestNewGrid_InitialState(t *testing.T) {
	g, err := terrain.NewGrid(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, 12, g.Cells())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			assert.Equal(t, terrain.Unknown, g.Cost(x, y).State, "cell (%d,%d)", x, y)
		}
	}
}

//----------------------------------------------------------------------------//
// Accessors and bounds
//----------------------------------------------------------------------------//

func TestInBounds(t *testing.T) {
	g, err := terrain.NewGrid(3, 2)
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
}

func TestAccessors_RoundTrip(t *testing.T) {
	g, err := terrain.NewGrid(3, 2)
	require.NoError(t, err)

	g.SetSoil(2, 1, terrain.Dunes)
	g.SetCost(2, 1, terrain.Known(7))
	assert.Equal(t, terrain.Dunes, g.Soil(2, 1))
	assert.Equal(t, terrain.Known(7), g.Cost(2, 1))
	assert.Equal(t, terrain.Dunes, g.SoilAt(terrain.Position{X: 2, Y: 1}))

	g.SetCostAt(terrain.Position{X: 0, Y: 0}, terrain.Cost{State: terrain.Pending})
	assert.Equal(t, terrain.Pending, g.CostAt(terrain.Position{}).State)
}

func TestAccessors_PanicOutOfRange(t *testing.T) {
	g, err := terrain.NewGrid(2, 2)
	require.NoError(t, err)

	assert.Panics(t, func() { g.Soil(2, 0) })
	assert.Panics(t, func() { g.SetSoil(0, -1, terrain.Plain) })
	assert.Panics(t, func() { g.Cost(-1, 0) })
	assert.Panics(t, func() { g.SetCost(0, 2, terrain.Known(1)) })
}

func TestIndexPositionRoundTrip(t *testing.T) {
	g, err := terrain.NewGrid(5, 4)
	require.NoError(t, err)
	for i := 0; i < g.Cells(); i++ {
		p := g.Position(i)
		assert.Equal(t, i, g.Index(p.X, p.Y))
	}
	assert.Equal(t, terrain.Position{X: 3, Y: 2}, g.Position(13))
}

//----------------------------------------------------------------------------//
// FindBaseStation, Neighbors, Reachable
//----------------------------------------------------------------------------//

func fill(g *terrain.Grid, s terrain.Soil) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.SetSoil(x, y, s)
		}
	}
}

func TestFindBaseStation(t *testing.T) {
	g, err := terrain.NewGrid(3, 3)
	require.NoError(t, err)
	fill(g, terrain.Plain)

	_, err = g.FindBaseStation()
	assert.ErrorIs(t, err, terrain.ErrBaseStationNotFound)

	// Two stations: row-major order picks (2,0) before (0,1).
	g.SetSoil(0, 1, terrain.BaseStation)
	g.SetSoil(2, 0, terrain.BaseStation)
	p, err := g.FindBaseStation()
	require.NoError(t, err)
	assert.Equal(t, terrain.Position{X: 2, Y: 0}, p)
}

func TestNeighbors_Order(t *testing.T) {
	g, err := terrain.NewGrid(3, 3)
	require.NoError(t, err)

	center := g.Neighbors(terrain.Position{X: 1, Y: 1})
	assert.Equal(t, []terrain.Position{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 2}}, center)

	corner := g.Neighbors(terrain.Position{X: 0, Y: 0})
	assert.Equal(t, []terrain.Position{{X: 1, Y: 0}, {X: 0, Y: 1}}, corner)

	buf := g.AppendNeighbors(nil, terrain.Position{X: 2, Y: 2})
	assert.Equal(t, []terrain.Position{{X: 1, Y: 2}, {X: 2, Y: 1}}, buf)
}

func TestReachable(t *testing.T) {
	g, err := terrain.NewGrid(4, 1)
	require.NoError(t, err)
	g.SetSoil(0, 0, terrain.BaseStation)
	g.SetSoil(1, 0, terrain.Crevasse)
	g.SetSoil(2, 0, terrain.Plain)
	g.SetSoil(3, 0, terrain.Plain)

	g.SetCost(0, 0, terrain.Known(0))
	g.SetCost(1, 0, terrain.Known(10000))
	g.SetCost(2, 0, terrain.Known(10001))

	assert.True(t, g.Reachable(0, 0))
	assert.False(t, g.Reachable(1, 0), "crevasse is never reachable")
	assert.False(t, g.Reachable(2, 0), "above threshold")
	assert.False(t, g.Reachable(3, 0), "unknown cost")
	assert.False(t, g.Reachable(4, 0), "out of bounds")
}

func TestClone_IsDeep(t *testing.T) {
	g, err := terrain.NewGrid(2, 1)
	require.NoError(t, err)
	g.SetCost(0, 0, terrain.Known(3))

	c := g.Clone()
	c.SetCost(0, 0, terrain.Known(9))
	c.SetSoil(1, 0, terrain.Rocky)

	assert.Equal(t, terrain.Known(3), g.Cost(0, 0))
	assert.Equal(t, terrain.BaseStation, g.Soil(1, 0))

	g.ResetCosts()
	assert.Equal(t, terrain.Unknown, g.Cost(0, 0).State)
	assert.Equal(t, terrain.Known(9), c.Cost(0, 0))
}
