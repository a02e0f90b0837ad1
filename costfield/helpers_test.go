package costfield_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roverrun/terrain"
)

// Short soil names keep the fixtures readable.
const (
	B = terrain.BaseStation
	P = terrain.Plain
	D = terrain.Dunes
	R = terrain.Rocky
	C = terrain.Crevasse
)

// gridFrom builds a grid from rows of soils; rows[y][x].
func gridFrom(t testing.TB, rows [][]terrain.Soil) *terrain.Grid {
	t.Helper()
	g, err := terrain.NewGrid(len(rows[0]), len(rows))
	require.NoError(t, err)
	for y, row := range rows {
		require.Len(t, row, g.Width, "row %d", y)
		for x, s := range row {
			g.SetSoil(x, y, s)
		}
	}
	return g
}

// values returns the finalized costs as rows; non-finalized cells are -1.
func values(g *terrain.Grid) [][]int64 {
	out := make([][]int64, g.Height)
	for y := range out {
		out[y] = make([]int64, g.Width)
		for x := range out[y] {
			if v, ok := g.Cost(x, y).Final(); ok {
				out[y][x] = int64(v)
			} else {
				out[y][x] = -1
			}
		}
	}
	return out
}

// randomGrid returns a w×h grid of random non-base soils with one base
// station placed at a random cell. Deterministic for a given seed.
func randomGrid(t testing.TB, w, h int, seed int64) *terrain.Grid {
	t.Helper()
	rnd := rand.New(rand.NewSource(seed))
	g, err := terrain.NewGrid(w, h)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.SetSoil(x, y, terrain.Soil(1+rnd.Intn(4)))
		}
	}
	g.SetSoil(rnd.Intn(w), rnd.Intn(h), terrain.BaseStation)
	return g
}

// cutOff returns, per cell, whether it cannot be reached from the base
// station through non-crevasse cells.
func cutOff(g *terrain.Grid) []bool {
	blocked := make([]bool, g.Cells())
	for i := range blocked {
		blocked[i] = true
	}
	base, err := g.FindBaseStation()
	if err != nil {
		return blocked
	}
	queue := []terrain.Position{base}
	blocked[g.Index(base.X, base.Y)] = false
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			i := g.Index(n.X, n.Y)
			if !blocked[i] || g.SoilAt(n) == terrain.Crevasse {
				continue
			}
			blocked[i] = false
			queue = append(queue, n)
		}
	}
	return blocked
}
