package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/roverrun/mapfile"
	"github.com/katalvlaran/roverrun/mission"
	"github.com/katalvlaran/roverrun/rover"
	"github.com/katalvlaran/roverrun/terrain"
)

func printHeader(w io.Writer, res *mapfile.Result) {
	g := res.Grid
	fmt.Fprintf(w, "Map %dx%d\n", g.Width, g.Height)
	if res.Err != nil {
		fmt.Fprintf(w, "WARNING: %v\n", res.Err)
		return
	}
	fmt.Fprintf(w, "Base station %v, %d cells expanded, %d repaired\n",
		res.Stats.Base, res.Stats.Enqueued, res.Stats.Repaired)
}

func costText(c terrain.Cost) string {
	if c.Unreachable() {
		return "-"
	}
	return c.String()
}

func printTrace(w io.Writer, m *mission.Mission, tr *rover.Trace) {
	name := m.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(w, "Mission %s: start %v\n", name, tr.Start)
	for i, s := range tr.Steps {
		fmt.Fprintf(w, "  %2d  %-8s %-22s %-12s cost %s\n", i+1, s.Move, s.After, s.Soil, costText(s.Cost))
	}
	fmt.Fprintf(w, "End %v\n", tr.End())
}
