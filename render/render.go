// Package render draws a terrain.Grid on a text terminal. It only reads the
// grid: soils as three-line glyph blocks, costs and soil codes as tables.
//
// Costs above terrain.UnreachableThreshold, costs that never got finalized
// and crevasse cells all print as "-".
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gookit/color"

	"github.com/katalvlaran/roverrun/terrain"
)

// rowsPerCell is how many text lines one grid row occupies in Soils.
const rowsPerCell = 3

// glyphs is indexed by terrain.Soil; every glyph is three columns wide.
var glyphs = [...]string{"   ", "---", "~~~", "^^^", "███"}

const (
	unknownGlyph = "???"
	baseGlyph    = " B "
)

// styles is indexed by terrain.Soil.
var styles = [...]color.Style{
	color.New(color.FgCyan, color.OpBold),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgDarkGray),
	color.New(color.FgRed),
}

// Options tunes the soil drawing.
type Options struct {
	// Colour wraps each glyph in an ANSI colour. gookit/color drops the
	// codes on its own when the terminal cannot show them.
	Colour bool
}

// Soils draws every grid row as three text lines. The base station's
// middle line carries a "B"; soils outside 0..4 print as "???".
func Soils(w io.Writer, g *terrain.Grid, opts Options) error {
	bw := bufio.NewWriter(w)
	for line := 0; line < g.Height*rowsPerCell; line++ {
		y := line / rowsPerCell
		for x := 0; x < g.Width; x++ {
			s := g.Soil(x, y)
			glyph := unknownGlyph
			switch {
			case !s.Valid():
			case s == terrain.BaseStation && line%rowsPerCell == 1:
				glyph = baseGlyph
			default:
				glyph = glyphs[s]
			}
			if opts.Colour && s.Valid() {
				glyph = styles[s].Sprint(glyph)
			}
			bw.WriteString(glyph)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Costs prints one line per grid row, each cell left-aligned in a
// five-column field followed by a space.
func Costs(w io.Writer, g *terrain.Grid) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Reachable(x, y) {
				fmt.Fprintf(bw, "%-5d ", g.Cost(x, y).Value)
			} else {
				fmt.Fprintf(bw, "%-5s ", "-")
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Codes prints the numeric soil codes, space-separated, one line per row.
func Codes(w io.Writer, g *terrain.Grid) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%d", uint8(g.Soil(x, y)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
