// Package mission reads rover mission files written in HCL: a starting
// localisation and the list of moves to replay on a map.
//
//	name = "survey east ridge"
//
//	rover {
//	  x           = map_width - 1
//	  y           = base_y
//	  orientation = "west"
//	}
//
//	moves = ["F_10", "T_LEFT", "F 20m"]
//
// Expressions may use the map's dimensions (map_width, map_height) and,
// when the map has one, the base station position (base_x, base_y).
package mission

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/roverrun/rover"
	"github.com/katalvlaran/roverrun/terrain"
)

// Sentinel errors for mission loading.
var (
	// ErrDecode wraps HCL syntax and decoding diagnostics.
	ErrDecode = errors.New("mission: cannot decode mission file")
	// ErrInvalid indicates well-formed HCL with unusable values.
	ErrInvalid = errors.New("mission: invalid mission")
)

// Mission is a decoded mission file.
type Mission struct {
	Name  string
	Start rover.Localisation
	Moves []rover.Move
}

// file mirrors the HCL layout.
type file struct {
	Name  string    `hcl:"name,optional"`
	Rover roverSpec `hcl:"rover,block"`
	Moves []string  `hcl:"moves"`
}

type roverSpec struct {
	X           int    `hcl:"x"`
	Y           int    `hcl:"y"`
	Orientation string `hcl:"orientation,optional"`
}

// evalContext exposes the map to mission expressions. g may be nil.
func evalContext(g *terrain.Grid) *hcl.EvalContext {
	vars := map[string]cty.Value{}
	if g != nil {
		vars["map_width"] = cty.NumberIntVal(int64(g.Width))
		vars["map_height"] = cty.NumberIntVal(int64(g.Height))
		if base, err := g.FindBaseStation(); err == nil {
			vars["base_x"] = cty.NumberIntVal(int64(base.X))
			vars["base_y"] = cty.NumberIntVal(int64(base.Y))
		}
	}
	return &hcl.EvalContext{Variables: vars}
}

// Parse decodes src, naming it filename in diagnostics. The grid supplies
// expression variables; it is not modified and may be nil.
func Parse(src []byte, filename string, g *terrain.Grid) (*Mission, error) {
	parsed, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrDecode, diags.Error())
	}

	var f file
	if diags = gohcl.DecodeBody(parsed.Body, evalContext(g), &f); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrDecode, diags.Error())
	}

	m := &Mission{
		Name:  f.Name,
		Start: rover.Localisation{Pos: terrain.Position{X: f.Rover.X, Y: f.Rover.Y}},
		Moves: make([]rover.Move, 0, len(f.Moves)),
	}
	if f.Rover.Orientation != "" {
		o, err := rover.ParseOrientation(f.Rover.Orientation)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalid, filename, err)
		}
		m.Start.Ori = o
	}
	for i, s := range f.Moves {
		mv, err := rover.ParseMove(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: moves[%d]: %w", ErrInvalid, filename, i, err)
		}
		m.Moves = append(m.Moves, mv)
	}
	return m, nil
}

// Load reads and decodes the mission file at path.
func Load(path string, g *terrain.Grid) (*Mission, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mission: reading %s: %w", path, err)
	}
	return Parse(src, path, g)
}
