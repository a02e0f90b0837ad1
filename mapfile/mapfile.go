package mapfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/roverrun/costfield"
	"github.com/katalvlaran/roverrun/internal/ctxlog"
	"github.com/katalvlaran/roverrun/terrain"
)

// ErrFormat indicates malformed or truncated map data.
var ErrFormat = errors.New("mapfile: malformed map")

// tokens hands out whitespace-separated words and counts them for error messages.
type tokens struct {
	sc *bufio.Scanner
	n  int
}

func (t *tokens) next(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", fmt.Errorf("mapfile: reading %s: %w", what, err)
		}
		return "", fmt.Errorf("%w: unexpected end of data reading %s (token %d)", ErrFormat, what, t.n+1)
	}
	t.n++
	return t.sc.Text(), nil
}

func (t *tokens) dimension(what string) (int, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer (token %d)", ErrFormat, what, s, t.n)
	}
	return v, nil
}

// Parse reads a map from r. Costs of the returned grid are all Unknown.
func Parse(r io.Reader) (*terrain.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	tok := &tokens{sc: sc}

	height, err := tok.dimension("height")
	if err != nil {
		return nil, err
	}
	width, err := tok.dimension("width")
	if err != nil {
		return nil, err
	}
	g, err := terrain.NewGrid(width, height)
	if err != nil {
		if errors.Is(err, terrain.ErrInvalidDimensions) {
			return nil, fmt.Errorf("%w: %w", ErrFormat, err)
		}
		return nil, err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s, err := tok.next("soil")
			if err != nil {
				return nil, fmt.Errorf("%w at cell (%d,%d)", err, x, y)
			}
			code, err := strconv.ParseUint(s, 10, 8)
			if err != nil || !terrain.Soil(code).Valid() {
				return nil, fmt.Errorf("%w: cell (%d,%d): soil code %q must be 0..4 (token %d)", ErrFormat, x, y, s, tok.n)
			}
			g.SetSoil(x, y, terrain.Soil(code))
		}
	}
	return g, nil
}

// Load reads the map file at path.
func Load(path string) (*terrain.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Result is a loaded map with its computed cost field.
type Result struct {
	Grid  *terrain.Grid
	Stats *costfield.Result
	// Err is a non-fatal propagation error, costfield.ErrMissingBaseStation
	// in practice. Grid costs are all Unknown when it is set.
	Err error
}

// LoadAndCompute loads the map at path and runs costfield.Compute on it,
// logging through the context logger. Load errors are returned as errors;
// a missing base station is logged at warn level and reported in Result.Err.
func LoadAndCompute(ctx context.Context, path string, opts ...costfield.Option) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	g, err := Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Map loaded.", "path", path, "width", g.Width, "height", g.Height)

	opts = append([]costfield.Option{costfield.WithLogger(logger)}, opts...)
	stats, err := costfield.Compute(g, opts...)
	switch {
	case errors.Is(err, costfield.ErrMissingBaseStation):
		logger.Warn("No base station in map; costs left undefined.", "path", path)
		return &Result{Grid: g, Err: err}, nil
	case err != nil:
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("Cost field computed.",
		"path", path,
		"base", stats.Base.String(),
		"enqueued", stats.Enqueued,
		"repaired", stats.Repaired,
	)

	return &Result{Grid: g, Stats: stats}, nil
}
