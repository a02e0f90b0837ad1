package terrain

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid construction and lookups.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("terrain: width and height must be positive")
	// ErrAllocation indicates the requested buffers cannot be obtained.
	ErrAllocation = errors.New("terrain: cannot allocate grid buffers")
	// ErrBaseStationNotFound indicates no cell carries the BaseStation soil.
	ErrBaseStationNotFound = errors.New("terrain: base station not found")
)

// MaxCells caps Width×Height. Larger maps are refused with ErrAllocation
// instead of letting the runtime abort on an oversized make.
const MaxCells = 1 << 24

// UnreachableThreshold is the largest cost still considered reachable.
// It equals the crevasse penalty: any path that had to cross a crevasse
// ends up strictly above it.
const UnreachableThreshold = 10000

// MaxCost is the ceiling for finalized costs; sums saturate here.
const MaxCost = math.MaxUint32 - 2

// Soil classifies the ground occupying a cell. The numeric values are the
// codes used by the map file format.
type Soil uint8

const (
	// BaseStation is the origin of cost propagation.
	BaseStation Soil = iota
	// Plain is flat ground.
	Plain
	// Dunes are sand dunes (erg).
	Dunes
	// Rocky is stony ground (reg).
	Rocky
	// Crevasse is a crack in the ground the rover must never enter.
	Crevasse
)

// soilPenalty is indexed by Soil.
var soilPenalty = [...]uint32{0, 1, 2, 4, 10000}

var soilNames = [...]string{"base station", "plain", "dunes", "rocky", "crevasse"}

// Valid reports whether s is one of the five known soils.
func (s Soil) Valid() bool {
	return int(s) < len(soilPenalty)
}

// Penalty returns the cost of entering a cell of this soil.
// Unknown soils report 0; use Valid to tell them apart.
func (s Soil) Penalty() uint32 {
	if !s.Valid() {
		return 0
	}
	return soilPenalty[s]
}

// String implements fmt.Stringer.
func (s Soil) String() string {
	if !s.Valid() {
		return fmt.Sprintf("soil(%d)", uint8(s))
	}
	return soilNames[s]
}

// CostState tags a Cost.
type CostState uint8

const (
	// Unknown marks a cell that has not been reached yet.
	Unknown CostState = iota
	// Pending marks a cell sitting in the expansion queue.
	Pending
	// Finalized marks a cell whose Value has been computed.
	Finalized
)

// Cost is the accumulated movement cost of a cell.
// Value is meaningful only when State is Finalized.
type Cost struct {
	State CostState
	Value uint32
}

// Known builds a finalized cost.
func Known(v uint32) Cost {
	return Cost{State: Finalized, Value: v}
}

// Final returns the value and true when c is finalized.
func (c Cost) Final() (uint32, bool) {
	return c.Value, c.State == Finalized
}

// Unreachable reports whether c should be treated as "no way there":
// not finalized, or finalized above UnreachableThreshold.
func (c Cost) Unreachable() bool {
	return c.State != Finalized || c.Value > UnreachableThreshold
}

// Add returns c plus penalty, saturating at MaxCost.
// Non-finalized costs are returned unchanged.
func (c Cost) Add(penalty uint32) Cost {
	if c.State != Finalized {
		return c
	}
	if penalty > MaxCost || c.Value > MaxCost-penalty {
		return Known(MaxCost)
	}
	return Known(c.Value + penalty)
}

// String implements fmt.Stringer.
func (c Cost) String() string {
	switch c.State {
	case Unknown:
		return "unknown"
	case Pending:
		return "pending"
	default:
		return fmt.Sprintf("%d", c.Value)
	}
}

// Position is a cell coordinate. It is meaningful only against a Grid's bounds.
type Position struct {
	X, Y int
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Offset returns p shifted by (dx, dy).
func (p Position) Offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}
