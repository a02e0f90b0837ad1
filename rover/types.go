package rover

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/roverrun/terrain"
)

// Sentinel errors for rover operations.
var (
	// ErrUnknownOrientation is returned by ParseOrientation.
	ErrUnknownOrientation = errors.New("rover: unknown orientation")
	// ErrUnknownMove is returned by ParseMove.
	ErrUnknownMove = errors.New("rover: unknown move")
	// ErrInvalidStart indicates a starting position outside the grid.
	ErrInvalidStart = errors.New("rover: start position outside the map")
	// ErrOffMap indicates a move that would leave the grid.
	ErrOffMap = errors.New("rover: move leaves the map")
	// ErrCrevasse indicates a move that ends on a crevasse.
	ErrCrevasse = errors.New("rover: move ends in a crevasse")
)

// Orientation is the rover heading.
type Orientation uint8

const (
	North Orientation = iota
	East
	South
	West
)

var orientationNames = [...]string{"north", "east", "south", "west"}

// heading is indexed by Orientation: the (dx, dy) of one forward step.
var heading = [...][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if int(o) >= len(orientationNames) {
		return fmt.Sprintf("orientation(%d)", uint8(o))
	}
	return orientationNames[o]
}

// Rotate turns o clockwise by quarter turns (negative turns go anticlockwise).
func (o Orientation) Rotate(quarters int) Orientation {
	return Orientation(((int(o)+quarters)%4 + 4) % 4)
}

// ParseOrientation accepts the names returned by String, in any case, and
// their first letters.
func ParseOrientation(s string) (Orientation, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for i, name := range orientationNames {
		if v == name || (len(v) == 1 && v[0] == name[0]) {
			return Orientation(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrientation, s)
}

// Move is one rover command.
type Move uint8

const (
	F10 Move = iota
	F20
	F30
	B10
	TurnLeft
	TurnRight
	UTurn
)

var moveNames = [...]string{"F 10m", "F 20m", "F 30m", "B 10m", "T left", "T right", "U-turn"}

var moveIdents = [...]string{"F_10", "F_20", "F_30", "B_10", "T_LEFT", "T_RIGHT", "U_TURN"}

// moveSteps is indexed by Move: cells travelled along the heading.
var moveSteps = [...]int{1, 2, 3, -1, 0, 0, 0}

// moveTurns is indexed by Move: clockwise quarter turns.
var moveTurns = [...]int{0, 0, 0, 0, 3, 1, 2}

// Moves lists every move in declaration order.
func Moves() []Move {
	return []Move{F10, F20, F30, B10, TurnLeft, TurnRight, UTurn}
}

// String implements fmt.Stringer.
func (m Move) String() string {
	if int(m) >= len(moveNames) {
		return fmt.Sprintf("move(%d)", uint8(m))
	}
	return moveNames[m]
}

// ParseMove accepts both the display names ("F 10m", "T left") and the
// identifiers ("F_10", "T_LEFT"), ignoring case.
func ParseMove(s string) (Move, error) {
	v := strings.TrimSpace(s)
	for i := range moveNames {
		if strings.EqualFold(v, moveNames[i]) || strings.EqualFold(v, moveIdents[i]) {
			return Move(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMove, s)
}

// Localisation is where the rover is and where it faces.
type Localisation struct {
	Pos terrain.Position
	Ori Orientation
}

// String implements fmt.Stringer.
func (l Localisation) String() string {
	return fmt.Sprintf("%v facing %v", l.Pos, l.Ori)
}
