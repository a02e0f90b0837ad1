// Package rover models the rover's localisation on a terrain.Grid and the
// fixed set of moves it can execute.
//
// Orientation turns on a four-point compass (North, East, South, West).
// Translations follow the heading: North decreases Y, East increases X,
// South increases Y, West decreases X; the origin is the top-left cell.
//
// Moves:
//
//	F10, F20, F30  forward 1, 2 or 3 cells
//	B10            back 1 cell
//	TurnLeft       quarter turn anticlockwise
//	TurnRight      quarter turn clockwise
//	UTurn          half turn
//
// Replay applies a given move list and reports the cost of every cell the
// rover lands on. It never chooses moves and never writes to the grid.
package rover
