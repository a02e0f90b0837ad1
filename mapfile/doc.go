// Package mapfile reads roverrun map files into a terrain.Grid and runs the
// cost engine on the result.
//
// Format
//
//	All values are whitespace-separated unsigned integers:
//
//	  <height> <width>
//	  <height × width soil codes, row-major>
//
//	Soil codes: 0 base station, 1 plain, 2 dunes, 3 rocky, 4 crevasse.
//	Line breaks carry no meaning; anything after the last cell is ignored.
//
// Errors
//
//   - ErrFormat: missing, non-numeric or non-positive dimensions, truncated
//     cell data, non-numeric cells, codes outside 0..4.
//   - terrain.ErrAllocation: dimensions too large to allocate.
//
// No grid is returned on error. LoadAndCompute additionally reports a missing
// base station through Result.Err without failing the load.
package mapfile
