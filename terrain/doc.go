// Package terrain holds the rectangular map model shared by every other
// package of roverrun: soil classification per cell, accumulated movement
// cost per cell, and the coordinate helpers that go with them.
//
// What:
//
//   - Grid owns two parallel row-major buffers (soils and costs) of
//     Width×Height cells. Nothing else keeps a reference to them.
//   - Soil enumerates the five ground types and their traversal penalty:
//     BaseStation 0, Plain 1, Dunes 2, Rocky 4, Crevasse 10000.
//   - Cost is a tagged value: Unknown (never reached), Pending (enqueued,
//     not yet relaxed) or Finalized with an accumulated value.
//   - Position is an (X, Y) pair; X grows to the right, Y grows downwards,
//     the origin is the top-left corner.
//
// Lifecycle:
//
//	NewGrid allocates both buffers before the Grid is assembled, so a failed
//	build hands nothing back. Every cost starts Unknown; the costfield package
//	mutates them in place afterwards.
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive.
//   - ErrAllocation: the cell count overflows or exceeds MaxCells.
//   - ErrBaseStationNotFound: FindBaseStation scanned every cell without a match.
//
// Accessors panic on out-of-range coordinates. Callers that cannot prove a
// coordinate is valid check InBounds first.
package terrain
