// Package fifo provides a bounded first-in-first-out queue backed by a ring
// buffer. Capacity is fixed at construction; Enqueue fails with ErrFull
// instead of growing, which lets callers that size the queue to a known
// upper bound (one slot per grid cell, for example) detect a broken
// invariant rather than silently allocate.
//
// The queue performs no deduplication and is not safe for concurrent use.
//
// Complexity: Enqueue, Dequeue, Len are O(1). Memory: O(capacity).
package fifo
