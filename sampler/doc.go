// SPDX-License-Identifier: MIT

// Package sampler provides builder.Sampler implementations for the common
// input shapes: adjacency lists, boolean and weighted adjacency matrices, and
// 2D grids.
//
// Every sampler emits one sample per source row (or grid cell): the node for
// that row and all of its outgoing edges. Node IDs are row indices, or
// row*width + col for grids. A sampler is a cursor over its context; Reset
// rewinds it. Given the same context, the output sequence is deterministic.
//
// Matrices and grids must be rectangular. Feeding a ragged grid to Grid.Next
// panics; ValidateRect reports the same problem as an error beforehand.
package sampler
