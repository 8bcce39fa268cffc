// SPDX-License-Identifier: MIT

package sampler

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hodos/builder"
	"github.com/katalvlaran/hodos/core"
)

// Connectivity selects the neighbor pattern of a grid cell.
type Connectivity int

const (
	// Conn4 links orthogonal neighbors: N, E, S, W.
	Conn4 Connectivity = 4
	// Conn8 adds diagonals: N, NE, E, SE, S, SW, W, NW.
	Conn8 Connectivity = 8
)

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "4"
	case Conn8:
		return "8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// offsets are (drow, dcol) pairs in emission order.
var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// Grid walks a rectangular grid cell by cell in row-major order. Cell (r, c)
// becomes DataNode id r*width + c carrying the cell value, with an unweighted
// edge to every in-bounds neighbor.
type Grid[T any] struct {
	row, col int
	offsets  [][2]int
}

// NewGrid returns a Grid sampler with the given connectivity. Panics on any
// value other than Conn4 or Conn8.
func NewGrid[T any](conn Connectivity) *Grid[T] {
	switch conn {
	case Conn4:
		return &Grid[T]{offsets: offsets4}
	case Conn8:
		return &Grid[T]{offsets: offsets8}
	default:
		panic(fmt.Sprintf("sampler: NewGrid(%d): want Conn4 or Conn8", int(conn)))
	}
}

// Next emits the current cell and its outgoing edges. Panics if the grid is
// ragged or holds more cells than uint32 ids can name. The whole grid is
// checked on the first call; a grid of empty rows yields nothing.
func (s *Grid[T]) Next(grid [][]T) (builder.Sample[core.DataNode[T], core.UnweightedEdge], bool) {
	if s.row >= len(grid) {
		return builder.Sample[core.DataNode[T], core.UnweightedEdge]{}, false
	}
	h, w := len(grid), len(grid[0])
	if s.row == 0 && s.col == 0 {
		mustBeRect(grid)
	} else if len(grid[s.row]) != w {
		panic(fmt.Sprintf("sampler: grid row %d has %d cells, want %d", s.row, len(grid[s.row]), w))
	}
	if w == 0 {
		return builder.Sample[core.DataNode[T], core.UnweightedEdge]{}, false
	}

	r, c := s.row, s.col
	id := CellID(r, c, w)
	edges := make([]core.UnweightedEdge, 0, len(s.offsets))
	for _, d := range s.offsets {
		nr, nc := r+d[0], c+d[1]
		if nr < 0 || nr >= h || nc < 0 || nc >= w {
			continue
		}
		edges = append(edges, core.NewUnweightedEdge(id, CellID(nr, nc, w)))
	}

	s.col++
	if s.col >= w {
		s.col = 0
		s.row++
	}
	return builder.Sample[core.DataNode[T], core.UnweightedEdge]{
		Nodes: []core.DataNode[T]{core.NewDataNode(id, grid[r][c])},
		Edges: edges,
	}, true
}

// Connectivity returns the neighbor pattern.
func (s *Grid[T]) Connectivity() Connectivity { return Connectivity(len(s.offsets)) }

// Reset rewinds to cell (0, 0).
func (s *Grid[T]) Reset() { s.row, s.col = 0, 0 }

// CellID returns the node id of cell (row, col) in a grid of the given width.
// Panics when the id does not fit in a uint32.
func CellID(row, col, width int) uint32 {
	id := uint64(row)*uint64(width) + uint64(col)
	if row < 0 || col < 0 || width < 0 || id > math.MaxUint32 {
		panic(fmt.Sprintf("sampler: cell (%d, %d) of width %d has no uint32 id", row, col, width))
	}
	return uint32(id)
}

// mustBeRect panics unless every row has the width of the first one and the
// cell count fits in uint32 ids.
func mustBeRect[T any](grid [][]T) {
	w := len(grid[0])
	for i, row := range grid {
		if len(row) != w {
			panic(fmt.Sprintf("sampler: grid row %d has %d cells, want %d", i, len(row), w))
		}
	}
	if uint64(len(grid))*uint64(w) > math.MaxUint32+1 {
		panic(fmt.Sprintf("sampler: %dx%d grid exceeds uint32 ids", len(grid), w))
	}
}
