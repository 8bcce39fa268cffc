// SPDX-License-Identifier: MIT

package sampler

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("sampler: grid is empty")

	// ErrNonRectangular indicates rows of different lengths.
	ErrNonRectangular = errors.New("sampler: grid is not rectangular")
)

// ValidateRect checks that rows is non-empty and that every row has the width
// of the first one.
func ValidateRect[T any](rows [][]T) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ErrEmptyGrid
	}
	w := len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(row), w)
		}
	}
	return nil
}
