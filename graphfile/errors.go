// SPDX-License-Identifier: MIT

package graphfile

import (
	"errors"

	"github.com/katalvlaran/hodos/sampler"
)

// Sentinel errors. Wrapped with context via %w; branch with errors.Is.
var (
	// ErrUnknownKind indicates a missing or unsupported `kind`.
	ErrUnknownKind = errors.New("graphfile: unknown kind")

	// ErrMissingData indicates the data block required by the kind is absent
	// or empty.
	ErrMissingData = errors.New("graphfile: missing data")

	// ErrNonRectangular indicates a ragged (or, for matrices, non-square)
	// data block. It is the sampler package's sentinel.
	ErrNonRectangular = sampler.ErrNonRectangular

	// ErrBadConnectivity indicates a grid connectivity other than 4 or 8.
	ErrBadConnectivity = errors.New("graphfile: connectivity must be 4 or 8")

	// ErrInvalidPolicy indicates a meaningless policy value.
	ErrInvalidPolicy = errors.New("graphfile: invalid policy")
)
