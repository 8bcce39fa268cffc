// SPDX-License-Identifier: MIT

package graphfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hodos/sampler"
)

// Kind names the input shape of a Document.
type Kind string

// Supported kinds.
const (
	KindAdjacency      Kind = "adjacency"
	KindMatrix         Kind = "matrix"
	KindWeightedMatrix Kind = "weighted-matrix"
	KindGrid           Kind = "grid"
)

// Document is the decoded form of a graph file.
type Document struct {
	Kind         Kind          `yaml:"kind"`
	Adjacency    [][]uint32    `yaml:"adjacency,omitempty"`
	Matrix       [][]bool      `yaml:"matrix,omitempty"`
	Weights      [][]*float64  `yaml:"weights,omitempty"`
	Grid         [][]int       `yaml:"grid,omitempty"`
	Connectivity int           `yaml:"connectivity,omitempty"`
	Policies     PolicyOptions `yaml:"policies"`
}

// PolicyOptions selects the admission policies applied while building.
type PolicyOptions struct {
	DenyDangling  bool     `yaml:"deny_dangling"`
	DenySelfLoops bool     `yaml:"deny_self_loops"`
	DenyParallel  bool     `yaml:"deny_parallel"`
	MinWeight     *float64 `yaml:"min_weight"`
	MaxWeight     *float64 `yaml:"max_weight"`
	MaxNodes      int      `yaml:"max_nodes"`
	MaxEdges      int      `yaml:"max_edges"`
	// Blocked cell values never become nodes. Setting it implies DenyDangling.
	Blocked []int `yaml:"blocked"`
}

// Load reads and parses the file at path. Use "-" for stdin.
func Load(path string) (*Document, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("graphfile: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a single YAML document and validates it. Unknown fields are
// rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMissingData)
		}
		return nil, fmt.Errorf("graphfile: parse YAML: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks that the kind is known, that its data block is present and
// well-shaped, and that the policy values make sense.
func (d *Document) Validate() error {
	switch d.Kind {
	case KindAdjacency:
		if len(d.Adjacency) == 0 {
			return fmt.Errorf("%w: kind %q needs `adjacency`", ErrMissingData, d.Kind)
		}
	case KindMatrix:
		if len(d.Matrix) == 0 {
			return fmt.Errorf("%w: kind %q needs `matrix`", ErrMissingData, d.Kind)
		}
		if err := square(d.Matrix); err != nil {
			return fmt.Errorf("graphfile: matrix: %w", err)
		}
	case KindWeightedMatrix:
		if len(d.Weights) == 0 {
			return fmt.Errorf("%w: kind %q needs `weights`", ErrMissingData, d.Kind)
		}
		if err := square(d.Weights); err != nil {
			return fmt.Errorf("graphfile: weights: %w", err)
		}
	case KindGrid:
		if len(d.Grid) == 0 {
			return fmt.Errorf("%w: kind %q needs `grid`", ErrMissingData, d.Kind)
		}
		if err := sampler.ValidateRect(d.Grid); err != nil {
			if errors.Is(err, sampler.ErrEmptyGrid) {
				return fmt.Errorf("%w: grid has no columns", ErrMissingData)
			}
			return fmt.Errorf("graphfile: grid: %w", err)
		}
		if d.Connectivity != 0 && d.Connectivity != 4 && d.Connectivity != 8 {
			return fmt.Errorf("%w: got %d", ErrBadConnectivity, d.Connectivity)
		}
	case "":
		return fmt.Errorf("%w: `kind` is required", ErrUnknownKind)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind)
	}
	return d.Policies.validate(d.Kind)
}

// Weighted reports whether the document carries edge weights.
func (d *Document) Weighted() bool { return d.Kind == KindWeightedMatrix }

func (p PolicyOptions) validate(k Kind) error {
	if p.MaxNodes < 0 {
		return fmt.Errorf("%w: max_nodes cannot be negative (%d)", ErrInvalidPolicy, p.MaxNodes)
	}
	if p.MaxEdges < 0 {
		return fmt.Errorf("%w: max_edges cannot be negative (%d)", ErrInvalidPolicy, p.MaxEdges)
	}
	if p.MinWeight != nil && p.MaxWeight != nil && *p.MinWeight >= *p.MaxWeight {
		return fmt.Errorf("%w: min_weight %g must be below max_weight %g", ErrInvalidPolicy, *p.MinWeight, *p.MaxWeight)
	}
	if len(p.Blocked) > 0 && k != KindGrid {
		return fmt.Errorf("%w: blocked applies to grids only", ErrInvalidPolicy)
	}
	return nil
}

// square checks that rows form an n×n block.
func square[T any](rows [][]T) error {
	if err := sampler.ValidateRect(rows); err != nil {
		return err
	}
	if len(rows[0]) != len(rows) {
		return fmt.Errorf("%w: %d rows of %d cells, want a square", ErrNonRectangular, len(rows), len(rows[0]))
	}
	return nil
}
