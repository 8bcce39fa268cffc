// SPDX-License-Identifier: MIT

// Package graphfile loads graph descriptions from YAML and builds them with
// the stock samplers and policies.
//
// A document names one input shape and, optionally, admission policies:
//
//	kind: weighted-matrix       # adjacency | matrix | weighted-matrix | grid
//	weights:
//	  - [null, 1.5]             # null = no edge
//	  - [1.5, null]
//	policies:
//	  deny_dangling: true
//	  deny_self_loops: true
//	  deny_parallel: true
//	  min_weight: 0             # edges must weigh strictly more
//	  max_weight: 100           # edges must weigh strictly less
//	  max_nodes: 0              # 0 = unlimited
//	  max_edges: 0              # 0 = unlimited
//	  blocked: [1]              # grid only: cell values that are not nodes
//
// Grids additionally take `connectivity: 4 | 8` (default 4).
//
// Every kind builds into the same shape, Graph, whose entities are the
// core.Node and core.Edge interfaces, so callers can run any search on the
// result without knowing the kind.
package graphfile
