// SPDX-License-Identifier: MIT

package search_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hodos/builder"
	"github.com/katalvlaran/hodos/core"
	"github.com/katalvlaran/hodos/policy"
	"github.com/katalvlaran/hodos/sampler"
	"github.com/katalvlaran/hodos/search"
)

type (
	UN = core.EmptyNode
	UE = core.UnweightedEdge
	UG = core.Graph[UN, UE]
	WE = core.WeightedEdge
	WG = core.Graph[UN, WE]
)

func adjacencyGraph(list sampler.AdjacencyList) *UG {
	b := builder.New[sampler.AdjacencyList, UN, UE](sampler.NewAdjacency(), nil, policy.DenyDanglingEdge[UN, UE]{})
	return b.Build(list)
}

func matrixGraph(m [][]float64) *WG {
	edges := policy.And[WE, *WG](policy.DenyDanglingEdge[UN, WE]{}, policy.AllowWeightAbove[WE, *WG]{Threshold: 0})
	b := builder.New[[][]float64, UN, WE](sampler.NewWeightedMatrix(), nil, edges)
	return b.Build(m)
}

// parentIs asserts the parent of id; want < 0 means no parent.
func parentIs(t *testing.T, r *search.Result, id uint32, want int) {
	t.Helper()
	p, ok := r.Parent(id)
	if want < 0 {
		assert.False(t, ok, "node %d should have no parent, got %d", id, p)
		return
	}
	if assert.True(t, ok, "node %d should have a parent", id) {
		assert.Equal(t, uint32(want), p, "parent of %d", id)
	}
}

func TestBFS_EndToEnd(t *testing.T) {
	cases := []struct {
		name    string
		list    sampler.AdjacencyList
		goal    uint32
		parents map[uint32]int
	}{
		{"linear", sampler.AdjacencyList{{1}, {2}, {3}, {}}, 3,
			map[uint32]int{3: 2, 2: 1, 1: 0, 0: -1}},
		{"cyclic", sampler.AdjacencyList{{1, 2}, {0, 3}, {0, 3}, {1, 2}}, 3,
			map[uint32]int{3: 1}},
		{"star", sampler.AdjacencyList{{1, 2, 3, 4}, {}, {}, {}, {}}, 4,
			map[uint32]int{1: 0, 2: 0, 3: 0, 4: 0}},
		{"disconnected", sampler.AdjacencyList{{1}, {0}, {3}, {2}}, 3,
			map[uint32]int{0: -1, 1: 0, 2: -1, 3: -1}},
		{"unreachable goal", sampler.AdjacencyList{{1}, {2}, {}, {4}, {}}, 4,
			map[uint32]int{4: -1, 2: 1, 1: 0, 0: -1}},
		{"shortest path", sampler.AdjacencyList{{1}, {0, 2, 3}, {2, 3}, {4}, {3}}, 4,
			map[uint32]int{4: 3, 3: 1, 1: 0, 0: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := search.BFS(adjacencyGraph(tc.list), 0, search.WithGoal(tc.goal))
			require.NoError(t, err)
			for id, want := range tc.parents {
				parentIs(t, res, id, want)
			}
		})
	}
}

func TestBFS_PathAndDistance(t *testing.T) {
	res, err := search.BFS(adjacencyGraph(sampler.AdjacencyList{{1}, {0, 2, 3}, {2, 3}, {4}, {3}}), 0)
	require.NoError(t, err)

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 3, 4}, path)

	d, ok := res.Distance(4)
	require.True(t, ok)
	assert.Equal(t, 3.0, d)

	assert.Equal(t, []uint32{0, 1, 2, 3, 4}, res.Order)
	assert.Equal(t, core.StopExhausted, res.Traversal.Reason)
}

func TestBFS_NoPath(t *testing.T) {
	res, err := search.BFS(adjacencyGraph(sampler.AdjacencyList{{1}, {0}, {3}, {2}}), 0)
	require.NoError(t, err)

	_, err = res.PathTo(3)
	assert.ErrorIs(t, err, search.ErrNoPath)
	assert.False(t, res.Visited(3))
	_, ok := res.Distance(3)
	assert.False(t, ok)
}

func TestDFS_EndToEnd(t *testing.T) {
	cases := []struct {
		name    string
		list    sampler.AdjacencyList
		goal    uint32
		parents map[uint32]int
	}{
		{"multiple paths", sampler.AdjacencyList{{1, 2, 3}, {4}, {5}, {6}, {7}, {7}, {7}, {}}, 7,
			map[uint32]int{7: 6, 6: 3, 3: 0, 0: -1, 4: -1, 5: -1}},
		{"linear", sampler.AdjacencyList{{1}, {2}, {3}, {4}, {5}, {}}, 5,
			map[uint32]int{5: 4, 4: 3, 3: 2, 2: 1, 1: 0, 0: -1}},
		{"cyclic", sampler.AdjacencyList{{1}, {2}, {3, 0}, {4}, {}}, 4,
			map[uint32]int{4: 3, 3: 2, 2: 1, 1: 0, 0: -1}},
		{"disconnected", sampler.AdjacencyList{{1}, {2}, {}, {4}, {}}, 2,
			map[uint32]int{2: 1, 1: 0, 0: -1, 4: -1}},
		{"unreachable goal", sampler.AdjacencyList{{1}, {2}, {}, {4}, {}}, 4,
			map[uint32]int{4: -1, 2: 1, 1: 0, 0: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := search.DFS(adjacencyGraph(tc.list), 0, search.WithGoal(tc.goal))
			require.NoError(t, err)
			for id, want := range tc.parents {
				parentIs(t, res, id, want)
			}
		})
	}
}

func TestDFS_Order(t *testing.T) {
	res, err := search.DFS(adjacencyGraph(sampler.AdjacencyList{{1, 2}, {3}, {}, {}}), 0)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 2, 1, 3}, res.Order)
}

func lightestPathMatrix() [][]float64 {
	//    1.0   2.0    3.0
	// 0------1------2------3
	// |                    | 1.0
	// +--------------------4
	//         10.0
	x := sampler.NoEdge
	return [][]float64{
		{x, 1, x, x, 10},
		{1, x, 2, x, x},
		{x, 2, x, 3, x},
		{x, x, 3, x, 1},
		{10, x, x, 1, x},
	}
}

func TestDijkstra_LightestPath(t *testing.T) {
	res, err := search.Dijkstra(matrixGraph(lightestPathMatrix()), 0, search.WithGoal(3))
	require.NoError(t, err)

	parentIs(t, res, 3, 2)
	parentIs(t, res, 2, 1)
	parentIs(t, res, 1, 0)
	parentIs(t, res, 0, -1)
	// 4 is seen again from 3 with 6+1 < 10.
	parentIs(t, res, 4, 3)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2, 3}, path)
	d, _ := res.Distance(3)
	assert.Equal(t, 6.0, d)
	assert.Equal(t, core.StopRequested, res.Traversal.Reason)
}

func TestDijkstra_FullRun(t *testing.T) {
	res, err := search.Dijkstra(matrixGraph(lightestPathMatrix()), 0)
	require.NoError(t, err)

	want := map[uint32]float64{0: 0, 1: 1, 2: 3, 3: 6, 4: 7}
	for id, w := range want {
		d, ok := res.Distance(id)
		require.True(t, ok)
		assert.Equal(t, w, d, "distance to %d", id)
	}
	assert.Equal(t, []uint32{0, 1, 2, 3, 4}, res.Order)
}

func TestDijkstra_StartIsGoal(t *testing.T) {
	x := sampler.NoEdge
	res, err := search.Dijkstra(matrixGraph([][]float64{{x, 1}, {1, x}}), 0, search.WithGoal(0))
	require.NoError(t, err)

	parentIs(t, res, 0, -1)
	path, err := res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0}, path)
	assert.Equal(t, 1, res.Traversal.Visits)
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := core.NewGraph[UN, WE]()
	g.AddNode(core.NewEmptyNode(0))
	g.AddNode(core.NewEmptyNode(1))
	g.AddEdge(core.NewWeightedEdge(0, 1, -2))

	_, err := search.Dijkstra(g, 0)
	assert.ErrorIs(t, err, search.ErrNegativeWeight)
}

func TestRunners_Validation(t *testing.T) {
	g := adjacencyGraph(sampler.AdjacencyList{{1}, {}})

	_, err := search.BFS[UN, UE](nil, 0)
	assert.ErrorIs(t, err, search.ErrGraphNil)
	_, err = search.Dijkstra[UN, WE](nil, 0)
	assert.ErrorIs(t, err, search.ErrGraphNil)

	_, err = search.DFS(g, 9)
	assert.ErrorIs(t, err, search.ErrStartNotFound)

	_, err = search.BFS(g, 0, search.WithMaxOpened(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.BFS(g, 0, search.WithLogger(nil))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestMaxOpened_BoundsRun(t *testing.T) {
	g := adjacencyGraph(sampler.AdjacencyList{{1, 2, 3, 4}, {}, {}, {}, {}})

	res, err := search.BFS(g, 0, search.WithMaxOpened(2))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Traversal.Visits)
	assert.Equal(t, core.StopRequested, res.Traversal.Reason)

	res, err = search.BFS(g, 0, search.WithMaxOpened(0))
	require.NoError(t, err)
	assert.Equal(t, 5, res.Traversal.Visits)
}

func TestStrictAdjacency(t *testing.T) {
	g := adjacencyGraph(sampler.AdjacencyList{{1}, {2}, {}})

	res, err := search.BFS(g, 0, search.WithStrictAdjacency())
	require.NoError(t, err)
	assert.Equal(t, core.StopMissingAdjacency, res.Traversal.Reason)
	assert.False(t, res.Visited(2))
	assert.Equal(t, []uint32{0, 1}, res.Order)

	res, err = search.BFS(g, 0)
	require.NoError(t, err)
	assert.True(t, res.Visited(2))
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := search.DFS(adjacencyGraph(sampler.AdjacencyList{{1}, {}}), 0, search.WithLogger(l))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `msg="search: done" algorithm=dfs`)
	assert.Contains(t, buf.String(), `msg="traverse: visit"`)
}

func TestRunners_SkipDanglingTargets(t *testing.T) {
	b := builder.New[sampler.AdjacencyList, UN, UE](sampler.NewAdjacency(), nil, nil)
	g := b.Build(sampler.AdjacencyList{{1, 9}, {}})
	require.False(t, g.HasNode(9))
	require.True(t, g.HasEdge(0, 9))

	for name, run := range map[string]func(*UG, uint32, ...search.Option) (*search.Result, error){
		"bfs": search.BFS[UN, UE],
		"dfs": search.DFS[UN, UE],
	} {
		t.Run(name, func(t *testing.T) {
			res, err := run(g, 0, search.WithGoal(9))
			require.NoError(t, err)
			assert.Equal(t, []uint32{0, 1}, res.Order)
			assert.False(t, res.Visited(9))
			assert.Equal(t, core.StopExhausted, res.Traversal.Reason)
			_, err = res.PathTo(9)
			assert.ErrorIs(t, err, search.ErrNoPath)
		})
	}

	wg := core.NewGraph[UN, WE]()
	wg.AddNode(core.NewEmptyNode(0))
	wg.AddEdge(core.NewWeightedEdge(0, 9, 1))
	res, err := search.Dijkstra(wg, 0, search.WithGoal(9))
	require.NoError(t, err)
	assert.Equal(t, []uint32{0}, res.Order)
	_, ok := res.Distance(9)
	assert.False(t, ok)
}
