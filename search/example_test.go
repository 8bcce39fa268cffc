// SPDX-License-Identifier: MIT

package search_test

import (
	"fmt"

	"github.com/katalvlaran/hodos/builder"
	"github.com/katalvlaran/hodos/core"
	"github.com/katalvlaran/hodos/sampler"
	"github.com/katalvlaran/hodos/search"
)

// ExampleDijkstra finds the lightest route on a weighted matrix.
func ExampleDijkstra() {
	x := sampler.NoEdge
	m := [][]float64{
		{x, 4, 1},
		{x, x, x},
		{x, 2, x},
	}
	g := builder.New[[][]float64, core.EmptyNode, core.WeightedEdge](sampler.NewWeightedMatrix(), nil, nil).Build(m)

	res, err := search.Dijkstra(g, 0, search.WithGoal(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	path, _ := res.PathTo(1)
	d, _ := res.Distance(1)
	fmt.Println(path, d)
	// Output: [0 2 1] 3
}

// ExampleBFS shows a breadth-first visit order.
func ExampleBFS() {
	g := builder.New[sampler.AdjacencyList, core.EmptyNode, core.UnweightedEdge](sampler.NewAdjacency(), nil, nil).
		Build(sampler.AdjacencyList{{1, 2}, {3}, {3}, {}})

	res, _ := search.BFS(g, 0)
	fmt.Println(res.Order)
	// Output: [0 1 2 3]
}
