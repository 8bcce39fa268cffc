// SPDX-License-Identifier: MIT

package frontier_test

import (
	"testing"

	"github.com/katalvlaran/hodos/frontier"
)

func BenchmarkQueue_PushPop(b *testing.B) {
	for i := 0; i < b.N; i++ {
		q := frontier.NewQueue()
		for id := uint32(0); id < 1024; id++ {
			q.Push(id, 0)
		}
		for !q.IsEmpty() {
			q.Pop()
		}
	}
}

func BenchmarkMinHeap_PushPop(b *testing.B) {
	for i := 0; i < b.N; i++ {
		h := frontier.NewMinHeap()
		for id := uint32(0); id < 1024; id++ {
			h.Push(id, float64((id*7919)%1024))
		}
		for !h.IsEmpty() {
			h.Pop()
		}
	}
}
