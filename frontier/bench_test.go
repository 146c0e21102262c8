package frontier_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsearch/frontier"
)

// BenchmarkPriority_PushPop fills the heap with n random priorities and drains it.
// Complexity: O(n log n) per iteration.
func BenchmarkPriority_PushPop(b *testing.B) {
	const n = 10000
	r := rand.New(rand.NewSource(42))
	prios := make([]float64, n)
	for i := range prios {
		prios[i] = r.Float64() * 1000
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pq := frontier.NewPriority[int, int](n)
		for k, p := range prios {
			if err := pq.Push(k, k, p); err != nil {
				b.Fatalf("push %d: %v", k, err)
			}
		}
		for pq.Len() > 0 {
			if _, err := pq.Pop(); err != nil {
				b.Fatalf("pop: %v", err)
			}
		}
	}
}

// BenchmarkPriority_DecreaseKey lowers every key once on a full heap.
// Complexity: O(n log n) per iteration.
func BenchmarkPriority_DecreaseKey(b *testing.B) {
	const n = 10000

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		pq := frontier.NewPriority[int, int](n)
		for k := 0; k < n; k++ {
			_ = pq.Push(k, k, float64(2*n-k))
		}
		b.StartTimer()
		for k := 0; k < n; k++ {
			if err := pq.Replace(k, k, float64(k)); err != nil {
				b.Fatalf("replace %d: %v", k, err)
			}
		}
	}
}

// BenchmarkQueue_PushPop measures the FIFO frontier with membership tracking.
func BenchmarkQueue_PushPop(b *testing.B) {
	const n = 10000

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := frontier.NewQueue[int, int](n)
		for k := 0; k < n; k++ {
			_ = q.Push(k, k, 0)
		}
		for q.Len() > 0 {
			_, _ = q.Pop()
		}
	}
}
