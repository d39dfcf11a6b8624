package workpool

import (
	"sort"
	"sync"
	"testing"
)

func TestForEach_SerialAtSizeOne(t *testing.T) {
	p := New(1)
	var order []int
	var mu sync.Mutex
	p.ForEach(5, func(i int) {
		mu.Lock()
		order = append(order, i)
		mu.Unlock()
	})
	want := []int{0, 1, 2, 3, 4}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i, v := range order {
		if v != want[i] {
			t.Errorf("order[%d] = %d, want %d (size-1 pool must run serially in index order)", i, v, want[i])
		}
	}
}

func TestForEach_ParallelCoversEveryIndex(t *testing.T) {
	p := New(4)
	seen := make([]bool, 100)
	var mu sync.Mutex
	p.ForEach(100, func(i int) {
		mu.Lock()
		seen[i] = true
		mu.Unlock()
	})
	for i, ok := range seen {
		if !ok {
			t.Errorf("index %d never visited", i)
		}
	}
}

func TestForEach_BitIdenticalResultAcrossPoolSizes(t *testing.T) {
	n := 64
	compute := func(pool *Pool) []int {
		out := make([]int, n)
		pool.ForEach(n, func(i int) {
			out[i] = i * i
		})
		return out
	}

	serial := compute(New(1))
	parallel := compute(New(8))
	for i := range serial {
		if serial[i] != parallel[i] {
			t.Fatalf("result[%d] serial=%d parallel=%d, want bit-identical", i, serial[i], parallel[i])
		}
	}
}

func TestForEach_ZeroN(t *testing.T) {
	p := New(4)
	called := false
	p.ForEach(0, func(i int) { called = true })
	if called {
		t.Error("ForEach(0, ...) called fn, want no calls")
	}
}

func TestNew_DefaultsToGOMAXPROCS(t *testing.T) {
	p := New(0)
	if p.Size() < 1 {
		t.Errorf("Size() = %d, want >= 1", p.Size())
	}
}

func TestForEach_FewerTasksThanWorkers(t *testing.T) {
	p := New(16)
	var mu sync.Mutex
	var got []int
	p.ForEach(3, func(i int) {
		mu.Lock()
		got = append(got, i)
		mu.Unlock()
	})
	sort.Ints(got)
	if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Errorf("got = %v, want [0 1 2]", got)
	}
}
