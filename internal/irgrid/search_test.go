package irgrid

import (
	"math/rand"
	"sort"
	"testing"
)

// sortedUnique draws n distinct sorted values from [0, span).
func sortedUnique(rng *rand.Rand, n, span int) []int32 {
	seen := map[int32]bool{}
	out := make([]int32, 0, n)
	for len(out) < n {
		v := int32(rng.Intn(span))
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func linearFind(refs []int32, target int32) int {
	for i, v := range refs {
		if v == target {
			return i
		}
	}
	return -1
}

func TestBisectionMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		refs := sortedUnique(rng, rng.Intn(50), 100)
		for target := int32(-1); target <= 100; target++ {
			want := linearFind(refs, target)
			if got := bisection(refs, target); got != want {
				t.Fatalf("bisection(%v, %d) = %d, want %d", refs, target, got, want)
			}
		}
	}
}

func TestBisectionEmpty(t *testing.T) {
	if got := bisection(nil, 3); got != -1 {
		t.Fatalf("bisection(nil, 3) = %d, want -1", got)
	}
}

func bruteSubset(a, b []int32) bool {
	for _, x := range b {
		found := false
		for _, y := range a {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func TestIsSubsetMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 500; trial++ {
		a := sortedUnique(rng, rng.Intn(20), 30)
		b := sortedUnique(rng, rng.Intn(20), 30)
		if got, want := isSubset(a, b), bruteSubset(a, b); got != want {
			t.Fatalf("isSubset(%v, %v) = %v, want %v", a, b, got, want)
		}
	}
}

func TestIsSubsetEdgeCases(t *testing.T) {
	if !isSubset([]int32{1, 2, 3}, nil) {
		t.Errorf("empty set must be a subset of anything")
	}
	if !isSubset(nil, nil) {
		t.Errorf("empty set must be a subset of the empty set")
	}
	if isSubset(nil, []int32{1}) {
		t.Errorf("non-empty set cannot be a subset of the empty set")
	}
	// Fail-fast path: b longer than a.
	if isSubset([]int32{1}, []int32{1, 2}) {
		t.Errorf("longer b cannot be a subset")
	}
}
