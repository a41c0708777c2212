package irgrid

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// expander holds the borrowed, read-only inputs of one expansion run plus
// the instrumentation counter. The cell buffers are not stored here: each
// pass receives its own read and write buffer explicitly.
type expander struct {
	params  expandParams
	entries []Entry
	refIDs  []int32
	prims   []Primitive

	examined atomic.Int64 // (cell, axis) pairs actually examined
}

func newExpander(g *Grid, prims []Primitive) *expander {
	return &expander{
		params:  newExpandParams(g),
		entries: g.Entries,
		refIDs:  g.RefIDs,
		prims:   prims,
	}
}

// ExpandGrid grows every cell of g along the three axes, running iters-1
// cheap subset-only iterations followed by one exact iteration. It mutates
// g.Cells (replacing it with whichever double buffer is current after the
// final pass) and leaves g.SmallCells untouched. A nil alloc selects the
// default heap allocator. iters <= 0 leaves the grid unchanged.
func ExpandGrid(alloc Allocator, g *Grid, prims []Primitive, iters int) {
	if iters <= 0 || len(g.Cells) == 0 {
		return
	}
	if alloc == nil {
		alloc = HeapAllocator{}
	}
	newExpander(g, prims).run(alloc, g, iters)
}

func (e *expander) run(alloc Allocator, g *Grid, iters int) {
	n := len(g.Cells)
	cur := g.Cells
	next := alloc.Cells(n)
	flags := alloc.Flags(n) // all axis bits set: every cell starts eligible

	for it := 0; it < iters; it++ {
		exact := it == iters-1
		for axis := 0; axis < 3; axis++ {
			e.pass(cur, next, flags, axis, exact)
			// Commit this axis before the next one starts: later axes
			// must observe the updated neighbor boundaries.
			cur, next = next, cur
		}
	}
	g.Cells = cur
}

// pass runs one parallel pass over all cells for a single axis. Every unit
// reads src and writes only its own slot in dst, so no locks are needed;
// the WaitGroup is the barrier between passes.
func (e *expander) pass(src, dst []Cell, flags []uint32, axis int, exact bool) {
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	n := len(src)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				e.expandCell(src, dst, flags, axis, exact, i)
			}
		}(lo, hi)
	}
	wg.Wait()
}

func (e *expander) expandCell(src, dst []Cell, flags []uint32, axis int, exact bool, i int) {
	cell := src[i]
	bit := uint32(1) << uint(axis)
	if flags[i]&bit == 0 {
		// Converged on this axis in an earlier pass; never re-examined.
		dst[i] = cell
		return
	}
	e.examined.Add(1)

	ovLo := findOverlap(e.params, e.entries, e.refIDs, src, e.prims, axis, dirLo, exact, cell)
	ovHi := findOverlap(e.params, e.entries, e.refIDs, src, e.prims, axis, dirHi, exact, cell)
	cell.Min[axis] += ovLo
	cell.Max[axis] += ovHi

	if ovHi-ovLo != 0 {
		flags[i] |= bit
	} else {
		flags[i] &^= bit
	}
	dst[i] = cell
}
