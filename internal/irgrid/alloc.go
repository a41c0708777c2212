package irgrid

// Allocator provides the auxiliary buffers of an expansion run: one scratch
// cell buffer and one flag word per cell. Flag buffers must come back with
// every bit set. No other allocation happens mid-algorithm.
type Allocator interface {
	Cells(n int) []Cell
	Flags(n int) []uint32
}

// HeapAllocator is the default make-backed Allocator.
type HeapAllocator struct{}

func (HeapAllocator) Cells(n int) []Cell { return make([]Cell, n) }

func (HeapAllocator) Flags(n int) []uint32 {
	f := make([]uint32, n)
	fillWithOnes(f)
	return f
}

func fillWithOnes(f []uint32) {
	for i := range f {
		f[i] = ^uint32(0)
	}
}
