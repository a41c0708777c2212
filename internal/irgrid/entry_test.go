package irgrid

import "testing"

func TestEntryPackUnpack(t *testing.T) {
	cases := []struct {
		logDim, begin int32
	}{
		{0, 0},
		{0, 1},
		{MaxLogDim, 0},
		{0, MaxBegin},
		{MaxLogDim, MaxBegin},
		{2, 12345},
	}
	for _, c := range cases {
		e := MakeEntry(c.logDim, c.begin)
		if e.LogDim() != c.logDim || e.Begin() != c.begin {
			t.Errorf("MakeEntry(%d, %d) unpacked to (%d, %d)", c.logDim, c.begin, e.LogDim(), e.Begin())
		}
	}
}

func TestLookupEntryUniform(t *testing.T) {
	// 2x2x2 top level, shift 0, every voxel its own leaf.
	dims := IVec3{2, 2, 2}
	entries := make([]Entry, 8)
	for i := range entries {
		entries[i] = MakeEntry(0, int32(i))
	}
	for z := int32(0); z < 2; z++ {
		for y := int32(0); y < 2; y++ {
			for x := int32(0); x < 2; x++ {
				want := x + 2*(y+2*z)
				if got := LookupEntry(entries, 0, dims, IVec3{x, y, z}); got != want {
					t.Fatalf("LookupEntry(%d,%d,%d) = %d, want %d", x, y, z, got, want)
				}
			}
		}
	}
}

func TestLookupEntryOneInternalLevel(t *testing.T) {
	// Single top voxel subdivided 4x4x4 (log_dim 2, shift 2). Leaf cell
	// index mirrors the child block interleave.
	topDims := IVec3{1, 1, 1}
	entries := make([]Entry, 1+64)
	entries[0] = MakeEntry(2, 1)
	for i := 0; i < 64; i++ {
		entries[1+i] = MakeEntry(0, int32(i))
	}
	for z := int32(0); z < 4; z++ {
		for y := int32(0); y < 4; y++ {
			for x := int32(0); x < 4; x++ {
				want := x + ((y + z<<2) << 2)
				if got := LookupEntry(entries, 2, topDims, IVec3{x, y, z}); got != want {
					t.Fatalf("LookupEntry(%d,%d,%d) = %d, want %d", x, y, z, got, want)
				}
			}
		}
	}
}

func TestLookupEntryTwoDescents(t *testing.T) {
	// shift 2, two chained log_dim-1 levels: top entry points at a 2x2x2
	// block whose entries each point at another 2x2x2 block of leaves.
	topDims := IVec3{1, 1, 1}
	entries := make([]Entry, 1+8+8*8)
	entries[0] = MakeEntry(1, 1)
	for c := 0; c < 8; c++ {
		blockBegin := int32(9 + c*8)
		entries[1+c] = MakeEntry(1, blockBegin)
		for l := 0; l < 8; l++ {
			entries[blockBegin+int32(l)] = MakeEntry(0, int32(c*8+l))
		}
	}
	for z := int32(0); z < 4; z++ {
		for y := int32(0); y < 4; y++ {
			for x := int32(0); x < 4; x++ {
				// coarse child from the high bit, fine leaf from the low bit
				coarse := (x >> 1) + ((y>>1)+(z>>1)<<1)<<1
				fine := (x & 1) + ((y&1)+(z&1)<<1)<<1
				want := coarse*8 + fine
				if got := LookupEntry(entries, 2, topDims, IVec3{x, y, z}); got != want {
					t.Fatalf("LookupEntry(%d,%d,%d) = %d, want %d", x, y, z, got, want)
				}
			}
		}
	}
}
