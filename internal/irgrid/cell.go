package irgrid

import "math"

// RefSentinel terminates a compressed cell's reference list.
const RefSentinel = int32(-1)

// Cell is one rectangular region [Min,Max) of the grid in finest-level
// units, plus its reference range [Begin,End) into the grid's shared
// reference buffer. The range is sorted ascending and duplicate-free.
type Cell struct {
	Min   IVec3
	Begin int32
	Max   IVec3
	End   int32
}

func (c Cell) NumRefs() int32 { return c.End - c.Begin }

// Refs returns the cell's slice of the shared reference buffer.
func (c Cell) Refs(refIDs []int32) []int32 { return refIDs[c.Begin:c.End] }

// ForEachRef visits the cell's references in order, preloading the next
// reference before invoking f. Returns the reference count.
func (c Cell) ForEachRef(refIDs []int32, f func(ref int32)) int32 {
	cur, ref := c.Begin, RefSentinel
	if cur < c.End {
		ref = refIDs[cur]
		cur++
	}
	for ref >= 0 {
		next := RefSentinel
		if cur < c.End {
			next = refIDs[cur]
			cur++
		}
		f(ref)
		ref = next
	}
	return c.End - c.Begin
}

// SmallCell is the compressed cell encoding: 16-bit bounds and a single
// start index into a sentinel-terminated reference list. Begin < 0 marks an
// empty cell.
type SmallCell struct {
	Min, Max USVec3
	Begin    int32
}

// ForEachRef visits the compressed cell's references until the sentinel.
// Returns the reference count.
func (c SmallCell) ForEachRef(refIDs []int32, f func(ref int32)) int32 {
	cur, ref := c.Begin, RefSentinel
	if cur >= 0 {
		ref = refIDs[cur]
		cur++
	}
	for ref >= 0 {
		next := refIDs[cur]
		cur++
		f(ref)
		ref = next
	}
	if c.Begin < 0 {
		return 0
	}
	return cur - 1 - c.Begin
}

// Range is an inclusive 3D integer range of voxel coordinates.
type Range struct {
	Lo, Hi IVec3
}

func (r Range) Size() int32 {
	return (r.Hi[0] - r.Lo[0] + 1) * (r.Hi[1] - r.Lo[1] + 1) * (r.Hi[2] - r.Lo[2] + 1)
}

// ComputeRange returns the range of voxels of a dims-resolution grid over
// gridBB that intersect objBB, clamped to the grid.
func ComputeRange(dims IVec3, gridBB, objBB BBox) Range {
	ext := gridBB.Extents()
	inv := [3]Real{Real(dims[0]) / ext[0], Real(dims[1]) / ext[1], Real(dims[2]) / ext[2]}
	var r Range
	for a := 0; a < 3; a++ {
		r.Lo[a] = imax(int32((objBB.Min[a]-gridBB.Min[a])*inv[a]), 0)
		r.Hi[a] = imin(int32((objBB.Max[a]-gridBB.Min[a])*inv[a]), dims[a]-1)
	}
	return r
}

// ComputeGridDims picks grid dimensions for the scene using the density
// formula by Cleary et al.
func ComputeGridDims(bb BBox, numPrims int, density Real) IVec3 {
	ext := bb.Extents()
	volume := ext[0] * ext[1] * ext[2]
	ratio := math.Cbrt(density * Real(numPrims) / volume)
	return IVec3{
		imax(1, int32(ext[0]*ratio)),
		imax(1, int32(ext[1]*ratio)),
		imax(1, int32(ext[2]*ratio)),
	}
}
