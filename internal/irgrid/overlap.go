package irgrid

import "github.com/go-gl/mathgl/mgl64"

// Expansion directions along an axis.
const (
	dirLo = iota // move the min boundary toward lower coordinates
	dirHi        // move the max boundary toward higher coordinates
)

// expandParams is the scene-wide read-only configuration of an expansion
// run. It is built once per run and passed by value into every parallel
// unit; nothing writes it while passes execute.
type expandParams struct {
	fineDims IVec3      // grid dimensions at the finest level
	topDims  IVec3      // fineDims >> shift
	shift    int32      // bits between the finest and the top level
	gridMin  mgl64.Vec3 // world-space minimum corner of the scene
	cellSize mgl64.Vec3 // world-space size of one finest-level cell
}

func newExpandParams(g *Grid) expandParams {
	fine := g.FineDims()
	ext := g.BBox.Extents()
	return expandParams{
		fineDims: fine,
		topDims:  g.Dims,
		shift:    g.Shift,
		gridMin:  g.BBox.Min,
		cellSize: mgl64.Vec3{
			ext[0] / Real(fine[0]),
			ext[1] / Real(fine[1]),
			ext[2] / Real(fine[2]),
		},
	}
}

// worldPos maps a finest-level grid coordinate to world space.
func (p expandParams) worldPos(v IVec3) mgl64.Vec3 {
	return mgl64.Vec3{
		p.gridMin[0] + Real(v[0])*p.cellSize[0],
		p.gridMin[1] + Real(v[1])*p.cellSize[1],
		p.gridMin[2] + Real(v[2])*p.cellSize[2],
	}
}

// sweptSlab is the world-space box swept when the cell boundary on axis
// moves by k steps (k > 0 for dirHi, k < 0 for dirLo). The transverse
// extent is the cell's current extent on the other two axes.
func sweptSlab(p expandParams, axis, dir int, k int32, cell Cell) BBox {
	lo, hi := cell.Min, cell.Max
	if dir == dirHi {
		lo[axis] = cell.Max[axis]
		hi[axis] = cell.Max[axis] + k
	} else {
		lo[axis] = cell.Min[axis] + k
		hi[axis] = cell.Min[axis]
	}
	return BBox{Min: p.worldPos(lo), Max: p.worldPos(hi)}
}

// findOverlap computes the signed number of grid steps the cell's boundary
// on axis may move in the given direction while the cell's reference range
// stays correct. Subset mode refuses any neighbor whose references are not
// already covered; exact mode additionally bounds the growth against the
// true geometry of uncovered references. The result is zero or
// direction-signed (>= 0 for dirHi, <= 0 for dirLo). Reads only.
func findOverlap(p expandParams, entries []Entry, refIDs []int32, cells []Cell,
	prims []Primitive, axis, dir int, exact bool, cell Cell) int32 {

	var d int32
	if dir == dirHi {
		if cell.Max[axis] >= p.fineDims[axis] {
			return 0
		}
		d = p.fineDims[axis] - cell.Max[axis]
	} else {
		if cell.Min[axis] <= 0 {
			return 0
		}
		d = -cell.Min[axis]
	}

	axis1 := (axis + 1) % 3
	axis2 := (axis + 2) % 3

	// First voxel column on the far side of the moving boundary.
	var cb int32
	if dir == dirHi {
		cb = cell.Max[axis]
	} else {
		cb = cell.Min[axis] - 1
	}

	cellRefs := refIDs[cell.Begin:cell.End]

	// 2D sweep over the neighbor strip covering the whole cell face.
	k1 := cell.Min[axis1]
	for k1 < cell.Max[axis1] && d != 0 {
		row1 := cell.Max[axis1]
		k2 := cell.Min[axis2]
		for k2 < cell.Max[axis2] && d != 0 {
			var voxel IVec3
			voxel[axis] = cb
			voxel[axis1] = k1
			voxel[axis2] = k2
			nb := cells[LookupEntry(entries, p.shift, p.topDims, voxel)]

			// The cell can absorb the neighbor at most up to the
			// neighbor's far boundary.
			if dir == dirHi {
				d = imin(d, nb.Max[axis]-cell.Max[axis])
			} else {
				d = imax(d, nb.Min[axis]-cell.Min[axis])
			}

			if !exact {
				if !isSubset(cellRefs, refIDs[nb.Begin:nb.End]) {
					return 0
				}
			} else {
				d = exactOverlapLimit(p, refIDs, prims, axis, dir, d, cell, nb)
			}

			if nb.Max[axis1] < row1 {
				row1 = nb.Max[axis1]
			}
			k2 = nb.Max[axis2]
		}
		k1 = row1
	}
	return d
}

// exactOverlapLimit tightens d against every reference of the neighbor that
// the cell does not already carry. For each such reference it bisects on
// the integer step count, keeping the largest move whose swept slab stays
// clear of the primitive. The cursor into the cell's references only
// advances on hits; both lists share the builder's ascending order.
func exactOverlapLimit(p expandParams, refIDs []int32, prims []Primitive,
	axis, dir int, d int32, cell, nb Cell) int32 {

	if d == 0 {
		return 0
	}
	sign := int32(1)
	if dir == dirLo {
		sign = -1
	}

	cellRefs := refIDs[cell.Begin:cell.End]
	first := 0
	for _, ref := range refIDs[nb.Begin:nb.End] {
		if found := bisection(cellRefs[first:], ref); found >= 0 {
			first += found + 1
			continue
		}

		prim := prims[ref]
		lo, hi := int32(0), d*sign
		for lo < hi {
			mid := lo + (hi-lo+1)/2
			if prim.Overlaps(sweptSlab(p, axis, dir, mid*sign, cell)) {
				hi = mid - 1
			} else {
				lo = mid
			}
		}
		d = lo * sign
		if d == 0 {
			return 0
		}
	}
	return d
}
