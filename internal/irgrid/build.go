package irgrid

import "github.com/go-gl/mathgl/mgl64"

// gridBox returns the world-space box of the finest-level voxel range
// [lo,hi).
func gridBox(min mgl64.Vec3, cellSize mgl64.Vec3, lo, hi IVec3) BBox {
	return BBox{
		Min: mgl64.Vec3{
			min[0] + Real(lo[0])*cellSize[0],
			min[1] + Real(lo[1])*cellSize[1],
			min[2] + Real(lo[2])*cellSize[2],
		},
		Max: mgl64.Vec3{
			min[0] + Real(hi[0])*cellSize[0],
			min[1] + Real(hi[1])*cellSize[1],
			min[2] + Real(hi[2])*cellSize[2],
		},
	}
}

// BuildGrid voxelizes prims into an initial irregular grid. density feeds
// the resolution heuristic, shift gives reference-dense top-level voxels
// one extra 2^shift subdivision level, threshold is the reference count
// above which a voxel is subdivided. Reference ranges come out sorted
// ascending and duplicate-free, all cells sharing one buffer.
func BuildGrid(prims []Primitive, density Real, shift int32, threshold int) *Grid {
	bb := EmptyBBox()
	for _, p := range prims {
		bb = bb.Union(p.Bounds())
	}
	// Pad so boundary primitives stay strictly inside and flat scenes keep
	// a non-zero volume.
	ext := bb.Extents()
	pad := rmax(rmax(ext[0], ext[1]), ext[2]) * 1e-4
	if pad == 0 {
		pad = 1e-4
	}
	bb.Min = bb.Min.Sub(mgl64.Vec3{pad, pad, pad})
	bb.Max = bb.Max.Add(mgl64.Vec3{pad, pad, pad})

	if shift < 0 {
		shift = 0
	}
	if shift > MaxLogDim {
		shift = MaxLogDim
	}

	dims := ComputeGridDims(bb, len(prims), density)
	for a := 0; a < 3; a++ {
		dims[a] = imin(dims[a], MaxTopDim)
	}

	fine := dims.Shl(shift)
	ext = bb.Extents()
	cellSize := mgl64.Vec3{
		ext[0] / Real(fine[0]),
		ext[1] / Real(fine[1]),
		ext[2] / Real(fine[2]),
	}

	// First pass: top-level reference lists, ascending by construction
	// (one forward scan over the primitives).
	topCount := int(dims[0]) * int(dims[1]) * int(dims[2])
	voxelRefs := make([][]int32, topCount)
	for id, prim := range prims {
		r := ComputeRange(dims, bb, prim.Bounds())
		for z := r.Lo[2]; z <= r.Hi[2]; z++ {
			for y := r.Lo[1]; y <= r.Hi[1]; y++ {
				for x := r.Lo[0]; x <= r.Hi[0]; x++ {
					lo := IVec3{x, y, z}.Shl(shift)
					hi := IVec3{x + 1, y + 1, z + 1}.Shl(shift)
					if prim.Overlaps(gridBox(bb.Min, cellSize, lo, hi)) {
						i := int(x) + int(dims[0])*(int(y)+int(dims[1])*int(z))
						voxelRefs[i] = append(voxelRefs[i], int32(id))
					}
				}
			}
		}
	}

	// Second pass: emit the voxel map, cells and the shared reference
	// buffer, subdividing dense voxels into one extra level.
	entries := make([]Entry, topCount, topCount+topCount/4)
	cells := make([]Cell, 0, topCount)
	refIDs := make([]int32, 0, topCount)
	side := int32(1) << shift

	appendCell := func(lo, hi IVec3, refs []int32) int32 {
		begin := int32(len(refIDs))
		refIDs = append(refIDs, refs...)
		cells = append(cells, Cell{Min: lo, Begin: begin, Max: hi, End: int32(len(refIDs))})
		return int32(len(cells) - 1)
	}

	i := 0
	for z := int32(0); z < dims[2]; z++ {
		for y := int32(0); y < dims[1]; y++ {
			for x := int32(0); x < dims[0]; x++ {
				refs := voxelRefs[i]
				vmin := IVec3{x, y, z}.Shl(shift)

				if shift > 0 && len(refs) > threshold {
					blockBegin := int32(len(entries))
					entries[i] = MakeEntry(shift, blockBegin)
					for n := int32(0); n < side*side*side; n++ {
						entries = append(entries, 0)
					}
					for kz := int32(0); kz < side; kz++ {
						for ky := int32(0); ky < side; ky++ {
							for kx := int32(0); kx < side; kx++ {
								lo := vmin.Add(IVec3{kx, ky, kz})
								hi := lo.Add(IVec3{1, 1, 1})
								cbox := gridBox(bb.Min, cellSize, lo, hi)
								var sub []int32
								for _, id := range refs {
									if prims[id].Overlaps(cbox) {
										sub = append(sub, id)
									}
								}
								ci := appendCell(lo, hi, sub)
								entries[blockBegin+kx+((ky+(kz<<shift))<<shift)] = MakeEntry(0, ci)
							}
						}
					}
				} else {
					ci := appendCell(vmin, IVec3{x + 1, y + 1, z + 1}.Shl(shift), refs)
					entries[i] = MakeEntry(0, ci)
				}
				i++
			}
		}
	}

	offsets := []int32{0}
	if len(entries) > topCount {
		offsets = append(offsets, int32(topCount))
	}

	return &Grid{
		Entries: entries,
		RefIDs:  refIDs,
		Cells:   cells,
		BBox:    bb,
		Dims:    dims,
		Shift:   shift,
		Offsets: offsets,
	}
}
