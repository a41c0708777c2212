package irgrid

import "fmt"

// Grid is an irregular spatial grid over a bounded scene. It exclusively
// owns all of its arrays. Cells and SmallCells are mutually exclusive: a
// grid is either expanded/uncompressed or compressed, never both.
type Grid struct {
	Entries []Entry // voxel map, one flat array
	RefIDs  []int32 // all cells' reference ranges, one shared buffer

	Cells      []Cell      // nil when compressed
	SmallCells []SmallCell // nil when uncompressed

	BBox    BBox    // scene bounding box
	Dims    IVec3   // top-level dimensions
	Shift   int32   // bits from the finest level up to the top level
	Offsets []int32 // offset to each level of the voxel map
}

// FineDims are the grid dimensions at the finest subdivision level.
func (g *Grid) FineDims() IVec3 { return g.Dims.Shl(g.Shift) }

func (g *Grid) NumCells() int   { return len(g.Cells) + len(g.SmallCells) }
func (g *Grid) NumEntries() int { return len(g.Entries) }
func (g *Grid) NumRefs() int    { return len(g.RefIDs) }

// MemUsage is the in-memory footprint of the grid's arrays, in bytes.
func (g *Grid) MemUsage() uint64 {
	const (
		entrySize     = 4
		refSize       = 4
		cellSize      = 32
		smallCellSize = 16
	)
	return uint64(len(g.Entries))*entrySize +
		uint64(len(g.RefIDs))*refSize +
		uint64(len(g.Cells))*cellSize +
		uint64(len(g.SmallCells))*smallCellSize +
		uint64(len(g.Offsets))*4
}

// Compress converts the grid to the 16-bit cell encoding with
// sentinel-terminated reference lists, replacing Cells and rewriting
// RefIDs. The grid must be uncompressed and its finest resolution must fit
// in 16 bits per axis.
func (g *Grid) Compress() error {
	if g.SmallCells != nil {
		return fmt.Errorf("grid is already compressed")
	}
	fine := g.FineDims()
	for a := 0; a < 3; a++ {
		if fine[a] > 0xFFFF {
			return fmt.Errorf("grid resolution %d on axis %d exceeds 16-bit cell bounds", fine[a], a)
		}
	}

	small := make([]SmallCell, len(g.Cells))
	refs := make([]int32, 0, len(g.RefIDs)+len(g.Cells))
	for i, c := range g.Cells {
		sc := SmallCell{
			Min:   USVec3{uint16(c.Min[0]), uint16(c.Min[1]), uint16(c.Min[2])},
			Max:   USVec3{uint16(c.Max[0]), uint16(c.Max[1]), uint16(c.Max[2])},
			Begin: RefSentinel,
		}
		if c.End > c.Begin {
			sc.Begin = int32(len(refs))
			refs = append(refs, g.RefIDs[c.Begin:c.End]...)
			refs = append(refs, RefSentinel)
		}
		small[i] = sc
	}

	g.SmallCells = small
	g.RefIDs = refs
	g.Cells = nil
	return nil
}
