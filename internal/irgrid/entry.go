package irgrid

// Entry is one node of the voxel map, packed into 32 bits: the low
// LogDimBits hold the log2 of the node's child block dimension (0 for
// leaves), the remaining bits hold the child block offset (internal nodes)
// or the cell index (leaves). The layout is a wire contract: MakeEntry and
// the accessors must stay exact inverses.
type Entry uint32

const (
	LogDimBits = 2
	BeginBits  = 32 - LogDimBits

	MaxLogDim = 1<<LogDimBits - 1
	MaxBegin  = 1<<BeginBits - 1
)

func MakeEntry(logDim, begin int32) Entry {
	return Entry(uint32(logDim) | uint32(begin)<<LogDimBits)
}

// LogDim is 0 for leaves, otherwise the log2 of the child block dimension.
func (e Entry) LogDim() int32 { return int32(e) & MaxLogDim }

// Begin is the child block offset for internal nodes, the cell index for
// leaves.
func (e Entry) Begin() int32 { return int32(e >> LogDimBits) }

// LookupEntry resolves a finest-level voxel coordinate to the index of the
// leaf cell containing it. topDims are the top-level dimensions (finest
// dimensions right-shifted by shift). Termination is guaranteed by
// construction: every descent consumes at least one level of the map.
func LookupEntry(entries []Entry, shift int32, topDims IVec3, voxel IVec3) int32 {
	e := entries[(voxel[0]>>shift)+topDims[0]*((voxel[1]>>shift)+topDims[1]*(voxel[2]>>shift))]
	logDim := e.LogDim()
	d := logDim
	for logDim != 0 {
		begin := e.Begin()
		mask := int32(1)<<logDim - 1

		kx := (voxel[0] >> (shift - d)) & mask
		ky := (voxel[1] >> (shift - d)) & mask
		kz := (voxel[2] >> (shift - d)) & mask
		e = entries[begin+kx+((ky+(kz<<logDim))<<logDim)]
		logDim = e.LogDim()
		d += logDim
	}
	return e.Begin()
}
