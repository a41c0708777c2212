package irgrid

const (
	DefaultDensity         = 0.12 // top-level cells per primitive per unit volume
	DefaultShift           = 2
	DefaultSubdivThreshold = 16 // references above which a voxel is subdivided
	DefaultIterations      = 3  // expansion iterations (last one exact)
	MaxTopDim              = 1 << 10
)
