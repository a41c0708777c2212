package irgrid

import "github.com/go-gl/mathgl/mgl64"

type Real = float64

// IVec3 is an integer coordinate triple in grid-cell units.
type IVec3 [3]int32

func (v IVec3) Add(o IVec3) IVec3 { return IVec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }
func (v IVec3) Shl(s int32) IVec3 { return IVec3{v[0] << s, v[1] << s, v[2] << s} }
func (v IVec3) Shr(s int32) IVec3 { return IVec3{v[0] >> s, v[1] >> s, v[2] >> s} }

// Vec3 converts grid coordinates to a world-space vector (no scaling).
func (v IVec3) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{Real(v[0]), Real(v[1]), Real(v[2])}
}

// USVec3 is a compressed 16-bit coordinate triple used by SmallCell.
type USVec3 [3]uint16

func (v USVec3) IVec3() IVec3 { return IVec3{int32(v[0]), int32(v[1]), int32(v[2])} }

func imin(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func imax(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func rmin(a, b Real) Real {
	if a < b {
		return a
	}
	return b
}

func rmax(a, b Real) Real {
	if a > b {
		return a
	}
	return b
}
