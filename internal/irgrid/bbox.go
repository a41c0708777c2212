package irgrid

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BBox is a world-space axis-aligned bounding box.
type BBox struct {
	Min, Max mgl64.Vec3
}

// EmptyBBox returns an inverted box that extends to nothing.
func EmptyBBox() BBox {
	inf := math.Inf(1)
	return BBox{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

func (b BBox) Extents() mgl64.Vec3 {
	return mgl64.Vec3{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// Extend grows the box to contain the point.
func (b BBox) Extend(p mgl64.Vec3) BBox {
	return BBox{
		Min: mgl64.Vec3{rmin(b.Min[0], p[0]), rmin(b.Min[1], p[1]), rmin(b.Min[2], p[2])},
		Max: mgl64.Vec3{rmax(b.Max[0], p[0]), rmax(b.Max[1], p[1]), rmax(b.Max[2], p[2])},
	}
}

// Union grows the box to contain another box.
func (b BBox) Union(o BBox) BBox {
	return b.Extend(o.Min).Extend(o.Max)
}

// Overlaps reports whether the boxes intersect. Touching faces count as an
// intersection, which keeps downstream membership tests conservative.
func (b BBox) Overlaps(o BBox) bool {
	return b.Min[0] <= o.Max[0] && b.Max[0] >= o.Min[0] &&
		b.Min[1] <= o.Max[1] && b.Max[1] >= o.Min[1] &&
		b.Min[2] <= o.Max[2] && b.Max[2] >= o.Min[2]
}
