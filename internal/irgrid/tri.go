package irgrid

import "github.com/go-gl/mathgl/mgl64"

// Triangle primitive.
type Triangle struct {
	A, B, C mgl64.Vec3
}

func (t Triangle) Bounds() BBox {
	return EmptyBBox().Extend(t.A).Extend(t.B).Extend(t.C)
}

// Overlaps is conservative: the triangle's bounding box must intersect the
// box and the box must straddle (or touch) the triangle's plane. Degenerate
// triangles fall back to the bounding-box test alone.
func (t Triangle) Overlaps(b BBox) bool {
	if !t.Bounds().Overlaps(b) {
		return false
	}

	n := t.B.Sub(t.A).Cross(t.C.Sub(t.A))
	if n.Len() == 0 {
		return true
	}

	// Signed distances of all eight box corners to the triangle plane.
	// All strictly on one side means no intersection.
	pos, neg := false, false
	for i := 0; i < 8; i++ {
		corner := mgl64.Vec3{b.Min[0], b.Min[1], b.Min[2]}
		if i&1 != 0 {
			corner[0] = b.Max[0]
		}
		if i&2 != 0 {
			corner[1] = b.Max[1]
		}
		if i&4 != 0 {
			corner[2] = b.Max[2]
		}
		d := n.Dot(corner.Sub(t.A))
		if d >= 0 {
			pos = true
		}
		if d <= 0 {
			neg = true
		}
	}
	return pos && neg
}
