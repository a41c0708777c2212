package irgrid

import "github.com/go-gl/mathgl/mgl64"

// Box is an axis-aligned box primitive.
type Box struct {
	Min, Max mgl64.Vec3
}

func (b Box) Bounds() BBox { return BBox{Min: b.Min, Max: b.Max} }

func (b Box) Overlaps(o BBox) bool { return b.Bounds().Overlaps(o) }
