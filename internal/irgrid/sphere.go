package irgrid

import "github.com/go-gl/mathgl/mgl64"

// Sphere primitive.
type Sphere struct {
	Center mgl64.Vec3
	Radius Real
}

func (s Sphere) Bounds() BBox {
	r := mgl64.Vec3{s.Radius, s.Radius, s.Radius}
	return BBox{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

// Overlaps tests the squared distance from the center to the closest point
// of the box against the squared radius. Exact for spheres.
func (s Sphere) Overlaps(b BBox) bool {
	d2 := Real(0)
	for a := 0; a < 3; a++ {
		if c := s.Center[a]; c < b.Min[a] {
			d2 += (b.Min[a] - c) * (b.Min[a] - c)
		} else if c > b.Max[a] {
			d2 += (c - b.Max[a]) * (c - b.Max[a])
		}
	}
	return d2 <= s.Radius*s.Radius
}
