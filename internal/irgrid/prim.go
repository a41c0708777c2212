package irgrid

// Primitive is the geometry the grid accelerates. Overlaps is the
// conservative box-intersection predicate: false positives only ever
// throttle cell growth or add spurious references, false negatives would
// break culling and are forbidden.
type Primitive interface {
	Bounds() BBox
	Overlaps(b BBox) bool
}
