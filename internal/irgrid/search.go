package irgrid

// bisection returns the index of target in refs, or -1 when absent.
// refs must be sorted ascending and duplicate-free. O(log n), no
// allocation.
func bisection(refs []int32, target int32) int {
	lo, hi := 0, len(refs)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case refs[mid] < target:
			lo = mid + 1
		case refs[mid] > target:
			hi = mid - 1
		default:
			return mid
		}
	}
	return -1
}

// isSubset reports whether every element of b is also in a. Both slices
// must be sorted ascending and duplicate-free. Merge-style scan,
// O(len(a)+len(b)).
func isSubset(a, b []int32) bool {
	if len(b) > len(a) {
		return false
	}
	i := 0
	for _, x := range b {
		for i < len(a) && a[i] < x {
			i++
		}
		if i >= len(a) || a[i] != x {
			return false
		}
		i++
	}
	return true
}
