package utils

// AddWithOverflow adds two offsets, reporting whether the result leaves
// the 16-bit range a row's index table can address.
func AddWithOverflow(a int, b int) (int, bool) {
	if (a > 0 && b > 0 && a > (1<<16)-1-b) ||
		(a < 0 && b < 0 && a < -(1<<16)-b) {
		return 0, true
	}

	return a + b, false
}

func PointerTo[T any](v T) *T {
	return &v
}
