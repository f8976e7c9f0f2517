package collections

// FindLastIndex returns the highest index of s whose value satisfies pred,
// or -1 if none does.
func FindLastIndex[T any](s []T, pred func(T) bool) int {
	for i := len(s) - 1; i >= 0; i-- {
		if pred(s[i]) {
			return i
		}
	}
	return -1
}

// FindLastIndexFunc is FindLastIndex with a predicate that also receives the
// index and the whole slice.
func FindLastIndexFunc[T any](s []T, pred func(v T, i int, s []T) bool) int {
	for i := len(s) - 1; i >= 0; i-- {
		if pred(s[i], i, s) {
			return i
		}
	}
	return -1
}
