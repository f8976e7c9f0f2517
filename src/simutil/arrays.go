package simutil

import (
	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Avg returns the arithmetic mean of xs, or 0 when xs is empty.
func Avg[T Number](xs []T) float64 {
	if len(xs) == 0 {
		return 0
	}
	fs := make([]float64, len(xs))
	for i, x := range xs {
		fs[i] = float64(x)
	}
	return stat.Mean(fs, nil)
}

func ArrayEquals[T comparable](a, b []T) bool {
	return slices.Equal(a, b)
}

// ArrayGroupBy buckets xs by the key returned for each value, keeping the
// original order inside every bucket.
func ArrayGroupBy[T any](xs []T, key func(v T, i int, xs []T) string) map[string][]T {
	groups := make(map[string][]T)
	for i, v := range xs {
		k := key(v, i, xs)
		groups[k] = append(groups[k], v)
	}
	return groups
}

// IsSingletonArray reports whether xs holds exactly one distinct value.
func IsSingletonArray[T comparable](xs []T) bool {
	return mapset.NewSet(xs...).Cardinality() == 1
}

// IsSingletonArrayBy reports whether key maps every value of xs to the same
// result. An empty slice is not a singleton.
func IsSingletonArrayBy[T any, K comparable](xs []T, key func(T) K) bool {
	keys := mapset.NewSet[K]()
	for _, v := range xs {
		keys.Add(key(v))
		if keys.Cardinality() > 1 {
			return false
		}
	}
	return keys.Cardinality() == 1
}

// MakeUniqueArray drops repeated values, keeping first occurrences in order.
func MakeUniqueArray[T comparable](xs []T) []T {
	seen := mapset.NewSet[T]()
	out := make([]T, 0, len(xs))
	for _, v := range xs {
		if seen.Add(v) {
			out = append(out, v)
		}
	}
	return out
}
