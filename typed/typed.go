// Package typed holds small generic helpers for numbers, strings, slices and
// maps.
package typed

import (
	"math"
	"strconv"
)

// Number is any built-in integer or floating point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// KV pairs a key with a float value.
type KV struct {
	Key   string
	Value float64
}

// Add returns the sum of a and b.
func Add(a, b float64) float64 {
	return a + b
}

// Concat joins two strings with a single space.
func Concat(str1, str2 string) string {
	return str1 + " " + str2
}

// Floor rounds n toward negative infinity.
func Floor(n float64) int {
	return int(math.Floor(n))
}

// ToStr formats n with the fewest digits that round-trip.
func ToStr(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// SumList returns the sum of values. An empty list sums to 0.
func SumList(values []float64) float64 {
	return SumMixedList(values)
}

// SumMixedList sums values of any numeric type as float64.
func SumMixedList[N Number](values []N) float64 {
	var total float64
	for _, v := range values {
		total += float64(v)
	}
	return total
}

// ToKV returns k paired with v squared.
func ToKV[N Number](k string, v N) KV {
	f := float64(v)
	return KV{Key: k, Value: f * f}
}

// ElementLength pairs each sequence with its length.
func ElementLength[S ~[]E, E any](seqs []S) []Pair[S, int] {
	out := make([]Pair[S, int], 0, len(seqs))
	for _, s := range seqs {
		out = append(out, Pair[S, int]{First: s, Second: len(s)})
	}
	return out
}

// Pair is a two-element tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// SafeFirstElement returns the first element of lst, or false when it is
// empty.
func SafeFirstElement[E any](lst []E) (E, bool) {
	if len(lst) == 0 {
		var zero E
		return zero, false
	}
	return lst[0], true
}

// SafelyGetValue returns m[key], or def if the key is absent. A nil map is
// treated as empty.
func SafelyGetValue[K comparable, V any](m map[K]V, key K, def V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// ZoomArray returns a new slice with every element of lst repeated factor
// times.
//
//	ZoomArray([]int{1, 2}, 3) // [1 1 1 2 2 2]
//
// A factor below one yields an empty slice.
func ZoomArray[E any](lst []E, factor int) []E {
	if factor <= 0 {
		return []E{}
	}
	out := make([]E, 0, zoomCapacity(len(lst), factor))
	for _, e := range lst {
		for range factor {
			out = append(out, e)
		}
	}
	return out
}

// zoomCapacity is n*factor, or 0 when the product would overflow.
func zoomCapacity(n, factor int) int {
	if n == 0 || factor > math.MaxInt/n {
		return 0
	}
	return n * factor
}
