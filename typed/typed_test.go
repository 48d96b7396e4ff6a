package typed

import (
	"math"
	"reflect"
	"testing"
)

func TestScalars(t *testing.T) {
	if got := Add(1.11, 2.22); got != 1.11+2.22 {
		t.Errorf("Add = %v", got)
	}
	if got := Concat("egg", "shell"); got != "egg shell" {
		t.Errorf("Concat = %q, want %q", got, "egg shell")
	}
	if got := ToKV("eggs", 3); got != (KV{Key: "eggs", Value: 9}) {
		t.Errorf("ToKV = %+v", got)
	}
	if got := ToKV("half", 0.5); got.Value != 0.25 {
		t.Errorf("ToKV float = %+v", got)
	}
}

func TestFloor(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{3.14, 3},
		{3.0, 3},
		{0, 0},
		{-0.5, -1},
		{-3.0, -3},
		{-3.7, -4},
	}

	for _, tt := range tests {
		if got := Floor(tt.in); got != tt.want {
			t.Errorf("Floor(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestToStr(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3.14, "3.14"},
		{2, "2"},
		{-0.5, "-0.5"},
	}

	for _, tt := range tests {
		if got := ToStr(tt.in); got != tt.want {
			t.Errorf("ToStr(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSums(t *testing.T) {
	if got := SumList([]float64{3.14, 1.11, 2.22}); got < 6.469 || got > 6.471 {
		t.Errorf("SumList = %v", got)
	}
	if got := SumList(nil); got != 0 {
		t.Errorf("SumList(nil) = %v", got)
	}
	if got := SumMixedList([]int{5, 4, 3}); got != 12 {
		t.Errorf("SumMixedList ints = %v", got)
	}
	if got := SumMixedList([]float32{0.5, 0.25}); got != 0.75 {
		t.Errorf("SumMixedList float32 = %v", got)
	}
}

func TestElementLength(t *testing.T) {
	got := ElementLength([][]int{{1, 2}, {}, {3}})
	want := []Pair[[]int, int]{
		{First: []int{1, 2}, Second: 2},
		{First: []int{}, Second: 0},
		{First: []int{3}, Second: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ElementLength = %+v, want %+v", got, want)
	}
}

func TestSafeFirstElement(t *testing.T) {
	if v, ok := SafeFirstElement([]string{"x", "y"}); !ok || v != "x" {
		t.Errorf("SafeFirstElement = (%q, %v)", v, ok)
	}
	if v, ok := SafeFirstElement[int](nil); ok || v != 0 {
		t.Errorf("SafeFirstElement(nil) = (%d, %v)", v, ok)
	}
}

func TestSafelyGetValue(t *testing.T) {
	m := map[string]int{"a": 1}

	tests := []struct {
		name string
		m    map[string]int
		key  string
		want int
	}{
		{"present", m, "a", 1},
		{"absent", m, "b", -1},
		{"nil map", nil, "a", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafelyGetValue(tt.m, tt.key, -1); got != tt.want {
				t.Errorf("SafelyGetValue = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestZoomCapacity(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		factor int
		want   int
	}{
		{"small", 3, 2, 6},
		{"empty", 0, math.MaxInt, 0},
		{"at the limit", 1, math.MaxInt, math.MaxInt},
		{"overflow", 2, math.MaxInt/2 + 1, 0},
		{"large overflow", 1 << 20, math.MaxInt / 1024, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := zoomCapacity(tt.n, tt.factor); got != tt.want {
				t.Errorf("zoomCapacity(%d, %d) = %d, want %d", tt.n, tt.factor, got, tt.want)
			}
		})
	}
}

func TestZoomArray_HugeFactorEmptyInput(t *testing.T) {
	if got := ZoomArray([]int{}, math.MaxInt/2+1); len(got) != 0 {
		t.Errorf("ZoomArray(empty, huge) = %v, want empty", got)
	}
}

func TestZoomArray(t *testing.T) {
	tests := []struct {
		name   string
		in     []int
		factor int
		want   []int
	}{
		{"double", []int{12, 72, 91}, 2, []int{12, 12, 72, 72, 91, 91}},
		{"triple", []int{12, 72, 91}, 3, []int{12, 12, 12, 72, 72, 72, 91, 91, 91}},
		{"identity", []int{1, 2}, 1, []int{1, 2}},
		{"zero factor", []int{1, 2}, 0, []int{}},
		{"empty input", nil, 4, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ZoomArray(tt.in, tt.factor)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ZoomArray(%v, %d) = %v, want %v", tt.in, tt.factor, got, tt.want)
			}
		})
	}
}
