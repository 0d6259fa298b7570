package gray

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNegative(t *testing.T) {
	tests := []struct {
		name   string
		maxval uint8
		in     []uint8
		want   []uint8
	}{
		{"full_range", 255, []uint8{0, 1, 128, 255}, []uint8{255, 254, 127, 0}},
		{"small_maxval", 100, []uint8{0, 30, 99, 100}, []uint8{100, 70, 1, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img := newTestImage(t, len(tc.in), 1, tc.maxval, tc.in...)
			Negative(img)
			if diff := cmp.Diff(tc.want, img.Samples()); diff != "" {
				t.Errorf("Negative (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNegative_SelfInverse(t *testing.T) {
	img := rampImage(t, 17, 9)
	orig := img.Clone()
	Negative(img)
	Negative(img)
	if !Equal(img, orig) {
		t.Error("Negative applied twice should restore the original")
	}
}

func TestThreshold(t *testing.T) {
	tests := []struct {
		name   string
		maxval uint8
		thr    uint8
		in     []uint8
		want   []uint8
	}{
		{"basic", 255, 15, []uint8{0, 10, 20, 30}, []uint8{0, 0, 255, 255}},
		{"equal_is_white", 255, 10, []uint8{9, 10, 11}, []uint8{0, 255, 255}},
		{"small_maxval", 50, 25, []uint8{24, 25, 50}, []uint8{0, 50, 50}},
		{"zero_threshold", 255, 0, []uint8{0, 1}, []uint8{255, 255}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img := newTestImage(t, len(tc.in), 1, tc.maxval, tc.in...)
			Threshold(img, tc.thr)
			if diff := cmp.Diff(tc.want, img.Samples()); diff != "" {
				t.Errorf("Threshold(%d) (-want +got):\n%s", tc.thr, diff)
			}
		})
	}
}

func TestBrighten(t *testing.T) {
	tests := []struct {
		name   string
		maxval uint8
		factor float64
		in     []uint8
		want   []uint8
	}{
		{"identity", 255, 1.0, []uint8{0, 7, 255}, []uint8{0, 7, 255}},
		{"double_saturates", 255, 2.0, []uint8{10, 100, 200}, []uint8{20, 200, 255}},
		{"darken_truncates", 255, 0.5, []uint8{3, 9, 255}, []uint8{1, 4, 127}},
		{"negative_factor", 255, -3, []uint8{10, 200}, []uint8{0, 0}},
		{"saturates_at_maxval", 100, 1.5, []uint8{60, 70, 100}, []uint8{90, 100, 100}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img := newTestImage(t, len(tc.in), 1, tc.maxval, tc.in...)
			Brighten(img, tc.factor)
			if diff := cmp.Diff(tc.want, img.Samples()); diff != "" {
				t.Errorf("Brighten(%v) (-want +got):\n%s", tc.factor, diff)
			}
		})
	}
}

func TestShift(t *testing.T) {
	tests := []struct {
		name   string
		maxval uint8
		delta  int
		in     []uint8
		want   []uint8
	}{
		{"up", 255, 10, []uint8{0, 250, 255}, []uint8{10, 255, 255}},
		{"down", 255, -10, []uint8{5, 10, 200}, []uint8{0, 0, 190}},
		{"zero", 255, 0, []uint8{1, 2}, []uint8{1, 2}},
		{"maxval_ceiling", 40, 15, []uint8{20, 30}, []uint8{35, 40}},
		{"huge_delta", 255, 1000, []uint8{0}, []uint8{255}},
		{"huge_negative", 255, -1000, []uint8{255}, []uint8{0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img := newTestImage(t, len(tc.in), 1, tc.maxval, tc.in...)
			Shift(img, tc.delta)
			if diff := cmp.Diff(tc.want, img.Samples()); diff != "" {
				t.Errorf("Shift(%d) (-want +got):\n%s", tc.delta, diff)
			}
		})
	}
}

func TestPointOps_EmptyImage(t *testing.T) {
	img, _ := New(0, 0, 255)
	Negative(img)
	Threshold(img, 10)
	Brighten(img, 2)
	Shift(img, 5)
	if img.Width() != 0 || img.Height() != 0 {
		t.Error("point ops should leave an empty image empty")
	}
}

func TestPointOps_NilImage(t *testing.T) {
	mustPanic(t, "Negative", func() { Negative(nil) })
	mustPanic(t, "Threshold", func() { Threshold(nil, 1) })
	mustPanic(t, "Brighten", func() { Brighten(nil, 1) })
}

func TestSaturate(t *testing.T) {
	tests := []struct {
		v    float64
		hi   uint8
		want uint8
	}{
		{300.7, 255, 255},
		{12.9, 255, 12},
		{-4, 255, 0},
		{-0.5, 255, 0},
		{99.99, 100, 99},
		{100, 100, 100},
	}
	for _, tc := range tests {
		if got := saturate(tc.v, tc.hi); got != tc.want {
			t.Errorf("saturate(%v, %d): got %d, want %d", tc.v, tc.hi, got, tc.want)
		}
	}
}
