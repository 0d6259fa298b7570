package gray

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// mustPanic fails the test unless fn panics.
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

// newTestImage builds a width x height image from row-major samples.
func newTestImage(t *testing.T, width, height int, maxval uint8, samples ...uint8) *Image {
	t.Helper()
	img, err := FromSamples(width, height, maxval, samples)
	if err != nil {
		t.Fatalf("FromSamples(%d, %d): %v", width, height, err)
	}
	return img
}

// rampImage returns a deterministic, non-uniform image.
func rampImage(t testing.TB, width, height int) *Image {
	t.Helper()
	img, err := New(width, height, PixMax)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", width, height, err)
	}
	for i := range img.pix {
		img.pix[i] = uint8((i*7 + i/width*13) % 256)
	}
	return img
}

func TestNew(t *testing.T) {
	img, err := New(100, 50, 255)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if img.Width() != 100 {
		t.Errorf("Width: got %d, want 100", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Height: got %d, want 50", img.Height())
	}
	if img.Maxval() != 255 {
		t.Errorf("Maxval: got %d, want 255", img.Maxval())
	}
	for y := range 50 {
		for x := range 100 {
			if v := img.At(x, y); v != 0 {
				t.Fatalf("At(%d,%d): got %d, want 0 (black)", x, y, v)
			}
		}
	}
}

func TestNew_ZeroDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 10}, {10, 0}} {
		img, err := New(dims[0], dims[1], 255)
		if err != nil {
			t.Fatalf("New(%d, %d): %v", dims[0], dims[1], err)
		}
		if img.Width() != dims[0] || img.Height() != dims[1] {
			t.Errorf("got %dx%d, want %dx%d", img.Width(), img.Height(), dims[0], dims[1])
		}
	}
}

func TestNew_Preconditions(t *testing.T) {
	mustPanic(t, "negative width", func() { _, _ = New(-1, 10, 255) })
	mustPanic(t, "negative height", func() { _, _ = New(10, -1, 255) })
	mustPanic(t, "zero maxval", func() { _, _ = New(10, 10, 0) })
}

func TestNew_Allocation(t *testing.T) {
	img, err := New(MaxPixels, 2, 255)
	if !errors.Is(err, ErrAllocation) {
		t.Errorf("New(MaxPixels, 2): got err %v, want ErrAllocation", err)
	}
	if img != nil {
		t.Error("New should not return an image on failure")
	}
}

func TestFromSamples(t *testing.T) {
	img := newTestImage(t, 3, 2, 100, 1, 2, 3, 4, 5, 6)
	if got := img.At(2, 1); got != 6 {
		t.Errorf("At(2,1): got %d, want 6", got)
	}

	samples := []uint8{1, 2, 3, 4}
	img = newTestImage(t, 2, 2, 255, samples...)
	samples[0] = 99
	if img.At(0, 0) != 1 {
		t.Error("FromSamples should copy its input")
	}

	if _, err := FromSamples(2, 2, 255, []uint8{1, 2, 3}); !errors.Is(err, ErrSize) {
		t.Errorf("short samples: got %v, want ErrSize", err)
	}
	if _, err := FromSamples(2, 1, 10, []uint8{1, 11}); !errors.Is(err, ErrSampleRange) {
		t.Errorf("sample above maxval: got %v, want ErrSampleRange", err)
	}
}

func TestImage_AtSet(t *testing.T) {
	img := rampImage(t, 10, 8)
	before := img.Samples()

	img.Set(5, 7, 42)
	if got := img.At(5, 7); got != 42 {
		t.Errorf("At(5,7): got %d, want 42", got)
	}

	// Every other position is unchanged.
	after := img.Samples()
	before[7*10+5] = 42
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("Set touched other positions (-want +got):\n%s", diff)
	}
}

func TestImage_AtSetOutOfBounds(t *testing.T) {
	img, _ := New(10, 10, 255)
	mustPanic(t, "At(-1,0)", func() { img.At(-1, 0) })
	mustPanic(t, "At(0,-1)", func() { img.At(0, -1) })
	mustPanic(t, "At(10,0)", func() { img.At(10, 0) })
	mustPanic(t, "Set(0,10)", func() { img.Set(0, 10, 1) })

	small, _ := New(2, 2, 100)
	mustPanic(t, "Set above maxval", func() { small.Set(0, 0, 101) })
}

func TestImage_ValidPos(t *testing.T) {
	img, _ := New(4, 3, 255)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{3, 2, true},
		{4, 0, false},
		{0, 3, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, tc := range tests {
		if got := img.ValidPos(tc.x, tc.y); got != tc.want {
			t.Errorf("ValidPos(%d,%d): got %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestImage_ValidRect(t *testing.T) {
	img, _ := New(10, 5, 255)
	tests := []struct {
		name       string
		x, y, w, h int
		want       bool
	}{
		{"whole", 0, 0, 10, 5, true},
		{"inner", 2, 1, 3, 3, true},
		{"touching_corner", 9, 4, 1, 1, true},
		{"too_wide", 1, 0, 10, 5, false},
		{"too_tall", 0, 1, 10, 5, false},
		{"negative_x", -1, 0, 2, 2, false},
		{"negative_y", 0, -1, 2, 2, false},
		{"zero_width", 0, 0, 0, 2, false},
		{"zero_height", 0, 0, 2, 0, false},
		{"negative_width", 5, 0, -2, 2, false},
		{"width_overflows", 1, 0, math.MaxInt, 1, false},
		{"height_overflows", 0, 1, 1, math.MaxInt, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := img.ValidRect(tc.x, tc.y, tc.w, tc.h); got != tc.want {
				t.Errorf("ValidRect(%d,%d,%d,%d): got %v, want %v", tc.x, tc.y, tc.w, tc.h, got, tc.want)
			}
		})
	}
}

func TestImage_Stats(t *testing.T) {
	fresh, _ := New(7, 3, 255)
	if lo, hi := fresh.Stats(); lo != 0 || hi != 0 {
		t.Errorf("fresh Stats: got (%d,%d), want (0,0)", lo, hi)
	}

	empty, _ := New(0, 0, 255)
	if lo, hi := empty.Stats(); lo != 0 || hi != 0 {
		t.Errorf("empty Stats: got (%d,%d), want (0,0)", lo, hi)
	}

	img := newTestImage(t, 3, 2, 255, 40, 12, 200, 99, 13, 150)
	if lo, hi := img.Stats(); lo != 12 || hi != 200 {
		t.Errorf("Stats: got (%d,%d), want (12,200)", lo, hi)
	}
}

func TestImage_Release(t *testing.T) {
	img := rampImage(t, 4, 4)
	img.Release()
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("released image: got %dx%d, want 0x0", img.Width(), img.Height())
	}
	img.Release() // idempotent

	var nilImg *Image
	nilImg.Release()
}

func TestImage_Clone(t *testing.T) {
	img := rampImage(t, 10, 10)
	clone := img.Clone()

	if !Equal(img, clone) {
		t.Fatal("Clone should equal the original")
	}

	original := img.At(5, 5)
	clone.Set(5, 5, PixMax-original)
	if img.At(5, 5) != original {
		t.Error("Clone should be independent")
	}
}

func TestImage_Fill(t *testing.T) {
	img, _ := New(10, 10, 200)
	img.Fill(42)
	for y := range 10 {
		for x := range 10 {
			if img.At(x, y) != 42 {
				t.Fatalf("Fill: At(%d,%d) = %d, want 42", x, y, img.At(x, y))
			}
		}
	}
	mustPanic(t, "Fill above maxval", func() { img.Fill(201) })
}

func TestImage_Samples(t *testing.T) {
	img := newTestImage(t, 2, 2, 255, 1, 2, 3, 4)
	got := img.Samples()
	if diff := cmp.Diff([]uint8{1, 2, 3, 4}, got); diff != "" {
		t.Errorf("Samples (-want +got):\n%s", diff)
	}
	got[0] = 100
	if img.At(0, 0) != 1 {
		t.Error("Samples should return a copy")
	}
}

func TestEqual(t *testing.T) {
	a := newTestImage(t, 2, 1, 255, 1, 2)
	b := newTestImage(t, 2, 1, 255, 1, 2)
	c := newTestImage(t, 2, 1, 254, 1, 2)
	d := newTestImage(t, 1, 2, 255, 1, 2)

	if !Equal(a, b) {
		t.Error("Equal should return true for identical images")
	}
	if Equal(a, c) {
		t.Error("Equal should compare maxval")
	}
	if Equal(a, d) {
		t.Error("Equal should compare dimensions")
	}
}

func TestImage_Bounds(t *testing.T) {
	img, _ := New(100, 50, 255)
	bounds := img.Bounds()

	if bounds.X0 != 0 || bounds.Y0 != 0 {
		t.Errorf("Bounds origin: got (%d,%d), want (0,0)", bounds.X0, bounds.Y0)
	}
	if bounds.Width() != 100 || bounds.Height() != 50 {
		t.Errorf("Bounds dimensions: got %dx%d, want 100x50", bounds.Width(), bounds.Height())
	}
}

func TestRect(t *testing.T) {
	r := Region(10, 20, 90, 60)

	if r.Width() != 90 {
		t.Errorf("Width: got %d, want 90", r.Width())
	}
	if r.Height() != 60 {
		t.Errorf("Height: got %d, want 60", r.Height())
	}
	if r.IsEmpty() {
		t.Error("IsEmpty: got true, want false")
	}

	got := r.Intersect(Rect{X0: 50, Y0: 0, X1: 200, Y1: 30})
	want := Rect{X0: 50, Y0: 20, X1: 100, Y1: 30}
	if got != want {
		t.Errorf("Intersect: got %+v, want %+v", got, want)
	}

	disjoint := r.Intersect(Rect{X0: 0, Y0: 0, X1: 5, Y1: 5})
	if !disjoint.IsEmpty() {
		t.Errorf("disjoint Intersect should be empty, got %+v", disjoint)
	}

	if !Region(1, 1, 2, 2).In(Region(0, 0, 3, 3)) {
		t.Error("In: inner rectangle should be inside")
	}
	if Region(2, 2, 2, 2).In(Region(0, 0, 3, 3)) {
		t.Error("In: overhanging rectangle should not be inside")
	}
}
