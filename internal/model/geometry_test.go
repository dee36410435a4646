package model

import "testing"

func TestRectIsEmpty(t *testing.T) {
	if !(Rect{}).IsEmpty() {
		t.Error("zero Rect should be empty")
	}
	if (Rect{W: 1}).IsEmpty() {
		t.Error("Rect with nonzero width should not be empty")
	}
	if (Rect{H: 1}).IsEmpty() {
		t.Error("Rect with nonzero height should not be empty")
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 4, H: 6}
	got := r.Center()
	want := Point{X: 12, Y: 23}
	if got != want {
		t.Errorf("Center() = %+v, want %+v", got, want)
	}
}

func TestCoordFormatString(t *testing.T) {
	cases := map[CoordFormat]string{
		CoordAbsolute:     "absolute",
		CoordLeftTopLocal: "left-top-local",
		CoordCenterLocal:  "center-local",
	}
	for f, want := range cases {
		if got := f.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", f, got, want)
		}
	}
}
