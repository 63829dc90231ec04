package figure

import "testing"

func TestNewIsDegenerate(t *testing.T) {
	for _, k := range []Kind{Rectangle, Circle, Triangle} {
		f := New(k, 7, 9)
		if got, want := f.Bound(), (Rect{X: 7, Y: 9}); got != want {
			t.Errorf("%v: Bound() = %+v, want %+v", k, got, want)
		}
		if f.Anchor() != Pt(7, 9) {
			t.Errorf("%v: Anchor() = %+v, want (7,9)", k, f.Anchor())
		}
		if f.Color() != Black {
			t.Errorf("%v: Color() = %+v, want black", k, f.Color())
		}
		if f.Contains(Pt(7, 9)) {
			t.Errorf("%v: zero-area figure should contain nothing", k)
		}
	}
}

func TestResize(t *testing.T) {
	tests := []struct {
		name   string
		px, py int
		lock   bool
		want   Rect
	}{
		{"down right", 50, 40, false, Rect{10, 10, 40, 30}},
		{"up left", 0, 4, false, Rect{0, 4, 10, 6}},
		{"up right", 30, 0, false, Rect{10, 0, 20, 10}},
		{"down left", 5, 25, false, Rect{5, 10, 5, 15}},
		{"same point", 10, 10, false, Rect{10, 10, 0, 0}},
		{"locked wide", 50, 40, true, Rect{10, 10, 30, 30}},
		{"locked up left", 0, -30, true, Rect{0, 0, 10, 10}},
		{"locked tall", 12, 100, true, Rect{10, 10, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(Rectangle, 10, 10)
			f.Resize(tt.px, tt.py, tt.lock)
			if got := f.Bound(); got != tt.want {
				t.Errorf("Resize(%d, %d, %v) bound = %+v, want %+v", tt.px, tt.py, tt.lock, got, tt.want)
			}
			if got := f.Outline(); got != OutlineFor(Rectangle, tt.want) {
				t.Errorf("outline out of sync: %+v", got)
			}
		})
	}
}

func TestResizeSequenceTracksAnchor(t *testing.T) {
	f := New(Circle, 100, 100)
	samples := []Point{{120, 130}, {90, 70}, {100, 250}, {-5, 101}}
	for _, p := range samples {
		f.Resize(p.X, p.Y, false)
		b := f.Bound()
		if b.Width != abs(100-p.X) || b.Height != abs(100-p.Y) {
			t.Errorf("after Resize(%d, %d) size = %dx%d", p.X, p.Y, b.Width, b.Height)
		}
		f.Resize(p.X, p.Y, true)
		b = f.Bound()
		side := min(abs(100-p.X), abs(100-p.Y))
		if b.Width != side || b.Height != side {
			t.Errorf("after locked Resize(%d, %d) size = %dx%d, want %d", p.X, p.Y, b.Width, b.Height, side)
		}
	}
}

func TestCircleLockedResize(t *testing.T) {
	f := New(Circle, 0, 0)
	f.Resize(30, 10, true)
	if got, want := f.Bound(), (Rect{0, 0, 10, 10}); got != want {
		t.Errorf("bound = %+v, want %+v", got, want)
	}
	if f.Outline().Rect != f.Bound() {
		t.Errorf("ellipse box = %+v, want bound", f.Outline().Rect)
	}
}

func TestTriangleVertices(t *testing.T) {
	f := New(Triangle, 10, 10)
	f.Resize(50, 40, false)
	want := [3]Point{{30, 10}, {10, 40}, {50, 40}}
	if got := f.Outline().Vertices; got != want {
		t.Errorf("vertices = %v, want %v", got, want)
	}
}

func TestMergeIdempotent(t *testing.T) {
	for _, k := range []Kind{Rectangle, Circle, Triangle} {
		f := New(k, 3, 4)
		f.Resize(40, 33, false)
		before := f.Outline()
		f.merge()
		f.merge()
		if f.Outline() != before {
			t.Errorf("%v: outline changed on repeated merge: %+v != %+v", k, f.Outline(), before)
		}
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		name    string
		bound   Rect
		percent int
		want    Rect
	}{
		{"double", Rect{0, 0, 100, 50}, 10, Rect{0, 0, 200, 100}},
		{"one notch up", Rect{5, 6, 100, 50}, 1, Rect{5, 6, 110, 55}},
		{"one notch down", Rect{5, 6, 100, 50}, -1, Rect{5, 6, 90, 45}},
		{"truncates", Rect{0, 0, 15, 7}, -1, Rect{0, 0, 13, 6}},
		{"clamps at zero", Rect{0, 0, 15, 7}, -30, Rect{0, 0, 0, 0}},
		{"zero area", Rect{1, 1, 0, 0}, 5, Rect{1, 1, 0, 0}},
		{"no change", Rect{1, 1, 9, 9}, 0, Rect{1, 1, 9, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Restore(Triangle, tt.bound, Black)
			f.Scale(tt.percent)
			if got := f.Bound(); got != tt.want {
				t.Errorf("Scale(%d) bound = %+v, want %+v", tt.percent, got, tt.want)
			}
			if f.Outline() != OutlineFor(Triangle, tt.want) {
				t.Errorf("outline out of sync after Scale")
			}
		})
	}
}

func TestScaleKeepsLiveCorner(t *testing.T) {
	// Grown up-left from the anchor: the bound's corner differs from the anchor.
	f := New(Rectangle, 50, 50)
	f.Resize(10, 20, false)
	f.Scale(1)
	if got, want := f.Bound(), (Rect{10, 20, 44, 33}); got != want {
		t.Errorf("bound = %+v, want %+v", got, want)
	}
}

func TestMovePreservesGrabOffset(t *testing.T) {
	f := Restore(Circle, Rect{10, 10, 40, 30}, Black)
	f.SetDragOffset(15, 15)
	if f.DragOffset() != Pt(5, 5) {
		t.Fatalf("DragOffset() = %+v, want (5,5)", f.DragOffset())
	}
	f.Move(100, 100)
	if got, want := f.Bound(), (Rect{95, 95, 40, 30}); got != want {
		t.Errorf("bound = %+v, want %+v", got, want)
	}
	if f.Outline().Rect != f.Bound() {
		t.Errorf("outline out of sync after Move")
	}
	f.Move(-20, 7)
	if got, want := f.Bound().TopLeft(), Pt(-25, 2); got != want {
		t.Errorf("second move corner = %+v, want %+v", got, want)
	}
}

func TestColor(t *testing.T) {
	f := New(Rectangle, 0, 0)
	f.SetColor(Color{R: 200, G: 10, B: 3})
	r, g, b, a := f.Color().RGBA()
	if r>>8 != 200 || g>>8 != 10 || b>>8 != 3 || a != 0xffff {
		t.Errorf("RGBA() = %d %d %d %d", r>>8, g>>8, b>>8, a)
	}
	if ColorOf(f.Color()) != f.Color() {
		t.Errorf("ColorOf round trip changed color")
	}
}
