package figure

import "testing"

func TestOutlineContains(t *testing.T) {
	box := Rect{0, 0, 40, 20}
	tests := []struct {
		kind Kind
		p    Point
		want bool
	}{
		{Rectangle, Pt(0, 0), true},
		{Rectangle, Pt(39, 19), true},
		{Rectangle, Pt(40, 10), false},
		{Circle, Pt(20, 10), true},
		{Circle, Pt(1, 1), false},
		{Circle, Pt(38, 10), true},
		{Triangle, Pt(20, 15), true},
		{Triangle, Pt(2, 2), false},
		{Triangle, Pt(38, 2), false},
	}
	for _, tt := range tests {
		o := OutlineFor(tt.kind, box)
		if got := o.Contains(tt.p); got != tt.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", tt.kind, tt.p, got, tt.want)
		}
	}
}

func TestCollectionOrder(t *testing.T) {
	c := NewCollection()
	a := c.Append(New(Rectangle, 0, 0))
	b := c.Append(New(Circle, 5, 5))
	if a != 0 || b != 1 || c.Len() != 2 {
		t.Fatalf("handles = %d, %d len = %d", a, b, c.Len())
	}

	var kinds []Kind
	for _, f := range c.All() {
		kinds = append(kinds, f.Kind())
	}
	if len(kinds) != 2 || kinds[0] != Rectangle || kinds[1] != Circle {
		t.Errorf("All() order = %v", kinds)
	}

	// Restartable.
	n := 0
	for range c.All() {
		n++
	}
	if n != 2 {
		t.Errorf("second iteration yielded %d figures", n)
	}

	// Early break.
	for h := range c.All() {
		if h != 0 {
			t.Errorf("expected break after first figure")
		}
		break
	}

	if c.Get(5) != nil || c.Get(NoHandle) != nil {
		t.Errorf("Get out of range should return nil")
	}
}

func TestHitTestCreationOrder(t *testing.T) {
	c := NewCollection(
		Restore(Rectangle, Rect{0, 0, 50, 50}, Black),
		Restore(Rectangle, Rect{25, 25, 50, 50}, Black),
	)

	h, ok := c.HitTest(Pt(30, 30))
	if !ok || h != 0 {
		t.Errorf("HitTest overlap = %d, %v; want first created", h, ok)
	}
	h, ok = c.HitTest(Pt(60, 60))
	if !ok || h != 1 {
		t.Errorf("HitTest second only = %d, %v", h, ok)
	}
	if h, ok = c.HitTest(Pt(200, 200)); ok || h != NoHandle {
		t.Errorf("HitTest miss = %d, %v", h, ok)
	}

	h, ok = c.HitTestTopmost(Pt(30, 30))
	if !ok || h != 1 {
		t.Errorf("HitTestTopmost overlap = %d, %v; want last created", h, ok)
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds {
		b, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", k, err)
		}
		var got Kind
		if err := got.UnmarshalText(b); err != nil || got != k {
			t.Errorf("UnmarshalText(%s) = %v, %v", b, got, err)
		}
	}
	if _, err := Kind(9).MarshalText(); err == nil {
		t.Error("MarshalText of unknown kind should fail")
	}
	if _, err := ParseKind("hexagon"); err == nil {
		t.Error("ParseKind(hexagon) should fail")
	}
}
