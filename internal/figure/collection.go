package figure

import "iter"

// Handle identifies a figure inside a Collection. Handles stay valid for
// the life of the collection because figures are never removed.
type Handle int

// NoHandle is returned when no figure matches.
const NoHandle Handle = -1

// Collection owns the figures in creation order, which is also the order
// they are drawn in.
type Collection struct {
	figures []*Figure
}

// NewCollection returns a collection holding figs in the given order.
func NewCollection(figs ...*Figure) *Collection {
	return &Collection{figures: figs}
}

// Append adds f at the end and returns its handle.
func (c *Collection) Append(f *Figure) Handle {
	c.figures = append(c.figures, f)
	return Handle(len(c.figures) - 1)
}

// Len returns the number of figures.
func (c *Collection) Len() int {
	return len(c.figures)
}

// Get returns the figure for h, or nil if h is out of range.
func (c *Collection) Get(h Handle) *Figure {
	if h < 0 || int(h) >= len(c.figures) {
		return nil
	}
	return c.figures[h]
}

// All yields the figures in creation order.
func (c *Collection) All() iter.Seq2[Handle, *Figure] {
	return func(yield func(Handle, *Figure) bool) {
		for i, f := range c.figures {
			if !yield(Handle(i), f) {
				return
			}
		}
	}
}

// HitTest returns the first figure, in creation order, whose outline
// contains p. An earlier figure wins even where a later one is drawn over it.
func (c *Collection) HitTest(p Point) (Handle, bool) {
	for h, f := range c.All() {
		if f.Contains(p) {
			return h, true
		}
	}
	return NoHandle, false
}

// HitTestTopmost is like HitTest but prefers the most recently created
// figure, which is the one drawn on top.
func (c *Collection) HitTestTopmost(p Point) (Handle, bool) {
	for i := len(c.figures) - 1; i >= 0; i-- {
		if c.figures[i].Contains(p) {
			return Handle(i), true
		}
	}
	return NoHandle, false
}
