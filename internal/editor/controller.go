package editor

import (
	"log/slog"

	"github.com/example/shapeedit/internal/figure"
)

// Controller owns the figures and the interaction state. All calls must
// come from the goroutine that runs the UI loop.
type Controller struct {
	figures *figure.Collection
	state   State
	topmost bool
	log     *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for edit diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithTopmostHit makes clicks select the most recently created figure
// under the pointer instead of the first created one.
func WithTopmostHit(on bool) Option {
	return func(c *Controller) { c.topmost = on }
}

// NewController returns an idle controller editing figs. A nil figs starts
// an empty drawing.
func NewController(figs *figure.Collection, opts ...Option) *Controller {
	if figs == nil {
		figs = figure.NewCollection()
	}
	c := &Controller{
		figures: figs,
		state:   Initial(),
		log:     slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// State returns the current interaction state.
func (c *Controller) State() State { return c.state }

// Figures returns the collection being edited.
func (c *Controller) Figures() *figure.Collection { return c.figures }

// Selected returns the marked figure, if any.
func (c *Controller) Selected() (figure.Handle, *figure.Figure, bool) {
	if c.state.Mode != Selected {
		return figure.NoHandle, nil, false
	}
	f := c.figures.Get(c.state.Figure)
	return c.state.Figure, f, f != nil
}

// Dispatch runs ev through Transition, applies the geometry effects and
// returns the remaining effects for the caller to perform.
func (c *Controller) Dispatch(ev Event) []Effect {
	next, effects := Transition(c.state, ev, scene{c})
	if next.Mode != c.state.Mode {
		c.log.Debug("interaction state", "from", c.state.Mode, "to", next.Mode)
	}
	c.state = next

	var out []Effect
	for _, e := range effects {
		if e.Geometry() {
			c.apply(e)
			continue
		}
		out = append(out, e)
	}
	return out
}

func (c *Controller) apply(e Effect) {
	if e.Type == EffectCreate {
		h := c.figures.Append(figure.New(e.Kind, e.Pos.X, e.Pos.Y))
		c.state.Figure = h
		c.log.Debug("figure created", "handle", h, "kind", e.Kind, "x", e.Pos.X, "y", e.Pos.Y)
		return
	}

	f := c.figures.Get(e.Figure)
	if f == nil {
		c.log.Warn("effect for unknown figure", "handle", e.Figure, "effect", e.Type)
		return
	}
	switch e.Type {
	case EffectResize:
		f.Resize(e.Pos.X, e.Pos.Y, e.Lock)
	case EffectMove:
		f.Move(e.Pos.X, e.Pos.Y)
	case EffectScale:
		f.Scale(e.Delta)
		c.log.Debug("figure scaled", "handle", e.Figure, "by", e.Delta, "bound", f.Bound())
	case EffectSetDragOffset:
		f.SetDragOffset(e.Pos.X, e.Pos.Y)
		c.log.Debug("figure selected", "handle", e.Figure, "kind", f.Kind())
	}
}

// SetColor applies the answer of a color choice started by an
// EffectPickColor. It reports whether the figure exists.
func (c *Controller) SetColor(h figure.Handle, col figure.Color) bool {
	f := c.figures.Get(h)
	if f == nil {
		return false
	}
	f.SetColor(col)
	c.log.Debug("figure recolored", "handle", h, "color", col)
	return true
}

// Replace swaps in a freshly loaded drawing. Handles into the old
// collection are dropped, so the controller goes back to idle.
func (c *Controller) Replace(figs *figure.Collection) {
	if figs == nil {
		figs = figure.NewCollection()
	}
	c.figures = figs
	c.state = c.state.idle()
	c.log.Debug("drawing replaced", "figures", figs.Len())
}

// scene adapts the controller's collection to the Scene interface.
type scene struct{ c *Controller }

func (s scene) HitTest(p figure.Point) (figure.Handle, bool) {
	if s.c.topmost {
		return s.c.figures.HitTestTopmost(p)
	}
	return s.c.figures.HitTest(p)
}

func (s scene) Contains(h figure.Handle, p figure.Point) bool {
	f := s.c.figures.Get(h)
	return f != nil && f.Contains(p)
}

func (s scene) Next() figure.Handle {
	return figure.Handle(s.c.figures.Len())
}
