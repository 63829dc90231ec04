// Package store reads and writes drawings. A drawing file is a stream of
// JSON figure records in creation order, one per line, with no header or
// count: the end of the stream ends the drawing.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/example/shapeedit/internal/figure"
)

// Record is the persisted form of a figure.
type Record struct {
	Kind  figure.Kind  `json:"kind"`
	Bound figure.Rect  `json:"bound"`
	Color figure.Color `json:"color"`
}

// wireRecord uses pointers so missing fields can be told apart from zero values.
type wireRecord struct {
	Kind  *figure.Kind  `json:"kind"`
	Bound *figure.Rect  `json:"bound"`
	Color *figure.Color `json:"color"`
}

// RecordOf captures the persisted state of f.
func RecordOf(f *figure.Figure) Record {
	return Record{Kind: f.Kind(), Bound: f.Bound(), Color: f.Color()}
}

// Figure rebuilds a figure from the record.
func (r Record) Figure() *figure.Figure {
	return figure.Restore(r.Kind, r.Bound, r.Color)
}

// Encode writes every figure of c to w in creation order.
func Encode(w io.Writer, c *figure.Collection) error {
	enc := json.NewEncoder(w)
	for h, f := range c.All() {
		if err := enc.Encode(RecordOf(f)); err != nil {
			return fmt.Errorf("encode figure %d: %w", h, err)
		}
	}
	return nil
}

// Decode reads records until the end of r. A clean end of stream is the
// normal way the drawing ends; anything else that fails is a *DecodeError.
func Decode(r io.Reader) (*figure.Collection, error) {
	dec := json.NewDecoder(r)
	c := figure.NewCollection()
	for i := 0; ; i++ {
		var w wireRecord
		err := dec.Decode(&w)
		if errors.Is(err, io.EOF) {
			return c, nil
		}
		if err != nil {
			return nil, &DecodeError{Index: i, Err: err}
		}
		rec, err := w.record()
		if err != nil {
			return nil, &DecodeError{Index: i, Err: err}
		}
		c.Append(rec.Figure())
	}
}

func (w wireRecord) record() (Record, error) {
	switch {
	case w.Kind == nil:
		return Record{}, errors.New("missing kind")
	case w.Bound == nil:
		return Record{}, errors.New("missing bound")
	case w.Color == nil:
		return Record{}, errors.New("missing color")
	case w.Bound.Width < 0 || w.Bound.Height < 0:
		return Record{}, fmt.Errorf("negative size %dx%d", w.Bound.Width, w.Bound.Height)
	}
	return Record{Kind: *w.Kind, Bound: *w.Bound, Color: *w.Color}, nil
}
