package store

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/example/shapeedit/internal/figure"
)

// SaveFile writes c to path. The drawing goes to a temporary file in the
// same directory first, so a failed save leaves any existing file intact.
func SaveFile(path string, c *figure.Collection) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	if err := Encode(w, c); err != nil {
		tmp.Close()
		return &IOError{Op: "save", Path: path, Err: err}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return &IOError{Op: "save", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// LoadFile reads a whole drawing from path. It returns an *IOError when the
// file cannot be opened or read and a *DecodeError when its content is bad.
func LoadFile(path string) (*figure.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "load", Path: path, Err: err}
	}
	defer f.Close()

	r := &readErrRecorder{r: bufio.NewReader(f)}
	c, err := Decode(r)
	if err != nil && r.err != nil {
		return nil, &IOError{Op: "load", Path: path, Err: r.err}
	}
	return c, err
}

// readErrRecorder remembers the first read failure that is not io.EOF so a
// disk error is not mistaken for bad content.
type readErrRecorder struct {
	r   io.Reader
	err error
}

func (r *readErrRecorder) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if err != nil && err != io.EOF && r.err == nil {
		r.err = err
	}
	return n, err
}
