package store

import "fmt"

// DecodeError reports a malformed or truncated record. It fails the whole
// load; no figures from the stream are kept.
type DecodeError struct {
	Index int // zero-based record position in the stream
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode figure record %d: %v", e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IOError reports a path that could not be read or written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
