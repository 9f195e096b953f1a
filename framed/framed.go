package framed

import (
	"errors"
	"fmt"

	"github.com/geomech/spatial/frame"
)

// ErrFrameMismatch indicates a binary operation between values bound
// to different frames.
var ErrFrameMismatch = errors.New("framed: values are bound to different frames")

// Value is the read capability shared by all frame-aware values.
type Value interface {
	ReferenceFrame() *frame.Frame
}

// SameFrame fails with ErrFrameMismatch unless a and b reference the
// identical frame object. It is the check every binary operation in
// this package runs first.
func SameFrame(a, b Value) error {
	fa, fb := a.ReferenceFrame(), b.ReferenceFrame()
	if fa != fb {
		return fmt.Errorf("%w: %q vs %q", ErrFrameMismatch, frameName(fa), frameName(fb))
	}
	return nil
}

func frameName(f *frame.Frame) string {
	if f == nil {
		return "<nil>"
	}
	return f.Name()
}
