package chart

import (
	"errors"
	"io"
)

// ErrUnavailable is reported when chart rendering is not available.
// The caller reports it and continues; a missing chart never fails an
// invocation.
var ErrUnavailable = errors.New("chart rendering is not available")

// Renderer is the charting capability. Implementations render a balance
// series to a file format identified by Ext.
type Renderer interface {
	// Render writes the chart for the series to w.
	Render(w io.Writer, s *Series) error
	// Ext returns the file extension of the produced format, with dot.
	Ext() string
}

// Unavailable is the no-op stand-in selected when no renderer can
// serve; every render fails with ErrUnavailable.
type Unavailable struct{}

func (Unavailable) Render(io.Writer, *Series) error { return ErrUnavailable }
func (Unavailable) Ext() string                     { return "" }

// New selects the renderer for the requested mode: the interactive web
// page or the static image.
func New(interactive bool) Renderer {
	if interactive {
		return htmlRenderer{}
	}
	return pngRenderer{}
}
