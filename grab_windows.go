//go:build windows

package screengrab

import (
	"screengrab/internal/capture"
	"screengrab/internal/gdi"
)

type gdiSource struct{}

func (gdiSource) Capture() (capture.RawCapture, error) {
	return gdi.Grab()
}

func defaultSource() capture.Source {
	return gdiSource{}
}
