//go:build darwin && cgo

package screengrab

import (
	"screengrab/internal/capture"
	"screengrab/internal/cg"
)

type cgSource struct{}

func (cgSource) Capture() (capture.RawCapture, error) {
	return cg.Grab()
}

func defaultSource() capture.Source {
	return cgSource{}
}
