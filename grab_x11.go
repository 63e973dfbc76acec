//go:build linux || freebsd || openbsd || netbsd

package screengrab

import (
	"screengrab/internal/capture"
	"screengrab/internal/x11"
)

type x11Source struct{}

func (x11Source) Capture() (capture.RawCapture, error) {
	return x11.Grab()
}

func defaultSource() capture.Source {
	return x11Source{}
}
