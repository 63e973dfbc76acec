//go:build !windows && !linux && !freebsd && !openbsd && !netbsd && (!darwin || !cgo)

package screengrab

import "screengrab/internal/capture"

type unsupportedSource struct{}

func (unsupportedSource) Capture() (capture.RawCapture, error) {
	return capture.RawCapture{}, ErrUnsupported
}

func defaultSource() capture.Source {
	return unsupportedSource{}
}
