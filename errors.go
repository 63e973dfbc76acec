package screengrab

import (
	"errors"

	"screengrab/internal/capture"
)

var (
	// ErrUnsupported is returned by Capture when the platform or
	// architecture used to compile the program has no capture adapter,
	// e.g. when compiling without cgo on darwin.
	ErrUnsupported = errors.New("screengrab does not support this platform")

	// ErrDeviceUnavailable means no drawing context or off-screen
	// surface could be acquired (no display attached, headless or
	// virtual session). Not retryable without an environment change.
	ErrDeviceUnavailable = capture.ErrDeviceUnavailable

	// ErrBlitFailed means the block pixel copy from the screen reported
	// failure. May be transient (e.g. a display mode change mid-capture);
	// the caller may retry the whole Capture call.
	ErrBlitFailed = capture.ErrBlitFailed

	// ErrOutOfBounds is returned by PixelAt for coordinates outside the
	// captured area.
	ErrOutOfBounds = errors.New("pixel coordinates out of bounds")
)
