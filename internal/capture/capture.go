// Package capture defines the contract between the per-platform capture
// adapters and the public screengrab package.
package capture

import "errors"

// RowOrder tells whether row 0 of a raw buffer is the visual top or the
// visual bottom of the image.
type RowOrder int

const (
	// TopDown means row 0 is the top of the image.
	TopDown RowOrder = iota
	// BottomUp means row 0 is the bottom of the image and the rows must
	// be reversed before top-down consumers can use the buffer.
	BottomUp
)

// RawCapture is an unprocessed display snapshot as produced by a
// platform adapter: BGRA bytes in the adapter's native row order plus
// the pixel dimensions. Adapters hand over ownership of Bytes.
type RawCapture struct {
	Bytes  []byte
	Width  int
	Height int
	Order  RowOrder
}

// Source produces raw captures of the default display. Every Capture
// call acquires and releases its own platform resources; implementations
// keep no handles between calls.
type Source interface {
	Capture() (RawCapture, error)
}

var (
	// ErrDeviceUnavailable means no drawing context or off-screen
	// surface could be acquired, e.g. a headless session.
	ErrDeviceUnavailable = errors.New("display device unavailable")

	// ErrBlitFailed means the block pixel copy from the screen reported
	// failure. Possibly transient; the caller may retry the capture.
	ErrBlitFailed = errors.New("screen copy failed")
)
