// Package screengrab captures the contents of the default display into
// an in-memory pixel buffer.
//
// Platform notes: the GDI adapter requests top-down rows from Windows
// (negative height in the bitmap header) so the bottom-left origin of
// GDI bitmaps never reaches the buffer, X11 ZPixmap data is top-down
// already, and the CoreGraphics adapter draws through a little-endian
// bitmap context for the same 32-bit BGRA layout. Whatever row order an
// adapter declares, the Screenshot constructor corrects it so that row 0
// is always the visual top of the screen.
package screengrab

import "screengrab/internal/capture"

// Capture takes a screenshot of the default display. It blocks for the
// duration of the platform copy (tens of milliseconds) and cannot be
// cancelled mid-flight. Every call acquires and releases its own
// platform handles; nothing is cached or shared between calls.
func Capture() (*Screenshot, error) {
	return captureFrom(defaultSource())
}

func captureFrom(src capture.Source) (*Screenshot, error) {
	raw, err := src.Capture()
	if err != nil {
		return nil, err
	}
	return newScreenshot(raw), nil
}
