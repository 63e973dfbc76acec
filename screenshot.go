package screengrab

import (
	"fmt"
	"image"

	"screengrab/internal/capture"
)

// Bytes per pixel: blue, green, red, alpha.
const pixelWidth = 4

// Pixel is a single ARGB pixel value.
type Pixel struct {
	A, R, G, B uint8
}

// Screenshot is an immutable image buffer holding one display capture.
//
// The primary buffer is row-major, top-to-bottom, 4 bytes per pixel in
// BGRA order (alpha at offset+3). A red/blue swapped variant is derived
// once at construction for consumers that expect RGBA byte order, such
// as the stdlib image encoders.
type Screenshot struct {
	data       []byte // primary buffer, BGRA
	rgba       []byte // red/blue swapped copy of data
	width      int
	height     int
	rowLen     int
	pixelWidth int
}

// newScreenshot takes ownership of the raw buffer and corrects its row
// order. The size invariant is the adapter's responsibility; a mismatch
// is a programming error, not a recoverable condition.
func newScreenshot(raw capture.RawCapture) *Screenshot {
	rowLen := raw.Width * pixelWidth
	if len(raw.Bytes) != raw.Height*rowLen {
		panic(fmt.Sprintf("screengrab: adapter produced %d bytes for a %dx%d capture",
			len(raw.Bytes), raw.Width, raw.Height))
	}

	data := raw.Bytes
	if raw.Order == capture.BottomUp {
		data = flipRows(data, raw.Height, rowLen)
	}

	return &Screenshot{
		data:       data,
		rgba:       swapRB(data),
		width:      raw.Width,
		height:     raw.Height,
		rowLen:     rowLen,
		pixelWidth: pixelWidth,
	}
}

// flipRows returns a copy of data with the row order reversed. Source
// and destination row ranges overlap across the whole buffer, so this is
// never done in place.
func flipRows(data []byte, height, rowLen int) []byte {
	flipped := make([]byte, len(data))
	for row := 0; row < height; row++ {
		src := (height - 1 - row) * rowLen
		copy(flipped[row*rowLen:(row+1)*rowLen], data[src:src+rowLen])
	}
	return flipped
}

// swapRB returns a copy of data with the red and blue byte of every
// 4-byte pixel exchanged. Green and alpha stay where they are.
func swapRB(data []byte) []byte {
	swapped := make([]byte, len(data))
	for i := 0; i+pixelWidth <= len(data); i += pixelWidth {
		swapped[i] = data[i+2]
		swapped[i+1] = data[i+1]
		swapped[i+2] = data[i]
		swapped[i+3] = data[i+3]
	}
	return swapped
}

// Width is the width of the capture in pixels.
func (s *Screenshot) Width() int { return s.width }

// Height is the height of the capture in pixels.
func (s *Screenshot) Height() int { return s.height }

// PixelWidth is the number of bytes per pixel, always 4.
func (s *Screenshot) PixelWidth() int { return s.pixelWidth }

// RowLen is the number of bytes in one row of the buffer.
func (s *Screenshot) RowLen() int { return s.rowLen }

// Len is the total number of bytes in the buffer.
func (s *Screenshot) Len() int { return len(s.data) }

// IsEmpty reports whether the capture covers zero pixels.
func (s *Screenshot) IsEmpty() bool { return len(s.data) == 0 }

// PixelAt returns the pixel at (row, col). Coordinates outside
// [0,height) x [0,width) yield an error wrapping ErrOutOfBounds; the
// buffer is never read at an invalid offset.
func (s *Screenshot) PixelAt(row, col int) (Pixel, error) {
	if row < 0 || row >= s.height || col < 0 || col >= s.width {
		return Pixel{}, fmt.Errorf("screengrab: pixel (%d, %d) outside %dx%d capture: %w",
			row, col, s.width, s.height, ErrOutOfBounds)
	}
	idx := row*s.rowLen + col*s.pixelWidth
	return Pixel{
		A: s.data[idx+3],
		R: s.data[idx+2],
		G: s.data[idx+1],
		B: s.data[idx],
	}, nil
}

// Bytes returns the primary BGRA buffer without copying. Callers must
// not modify it.
func (s *Screenshot) Bytes() []byte { return s.data }

// BytesRGBA returns the red/blue swapped buffer without copying.
// Callers must not modify it.
func (s *Screenshot) BytesRGBA() []byte { return s.rgba }

// Image returns the capture as a stdlib RGBA image. The image shares
// the swapped buffer; treat it as read-only. The alpha channel is
// whatever the platform produced, which on Windows is typically zero.
func (s *Screenshot) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    s.rgba,
		Stride: s.rowLen,
		Rect:   image.Rect(0, 0, s.width, s.height),
	}
}
