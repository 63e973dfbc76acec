package screengrab

import (
	"bytes"
	"errors"
	"testing"

	"screengrab/internal/capture"
)

// concat joins rows into one flat buffer.
func concat(rows ...[]byte) []byte {
	var buf []byte
	for _, r := range rows {
		buf = append(buf, r...)
	}
	return buf
}

func TestFlipRows_Involution(t *testing.T) {
	rowLen := 8 // 2 pixels
	top := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	mid := []byte{11, 12, 13, 14, 15, 16, 17, 18}
	bot := []byte{21, 22, 23, 24, 25, 26, 27, 28}
	data := concat(top, mid, bot)

	flipped := flipRows(data, 3, rowLen)
	if !bytes.Equal(flipped, concat(bot, mid, top)) {
		t.Fatalf("flipped = %v, want rows reversed", flipped)
	}

	back := flipRows(flipped, 3, rowLen)
	if !bytes.Equal(back, data) {
		t.Fatalf("double flip = %v, want original %v", back, data)
	}
}

func TestSwapRB_Involution(t *testing.T) {
	data := []byte{
		10, 11, 12, 13,
		20, 21, 22, 23,
	}

	swapped := swapRB(data)
	want := []byte{
		12, 11, 10, 13,
		22, 21, 20, 23,
	}
	if !bytes.Equal(swapped, want) {
		t.Fatalf("swapRB = %v, want %v", swapped, want)
	}

	// Green and alpha must not move.
	if swapped[1] != data[1] || swapped[3] != data[3] {
		t.Fatalf("swapRB moved green or alpha: %v", swapped)
	}

	back := swapRB(swapped)
	if !bytes.Equal(back, data) {
		t.Fatalf("double swap = %v, want original %v", back, data)
	}
}

func TestNewScreenshot_BottomUp(t *testing.T) {
	// 2 wide, 3 tall; raw row 0 is the visual bottom.
	visualTop := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	visualMid := []byte{11, 12, 13, 14, 15, 16, 17, 18}
	visualBot := []byte{21, 22, 23, 24, 25, 26, 27, 28}

	s := newScreenshot(capture.RawCapture{
		Bytes:  concat(visualBot, visualMid, visualTop),
		Width:  2,
		Height: 3,
		Order:  capture.BottomUp,
	})

	got := s.Bytes()
	if !bytes.Equal(got[:8], visualTop) {
		t.Errorf("row 0 = %v, want last source row %v", got[:8], visualTop)
	}
	if !bytes.Equal(got[16:], visualBot) {
		t.Errorf("row 2 = %v, want first source row %v", got[16:], visualBot)
	}
}

func TestNewScreenshot_TopDownPassthrough(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	s := newScreenshot(capture.RawCapture{
		Bytes:  data,
		Width:  2,
		Height: 1,
		Order:  capture.TopDown,
	})
	if !bytes.Equal(s.Bytes(), data) {
		t.Fatalf("Bytes() = %v, want unchanged %v", s.Bytes(), data)
	}
}

func TestNewScreenshot_SizeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a mismatched buffer size")
		}
	}()
	newScreenshot(capture.RawCapture{Bytes: make([]byte, 7), Width: 2, Height: 2})
}

func TestScreenshot_Accessors(t *testing.T) {
	s := newScreenshot(capture.RawCapture{
		Bytes:  make([]byte, 3*2*4),
		Width:  3,
		Height: 2,
		Order:  capture.TopDown,
	})

	if s.Width() != 3 || s.Height() != 2 {
		t.Errorf("dimensions = %dx%d, want 3x2", s.Width(), s.Height())
	}
	if s.PixelWidth() != 4 {
		t.Errorf("PixelWidth() = %d, want 4", s.PixelWidth())
	}
	if s.RowLen() != 12 {
		t.Errorf("RowLen() = %d, want 12", s.RowLen())
	}
	if s.Len() != 24 {
		t.Errorf("Len() = %d, want 24", s.Len())
	}
	if s.IsEmpty() {
		t.Error("IsEmpty() = true for a 3x2 capture")
	}
}

func TestPixelAt_Bounds(t *testing.T) {
	s := newScreenshot(capture.RawCapture{
		Bytes:  make([]byte, 3*2*4),
		Width:  3,
		Height: 2,
		Order:  capture.TopDown,
	})

	for row := 0; row < s.Height(); row++ {
		for col := 0; col < s.Width(); col++ {
			if _, err := s.PixelAt(row, col); err != nil {
				t.Errorf("PixelAt(%d, %d) = %v, want success", row, col, err)
			}
		}
	}

	for _, at := range [][2]int{
		{s.Height(), 0},
		{0, s.Width()},
		{-1, 0},
		{0, -1},
	} {
		_, err := s.PixelAt(at[0], at[1])
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("PixelAt(%d, %d) = %v, want ErrOutOfBounds", at[0], at[1], err)
		}
	}
}

func TestPixelAt_CornerConsistency(t *testing.T) {
	// 2x2 capture, distinct byte values per pixel, delivered bottom-up.
	// Visual layout after correction:
	//   (0,0)=10..13  (0,1)=20..23
	//   (1,0)=30..33  (1,1)=40..43
	visualTop := []byte{10, 11, 12, 13, 20, 21, 22, 23}
	visualBot := []byte{30, 31, 32, 33, 40, 41, 42, 43}

	s := newScreenshot(capture.RawCapture{
		Bytes:  concat(visualBot, visualTop),
		Width:  2,
		Height: 2,
		Order:  capture.BottomUp,
	})

	cases := []struct {
		row, col int
		want     Pixel
	}{
		{0, 0, Pixel{A: 13, R: 12, G: 11, B: 10}},
		{0, 1, Pixel{A: 23, R: 22, G: 21, B: 20}},
		{1, 1, Pixel{A: 43, R: 42, G: 41, B: 40}},
	}
	for _, c := range cases {
		got, err := s.PixelAt(c.row, c.col)
		if err != nil {
			t.Fatalf("PixelAt(%d, %d): %v", c.row, c.col, err)
		}
		if got != c.want {
			t.Errorf("PixelAt(%d, %d) = %+v, want %+v", c.row, c.col, got, c.want)
		}
	}
}

func TestScreenshot_Empty(t *testing.T) {
	for _, raw := range []capture.RawCapture{
		{Width: 0, Height: 2, Order: capture.TopDown},
		{Width: 2, Height: 0, Order: capture.TopDown},
		{Width: 0, Height: 0, Order: capture.BottomUp},
	} {
		s := newScreenshot(raw)
		if !s.IsEmpty() {
			t.Errorf("IsEmpty() = false for %dx%d", raw.Width, raw.Height)
		}
		if _, err := s.PixelAt(0, 0); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("PixelAt(0, 0) on %dx%d = %v, want ErrOutOfBounds", raw.Width, raw.Height, err)
		}
		if len(s.Bytes()) != 0 {
			t.Errorf("Bytes() not empty for %dx%d", raw.Width, raw.Height)
		}
	}
}

func TestScreenshot_BytesRGBA(t *testing.T) {
	// One blue pixel in BGRA: b=255, g=0, r=0, a=77.
	s := newScreenshot(capture.RawCapture{
		Bytes:  []byte{255, 0, 0, 77},
		Width:  1,
		Height: 1,
		Order:  capture.TopDown,
	})

	want := []byte{0, 0, 255, 77}
	if !bytes.Equal(s.BytesRGBA(), want) {
		t.Fatalf("BytesRGBA() = %v, want %v", s.BytesRGBA(), want)
	}
}

func TestScreenshot_Image(t *testing.T) {
	s := newScreenshot(capture.RawCapture{
		Bytes: []byte{
			10, 11, 12, 13, 20, 21, 22, 23,
			30, 31, 32, 33, 40, 41, 42, 43,
		},
		Width:  2,
		Height: 2,
		Order:  capture.TopDown,
	})

	img := s.Image()
	if img.Rect.Dx() != 2 || img.Rect.Dy() != 2 {
		t.Fatalf("image bounds = %v, want 2x2", img.Rect)
	}

	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			p, err := s.PixelAt(row, col)
			if err != nil {
				t.Fatal(err)
			}
			c := img.RGBAAt(col, row)
			if c.R != p.R || c.G != p.G || c.B != p.B || c.A != p.A {
				t.Errorf("image at (%d, %d) = %+v, PixelAt = %+v", col, row, c, p)
			}
		}
	}
}
