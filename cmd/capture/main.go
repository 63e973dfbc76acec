package main

import (
	"image"
	"image/png"
	"log"
	"os"
	"time"

	"golang.org/x/image/bmp"

	"screengrab"
)

func main() {
	log.SetFlags(log.Lshortfile)

	start := time.Now()
	s, err := screengrab.Capture()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("captured %dx%d (%d bytes) in %v", s.Width(), s.Height(), s.Len(), time.Since(start))

	if s.IsEmpty() {
		log.Fatal("capture covers zero pixels")
	}

	corners := [][2]int{
		{0, 0},
		{0, s.Width() - 1},
		{s.Height() - 1, s.Width() - 1},
	}
	for _, at := range corners {
		p, err := s.PixelAt(at[0], at[1])
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("(%d,%d): R %d G %d B %d", at[0], at[1], p.R, p.G, p.B)
	}

	img := opaqueImage(s)
	if err := writePNG("screen.png", img); err != nil {
		log.Fatal(err)
	}
	if err := writeBMP("screen.bmp", img); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote screen.png and screen.bmp, %v total", time.Since(start))
}

// opaqueImage rebuilds the capture with alpha forced to 255. GDI leaves
// the alpha byte zeroed, which would encode as a fully transparent PNG.
func opaqueImage(s *screengrab.Screenshot) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width(), s.Height()))
	for row := 0; row < s.Height(); row++ {
		for col := 0; col < s.Width(); col++ {
			p, _ := s.PixelAt(row, col)
			i := img.PixOffset(col, row)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = p.R, p.G, p.B, 255
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func writeBMP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return bmp.Encode(f, img)
}
