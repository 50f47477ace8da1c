package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// PixelSink receives a rendered image one pixel at a time in row-major
// order, top row first.
type PixelSink interface {
	Begin(width, height int) error
	WritePixel(c color.RGBA) error
	End() error
}

// PPMWriter writes the plain-text PPM (P3) format
type PPMWriter struct {
	w *bufio.Writer
}

// NewPPMWriter creates a buffered PPM writer. End flushes it.
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w)}
}

// Begin writes the three-line header
func (p *PPMWriter) Begin(width, height int) error {
	_, err := fmt.Fprintf(p.w, "P3\n%d %d\n255\n", width, height)
	return err
}

// WritePixel writes "r g b" on its own line
func (p *PPMWriter) WritePixel(c color.RGBA) error {
	_, err := fmt.Fprintf(p.w, "%d %d %d\n", c.R, c.G, c.B)
	return err
}

// End flushes buffered output
func (p *PPMWriter) End() error {
	return p.w.Flush()
}

// ImageSink collects pixels into an in-memory RGBA image
type ImageSink struct {
	img  *image.RGBA
	next int
}

// NewImageSink creates an empty image sink
func NewImageSink() *ImageSink {
	return &ImageSink{}
}

// Begin allocates the image
func (s *ImageSink) Begin(width, height int) error {
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.next = 0
	return nil
}

// WritePixel stores the next pixel
func (s *ImageSink) WritePixel(c color.RGBA) error {
	if s.img == nil {
		return fmt.Errorf("renderer: image sink written before Begin")
	}
	width := s.img.Rect.Dx()
	if s.next >= width*s.img.Rect.Dy() {
		return fmt.Errorf("renderer: image sink overflow at pixel %d", s.next)
	}
	s.img.SetRGBA(s.next%width, s.next/width, c)
	s.next++
	return nil
}

// End is a no-op
func (s *ImageSink) End() error {
	return nil
}

// Image returns the collected image, or nil before Begin
func (s *ImageSink) Image() *image.RGBA {
	return s.img
}

// EncodePNG writes img to w as PNG
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
