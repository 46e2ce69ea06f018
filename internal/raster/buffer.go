package raster

import (
	"image"
	"image/color"
)

// FrameBuffer holds the rendering target as a flat slice for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // NRGBA interleaved, len = W*H*4
}

// NewFrameBuffer allocates a zeroed (transparent) buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
	}
}

// Fill sets every pixel to c.
func (fb *FrameBuffer) Fill(c color.NRGBA) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = c.R
		fb.Color[i+1] = c.G
		fb.Color[i+2] = c.B
		fb.Color[i+3] = c.A
	}
}

// Blend composites c over the pixel at (x, y). Out-of-range writes are dropped.
func (fb *FrameBuffer) Blend(x, y int, c color.NRGBA) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := (y*fb.Width + x) * 4
	if c.A == 255 {
		fb.Color[i] = c.R
		fb.Color[i+1] = c.G
		fb.Color[i+2] = c.B
		fb.Color[i+3] = 255
		return
	}
	a := uint32(c.A)
	inv := 255 - a
	fb.Color[i] = uint8((uint32(c.R)*a + uint32(fb.Color[i])*inv + 127) / 255)
	fb.Color[i+1] = uint8((uint32(c.G)*a + uint32(fb.Color[i+1])*inv + 127) / 255)
	fb.Color[i+2] = uint8((uint32(c.B)*a + uint32(fb.Color[i+2])*inv + 127) / 255)
	fb.Color[i+3] = uint8(a + (uint32(fb.Color[i+3])*inv+127)/255)
}

// Image copies the buffer into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
