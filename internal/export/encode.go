package export

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Frame file formats.
const (
	FormatWebP = "webp"
	FormatTGA  = "tga"
)

// ValidFormat reports whether f names a supported frame format.
func ValidFormat(f string) bool {
	switch strings.ToLower(f) {
	case FormatWebP, FormatTGA:
		return true
	}
	return false
}

func encodeFrame(w io.Writer, format string, img image.Image) error {
	switch strings.ToLower(format) {
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	case FormatTGA:
		return tga.Encode(w, img)
	default:
		return fmt.Errorf("export: unknown format %q", format)
	}
}

// encodeAnimation writes all frames as one looping animated WebP.
func encodeAnimation(w io.Writer, frames []image.Image, delayMS uint) error {
	if len(frames) == 0 {
		return fmt.Errorf("export: no frames to animate")
	}
	if delayMS == 0 {
		delayMS = 1
	}
	ani := &nativewebp.Animation{
		Images:          frames,
		Durations:       make([]uint, len(frames)),
		Disposals:       make([]uint, len(frames)),
		LoopCount:       0,
		BackgroundColor: 0xffffffff,
	}
	for i := range ani.Durations {
		ani.Durations[i] = delayMS
	}
	return nativewebp.EncodeAll(w, ani, nil)
}
