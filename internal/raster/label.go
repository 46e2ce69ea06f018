package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const labelMargin = 4

// DrawLabel writes text in the top-left corner of img.
func DrawLabel(img *image.NRGBA, text string, c color.NRGBA) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(img.Bounds().Min.X+labelMargin, img.Bounds().Min.Y+labelMargin+face.Ascent),
	}
	d.DrawString(text)
}
