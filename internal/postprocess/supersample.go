package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces a square supersampled frame to targetSize×targetSize
// with CatmullRom filtering. Frames with any transparency are filtered in
// premultiplied space so thin lines over a clear background keep their
// color instead of picking up a dark fringe.
func Downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if targetSize <= 0 || (b.Dx() <= targetSize && b.Dy() <= targetSize) {
		return img
	}
	dstRect := image.Rect(0, 0, targetSize, targetSize)

	if isOpaque(img) {
		dst := image.NewNRGBA(dstRect)
		draw.CatmullRom.Scale(dst, dstRect, img, b, draw.Src, nil)
		return dst
	}

	// image.RGBA is premultiplied; draw converts on the way in.
	premul := image.NewRGBA(b)
	draw.Draw(premul, b, img, b.Min, draw.Src)

	scaled := image.NewRGBA(dstRect)
	draw.CatmullRom.Scale(scaled, dstRect, premul, b, draw.Src, nil)

	result := image.NewNRGBA(dstRect)
	draw.Draw(result, dstRect, scaled, image.Point{}, draw.Src)
	return result
}

func isOpaque(img *image.NRGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X-1, y)+4]
		for i := 3; i < len(row); i += 4 {
			if row[i] != 255 {
				return false
			}
		}
	}
	return true
}
