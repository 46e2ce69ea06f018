package raster

import "wireview/internal/view"

// DefaultViewWidth is the side of the square window onto the view plane,
// in plane units.
const DefaultViewWidth = 5.0

// Viewport maps view-plane coordinates in [-Width/2, Width/2]² onto a
// square of Pixels×Pixels, with +Y pointing up.
type Viewport struct {
	Width  float64
	Pixels int
}

func (vp Viewport) scale() float64 {
	return float64(vp.Pixels) / vp.Width
}

// ToPixel returns continuous pixel coordinates for p.
func (vp Viewport) ToPixel(p view.Point) (float64, float64) {
	s := vp.scale()
	half := vp.Width / 2
	return (p.X + half) * s, (half - p.Y) * s
}
