package raster

import (
	"image/color"
	"math"
)

// DrawLine draws a line with a square brush of the given width (pixels),
// stepping one pixel along the major axis. The segment is clipped to the
// buffer first so far off-screen endpoints cost nothing.
func (fb *FrameBuffer) DrawLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	r := int(math.Max(0, (width-1)/2))
	pad := float64(r) + 1
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, -pad, -pad, float64(fb.Width)+pad, float64(fb.Height)+pad)
	if !ok {
		return
	}

	dx := x1 - x0
	dy := y1 - y0
	steps := math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		fb.stamp(int(math.Round(x0)), int(math.Round(y0)), r, c)
		return
	}

	xInc := dx / steps
	yInc := dy / steps
	x, y := x0, y0
	for i := 0; i <= int(steps); i++ {
		fb.stamp(int(math.Round(x)), int(math.Round(y)), r, c)
		x += xInc
		y += yInc
	}
}

func (fb *FrameBuffer) stamp(cx, cy, r int, c color.NRGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			fb.Blend(x, y, c)
		}
	}
}

// clipSegment is Liang–Barsky against [minX,maxX]×[minY,maxY].
func clipSegment(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	for _, v := range []float64{x0, y0, x1, y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, false
		}
	}
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - minX, maxX - x0, y0 - minY, maxY - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}
