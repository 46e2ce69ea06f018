package shape

import (
	"image/color"

	"wireview/internal/mathutil"
)

// DefaultAxisLength is the half-length of each axis line.
const DefaultAxisLength = 100

// Axis marks the three world axes through the origin.
type Axis struct {
	base
	length float64
}

func NewAxis(id ID, c color.NRGBA) *Axis {
	return &Axis{base: base{id: id, color: c}, length: DefaultAxisLength}
}

func NewAxisWithLength(id ID, c color.NRGBA, halfLength float64) (*Axis, error) {
	if err := checkSize("axis", "length", halfLength); err != nil {
		return nil, err
	}
	return &Axis{base: base{id: id, color: c}, length: halfLength}, nil
}

// EdgePoints draws X, Y then Z, passing back through the origin between
// lines. The last line is left open.
func (a *Axis) EdgePoints() []mathutil.Vec3 {
	l := a.length
	return []mathutil.Vec3{
		{-l, 0, 0}, {l, 0, 0},
		{0, 0, 0},
		{0, -l, 0}, {0, l, 0},
		{0, 0, 0},
		{0, 0, -l}, {0, 0, l},
	}
}
