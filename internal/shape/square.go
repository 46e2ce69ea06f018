package shape

import (
	"image/color"

	"wireview/internal/mathutil"
)

// Square is an axis-aligned square in the XY plane at the center's height.
type Square struct {
	base
	center mathutil.Vec3
	side   float64
}

func NewSquare(id ID, side float64, c color.NRGBA, center mathutil.Vec3) (*Square, error) {
	if err := checkSize("square", "side", side); err != nil {
		return nil, err
	}
	return &Square{base: base{id: id, color: c}, center: center, side: side}, nil
}

// EdgePoints returns the four corners counter-clockwise from (-,-), closed
// by repeating the first.
func (s *Square) EdgePoints() []mathutil.Vec3 {
	cx, cy, cz := s.center[0], s.center[1], s.center[2]
	h := s.side / 2
	return []mathutil.Vec3{
		{cx - h, cy - h, cz},
		{cx + h, cy - h, cz},
		{cx + h, cy + h, cz},
		{cx - h, cy + h, cz},
		{cx - h, cy - h, cz},
	}
}
