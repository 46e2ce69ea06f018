package shape

import (
	"image/color"

	"wireview/internal/mathutil"
)

// Corner indices: 0-3 run counter-clockwise around the bottom face (z-),
// 4-7 sit directly above them.
var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Every corner has degree 3, so no walk covers all edges once. This one
// retraces 1-5, 6-2 and 7-3.
var cubeWalk = [16]int{0, 1, 2, 3, 0, 4, 5, 1, 5, 6, 2, 6, 7, 3, 7, 4}

// Cube is an axis-aligned cube.
type Cube struct {
	base
	center mathutil.Vec3
	side   float64
}

func NewCube(id ID, side float64, c color.NRGBA, center mathutil.Vec3) (*Cube, error) {
	if err := checkSize("cube", "side", side); err != nil {
		return nil, err
	}
	return &Cube{base: base{id: id, color: c}, center: center, side: side}, nil
}

func (c *Cube) Corners() [8]mathutil.Vec3 {
	cx, cy, cz := c.center[0], c.center[1], c.center[2]
	h := c.side / 2
	return [8]mathutil.Vec3{
		{cx - h, cy - h, cz - h},
		{cx + h, cy - h, cz - h},
		{cx + h, cy + h, cz - h},
		{cx - h, cy + h, cz - h},
		{cx - h, cy - h, cz + h},
		{cx + h, cy - h, cz + h},
		{cx + h, cy + h, cz + h},
		{cx - h, cy + h, cz + h},
	}
}

// Edges returns each of the 12 edges exactly once.
func (c *Cube) Edges() [][2]mathutil.Vec3 {
	k := c.Corners()
	out := make([][2]mathutil.Vec3, len(cubeEdges))
	for i, e := range cubeEdges {
		out[i] = [2]mathutil.Vec3{k[e[0]], k[e[1]]}
	}
	return out
}

// EdgePoints returns a single continuous walk over all 12 edges.
func (c *Cube) EdgePoints() []mathutil.Vec3 {
	k := c.Corners()
	out := make([]mathutil.Vec3, len(cubeWalk))
	for i, idx := range cubeWalk {
		out[i] = k[idx]
	}
	return out
}
