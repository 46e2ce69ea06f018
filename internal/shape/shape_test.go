package shape

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wireview/internal/mathutil"
)

var green = color.NRGBA{G: 128, A: 255}

func TestShapesSatisfyInterface(t *testing.T) {
	sq, err := NewSquare("sq", 1, green, mathutil.Vec3{})
	require.NoError(t, err)
	cube, err := NewCube("cube", 1, green, mathutil.Vec3{})
	require.NoError(t, err)

	for _, s := range []Shape{sq, cube, NewAxis("axis", green)} {
		assert.NotEmpty(t, s.EdgePoints(), s.ID())
		assert.Equal(t, green, s.Color())
	}
}

func TestSquareIsClosed(t *testing.T) {
	sq, err := NewSquare("sq", 2, green, mathutil.Vec3{1, -1, 3})
	require.NoError(t, err)

	pts := sq.EdgePoints()
	require.Len(t, pts, 5)
	assert.Equal(t, pts[0], pts[4])
	assert.Equal(t, mathutil.Vec3{0, -2, 3}, pts[0])
	assert.Equal(t, mathutil.Vec3{2, 0, 3}, pts[2])
	for i := 0; i < 4; i++ {
		assert.InDelta(t, 2, pts[i+1].Sub(pts[i]).Len(), 1e-12)
		assert.Equal(t, 3.0, pts[i][2])
	}
}

func TestCubeCornersAtOrigin(t *testing.T) {
	cube, err := NewCube("c", 2, green, mathutil.Vec3{})
	require.NoError(t, err)

	seen := map[mathutil.Vec3]bool{}
	for _, k := range cube.Corners() {
		for _, c := range k {
			assert.Equal(t, 1.0, math.Abs(c), "corner %v", k)
		}
		seen[k] = true
	}
	assert.Len(t, seen, 8)
}

type segment [2]mathutil.Vec3

func unordered(a, b mathutil.Vec3) segment {
	if a[0] < b[0] || (a[0] == b[0] && (a[1] < b[1] || (a[1] == b[1] && a[2] < b[2]))) {
		return segment{a, b}
	}
	return segment{b, a}
}

func assertCubeEdge(t *testing.T, s segment, side float64) {
	t.Helper()
	diffs := 0
	for i := 0; i < 3; i++ {
		d := math.Abs(s[0][i] - s[1][i])
		if d != 0 {
			diffs++
			assert.InDelta(t, side, d, 1e-12, "segment %v", s)
		}
	}
	assert.Equal(t, 1, diffs, "segment %v is not an edge", s)
}

func TestCubeWalkCoversEveryEdge(t *testing.T) {
	for _, tc := range []struct {
		side   float64
		center mathutil.Vec3
	}{
		{2, mathutil.Vec3{}},
		{0.5, mathutil.Vec3{0, 0, 1}},
		{13, mathutil.Vec3{-4, 7.5, 2}},
	} {
		cube, err := NewCube("c", tc.side, green, tc.center)
		require.NoError(t, err)

		pts := cube.EdgePoints()
		distinct := map[segment]bool{}
		for i := 1; i < len(pts); i++ {
			s := unordered(pts[i-1], pts[i])
			assertCubeEdge(t, s, tc.side)
			distinct[s] = true
		}
		assert.Len(t, distinct, 12)

		edges := map[segment]bool{}
		for _, e := range cube.Edges() {
			s := unordered(e[0], e[1])
			assertCubeEdge(t, s, tc.side)
			edges[s] = true
		}
		assert.Len(t, edges, 12)
		assert.Equal(t, edges, distinct)
	}
}

func TestAxisRevisitsOrigin(t *testing.T) {
	pts := NewAxis("a", green).EdgePoints()
	require.Len(t, pts, 8)
	assert.Equal(t, mathutil.Vec3{}, pts[2])
	assert.Equal(t, mathutil.Vec3{}, pts[5])
	assert.Equal(t, mathutil.Vec3{-100, 0, 0}, pts[0])
	assert.Equal(t, mathutil.Vec3{0, 0, 100}, pts[7])

	short, err := NewAxisWithLength("a", green, 2)
	require.NoError(t, err)
	assert.Equal(t, mathutil.Vec3{0, 2, 0}, short.EdgePoints()[4])
}

func TestEdgePointsAreFreshCopies(t *testing.T) {
	cube, err := NewCube("c", 1, green, mathutil.Vec3{})
	require.NoError(t, err)
	a := cube.EdgePoints()
	a[0] = mathutil.Vec3{99, 99, 99}
	assert.NotEqual(t, a[0], cube.EdgePoints()[0])
}

func TestInvalidSizes(t *testing.T) {
	for _, side := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewSquare("s", side, green, mathutil.Vec3{})
		assert.ErrorIs(t, err, ErrInvalidParameter)
		_, err = NewCube("c", side, green, mathutil.Vec3{})
		assert.ErrorIs(t, err, ErrInvalidParameter)
		_, err = NewAxisWithLength("a", green, side)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	}
}

func TestParseColor(t *testing.T) {
	cases := map[string]color.NRGBA{
		"green":     {R: 0, G: 128, B: 0, A: 255},
		" Red ":     {R: 255, A: 255},
		"#0f0":      {G: 255, A: 255},
		"#336699":   {R: 0x33, G: 0x66, B: 0x99, A: 255},
		"#33669980": {R: 0x33, G: 0x66, B: 0x99, A: 0x80},
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "notacolor", "#12", "#gggggg"} {
		_, err := ParseColor(bad)
		assert.ErrorIs(t, err, ErrInvalidParameter, bad)
	}
}
