package mathutil

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

var testAngles = []float64{0, 0.1, -0.7, math.Pi / 2, math.Pi, 2.5, -3.1, 7 * math.Pi / 3, 100}

func TestRotationsAreOrthonormal(t *testing.T) {
	id := Mat3Identity()
	for _, a := range testAngles {
		for name, r := range map[string]Mat3{"x": RotX(a), "y": RotY(a), "z": RotZ(a)} {
			assert.Truef(t, Mat3Mul(r, r.Transpose()).ApproxEqual(id, Tolerance), "R%s(%v)·Rᵗ != I", name, a)
			assert.InDeltaf(t, 1, r.Det(), Tolerance, "det R%s(%v)", name, a)
		}
	}
}

func TestRotationsAtZeroAreIdentity(t *testing.T) {
	id := Mat3Identity()
	assert.Equal(t, id, RotX(0))
	assert.Equal(t, id, RotY(0))
	assert.Equal(t, id, RotZ(0))
}

func TestRotationsMatchMathgl(t *testing.T) {
	pairs := []struct {
		name string
		ours func(float64) Mat3
		ref  func(float64) mgl64.Mat3
	}{
		{"x", RotX, mgl64.Rotate3DX},
		{"y", RotY, mgl64.Rotate3DY},
		{"z", RotZ, mgl64.Rotate3DZ},
	}
	for _, p := range pairs {
		for _, a := range testAngles {
			got, want := p.ours(a), p.ref(a)
			for r := 0; r < 3; r++ {
				for c := 0; c < 3; c++ {
					assert.InDeltaf(t, want.At(r, c), got.At(r, c), Tolerance, "R%s(%v)[%d][%d]", p.name, a, r, c)
				}
			}
		}
	}
}

func TestRightHandedQuarterTurns(t *testing.T) {
	q := math.Pi / 2
	assert.True(t, RotX(q).MulVec3(AxisY).ApproxEqual(AxisZ, Tolerance))
	assert.True(t, RotY(q).MulVec3(AxisZ).ApproxEqual(AxisX, Tolerance))
	assert.True(t, RotZ(q).MulVec3(AxisX).ApproxEqual(AxisY, Tolerance))
}

func TestCompositionAppliesRightmostFirst(t *testing.T) {
	// X first takes Y to Z, then Z leaves it alone.
	q := math.Pi / 2
	got := Mat3Mul(RotZ(q), RotX(q)).MulVec3(AxisY)
	assert.True(t, got.ApproxEqual(AxisZ, Tolerance), "got %v", got)

	// Reversed order: Z first takes Y to -X, X leaves it alone.
	got = Mat3Mul(RotX(q), RotZ(q)).MulVec3(AxisY)
	assert.True(t, got.ApproxEqual(AxisX.Neg(), Tolerance), "got %v", got)
}

func TestDegreeConversion(t *testing.T) {
	assert.InDelta(t, math.Pi, Deg2Rad(180), Tolerance)
	assert.InDelta(t, -90, Rad2Deg(-math.Pi/2), Tolerance)
	assert.InDelta(t, 12.5, Rad2Deg(Deg2Rad(12.5)), Tolerance)
}

func TestRotZXMatchesProduct(t *testing.T) {
	for _, z := range testAngles {
		for _, x := range testAngles {
			want := Mat3Mul(RotZ(z), RotX(x))
			assert.Truef(t, RotZX(z, x).ApproxEqual(want, Tolerance), "RotZX(%v, %v)", z, x)
		}
	}
}
