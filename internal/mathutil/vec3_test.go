package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnit(t *testing.T) {
	u, err := Vec3{0, 3, 4}.Unit()
	require.NoError(t, err)
	assert.True(t, u.ApproxEqual(Vec3{0, 0.6, 0.8}, Tolerance))

	_, err = Vec3{}.Unit()
	assert.ErrorIs(t, err, ErrDegenerateInput)
	assert.Equal(t, Vec3{}, Vec3{1e-13, 0, 0}.Normalize())
}

func TestCrossIsRightHanded(t *testing.T) {
	assert.Equal(t, AxisZ, AxisX.Cross(AxisY))
	assert.Equal(t, AxisX, AxisY.Cross(AxisZ))
	assert.Equal(t, AxisY, AxisZ.Cross(AxisX))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, Vec3{1, -2, 3}.IsFinite())
	assert.False(t, Vec3{math.NaN(), 0, 0}.IsFinite())
	assert.False(t, Vec3{0, math.Inf(-1), 0}.IsFinite())
}
