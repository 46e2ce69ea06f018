package mathutil

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateInput is returned when a zero or near-zero vector is given
// where a direction is required.
var ErrDegenerateInput = errors.New("degenerate input")

func degenerate(format string, args ...any) error {
	return fmt.Errorf("mathutil: %s: %w", fmt.Sprintf(format, args...), ErrDegenerateInput)
}

// ProjectOntoVector returns the component of v along n. n need not be unit length.
func ProjectOntoVector(v, n Vec3) (Vec3, error) {
	u, err := n.Unit()
	if err != nil {
		return Vec3{}, degenerate("project onto vector %v", n)
	}
	return u.Scale(v.Dot(u)), nil
}

// ProjectOntoPlane returns the component of v lying in the plane with normal n.
func ProjectOntoPlane(v, n Vec3) (Vec3, error) {
	along, err := ProjectOntoVector(v, n)
	if err != nil {
		return Vec3{}, degenerate("project onto plane %v", n)
	}
	return v.Sub(along), nil
}

// PlaneBasis returns two orthonormal vectors spanning the plane orthogonal
// to n, rotated within that plane by zRotation radians.
//
// The unrotated pair is u = n×helper, v = n×u, so (u, v, n) is right-handed.
// The helper is world Z unless n is within ~25° of it, in which case world X
// is used so the cross product never collapses.
//
// The rotation turns u towards v. For n = +Z it is exactly RotZ(zRotation)
// applied in the world frame; for other normals it stays inside the plane.
func PlaneBasis(n Vec3, zRotation float64) (Vec3, Vec3, error) {
	nu, err := n.Unit()
	if err != nil {
		return Vec3{}, Vec3{}, degenerate("plane basis for normal %v", n)
	}

	helper := AxisZ
	if math.Abs(nu.Dot(AxisZ)) >= helperSwitch {
		helper = AxisX
	}

	u, err := nu.Cross(helper).Unit()
	if err != nil {
		return Vec3{}, Vec3{}, err
	}
	v, err := nu.Cross(u).Unit()
	if err != nil {
		return Vec3{}, Vec3{}, err
	}

	if zRotation == 0 {
		return u, v, nil
	}
	c, s := math.Cos(zRotation), math.Sin(zRotation)
	ur := u.Scale(c).Add(v.Scale(s))
	vr := v.Scale(c).Sub(u.Scale(s))
	return ur, vr, nil
}
