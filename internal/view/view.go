// Package view owns the rotating view plane and projects 3D points onto it.
package view

import (
	"fmt"

	"wireview/internal/mathutil"
)

// Point is a position in view-plane coordinates.
type Point struct {
	X, Y float64
}

// Polyline is an ordered run of points joined by segments.
type Polyline []Point

// Basis spans the view plane. U×V = N.
type Basis struct {
	U, V, N mathutil.Vec3
}

// View holds the rotation state of the view plane. The plane normal starts
// along +Y and is turned by RotZ(z)·RotX(x).
type View struct {
	zAngle   float64
	xAngle   float64
	fallback bool
}

type Option func(*View)

// WithFallbackBasis makes Basis fall back to mathutil.PlaneBasis when the
// normal is parallel to world Z, instead of returning ErrDegenerateInput.
func WithFallbackBasis() Option {
	return func(v *View) { v.fallback = true }
}

// New builds a view from a spin about Z and a tilt about X, both in degrees.
//
// The angles are stored negated: New(30, 0) turns the normal by -30° about
// Z. Callers that think in right-handed angles should pass the negated
// value.
func New(zDeg, xDeg float64, opts ...Option) *View {
	v := &View{
		zAngle: -mathutil.Deg2Rad(zDeg),
		xAngle: -mathutil.Deg2Rad(xDeg),
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Angles returns the stored z and x angles in radians.
func (v *View) Angles() (z, x float64) {
	return v.zAngle, v.xAngle
}

// Degrees returns the stored z and x angles in degrees.
func (v *View) Degrees() (z, x float64) {
	return mathutil.Rad2Deg(v.zAngle), mathutil.Rad2Deg(v.xAngle)
}

// Advance spins the view by delta radians. Positive delta decreases the
// stored z angle; the x angle never changes.
func (v *View) Advance(delta float64) {
	v.zAngle -= delta
}

// Normal returns the current unit normal of the view plane.
func (v *View) Normal() mathutil.Vec3 {
	r := mathutil.RotZX(v.zAngle, v.xAngle)
	return r.MulVec3(mathutil.AxisY).Normalize()
}

// Basis returns the plane basis for the current angles. V is horizontal
// (n×Z) and U completes the pair so that world +Z projects upward.
// A normal parallel to Z has no horizontal direction and fails with
// mathutil.ErrDegenerateInput unless WithFallbackBasis was given.
func (v *View) Basis() (Basis, error) {
	n := v.Normal()

	bv, err := n.Cross(mathutil.AxisZ).Unit()
	if err != nil {
		if !v.fallback {
			return Basis{}, fmt.Errorf("view: normal %v is parallel to Z: %w", n, err)
		}
		pu, pv, err := mathutil.PlaneBasis(n, 0)
		if err != nil {
			return Basis{}, err
		}
		return Basis{U: pv.Neg(), V: pu, N: n}, nil
	}

	bu, err := n.Cross(bv).Neg().Unit()
	if err != nil {
		return Basis{}, err
	}
	return Basis{U: bu, V: bv, N: n}, nil
}

// Project maps points onto the view plane, returning (p·V, p·U) for each
// in input order.
func (v *View) Project(points []mathutil.Vec3) (Polyline, error) {
	b, err := v.Basis()
	if err != nil {
		return nil, err
	}
	return b.Project(points)
}

// Project maps points onto the plane spanned by b.
func (b Basis) Project(points []mathutil.Vec3) (Polyline, error) {
	out := make(Polyline, len(points))
	for i, p := range points {
		if !p.IsFinite() {
			return nil, fmt.Errorf("view: point %d %v is not finite: %w", i, p, mathutil.ErrDegenerateInput)
		}
		q, err := mathutil.ProjectOntoPlane(p, b.N)
		if err != nil {
			return nil, err
		}
		out[i] = Point{X: q.Dot(b.V), Y: q.Dot(b.U)}
	}
	return out, nil
}
