package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 [3]float64

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalize returns v scaled to unit length, or the zero vector when v is
// shorter than Epsilon. Use Unit where a zero result would be a bug.
func (v Vec3) Normalize() Vec3 {
	u, err := v.Unit()
	if err != nil {
		return Vec3{}
	}
	return u
}

// Unit returns v scaled to unit length. It fails with ErrDegenerateInput
// when |v| < Epsilon.
func (v Vec3) Unit() (Vec3, error) {
	l := v.Len()
	if l < Epsilon || math.IsNaN(l) {
		return Vec3{}, degenerate("normalize %v", v)
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}, nil
}

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vec3) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// ApproxEqual compares component-wise within tol.
func (a Vec3) ApproxEqual(b Vec3, tol float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}
