package mathutil

import "math"

// axisRotation is the right-handed rotation by a radians about world axis i
// (0=X, 1=Y, 2=Z). The axis row and column stay fixed; the other two axes
// turn in cyclic order, so j → k for a positive angle.
func axisRotation(i int, a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	j, k := (i+1)%3, (i+2)%3
	var m Mat3
	m[i*3+i] = 1
	m[j*3+j] = c
	m[j*3+k] = -s
	m[k*3+j] = s
	m[k*3+k] = c
	return m
}

// RotX rotates about the X axis. Angle in radians.
func RotX(a float64) Mat3 { return axisRotation(0, a) }

// RotY rotates about the Y axis.
func RotY(a float64) Mat3 { return axisRotation(1, a) }

// RotZ rotates about the Z axis.
func RotZ(a float64) Mat3 { return axisRotation(2, a) }

// RotZX is RotZ(z)·RotX(x) in closed form: tilt about X, then spin about Z.
// Its middle column is where the view normal (+Y) ends up.
func RotZX(z, x float64) Mat3 {
	cz, sz := math.Cos(z), math.Sin(z)
	cx, sx := math.Cos(x), math.Sin(x)
	return Mat3{
		cz, -sz * cx, sz * sx,
		sz, cz * cx, -cz * sx,
		0, sx, cx,
	}
}

func Deg2Rad(d float64) float64 { return d * math.Pi / 180 }
func Rad2Deg(r float64) float64 { return r * 180 / math.Pi }
