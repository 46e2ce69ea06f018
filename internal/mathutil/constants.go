package mathutil

const (
	// Epsilon is the magnitude below which a vector has no usable direction.
	Epsilon = 1e-12

	// Tolerance bounds unit-length and orthogonality checks.
	Tolerance = 1e-9

	// helperSwitch is the |n·Z| above which PlaneBasis crosses with X instead of Z.
	helperSwitch = 0.9
)

// World axes.
var (
	AxisX = Vec3{1, 0, 0}
	AxisY = Vec3{0, 1, 0}
	AxisZ = Vec3{0, 0, 1}
)
