package component

// Transform is a position and orientation in world space. Rotation is an
// angle around the Z axis, in radians.
type Transform struct {
	X, Y, Z  float64
	Rotation float64
}
