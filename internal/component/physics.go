package component

// Velocity is a linear velocity in world units per second.
type Velocity struct {
	DX, DY, DZ float64
}

// Spin rotates a transform at a fixed rate, in radians per second.
type Spin struct {
	Rate float64
}
