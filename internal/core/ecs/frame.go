package ecs

// FrameTimeInfo carries the timing of one frame, computed by the application
// driver's accumulator loop and passed by value into World.Update. The core
// never measures time itself.
type FrameTimeInfo struct {
	// DeltaTime is the wall time elapsed since the previous frame, in seconds.
	DeltaTime float64
	// GlobalTime is the cumulative run time, in seconds.
	GlobalTime float64
	// SubstepCount is how many fixed-size substeps elapsed this frame.
	SubstepCount int
	// SubstepTime is the fixed substep duration, in seconds.
	SubstepTime float64
}
