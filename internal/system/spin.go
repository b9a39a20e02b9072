package system

import (
	"math"

	"github.com/calyx/engine/internal/component"
	"github.com/calyx/engine/internal/core/ecs"
)

// SpinSystem rotates transforms at their Spin rate, wrapping the angle into
// [0, 2π).
type SpinSystem struct {
	ecs.SystemBase
}

func NewSpinSystem() *SpinSystem {
	s := &SpinSystem{}
	ecs.Accept2[component.Transform, component.Spin](&s.SystemBase)
	return s
}

func (s *SpinSystem) Update(info ecs.FrameTimeInfo) bool {
	step := float64(info.SubstepCount) * info.SubstepTime
	for _, e := range s.Entities() {
		tf, err := ecs.GetComponent[component.Transform](e)
		if err != nil {
			continue
		}
		spin, err := ecs.GetComponent[component.Spin](e)
		if err != nil {
			continue
		}
		tf.Rotation = math.Mod(tf.Rotation+spin.Rate*step, 2*math.Pi)
	}
	return true
}
