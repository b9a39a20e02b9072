package system

import (
	"github.com/calyx/engine/internal/component"
	"github.com/calyx/engine/internal/core/ecs"
)

// MovementSystem integrates Velocity into Transform using the frame's fixed
// substeps, so simulation speed stays independent of frame rate.
type MovementSystem struct {
	ecs.SystemBase
}

func NewMovementSystem() *MovementSystem {
	s := &MovementSystem{}
	ecs.Accept2[component.Transform, component.Velocity](&s.SystemBase)
	return s
}

func (s *MovementSystem) Update(info ecs.FrameTimeInfo) bool {
	// Linked entities match the mask on any accepted component, so either
	// lookup can still miss.
	step := float64(info.SubstepCount) * info.SubstepTime
	for _, e := range s.Entities() {
		tf, err := ecs.GetComponent[component.Transform](e)
		if err != nil {
			continue
		}
		vel, err := ecs.GetComponent[component.Velocity](e)
		if err != nil {
			continue
		}
		tf.X += vel.DX * step
		tf.Y += vel.DY * step
		tf.Z += vel.DZ * step
	}
	return true
}
