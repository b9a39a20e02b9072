package system

import (
	"go.uber.org/zap"

	"github.com/calyx/engine/internal/component"
	"github.com/calyx/engine/internal/core/ecs"
)

// LifetimeSystem counts down Lifetime components and removes expired
// entities from the owning world.
type LifetimeSystem struct {
	ecs.SystemBase
	world *ecs.World
	log   *zap.Logger
}

func NewLifetimeSystem(world *ecs.World, log *zap.Logger) *LifetimeSystem {
	if log == nil {
		log = zap.NewNop()
	}
	s := &LifetimeSystem{world: world, log: log}
	ecs.Accept[component.Lifetime](&s.SystemBase)
	return s
}

func (s *LifetimeSystem) Update(info ecs.FrameTimeInfo) bool {
	// Removal unlinks from this system's own list, so collect first.
	var expired []*ecs.Entity
	for _, e := range s.Entities() {
		lt, err := ecs.GetComponent[component.Lifetime](e)
		if err != nil {
			continue
		}
		lt.Remaining -= info.DeltaTime
		if lt.Remaining <= 0 {
			expired = append(expired, e)
		}
	}
	for _, e := range expired {
		if err := s.world.RemoveEntity(e); err != nil {
			s.log.Warn("remove expired entity", zap.Uint64("entity", uint64(e.ID())), zap.Error(err))
			continue
		}
		s.log.Debug("entity expired", zap.Uint64("entity", uint64(e.ID())))
	}
	return true
}
