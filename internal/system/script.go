package system

import (
	"go.uber.org/zap"

	"github.com/calyx/engine/internal/core/ecs"
	"github.com/calyx/engine/internal/scripting"
)

// ScriptSystem runs the Lua update hook once per frame. It accepts no
// component types, so it never links entities; the script's return value
// alone decides whether the system stays active. The system owns the engine
// and closes it on Destroy.
type ScriptSystem struct {
	ecs.SystemBase
	engine *scripting.Engine
	log    *zap.Logger
}

func NewScriptSystem(engine *scripting.Engine, log *zap.Logger) *ScriptSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &ScriptSystem{engine: engine, log: log}
}

func (s *ScriptSystem) Update(info ecs.FrameTimeInfo) bool {
	alive, err := s.engine.Update(info)
	if err != nil {
		s.log.Error("script update failed", zap.Error(err))
		return false
	}
	return alive
}

func (s *ScriptSystem) Destroy() {
	s.engine.Close()
}
