package system_test

import (
	"testing"

	"github.com/calyx/engine/internal/component"
	"github.com/calyx/engine/internal/core/ecs"
	"github.com/calyx/engine/internal/system"
)

func TestLifetimeRemovesExpiredEntities(t *testing.T) {
	w := ecs.NewWorld()
	ecs.AddSystem(w, system.NewLifetimeSystem(w, nil))

	doomed := ecs.AddEntityWith(w, component.Lifetime{Remaining: 0.05})
	survivor := ecs.AddEntityWith(w, component.Lifetime{Remaining: 10})

	w.Update(ecs.FrameTimeInfo{DeltaTime: 0.1})

	if len(w.Entities()) != 1 || w.Entities()[0] != survivor {
		t.Fatalf("expected only the survivor to remain, have %d entities", len(w.Entities()))
	}
	_ = doomed

	lt, err := ecs.GetComponent[component.Lifetime](survivor)
	if err != nil {
		t.Fatalf("survivor lifetime: %v", err)
	}
	if lt.Remaining >= 10 {
		t.Fatalf("survivor lifetime not ticked down: %v", lt.Remaining)
	}
}

func TestLifetimeRemovesSeveralAtOnce(t *testing.T) {
	w := ecs.NewWorld()
	ecs.AddSystem(w, system.NewLifetimeSystem(w, nil))
	for i := 0; i < 5; i++ {
		ecs.AddEntityWith(w, component.Lifetime{Remaining: 0.01})
	}

	w.Update(ecs.FrameTimeInfo{DeltaTime: 1})

	if len(w.Entities()) != 0 {
		t.Fatalf("%d entities survived, want 0", len(w.Entities()))
	}
}
