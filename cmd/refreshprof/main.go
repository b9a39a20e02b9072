// Profiling harness for the world refresh/dispatch path:
//
//	go build ./cmd/refreshprof
//	./refreshprof -entities 20000 -frames 2000
//	go tool pprof -http=":8000" cpu.pprof
package main

import (
	"flag"

	"github.com/pkg/profile"

	"github.com/calyx/engine/internal/component"
	"github.com/calyx/engine/internal/core/ecs"
	"github.com/calyx/engine/internal/system"
)

func main() {
	entities := flag.Int("entities", 10000, "number of entities")
	frames := flag.Int("frames", 1000, "number of frames to run")
	flag.Parse()

	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(*entities, *frames)
	p.Stop()
}

func run(entityCount, frames int) {
	w := ecs.NewWorldWithCapacity(entityCount)
	ecs.AddSystem(w, system.NewMovementSystem())
	ecs.AddSystem(w, system.NewSpinSystem())

	for i := 0; i < entityCount; i++ {
		e := w.AddEntity(true)
		ecs.AddComponent(e, component.Transform{X: float64(i)})
		if i%2 == 0 {
			ecs.AddComponent(e, component.Velocity{DX: 1})
		}
		if i%3 == 0 {
			ecs.AddComponent(e, component.Spin{Rate: 0.5})
		}
	}

	info := ecs.FrameTimeInfo{
		DeltaTime:    1.0 / 60.0,
		SubstepTime:  1.0 / 60.0,
		SubstepCount: 1,
	}
	for frame := 0; frame < frames; frame++ {
		// Flip a stripe of entities every few frames so the partition and
		// link/unlink paths both show up in the profile.
		if frame%8 == 0 {
			for i, e := range w.Entities() {
				if i%5 == 0 {
					e.SetEnabled(!e.Enabled())
				}
			}
		}
		info.GlobalTime += info.DeltaTime
		w.Update(info)
	}
	w.Destroy()
}
