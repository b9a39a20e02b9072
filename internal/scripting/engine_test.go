package scripting_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/calyx/engine/internal/core/ecs"
	"github.com/calyx/engine/internal/scripting"
)

func writeScript(t *testing.T, dir, name, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
}

func TestEngineRunsUpdateHook(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "countdown.lua", `
frames = 0
function update(dt, time, substeps)
    frames = frames + 1
    return frames < 3
end
`)
	e, err := scripting.NewEngine(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	defer e.Close()

	info := ecs.FrameTimeInfo{DeltaTime: 0.016}
	for i := 0; i < 2; i++ {
		alive, err := e.Update(info)
		if err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
		if !alive {
			t.Fatalf("script should stay alive for the first two frames")
		}
	}
	alive, err := e.Update(info)
	if err != nil {
		t.Fatalf("final update: %v", err)
	}
	if alive {
		t.Fatalf("script should report done on the third frame")
	}
}

func TestEngineWithoutUpdateHookStaysAlive(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "empty.lua", `x = 1`)
	e, err := scripting.NewEngine(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	defer e.Close()

	alive, err := e.Update(ecs.FrameTimeInfo{})
	if err != nil || !alive {
		t.Fatalf("alive = %v, err = %v; want alive with no error", alive, err)
	}
}

func TestEngineMissingDirIsEmpty(t *testing.T) {
	e, err := scripting.NewEngine(filepath.Join(t.TempDir(), "absent"), zap.NewNop())
	if err != nil {
		t.Fatalf("missing dir must not be an error: %v", err)
	}
	e.Close()
}

func TestEngineRejectsBrokenScript(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "broken.lua", `function update( -- nope`)
	if _, err := scripting.NewEngine(dir, zap.NewNop()); err == nil {
		t.Fatalf("expected load error")
	}
}

func TestEngineReportsRuntimeError(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "boom.lua", `
function update(dt, time, substeps)
    error("boom")
end
`)
	e, err := scripting.NewEngine(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	defer e.Close()

	if _, err := e.Update(ecs.FrameTimeInfo{}); err == nil {
		t.Fatalf("expected runtime error from the update hook")
	}
}
