// Package scripting hosts a Lua VM for frame logic that is easier to
// iterate on than compiled systems. Single-goroutine access only: the
// engine is driven from the frame loop.
package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/calyx/engine/internal/core/ecs"
)

// Engine wraps a single gopher-lua state with every script from a directory
// loaded into it.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates the VM and loads all .lua files from dir. A missing
// directory is not an error; the engine simply has no scripts.
func NewEngine(dir string, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	if err := e.loadDir(dir); err != nil {
		vm.Close()
		return nil, err
	}
	return e, nil
}

func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// Update calls the global lua function update(dt, time, substeps). The
// script's boolean return decides liveness; a script without an update hook,
// or one returning nothing, stays alive.
func (e *Engine) Update(info ecs.FrameTimeInfo) (bool, error) {
	fn := e.vm.GetGlobal("update")
	if fn == lua.LNil {
		return true, nil
	}
	err := e.vm.CallByParam(
		lua.P{Fn: fn, NRet: 1, Protect: true},
		lua.LNumber(info.DeltaTime),
		lua.LNumber(info.GlobalTime),
		lua.LNumber(info.SubstepCount),
	)
	if err != nil {
		return false, fmt.Errorf("lua update: %w", err)
	}
	ret := e.vm.Get(-1)
	e.vm.Pop(1)
	return ret != lua.LFalse, nil
}

// Close shuts the VM down.
func (e *Engine) Close() {
	e.vm.Close()
}
