// Package data loads declarative YAML scene files and spawns their entities
// into a world.
package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/calyx/engine/internal/component"
	"github.com/calyx/engine/internal/core/ecs"
)

type Scene struct {
	Name     string       `yaml:"name"`
	Entities []EntitySpec `yaml:"entities"`
}

// EntitySpec describes one entity. Absent component sections are simply not
// added; a nil Enabled means enabled.
type EntitySpec struct {
	Name      string         `yaml:"name"`
	Enabled   *bool          `yaml:"enabled"`
	Transform *TransformSpec `yaml:"transform"`
	Velocity  *VelocitySpec  `yaml:"velocity"`
	Spin      *float64       `yaml:"spin"`
	Lifetime  *float64       `yaml:"lifetime"`
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Z        float64 `yaml:"z"`
	Rotation float64 `yaml:"rotation"`
}

type VelocitySpec struct {
	DX float64 `yaml:"dx"`
	DY float64 `yaml:"dy"`
	DZ float64 `yaml:"dz"`
}

func LoadScene(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	var scene Scene
	if err := yaml.Unmarshal(raw, &scene); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}
	return &scene, nil
}

// Spawn creates every entity of the scene in w and returns how many were
// created.
func (s *Scene) Spawn(w *ecs.World) int {
	for _, spec := range s.Entities {
		enabled := spec.Enabled == nil || *spec.Enabled
		e := w.AddEntity(enabled)
		if spec.Transform != nil {
			ecs.AddComponent(e, component.Transform{
				X:        spec.Transform.X,
				Y:        spec.Transform.Y,
				Z:        spec.Transform.Z,
				Rotation: spec.Transform.Rotation,
			})
		}
		if spec.Velocity != nil {
			ecs.AddComponent(e, component.Velocity{
				DX: spec.Velocity.DX,
				DY: spec.Velocity.DY,
				DZ: spec.Velocity.DZ,
			})
		}
		if spec.Spin != nil {
			ecs.AddComponent(e, component.Spin{Rate: *spec.Spin})
		}
		if spec.Lifetime != nil {
			ecs.AddComponent(e, component.Lifetime{Remaining: *spec.Lifetime})
		}
	}
	return len(s.Entities)
}
