package ecs

import "errors"

var (
	// ErrComponentNotFound signals a component lookup on an entity that does
	// not carry that component type. Check HasComponent first on hot paths.
	ErrComponentNotFound = errors.New("ecs: component not found")
	// ErrSystemNotFound signals a system lookup on a world that does not
	// hold a system of that type.
	ErrSystemNotFound = errors.New("ecs: system not found")
	// ErrForeignEntity is returned when an entity is handed to a world that
	// does not own it.
	ErrForeignEntity = errors.New("ecs: entity not owned by this world")
	// ErrInvalidTimeStep is returned for a non-positive fixed time step.
	ErrInvalidTimeStep = errors.New("ecs: fixed time step must be positive")
)
