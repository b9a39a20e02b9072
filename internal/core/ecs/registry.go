package ecs

import (
	"reflect"
	"sync"
)

// ComponentID is the stable index of a component type within an entity's
// sparse slot array and presence bitset.
type ComponentID int

// SystemID is the stable index of a system type within a world's sparse
// system array and active-system bitset.
type SystemID int

// typeRegistry hands out monotonically increasing ids per distinct type.
// Ids are process-wide, assigned on first request, and never reused.
// The lock makes concurrent first use safe; ids stay stable either way.
type typeRegistry struct {
	mu   sync.Mutex
	ids  map[reflect.Type]int
	next int
}

func (r *typeRegistry) idOf(t reflect.Type) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ids == nil {
		r.ids = make(map[reflect.Type]int, 16)
	}
	id, ok := r.ids[t]
	if !ok {
		id = r.next
		r.next++
		r.ids[t] = id
	}
	return id
}

// Component and system ids come from independent counters: component id 0
// and system id 0 name unrelated types.
var (
	componentTypes typeRegistry
	systemTypes    typeRegistry
)

// ComponentIDOf returns the process-wide id of component type T, assigning
// one on first use.
func ComponentIDOf[T any]() ComponentID {
	return ComponentID(componentTypes.idOf(reflect.TypeOf((*T)(nil)).Elem()))
}

// SystemIDOf returns the process-wide id of system type S, assigning one on
// first use.
func SystemIDOf[S System]() SystemID {
	return SystemID(systemTypes.idOf(reflect.TypeOf((*S)(nil)).Elem()))
}

// systemIDOfValue resolves the id from a system instance's dynamic type.
func systemIDOfValue(s System) SystemID {
	return SystemID(systemTypes.idOf(reflect.TypeOf(s)))
}
