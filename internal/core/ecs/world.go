package ecs

import (
	"fmt"

	"github.com/calyx/engine/internal/core/event"
)

// World exclusively owns a set of entities and systems and keeps system
// membership consistent with live component and enabled state. Each frame,
// Update runs the refresh pass and then dispatches every active system.
//
// A world is single-threaded: every mutation runs to completion before
// returning, and worlds share no state with each other.
type World struct {
	systems       []System // sparse, indexed by SystemID
	activeSystems Bitset

	entities          []*Entity
	activeEntityCount int
	maxEntityIndex    EntityID

	bus      *event.Bus
	finished bool
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// NewWorldWithCapacity creates an empty world with entity storage
// preallocated for entityCount entities.
func NewWorldWithCapacity(entityCount int) *World {
	return &World{entities: make([]*Entity, 0, entityCount)}
}

// SetEventBus attaches a bus for lifecycle events. A nil bus (the default)
// disables emission.
func (w *World) SetEventBus(bus *event.Bus) {
	w.bus = bus
}

// Systems returns the sparse system slice, indexed by SystemID. Slots of
// never-added system types are nil.
func (w *World) Systems() []System {
	return w.systems
}

// Entities returns the entity storage. After a refresh, the enabled
// entities occupy the prefix [0, ActiveEntityCount()).
func (w *World) Entities() []*Entity {
	return w.entities
}

// ActiveEntityCount returns the size of the active partition as of the last
// refresh.
func (w *World) ActiveEntityCount() int {
	return w.activeEntityCount
}

// AddSystem registers sys under its concrete type's id and marks it active.
// A prior system of the same type is destroyed and replaced.
func AddSystem[S System](w *World, sys S) S {
	id := int(systemIDOfValue(sys))
	if id >= len(w.systems) {
		grown := make([]System, id+1)
		copy(grown, w.systems)
		w.systems = grown
	}
	if prev := w.systems[id]; prev != nil {
		prev.Destroy()
	}
	w.systems[id] = sys
	w.activeSystems.SetBit(id, true)
	w.finished = false
	return sys
}

// HasSystem reports whether the world holds a system of type S.
func HasSystem[S System](w *World) bool {
	id := int(SystemIDOf[S]())
	return id < len(w.systems) && w.systems[id] != nil
}

// GetSystem returns the world's system of type S, or ErrSystemNotFound.
func GetSystem[S System](w *World) (S, error) {
	var zero S
	if !HasSystem[S](w) {
		return zero, ErrSystemNotFound
	}
	return w.systems[SystemIDOf[S]()].(S), nil
}

// RemoveSystem destroys and removes the world's system of type S, if any.
func RemoveSystem[S System](w *World) {
	if !HasSystem[S](w) {
		return
	}
	id := int(SystemIDOf[S]())
	w.systems[id].Destroy()
	w.systems[id] = nil
	w.activeSystems.SetBit(id, false)
}

// AddEntity creates a new entity with the next sequential id.
func (w *World) AddEntity(enabled bool) *Entity {
	w.maxEntityIndex++
	e := newEntity(w.maxEntityIndex, enabled)
	w.entities = append(w.entities, e)
	return e
}

// AddEntityWith creates an enabled entity carrying comp.
func AddEntityWith[T any](w *World, comp T) *Entity {
	e := w.AddEntity(true)
	AddComponent(e, comp)
	return e
}

// AddEntityWith2 creates an entity carrying two components.
func AddEntityWith2[A, B any](w *World, enabled bool, a A, b B) *Entity {
	e := w.AddEntity(enabled)
	AddComponent(e, a)
	AddComponent(e, b)
	return e
}

// AddEntityWith3 creates an entity carrying three components.
func AddEntityWith3[A, B, C any](w *World, enabled bool, a A, b B, c C) *Entity {
	e := w.AddEntity(enabled)
	AddComponent(e, a)
	AddComponent(e, b)
	AddComponent(e, c)
	return e
}

// EntitiesWith scans all entities, enabled or not, and returns those
// carrying a component of type T. It ignores the per-frame link cache; use
// it for ad hoc queries between refreshes.
func EntitiesWith[T any](w *World) []*Entity {
	return w.entitiesWithIDs(ComponentIDOf[T]())
}

// EntitiesWith2 returns every entity carrying both component types.
func EntitiesWith2[A, B any](w *World) []*Entity {
	return w.entitiesWithIDs(ComponentIDOf[A](), ComponentIDOf[B]())
}

// EntitiesWith3 returns every entity carrying all three component types.
func EntitiesWith3[A, B, C any](w *World) []*Entity {
	return w.entitiesWithIDs(ComponentIDOf[A](), ComponentIDOf[B](), ComponentIDOf[C]())
}

func (w *World) entitiesWithIDs(ids ...ComponentID) []*Entity {
	var matched []*Entity
	for _, e := range w.entities {
		ok := true
		for _, id := range ids {
			if !e.hasComponentID(id) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, e)
		}
	}
	return matched
}

// RemoveEntity unlinks e from every system and destroys it. It returns
// ErrForeignEntity, leaving the world unchanged, when e is not owned by
// this world.
func (w *World) RemoveEntity(e *Entity) error {
	idx := -1
	for i, owned := range w.entities {
		if owned == e {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("remove entity %d: %w", e.ID(), ErrForeignEntity)
	}
	for _, s := range w.systems {
		if s != nil {
			s.Unlink(e)
		}
	}
	w.entities = append(w.entities[:idx], w.entities[idx+1:]...)
	if idx < w.activeEntityCount {
		w.activeEntityCount--
	}
	if w.bus != nil {
		event.Emit(w.bus, EntityRemoved{Entity: e.ID()})
	}
	return nil
}

// Update runs one frame: a refresh, then every active system in ascending
// id order. A system returning false has its active bit cleared and is
// never dispatched again, though it stays in storage. Update returns false
// once the active-system set is empty, signaling the world is finished.
func (w *World) Update(info FrameTimeInfo) bool {
	w.Refresh()
	for id, s := range w.systems {
		if s == nil || !w.systemActive(id) {
			continue
		}
		if !s.Update(info) {
			w.activeSystems.SetBit(id, false)
			if w.bus != nil {
				event.Emit(w.bus, SystemDeactivated{System: SystemID(id)})
			}
		}
	}
	if w.activeSystems.IsEmpty() {
		if !w.finished {
			w.finished = true
			if w.bus != nil {
				event.Emit(w.bus, WorldFinished{})
			}
		}
		return false
	}
	return true
}

// Refresh repartitions entity storage and reconciles system links:
//
//  1. One unstable two-pointer pass swaps entities so the enabled ones
//     occupy the contiguous prefix [0, ActiveEntityCount()).
//  2. For each entity in that prefix and each active system, the entity is
//     linked when its presence intersects the accepted mask and unlinked
//     when it no longer does.
//
// Entities outside the active prefix are not revisited: disabling an entity
// does not retract it from systems that already link it. It stays linked
// until it is destroyed or its components change while re-enabled. That is
// the canonical policy, pinned by tests, not an oversight to fix here.
func (w *World) Refresh() {
	if len(w.entities) == 0 {
		w.activeEntityCount = 0
		return
	}
	w.partitionEntities()
	for _, e := range w.entities[:w.activeEntityCount] {
		for id, s := range w.systems {
			if s == nil || !w.systemActive(id) {
				continue
			}
			if s.Accepted().Intersects(e.presence) {
				if !s.ContainsEntity(e) {
					s.Link(e)
					if w.bus != nil {
						event.Emit(w.bus, EntityLinked{System: SystemID(id), Entity: e.ID()})
					}
				}
			} else if s.ContainsEntity(e) {
				s.Unlink(e)
				if w.bus != nil {
					event.Emit(w.bus, EntityUnlinked{System: SystemID(id), Entity: e.ID()})
				}
			}
		}
	}
}

// Destroy tears the world down: every system's Destroy hook runs, all
// storage is dropped, and the id counter resets. Safe to call repeatedly.
func (w *World) Destroy() {
	for _, s := range w.systems {
		if s != nil {
			s.Destroy()
		}
	}
	w.systems = nil
	w.activeSystems.Clear()
	w.entities = nil
	w.activeEntityCount = 0
	w.maxEntityIndex = 0
	w.finished = false
}

func (w *World) systemActive(id int) bool {
	return id < w.activeSystems.Size() && w.activeSystems.Test(id)
}

// partitionEntities is the single two-pointer swap scan: front walks over
// enabled entities, back walks over disabled ones, mismatches swap. Not a
// stable partition; relative order may change.
func (w *World) partitionEntities() {
	front, back := 0, len(w.entities)-1
	for front <= back {
		if w.entities[front].enabled {
			front++
			continue
		}
		if !w.entities[back].enabled {
			back--
			continue
		}
		w.entities[front], w.entities[back] = w.entities[back], w.entities[front]
		front++
		back--
	}
	w.activeEntityCount = front
}
