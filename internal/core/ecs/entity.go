package ecs

// EntityID is a world-assigned sequential identifier. Ids are never reused
// while the entity is alive.
type EntityID uint64

// Entity is identity plus data: an enabled flag, sparse component slots
// indexed by ComponentID, and a presence bitset mirroring the populated
// slots. Entities are always handled as *Entity; systems hold references
// into the owning world's storage and rely on the address staying put.
type Entity struct {
	id         EntityID
	enabled    bool
	components []any
	presence   Bitset
}

func newEntity(id EntityID, enabled bool) *Entity {
	return &Entity{id: id, enabled: enabled}
}

// ID returns the world-assigned identifier.
func (e *Entity) ID() EntityID {
	return e.id
}

// Enabled reports whether the entity participates in the active partition
// on the next refresh.
func (e *Entity) Enabled() bool {
	return e.enabled
}

// Enable marks the entity enabled. Component slots and presence bits are
// untouched.
func (e *Entity) Enable() {
	e.SetEnabled(true)
}

// Disable marks the entity disabled. This only flips the entity-level flag:
// systems that already link the entity keep it until it is destroyed or its
// components change while re-enabled (see World.Refresh).
func (e *Entity) Disable() {
	e.SetEnabled(false)
}

// SetEnabled sets the entity-level enabled flag.
func (e *Entity) SetEnabled(enabled bool) {
	e.enabled = enabled
}

// Presence returns the component presence bitset. Callers must treat it as
// read-only; it is what Refresh intersects with each system's accepted mask.
func (e *Entity) Presence() *Bitset {
	return &e.presence
}

// AddComponent stores comp on the entity and returns a pointer to the
// stored value. An existing component of the same type is silently
// overwritten.
func AddComponent[T any](e *Entity, comp T) *T {
	id := int(ComponentIDOf[T]())
	if id >= len(e.components) {
		grown := make([]any, id+1)
		copy(grown, e.components)
		e.components = grown
	}
	stored := &comp
	e.components[id] = stored
	e.presence.SetBit(id, true)
	return stored
}

// HasComponent reports whether the entity carries a component of type T.
func HasComponent[T any](e *Entity) bool {
	id := int(ComponentIDOf[T]())
	return id < e.presence.Size() && e.presence.Test(id)
}

// GetComponent returns the entity's component of type T, or
// ErrComponentNotFound when absent. The returned pointer stays valid until
// the component is removed or overwritten.
func GetComponent[T any](e *Entity) (*T, error) {
	if !HasComponent[T](e) {
		return nil, ErrComponentNotFound
	}
	return e.components[ComponentIDOf[T]()].(*T), nil
}

// RemoveComponent clears the entity's component of type T. Removing an
// absent component is a no-op.
func RemoveComponent[T any](e *Entity) {
	if !HasComponent[T](e) {
		return
	}
	id := int(ComponentIDOf[T]())
	e.components[id] = nil
	e.presence.SetBit(id, false)
}

// hasComponentID is the untyped presence check used by world queries.
func (e *Entity) hasComponentID(id ComponentID) bool {
	return int(id) < e.presence.Size() && e.presence.Test(int(id))
}
