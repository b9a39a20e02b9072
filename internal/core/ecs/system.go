package ecs

// System is behavior over the entities whose component set intersects the
// system's accepted mask. Concrete systems embed SystemBase for the mask and
// link bookkeeping and override what they need; World drives the rest.
type System interface {
	// Update runs one frame of behavior. Returning false deactivates the
	// system: the world clears its active bit and never reactivates it.
	Update(info FrameTimeInfo) bool
	// Destroy releases any resources the system holds. Called once by the
	// owning world on teardown or replacement.
	Destroy()
	// Accepted returns the accepted-component mask.
	Accepted() *Bitset
	// ContainsEntity reports whether the entity is currently linked.
	ContainsEntity(e *Entity) bool
	// Link appends the entity to the linked list. Called by Refresh when an
	// active entity starts matching the mask.
	Link(e *Entity)
	// Unlink removes the entity, preserving the order of the rest. Called by
	// Refresh when an active entity stops matching, and by RemoveEntity.
	Unlink(e *Entity)
}

// SystemBase carries the accepted-component mask and the cached list of
// linked entities. It satisfies System with default behavior: Update keeps
// the system alive, Destroy does nothing.
type SystemBase struct {
	accepted Bitset
	entities []*Entity
}

// Update implements System; the default reports the system still active.
func (b *SystemBase) Update(FrameTimeInfo) bool {
	return true
}

// Destroy implements System; the default releases nothing.
func (b *SystemBase) Destroy() {}

// Accepted returns the accepted-component mask.
func (b *SystemBase) Accepted() *Bitset {
	return &b.accepted
}

// Entities returns the currently linked entities. The slice is owned by the
// system; callers iterate, they do not mutate.
func (b *SystemBase) Entities() []*Entity {
	return b.entities
}

// ContainsEntity scans the linked list by id. Linear on purpose: it runs at
// most once per entity per refresh, not per query.
func (b *SystemBase) ContainsEntity(e *Entity) bool {
	for _, linked := range b.entities {
		if linked.ID() == e.ID() {
			return true
		}
	}
	return false
}

// Link appends the entity to the linked list.
func (b *SystemBase) Link(e *Entity) {
	b.entities = append(b.entities, e)
}

// Unlink removes the entity from the linked list, keeping the remaining
// order.
func (b *SystemBase) Unlink(e *Entity) {
	for i, linked := range b.entities {
		if linked.ID() == e.ID() {
			b.entities = append(b.entities[:i], b.entities[i+1:]...)
			return
		}
	}
}

// Accept adds component type T to the accepted mask. Concrete systems call
// it from their constructors.
func Accept[T any](b *SystemBase) {
	b.accepted.SetBit(int(ComponentIDOf[T]()), true)
}

// Accept2 adds two component types to the accepted mask.
func Accept2[A, B any](b *SystemBase) {
	Accept[A](b)
	Accept[B](b)
}

// Accept3 adds three component types to the accepted mask.
func Accept3[A, B, C any](b *SystemBase) {
	Accept[A](b)
	Accept[B](b)
	Accept[C](b)
}

// Refuse removes component type T from the accepted mask.
func Refuse[T any](b *SystemBase) {
	b.accepted.SetBit(int(ComponentIDOf[T]()), false)
}
