package ecs

// Lifecycle events emitted by a world when an event bus is attached. All are
// delivered through the driver's frame-start dispatch, one frame after the
// mutation they describe.

// EntityLinked is emitted when a refresh links an entity to a system.
type EntityLinked struct {
	System SystemID
	Entity EntityID
}

// EntityUnlinked is emitted when a refresh unlinks an entity from a system.
type EntityUnlinked struct {
	System SystemID
	Entity EntityID
}

// EntityRemoved is emitted when a world destroys an entity.
type EntityRemoved struct {
	Entity EntityID
}

// SystemDeactivated is emitted when a system's Update returns false and the
// world clears its active bit.
type SystemDeactivated struct {
	System SystemID
}

// WorldFinished is emitted once, when the active-system set becomes empty.
type WorldFinished struct{}
