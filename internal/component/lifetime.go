package component

// Lifetime expires an entity after a fixed duration. The lifetime system
// removes the owning entity once Remaining reaches zero.
type Lifetime struct {
	Remaining float64 // seconds
}
