package ecs_test

import (
	"testing"

	"github.com/calyx/engine/internal/core/ecs"
)

type maskSystem struct{ ecs.SystemBase }

func TestSystemBaseDefaults(t *testing.T) {
	s := &maskSystem{}
	if !s.Update(ecs.FrameTimeInfo{}) {
		t.Fatalf("default Update must report the system active")
	}
	s.Destroy() // default no-op must not panic
	if !s.Accepted().IsEmpty() {
		t.Fatalf("fresh system should accept nothing")
	}
}

func TestAcceptRefuseMutateMask(t *testing.T) {
	s := &maskSystem{}
	ecs.Accept2[position, velocity](&s.SystemBase)

	posBit := int(ecs.ComponentIDOf[position]())
	velBit := int(ecs.ComponentIDOf[velocity]())
	if !s.Accepted().Test(posBit) || !s.Accepted().Test(velBit) {
		t.Fatalf("accepted mask missing registered components: %s", s.Accepted().String())
	}

	ecs.Refuse[velocity](&s.SystemBase)
	if s.Accepted().Test(velBit) {
		t.Fatalf("refused component still in mask")
	}
	if !s.Accepted().Test(posBit) {
		t.Fatalf("refusing one component must not clear the other")
	}
}

func TestLinkUnlinkPreservesOrder(t *testing.T) {
	w := ecs.NewWorld()
	a := w.AddEntity(true)
	b := w.AddEntity(true)
	c := w.AddEntity(true)

	s := &maskSystem{}
	s.Link(a)
	s.Link(b)
	s.Link(c)

	if !s.ContainsEntity(b) {
		t.Fatalf("linked entity not found")
	}

	s.Unlink(b)
	if s.ContainsEntity(b) {
		t.Fatalf("unlinked entity still present")
	}
	got := s.Entities()
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Fatalf("unlink must preserve the order of the rest")
	}

	// Unlinking an entity that is not linked is a no-op.
	s.Unlink(b)
	if len(s.Entities()) != 2 {
		t.Fatalf("repeated unlink changed the list")
	}
}
