package event_test

import (
	"testing"

	"github.com/calyx/engine/internal/core/event"
)

type ping struct{ N int }
type pong struct{ N int }

func TestBusDeliversAfterSwap(t *testing.T) {
	bus := event.NewBus()
	var got []ping
	event.Subscribe(bus, func(ev ping) { got = append(got, ev) })

	event.Emit(bus, ping{N: 1})
	bus.DispatchAll()
	if len(got) != 0 {
		t.Fatalf("events must not be visible before the buffer swap")
	}

	bus.SwapBuffers()
	bus.DispatchAll()
	if len(got) != 1 || got[0].N != 1 {
		t.Fatalf("got %+v, want one ping{1}", got)
	}
}

func TestBusSwapClearsDeliveredEvents(t *testing.T) {
	bus := event.NewBus()
	seen := 0
	event.Subscribe(bus, func(ping) { seen++ })

	event.Emit(bus, ping{})
	bus.SwapBuffers()
	bus.DispatchAll()
	bus.SwapBuffers()
	bus.DispatchAll()
	if seen != 1 {
		t.Fatalf("event delivered %d times, want 1", seen)
	}
}

func TestBusKeepsTypesSeparate(t *testing.T) {
	bus := event.NewBus()
	pings, pongs := 0, 0
	event.Subscribe(bus, func(ping) { pings++ })
	event.Subscribe(bus, func(pong) { pongs++ })

	event.Emit(bus, ping{})
	event.Emit(bus, ping{})
	event.Emit(bus, pong{})
	bus.SwapBuffers()
	bus.DispatchAll()

	if pings != 2 || pongs != 1 {
		t.Fatalf("pings = %d, pongs = %d, want 2 and 1", pings, pongs)
	}
}

func TestBusMultipleHandlersInOrder(t *testing.T) {
	bus := event.NewBus()
	var order []int
	event.Subscribe(bus, func(ping) { order = append(order, 1) })
	event.Subscribe(bus, func(ping) { order = append(order, 2) })

	event.Emit(bus, ping{})
	bus.SwapBuffers()
	bus.DispatchAll()

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("handlers ran as %v, want [1 2]", order)
	}
}

func TestBusEmitOrderPreservedPerType(t *testing.T) {
	bus := event.NewBus()
	var got []int
	event.Subscribe(bus, func(ev ping) { got = append(got, ev.N) })

	for i := 0; i < 5; i++ {
		event.Emit(bus, ping{N: i})
	}
	bus.SwapBuffers()
	bus.DispatchAll()

	for i, n := range got {
		if n != i {
			t.Fatalf("events delivered as %v, want ascending order", got)
		}
	}
}
