package event

import (
	"reflect"
	"sync"
)

// Bus is a double-buffered, type-keyed publish/subscribe bus. Events emitted
// during frame N are delivered at the start of frame N+1, after the driver
// calls SwapBuffers. All delivery is synchronous on the caller's goroutine;
// the mutex only guards handler registration.
type Bus struct {
	mu       sync.Mutex
	front    map[reflect.Type][]any
	back     map[reflect.Type][]any
	handlers map[reflect.Type][]func(any)
}

func NewBus() *Bus {
	return &Bus{
		front:    make(map[reflect.Type][]any),
		back:     make(map[reflect.Type][]any),
		handlers: make(map[reflect.Type][]func(any)),
	}
}

// Emit queues an event into the back buffer for delivery next frame.
func Emit[T any](b *Bus, ev T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.back[t] = append(b.back[t], ev)
}

// Subscribe registers a handler for events of type T.
func Subscribe[T any](b *Bus, fn func(T)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.handlers[t] = append(b.handlers[t], func(v any) {
		fn(v.(T))
	})
}

// SwapBuffers rotates back to front and clears the new back buffer. Called
// once at frame start.
func (b *Bus) SwapBuffers() {
	b.front, b.back = b.back, b.front
	for t := range b.back {
		b.back[t] = b.back[t][:0]
	}
}

// DispatchAll delivers every front-buffer event to its handlers, in emit
// order per type.
func (b *Bus) DispatchAll() {
	for t, events := range b.front {
		handlers := b.handlers[t]
		for _, ev := range events {
			for _, h := range handlers {
				h(ev)
			}
		}
	}
}
