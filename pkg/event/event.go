// Package event provides a synchronous in-process event dispatcher.
//
//	bus := event.New()
//	bus.Listen("dish.created", func(p any) { created.Inc() })
//	bus.Fire("dish.created", dish)
package event

import (
	"sync"
)

// Handler is a function that receives an event payload.
type Handler func(payload any)

type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func New() *Bus {
	return &Bus{handlers: map[string][]Handler{}}
}

// Listen registers a handler for the given event name.
func (b *Bus) Listen(event string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[event] = append(b.handlers[event], handler)
}

// Fire dispatches an event synchronously to all registered listeners, in
// registration order. A nil Bus drops the event.
func (b *Bus) Fire(event string, payload any) {
	for _, h := range b.listeners(event) {
		h(payload)
	}
}

// Flush removes all listeners.
func (b *Bus) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = map[string][]Handler{}
}

func (b *Bus) listeners(event string) []Handler {
	if b == nil {
		return nil
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	hs := make([]Handler, len(b.handlers[event]))
	copy(hs, b.handlers[event])
	return hs
}
