package testkit

import (
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/shashiranjanraj/grubdash/pkg/event"
)

// EventRecorder listens on a bus and records every event it sees. It wraps
// a testify mock so the usual call assertions work:
//
//	rec := testkit.RecordEvents(bus, "order.deleted")
//	...
//	rec.Mock().AssertNumberOfCalls(t, "Handle", 1)
type EventRecorder struct {
	m mock.Mock

	mu       sync.Mutex
	names    []string
	payloads []any
}

// RecordEvents subscribes a new recorder to each named event on bus.
func RecordEvents(bus *event.Bus, names ...string) *EventRecorder {
	rec := &EventRecorder{}
	rec.m.On("Handle", mock.AnythingOfType("string"), mock.Anything).Return()

	for _, name := range names {
		bus.Listen(name, func(payload any) { rec.handle(name, payload) })
	}
	return rec
}

func (r *EventRecorder) handle(name string, payload any) {
	r.mu.Lock()
	r.names = append(r.names, name)
	r.payloads = append(r.payloads, payload)
	r.mu.Unlock()

	r.m.MethodCalled("Handle", name, payload)
}

// Names returns the recorded event names in firing order.
func (r *EventRecorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.names) == 0 {
		return nil
	}
	return append([]string(nil), r.names...)
}

// Payloads returns the payloads recorded for name.
func (r *EventRecorder) Payloads(name string) []any {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []any
	for i, n := range r.names {
		if n == name {
			out = append(out, r.payloads[i])
		}
	}
	return out
}

// Reset clears the recorded history.
func (r *EventRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = nil
	r.payloads = nil
	r.m.Calls = nil
}

// Mock exposes the embedded testify mock for custom expectations.
func (r *EventRecorder) Mock() *mock.Mock { return &r.m }
