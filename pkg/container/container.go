// Package container provides a lightweight dependency injection container.
//
// Each application builds its own Container, so tests can boot several
// independent instances side by side:
//
//	c := container.New()
//	c.Singleton("orders.store", func(*container.Container) any {
//	    return repositories.NewMemoryOrderStore()
//	})
//	orders := container.MustMake[*repositories.MemoryOrderStore](c, "orders.store")
package container

import (
	"fmt"
	"sync"
)

// Factory produces a service instance. It may resolve its own
// dependencies from c.
type Factory func(c *Container) any

type binding struct {
	factory   Factory
	singleton bool
	instance  any
	resolved  bool
}

type Container struct {
	mu       sync.Mutex
	bindings map[string]*binding
	// resolving guards against factories that depend on themselves.
	resolving map[string]bool
}

func New() *Container {
	return &Container{
		bindings:  map[string]*binding{},
		resolving: map[string]bool{},
	}
}

// Bind registers a factory under key. Each call to Make invokes it anew.
func (c *Container) Bind(key string, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings[key] = &binding{factory: factory}
}

// Singleton registers a factory that is called once; later Make calls
// return the cached instance.
func (c *Container) Singleton(key string, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings[key] = &binding{factory: factory, singleton: true}
}

// Instance registers an already built value.
func (c *Container) Instance(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings[key] = &binding{singleton: true, instance: v, resolved: true}
}

// Make resolves the service registered under key.
func (c *Container) Make(key string) (any, error) {
	c.mu.Lock()
	b, ok := c.bindings[key]
	if !ok {
		c.mu.Unlock()
		return nil, fmt.Errorf("container: unknown binding %q", key)
	}
	if b.resolved {
		v := b.instance
		c.mu.Unlock()
		return v, nil
	}
	if c.resolving[key] {
		c.mu.Unlock()
		return nil, fmt.Errorf("container: cyclic dependency on %q", key)
	}
	c.resolving[key] = true
	c.mu.Unlock()

	// The factory runs unlocked so it can resolve its own dependencies.
	v := b.factory(c)

	c.mu.Lock()
	delete(c.resolving, key)
	if b.singleton {
		b.instance = v
		b.resolved = true
	}
	c.mu.Unlock()
	return v, nil
}

// Has reports whether key has been bound.
func (c *Container) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.bindings[key]
	return ok
}

// MustMake resolves key as a T and panics if it is unbound or of
// another type. Factories use it to pull their dependencies.
func MustMake[T any](c *Container, key string) T {
	v, err := c.Make(key)
	if err != nil {
		panic(err)
	}
	if v == nil {
		var zero T
		return zero
	}
	t, ok := v.(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("container: %q is %T, not %T", key, v, zero))
	}
	return t
}
