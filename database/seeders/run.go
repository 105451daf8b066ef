// Package seeders builds the collections the stores start with.
//
// Seeders register themselves by name and fill a Data value in
// registration order:
//
//	func init() {
//	    seeders.Register("dishes", SeedDishes)
//	}
//
// Load runs them, unless a seed file is configured, in which case the file
// replaces the built-in data.
package seeders

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/shashiranjanraj/grubdash/app/models"
	"github.com/shashiranjanraj/grubdash/pkg/logger"
)

// Data is the initial content of both stores.
type Data struct {
	Dishes []models.Dish  `json:"dishes"`
	Orders []models.Order `json:"orders"`
}

// SeederFunc fills part of d.
type SeederFunc func(d *Data) error

type seederEntry struct {
	name string
	fn   SeederFunc
}

var (
	mu      sync.Mutex
	entries []seederEntry
)

// Register adds a seeder to the global registry.
// Call this from init() in your seeder files.
func Register(name string, fn SeederFunc) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, seederEntry{name: name, fn: fn})
}

// RunAll executes every registered seeder in registration order.
// It stops on the first error.
func RunAll(d *Data) error {
	mu.Lock()
	current := make([]seederEntry, len(entries))
	copy(current, entries)
	mu.Unlock()

	for _, e := range current {
		if err := e.fn(d); err != nil {
			return fmt.Errorf("seeder %q: %w", e.name, err)
		}
		logger.Debug().Str("seeder", e.name).Msg("seeded")
	}
	return nil
}

// Load returns the seed data: the JSON document at file when it is set,
// the registered seeders otherwise.
func Load(file string) (*Data, error) {
	d := &Data{Dishes: []models.Dish{}, Orders: []models.Order{}}

	if file == "" {
		if err := RunAll(d); err != nil {
			return nil, err
		}
		return d, nil
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("seeders: read %s: %w", file, err)
	}
	if err := json.Unmarshal(raw, d); err != nil {
		return nil, fmt.Errorf("seeders: decode %s: %w", file, err)
	}
	return d, nil
}
