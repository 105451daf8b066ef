// Package nextid generates record identifiers.
//
// Ids are random v4 UUIDs rendered as 32 lowercase hex characters. A
// Generator checks candidates against the live id sets it was given, so an
// id is never handed out while a record already holds it.
package nextid

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// Taken reports whether id is held by a live record.
type Taken func(id string) bool

type Generator struct {
	taken  []Taken
	source func() uuid.UUID
}

// New returns a Generator that avoids every id any of taken reports.
func New(taken ...Taken) *Generator {
	return &Generator{taken: taken, source: uuid.New}
}

// Next returns an id no live record holds.
func (g *Generator) Next() string {
	for {
		u := g.source()
		id := hex.EncodeToString(u[:])
		if !g.inUse(id) {
			return id
		}
	}
}

func (g *Generator) inUse(id string) bool {
	for _, taken := range g.taken {
		if taken(id) {
			return true
		}
	}
	return false
}
