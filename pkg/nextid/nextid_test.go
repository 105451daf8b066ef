package nextid

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var hexID = regexp.MustCompile(`^[0-9a-f]{32}$`)

func TestNextFormat(t *testing.T) {
	id := New().Next()
	assert.Regexp(t, hexID, id)
}

func TestNextUnique(t *testing.T) {
	g := New()
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := g.Next()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNextSkipsTakenIDs(t *testing.T) {
	first := uuid.MustParse("3c637d01-1d84-4eba-b120-5fef8a7e36ea")
	second := uuid.MustParse("90c3d873-684b-4e4a-a4c6-a1c3f9b0c2c0")
	seq := []uuid.UUID{first, first, second}

	calls := 0
	g := New(
		func(id string) bool { return id == "3c637d011d844ebab1205fef8a7e36ea" },
		func(string) bool { return false },
	)
	g.source = func() uuid.UUID {
		u := seq[calls]
		calls++
		return u
	}

	assert.Equal(t, "90c3d873684b4e4aa4c6a1c3f9b0c2c0", g.Next())
	assert.Equal(t, 3, calls)
}
