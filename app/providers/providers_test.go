package providers

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/grubdash/app/repositories"
	"github.com/shashiranjanraj/grubdash/config"
	"github.com/shashiranjanraj/grubdash/database/seeders"
	"github.com/shashiranjanraj/grubdash/pkg/container"
	"github.com/shashiranjanraj/grubdash/pkg/nextid"
)

func TestBootWithEmbeddedSeeds(t *testing.T) {
	a, err := Boot(context.Background(), config.Defaults())
	require.NoError(t, err)

	assert.NotNil(t, a.Dishes)
	assert.NotNil(t, a.Orders)
	assert.NotNil(t, a.Health)
	assert.False(t, a.Menu.Enabled())

	dishes := container.MustMake[*repositories.MemoryDishStore](a.Container, KeyDishStore)
	orders := container.MustMake[*repositories.MemoryOrderStore](a.Container, KeyOrderStore)
	assert.Positive(t, dishes.Len())
	assert.Positive(t, orders.Len())
	assert.NoError(t, a.Close())
}

func TestBootSkipsUnreachableCache(t *testing.T) {
	cfg := config.Defaults()
	cfg.Redis.Addr = "127.0.0.1:1"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a, err := Boot(ctx, cfg)
	require.NoError(t, err)
	assert.False(t, a.Menu.Enabled())
}

func TestBootFailsOnBadSeedFile(t *testing.T) {
	cfg := config.Defaults()
	cfg.Seed.File = filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(cfg.Seed.File, []byte("{"), 0o644))

	_, err := Boot(context.Background(), cfg)
	assert.ErrorContains(t, err, "providers: seed")
}

func TestIDsAvoidBothCollections(t *testing.T) {
	data, err := seeders.Load("")
	require.NoError(t, err)
	c := Register(config.Defaults(), data, nil)

	dishes := container.MustMake[*repositories.MemoryDishStore](c, KeyDishStore)
	orders := container.MustMake[*repositories.MemoryOrderStore](c, KeyOrderStore)
	ids := container.MustMake[*nextid.Generator](c, KeyIDs)

	for i := 0; i < 50; i++ {
		id := ids.Next()
		assert.False(t, dishes.Has(id))
		assert.False(t, orders.Has(id))
	}
}

func TestRegisterSharesSingletons(t *testing.T) {
	c := Register(config.Defaults(), &seeders.Data{}, nil)
	a := Resolve(c)
	b := Resolve(c)

	assert.Same(t, a.Dishes, b.Dishes)
	assert.Same(t, a.Bus, b.Bus)
	assert.Same(t,
		container.MustMake[*repositories.MemoryOrderStore](c, KeyOrderStore),
		container.MustMake[*repositories.MemoryOrderStore](c, KeyOrderStore))
}
