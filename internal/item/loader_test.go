package item

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FishingBot_Go/internal/database"
	"github.com/osse101/FishingBot_Go/internal/database/sqlite"
	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/metrics"
)

const sampleCatalog = `{
	"version": "1.0",
	"fish": [{"id": 1, "name": "Carp", "description": "Common pond fish", "rarity": 2, "price": 15}],
	"rods": [{"id": 1, "name": "Bamboo Rod", "rarity": 1, "price": 100}],
	"baits": [{"id": 1, "name": "Worm"}],
	"accessories": [{"id": 1, "name": "Straw Hat", "rarity": 3, "price": 250}],
	"titles": [{"id": 1, "name": "Novice Angler"}, {"id": 2, "name": "Sea Wolf", "rarity": 5}]
}`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTemplateRepo(t *testing.T) *sqlite.ItemTemplateRepository {
	t.Helper()
	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "items.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.MigrateSQLite(ctx, db))
	return sqlite.NewItemTemplateRepository(db)
}

func TestItemLoader_Load(t *testing.T) {
	loader := NewLoader()

	t.Run("valid file", func(t *testing.T) {
		config, err := loader.Load(writeCatalog(t, sampleCatalog))
		require.NoError(t, err)
		assert.Equal(t, "1.0", config.Version)
		assert.Len(t, config.Fish, 1)
		assert.Len(t, config.Titles, 2)
		assert.Equal(t, "Sea Wolf", config.Titles[1].Name)
		assert.Len(t, config.Checksum, 64)
	})

	t.Run("same content same checksum", func(t *testing.T) {
		a, err := loader.Load(writeCatalog(t, sampleCatalog))
		require.NoError(t, err)
		b, err := loader.Load(writeCatalog(t, sampleCatalog))
		require.NoError(t, err)
		assert.Equal(t, a.Checksum, b.Checksum)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read items config")
	})

	t.Run("schema violation", func(t *testing.T) {
		_, err := loader.Load(writeCatalog(t, `{"fish": [{"id": 1, "name": "Carp", "rarity": 42}]}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := loader.Load(writeCatalog(t, `{invalid`))
		assert.Error(t, err)
	})
}

func TestItemLoader_Validate(t *testing.T) {
	loader := NewLoader()

	tests := []struct {
		name    string
		config  *Config
		wantErr error
	}{
		{
			name:   "valid",
			config: &Config{Fish: []Def{{ID: 1, Name: "Carp"}}, Rods: []Def{{ID: 1, Name: "Bamboo Rod"}}},
		},
		{
			name:   "same id in different kinds",
			config: &Config{Baits: []Def{{ID: 3, Name: "Worm"}}, Titles: []Def{{ID: 3, Name: "Angler"}}},
		},
		{
			name:    "nil config",
			config:  nil,
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "duplicate id",
			config:  &Config{Titles: []Def{{ID: 1, Name: "A"}, {ID: 1, Name: "B"}}},
			wantErr: ErrDuplicateID,
		},
		{
			name:    "blank name",
			config:  &Config{Accessories: []Def{{ID: 1, Name: "  "}}},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "zero id",
			config:  &Config{Fish: []Def{{ID: 0, Name: "Carp"}}},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "rarity too high",
			config:  &Config{Fish: []Def{{ID: 1, Name: "Carp", Rarity: 11}}},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "negative price",
			config:  &Config{Rods: []Def{{ID: 1, Name: "Rod", Price: -1}}},
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loader.Validate(tt.config)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDef_Template(t *testing.T) {
	tmpl := Def{ID: 4, Name: " Worm ", Description: "wriggly"}.Template(domain.ItemKindBait)
	assert.Equal(t, domain.ItemTemplate{
		ID:          4,
		Kind:        domain.ItemKindBait,
		Name:        "Worm",
		Description: "wriggly",
		Rarity:      MinRarity,
	}, tmpl)
}

func TestItemLoader_SyncToDatabase(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader()
	repo := newTemplateRepo(t)

	config, err := loader.Load(writeCatalog(t, sampleCatalog))
	require.NoError(t, err)
	require.NoError(t, loader.Validate(config))

	insertedTitles := testutil.ToFloat64(metrics.CatalogSynced.WithLabelValues(string(domain.ItemKindTitle), metrics.ActionInserted))

	result, err := loader.SyncToDatabase(ctx, config, repo)
	require.NoError(t, err)
	assert.Equal(t, SyncResult{Inserted: 6}, *result)
	assert.Equal(t, insertedTitles+2,
		testutil.ToFloat64(metrics.CatalogSynced.WithLabelValues(string(domain.ItemKindTitle), metrics.ActionInserted)))

	title, err := repo.GetTitleByID(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, title)
	assert.Equal(t, "Sea Wolf", title.Name)
	assert.Equal(t, 5, title.Rarity)

	t.Run("second sync is a no-op", func(t *testing.T) {
		result, err := loader.SyncToDatabase(ctx, config, repo)
		require.NoError(t, err)
		assert.Equal(t, SyncResult{Skipped: 6}, *result)
	})

	t.Run("changed entry is updated", func(t *testing.T) {
		config.Rods[0].Price = 120
		result, err := loader.SyncToDatabase(ctx, config, repo)
		require.NoError(t, err)
		assert.Equal(t, SyncResult{Updated: 1, Skipped: 5}, *result)

		rod, err := repo.GetRodByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, rod)
		assert.Equal(t, 120, rod.Price)
	})
}
