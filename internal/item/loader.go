package item

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/logger"
	"github.com/osse101/FishingBot_Go/internal/metrics"
	"github.com/osse101/FishingBot_Go/internal/repository"
	"github.com/osse101/FishingBot_Go/internal/utils"
	"github.com/osse101/FishingBot_Go/internal/validation"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateID   = errors.New("duplicate item id")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config mirrors configs/items.json
type Config struct {
	Version     string `json:"version"`
	Fish        []Def  `json:"fish"`
	Rods        []Def  `json:"rods"`
	Baits       []Def  `json:"baits"`
	Accessories []Def  `json:"accessories"`
	Titles      []Def  `json:"titles"`

	// Checksum is the hex SHA-256 of the file the config was loaded from
	Checksum string `json:"-"`
}

// Def is a single catalog entry
type Def struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rarity      int    `json:"rarity"`
	Price       int    `json:"price"`
}

// Section is the entries of one template kind
type Section struct {
	Kind domain.ItemKind
	Defs []Def
}

// Sections returns the catalog grouped by kind, in domain.ItemKinds order
func (c *Config) Sections() []Section {
	return []Section{
		{Kind: domain.ItemKindFish, Defs: c.Fish},
		{Kind: domain.ItemKindRod, Defs: c.Rods},
		{Kind: domain.ItemKindBait, Defs: c.Baits},
		{Kind: domain.ItemKindAccessory, Defs: c.Accessories},
		{Kind: domain.ItemKindTitle, Defs: c.Titles},
	}
}

// Template converts a catalog entry into a template of the given kind
func (d Def) Template(kind domain.ItemKind) domain.ItemTemplate {
	rarity := d.Rarity
	if rarity == 0 {
		rarity = MinRarity
	}
	return domain.ItemTemplate{
		ID:          d.ID,
		Kind:        kind,
		Name:        strings.TrimSpace(d.Name),
		Description: d.Description,
		Rarity:      rarity,
		Price:       d.Price,
	}
}

// Loader handles loading, validating and seeding the item catalog
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, repo repository.ItemTemplate) (*SyncResult, error)
}

// SyncResult counts what a sync did
type SyncResult struct {
	Inserted int
	Updated  int
	Skipped  int
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &itemLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads an items file, checks it against the items schema and parses it
func (l *itemLoader) Load(path string) (*Config, error) {
	if err := l.schemaValidator.ValidateFile(path, validation.ItemsSchema); err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFailed, err)
	}

	var config Config
	checksum, err := utils.LoadJSON(path, &config)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFailed, err)
	}
	config.Checksum = checksum

	return &config, nil
}

// Validate checks ids are positive and unique per kind, names are set,
// rarity is in range and prices are not negative
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	for _, section := range config.Sections() {
		seen := make(map[int]bool, len(section.Defs))
		for i, def := range section.Defs {
			if err := validateDef(section.Kind, i, def, seen); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateDef(kind domain.ItemKind, index int, def Def, seen map[int]bool) error {
	if def.ID <= 0 {
		return fmt.Errorf(ErrFmtNonPositiveID, ErrInvalidConfig, kind, index, def.ID)
	}
	if strings.TrimSpace(def.Name) == "" {
		return fmt.Errorf(ErrFmtEmptyName, ErrInvalidConfig, kind, index)
	}
	if seen[def.ID] {
		return fmt.Errorf(ErrFmtDuplicateID, ErrDuplicateID, kind, def.ID)
	}
	seen[def.ID] = true

	if def.Rarity != 0 && (def.Rarity < MinRarity || def.Rarity > MaxRarity) {
		return fmt.Errorf(ErrFmtBadRarity, ErrInvalidConfig, kind, def.ID, def.Rarity)
	}
	if def.Price < 0 {
		return fmt.Errorf(ErrFmtNegativePrice, ErrInvalidConfig, kind, def.ID)
	}
	return nil
}

// SyncToDatabase upserts every catalog entry. Entries already stored with
// identical fields are skipped, so repeated syncs write nothing.
func (l *itemLoader) SyncToDatabase(ctx context.Context, config *Config, repo repository.ItemTemplate) (*SyncResult, error) {
	log := logger.FromContext(ctx)
	result := &SyncResult{}

	for _, section := range config.Sections() {
		for _, def := range section.Defs {
			if err := syncOne(ctx, repo, def.Template(section.Kind), result); err != nil {
				return nil, err
			}
		}
	}

	log.Info(LogMsgSyncCompleted,
		"checksum", config.Checksum,
		"inserted", result.Inserted,
		"updated", result.Updated,
		"skipped", result.Skipped)

	return result, nil
}

func syncOne(ctx context.Context, repo repository.ItemTemplate, tmpl domain.ItemTemplate, result *SyncResult) error {
	log := logger.FromContext(ctx)

	existing, err := repo.GetByKindAndID(ctx, tmpl.Kind, tmpl.ID)
	if err != nil {
		return fmt.Errorf(ErrMsgLookupFailed, tmpl.Kind, tmpl.ID, err)
	}
	if existing != nil && *existing == tmpl {
		result.Skipped++
		return nil
	}

	inserted, err := repo.Upsert(ctx, tmpl)
	if err != nil {
		return fmt.Errorf(ErrMsgUpsertFailed, tmpl.Kind, tmpl.ID, err)
	}

	if inserted {
		result.Inserted++
		metrics.CatalogSynced.WithLabelValues(string(tmpl.Kind), metrics.ActionInserted).Inc()
		log.Debug(LogMsgInsertedItem, "kind", tmpl.Kind, "id", tmpl.ID)
	} else {
		result.Updated++
		metrics.CatalogSynced.WithLabelValues(string(tmpl.Kind), metrics.ActionUpdated).Inc()
		log.Debug(LogMsgUpdatedItem, "kind", tmpl.Kind, "id", tmpl.ID)
	}
	return nil
}
