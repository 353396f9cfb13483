package item

// ConfigFileName is the default catalog file under configs/
const ConfigFileName = "items.json"

// Error messages
const (
	ErrMsgReadConfigFailed = "failed to read items config: %w"
	ErrMsgConfigNil        = "config is nil"
	ErrMsgLookupFailed     = "failed to look up %s %d: %w"
	ErrMsgUpsertFailed     = "failed to upsert %s %d: %w"
)

// Format strings used with fmt.Errorf for per-entry validation failures
const (
	ErrFmtEmptyName     = "%w: %s at index %d has empty name"
	ErrFmtNonPositiveID = "%w: %s at index %d has id %d"
	ErrFmtDuplicateID   = "%w: %s %d"
	ErrFmtBadRarity     = "%w: %s %d has rarity %d"
	ErrFmtNegativePrice = "%w: %s %d has negative price"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Item catalog loaded"
	LogMsgSyncCompleted = "Item catalog sync completed"
	LogMsgInsertedItem  = "Inserted item template"
	LogMsgUpdatedItem   = "Updated item template"
)

// Rarity bounds for catalog entries. A missing rarity defaults to MinRarity.
const (
	MinRarity = 1
	MaxRarity = 10
)
