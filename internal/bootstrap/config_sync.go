package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/FishingBot_Go/internal/item"
	"github.com/osse101/FishingBot_Go/internal/repository"
)

// SyncItems loads, validates, and syncs the item catalog to the database.
// Unchanged entries are skipped so repeated startups write nothing.
func SyncItems(ctx context.Context, path string, repo repository.ItemTemplate) (*item.SyncResult, error) {
	slog.Info(LogMsgSyncingItems, "path", path)
	loader := item.NewLoader()

	catalog, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadItems, err)
	}
	slog.Info(item.LogMsgCatalogLoaded, "version", catalog.Version, "checksum", catalog.Checksum)

	if err := loader.Validate(catalog); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidItems, err)
	}

	result, err := loader.SyncToDatabase(ctx, catalog, repo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSyncItems, err)
	}

	if result.Inserted > 0 || result.Updated > 0 {
		slog.Info(LogMsgItemsSynced,
			"inserted", result.Inserted,
			"updated", result.Updated,
			"skipped", result.Skipped)
	} else {
		slog.Info(LogMsgItemsUnchanged, "skipped", result.Skipped)
	}
	return result, nil
}
