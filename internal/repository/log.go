package repository

import (
	"context"
	"time"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// Log defines the interface for the check-in and tax ledgers
type Log interface {
	HasCheckedIn(ctx context.Context, userID string, day time.Time) (bool, error)
	// AddCheckIn returns domain.ErrAlreadyCheckedIn when the day is already recorded
	AddCheckIn(ctx context.Context, userID string, day time.Time) error
	GetTaxRecords(ctx context.Context, userID string) ([]domain.TaxRecord, error)
}
