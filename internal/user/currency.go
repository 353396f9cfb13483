package user

import (
	"context"
	"fmt"

	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/event"
	"github.com/osse101/FishingBot_Go/internal/logger"
	"github.com/osse101/FishingBot_Go/internal/repository"
)

// GetUserCurrency returns both balances
func (s *service) GetUserCurrency(ctx context.Context, userID string) (CurrencyResult, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return CurrencyResult{}, err
	}
	if u == nil {
		return CurrencyResult{Result: userNotFound()}, nil
	}
	return CurrencyResult{
		Result:          domain.OK(s.sprintf(MsgCurrency, u.Coins, u.PremiumCurrency)),
		Coins:           u.Coins,
		PremiumCurrency: u.PremiumCurrency,
	}, nil
}

// ModifyUserCoins overwrites the coin balance with amount. It is an admin
// tool: there are no bounds and the previous balance is discarded.
func (s *service) ModifyUserCoins(ctx context.Context, userID string, amount int) (domain.Result, error) {
	ctx = logger.WithUserID(ctx, userID)
	tx, err := s.repos.Tx.BeginUserTx(ctx, userID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	u, err := tx.GetByID(ctx, userID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("%s: %w", ErrMsgGetUserFailed, err)
	}
	if u == nil {
		return userNotFound(), nil
	}

	old := u.Coins
	u.Coins = amount
	if err := tx.Update(ctx, *u); err != nil {
		return domain.Result{}, fmt.Errorf("%s: %w", ErrMsgUpdateUserFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Result{}, fmt.Errorf("%s: %w", ErrMsgCommitFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgCoinsOverwritten, "old", old, "new", amount)
	s.publish(ctx, event.NewCoinsModifiedEvent(userID, old, amount, s.clock()))
	return domain.OK(s.sprintf(MsgCoinsUpdated, amount)), nil
}

// GetTaxRecord returns the user's tax ledger as stored
func (s *service) GetTaxRecord(ctx context.Context, userID string) (TaxRecordsResult, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return TaxRecordsResult{}, err
	}
	if u == nil {
		return TaxRecordsResult{Result: userNotFound()}, nil
	}

	records, err := s.repos.Logs.GetTaxRecords(ctx, userID)
	if err != nil {
		return TaxRecordsResult{}, fmt.Errorf("%s: %w", ErrMsgGetTaxRecordsFailed, err)
	}
	if records == nil {
		records = []domain.TaxRecord{}
	}
	return TaxRecordsResult{
		Result:  domain.OK(s.sprintf(MsgTaxRecords, len(records))),
		Records: records,
	}, nil
}

// GetLeaderboard returns the richest users. Non-positive limits use the
// default and large ones are capped.
func (s *service) GetLeaderboard(ctx context.Context, limit int) (LeaderboardResult, error) {
	limit = clampLeaderboardLimit(limit)

	entries, err := s.repos.Users.GetLeaderboardData(ctx, limit)
	if err != nil {
		return LeaderboardResult{}, fmt.Errorf("%s: %w", ErrMsgGetLeaderboardFailed, err)
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	return LeaderboardResult{
		Result:      domain.OK(s.sprintf(MsgLeaderboard, len(entries))),
		Leaderboard: entries,
	}, nil
}

func clampLeaderboardLimit(limit int) int {
	if limit <= 0 {
		return domain.DefaultLeaderboardLimit
	}
	return min(limit, domain.MaxLeaderboardLimit)
}
