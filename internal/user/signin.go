package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/event"
	"github.com/osse101/FishingBot_Go/internal/logger"
	"github.com/osse101/FishingBot_Go/internal/repository"
)

// DailySignIn awards the daily reward once per game day and tracks the streak.
// The whole read-modify-write runs in one per-user transaction.
func (s *service) DailySignIn(ctx context.Context, userID string) (SignInResult, error) {
	ctx = logger.WithUserID(ctx, userID)
	log := logger.FromContext(ctx)
	log.Info(LogMsgSignInCalled)

	tx, err := s.repos.Tx.BeginUserTx(ctx, userID)
	if err != nil {
		return SignInResult{}, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	u, err := tx.GetByID(ctx, userID)
	if err != nil {
		return SignInResult{}, fmt.Errorf("%s: %w", ErrMsgGetUserFailed, err)
	}
	if u == nil {
		return SignInResult{Result: domain.Fail(domain.FailureNotRegistered, MsgNotRegistered)}, nil
	}

	now := s.clock()
	today := domain.CalendarDay(now, s.loc)

	checked, err := tx.HasCheckedIn(ctx, userID, today)
	if err != nil {
		return SignInResult{}, fmt.Errorf("%s: %w", ErrMsgCheckInLookupFailed, err)
	}
	if checked {
		return alreadyCheckedIn(), nil
	}

	continued, err := tx.HasCheckedIn(ctx, userID, domain.PreviousDay(today))
	if err != nil {
		return SignInResult{}, fmt.Errorf("%s: %w", ErrMsgCheckInLookupFailed, err)
	}
	if !continued {
		u.ConsecutiveLoginDays = 0
	}

	reward := s.roller.Roll(s.game.MinReward, s.game.MaxReward)
	u.ConsecutiveLoginDays++
	bonus := s.game.BonusFor(u.ConsecutiveLoginDays)
	u.Coins += reward + bonus
	u.LastLoginTime = &now

	if err := tx.Update(ctx, *u); err != nil {
		return SignInResult{}, fmt.Errorf("%s: %w", ErrMsgUpdateUserFailed, err)
	}
	if err := tx.AddCheckIn(ctx, userID, today); err != nil {
		if errors.Is(err, domain.ErrAlreadyCheckedIn) {
			log.Warn(LogMsgCheckInRace)
			return alreadyCheckedIn(), nil
		}
		return SignInResult{}, fmt.Errorf("%s: %w", ErrMsgAddCheckInFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return SignInResult{}, fmt.Errorf("%s: %w", ErrMsgCommitFailed, err)
	}

	log.Info(LogMsgSignedIn, "reward", reward, "bonus", bonus, "streak", u.ConsecutiveLoginDays)
	s.publish(ctx, event.NewUserSignedInEvent(userID, reward, bonus, u.ConsecutiveLoginDays, now))

	msg := s.sprintf(MsgSignedIn, reward)
	if bonus > 0 {
		msg += s.sprintf(MsgStreakBonus, u.ConsecutiveLoginDays, bonus)
	}
	return SignInResult{
		Result:          domain.OK(msg),
		CoinsReward:     reward,
		BonusCoins:      bonus,
		ConsecutiveDays: u.ConsecutiveLoginDays,
	}, nil
}

func alreadyCheckedIn() SignInResult {
	return SignInResult{Result: domain.Fail(domain.FailureAlreadyCheckedInToday, MsgAlreadyCheckedIn)}
}
