package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/event"
	"github.com/osse101/FishingBot_Go/internal/logger"
)

// Register creates a user with the configured starting coins
func (s *service) Register(ctx context.Context, userID, nickname string) (domain.Result, error) {
	ctx = logger.WithUserID(ctx, userID)
	log := logger.FromContext(ctx)
	log.Info(LogMsgRegisterCalled)

	exists, err := s.repos.Users.CheckExists(ctx, userID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("%s: %w", ErrMsgCheckUserFailed, err)
	}
	if exists {
		return domain.Fail(domain.FailureAlreadyRegistered, MsgAlreadyRegistered), nil
	}

	now := s.clock()
	u := domain.User{
		ID:        userID,
		Nickname:  nickname,
		Coins:     s.game.InitialCoins,
		CreatedAt: now,
	}
	if err := s.repos.Users.Add(ctx, u); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			log.Info(LogMsgRegisterRace)
			return domain.Fail(domain.FailureAlreadyRegistered, MsgAlreadyRegistered), nil
		}
		return domain.Result{}, fmt.Errorf("%s: %w", ErrMsgAddUserFailed, err)
	}

	log.Info(LogMsgUserRegistered, "coins", u.Coins)
	s.publish(ctx, event.NewUserRegisteredEvent(userID, u.Coins, now))
	return domain.OK(s.sprintf(MsgRegistered, nickname, u.Coins)), nil
}
