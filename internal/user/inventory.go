package user

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/event"
	"github.com/osse101/FishingBot_Go/internal/logger"
	"github.com/osse101/FishingBot_Go/internal/repository"
)

func (s *service) getUser(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.repos.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetUserFailed, err)
	}
	return u, nil
}

func userNotFound() domain.Result {
	return domain.Fail(domain.FailureUserNotFound, MsgUserNotFound)
}

// GetUserCurrentAccessory returns the equipped accessory merged with its template
func (s *service) GetUserCurrentAccessory(ctx context.Context, userID string) (AccessoryResult, error) {
	ctx = logger.WithUserID(ctx, userID)
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return AccessoryResult{}, err
	}
	if u == nil {
		return AccessoryResult{Result: userNotFound()}, nil
	}

	equipped, err := s.repos.Inventory.GetUserEquippedAccessory(ctx, userID)
	if err != nil {
		return AccessoryResult{}, fmt.Errorf("%s: %w", ErrMsgGetAccessoryFailed, err)
	}
	if equipped == nil {
		return AccessoryResult{Result: domain.OK(MsgNoAccessory)}, nil
	}

	tmpl, err := s.repos.Templates.GetAccessoryByID(ctx, equipped.AccessoryID)
	if err != nil {
		return AccessoryResult{}, fmt.Errorf("%s: %w", ErrMsgGetTemplateFailed, err)
	}
	if tmpl == nil {
		logger.FromContext(ctx).Warn(LogMsgAccessoryMissing, "accessory_id", equipped.AccessoryID)
		return AccessoryResult{Result: domain.Fail(domain.FailureAccessoryTemplateMissing, MsgAccessoryMissing)}, nil
	}

	return AccessoryResult{
		Result: domain.OK(s.sprintf(MsgAccessoryFound, tmpl.Name)),
		Accessory: &domain.AccessoryView{
			ID:          tmpl.ID,
			InstanceID:  equipped.InstanceID,
			Name:        tmpl.Name,
			Description: tmpl.Description,
		},
	}, nil
}

// GetUserTitles lists owned titles. Titles whose template is gone are skipped.
func (s *service) GetUserTitles(ctx context.Context, userID string) (TitlesResult, error) {
	ctx = logger.WithUserID(ctx, userID)
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return TitlesResult{}, err
	}
	if u == nil {
		return TitlesResult{Result: userNotFound()}, nil
	}

	owned, err := s.repos.Inventory.GetUserTitles(ctx, userID)
	if err != nil {
		return TitlesResult{}, fmt.Errorf("%s: %w", ErrMsgGetTitlesFailed, err)
	}

	titles := make([]domain.TitleView, 0, len(owned))
	for _, id := range owned {
		tmpl, err := s.repos.Templates.GetTitleByID(ctx, id)
		if err != nil {
			return TitlesResult{}, fmt.Errorf("%s: %w", ErrMsgGetTemplateFailed, err)
		}
		if tmpl == nil {
			logger.FromContext(ctx).Debug(LogMsgTitleTemplateMiss, "title_id", id)
			continue
		}
		titles = append(titles, domain.TitleView{
			TitleID:     id,
			Name:        tmpl.Name,
			Description: tmpl.Description,
			IsCurrent:   u.HasCurrentTitle(id),
		})
	}

	msg := MsgNoTitles
	if len(titles) > 0 {
		msg = s.sprintf(MsgTitlesFound, len(titles))
	}
	return TitlesResult{Result: domain.OK(msg), Titles: titles}, nil
}

// UseTitle selects an owned title. A title whose template is missing is
// refused and the user is left unchanged.
func (s *service) UseTitle(ctx context.Context, userID string, titleID int) (domain.Result, error) {
	ctx = logger.WithUserID(ctx, userID)
	// Read outside the user transaction: the SQLite transactor holds the only writer.
	tmpl, err := s.repos.Templates.GetTitleByID(ctx, titleID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("%s: %w", ErrMsgGetTemplateFailed, err)
	}

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

	owned, err := tx.GetUserTitles(ctx, userID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("%s: %w", ErrMsgGetTitlesFailed, err)
	}
	if !slices.Contains(owned, titleID) {
		return domain.Fail(domain.FailureTitleNotOwned, MsgTitleNotOwned), nil
	}
	if tmpl == nil {
		logger.FromContext(ctx).Warn(LogMsgTitleTemplateMiss, "title_id", titleID)
		return domain.Fail(domain.FailureTitleTemplateMissing, MsgTitleMissing), nil
	}

	u.CurrentTitleID = &titleID
	if err := tx.Update(ctx, *u); err != nil {
		return domain.Result{}, fmt.Errorf("%s: %w", ErrMsgUpdateUserFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Result{}, fmt.Errorf("%s: %w", ErrMsgCommitFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgTitleEquipped, "title_id", titleID)
	s.publish(ctx, event.NewTitleEquippedEvent(userID, titleID, s.clock()))
	return domain.OK(s.sprintf(MsgTitleEquipped, tmpl.Name)), nil
}
