package user

import (
	"context"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/FishingBot_Go/internal/config"
	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/event"
	"github.com/osse101/FishingBot_Go/internal/logger"
	"github.com/osse101/FishingBot_Go/internal/repository"
	"github.com/osse101/FishingBot_Go/internal/utils"
)

// Service defines the interface for player operations. Business failures are
// reported in the returned result; the error is reserved for repository faults.
type Service interface {
	Register(ctx context.Context, userID, nickname string) (domain.Result, error)
	DailySignIn(ctx context.Context, userID string) (SignInResult, error)
	GetUserCurrentAccessory(ctx context.Context, userID string) (AccessoryResult, error)
	GetUserTitles(ctx context.Context, userID string) (TitlesResult, error)
	UseTitle(ctx context.Context, userID string, titleID int) (domain.Result, error)
	GetUserCurrency(ctx context.Context, userID string) (CurrencyResult, error)
	ModifyUserCoins(ctx context.Context, userID string, amount int) (domain.Result, error)
	GetTaxRecord(ctx context.Context, userID string) (TaxRecordsResult, error)
	GetLeaderboard(ctx context.Context, limit int) (LeaderboardResult, error)
}

// TemplateReader is the part of the item catalog the player service reads
type TemplateReader interface {
	GetAccessoryByID(ctx context.Context, id int) (*domain.ItemTemplate, error)
	GetTitleByID(ctx context.Context, id int) (*domain.ItemTemplate, error)
}

// Repositories groups the collaborators of the service
type Repositories struct {
	Users     repository.User
	Logs      repository.Log
	Inventory repository.Inventory
	Templates TemplateReader
	Tx        repository.Transactor
}

// Option configures the service
type Option func(*service)

// WithClock replaces time.Now
func WithClock(clock func() time.Time) Option {
	return func(s *service) { s.clock = clock }
}

// WithRoller replaces the sign-in reward roll
func WithRoller(r utils.Roller) Option {
	return func(s *service) { s.roller = r }
}

// WithLocation sets the timezone that decides where one game day ends
func WithLocation(loc *time.Location) Option {
	return func(s *service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithEventBus publishes player events after each committed change
func WithEventBus(bus event.Bus) Option {
	return func(s *service) { s.bus = bus }
}

// WithLanguage selects the locale used to format numbers in messages
func WithLanguage(tag language.Tag) Option {
	return func(s *service) { s.lang = tag }
}

type service struct {
	repos  Repositories
	game   config.GameConfig
	clock  func() time.Time
	roller utils.Roller
	loc    *time.Location
	bus    event.Bus
	lang   language.Tag
}

// NewService creates a new player service
func NewService(repos Repositories, game config.GameConfig, opts ...Option) Service {
	s := &service{
		repos:  repos,
		game:   game,
		clock:  time.Now,
		roller: utils.DefaultRoller,
		loc:    time.UTC,
		lang:   language.English,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) sprintf(format string, args ...any) string {
	return message.NewPrinter(s.lang).Sprintf(format, args...)
}

// publish is best effort: the change is already committed
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "type", evt.Type, "error", err)
	}
}
