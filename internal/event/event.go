package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string `json:"version"`
	Type    Type   `json:"type"`
	Payload any    `json:"payload"`
}

// Player event types
const (
	UserRegistered Type = "user.registered"
	UserSignedIn   Type = "user.signed_in"
	CoinsModified  Type = "user.coins_modified"
	TitleEquipped  Type = "user.title_equipped"
)

// UserRegisteredPayloadV1 is published after a new user is stored
type UserRegisteredPayloadV1 struct {
	UserID       string `json:"user_id"`
	InitialCoins int    `json:"initial_coins"`
	Timestamp    int64  `json:"timestamp"`
}

// UserSignedInPayloadV1 is published after a daily check-in commits
type UserSignedInPayloadV1 struct {
	UserID          string `json:"user_id"`
	Reward          int    `json:"reward"`
	Bonus           int    `json:"bonus"`
	ConsecutiveDays int    `json:"consecutive_days"`
	Timestamp       int64  `json:"timestamp"`
}

// CoinsModifiedPayloadV1 is published after an admin overwrite of a balance
type CoinsModifiedPayloadV1 struct {
	UserID    string `json:"user_id"`
	OldCoins  int    `json:"old_coins"`
	NewCoins  int    `json:"new_coins"`
	Timestamp int64  `json:"timestamp"`
}

// TitleEquippedPayloadV1 is published after a user selects a title
type TitleEquippedPayloadV1 struct {
	UserID    string `json:"user_id"`
	TitleID   int    `json:"title_id"`
	Timestamp int64  `json:"timestamp"`
}

// NewUserRegisteredEvent creates a user registered event
func NewUserRegisteredEvent(userID string, initialCoins int, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UserRegistered,
		Payload: UserRegisteredPayloadV1{
			UserID:       userID,
			InitialCoins: initialCoins,
			Timestamp:    at.Unix(),
		},
	}
}

// NewUserSignedInEvent creates a sign-in event
func NewUserSignedInEvent(userID string, reward, bonus, days int, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UserSignedIn,
		Payload: UserSignedInPayloadV1{
			UserID:          userID,
			Reward:          reward,
			Bonus:           bonus,
			ConsecutiveDays: days,
			Timestamp:       at.Unix(),
		},
	}
}

// NewCoinsModifiedEvent creates a coins modified event
func NewCoinsModifiedEvent(userID string, oldCoins, newCoins int, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CoinsModified,
		Payload: CoinsModifiedPayloadV1{
			UserID:    userID,
			OldCoins:  oldCoins,
			NewCoins:  newCoins,
			Timestamp: at.Unix(),
		},
	}
}

// NewTitleEquippedEvent creates a title equipped event
func NewTitleEquippedEvent(userID string, titleID int, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TitleEquipped,
		Payload: TitleEquippedPayloadV1{
			UserID:    userID,
			TitleID:   titleID,
			Timestamp: at.Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
