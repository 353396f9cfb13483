package metrics

import (
	"context"

	"github.com/osse101/FishingBot_Go/internal/event"
	"github.com/osse101/FishingBot_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all player events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, t := range []event.Type{
		event.UserRegistered,
		event.UserSignedIn,
		event.CoinsModified,
		event.TitleEquipped,
	} {
		bus.Subscribe(t, e.HandleEvent)
	}
}

// HandleEvent updates the business counters for one event
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case event.UserRegisteredPayloadV1:
		UsersRegistered.Inc()
	case event.UserSignedInPayloadV1:
		SignIns.Inc()
		SignInCoinsAwarded.Add(float64(p.Reward + p.Bonus))
		if p.Bonus > 0 {
			StreakBonuses.Inc()
		}
	case event.CoinsModifiedPayloadV1:
		CoinOverwrites.Inc()
	case event.TitleEquippedPayloadV1:
		TitlesEquipped.Inc()
	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
