package bootstrap

import (
	"log/slog"

	"github.com/osse101/FishingBot_Go/internal/event"
	"github.com/osse101/FishingBot_Go/internal/metrics"
)

// InitializeEventSystem creates the in-process event bus and subscribes
// the metrics collector to every player event
func InitializeEventSystem() event.Bus {
	bus := event.NewMemoryBus()
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgEventSystemInitialized)
	return bus
}
