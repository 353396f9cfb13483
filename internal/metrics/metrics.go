package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUsersRegistered,
			Help: HelpTextUsersRegistered,
		},
	)

	SignIns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSignIns,
			Help: HelpTextSignIns,
		},
	)

	SignInCoinsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSignInCoinsAwarded,
			Help: HelpTextSignInCoinsAwarded,
		},
	)

	StreakBonuses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStreakBonuses,
			Help: HelpTextStreakBonuses,
		},
	)

	CoinOverwrites = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinOverwrites,
			Help: HelpTextCoinOverwrites,
		},
	)

	TitlesEquipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTitlesEquipped,
			Help: HelpTextTitlesEquipped,
		},
	)

	OperationResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOperationResults,
			Help: HelpTextOperationResults,
		},
		[]string{LabelOperation, LabelOutcome},
	)

	CatalogSynced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogSynced,
			Help: HelpTextCatalogSynced,
		},
		[]string{LabelKind, LabelAction},
	)
)

// Discord Metrics
var (
	DiscordCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDiscordCommands,
			Help: HelpTextDiscordCommands,
		},
		[]string{LabelCommand},
	)
)

// RecordOperation counts one user operation outcome. An empty failure counts as success.
func RecordOperation(operation, failure string) {
	outcome := failure
	if outcome == "" {
		outcome = OutcomeSuccess
	}
	OperationResults.WithLabelValues(operation, outcome).Inc()
}
