package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Business metric names
const (
	MetricNameUsersRegistered    = "users_registered_total"
	MetricNameSignIns            = "signins_total"
	MetricNameSignInCoinsAwarded = "signin_coins_awarded_total"
	MetricNameStreakBonuses      = "signin_streak_bonuses_total"
	MetricNameCoinOverwrites     = "coin_overwrites_total"
	MetricNameTitlesEquipped     = "titles_equipped_total"
	MetricNameOperationResults   = "user_operation_results_total"
	MetricNameCatalogSynced      = "catalog_templates_synced_total"
)

// Discord front-end metric names
const (
	MetricNameDiscordCommands = "discord_commands_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Business metric help text
const (
	HelpTextUsersRegistered    = "Total number of registered users"
	HelpTextSignIns            = "Total number of successful daily sign-ins"
	HelpTextSignInCoinsAwarded = "Total coins awarded by daily sign-ins, bonuses included"
	HelpTextStreakBonuses      = "Total number of sign-ins that hit a streak milestone"
	HelpTextCoinOverwrites     = "Total number of admin coin overwrites"
	HelpTextTitlesEquipped     = "Total number of title selections"
	HelpTextOperationResults   = "User operation outcomes by failure kind"
	HelpTextCatalogSynced      = "Item templates written by the catalog loader"
)

// Discord front-end metric help text
const (
	HelpTextDiscordCommands = "Slash commands handled by the Discord bot"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
	LabelKind      = "kind"
	LabelAction    = "action"
	LabelCommand   = "command"
)

// Operation outcomes besides the business failure kinds
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Catalog sync actions
const (
	ActionInserted = "inserted"
	ActionUpdated  = "updated"
)

// PathUnmatched labels requests that did not match a route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets spans 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
