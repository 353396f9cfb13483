package discord

import "time"

// Command names
const (
	CmdPing        = "ping"
	CmdRegister    = "register"
	CmdSignIn      = "signin"
	CmdCurrency    = "currency"
	CmdTitles      = "titles"
	CmdUseTitle    = "usetitle"
	CmdAccessory   = "accessory"
	CmdTaxes       = "taxes"
	CmdLeaderboard = "leaderboard"
)

// Command option names
const (
	OptTitle = "title"
	OptLimit = "limit"
)

// UserIDPrefix namespaces Discord snowflakes in the core user ID space
const UserIDPrefix = "discord:"

// Embed colors
const (
	ColorSuccess = 0x2ecc71
	ColorFailure = 0xe74c3c
	ColorInfo    = 0x3498db
	ColorGold    = 0xf1c40f
)

// Embed footers
const (
	FooterFishingBot = "FishingBot"
)

// Embed titles
const (
	TitleRegister    = "🎣 Registration"
	TitleSignIn      = "📅 Daily Sign-In"
	TitleCurrency    = "💰 Wallet"
	TitleTitles      = "🏷️ Your Titles"
	TitleUseTitle    = "🏷️ Title Selected"
	TitleAccessory   = "🎒 Equipped Accessory"
	TitleTaxes       = "🧾 Tax Records"
	TitleLeaderboard = "🏆 Leaderboard"
)

// User-facing messages
const (
	MsgPong             = "Pong!"
	MsgServiceDown      = "❌ The fishing service is unavailable right now. Try again later."
	MsgNoTitles         = "You have no titles yet."
	MsgNoAccessory      = "Nothing equipped."
	MsgNoTaxRecords     = "No tax records."
	MsgEmptyLeaderboard = "Nobody has any coins yet."
	MsgCurrentTitle     = " *(current)*"
)

// Text formats
const (
	FmtSignIn          = "%s\n\n**Reward:** %s coins\n**Streak:** %d day(s)"
	FmtSignInBonus     = "\n**Streak bonus:** %s coins"
	FmtCurrency        = "**Coins:** %s\n**Premium:** %s"
	FmtTitleLine       = "`#%d` **%s**%s"
	FmtAccessory       = "**%s**\n%s"
	FmtTaxLine         = "%s · %s · %s coins"
	FmtLeaderboardLine = "%s **%s** · %s coins"
	FmtLeaderboardRank = "`%d.`"
	FmtLeaderboardTag  = " [%s]"
	TaxDateLayout      = "2006-01-02"
)

// API routes, relative to the client base URL
const (
	PathRegister    = "/api/v1/user/register"
	PathSignIn      = "/api/v1/user/signin"
	PathCurrency    = "/api/v1/user/currency"
	PathTitles      = "/api/v1/user/titles"
	PathUseTitle    = "/api/v1/user/title/use"
	PathAccessory   = "/api/v1/user/accessory"
	PathTaxes       = "/api/v1/user/taxes"
	PathLeaderboard = "/api/v1/leaderboard"
	PathHealthz     = "/healthz"
)

// HTTP client settings
const (
	HeaderAPIKey      = "X-API-Key"
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
	ClientTimeout     = 10 * time.Second
	MaxRetries        = 3
	RetryBaseDelay    = 500 * time.Millisecond
	HealthCheckWait   = 2 * time.Second
	CommandTimeout    = 30 * time.Second
)

// Error messages
const (
	ErrMsgMarshalBody     = "failed to marshal body: %w"
	ErrMsgCreateRequest   = "failed to create request: %w"
	ErrMsgMaxRetries      = "max retries exceeded: %w"
	ErrMsgServerStatus    = "server error: %d"
	ErrMsgDecodeResponse  = "failed to decode %s response: %w"
	ErrMsgAPIError        = "API error: %s"
	ErrMsgUnexpectedState = "API returned status: %d"
	ErrMsgCreateSession   = "error creating Discord session: %w"
	ErrMsgOpenSession     = "error opening connection: %w"
	ErrMsgFetchCommands   = "failed to fetch existing commands: %w"
	ErrMsgUpdateCommands  = "failed to update commands: %w"
)

// Log messages
const (
	LogMsgRetrying         = "Retrying API request"
	LogMsgRequestFailed    = "API request failed"
	LogMsgServerError      = "Server error, will retry"
	LogMsgBotRunning       = "Discord bot is now running"
	LogMsgBotReady         = "Bot is ready"
	LogMsgCheckingCommands = "Checking Discord commands..."
	LogMsgForceUpdate      = "Force update enabled - replacing all commands"
	LogMsgCommandsSame     = "Commands unchanged, skipping registration"
	LogMsgCommandsUpdated  = "Commands updated successfully"
	LogMsgDeferFailed      = "Failed to send deferred response"
	LogMsgEditFailed       = "Failed to edit interaction response"
	LogMsgRespondFailed    = "Failed to respond to interaction"
	LogMsgCommandFailed    = "Command failed"
	LogMsgUnknownCommand   = "Unknown command"
	LogMsgHealthStarting   = "Starting bot health server"
	LogMsgHealthFailed     = "Bot health server failed"
	LogMsgHealthStopFailed = "Bot health server shutdown failed"
)

// Health statuses
const (
	HealthStatusHealthy  = "healthy"
	HealthStatusDegraded = "degraded"
)
