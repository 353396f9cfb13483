package user

// ============================================================================
// Player-facing messages
// ============================================================================

const (
	MsgRegistered        = "Welcome %s! You received %d coins to get started."
	MsgAlreadyRegistered = "You are already registered."
	MsgNotRegistered     = "Please register before signing in."
	MsgUserNotFound      = "User not found."
	MsgAlreadyCheckedIn  = "You have already signed in today. Come back tomorrow!"
	MsgSignedIn          = "Signed in! You received %d coins."
	MsgStreakBonus       = " %d days in a row, bonus %d coins!"
	MsgNoAccessory       = "No accessory equipped."
	MsgAccessoryFound    = "Equipped accessory: %s"
	MsgAccessoryMissing  = "The equipped accessory no longer exists."
	MsgTitlesFound       = "You own %d titles."
	MsgNoTitles          = "You do not own any titles yet."
	MsgTitleNotOwned     = "You do not own this title."
	MsgTitleMissing      = "This title no longer exists."
	MsgTitleEquipped     = "Equipped %s!"
	MsgCurrency          = "You have %d coins and %d premium currency."
	MsgCoinsUpdated      = "Coins updated. Current coins: %d"
	MsgTaxRecords        = "Found %d tax records."
	MsgLeaderboard       = "Top %d anglers."
)

// ============================================================================
// Log messages
// ============================================================================

const (
	LogMsgRegisterCalled     = "Register called"
	LogMsgUserRegistered     = "User registered"
	LogMsgRegisterRace       = "Concurrent registration lost the race"
	LogMsgSignInCalled       = "DailySignIn called"
	LogMsgSignedIn           = "User signed in"
	LogMsgCheckInRace        = "Check-in already recorded for today"
	LogMsgTitleEquipped      = "Title equipped"
	LogMsgTitleTemplateMiss  = "Owned title has no template"
	LogMsgAccessoryMissing   = "Equipped accessory has no template"
	LogMsgCoinsOverwritten   = "User coins overwritten"
	LogMsgEventPublishFailed = "Failed to publish event"
)

// ============================================================================
// Error message prefixes for wrapped repository faults
// ============================================================================

const (
	ErrMsgCheckUserFailed      = "failed to check user"
	ErrMsgGetUserFailed        = "failed to get user"
	ErrMsgAddUserFailed        = "failed to add user"
	ErrMsgUpdateUserFailed     = "failed to update user"
	ErrMsgBeginTxFailed        = "failed to begin transaction"
	ErrMsgCommitFailed         = "failed to commit transaction"
	ErrMsgCheckInLookupFailed  = "failed to look up check-in"
	ErrMsgAddCheckInFailed     = "failed to record check-in"
	ErrMsgGetAccessoryFailed   = "failed to get equipped accessory"
	ErrMsgGetTemplateFailed    = "failed to get item template"
	ErrMsgGetTitlesFailed      = "failed to get user titles"
	ErrMsgGetTaxRecordsFailed  = "failed to get tax records"
	ErrMsgGetLeaderboardFailed = "failed to get leaderboard"
)

// Operation names, used as metric labels by the transport layer
const (
	OpRegister    = "register"
	OpSignIn      = "signin"
	OpAccessory   = "accessory"
	OpTitles      = "titles"
	OpUseTitle    = "use_title"
	OpCurrency    = "currency"
	OpModifyCoins = "modify_coins"
	OpTaxRecords  = "tax_records"
	OpLeaderboard = "leaderboard"
)
