package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced row is missing
	PgErrorCodeForeignKeyViolation = "23503"
)

// Advisory lock hashing
const (
	// HashMaskPositiveInt64 clears the sign bit so lock keys stay positive
	HashMaskPositiveInt64 = 0x7FFFFFFFFFFFFFFF
	// AdvisoryLockNamespace prefixes user ids so keys don't collide with other lock users
	AdvisoryLockNamespace = "user:"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToAcquireUserLock   = "failed to acquire user lock"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToCheckUser      = "failed to check user existence"
	ErrMsgFailedToGetUser        = "failed to get user"
	ErrMsgFailedToInsertUser     = "failed to insert user"
	ErrMsgFailedToUpdateUser     = "failed to update user"
	ErrMsgFailedToGetLeaderboard = "failed to get leaderboard"
)

// Error Messages - Ledger Operations
const (
	ErrMsgFailedToCheckCheckIn  = "failed to check check-in"
	ErrMsgFailedToAddCheckIn    = "failed to add check-in"
	ErrMsgFailedToGetTaxRecords = "failed to get tax records"
)

// Error Messages - Inventory Operations
const (
	ErrMsgFailedToGetEquippedAccessory = "failed to get equipped accessory"
	ErrMsgFailedToGetUserTitles        = "failed to get user titles"
)

// Error Messages - Template Operations
const (
	ErrMsgFailedToGetTemplate    = "failed to get item template"
	ErrMsgFailedToListTemplates  = "failed to list item templates"
	ErrMsgFailedToCreateTemplate = "failed to create item template"
	ErrMsgFailedToUpdateTemplate = "failed to update item template"
	ErrMsgFailedToDeleteTemplate = "failed to delete item template"
	ErrMsgFailedToUpsertTemplate = "failed to upsert item template"
)

// Error Messages - Gacha Operations
const (
	ErrMsgFailedToListPools      = "failed to list gacha pools"
	ErrMsgFailedToGetPool        = "failed to get gacha pool"
	ErrMsgFailedToCreatePool     = "failed to create gacha pool"
	ErrMsgFailedToUpdatePool     = "failed to update gacha pool"
	ErrMsgFailedToDeletePool     = "failed to delete gacha pool"
	ErrMsgFailedToListPoolItems  = "failed to list gacha pool items"
	ErrMsgFailedToGetPoolItem    = "failed to get gacha pool item"
	ErrMsgFailedToAddPoolItem    = "failed to add gacha pool item"
	ErrMsgFailedToUpdatePoolItem = "failed to update gacha pool item"
	ErrMsgFailedToDeletePoolItem = "failed to delete gacha pool item"
)
