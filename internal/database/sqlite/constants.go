package sqlite

// SQLite extended result codes for constraint failures
const (
	codeConstraintForeignKey = 787
	codeConstraintPrimaryKey = 1555
	codeConstraintUnique     = 2067
)

// DateLayout is how calendar days are stored
const DateLayout = "2006-01-02"

// Error Messages
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"

	ErrMsgFailedToCheckUser      = "failed to check user existence"
	ErrMsgFailedToGetUser        = "failed to get user"
	ErrMsgFailedToInsertUser     = "failed to insert user"
	ErrMsgFailedToUpdateUser     = "failed to update user"
	ErrMsgFailedToGetLeaderboard = "failed to get leaderboard"

	ErrMsgFailedToCheckCheckIn  = "failed to check check-in"
	ErrMsgFailedToAddCheckIn    = "failed to add check-in"
	ErrMsgFailedToGetTaxRecords = "failed to get tax records"

	ErrMsgFailedToGetEquippedAccessory = "failed to get equipped accessory"
	ErrMsgFailedToGetUserTitles        = "failed to get user titles"

	ErrMsgFailedToGetTemplate    = "failed to get item template"
	ErrMsgFailedToListTemplates  = "failed to list item templates"
	ErrMsgFailedToCreateTemplate = "failed to create item template"
	ErrMsgFailedToUpdateTemplate = "failed to update item template"
	ErrMsgFailedToDeleteTemplate = "failed to delete item template"
	ErrMsgFailedToUpsertTemplate = "failed to upsert item template"

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
