package handler

// Client-facing error messages. Internal error details are never exposed.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidParam          = "Invalid %s parameter"
	ErrMsgGenericServerError    = "Something went wrong"

	ErrMsgInvalidItemKind  = "Unknown item kind"
	ErrMsgInvalidInput     = "Invalid input"
	ErrMsgInvalidPoolItem  = "Pool item references an unknown template"
	ErrMsgTemplateNotFound = "Template not found"
	ErrMsgPoolNotFound     = "Gacha pool not found"
	ErrMsgPoolItemNotFound = "Gacha pool item not found"
)

// Success messages for admin endpoints
const (
	MsgTemplateDeleted = "Template deleted"
	MsgPoolDeleted     = "Gacha pool deleted"
	MsgPoolItemDeleted = "Gacha pool item deleted"
)

// Request parameter names
const (
	QueryParamUserID = "user_id"
	QueryParamLimit  = "limit"

	URLParamKind   = "kind"
	URLParamID     = "id"
	URLParamPoolID = "poolID"
	URLParamItemID = "itemID"
)

// Log messages
const (
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgValidationFailed = "Request validation failed"
	LogMsgOperationFailed  = "Operation failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgReadinessFailed  = "Readiness check failed"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgDatabaseDown   = "database connection failed"
)
