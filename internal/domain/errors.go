package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound      = "user not found"
	ErrMsgUserAlreadyExists = "user already exists"

	// Check-in errors
	ErrMsgAlreadyCheckedIn = "already checked in today"

	// Catalog errors
	ErrMsgTemplateNotFound = "item template not found"
	ErrMsgInvalidItemKind  = "invalid item kind"
	ErrMsgPoolNotFound     = "gacha pool not found"
	ErrMsgPoolItemNotFound = "gacha pool item not found"
	ErrMsgInvalidPoolItem  = "invalid gacha pool item"

	// Database/System errors
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"
	ErrMsgTxClosed          = "tx is closed"
	ErrMsgSQLTxDone         = "sql: transaction has already been committed or rolled back"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserNotFound      = errors.New(ErrMsgUserNotFound)
	ErrUserAlreadyExists = errors.New(ErrMsgUserAlreadyExists)

	ErrAlreadyCheckedIn = errors.New(ErrMsgAlreadyCheckedIn)

	ErrTemplateNotFound = errors.New(ErrMsgTemplateNotFound)
	ErrInvalidItemKind  = errors.New(ErrMsgInvalidItemKind)
	ErrPoolNotFound     = errors.New(ErrMsgPoolNotFound)
	ErrPoolItemNotFound = errors.New(ErrMsgPoolItemNotFound)
	ErrInvalidPoolItem  = errors.New(ErrMsgInvalidPoolItem)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
