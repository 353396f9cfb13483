package domain

// FailureKind classifies an expected business failure. Empty means success.
type FailureKind string

const (
	FailureNone                     FailureKind = ""
	FailureAlreadyRegistered        FailureKind = "already_registered"
	FailureNotRegistered            FailureKind = "not_registered"
	FailureUserNotFound             FailureKind = "user_not_found"
	FailureAlreadyCheckedInToday    FailureKind = "already_checked_in_today"
	FailureTitleNotOwned            FailureKind = "title_not_owned"
	FailureAccessoryTemplateMissing FailureKind = "accessory_template_missing"
	FailureTitleTemplateMissing     FailureKind = "title_template_missing"
)

// Result is the common envelope returned by player operations
type Result struct {
	Success bool        `json:"success"`
	Failure FailureKind `json:"failure,omitempty"`
	Message string      `json:"message"`
}

// OK builds a successful result
func OK(message string) Result {
	return Result{Success: true, Message: message}
}

// Fail builds a failed result
func Fail(kind FailureKind, message string) Result {
	return Result{Success: false, Failure: kind, Message: message}
}
