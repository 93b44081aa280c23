package constants

// Session and context keys
const (
	ContextKeyUserID = "user_id"
	ContextKeyTask   = "task"
	SessionName      = "dashboard_session"
)

// MinPasswordLength is the minimum accepted password length at signup.
const MinPasswordLength = 8
