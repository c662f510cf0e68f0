package constants

// Gin context keys populated by the auth middleware.
const (
	ContextKeyAccountID = "account_id"
	ContextKeyEmail     = "account_email"
	ContextKeyName      = "account_name"
	ContextKeyRole      = "account_role"
	ContextKeyClaims    = "session_claims"
)

// Table names.
const (
	TableAccounts        = "accounts"
	TableFormSubmissions = "form_submissions"
)
