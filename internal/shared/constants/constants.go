package constants

const (
	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// BearerPrefix precedes the admin session id in the Authorization header
	BearerPrefix = "Bearer "

	// Context keys
	ContextKeyAdminID   = "admin_id"
	ContextKeySessionID = "session_id"

	// Database table names
	TablePlans    = "plans"
	TablePayments = "payments"
	TableAdmins   = "admins"

	// Redis key prefixes
	RedisKeyAdminSession = "admin_session:"
	RedisKeyLoginAttempt = "login_attempt:"
)
