package constants

// Context keys
const (
	ContextTokenData = "token_data"
)

// Redis key prefixes
const (
	RedisKeyTokenBlacklist = "auth:blacklist:"
	RedisKeyRezzy          = "rezzy:active:"
)

// Database pool settings
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Reservation request limits
const (
	// MaxTimeWindows is the number of date/time window slots on a request.
	MaxTimeWindows = 3

	MinPartySize = 1
	MaxPartySize = 20

	// BookingSiteMarker must appear in a submitted booking-site URL.
	BookingSiteMarker = "opentable"
)

// Asynq task types for the external availability monitor
const (
	TaskWatchRegister = "watch:register"
	TaskWatchCancel   = "watch:cancel"

	QueueWatch = "watch"
)
