package constants

const (
	// ContextKeyUser is the gin context key holding the authenticated user.
	ContextKeyUser = "user"

	// AuthScheme is the Authorization header keyword for bearer tokens.
	AuthScheme = "Token"

	// GuestEmail is the reserved address of the shared guest account.
	GuestEmail = "guest@example.com"
	// GuestName is the display name of the shared guest account.
	GuestName = "Guest User"
)
