package auth

import "context"

type ctxKey string

const (
	userIDKey ctxKey = "user_id"
	emailKey  ctxKey = "email"
)

// WithUser returns a context carrying the authenticated user's identity.
// The auth middleware installs this on every request context.
func WithUser(ctx context.Context, userID, email string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, emailKey, email)
}

// GetUserID extracts the owner id set by the middleware. Empty string means
// the request was not authenticated.
func GetUserID(ctx context.Context) string {
	if val, ok := ctx.Value(userIDKey).(string); ok {
		return val
	}
	return ""
}

func GetEmail(ctx context.Context) string {
	if val, ok := ctx.Value(emailKey).(string); ok {
		return val
	}
	return ""
}
