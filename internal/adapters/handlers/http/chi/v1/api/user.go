package api

import "context"

type contextKey string

const userContextKey contextKey = "user"

// WithUser stores the authenticated username in the request context
func WithUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, userContextKey, username)
}

// UserFromContext returns the authenticated username, or "" when the
// request did not pass the user middleware.
func UserFromContext(ctx context.Context) string {
	username, _ := ctx.Value(userContextKey).(string)
	return username
}
