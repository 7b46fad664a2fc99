package commands

import "context"

type contextKey int

const playerNameContextKey contextKey = iota

// WithPlayerName returns a context carrying the name of the caller.
// Transports set it after authenticating a request.
func WithPlayerName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, playerNameContextKey, name)
}

// PlayerNameFromContext returns the caller name set by WithPlayerName.
func PlayerNameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(playerNameContextKey).(string)
	return name, ok && name != ""
}
