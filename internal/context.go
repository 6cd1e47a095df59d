package internal

import (
	"context"
	"time"
)

type ctxKey string

const ContextActorKey ctxKey = "actorID"

// ActorIDFromContext returns the identifier of the caller performing the
// request, if the transport layer recorded one.
func ActorIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if actorID, ok := ctx.Value(ContextActorKey).(string); ok {
		return actorID
	}
	return ""
}

func ContextWithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, ContextActorKey, actorID)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
