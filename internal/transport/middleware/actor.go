package middleware

import (
	"net/http"

	internal "github.com/frahmantamala/asset-tracker/internal"
	"github.com/frahmantamala/asset-tracker/pkg/logger"
)

// ActorContext records who is making the request, when the caller says so.
// Inventory staff pass their employee ID so history lookups can be traced
// back in the request logs.
func ActorContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actorID := r.Header.Get("X-Employee-ID")
		if actorID == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := internal.ContextWithActorID(r.Context(), actorID)
		ctx = logger.With(ctx, "actorID", actorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
