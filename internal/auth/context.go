package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const actorIDKey contextKey = "actorID"

// ActorHeader is set by the session layer in front of this service after it
// has authenticated the admin.
const ActorHeader = "X-Actor-ID"

// ContextWithActorID returns a new context that carries the authenticated actor identity.
func ContextWithActorID(ctx context.Context, actorID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, actorIDKey, actorID)
}

// ActorIDFromContext retrieves the authenticated actor identity from the context, if any.
func ActorIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	value := ctx.Value(actorIDKey)
	if value == nil {
		return "", false
	}
	actorID, ok := value.(string)
	if !ok || actorID == "" {
		return "", false
	}
	return actorID, true
}

// Middleware copies the forwarded actor identity into the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if actorID := strings.TrimSpace(r.Header.Get(ActorHeader)); actorID != "" {
			r = r.WithContext(ContextWithActorID(r.Context(), actorID))
		}
		next.ServeHTTP(w, r)
	})
}
