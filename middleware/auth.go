package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/badapples/registry/models"
	"github.com/badapples/registry/userctx"
)

var log = slog.Default().With("system", "middleware")

// SessionUserKey is the only value kept in the session
const SessionUserKey = "user_id"

// ActorResolver loads the current actor for a session user id
type ActorResolver interface {
	ResolveActor(ctx context.Context, userID int64) (*models.Actor, error)
}

// LoadActor resolves the session user on every request and stores the actor
// in the request context. Requests without a session, or whose user is gone
// or inactive, continue as anonymous.
func LoadActor(users ActorResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := SessionUserID(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			actor, err := users.ResolveActor(r.Context(), userID)
			if err != nil {
				log.Error("failed to resolve session user", "user_id", userID, "err", err)
				writeError(w, http.StatusInternalServerError, "Something went wrong")
				return
			}

			next.ServeHTTP(w, r.WithContext(userctx.SetActor(r.Context(), actor)))
		})
	}
}

// SessionUserID returns the user id stored in the request session
func SessionUserID(r *http.Request) (int64, bool) {
	sess := session.GetSession(r)
	if sess == nil {
		return 0, false
	}

	switch v := sess.Get(SessionUserKey).(type) {
	case int64:
		return v, v > 0
	case int:
		return int64(v), v > 0
	}
	return 0, false
}

// RequireModerator rejects requests without a moderator or admin actor
func RequireModerator(next http.Handler) http.Handler {
	return requireActor(next, (*models.Actor).CanModerate)
}

// RequireAdmin rejects requests without an admin actor
func RequireAdmin(next http.Handler) http.Handler {
	return requireActor(next, (*models.Actor).IsAdmin)
}

func requireActor(next http.Handler, allowed func(*models.Actor) bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := userctx.GetActor(r.Context())
		if actor == nil || !allowed(actor) {
			writeError(w, http.StatusForbidden, "Access denied")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "message": message})
}
