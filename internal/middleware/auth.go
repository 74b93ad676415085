package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/finsight/server/internal/auth"
)

// SessionCookie is the name of the cookie carrying the signed session token.
const SessionCookie = "session"

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated caller bound to the request context
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// RequireSession resolves the session cookie to an identity and attaches it to
// the request context. Absent or invalid cookies are rejected with
// not_logged_in; the user row itself is looked up by handlers that need it.
func RequireSession(sessions *auth.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				respondNotLoggedIn(w)
				return
			}

			claims, err := sessions.Verify(cookie.Value)
			if err != nil {
				respondNotLoggedIn(w)
				return
			}

			identity := Identity{UserID: claims.UserID, Email: claims.Email}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity returns the identity attached to the request context (set by RequireSession)
func GetIdentity(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

func respondNotLoggedIn(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_logged_in"})
}
