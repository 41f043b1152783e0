package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nvasilev/storefront/internal/session"
	"github.com/nvasilev/storefront/pkg/auth"
)

type contextKey string

const (
	// PrincipalIDKey carries the authenticated principal's id.
	PrincipalIDKey contextKey = "principal_id"
	// PrincipalKindKey carries the authenticated principal's kind.
	PrincipalKindKey contextKey = "principal_kind"
)

// PrincipalID extracts the authenticated principal id from a request
// context.
func PrincipalID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(PrincipalIDKey).(uint)
	return id, ok
}

// Auth gates handlers behind cookie sessions.
type Auth struct {
	sessions *session.Manager
}

// NewAuth creates auth middleware backed by the session manager.
func NewAuth(sessions *session.Manager) *Auth {
	return &Auth{sessions: sessions}
}

// Customer requires a valid customer session.
func (a *Auth) Customer(next http.HandlerFunc) http.HandlerFunc {
	return a.require(auth.KindCustomer, next)
}

// Admin requires a valid admin session. A customer session is not
// accepted here even though both namespaces verify against the same
// secret.
func (a *Auth) Admin(next http.HandlerFunc) http.HandlerFunc {
	return a.require(auth.KindAdmin, next)
}

func (a *Auth) require(kind auth.PrincipalKind, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := a.sessions.Get(r, kind)
		if sess.State != session.StateValid {
			respondError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), PrincipalIDKey, sess.PrincipalID)
		ctx = context.WithValue(ctx, PrincipalKindKey, sess.Kind)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
