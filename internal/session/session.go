// Package session stores signed principal tokens in cookies and resolves
// the current principal from them. Two namespaces exist, one per principal
// kind, selected through the typed kind rather than by string convention.
//
// Lookup is deliberately fail-open: whatever goes wrong while resolving a
// session (missing cookie, tampered token, expired token, malformed
// header), the caller sees "no principal", never an error. Session
// mutations are the opposite: create and delete failures propagate.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/pkg/auth"
)

// Cookie names, one per principal kind.
const (
	CookieCustomer = "storefront_session"
	CookieAdmin    = "storefront_admin_session"
)

// TTL is the fixed lifetime of a session.
const TTL = 7 * 24 * time.Hour

// State classifies a session lookup outcome.
type State int

const (
	StateAbsent State = iota
	StateValid
	StateExpired
)

// Session is the result of a lookup. PrincipalID is only set when State
// is StateValid.
type Session struct {
	PrincipalID uint
	Kind        auth.PrincipalKind
	State       State
}

// absentSession is the single fail-open fallback every failed lookup path
// converges on.
func absentSession(state State) Session {
	return Session{State: state}
}

// CookieName returns the cookie namespace for a principal kind.
func CookieName(kind auth.PrincipalKind) string {
	if kind == auth.KindAdmin {
		return CookieAdmin
	}
	return CookieCustomer
}

// Manager creates, deletes and resolves cookie-backed sessions.
type Manager struct {
	codec  *auth.TokenCodec
	secure bool
}

// NewManager creates a session manager. secure controls the cookie Secure
// attribute and is only disabled for local development.
func NewManager(codec *auth.TokenCodec, secure bool) *Manager {
	return &Manager{codec: codec, secure: secure}
}

// Create signs a token for the principal and sets it on the response.
func (m *Manager) Create(w http.ResponseWriter, principalID uint, kind auth.PrincipalKind) error {
	expiry := time.Now().Add(TTL)
	token, err := m.codec.GenerateToken(principalID, kind, expiry)
	if err != nil {
		return fmt.Errorf("%w: %w", apperr.ErrSessionOp, err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName(kind),
		Value:    token,
		Path:     "/",
		Expires:  expiry,
		MaxAge:   int(TTL.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Delete removes the session cookie. Deleting an absent session is not an
// error.
func (m *Manager) Delete(w http.ResponseWriter, kind auth.PrincipalKind) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName(kind),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Get resolves the session from a request in a trusted execution context,
// using the parsed cookie jar.
func (m *Manager) Get(r *http.Request, kind auth.PrincipalKind) Session {
	cookie, err := r.Cookie(CookieName(kind))
	if err != nil {
		return absentSession(StateAbsent)
	}
	return m.resolve(cookie.Value, kind)
}

// GetFromCookieHeader resolves the session from a raw Cookie header, for
// untrusted contexts where no parsed request is available. It converges on
// the same three-state outcome as Get.
func (m *Manager) GetFromCookieHeader(header string, kind auth.PrincipalKind) Session {
	token, ok := extractCookie(header, CookieName(kind))
	if !ok {
		return absentSession(StateAbsent)
	}
	return m.resolve(token, kind)
}

// resolve verifies a token and maps it onto the session state machine.
func (m *Manager) resolve(token string, kind auth.PrincipalKind) Session {
	claims, err := m.codec.ParseToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return absentSession(StateExpired)
		}
		return absentSession(StateAbsent)
	}

	// A customer token is never accepted in the admin namespace and vice
	// versa, even though both verify against the same secret.
	if claims.Kind != kind {
		return absentSession(StateAbsent)
	}

	return Session{
		PrincipalID: claims.PrincipalID,
		Kind:        kind,
		State:       StateValid,
	}
}

// extractCookie pulls a named cookie value out of a raw Cookie header.
func extractCookie(header, name string) (string, bool) {
	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		key, value, found := strings.Cut(part, "=")
		if found && key == name && value != "" {
			return value, true
		}
	}
	return "", false
}
