package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the browser cookie carrying the signed session token.
const CookieName = "nutrio_session"

// Session is the denormalized identity snapshot taken at signup or login.
// It is not re-synchronized with the user record afterwards; a stale
// snapshot lives until the session expires.
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Claims is the payload of the signed session cookie. Only the session ID
// travels to the browser (in the JTI claim); the snapshot itself stays
// server-side in the store.
type Claims struct {
	jwt.RegisteredClaims
}

// Manager issues and resolves cookie-addressed sessions. The cookie value
// is an HS256 token signed with a fixed shared secret; the session data is
// kept in the store under the token's ID with a TTL matching the cookie
// lifetime.
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	store  Store
}

// NewManager creates a session manager.
func NewManager(secret string, ttl time.Duration, secure bool, store Store) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
		store:  store,
	}
}

// Issue stores a new session and returns the cookie to hand to the browser.
func (m *Manager) Issue(ctx context.Context, s *Session) (*http.Cookie, error) {
	id := uuid.New().String()
	if err := m.store.Save(ctx, id, s, m.ttl); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(m.ttl),
		HttpOnly: true,
		Secure:   m.secure,
	}, nil
}

// Resolve loads the session snapshot for validated cookie claims. A nil
// session with nil error means the cookie outlived the server-side state.
func (m *Manager) Resolve(ctx context.Context, claims *Claims) (*Session, error) {
	if claims == nil || claims.ID == "" {
		return nil, nil
	}
	return m.store.Get(ctx, claims.ID)
}
