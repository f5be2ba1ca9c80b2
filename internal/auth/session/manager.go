package session

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fakunet/backoffice/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const DefaultCookieName = "auth_session"

// Manager manages the administrator session cookie. Sessions live in memory
// with a fixed lifetime; a restart logs the administrator out, which is
// acceptable for a single-admin back office.
type Manager struct {
	cookieName string
	secure     bool
	lifetime   time.Duration

	mu     sync.Mutex
	tokens map[string]time.Time
}

func NewManager(cfg config.Config) *Manager {
	return &Manager{
		cookieName: DefaultCookieName,
		secure:     cfg.AuthCookieSecure,
		lifetime:   cfg.SessionLifetime,
		tokens:     make(map[string]time.Time),
	}
}

func (m *Manager) CookieName() string {
	return m.cookieName
}

// Issue creates a session token and sets the cookie.
func (m *Manager) Issue(c *gin.Context) string {
	token := uuid.NewString()
	expiresAt := time.Now().Add(m.lifetime)

	m.mu.Lock()
	m.tokens[token] = expiresAt
	m.mu.Unlock()

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, token, int(m.lifetime.Seconds()), "/", "", m.secure, true)
	return token
}

// Validate reports whether the request carries a live session cookie.
func (m *Manager) Validate(c *gin.Context) bool {
	token, err := c.Cookie(m.cookieName)
	if err != nil || strings.TrimSpace(token) == "" {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	expiresAt, ok := m.tokens[token]
	if !ok {
		return false
	}
	if time.Now().After(expiresAt) {
		delete(m.tokens, token)
		return false
	}
	return true
}

// Clear revokes the session and expires the cookie.
func (m *Manager) Clear(c *gin.Context) {
	if token, err := c.Cookie(m.cookieName); err == nil {
		m.mu.Lock()
		delete(m.tokens, token)
		m.mu.Unlock()
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
}
