// Package auth signs and checks the session and role cookies.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/insurance/backend/internal/infrastructure/config"
)

// Cookie names
const (
	SessionCookie = "session"
	RoleCookie    = "role"
)

// DefaultSessionTimeout bounds the idle time of a session
const DefaultSessionTimeout = 1800 * time.Second

// Common errors
var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrSessionExpired  = errors.New("session expired")
)

// CookieClaims is the payload of a signed cookie.
// Subject carries the cookie value and Audience the cookie name.
type CookieClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username,omitempty"`
}

// Value returns the signed cookie value
func (c *CookieClaims) Value() string {
	return c.Subject
}

// CookieCodec signs cookie values with HMAC-SHA256
type CookieCodec struct {
	secret  []byte
	timeout time.Duration
}

// NewCookieCodec creates a codec from the session configuration
func NewCookieCodec(cfg config.SessionConfig) *CookieCodec {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultSessionTimeout
	}
	return &CookieCodec{
		secret:  []byte(cfg.Secret),
		timeout: timeout,
	}
}

// Timeout returns the configured session timeout
func (c *CookieCodec) Timeout() time.Duration {
	return c.timeout
}

// Sign produces the token stored in the cookie called name
func (c *CookieCodec) Sign(name, value, username string) (string, error) {
	claims := &CookieClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  value,
			Audience: jwt.ClaimStrings{name},
		},
		Username: username,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Parse verifies a token read from the cookie called name
func (c *CookieCodec) Parse(name, tokenString string) (*CookieClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CookieClaims{}, func(token *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(name),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*CookieClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// SignSession signs a session cookie recording activity at now
func (c *CookieCodec) SignSession(now time.Time, username string) (string, error) {
	return c.Sign(SessionCookie, strconv.FormatInt(now.Unix(), 10), username)
}

// SignRole signs a role cookie
func (c *CookieCodec) SignRole(role string) (string, error) {
	return c.Sign(RoleCookie, role, "")
}

// Role returns the verified role carried by a role cookie, or "" when the cookie is invalid
func (c *CookieCodec) Role(tokenString string) string {
	if tokenString == "" {
		return ""
	}
	claims, err := c.Parse(RoleCookie, tokenString)
	if err != nil {
		return ""
	}
	return claims.Value()
}

// CheckSession decides whether a session whose last activity is value
// (unix seconds) is still valid at now. An empty or unparsable value is
// unauthenticated and a session idle for longer than timeout has expired.
func CheckSession(value string, now time.Time, timeout time.Duration) error {
	if value == "" {
		return ErrUnauthenticated
	}
	last, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return ErrUnauthenticated
	}
	if now.Sub(time.Unix(last, 0)) > timeout {
		return ErrSessionExpired
	}
	return nil
}

// Session is the verified content of a session cookie
type Session struct {
	LastActivity string
	Username     string
}

// VerifySession verifies a session cookie and checks it against the timeout.
// A missing or tampered cookie counts as absent.
func (c *CookieCodec) VerifySession(tokenString string, now time.Time) (*Session, error) {
	var s Session
	if tokenString != "" {
		if claims, err := c.Parse(SessionCookie, tokenString); err == nil {
			s = Session{LastActivity: claims.Value(), Username: claims.Username}
		}
	}
	if err := CheckSession(s.LastActivity, now, c.timeout); err != nil {
		return nil, err
	}
	return &s, nil
}
