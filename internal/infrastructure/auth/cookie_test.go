package auth

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/insurance/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec() *CookieCodec {
	return NewCookieCodec(config.SessionConfig{
		Secret:  "test-session-secret-at-least-32-chars",
		Timeout: 1800 * time.Second,
	})
}

func TestNewCookieCodec_DefaultTimeout(t *testing.T) {
	c := NewCookieCodec(config.SessionConfig{Secret: "s"})
	assert.Equal(t, DefaultSessionTimeout, c.Timeout())
}

func TestCheckSession(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	timeout := 1800 * time.Second
	stamp := func(age time.Duration) string {
		return strconv.FormatInt(now.Add(-age).Unix(), 10)
	}

	tests := []struct {
		name    string
		value   string
		wantErr error
	}{
		{"fresh", stamp(0), nil},
		{"1799 seconds old", stamp(1799 * time.Second), nil},
		{"exactly at the timeout", stamp(1800 * time.Second), nil},
		{"1801 seconds old", stamp(1801 * time.Second), ErrSessionExpired},
		{"absent", "", ErrUnauthenticated},
		{"not a number", "yesterday", ErrUnauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSession(tt.value, now, timeout)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCookieCodec_SignParse(t *testing.T) {
	c := newTestCodec()

	token, err := c.Sign(RoleCookie, "manager", "")
	require.NoError(t, err)

	claims, err := c.Parse(RoleCookie, token)
	require.NoError(t, err)
	assert.Equal(t, "manager", claims.Value())
	assert.Equal(t, "manager", c.Role(token))
}

func TestCookieCodec_RejectsOtherCookie(t *testing.T) {
	c := newTestCodec()

	token, err := c.SignSession(time.Now(), "alice")
	require.NoError(t, err)

	_, err = c.Parse(RoleCookie, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Empty(t, c.Role(token))
}

func TestCookieCodec_RejectsTamperedAndForeignTokens(t *testing.T) {
	c := newTestCodec()
	other := NewCookieCodec(config.SessionConfig{Secret: "a-completely-different-secret-value"})

	forged, err := other.SignRole("admin")
	require.NoError(t, err)
	assert.Empty(t, c.Role(forged))

	assert.Empty(t, c.Role("admin"))
	assert.Empty(t, c.Role(""))

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &CookieClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "admin", Audience: jwt.ClaimStrings{RoleCookie}},
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	assert.Empty(t, c.Role(raw))
}

func TestCookieCodec_VerifySession(t *testing.T) {
	c := newTestCodec()
	now := time.Unix(1_700_000_000, 0)

	t.Run("accepted and carries the user", func(t *testing.T) {
		token, err := c.SignSession(now.Add(-1799*time.Second), "alice")
		require.NoError(t, err)

		s, err := c.VerifySession(token, now)
		require.NoError(t, err)
		assert.Equal(t, "alice", s.Username)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := c.SignSession(now.Add(-1801*time.Second), "alice")
		require.NoError(t, err)

		_, err = c.VerifySession(token, now)
		assert.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("raw timestamp is not trusted", func(t *testing.T) {
		_, err := c.VerifySession(strconv.FormatInt(now.Unix(), 10), now)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := c.VerifySession("", now)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}
