package middleware

import (
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/insurance/backend/internal/domain/identity"
	"github.com/insurance/backend/internal/infrastructure/auth"
	"github.com/insurance/backend/internal/infrastructure/logger"
	"github.com/insurance/backend/internal/interfaces/http/dto"
)

// Keys under which Session stores the principal in the gin context
const (
	SessionUserKey = "session_user"
	SessionRoleKey = "session_role"
)

// Role allow-lists shared by the API and the HTML pages
var (
	AdminOnly    = []string{string(identity.RoleAdmin)}
	BackOffice   = []string{string(identity.RoleAdmin), string(identity.RoleManager)}
	ReportViewer = []string{string(identity.RoleAdmin), string(identity.RoleManager), string(identity.RoleAgent)}
)

// Rejecter writes the response for a request refused by the session or role gate.
// status is 401 or 403.
type Rejecter func(c *gin.Context, status int, message string)

// JSONRejecter answers with the API error envelope
func JSONRejecter(c *gin.Context, status int, message string) {
	code := dto.ErrCodeUnauthorized
	if status == http.StatusForbidden {
		code = dto.ErrCodeForbidden
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponseWithRequestID(code, message, GetRequestID(c)))
}

// SessionOptions configures the session gate
type SessionOptions struct {
	// Secure marks re-issued cookies Secure
	Secure bool
	// Reject handles refused requests; JSONRejecter when nil
	Reject Rejecter
	// Now is the clock; time.Now when nil
	Now func() time.Time
}

// Session admits requests carrying a valid, unexpired session cookie and
// re-issues the cookie stamped with the current time. The verified user and
// role are stored in the gin context and in the request context.
func Session(codec *auth.CookieCodec, opts SessionOptions) gin.HandlerFunc {
	reject := opts.Reject
	if reject == nil {
		reject = JSONRejecter
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return func(c *gin.Context) {
		at := now()
		token, _ := c.Cookie(auth.SessionCookie)

		sess, err := codec.VerifySession(token, at)
		if err != nil {
			message := auth.ErrUnauthenticated.Error()
			if errors.Is(err, auth.ErrSessionExpired) {
				message = auth.ErrSessionExpired.Error()
			}
			logger.GetGinLogger(c).Debug("Session rejected")
			reject(c, http.StatusUnauthorized, message)
			c.Abort()
			return
		}

		refreshed, err := codec.SignSession(at, sess.Username)
		if err != nil {
			reject(c, http.StatusUnauthorized, auth.ErrUnauthenticated.Error())
			c.Abort()
			return
		}
		setCookie(c, auth.SessionCookie, refreshed, opts.Secure)

		roleToken, _ := c.Cookie(auth.RoleCookie)
		role := codec.Role(roleToken)

		c.Set(SessionUserKey, sess.Username)
		c.Set(SessionRoleKey, role)
		c.Request = c.Request.WithContext(logger.WithUser(c.Request.Context(), sess.Username, role))
		c.Next()
	}
}

// RequireRole admits requests whose verified role is in roles.
// It must run after Session.
func RequireRole(reject Rejecter, roles ...string) gin.HandlerFunc {
	if reject == nil {
		reject = JSONRejecter
	}
	return func(c *gin.Context) {
		if !slices.Contains(roles, c.GetString(SessionRoleKey)) {
			reject(c, http.StatusForbidden, "forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the username admitted by Session
func CurrentUser(c *gin.Context) string {
	return c.GetString(SessionUserKey)
}

// CurrentRole returns the role admitted by Session
func CurrentRole(c *gin.Context) string {
	return c.GetString(SessionRoleKey)
}

// StartSession sets freshly signed session and role cookies after a login
func StartSession(c *gin.Context, codec *auth.CookieCodec, username, role string, now time.Time, secure bool) error {
	session, err := codec.SignSession(now, username)
	if err != nil {
		return err
	}
	roleToken, err := codec.SignRole(role)
	if err != nil {
		return err
	}
	setCookie(c, auth.SessionCookie, session, secure)
	setCookie(c, auth.RoleCookie, roleToken, secure)
	return nil
}

// EndSession clears both cookies
func EndSession(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", secure, true)
	c.SetCookie(auth.RoleCookie, "", -1, "/", "", secure, true)
}

func setCookie(c *gin.Context, name, value string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, 0, "/", "", secure, true)
}
