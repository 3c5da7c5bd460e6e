package web

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/insurance/backend/internal/application/identity"
	"github.com/insurance/backend/internal/domain/shared"
	"github.com/insurance/backend/internal/infrastructure/logger"
	"github.com/insurance/backend/internal/interfaces/http/dto"
	"github.com/insurance/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

type loginView struct {
	pageData
	Username string
}

// LoginForm renders GET /login; ?error= and ?message= are shown above the form
func (h *Handler) LoginForm(c *gin.Context) {
	view := loginView{pageData: h.page(c, "Sign in")}
	view.Error = c.Query("error")
	view.Message = c.Query("message")
	c.HTML(http.StatusOK, "login.html", view)
}

// Login handles POST /login and sends a signed-in user to the dashboard
func (h *Handler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.loginFailed(c, http.StatusBadRequest, req.Username, "Username and password are required")
		return
	}

	principal, err := h.services.Auth.Login(c.Request.Context(), req)
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			h.loginFailed(c, dto.GetHTTPStatus(dto.NormalizeErrorCode(domainErr.Code)), req.Username, domainErr.Message)
			return
		}
		h.fail(c, err)
		return
	}

	if err := middleware.StartSession(c, h.codec, principal.Username, string(principal.Role), time.Now(), h.secure); err != nil {
		h.fail(c, err)
		return
	}
	logger.GetGinLogger(c).Info("User signed in", zap.String("username", principal.Username))
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handler) loginFailed(c *gin.Context, status int, username, message string) {
	view := loginView{pageData: h.page(c, "Sign in"), Username: username}
	view.Error = message
	c.HTML(status, "login.html", view)
}

// Logout clears the session cookies
func (h *Handler) Logout(c *gin.Context) {
	middleware.EndSession(c, h.secure)
	c.Redirect(http.StatusSeeOther, "/login?message="+url.QueryEscape("You have been signed out"))
}

// ResetPasswordForm renders GET /reset-password
func (h *Handler) ResetPasswordForm(c *gin.Context) {
	c.HTML(http.StatusOK, "reset_password.html", loginView{pageData: h.page(c, "Reset password")})
}

// ResetPassword handles POST /reset-password
func (h *Handler) ResetPassword(c *gin.Context) {
	var req identityapp.ResetPasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		h.resetFailed(c, http.StatusBadRequest, req.Username, "All fields are required")
		return
	}

	if err := h.services.Auth.ResetPassword(c.Request.Context(), req); err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			h.resetFailed(c, dto.GetHTTPStatus(dto.NormalizeErrorCode(domainErr.Code)), req.Username, domainErr.Message)
			return
		}
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/login?message="+url.QueryEscape("Password updated, please sign in"))
}

func (h *Handler) resetFailed(c *gin.Context, status int, username, message string) {
	view := loginView{pageData: h.page(c, "Reset password"), Username: username}
	view.Error = message
	c.HTML(status, "reset_password.html", view)
}
