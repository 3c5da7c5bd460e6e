package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/insurance/backend/internal/application/identity"
	"github.com/insurance/backend/internal/infrastructure/auth"
	"github.com/insurance/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles API login, logout and password reset.
// It issues the same cookies as the login page.
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
	codec       *auth.CookieCodec
	secure      bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identityapp.AuthService, codec *auth.CookieCodec, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		codec:       codec,
		secure:      secureCookies,
	}
}

// LoginResponse describes the signed-in user
type LoginResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	principal, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	role := string(principal.Role)
	if err := middleware.StartSession(c, h.codec, principal.Username, role, time.Now(), h.secure); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, LoginResponse{Username: principal.Username, Role: role})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.EndSession(c, h.secure)
	h.NoContent(c)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	h.Success(c, LoginResponse{
		Username: middleware.CurrentUser(c),
		Role:     middleware.CurrentRole(c),
	})
}

// ResetPassword handles POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req identityapp.ResetPasswordRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
