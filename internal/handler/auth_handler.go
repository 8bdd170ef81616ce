package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content-dashboard/internal/dashboard"
	"content-dashboard/internal/logger"
	"content-dashboard/internal/middleware"
	"content-dashboard/internal/session"
	"content-dashboard/internal/validator"
)

// AuthHandler handles login, logout and session restoration.
type AuthHandler struct {
	sessions  *session.Store
	store     *dashboard.Store
	validator *validator.Validator
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessions *session.Store, store *dashboard.Store, v *validator.Validator) *AuthHandler {
	return &AuthHandler{
		sessions:  sessions,
		store:     store,
		validator: v,
	}
}

// Login handles POST /api/v1/auth/login. Wrong credentials are a 401, not
// an internal error; only persistence failures are 500s.
func (h *AuthHandler) Login(c *gin.Context) {
	var form validator.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid login payload"})
		return
	}

	if err := h.validator.ValidateLoginForm(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.FieldErrors(err)})
		return
	}

	user, ok, err := h.sessions.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		logger.Error("Login failed",
			"request_id", middleware.GetRequestID(c),
			"error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process login"})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	h.store.Dispatch(dashboard.SetUser{User: user})
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout handles POST /api/v1/auth/logout. Always returns to the logged-out
// state.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		logger.Error("Logout failed",
			"request_id", middleware.GetRequestID(c),
			"error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process logout"})
		return
	}

	h.store.Dispatch(dashboard.SetUser{User: nil})
	c.Status(http.StatusNoContent)
}

// Session handles GET /api/v1/auth/session - restores the persisted
// identity, if any, without re-checking credentials.
func (h *AuthHandler) Session(c *gin.Context) {
	user := h.sessions.Current()
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
