package handlers

import (
	"errors"
	"net/http"

	"neuroglove/config"
	"neuroglove/middleware"
	"neuroglove/models"
	"neuroglove/services/auth"
	"neuroglove/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes the auth gateway over HTTP.
type AuthHandler struct {
	Service auth.AuthService
}

// NewAuthHandler creates an AuthHandler backed by the given service.
func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// cookieMaxAge mirrors the configured session lifetime (7 days by default).
func cookieMaxAge() int {
	if ttl := config.AppConfig.SessionTTL; ttl > 0 {
		return int(ttl.Seconds())
	}
	return int(auth.DefaultSessionTTL.Seconds())
}

// setSessionCookie sets the session token cookie: HttpOnly, Secure,
// SameSite=None, root path.
func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(utils.SessionCookieName, token, cookieMaxAge(), "/", "", true, true)
}

// clearSessionCookie expires the session token cookie.
func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", true, true)
}

// RegisterHandler handles user registration.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.UserRegister
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res, err := h.Service.Register(req)
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		logger.Error("User registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	setSessionCookie(c, res.Token)
	c.JSON(http.StatusOK, gin.H{"success": true, "user": res.User})
}

// LoginHandler handles password login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.UserLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res, err := h.Service.Login(req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	setSessionCookie(c, res.Token)
	c.JSON(http.StatusOK, gin.H{"success": true, "user": res.User})
}

// SessionHandler reports whether the caller holds a valid session. When no
// local session resolves but an external session handle is present, it
// attempts a delegated-auth exchange; exchange failures soft-fail to a
// normal negative response.
func (h *AuthHandler) SessionHandler(c *gin.Context) {
	logger := getLogger(c)

	userRec, err := h.Service.ResolveUser(middleware.BearerToken(c))
	if err != nil {
		logger.Error("Session check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if userRec != nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": true, "user": userRec})
		return
	}

	externalID := c.GetHeader(utils.ExternalSessionHeader)
	if externalID == "" {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	res, err := h.Service.BridgeExchange(c.Request.Context(), externalID)
	if err != nil {
		// Session checks are polled; a failed exchange must not hard-error.
		logger.Warn("Delegated auth exchange failed during session check", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	setSessionCookie(c, res.Token)
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "user": res.User})
}

// LogoutHandler revokes the cookie-held session and clears the cookie. The
// Authorization header is deliberately not honored here.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	logger := getLogger(c)

	if token, err := c.Cookie(utils.SessionCookieName); err == nil && token != "" {
		if err := h.Service.Logout(token); err != nil {
			logger.Error("Failed to revoke session on logout", zap.Error(err))
		}
	}

	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateProfileHandler applies a partial profile update for the
// authenticated user.
func (h *AuthHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userRec, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Service.UpdateProfile(userRec.ID, req)
	if err != nil {
		logger.Error("Failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": updated})
}
