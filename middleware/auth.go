package middleware

import (
	"net/http"
	"strings"

	"neuroglove/models"
	"neuroglove/services/auth"
	"neuroglove/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BearerToken extracts the session token from the request: the session
// cookie first, then the Authorization header. An absent token is "", not
// an error; the caller decides whether the route requires one.
func BearerToken(c *gin.Context) string {
	if token, err := c.Cookie(utils.SessionCookieName); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// SessionAuth resolves the current identity and aborts with 401 when none
// resolves. The user record is stashed in the context for handlers.
func SessionAuth(authSvc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRec, err := authSvc.ResolveUser(BearerToken(c))
		if err != nil {
			utils.GetLogger().Error("Identity resolution failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if userRec == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrUnauthenticated.Error()})
			return
		}

		c.Set("user", userRec)
		c.Set("userID", userRec.ID)
		c.Next()
	}
}

// CurrentUser retrieves the resolved user stashed by SessionAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	userRec, ok := val.(*models.User)
	return userRec, ok
}
