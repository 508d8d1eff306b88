package routes

import (
	"net/http"
	"strings"
	"time"

	"neuroglove/config"
	"neuroglove/handlers"
	"neuroglove/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the auth gateway endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)
		api.GET("/session", hb.Auth.SessionHandler)
		api.POST("/logout", hb.Auth.LogoutHandler)

		// Profile updates require a resolved identity.
		api.PUT("/profile", middleware.SessionAuth(hb.AuthService), hb.Auth.UpdateProfileHandler)
	}
}

// RegisterDeviceRoutes registers device pairing and sensor data endpoints.
func RegisterDeviceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.SessionAuth(hb.AuthService))
	{
		api.POST("/devices", hb.Device.SaveDeviceHandler)
		api.GET("/devices", hb.Device.GetDevicesHandler)
		api.POST("/sensor-data", hb.Device.SaveSensorDataHandler)
		api.GET("/sensor-data/:deviceId", hb.Device.GetSensorDataHandler)
	}
}

// RegisterChatRoutes registers the assistant endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	api.Use(middleware.SessionAuth(hb.AuthService))
	{
		api.POST("", hb.Chat.SendHandler)
		api.GET("/history", hb.Chat.HistoryHandler)
	}
}

// RegisterReportRoutes registers the problem-report endpoint.
func RegisterReportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.SessionAuth(hb.AuthService))
	{
		api.POST("/send-problem", hb.Report.SendProblemHandler)
	}
}

// RegisterHealthRoute registers the banner and health-check endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Neuroglove backend is live!"})
	})
	r.GET("/api/", handlers.RootHandler)
	r.GET("/health", handlers.HealthHandler)
}

// corsOrigins parses the configured comma-separated allow-list.
func corsOrigins() []string {
	raw := config.AppConfig.CORSOrigins
	if raw == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Credentialed CORS: the session cookie is cross-site.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterDeviceRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterReportRoutes(r, hb)
	RegisterHealthRoute(r)
}
