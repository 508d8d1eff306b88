// File: neuroglove/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"neuroglove/config"
	"neuroglove/database"
	chatRepoPkg "neuroglove/database/repository/chat"
	deviceRepoPkg "neuroglove/database/repository/device"
	problemRepoPkg "neuroglove/database/repository/problem"
	sensorRepoPkg "neuroglove/database/repository/sensordata"
	sessionRepoPkg "neuroglove/database/repository/session"
	userRepoPkg "neuroglove/database/repository/user"
	"neuroglove/handlers"
	"neuroglove/middleware"
	"neuroglove/routes"
	"neuroglove/services/auth"
	"neuroglove/services/chat"
	"neuroglove/services/device"
	"neuroglove/services/report"
	"neuroglove/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := database.Disconnect(mongoClient); err != nil {
			logger.Sugar().Errorf("main: failed to disconnect MongoDB: %v", err)
		}
	}()
	db := mongoClient.Database(config.AppConfig.DBName)

	// The session cache is optional: without Redis every validation hits
	// the store.
	sessionCache, err := utils.NewSessionCacheClient(config.AppConfig)
	if err != nil {
		logger.Sugar().Warnf("main: session cache unavailable, falling back to store lookups: %v", err)
		sessionCache = nil
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	sessionRepo := sessionRepoPkg.NewMongoSessionRepo(db)
	deviceRepo := deviceRepoPkg.NewMongoDeviceRepo(db)
	sensorRepo := sensorRepoPkg.NewMongoSensorDataRepo(db)
	chatRepo := chatRepoPkg.NewMongoChatRepo(db)
	problemRepo := problemRepoPkg.NewMongoProblemRepo(db)

	// services.
	sessionManager := auth.NewSessionManager(sessionRepo, sessionCache, config.AppConfig.SessionTTL)
	authService := &auth.DefaultAuthService{
		Repo:     userRepo,
		Sessions: sessionManager,
		Bridge:   auth.NewHTTPBridgeClient(config.AppConfig.AuthBridgeURL),
	}

	deviceService := &device.DefaultDeviceService{
		Devices: deviceRepo,
		Sensors: sensorRepo,
	}

	gemini, err := chat.NewGeminiClient(config.AppConfig.GeminiAPIKey, chat.SystemPrompt)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	chatService := &chat.DefaultChatService{
		Generator: gemini,
		Repo:      chatRepo,
	}

	reportService := &report.DefaultReportService{
		Repo:   problemRepo,
		Mailer: report.NewSMTPMailer(config.AppConfig),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthService: authService,
		Auth:        handlers.NewAuthHandler(authService),
		Device:      handlers.NewDeviceHandler(deviceService),
		Chat:        handlers.NewChatHandler(chatService),
		Report:      handlers.NewReportHandler(reportService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{sessionCache}, mongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
