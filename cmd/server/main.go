package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusconnect/backend/internal/account"
	"campusconnect/backend/internal/auth"
	"campusconnect/backend/internal/config"
	"campusconnect/backend/internal/database"
	"campusconnect/backend/internal/handler"
	"campusconnect/backend/internal/hub"
	"campusconnect/backend/internal/live"
	"campusconnect/backend/internal/messaging"
	"campusconnect/backend/internal/middleware"
	"campusconnect/backend/internal/profile"
	"campusconnect/backend/internal/relationship"
	"campusconnect/backend/internal/report"
	"campusconnect/backend/internal/storage"
	"campusconnect/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	// Swagger imports
	_ "campusconnect/backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           CampusConnect API
// @version         1.0
// @description     Accounts, profiles, friendships, messaging and reports for CampusConnect.
// @host            localhost:5000
// @BasePath        /
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logr := logger.Must(cfg.LogLevel, cfg.IsDevelopment())
	defer logr.Sync()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL, logr)
	if err != nil {
		logr.Fatal("Database unavailable", zap.Error(err))
	}

	photos, err := newPhotoStore(cfg)
	if err != nil {
		logr.Fatal("Photo storage unavailable", zap.Error(err))
	}

	// Core
	rooms := hub.NewHub()
	relationships := relationship.NewEngine(db, rooms)
	messages := messaging.NewChannel(db, rooms)

	h := &handler.Handler{
		Accounts:       account.NewService(db, relationships, photos, cfg.JWTSecret, logr),
		Profiles:       profile.NewService(db, photos, logr),
		Relationships:  relationships,
		Messages:       messages,
		Reports:        report.NewService(db),
		Hub:            rooms,
		Log:            logr,
		UploadMaxBytes: cfg.UploadMaxBytes,
		LiveBufferSize: cfg.LiveBufferSize,
	}

	// Socket.IO
	origins := middleware.AllowedOrigins(cfg.FrontendURL)
	socket := live.NewServer(
		live.NewHandlers(rooms, messages, relationships, logr, live.Options{
			JWTSecret:    cfg.JWTSecret,
			BufferSize:   cfg.LiveBufferSize,
			EventTimeout: cfg.LiveEventTimeout,
		}),
		logr,
		middleware.OriginChecker(origins),
	)
	go socket.Serve()
	defer socket.Close()

	router := gin.New()
	router.Use(gin.Recovery(), middleware.LoggingMiddleware(logr), middleware.CORSMiddleware(origins))
	router.Use(auth.OptionalAuthMiddleware(cfg.JWTSecret))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check and metrics
	router.GET("/ping", handler.Ping)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/socket.io/*any", socket.Handler())
	router.POST("/socket.io/*any", socket.Handler())

	h.RegisterRoutes(router, handler.Middlewares{
		Auth:  auth.AuthMiddleware(cfg.JWTSecret),
		Admin: auth.AdminMiddleware(db),
	})

	// No WriteTimeout: /events and Socket.IO polling hold responses open.
	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		logr.Info("Server starting", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		logr.Info("Swagger UI is available at /swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logr.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logr.Error("Server forced to shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	logr.Info("Server exited")
}

func newPhotoStore(cfg *config.Config) (storage.PhotoStore, error) {
	if cfg.StorageDriver == config.StorageMinio {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return storage.NewMinioStore(ctx, storage.MinioOptions{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
		})
	}
	return storage.NewFSStore(cfg.UploadDir)
}
