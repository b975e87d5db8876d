package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/zspldev/Webapp-NotesMate/internal/config"
	"github.com/zspldev/Webapp-NotesMate/internal/database"
	"github.com/zspldev/Webapp-NotesMate/internal/handlers"
	"github.com/zspldev/Webapp-NotesMate/internal/middleware"
	"github.com/zspldev/Webapp-NotesMate/internal/services"
	"github.com/zspldev/Webapp-NotesMate/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.App.Env == "test" {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	err = utils.InitLogger(&utils.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	logger := utils.GetLogger()
	logger.Info("Starting NotesMate API", utils.LogFields{
		"environment": cfg.App.Env,
		"port":        cfg.App.Port,
	})

	dbConn, err := database.Connect(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}
	db := dbConn.DB()

	// Schema setup runs once here, before any traffic, instead of lazily
	// per request.
	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}
	logger.Info("Database migrations completed successfully")

	mailer := services.NewSMTPMailer(cfg.SMTP)
	if !mailer.Configured() {
		logger.Warn("Email service not configured, OTPs fall back to server logs")
	}

	router := setupRouter(cfg, db, mailer)

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.App.Port),
		Handler:        router,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		logger.Info("Server starting", utils.LogFields{"addr": srv.Addr})

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", err)
	}

	logger.Info("Server stopped gracefully")
}

func setupRouter(cfg *config.Config, db *gorm.DB, mailer services.Mailer) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(utils.Underlying()))

	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    cfg.CORS.ExposeHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           time.Duration(cfg.CORS.MaxAge) * time.Second,
	}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = []string{"*"}
	}
	if len(corsConfig.AllowMethods) == 0 {
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	if len(corsConfig.AllowHeaders) == 0 {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-ID"}
	}
	router.Use(cors.New(corsConfig))

	otpService := services.NewOTPService(db, mailer, cfg.OTP.TTL)
	registryService := services.NewRegistryService(db)
	notesService := services.NewNotesService(db)

	authHandler := handlers.NewAuthHandler(otpService)
	registryHandler := handlers.NewRegistryHandler(registryService)
	notesHandler := handlers.NewNotesHandler(notesService)
	healthHandler := handlers.NewHealthHandler(db)

	router.GET("/", healthHandler.Index)
	router.GET("/health", healthHandler.Health)

	api := router.Group("/api")
	{
		api.POST("/request-otp", authHandler.RequestOTP)
		api.POST("/validate-otp", authHandler.ValidateOTP)
		api.POST("/register", registryHandler.Register)
		api.POST("/register-client", registryHandler.RegisterClient)
		api.POST("/fetch-clients", registryHandler.FetchClients)
		api.POST("/save-transcription", notesHandler.SaveTranscription)
		api.POST("/fetch-notes", notesHandler.FetchNotes)
		api.POST("/update-note", notesHandler.UpdateNote)
	}

	return router
}
