package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"xray-education-service/auth"
	"xray-education-service/config"
	"xray-education-service/database"
	"xray-education-service/email"
	"xray-education-service/handlers"
	"xray-education-service/metrics"
	"xray-education-service/middleware"
	"xray-education-service/service"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found, using system environment variables")
	}

	// Load configuration
	cfg := config.Load()

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	metrics.Register()

	// Initialize the learner progress store when configured. Everything else
	// runs without it; the progress endpoints answer 503.
	var db *database.Database
	if cfg.ProgressEnabled() {
		var err error
		db, err = database.NewDatabase(cfg)
		if err != nil {
			log.Errorf("Progress store unavailable, continuing without it: %v", err)
			db = nil
		} else {
			defer db.Close()
		}
	}

	// Initialize the analysis service
	analysisService, err := service.NewService(cfg, db)
	if err != nil {
		log.Fatalf("Failed to initialize analysis service: %v", err)
	}
	analysisService.Start()

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	var sender *email.Sender
	if cfg.EmailEnabled() {
		sender = email.NewSender(cfg)
		log.Infof("Report email delivery enabled from %s", cfg.SendGridFromEmail)
	}

	// Initialize handlers
	h := handlers.NewHandlers(cfg, analysisService, tokens, sender)

	// Setup HTTP server
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	router.GET("/health", h.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api/v1")
	api.Use(middleware.SessionOptional(tokens))
	{
		// The model-calling endpoint is rate limited per client IP
		api.POST("/analyze", middleware.RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow), h.AnalyzeImage)

		api.POST("/images/prepare", h.PrepareImage)
		api.POST("/images/stats", h.ImageStats)
		api.POST("/images/edges", h.DetectEdges)

		api.POST("/ctr", h.CalculateCTR)
		api.POST("/ctr/overlay", h.RenderCTROverlay)

		api.GET("/regions", h.GetRegions)
		api.GET("/technical-parameters", h.GetTechnicalParameters)

		api.GET("/education/cases", h.ListCases)
		api.GET("/education/cases/:id", h.GetCase)
		api.GET("/education/quiz", h.GetQuiz)
		api.POST("/education/quiz/grade", h.GradeQuiz)
		api.GET("/education/tips/:category", h.GetTip)
		api.GET("/education/knowledge-base", h.GetKnowledgeBase)
		api.GET("/education/checklist", h.GetChecklist)
		api.GET("/education/learning-points/:region", h.GetLearningPoints)
		api.POST("/education/differentials", h.GetDifferentials)
		api.GET("/education/terms/:term", h.FormatTerm)

		api.POST("/report/export", h.ExportReport)
		api.POST("/report/compose", h.ComposeReport)
		api.POST("/report/email", h.EmailReport)

		api.POST("/sessions", h.CreateSession)
	}

	// Progress routes require a session token
	progress := router.Group("/api/v1")
	progress.Use(middleware.SessionRequired(tokens))
	{
		progress.GET("/progress", h.GetProgress)
		progress.POST("/progress/modules", h.UpdateModuleProgress)
		progress.POST("/progress/quiz", h.GradeQuiz)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Infof("Starting HTTP server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Create a deadline for server shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
