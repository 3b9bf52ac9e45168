package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-contact-backend/config"
	_ "go-contact-backend/docs" // Important for Swagger
	v1 "go-contact-backend/internal/delivery/http/v1"
	"go-contact-backend/internal/usecase"
	"go-contact-backend/pkg/dispatch"
	"go-contact-backend/pkg/email"
	"go-contact-backend/pkg/logger"
)

// @title           Ville Propre Contact API
// @version         1.0
// @description     Backend du formulaire de contact: validation, rendu des emails et envoi SMTP en arrière-plan.
// @host            localhost:8080
// @BasePath        /
func main() {
	// 1. Load Config (fatal on missing required variables)
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting contact backend", "port", cfg.Port)

	// 3. Setup Email pipeline: renderer, SMTP sender, background runner
	renderer, err := email.NewRenderer(cfg.TemplatesDir)
	if err != nil {
		logger.Log.Error("Failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	sender, err := email.NewSMTPSender(cfg)
	if err != nil {
		logger.Log.Error("Failed to initialize SMTP sender", "error", err)
		os.Exit(1)
	}

	runner := dispatch.NewRunner()
	emailService := email.NewService(cfg, renderer, sender, runner)

	// 4. Setup UseCases
	contactUC := usecase.NewContactUsecase(emailService)
	healthUC := usecase.NewHealthUsecase(cfg)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	// Let in-flight background sends finish before exiting
	if err := runner.Shutdown(ctx); err != nil {
		logger.Log.Warn("Background sends still pending at shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
