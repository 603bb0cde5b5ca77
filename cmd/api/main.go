// Package main is the entry point for the gear-catalog-service API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"gear-catalog-service/internal/app/service"
	"gear-catalog-service/internal/config"
	"gear-catalog-service/internal/infra/cms"
	"gear-catalog-service/internal/infra/content"
	"gear-catalog-service/internal/logger"
	"gear-catalog-service/internal/transport/httpserver"
	"gear-catalog-service/internal/validator"
)

func main() {
	// Load .env if present; real env vars take precedence
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(
		logger.Config{
			Level:  cfg.Logger.Level,
			Format: cfg.Logger.Format,
			Output: cfg.Logger.Output,
		},
		logger.SentryConfig{
			Enabled:     cfg.Sentry.Enabled,
			DSN:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
			SampleRate:  cfg.Sentry.SampleRate,
		},
	)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting gear-catalog-service",
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
	)

	// Local content stores
	reviewStore := content.NewStore(cfg.Content.ReviewsDir, log.Logger)
	guideStore := content.NewStore(cfg.Content.GuidesDir, log.Logger)

	// Remote CMS client
	cmsClient := cms.New(
		cms.Config{
			BaseURL: cfg.CMS.BaseURL,
			Token:   cfg.CMS.Token,
			Timeout: cfg.CMS.Timeout,
			CB: cms.CBConfig{
				MaxRequests:  cfg.CMS.CB.MaxRequests,
				Interval:     cfg.CMS.CB.Interval,
				Timeout:      cfg.CMS.CB.Timeout,
				FailureRatio: cfg.CMS.CB.FailureRatio,
			},
		},
		log.Logger,
	)

	// Services
	catalogSvc := service.NewCatalogService(reviewStore, cmsClient, cfg.CMS.Limit, log.Logger)
	guideSvc := service.NewGuideService(guideStore, log.Logger)
	sitemapSvc := service.NewSitemapService(catalogSvc, guideSvc, cfg.Site.BaseURL, log.Logger)

	v := validator.New()

	server := httpserver.NewServer(
		httpserver.ServerConfig{
			Port:       cfg.App.Port,
			BodyLimit:  1024 * 1024, // 1MB
			Debug:      cfg.App.Debug,
			ReviewsDir: cfg.Content.ReviewsDir,
			SiteURL:    cfg.Site.BaseURL,
		},
		catalogSvc,
		guideSvc,
		sitemapSvc,
		v,
		log.Logger,
	)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.App.ShutdownWithContext(ctx); err != nil {
			log.Error("server shutdown error", zap.Error(err))
		}
	}()

	if err := server.Start(cfg.App.Port); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
