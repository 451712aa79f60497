package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Varun6712/smart-calories/config"
	"github.com/Varun6712/smart-calories/routes"
	"github.com/Varun6712/smart-calories/services"
	"github.com/Varun6712/smart-calories/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, logger)
	},
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		return err
	}
	n, err := services.NewFoodService(db).Seed()
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Info("food catalog seeded", zap.Int("count", n))
	}

	deps := routes.Deps{
		DB:       db,
		Archive:  utils.NoopArchive{},
		Hub:      services.NewRealtimeHub(logger),
		Logger:   logger,
		Registry: prometheus.NewRegistry(),
	}
	deps.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Reasoner stays a nil interface without a key so the mock estimator is chosen.
	if cfg.HasGeminiKey() {
		r, err := services.NewGeminiReasoner(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout)
		if err != nil {
			return err
		}
		deps.Reasoner = r
		logger.Info("estimation mode", zap.String("mode", services.ModeLive), zap.String("model", cfg.GeminiModel))
	} else {
		logger.Warn("GEMINI_API_KEY not set, serving mock estimates", zap.String("mode", services.ModeMock))
	}

	if cfg.S3Bucket != "" {
		a, err := utils.NewS3Archive(ctx, cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			return err
		}
		deps.Archive = a
		logger.Info("meal photo archive enabled", zap.String("bucket", cfg.S3Bucket))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
