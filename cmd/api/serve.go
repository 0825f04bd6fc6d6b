package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"MotivationGenerator/internal/handler"
	"MotivationGenerator/internal/middleware"
	"MotivationGenerator/internal/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Sync()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		logger.Error("runServe(): startup failed", zap.Error(err))
		return err
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: newRouter(a),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Application started successfully", zap.String("addr", srv.Addr), zap.String("prefix", cfg.Server.RoutePrefix))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("runServe(): server stopped with error", zap.Error(err))
		return err
	}
	return nil
}

func newRouter(a *app) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(a.logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, middleware.RequestIDHeader)
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader, "Retry-After"}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.IPGuard(a.cfg.RateLimit.IPRatePerSecond, a.cfg.RateLimit.IPBurst))

	gate := ratelimit.New(a.cfg.RateLimit.Interval)
	a.logger.Info("rate gates configured", zap.Duration("interval", gate.Interval()))

	h := handler.NewMotivationHandler(
		gate,
		a.store,
		a.validator,
		a.orchestrator,
		a.variants,
		a.logger,
	)
	handler.RegisterRoutes(router, h, a.cfg.Server.RoutePrefix)
	return router
}
