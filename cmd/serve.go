package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	config "task-list.com/task-list/internal/configs"
	httpapi "task-list.com/task-list/internal/http"
	"task-list.com/task-list/internal/ratelimit"
	"task-list.com/task-list/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task list HTTP API and serves the web page at /",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, envLoaded, err := loadConfig()
		if err != nil {
			return err
		}
		logger := config.NewLogger(cfg)
		if !envLoaded {
			logger.Debug(".env file not found, using environment variables")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store, closeStore, err := openStore(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore()

		limiter, closeLimiter, err := newLimiter(cfg)
		if err != nil {
			return err
		}
		defer closeLimiter()

		taskService := services.NewTaskService(store)

		e := httpapi.NewServer(logger)
		handler := httpapi.NewHandler(taskService)
		httpapi.Register(e, handler, store, limiter, logger)

		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			logger.Info("HTTP server listening",
				"addr", cfg.AppURL,
				"driver", cfg.DatabaseDriver,
				"rate_limit", cfg.RateLimitBackend,
			)
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})

		g.Go(func() error {
			<-gctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		})

		if err := g.Wait(); err != nil {
			return err
		}

		logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func newLimiter(cfg config.Config) (ratelimit.Limiter, func(), error) {
	if cfg.RateLimitBackend != config.RateLimitRedis {
		return ratelimit.NewMemoryLimiter(cfg.RateLimit, time.Minute), func() {}, nil
	}

	redisClient, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}
	return ratelimit.NewRedisLimiter(redisClient, cfg.RedisKeyPrefix, cfg.RateLimit, time.Minute), redisClient.Close, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
