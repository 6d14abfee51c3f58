package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "goal-tracker.com/goal-tracker/internal/configs"
	httpapi "goal-tracker.com/goal-tracker/internal/http"
	middleware "goal-tracker.com/goal-tracker/internal/http/middlewares"
	"goal-tracker.com/goal-tracker/internal/logger"
	"goal-tracker.com/goal-tracker/internal/notifications"
	repository "goal-tracker.com/goal-tracker/internal/repositories"
	"goal-tracker.com/goal-tracker/internal/services"
)

var envFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the goals and tasks HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		envErr := godotenv.Load(envFile)

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logCfg := logger.DefaultConfig()
		logCfg.Level = cfg.Log.Level
		logCfg.Format = cfg.Log.Format
		logCfg.Output = cfg.Log.Output
		logCfg.FilePath = cfg.Log.File
		log, err := logger.New(logCfg)
		if err != nil {
			return err
		}
		if envErr != nil {
			log.Info("env file not loaded, using environment variables", slog.String("file", envFile))
		}

		database, err := config.NewDatabaseClient(cfg.Database)
		if err != nil {
			return err
		}
		if sqlDB, err := database.DB(); err == nil {
			defer sqlDB.Close()
		}

		store := repository.NewStore(database)

		var notifier notifications.Notifier = notifications.Noop{}
		if cfg.Slack.Token != "" {
			notifier = notifications.NewSlackNotifier(cfg.Slack.APIURL, cfg.Slack.Token, cfg.Slack.Channel, cfg.Slack.Timeout)
		} else {
			log.Warn("SLACK_BOT_TOKEN not set, task completion notifications are disabled")
		}

		e := httpapi.NewServer(log)

		rateLimiter, closeLimiter, err := newRateLimiter(cfg, log)
		if err != nil {
			return err
		}
		defer closeLimiter()
		e.Use(rateLimiter)

		httpapi.Register(e,
			httpapi.NewGoalHandler(services.NewGoalService(store)),
			httpapi.NewTaskHandler(services.NewTaskService(store, notifier, log)),
		)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			log.Info("HTTP server listening", slog.String("addr", cfg.AppURL))
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("server stopped", slog.String("error", err.Error()))
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}

		log.Info("HTTP server shut down gracefully")
		return nil
	},
}

// newRateLimiter picks the Redis-backed limiter when Redis is configured.
func newRateLimiter(cfg config.Config, log *slog.Logger) (echo.MiddlewareFunc, func(), error) {
	if cfg.RedisAddr == "" {
		return middleware.RateLimiter(cfg.RateLimit, time.Minute), func() {}, nil
	}

	redisClient, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}

	log.Info("using redis rate limiter", slog.String("addr", cfg.RedisAddr))
	limiter := middleware.RedisRateLimiter(redisClient, cfg.RedisRateLimitKey, cfg.RateLimit, time.Minute, log)
	return limiter, redisClient.Close, nil
}

func init() {
	serveCmd.Flags().StringVar(&envFile, "env-file", ".env", "path to a dotenv file loaded before reading the environment")
	rootCmd.AddCommand(serveCmd)
}
