package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/creatorpro/backend/config"
	"github.com/creatorpro/backend/internal/assistant/llm"
	"github.com/creatorpro/backend/internal/auth/session"
	"github.com/creatorpro/backend/internal/bootstrap"
	"github.com/creatorpro/backend/internal/db"
	"github.com/creatorpro/backend/internal/payments/paypal"
)

const serviceName = "creatorpro-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("invalid configuration", zap.Error(err))
	}

	log := newLogger(cfg.App.Environment)
	defer log.Sync()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatal("database unavailable", zap.Error(err))
	}
	defer database.Close()

	var sessions session.Store
	switch cfg.Session.Backend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Session.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal("redis unavailable", zap.String("addr", cfg.Session.RedisAddr), zap.Error(err))
		}
		defer rdb.Close()
		sessions = session.NewRedisStore(rdb, cfg.Session.TTL)
	default:
		sessions = session.NewPostgresStore(database.Pool, cfg.Session.TTL)
	}
	log.Info("session store ready", zap.String("backend", cfg.Session.Backend))

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  serviceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		CORSOrigins:  cfg.Server.CORSOrigins,
		DB:           database.Pool,
		Sessions:     sessions,
		LLM:          llm.New(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model),
		PayPal:       paypal.New(cfg.PayPal.ClientID, cfg.PayPal.ClientSecret, cfg.PayPal.BaseURL),
		Log:          log,
		SecureCookie: cfg.App.Environment == "production",
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
		os.Exit(1)
	}
	log.Info("bye")
}

func newLogger(env string) *zap.Logger {
	if env == "production" {
		log, _ := zap.NewProduction()
		return log
	}
	log, _ := zap.NewDevelopment()
	return log
}
