package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/authcore/account-service/internal/api"
	"github.com/authcore/account-service/internal/infrastructure/config"
	mongodb "github.com/authcore/account-service/internal/infrastructure/db/mongo"
	redisdb "github.com/authcore/account-service/internal/infrastructure/db/redis"
	"github.com/authcore/account-service/internal/infrastructure/mail"
	"github.com/authcore/account-service/internal/infrastructure/queue"
	"github.com/authcore/account-service/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	if err := mongodb.EnsureUserIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Outbound mail ---
	mailer, err := mail.NewClient(mail.Config{
		Host:        cfg.SMTP.Host,
		User:        cfg.SMTP.User,
		Password:    cfg.SMTP.Password,
		FromAddress: cfg.SMTP.FromAddress,
		SkipVerify:  cfg.SMTP.SkipVerify,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("smtp client setup failed")
	}

	dispatcher := queue.NewDispatcher(cfg.SMTP.Workers, mailer, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(api.Options{
		Mongo:      db,
		Redis:      rdb,
		Mail:       dispatcher,
		Emails:     mail.NewResetEmailBuilder(),
		JWTSecret:  cfg.JWTSecret,
		SessionTTL: cfg.SessionTTL,
		BaseURL:    cfg.BaseURL,
		Logger:     log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("account service listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
