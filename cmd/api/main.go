package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"go.uber.org/zap"

	"github.com/teamboard/backend/internal/auth"
	"github.com/teamboard/backend/internal/config"
	"github.com/teamboard/backend/internal/database"
	"github.com/teamboard/backend/internal/handlers"
	"github.com/teamboard/backend/internal/logging"
	"github.com/teamboard/backend/internal/notify"
	"github.com/teamboard/backend/internal/repository"
	"github.com/teamboard/backend/internal/schedule"
	"github.com/teamboard/backend/internal/server"
	"github.com/teamboard/backend/internal/voting"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.Must(zap.NewProduction()).Sugar().Fatalw("failed to load config", "error", err)
	}

	logger := logging.New(cfg.App)
	defer func() { _ = logger.Sync() }()
	logger.Info("config loaded")

	loc, err := cfg.App.Location()
	if err != nil {
		logger.Fatalw("failed to load reference zone", "zone", cfg.App.ReferenceZone, "error", err)
	}

	logger.Info("starting db")
	db, err := database.New(cfg.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Errorw("failed to close db", "error", err)
		}
	}()
	logger.Info("db started")

	gormDB := db.GetDB()
	tokens := auth.NewTokens(cfg.Auth)
	users := repository.NewUserStore(gormDB)

	var sms notify.Sender
	if cfg.SMS.Enabled() {
		sms = notify.NewTwilioSender(cfg.SMS)
		logger.Infow("SMS notifications enabled", "from", cfg.SMS.From)
	}

	handler := handlers.NewHandler(handlers.Deps{
		Users:    users,
		Projects: repository.NewProjectStore(gormDB),
		Joins:    notify.NewJoinNotifier(users, sms, cfg.SMS.CountryCode, logger),
		Posts:    repository.NewPostStore(gormDB),
		Votes:    voting.NewEngine(repository.NewVoteStore(gormDB), loc, logger),
		Polls:    schedule.NewService(repository.NewPollStore(gormDB), loc, logger),
		Tokens:   tokens,
		Logger:   logger,
	})

	httpServer := server.New(db, handler, tokens, logger).HTTPServer(cfg.App)

	go func() {
		logger.Infow("server starting", "addr", httpServer.Addr, "reference_zone", loc.String())
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("failed to start http server", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Errorw("failed to shutdown http server", "error", err)
		return
	}

	logger.Info("shutting down")
}
