package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	enrollbridge "github.com/birthsafe/enrollbridge"
	"github.com/birthsafe/enrollbridge/internal/config"
	"github.com/birthsafe/enrollbridge/internal/handler"
	"github.com/birthsafe/enrollbridge/internal/mail"
	"github.com/birthsafe/enrollbridge/internal/middleware"
	"github.com/birthsafe/enrollbridge/internal/reporter"
	"github.com/birthsafe/enrollbridge/internal/repository"
	"github.com/birthsafe/enrollbridge/internal/responder"
	"github.com/birthsafe/enrollbridge/internal/service"
	"github.com/birthsafe/enrollbridge/internal/telegram"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(enrollbridge.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Repositories
	payments := repository.NewPaymentRepository(pool)
	settings := repository.NewSettingsRepository(pool)

	// Mail dispatcher
	var mailer mail.Dispatcher = mail.DisabledDispatcher{}
	if cfg.MailWebhookURL != "" {
		mailer = mail.NewWebhookDispatcher(cfg.MailWebhookURL)
	}

	// Notifier bot: sends only, never polls
	adminBot, err := bot.New(cfg.AdminBotToken)
	if err != nil {
		slog.Error("failed to create admin bot", "error", err)
		os.Exit(1)
	}
	notifier := telegram.NewAdminNotifier(adminBot, cfg.AdminChatID)

	// Enrollment workflow
	enrollments := service.NewEnrollmentService(payments, settings, mailer, notifier, cfg.FrontendURL)

	// Assistant bot
	if cfg.AssistantEnabled() {
		var resp *responder.Responder

		opts := []bot.Option{
			bot.WithMiddlewares(
				middleware.Recover(),
				middleware.Logging(),
			),
			bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
				if resp != nil {
					resp.HandleUpdate(ctx, update)
				}
			}),
		}

		assistantBot, err := bot.New(cfg.AssistantBotToken, opts...)
		if err != nil {
			slog.Error("failed to create assistant bot", "error", err)
			os.Exit(1)
		}

		me, err := assistantBot.GetMe(ctx)
		if err != nil {
			slog.Error("failed to get assistant bot info", "error", err)
			os.Exit(1)
		}

		if cfg.DropPendingUpdates {
			assistantBot.DeleteWebhook(ctx, &bot.DeleteWebhookParams{DropPendingUpdates: true})
		}

		completion := service.NewCompletionService(cfg.OpenRouterKey, cfg.AssistantModel)
		resp = responder.New(telegram.NewSender(assistantBot), completion, me.Username, me.ID)

		slog.Info("starting assistant bot", "username", me.Username, "id", me.ID)
		go assistantBot.Start(ctx)
	} else {
		slog.Warn("assistant bot token not set, chat assistant disabled")
	}

	// Daily verified-enrollment report
	rep := reporter.New(payments, notifier, config.ReportInterval)
	go rep.Run(ctx)

	// HTTP API
	r := chi.NewRouter()
	r.Use(middleware.HTTPLogging)
	r.Use(func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, 10<<20) // 10 MB
	})
	handler.RegisterHealthRoutes(r)
	handler.NewPaymentHandler(enrollments).RegisterRoutes(r)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		slog.Info("starting http server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown failed", "error", err)
	}

	slog.Info("stopped gracefully")
}
