package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/depositflow/depositflow/internal/application"
	applicationStore "github.com/depositflow/depositflow/internal/application/store"
	"github.com/depositflow/depositflow/internal/auth"
	authStore "github.com/depositflow/depositflow/internal/auth/store"
	"github.com/depositflow/depositflow/internal/config"
	"github.com/depositflow/depositflow/internal/database"
	depositflowHttp "github.com/depositflow/depositflow/internal/http"
	adminHandler "github.com/depositflow/depositflow/internal/http/admin"
	applicationHandler "github.com/depositflow/depositflow/internal/http/application"
	offerHandler "github.com/depositflow/depositflow/internal/http/offer"
	profileHandler "github.com/depositflow/depositflow/internal/http/profile"
	sessionHandler "github.com/depositflow/depositflow/internal/http/session"
	"github.com/depositflow/depositflow/internal/mail"
	"github.com/depositflow/depositflow/internal/profile"
	profileStore "github.com/depositflow/depositflow/internal/profile/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.InitSchema(context.Background(), db); err != nil {
		slog.Error("failed to initialise schema", "error", err)
		os.Exit(1)
	}

	mailer := mail.NewClient(cfg.Resend.APIKey, cfg.Resend.From, cfg.App.SiteURL)

	var (
		applicationService = application.NewService(applicationStore.New(db), mailer)
		profileService     = profile.NewService(profileStore.New(db))
		authService        = auth.NewService(authStore.New(db), mailer, auth.Config{
			SessionSecret: cfg.Auth.SessionSecret,
			SessionTTL:    cfg.Auth.SessionTTL,
			LinkTTL:       cfg.Auth.MagicLinkTTL,
			BaseURL:       cfg.App.SiteURL,
		})
	)

	var (
		sessionH     = sessionHandler.NewHandler(authService)
		applicationH = applicationHandler.NewHandler(applicationService)
		offerH       = offerHandler.NewHandler(applicationService)
		profileH     = profileHandler.NewHandler(profileService)
		adminH       = adminHandler.NewHandler(applicationService, cfg.Admin.Email)
	)

	router := depositflowHttp.New(authService, sessionH, applicationH, offerH, profileH, adminH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
