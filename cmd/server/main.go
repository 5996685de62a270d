package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"guestpass/config"
	"guestpass/internal/adapters/email"
	"guestpass/internal/adapters/qr"
	"guestpass/internal/adapters/roster"
	httpdelivery "guestpass/internal/delivery/http"
	"guestpass/internal/delivery/http/controllers"
	"guestpass/internal/delivery/http/middleware"
	"guestpass/internal/domain"
	"guestpass/internal/repository/postgres"
	"guestpass/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("database unreachable", "err", err)
		os.Exit(1)
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		logger.Error("ensure schema", "err", err)
		os.Exit(1)
	}

	// Repositories and adapters
	guestRepo := postgres.NewGuestRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	issuer := qr.NewIssuer(cfg.QRDir, cfg.PublicURL)
	rosterSource := roster.NewCSVSource(cfg.RosterCSV)
	mailer, err := email.NewMailer(logger, cfg.Mailer)
	if err != nil {
		logger.Error("configure mailer", "err", err)
		os.Exit(1)
	}

	// Services
	rosterService := services.NewRosterService(logger, rosterSource, guestRepo, issuer)
	checkInService := services.NewCheckInService(guestRepo, sessionRepo)
	emailService := services.NewEmailService(logger, mailer, email.NewTemplateRenderer())
	adminService := services.NewAdminService(logger, rosterService, guestRepo, sessionRepo, issuer, emailService)

	// Initial roster import. A missing roster file is an operator problem,
	// not a reason to refuse to serve the already-imported guests.
	if _, err := rosterService.Import(ctx, false); err != nil {
		if errors.Is(err, domain.ErrRosterMissing) {
			logger.Warn("roster file missing, skipping startup import", "path", cfg.RosterCSV)
		} else {
			logger.Error("startup roster import failed", "err", err)
			os.Exit(1)
		}
	}

	// HTTP delivery
	home := controllers.NewHomeController(logger, sessionRepo)
	checkIn := controllers.NewCheckInController(logger, checkInService)
	admin := controllers.NewAdminController(logger, adminService)
	rosterAPI := controllers.NewRosterAPIController(logger, guestRepo, sessionRepo)

	mux := httpdelivery.NewRouter(home, checkIn, admin, rosterAPI, cfg.QRDir)
	var handler http.Handler = middleware.LoggingMiddleware(logger, mux)
	if len(cfg.CORSAllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("listening", "port", cfg.Port, "public_url", cfg.PublicURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
