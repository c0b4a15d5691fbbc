// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"barbershop/internal/api"
	"barbershop/internal/cache"
	"barbershop/internal/database"
	"barbershop/internal/handlers"
	"barbershop/internal/i18n"
	"barbershop/internal/render"
	"barbershop/internal/router"
	"barbershop/internal/session"
	"barbershop/internal/store"
	"barbershop/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// PostgreSQL holds the local activity log.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// Valkey holds sessions and rendered public pages.
	valkeyClient, err := cache.ConnectValkey(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword, 0)
	if err != nil {
		return fmt.Errorf("connect to valkey: %w", err)
	}
	defer valkeyClient.Close()

	// In non-development environments, mark cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)
	pageCache := cache.NewPageCache(valkeyClient, cfg.PageCacheTTL)

	client := api.New(cfg.APIBaseURL, cfg.APITimeout)
	client.SetLoginPath(cfg.APILoginPath)

	catalog, err := i18n.Default()
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	// In dev mode, templates load assets from CDN; in production they use
	// compiled local files embedded in the binary.
	renderer, err := render.New(cfg.IsDev(), catalog)
	if err != nil {
		return fmt.Errorf("initialize template renderer: %w", err)
	}

	activity := store.NewActivityStore(db)

	adminHandlers := handlers.NewAdmin(renderer, client, sessionStore, pageCache, activity, cfg.AdminPageSize)
	authHandlers := handlers.NewAuth(renderer, sessionStore, client)
	publicHandlers := handlers.NewPublic(renderer, client, pageCache, catalog)

	loginLimiter := router.NewLoginLimiter()
	defer loginLimiter.Stop()

	r := router.New(router.Options{
		Sessions:     sessionStore,
		Secure:       secureCookies,
		Static:       web.Static(),
		LoginLimiter: loginLimiter,
	}, adminHandlers, authHandlers, publicHandlers)

	// WriteTimeout covers the slowest admin save: several image uploads
	// relayed to the backend.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.APITimeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
