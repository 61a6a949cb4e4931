// Package main boots the inventory tracker as a text menu or an HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fairyhunter13/inventory-tracker/internal/cli"
	"github.com/fairyhunter13/inventory-tracker/internal/config"
	httpapi "github.com/fairyhunter13/inventory-tracker/internal/http"
	"github.com/fairyhunter13/inventory-tracker/internal/inventory"
	"github.com/fairyhunter13/inventory-tracker/internal/obs"
)

func main() {
	cfg := config.Load()
	if cfg.Mode == config.ModeCLI {
		obs.InitLoggerTo(os.Stderr, cfg.LogLevel)
	} else {
		obs.InitLogger(cfg.LogLevel)
	}
	obs.Logger.Info("service_starting", "mode", cfg.Mode)

	inv := inventory.New(
		inventory.WithLowStockThreshold(cfg.LowStockThreshold),
		inventory.WithMetrics(obs.NewMetrics(cfg.MetricsNamespace)),
	)
	if cfg.SeedProducts {
		inv.Seed()
	}

	if cfg.Mode == config.ModeCLI {
		if err := cli.New(inv, os.Stdin, os.Stdout).Run(); err != nil {
			obs.Logger.Error("menu_error", "error", err)
			os.Exit(1)
		}
		obs.Logger.Info("service_stopped")
		return
	}
	serve(cfg, inv)
}

func serve(cfg config.Config, inv *inventory.Service) {
	app := httpapi.NewApp(cfg, inv)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(app),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		obs.Logger.Info("http_listen", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			obs.Logger.Error("http_server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.Info("shutdown_signal", "signal", s.String())

	app.StartShutdown()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
	}
	st := inv.Stats()
	obs.Logger.Info("service_stopped", "products", st.Products, "transactions", st.Transactions)
}
