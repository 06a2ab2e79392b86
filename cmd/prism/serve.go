package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpAdapter "github.com/aretw0/prism/pkg/adapters/http"
	"github.com/aretw0/prism/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/prism/pkg/adapters/redis"
	"github.com/aretw0/prism/pkg/observability"
	"github.com/aretw0/prism/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP render server",
	Long:  `Starts prism in server mode, rendering styles and gradients over a JSON API with Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		redisAddr, _ := cmd.Flags().GetString("redis")
		ttl, _ := cmd.Flags().GetDuration("cache-ttl")
		limit, _ := cmd.Flags().GetInt("cache-limit")

		cache, closeCache, err := newCache(cmd.Context(), redisAddr, ttl, limit)
		if err != nil {
			return err
		}
		defer closeCache()

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics := observability.NewMetrics(reg)

		handler := httpAdapter.NewHandler(app.presets,
			httpAdapter.WithCache(cache),
			httpAdapter.WithMetrics(metrics, reg),
			httpAdapter.WithLogger(app.logger),
		)

		srv := &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		}
		return run(srv)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for the render cache (in-memory when empty)")
	serveCmd.Flags().Duration("cache-ttl", time.Hour, "Expiry of cached renders in Redis")
	serveCmd.Flags().Int("cache-limit", 1024, "Maximum entries of the in-memory cache")
}

func newCache(ctx context.Context, redisAddr string, ttl time.Duration, limit int) (ports.RenderCache, func(), error) {
	if redisAddr == "" {
		app.logger.Info("using in-memory render cache", "limit", limit)
		return memory.NewCache(memory.WithLimit(limit)), func() {}, nil
	}

	if ctx == nil {
		ctx = context.Background()
	}
	cache := redisAdapter.New(redisAddr, redisAdapter.WithTTL(ttl))
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := cache.Ping(pingCtx); err != nil {
		cache.Close()
		return nil, nil, err
	}
	app.logger.Info("using redis render cache", "addr", redisAddr, "ttl", ttl)
	return cache, func() {
		if err := cache.Close(); err != nil {
			app.logger.Warn("closing redis client failed", "error", err)
		}
	}, nil
}

func run(srv *http.Server) error {
	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		app.logger.Info("starting prism server", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt or terminate signals.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		app.logger.Info("shutting down", "signal", sig.String())

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			app.logger.Error("graceful shutdown did not complete", "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		app.logger.Info("prism server stopped gracefully")
		return nil
	}
}
