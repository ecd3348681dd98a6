package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/finsim/finance-simulator/internal/api"
	"github.com/finsim/finance-simulator/internal/calculation"
	"github.com/finsim/finance-simulator/internal/refrate"
)

var (
	serveAddr    string
	redisURL     string
	seriesURL    string
	fallbackRate float64
	cacheTTL     time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulation API over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&redisURL, "redis-url", "", "Redis URL for the benchmark-rate cache (in-memory when empty)")
	serveCmd.Flags().StringVar(&seriesURL, "series-url", refrate.DefaultSeriesURL, "benchmark rate series endpoint")
	serveCmd.Flags().Float64Var(&fallbackRate, "fallback-rate", refrate.DefaultFallbackRate, "annual rate used when the series is unreachable")
	serveCmd.Flags().DurationVar(&cacheTTL, "cache-ttl", time.Hour, "how long a fetched benchmark rate stays cached")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	var cache refrate.Cache
	if redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return fmt.Errorf("invalid redis URL: %w", err)
		}
		rdb := redis.NewClient(opt)
		defer rdb.Close()
		cache = refrate.NewRedisCache(rdb)
		logger.Info("redis cache enabled")
	} else {
		cache = refrate.NewMemoryCache()
	}

	rates := refrate.NewClient(refrate.Config{
		SeriesURL:    seriesURL,
		FallbackRate: fallbackRate,
		CacheTTL:     cacheTTL,
		Cache:        cache,
	})

	server := api.NewServer(calculation.NewCalculationEngine(), rates, logger)
	srv := &http.Server{
		Addr:         serveAddr,
		Handler:      server.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("finsim listening", "addr", serveAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	return srv.Shutdown(ctx)
}
