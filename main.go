package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"nibblesprice/internal/coinmarketcap"
	"nibblesprice/internal/config"
	"nibblesprice/internal/host"
	"nibblesprice/internal/logger"
	"nibblesprice/internal/metrics"
	"nibblesprice/internal/plugin"
	"nibblesprice/internal/provider"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logCfg := cfg.Logger()
	if logCfg.TimeFormat != "" {
		zerolog.TimeFieldFormat = logCfg.TimeFormat
	}

	lg := logger.NewWithConfig(logCfg)
	if lg.GetLevel() <= zerolog.DebugLevel {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		lg.Info().Msg("received interrupt signal, shutting down")
		cancel()
	}()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	cmc, err := buildPlugin(cfg, m)
	if err != nil {
		lg.Fatal().Err(err).Msg("failed to build plugin")
	}

	rt := host.NewEnv(cfg.Settings(), lg)

	// Add timeout to prevent hanging indefinitely
	runCtx, runCancel := context.WithTimeout(ctx, 30*time.Second)
	defer runCancel()

	text, err := cmc.Compose(runCtx, rt)
	if err != nil {
		lg.Fatal().Err(err).Msg("plugin composition failed")
	}

	fmt.Println(text)

	logOutcomes(lg, reg)
}

// buildPlugin registers one price provider per configured variant
func buildPlugin(cfg *config.Config, m *metrics.Metrics) (*plugin.Plugin, error) {
	names, err := cfg.VariantNames()
	if err != nil {
		return nil, err
	}

	client := provider.NewHTTPClient(cfg.BaseURL, cfg.Timeout)

	var providers []provider.Provider
	for _, name := range names {
		variant, err := coinmarketcap.VariantByName(name)
		if err != nil {
			return nil, err
		}
		providers = append(providers, coinmarketcap.NewPriceProvider(
			variant,
			cfg.BaseURL,
			coinmarketcap.WithHTTPClient(client),
			coinmarketcap.WithMetrics(m),
		))
	}

	return plugin.New("coinmarketcap", "CoinMarketCap Plugin for Eliza", providers...), nil
}

// logOutcomes writes the provider request counters at debug level
func logOutcomes(lg zerolog.Logger, g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		lg.Warn().Err(err).Msg("failed to gather metrics")
		return
	}

	for _, mf := range families {
		if mf.GetName() != "nibbles_provider_requests_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			ev := lg.Debug()
			for _, lp := range metric.GetLabel() {
				ev = ev.Str(lp.GetName(), lp.GetValue())
			}
			ev.Float64("count", metric.GetCounter().GetValue()).Msg("provider outcome")
		}
	}
}
