package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/cryptobuddy/advisor/internal/clients/coingecko"
	"github.com/cryptobuddy/advisor/internal/clients/deepseek"
	"github.com/cryptobuddy/advisor/internal/config"
	"github.com/cryptobuddy/advisor/internal/modules/catalog"
	"github.com/cryptobuddy/advisor/internal/modules/classify"
	"github.com/cryptobuddy/advisor/internal/modules/insight"
	"github.com/cryptobuddy/advisor/internal/modules/pricing"
	"github.com/cryptobuddy/advisor/internal/modules/recommend"
	"github.com/cryptobuddy/advisor/internal/server"
	"github.com/cryptobuddy/advisor/pkg/logger"
)

func main() {
	// Load configuration first so the log level is honored from the start
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(logger.Config{Level: "info", Pretty: true})
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting CryptoBuddy advisor")

	// Price oracle
	oracle := buildOracle(cfg, log)

	// Catalog
	builder, err := catalog.NewBuilder(oracle, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create catalog builder")
	}
	store := catalog.NewStore(builder, log)

	// AI insight collaborator; the credential is injected here, never
	// read inside business logic
	var chat insight.ChatClient
	if cfg.DeepSeekAPIKey != "" {
		chat = deepseek.NewClient(deepseek.Config{
			BaseURL: cfg.DeepSeekURL,
			APIKey:  cfg.DeepSeekAPIKey,
			Model:   cfg.DeepSeekModel,
		}, log)
	} else {
		log.Warn().Msg("DEEPSEEK_API_KEY not set, AI insight disabled")
	}

	// Initialize HTTP server
	srv := server.New(server.Config{
		Port:      cfg.Port,
		Log:       log,
		Catalog:   store,
		Classify:  classify.NewService(log),
		Recommend: recommend.NewService(recommend.ParseFallback(cfg.RecommendFallback), log),
		Insight:   insight.NewService(chat, log),
		DevMode:   cfg.DevMode,
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().
		Int("port", cfg.Port).
		Int("assets", store.Current().Len()).
		Str("price_source", cfg.PriceSource).
		Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

// buildOracle assembles the configured price source, wrapped in a TTL
// cache when one is configured.
func buildOracle(cfg *config.Config, log zerolog.Logger) catalog.PriceSource {
	var oracle pricing.PriceOracle

	switch cfg.PriceSource {
	case config.PriceSourceLive:
		client := coingecko.NewClient(cfg.CoinGeckoURL, cfg.CoinGeckoAPIKey, log)
		oracle = pricing.NewLiveOracle(client, log)
	default:
		oracle = pricing.NewSimulatedOracle(log)
	}

	if cfg.PriceCacheTTL > 0 {
		oracle = pricing.NewCachedOracle(oracle, cfg.PriceCacheTTL, log)
	}

	return oracle
}
