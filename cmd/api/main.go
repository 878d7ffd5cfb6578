package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Goptar/gopgang-api/internal/bot"
	"github.com/Goptar/gopgang-api/internal/http/handlers"
	"github.com/Goptar/gopgang-api/internal/http/httpapi"
	"github.com/Goptar/gopgang-api/internal/infra"
	"github.com/Goptar/gopgang-api/internal/leaderboard"
	"github.com/Goptar/gopgang-api/internal/ledger"
	"github.com/Goptar/gopgang-api/internal/providers/roblox"
)

func main() {
	// .env is optional; deployments set real env vars.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	if cfg.IngestAPIKey == infra.DefaultIngestAPIKey {
		logger.Warn().Msg("INGAME_API_KEY not set, using the development default")
	}

	// The in-memory ledger and everything that reads or writes it.
	store := ledger.NewStore()
	board := leaderboard.NewFacade(store)
	metrics := infra.NewMetrics()
	rbx := roblox.NewClient(roblox.Options{
		APIBaseURL:    cfg.RobloxAPIBaseURL,
		PassesBaseURL: cfg.RobloxPassesBaseURL,
		Logger:        &logger,
	})

	app := handlers.NewApp(store, board, rbx, metrics, logger)
	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	var chatBot *bot.Bot
	if cfg.DiscordToken != "" {
		chatBot, err = bot.New(cfg.DiscordToken, board, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to build discord bot")
		}
		if err := chatBot.Start(); err != nil {
			logger.Fatal().Err(err).Msg("failed to connect discord bot")
		}
	} else {
		logger.Warn().Msg("DISCORD_TOKEN not set, chat commands disabled")
	}

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	if chatBot != nil {
		if err := chatBot.Stop(); err != nil {
			logger.Error().Err(err).Msg("failed to close discord session")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
