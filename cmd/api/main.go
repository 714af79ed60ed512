package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"paintpreview/internal/backend"
	"paintpreview/internal/catalog"
	"paintpreview/internal/http/handlers"
	"paintpreview/internal/http/httpapi"
	"paintpreview/internal/infra"
	"paintpreview/internal/orchestrator"
	"paintpreview/internal/prompt"
	"paintpreview/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	// Backend selection is a configuration concern: without a token the
	// orchestrator runs with no backend and serves placeholder previews.
	var gen backend.Generator
	if cfg.ReplicateAPIToken != "" {
		gen = backend.NewReplicateBackend(backend.ReplicateOptions{
			BaseURL:         cfg.ReplicateBaseURL,
			APIToken:        cfg.ReplicateAPIToken,
			Version:         cfg.ReplicateVersion,
			HTTPClient:      &http.Client{Timeout: 30 * time.Second},
			InferenceSteps:  cfg.InferenceSteps,
			GuidanceScale:   cfg.GuidanceScale,
			PromptStrength:  cfg.PromptStrength,
			Scheduler:       cfg.Scheduler,
			PollInterval:    cfg.PollInterval,
			MaxPollAttempts: cfg.MaxPollAttempts,
		})
		logger.Info().Str("base_url", cfg.ReplicateBaseURL).Msg("replicate backend configured")
	} else {
		logger.Warn().Msg("no generation backend configured, serving placeholder previews")
	}

	orc := orchestrator.New(orchestrator.Options{
		Catalog:           catalog.Default(),
		Prompts:           prompt.NewStaticBuilder(),
		Backend:           gen,
		Store:             store.New(),
		Logger:            logger,
		MaxConcurrentJobs: cfg.MaxConcurrentJobs,
	})

	app := handlers.NewApp(orc, logger)
	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
