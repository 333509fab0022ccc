package main

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"prompt-designer/account"
	"prompt-designer/api"
	"prompt-designer/auth"
	"prompt-designer/config"
	"prompt-designer/enhance"
	"prompt-designer/generate"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if err := account.EnsureCatalog(cfg.CatalogFile); err != nil {
		log.Fatal().Err(err).Msg("failed to write template catalog")
	}

	store := account.NewFileStore(cfg.DataFile)
	directory := account.NewDirectory(store, log)
	tokens := auth.NewTokens(cfg.JWTSecret)

	var enhancer enhance.Enhancer
	if cfg.AI.APIKey != "" {
		enhancer = enhance.NewOpenAI(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model)
	} else {
		log.Warn().Msg("no AI API key configured, prompt improvement disabled")
	}
	gen := generate.NewService(enhancer, time.Duration(cfg.AI.TimeoutSeconds)*time.Second, log)

	router := api.RegisterRoutes(directory, tokens, gen, log)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("prompt designer listening")
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
