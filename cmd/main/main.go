package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"homework-bot/internal/app"
	"homework-bot/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Msgf("cant initialize config: %v", err)
	}

	initLogger(cfg.LogLevel)

	a, err := app.NewApp(cfg)
	if err != nil {
		log.Fatal().Msgf("cant initialize app: %v", err)
	}

	if err = a.Run(); err != nil {
		log.Fatal().Msgf("cant run app: %v", err)
	}
}
