package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Practicum Practicum
	Telegram  Telegram
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
}

type Practicum struct {
	Token          string        `env:"PRACTICUM_TOKEN" env-required:"true"`
	Endpoint       string        `env:"PRACTICUM_ENDPOINT" env-default:"https://practicum.yandex.ru/api/user_api/homework_statuses/"`
	PollDelay      time.Duration `env:"POLL_DELAY" env-default:"10m"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" env-default:"15s"`
	AlertMuteTTL   time.Duration `env:"ALERT_MUTE_TTL" env-default:"1h"`
}

type Telegram struct {
	BotToken        string        `env:"TELEGRAM_TOKEN" env-required:"true"`
	ChatID          int64         `env:"TELEGRAM_CHAT_ID" env-required:"true"`
	LongPollerDelay time.Duration `env:"LONG_POLLER_DELAY" env-default:"10s"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("cleanenv.ReadEnv: %w", err)
	}

	return cfg, nil
}
