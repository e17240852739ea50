package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	"homework-bot/internal/config"
	"homework-bot/internal/service"
	"homework-bot/internal/service/status_changes"
	"homework-bot/internal/service/telegram"
	"homework-bot/pkg/practicum"
)

type TelegramService interface {
	service.Telegram
	RegisterHandlers(statusChangesSvc service.StatusChanges)
}

type App interface {
	Run() error
}

type app struct {
	cfg              *config.Config
	telegramSvc      TelegramService
	statusChangesSvc service.StatusChanges
	alertsCache      *ttlcache.Cache[string, struct{}]
}

func NewApp(cfg *config.Config) (App, error) {
	var a app
	a.cfg = cfg

	log.Info().Msg("app initializing")

	log.Info().Msg("telegram bot initializing")
	telegramSvc, err := telegram.NewService(cfg.Telegram)
	if err != nil {
		return nil, fmt.Errorf("telegram.NewService: %w", err)
	}
	a.telegramSvc = telegramSvc

	log.Info().Msg("practicum client initializing")
	practicumClient := practicum.NewClient(
		cfg.Practicum.Endpoint,
		cfg.Practicum.Token,
		cfg.Practicum.RequestTimeout,
	)

	a.alertsCache = ttlcache.New[string, struct{}](
		ttlcache.WithTTL[string, struct{}](cfg.Practicum.AlertMuteTTL),
		ttlcache.WithDisableTouchOnHit[string, struct{}](),
	)

	log.Info().Msg("homework statuses watcher initializing")
	a.statusChangesSvc = status_changes.NewService(
		telegramSvc,
		practicumClient,
		a.alertsCache,
		cfg.Practicum,
	)

	telegramSvc.RegisterHandlers(a.statusChangesSvc)

	return &a, nil
}

func (a *app) Run() error {
	log.Info().Msg("app launching")

	go a.alertsCache.Start()

	log.Info().Msg("homework statuses watcher launching")
	go a.statusChangesSvc.Start()

	log.Info().Msg("telegram bot launching")
	go a.telegramSvc.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("app shutting down")

	if err := a.statusChangesSvc.Stop(); err != nil {
		log.Error().Msgf("statusChangesSvc.Stop: %v", err.Error())
	}
	a.telegramSvc.Stop()
	a.alertsCache.Stop()

	return nil
}
