package telegram

import (
	"fmt"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/middleware"
	"homework-bot/internal/config"
	"homework-bot/internal/service"
)

type svc struct {
	statusChangesSvc service.StatusChanges
	bot              *tele.Bot
	cfg              config.Telegram
}

func NewService(cfg config.Telegram) (*svc, error) {
	bot, err := createBot(cfg)
	if err != nil {
		return nil, fmt.Errorf("createBot: %w", err)
	}

	s := &svc{
		bot: bot,
		cfg: cfg,
	}

	return s, nil
}

// RegisterHandlers навешивает обработчики команд. Вызывается после сборки
// сервиса опроса, потому что тот сам зависит от телеграм-сервиса.
func (s *svc) RegisterHandlers(statusChangesSvc service.StatusChanges) {
	s.statusChangesSvc = statusChangesSvc
	s.setBotSettings()
}

func createBot(cfg config.Telegram) (*tele.Bot, error) {
	pref := tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: cfg.LongPollerDelay},
		OnError: func(err error, c tele.Context) {
			log.Error().Fields(extractTelebotFields(c)).
				Msgf("bot.OnError: %v", err.Error())
		},
	}

	abot, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("tele.NewBot: %w", err)
	}

	return abot, nil
}

func (s *svc) setBotSettings() {
	// бот обслуживает единственный чат из конфигурации
	s.bot.Use(middleware.Whitelist(s.cfg.ChatID))

	s.bot.Handle("/start", s.handleStartCommand)

	s.bot.Handle("/help", s.handleHelpCommand)

	s.bot.Handle("/status", s.handleStatusCommand)

	s.bot.Handle(tele.OnText, s.handleText)
}

func (s *svc) SendMessage(message string, opts ...interface{}) error {
	chat := tele.ChatID(s.cfg.ChatID)

	_, err := s.bot.Send(chat, message, opts...)
	if err != nil {
		return fmt.Errorf("bot.Send: %w", err)
	}

	return nil
}

func (s *svc) Start() {
	s.bot.Start()
}

func (s *svc) Stop() {
	s.bot.Stop()
}

func extractTelebotFields(c tele.Context) map[string]interface{} {
	fields := make(map[string]interface{})
	if c == nil {
		return fields
	}

	if sender := c.Sender(); sender != nil {
		fields["sender"] = sender.ID
	}
	if message := c.Message(); message != nil {
		fields["message"] = message.Text
	}

	return fields
}
