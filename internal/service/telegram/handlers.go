package telegram

import (
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"
	"homework-bot/internal/config/answers"
	"homework-bot/internal/domain"
)

func (s *svc) handleStartCommand(c tele.Context) error {
	return s.SendMessage(answers.Start)
}

func (s *svc) handleHelpCommand(c tele.Context) error {
	return s.SendMessage(answers.Help)
}

func (s *svc) handleStatusCommand(c tele.Context) error {
	snapshot := s.statusChangesSvc.Snapshot()

	return s.SendMessage(statusText(snapshot))
}

func (s *svc) handleText(c tele.Context) error {
	return s.SendMessage(answers.Default)
}

func statusText(snapshot domain.PollSnapshot) string {
	if snapshot.LastCheckAt.IsZero() {
		return "Опрос ещё не выполнялся."
	}

	text := fmt.Sprintf(
		"Последний опрос: %s\nКурсор from_date: %d",
		snapshot.LastCheckAt.Format(time.RFC3339),
		snapshot.State.Cursor,
	)
	if snapshot.State.LastDelivered != "" {
		text += fmt.Sprintf("\nПоследнее уведомление: %s", snapshot.State.LastDelivered)
	}
	if snapshot.LastError != "" {
		text += fmt.Sprintf("\nПоследняя ошибка: %s", snapshot.LastError)
	}

	return text
}
