package domain

import (
	"fmt"

	ierrors "homework-bot/internal/errors"
)

type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// фиксированная таблица вердиктов, формулировки менять нельзя
var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

type Homework struct {
	Name   string
	Status Status
}

// StatusMessage собирает текст уведомления об изменении статуса работы.
// Пустой статус означает, что вердикта ещё нет: возвращается пустая
// строка без ошибки, уведомлять не о чем.
func (h Homework) StatusMessage() (string, error) {
	if h.Name == "" {
		return "", ierrors.ErrNoHomeworkName
	}
	if h.Status == "" {
		return "", nil
	}

	verdict, ok := verdicts[h.Status]
	if !ok {
		return "", fmt.Errorf("%w: %q", ierrors.ErrUnknownStatus, h.Status)
	}

	return fmt.Sprintf("Изменился статус проверки работы %q. %s", h.Name, verdict), nil
}
