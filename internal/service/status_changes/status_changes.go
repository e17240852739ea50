package status_changes

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	"homework-bot/internal/config"
	"homework-bot/internal/config/answers"
	"homework-bot/internal/domain"
	"homework-bot/internal/service"
	"homework-bot/pkg/practicum"
)

type svc struct {
	telegramSvc     service.Telegram
	practicumClient practicum.Client
	alertsCache     *ttlcache.Cache[string, struct{}]
	cfg             config.Practicum
	stopFunc        func()

	mu          sync.RWMutex
	state       domain.PollState
	lastCheckAt time.Time
	lastErr     string
}

func NewService(
	telegramSvc service.Telegram,
	practicumClient practicum.Client,
	alertsCache *ttlcache.Cache[string, struct{}],
	cfg config.Practicum,
) *svc {
	return &svc{
		telegramSvc:     telegramSvc,
		practicumClient: practicumClient,
		alertsCache:     alertsCache,
		cfg:             cfg,
	}
}

func (s *svc) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.stopFunc = cancel

	log.Info().Msg("start homework statuses watcher")

	// работы, отправленные на ревью до запуска, не интересуют
	state := domain.PollState{Cursor: time.Now().Unix()}
	for {
		state = s.checkStatuses(ctx, state)

		select {
		case <-time.After(s.cfg.PollDelay):
		case <-ctx.Done():
			return
		}
	}
}

func (s *svc) checkStatuses(ctx context.Context, state domain.PollState) domain.PollState {
	cycleCtx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	newState, err := s.runCycle(cycleCtx, state)

	s.mu.Lock()
	s.state = newState
	s.lastCheckAt = time.Now()
	if err != nil {
		s.lastErr = err.Error()
	} else {
		s.lastErr = ""
	}
	s.mu.Unlock()

	if err != nil {
		log.Error().Msgf("checkStatuses: %v", err.Error())
		s.reportFailure(err)
	}

	return newState
}

// runCycle обрабатывает один опрос API. При любой ошибке возвращается
// исходное состояние: курсор не сдвигается, и следующий опрос повторит
// запрос с того же места.
func (s *svc) runCycle(ctx context.Context, state domain.PollState) (domain.PollState, error) {
	statuses, err := s.practicumClient.Statuses(ctx, state.Cursor)
	if err != nil {
		return state, fmt.Errorf("practicumClient.Statuses: %w", err)
	}

	nextState := state
	if statuses.CurrentDate != nil {
		nextState.Cursor = *statuses.CurrentDate
	}

	if len(statuses.Homeworks) == 0 {
		log.Debug().Msg("runCycle: no homework updates")
		return nextState, nil
	}

	homework := domain.Homework{
		Name:   statuses.Homeworks[0].Name,
		Status: domain.Status(statuses.Homeworks[0].Status),
	}

	message, err := homework.StatusMessage()
	if err != nil {
		return state, fmt.Errorf("homework.StatusMessage: %w", err)
	}
	if message == "" {
		log.Debug().Msgf("runCycle: homework %q has no verdict yet", homework.Name)
		return nextState, nil
	}

	if message == nextState.LastDelivered {
		log.Debug().Msg("runCycle: homework status has not changed")
		return nextState, nil
	}

	if err = s.telegramSvc.SendMessage(message); err != nil {
		return state, fmt.Errorf("telegramSvc.SendMessage: %w", err)
	}

	log.Info().Msgf("runCycle: notification sent: %s", message)
	nextState.LastDelivered = message

	return nextState, nil
}

// reportFailure отправляет текст ошибки в чат. Повторные одинаковые ошибки
// глушатся кэшем, чтобы не заспамить чат при длительном сбое.
func (s *svc) reportFailure(err error) {
	failureText := fmt.Sprintf(answers.FailureReport, err)

	item := s.alertsCache.Get(failureText)
	if item != nil && !item.IsExpired() {
		log.Debug().Msg("reportFailure: alert is muted")
		return
	}

	if sendErr := s.telegramSvc.SendMessage(failureText); sendErr != nil {
		log.Error().Msgf("reportFailure: telegramSvc.SendMessage: %v", sendErr.Error())
		return
	}

	s.alertsCache.Set(failureText, struct{}{}, ttlcache.DefaultTTL)
}

func (s *svc) Snapshot() domain.PollSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.PollSnapshot{
		State:       s.state,
		LastCheckAt: s.lastCheckAt,
		LastError:   s.lastErr,
	}
}

func (s *svc) Stop() error {
	if s.stopFunc == nil {
		return errors.New("service is not started")
	}

	s.stopFunc()
	return nil
}
