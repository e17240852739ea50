package practicum

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrResponseNotObject = errors.New("API response is not a JSON object")
	ErrNoHomeworks       = errors.New("API response has no homeworks key")
	ErrHomeworksNotList  = errors.New("homeworks in API response is not a list")
)

// APIError возвращается, когда эндпоинт ответил кодом, отличным от 200.
type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("practicum API returned status %d", e.StatusCode)
}

type Homework struct {
	Name   string `json:"homework_name"`
	Status string `json:"status"`
}

type StatusesResponse struct {
	Homeworks   []Homework
	CurrentDate *int64
}

// ParseStatuses разбирает тело ответа API и проверяет его форму: снаружи
// объект, внутри обязательный список homeworks. Порядок работ сохраняется
// как в ответе, первой идёт самая свежая.
func ParseStatuses(body []byte) (*StatusesResponse, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, ErrResponseNotObject
		}
		return nil, fmt.Errorf("json.Unmarshal (body): %w", err)
	}
	if raw == nil {
		return nil, ErrResponseNotObject
	}

	rawHomeworks, ok := raw["homeworks"]
	if !ok {
		return nil, ErrNoHomeworks
	}

	var homeworks []Homework
	if err := json.Unmarshal(rawHomeworks, &homeworks); err != nil {
		return nil, ErrHomeworksNotList
	}
	if homeworks == nil {
		return nil, ErrHomeworksNotList
	}

	response := &StatusesResponse{Homeworks: homeworks}

	// current_date не обязателен: без него цикл оставит прежний курсор
	if rawDate, ok := raw["current_date"]; ok {
		var currentDate int64
		if err := json.Unmarshal(rawDate, &currentDate); err == nil {
			response.CurrentDate = &currentDate
		}
	}

	return response, nil
}
