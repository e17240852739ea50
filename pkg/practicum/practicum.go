package practicum

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

type Client interface {
	Statuses(ctx context.Context, fromDate int64) (*StatusesResponse, error)
}

type client struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

func NewClient(endpoint, token string, timeout time.Duration) Client {
	return &client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		token:      token,
	}
}

// Statuses запрашивает статусы домашних работ, отправленных на ревью
// начиная с fromDate (unix-секунды). Ретраев внутри нет, повтором
// занимается цикл опроса.
func (c *client) Statuses(ctx context.Context, fromDate int64) (*StatusesResponse, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	request.Header.Set("Authorization", "OAuth "+c.token)
	request.Header.Set("Accept", "application/json")

	query := request.URL.Query()
	query.Set("from_date", strconv.FormatInt(fromDate, 10))
	request.URL.RawQuery = query.Encode()

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: response.StatusCode}
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll (response.Body): %w", err)
	}

	statuses, err := ParseStatuses(body)
	if err != nil {
		return nil, fmt.Errorf("ParseStatuses: %w", err)
	}

	return statuses, nil
}
