package practicum

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientStatuses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "OAuth test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "1676299159", r.URL.Query().Get("from_date"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"homeworks": [{"homework_name": "hw", "status": "reviewing"}], "current_date": 1676300000}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", 5*time.Second)

	statuses, err := client.Statuses(context.Background(), 1676299159)
	require.NoError(t, err)

	require.Len(t, statuses.Homeworks, 1)
	assert.Equal(t, "hw", statuses.Homeworks[0].Name)
	assert.Equal(t, "reviewing", statuses.Homeworks[0].Status)
	require.NotNil(t, statuses.CurrentDate)
	assert.EqualValues(t, 1676300000, *statuses.CurrentDate)
}

func TestClientStatusesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", 5*time.Second)

	_, err := client.Statuses(context.Background(), 0)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
}

func TestClientStatusesMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`welcome to practicum`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", 5*time.Second)

	_, err := client.Statuses(context.Background(), 0)
	assert.Error(t, err)
}
