package apiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/feedbackboard/internal/board"
	"github.com/dmitrymomot/feedbackboard/internal/board/apiclient"
	"github.com/dmitrymomot/feedbackboard/pkg/requestid"
)

var sample = board.Feedback{
	ID:          "fb-001",
	Title:       "Add dark mode support",
	Description: "It would be great to have a dark mode option",
	Category:    board.CategoryFeature,
	Status:      board.StatusUnderReview,
	UserID:      "user-123",
	Username:    "johndoe",
	CreatedAt:   time.Date(2024, 12, 1, 10, 30, 0, 0, time.UTC),
}

func TestNew_RequiresBaseURL(t *testing.T) {
	t.Parallel()

	_, err := apiclient.New(apiclient.Config{BaseURL: "  "})
	assert.ErrorIs(t, err, apiclient.ErrNoBaseURL)
}

func TestForward(t *testing.T) {
	t.Parallel()

	var got map[string]any
	var gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/feedback", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotRequestID = r.Header.Get(requestid.Header)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	t.Cleanup(srv.Close)

	client, err := apiclient.New(apiclient.Config{BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	ctx := requestid.WithContext(context.Background(), "req-1")
	require.NoError(t, client.Forward(ctx, sample))

	assert.Equal(t, "fb-001", got["feedbackId"])
	assert.Equal(t, "feature", got["category"])
	assert.Equal(t, "johndoe", got["username"])
	assert.Equal(t, "req-1", gotRequestID)
}

func TestForward_RemoteMessageFlattened(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "quota\n\u0007exceeded\t  for " + strings.Repeat("x", 300),
		})
	}))
	t.Cleanup(srv.Close)

	client, err := apiclient.New(apiclient.Config{BaseURL: srv.URL})
	require.NoError(t, err)

	err = client.Forward(context.Background(), sample)
	require.ErrorIs(t, err, apiclient.ErrRemoteRejected)
	assert.Contains(t, err.Error(), "quota exceeded for xxx")
	assert.NotContains(t, err.Error(), "\n")
	assert.NotContains(t, err.Error(), "\a")
	assert.NotContains(t, err.Error(), strings.Repeat("x", 200))
}

func TestForward_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "success false", status: http.StatusOK, body: `{"success":false,"error":"quota exceeded"}`, want: apiclient.ErrRemoteRejected},
		{name: "server error", status: http.StatusBadGateway, body: `oops`, want: apiclient.ErrRemoteRejected},
		{name: "client error with message", status: http.StatusBadRequest, body: `{"success":false,"error":"bad"}`, want: apiclient.ErrRemoteRejected},
		{name: "garbage body", status: http.StatusOK, body: `not json`, want: apiclient.ErrRequestFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			client, err := apiclient.New(apiclient.Config{BaseURL: srv.URL})
			require.NoError(t, err)
			assert.ErrorIs(t, client.Forward(context.Background(), sample), tt.want)
		})
	}
}

func TestForward_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := apiclient.New(apiclient.Config{BaseURL: url, Timeout: time.Second})
	require.NoError(t, err)
	assert.ErrorIs(t, client.Forward(context.Background(), sample), apiclient.ErrRequestFailed)
}
