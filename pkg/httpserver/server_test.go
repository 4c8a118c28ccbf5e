package httpserver_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/feedbackboard/pkg/httpserver"
)

func TestServer_RunAndCancel(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	stopped := make(chan struct{})
	srv := httpserver.New(httpserver.Config{ShutdownTimeout: time.Second},
		httpserver.WithListener(ln),
		httpserver.WithStopHook(func(context.Context) { close(stopped) }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("pong"))
		}))
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String())
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return string(body) == "pong"
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	<-stopped
}

func TestServer_RunTwice(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := httpserver.New(httpserver.Config{}, httpserver.WithListener(ln))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, nil) }()

	require.Eventually(t, func() bool {
		err := srv.Run(ctx, nil)
		return errors.Is(err, httpserver.ErrAlreadyRunning)
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestServer_ShutdownBeforeRun(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.Config{})
	assert.NoError(t, srv.Shutdown(context.Background()))
}

func TestProbe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		checks []httpserver.CheckFunc
		status int
		body   string
	}{
		{name: "liveness", status: http.StatusOK, body: "ALIVE"},
		{
			name:   "ready",
			checks: []httpserver.CheckFunc{func(context.Context) error { return nil }},
			status: http.StatusOK,
			body:   "READY",
		},
		{
			name: "dependency down",
			checks: []httpserver.CheckFunc{
				func(context.Context) error { return nil },
				func(context.Context) error { return errors.New("db down") },
			},
			status: http.StatusServiceUnavailable,
			body:   "NOT_READY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			httpserver.Probe(nil, tt.checks...).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}
