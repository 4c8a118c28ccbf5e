package binder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/feedbackboard/pkg/binder"
)

type submitRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func jsonRequest(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	bind := binder.JSON()

	tests := []struct {
		name        string
		body        string
		contentType string
		wantErr     error
		want        submitRequest
	}{
		{
			name:        "valid body",
			body:        `{"title":"Dark mode","description":"Please add dark mode","category":"feature"}`,
			contentType: "application/json; charset=utf-8",
			want:        submitRequest{Title: "Dark mode", Description: "Please add dark mode", Category: "feature"},
		},
		{name: "missing content type", body: `{}`, wantErr: binder.ErrMissingContentType},
		{name: "wrong content type", body: `{}`, contentType: "text/plain", wantErr: binder.ErrUnsupportedMediaType},
		{name: "empty body", body: ``, contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
		{name: "unknown field", body: `{"admin":true}`, contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
		{name: "trailing data", body: `{"title":"a"}{"title":"b"}`, contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
		{name: "malformed", body: `{"title":`, contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
		{
			name:        "too large",
			body:        `{"title":"` + strings.Repeat("a", binder.MaxJSONSize) + `"}`,
			contentType: "application/json",
			wantErr:     binder.ErrRequestTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got submitRequest
			err := bind(jsonRequest(tt.body, tt.contentType), &got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type listRequest struct {
	Filter string `query:"filter"`
	Limit  int    `query:"limit"`
	Mine   *bool  `query:"mine"`
	Skip   string `query:"-"`
	plain  string
}

func TestQuery(t *testing.T) {
	t.Parallel()

	bind := binder.Query()

	t.Run("binds values", func(t *testing.T) {
		var got listRequest
		req := httptest.NewRequest(http.MethodGet, "/api/feedback?filter=bug&limit=5&mine=true&Skip=x", nil)
		require.NoError(t, bind(req, &got))
		assert.Equal(t, "bug", got.Filter)
		assert.Equal(t, 5, got.Limit)
		require.NotNil(t, got.Mine)
		assert.True(t, *got.Mine)
		assert.Empty(t, got.Skip)
		assert.Empty(t, got.plain)
	})

	t.Run("absent values keep zero", func(t *testing.T) {
		var got listRequest
		require.NoError(t, bind(httptest.NewRequest(http.MethodGet, "/api/feedback", nil), &got))
		assert.Equal(t, listRequest{}, got)
	})

	t.Run("bad number", func(t *testing.T) {
		var got listRequest
		err := bind(httptest.NewRequest(http.MethodGet, "/?limit=ten", nil), &got)
		assert.ErrorIs(t, err, binder.ErrInvalidQuery)
	})

	t.Run("non-struct target", func(t *testing.T) {
		var s string
		assert.ErrorIs(t, bind(httptest.NewRequest(http.MethodGet, "/", nil), &s), binder.ErrInvalidTarget)
	})
}

type itemRequest struct {
	ID string `path:"id"`
}

func TestPath(t *testing.T) {
	t.Parallel()

	var got itemRequest
	r := chi.NewRouter()
	r.Get("/feedback/{id}", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, binder.Path(chi.URLParam)(r, &got))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/feedback/fb%2D1", nil))
	assert.Equal(t, "fb-1", got.ID)

	t.Run("nil extractor", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background())
		assert.ErrorIs(t, binder.Path(nil)(req, &itemRequest{}), binder.ErrInvalidPath)
	})
}
