// Package apiclient forwards submitted feedback to a remote feedback API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/feedbackboard/internal/board"
	"github.com/dmitrymomot/feedbackboard/pkg/requestid"
	"github.com/dmitrymomot/feedbackboard/pkg/sanitizer"
)

var (
	ErrRemoteRejected = errors.New("remote API rejected feedback")
	ErrRequestFailed  = errors.New("remote API request failed")
	ErrNoBaseURL      = errors.New("remote API base URL is empty")
)

type Config struct {
	BaseURL string        `env:"FORWARD_URL"`
	Timeout time.Duration `env:"FORWARD_TIMEOUT" envDefault:"10s"`
}

type Option func(*Client)

// WithHTTPClient replaces the default client. Its Timeout is left as is.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// Client implements board.Forwarder over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ board.Forwarder = (*Client)(nil)

func New(cfg Config, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, ErrNoBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := &Client{
		baseURL: base,
		http:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type feedbackPayload struct {
	FeedbackID  string    `json:"feedbackId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	UserID      string    `json:"userId"`
	Username    string    `json:"username"`
	CreatedAt   time.Time `json:"createdAt"`
}

type apiResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// maxRemoteMessageLen caps the remote error text carried into our errors.
const maxRemoteMessageLen = 200

// remoteMessage flattens a remote error message to one printable line.
func remoteMessage(s string) string {
	return sanitizer.Apply(s,
		sanitizer.RemoveControlChars,
		sanitizer.SingleLine,
		func(s string) string { return sanitizer.MaxLength(s, maxRemoteMessageLen) },
	)
}

// Forward POSTs fb to {BaseURL}/feedback. A non-2xx status or a body with
// success=false yields ErrRemoteRejected.
func (c *Client) Forward(ctx context.Context, fb board.Feedback) error {
	body, err := json.Marshal(feedbackPayload{
		FeedbackID:  fb.ID,
		Title:       fb.Title,
		Description: fb.Description,
		Category:    string(fb.Category),
		Status:      string(fb.Status),
		UserID:      fb.UserID,
		Username:    fb.Username,
		CreatedAt:   fb.CreatedAt,
	})
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/feedback", bytes.NewReader(body))
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	var out apiResponse
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&out)
	out.Error = remoteMessage(out.Error)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if out.Error != "" {
			return fmt.Errorf("%w: status %d: %s", ErrRemoteRejected, resp.StatusCode, out.Error)
		}
		return fmt.Errorf("%w: status %d", ErrRemoteRejected, resp.StatusCode)
	}
	if decodeErr != nil {
		return errors.Join(ErrRequestFailed, decodeErr)
	}
	if !out.Success {
		msg := out.Error
		if msg == "" {
			msg = "unknown error"
		}
		return fmt.Errorf("%w: %s", ErrRemoteRejected, msg)
	}
	return nil
}
