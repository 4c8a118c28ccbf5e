package session

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

// Transport moves the session token between client and server.
type Transport interface {
	GetToken(r *http.Request) (string, error)
	SetToken(w http.ResponseWriter, token string, ttl time.Duration) error
	ClearToken(w http.ResponseWriter) error
}

// HeaderTransport reads "Authorization: Bearer <token>". API clients keep
// the token from the login response, so SetToken only echoes it.
type HeaderTransport struct {
	header string
	prefix string
}

func NewHeaderTransport() *HeaderTransport {
	return &HeaderTransport{header: "Authorization", prefix: "Bearer "}
}

func (t *HeaderTransport) GetToken(r *http.Request) (string, error) {
	value := r.Header.Get(t.header)
	if len(value) <= len(t.prefix) || !strings.EqualFold(value[:len(t.prefix)], t.prefix) {
		return "", ErrSessionNotFound
	}
	token := strings.TrimSpace(value[len(t.prefix):])
	if token == "" {
		return "", ErrSessionNotFound
	}
	return token, nil
}

func (t *HeaderTransport) SetToken(w http.ResponseWriter, token string, _ time.Duration) error {
	w.Header().Set(t.header, t.prefix+token)
	return nil
}

func (t *HeaderTransport) ClearToken(w http.ResponseWriter) error {
	w.Header().Del(t.header)
	return nil
}

// CookieTransport stores the token in an HttpOnly, SameSite=Lax cookie.
type CookieTransport struct {
	name   string
	secure bool
}

func NewCookieTransport(name string, secure bool) *CookieTransport {
	if name == "" {
		name = defaultCookieName
	}
	return &CookieTransport{name: name, secure: secure}
}

func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	c, err := r.Cookie(t.name)
	if err != nil || c.Value == "" {
		return "", ErrSessionNotFound
	}
	return c.Value, nil
}

func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (t *CookieTransport) ClearToken(w http.ResponseWriter) error {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// CompositeTransport reads from the first transport that has a token and
// writes to all of them.
type CompositeTransport struct {
	transports []Transport
}

func NewCompositeTransport(transports ...Transport) *CompositeTransport {
	return &CompositeTransport{transports: transports}
}

func (t *CompositeTransport) GetToken(r *http.Request) (string, error) {
	for _, tr := range t.transports {
		if token, err := tr.GetToken(r); err == nil && token != "" {
			return token, nil
		}
	}
	return "", ErrSessionNotFound
}

func (t *CompositeTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	var errs []error
	for _, tr := range t.transports {
		if err := tr.SetToken(w, token, ttl); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t *CompositeTransport) ClearToken(w http.ResponseWriter) error {
	var errs []error
	for _, tr := range t.transports {
		if err := tr.ClearToken(w); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
