package session

import "time"

// Config holds session settings.
type Config struct {
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	CookieName    string        `env:"SESSION_COOKIE_NAME" envDefault:"sid"`
	SecureCookies bool          `env:"SESSION_SECURE_COOKIES" envDefault:"false"`
	// Store selects the backend: "memory" or "redis".
	Store string `env:"SESSION_STORE" envDefault:"memory"`
}

const (
	defaultTTL        = 30 * 24 * time.Hour
	defaultCookieName = "sid"
)
