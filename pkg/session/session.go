package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"
)

// Subject identifies who a session belongs to.
type Subject struct {
	UserID   string
	Username string
	Email    string
}

// Session is a signed-in user's session.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session is past its expiry at now.
func (s *Session) IsExpired(now time.Time) bool {
	return s == nil || !now.Before(s.ExpiresAt)
}

func (s *Session) Subject() Subject {
	if s == nil {
		return Subject{}
	}
	return Subject{UserID: s.UserID, Username: s.Username, Email: s.Email}
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
