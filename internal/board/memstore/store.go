// Package memstore is an in-process board.Storage. It backs development
// runs and tests, optionally preloaded with sample data.
package memstore

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/feedbackboard/internal/board"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the YAML document accepted by WithSeed.
type Seed struct {
	Users    []board.User     `yaml:"users"`
	Feedback []board.Feedback `yaml:"feedback"`
	Comments []board.Comment  `yaml:"comments"`
}

// Store keeps board data in maps guarded by a single RWMutex.
type Store struct {
	mu       sync.RWMutex
	users    map[string]board.User
	feedback map[string]board.Feedback
	comments map[string][]board.Comment
	voters   map[string]map[string]struct{}
}

func New() *Store {
	return &Store{
		users:    make(map[string]board.User),
		feedback: make(map[string]board.Feedback),
		comments: make(map[string][]board.Comment),
		voters:   make(map[string]map[string]struct{}),
	}
}

// NewSeeded returns a Store preloaded with the bundled sample data.
func NewSeeded() (*Store, error) {
	s := New()
	if err := s.Load(defaultSeed); err != nil {
		return nil, err
	}
	return s, nil
}

// Load adds the users, feedback and comments described by a YAML seed.
// Seeded vote counts are taken as-is; no voter records are created for them.
func (s *Store) Load(data []byte) error {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("memstore: parse seed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range seed.Users {
		s.users[u.ID] = u
	}
	for _, fb := range seed.Feedback {
		s.feedback[fb.ID] = fb
	}
	for _, c := range seed.Comments {
		if _, ok := s.feedback[c.FeedbackID]; !ok {
			return fmt.Errorf("memstore: seed comment %s: feedback %s: %w", c.ID, c.FeedbackID, board.ErrNotFound)
		}
		s.comments[c.FeedbackID] = append(s.comments[c.FeedbackID], c)
	}
	return nil
}

func (s *Store) CreateUser(_ context.Context, u board.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		switch {
		case strings.EqualFold(existing.Email, u.Email):
			return board.ErrDuplicateEmail
		case strings.EqualFold(existing.Username, u.Username):
			return board.ErrDuplicateUsername
		case existing.ID == u.ID:
			return board.ErrDuplicate
		}
	}
	s.users[u.ID] = u
	return nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (board.User, error) {
	return s.findUser(func(u board.User) bool { return strings.EqualFold(u.Email, email) })
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (board.User, error) {
	return s.findUser(func(u board.User) bool { return strings.EqualFold(u.Username, username) })
}

func (s *Store) findUser(match func(board.User) bool) (board.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if match(u) {
			return u, nil
		}
	}
	return board.User{}, board.ErrNotFound
}

func (s *Store) CreateFeedback(_ context.Context, fb board.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.feedback[fb.ID]; ok {
		return board.ErrDuplicate
	}
	s.feedback[fb.ID] = fb
	return nil
}

func (s *Store) GetFeedback(_ context.Context, id string) (board.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fb, ok := s.feedback[id]
	if !ok {
		return board.Feedback{}, board.ErrNotFound
	}
	return fb, nil
}

func (s *Store) ListFeedback(_ context.Context, f board.Filter) ([]board.Feedback, error) {
	s.mu.RLock()
	items := make([]board.Feedback, 0, len(s.feedback))
	for _, fb := range s.feedback {
		if f.Match(fb) {
			items = append(items, fb)
		}
	}
	s.mu.RUnlock()

	board.SortFeedback(items)
	return items, nil
}

func (s *Store) DeleteFeedback(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.feedback[id]; !ok {
		return board.ErrNotFound
	}
	delete(s.feedback, id)
	delete(s.comments, id)
	delete(s.voters, id)
	return nil
}

func (s *Store) ToggleVote(_ context.Context, feedbackID, userID string) (bool, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fb, ok := s.feedback[feedbackID]
	if !ok {
		return false, 0, board.ErrNotFound
	}

	voters := s.voters[feedbackID]
	if voters == nil {
		voters = make(map[string]struct{})
		s.voters[feedbackID] = voters
	}

	_, had := voters[userID]
	if had {
		delete(voters, userID)
		fb.VoteCount = max(fb.VoteCount-1, 0)
	} else {
		voters[userID] = struct{}{}
		fb.VoteCount++
	}
	s.feedback[feedbackID] = fb
	return !had, fb.VoteCount, nil
}

func (s *Store) CreateComment(_ context.Context, c board.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.feedback[c.FeedbackID]; !ok {
		return board.ErrNotFound
	}
	s.comments[c.FeedbackID] = append(s.comments[c.FeedbackID], c)
	return nil
}

func (s *Store) ListComments(_ context.Context, feedbackID string) ([]board.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	src := s.comments[feedbackID]
	out := make([]board.Comment, len(src))
	copy(out, src)
	return out, nil
}
