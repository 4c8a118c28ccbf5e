package board

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/feedbackboard/pkg/logger"
	"github.com/dmitrymomot/feedbackboard/pkg/sanitizer"
	"github.com/dmitrymomot/feedbackboard/pkg/validator"
)

// Messages for checks that have no dedicated validator.
const (
	MsgPasswordRequired  = "Please enter your password"
	MsgPasswordsMismatch = "Passwords do not match"
	MsgCategoryRequired  = "Please select a category"
)

type RegisterInput struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SubmitInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type ServiceOption func(*Service)

// WithForwarder sets where new feedback is forwarded after it is stored.
func WithForwarder(f Forwarder) ServiceOption {
	return func(s *Service) {
		if f != nil {
			s.forwarder = f
		}
	}
}

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithBcryptCost sets the password hashing cost.
func WithBcryptCost(cost int) ServiceOption {
	return func(s *Service) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
}

// Service implements the board's use cases on top of a Storage.
type Service struct {
	store      Storage
	forwarder  Forwarder
	log        *slog.Logger
	now        func() time.Time
	bcryptCost int
}

func NewService(store Storage, opts ...ServiceOption) *Service {
	s := &Service{
		store:      store,
		forwarder:  NopForwarder{},
		log:        logger.Discard(),
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates an account and returns its identity.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Identity, error) {
	username := sanitizer.Username(in.Username)
	email := sanitizer.Email(in.Email)

	if err := validator.Apply(
		validator.Username(username).Rule("username"),
		validator.Email(email).Rule("email"),
		validator.Password(in.Password).Rule("password"),
		validator.Equal("confirm_password", in.ConfirmPassword, in.Password, MsgPasswordsMismatch),
	); err != nil {
		return Identity{}, err
	}

	if _, err := s.store.GetUserByEmail(ctx, email); err == nil {
		return Identity{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return Identity{}, fmt.Errorf("register: %w", err)
	}
	if _, err := s.store.GetUserByUsername(ctx, username); err == nil {
		return Identity{}, ErrUsernameTaken
	} else if !errors.Is(err, ErrNotFound) {
		return Identity{}, fmt.Errorf("register: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return Identity{}, fmt.Errorf("register: hash password: %w", err)
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		// Lost a race with a concurrent registration.
		switch {
		case errors.Is(err, ErrDuplicateUsername):
			return Identity{}, ErrUsernameTaken
		case errors.Is(err, ErrDuplicate):
			return Identity{}, ErrEmailTaken
		}
		return Identity{}, fmt.Errorf("register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", logger.UserID(u.ID))
	return u.Identity(), nil
}

// Login checks credentials and returns the user's identity.
func (s *Service) Login(ctx context.Context, in LoginInput) (Identity, error) {
	email := sanitizer.Email(in.Email)

	if err := validator.Apply(
		validator.Email(email).Rule("email"),
		validator.MinLenString("password", in.Password, validator.PasswordMinLen).WithMessage(MsgPasswordRequired),
	); err != nil {
		return Identity{}, err
	}

	u, err := s.store.GetUserByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return Identity{}, ErrInvalidCredentials
	}
	if err != nil {
		return Identity{}, fmt.Errorf("login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return Identity{}, ErrInvalidCredentials
	}
	return u.Identity(), nil
}

// ListFeedback returns items matching the raw filter value, most voted first.
func (s *Service) ListFeedback(ctx context.Context, filter string, who *Identity) ([]Feedback, error) {
	items, err := s.store.ListFeedback(ctx, ParseFilter(filter, who))
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	SortFeedback(items)
	return items, nil
}

// SortFeedback orders items by vote count descending, newest first on ties.
func SortFeedback(items []Feedback) {
	slices.SortStableFunc(items, func(a, b Feedback) int {
		if c := cmp.Compare(b.VoteCount, a.VoteCount); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

func (s *Service) GetFeedback(ctx context.Context, id string) (Feedback, error) {
	fb, err := s.store.GetFeedback(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Feedback{}, ErrFeedbackNotFound
	}
	if err != nil {
		return Feedback{}, fmt.Errorf("get feedback: %w", err)
	}
	return fb, nil
}

// SubmitFeedback stores a new item under review and forwards it. Forwarding
// failures are logged and do not fail the submission.
func (s *Service) SubmitFeedback(ctx context.Context, who *Identity, in SubmitInput) (Feedback, error) {
	if who == nil || who.UserID == "" {
		return Feedback{}, ErrUnauthenticated
	}

	title := sanitizer.Text(in.Title)
	description := sanitizer.Text(in.Description)
	category := Category(sanitizer.Trim(in.Category))

	categoryRule := validator.OneOf("category", string(category), categoryCodes(), MsgCategoryRequired)
	if category == "" {
		categoryRule = validator.RequiredString("category", string(category)).WithMessage(MsgCategoryRequired)
	}
	if err := validator.Apply(
		validator.Title(title).Rule("title"),
		validator.Description(description).Rule("description"),
		categoryRule,
	); err != nil {
		return Feedback{}, err
	}

	fb := Feedback{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Category:    category,
		Status:      StatusUnderReview,
		UserID:      who.UserID,
		Username:    who.Username,
		VoteCount:   0,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.store.CreateFeedback(ctx, fb); err != nil {
		return Feedback{}, fmt.Errorf("submit feedback: %w", err)
	}

	s.log.InfoContext(ctx, "feedback submitted",
		logger.FeedbackID(fb.ID),
		logger.UserID(fb.UserID),
		slog.String("category", string(fb.Category)),
	)

	if err := s.forwarder.Forward(ctx, fb); err != nil {
		s.log.WarnContext(ctx, "feedback forward failed",
			logger.FeedbackID(fb.ID),
			logger.Error(err),
		)
	}
	return fb, nil
}

// ToggleVote flips the caller's vote on a feedback item.
func (s *Service) ToggleVote(ctx context.Context, who *Identity, feedbackID string) (VoteResult, error) {
	if who == nil || who.UserID == "" {
		return VoteResult{}, ErrUnauthenticated
	}

	voted, count, err := s.store.ToggleVote(ctx, feedbackID, who.UserID)
	if errors.Is(err, ErrNotFound) {
		return VoteResult{}, ErrFeedbackNotFound
	}
	if err != nil {
		return VoteResult{}, fmt.Errorf("toggle vote: %w", err)
	}

	res := VoteResult{Action: VoteRemoved, VoteCount: count}
	if voted {
		res.Action = VoteAdded
	}
	return res, nil
}

// ListComments returns a feedback item's comments, oldest first.
func (s *Service) ListComments(ctx context.Context, feedbackID string) ([]Comment, error) {
	if _, err := s.GetFeedback(ctx, feedbackID); err != nil {
		return nil, err
	}
	comments, err := s.store.ListComments(ctx, feedbackID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	slices.SortStableFunc(comments, func(a, b Comment) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return comments, nil
}

// AddComment stores a comment by the caller.
func (s *Service) AddComment(ctx context.Context, who *Identity, feedbackID, text string) (Comment, error) {
	if who == nil || who.UserID == "" {
		return Comment{}, ErrUnauthenticated
	}

	text = sanitizer.Comment(text)
	if err := validator.Apply(validator.Comment(text).Rule("text")); err != nil {
		return Comment{}, err
	}

	if _, err := s.GetFeedback(ctx, feedbackID); err != nil {
		return Comment{}, err
	}

	c := Comment{
		ID:         uuid.NewString(),
		FeedbackID: feedbackID,
		UserID:     who.UserID,
		Username:   who.Username,
		Text:       text,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.store.CreateComment(ctx, c); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Comment{}, ErrFeedbackNotFound
		}
		return Comment{}, fmt.Errorf("add comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment added", logger.CommentID(c.ID), logger.FeedbackID(feedbackID))
	return c, nil
}

// DeleteFeedback removes an item owned by the caller.
func (s *Service) DeleteFeedback(ctx context.Context, who *Identity, feedbackID string) error {
	if who == nil || who.UserID == "" {
		return ErrUnauthenticated
	}

	fb, err := s.GetFeedback(ctx, feedbackID)
	if err != nil {
		return err
	}
	if !CanDelete(who, fb) {
		return ErrForbidden
	}

	if err := s.store.DeleteFeedback(ctx, feedbackID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrFeedbackNotFound
		}
		return fmt.Errorf("delete feedback: %w", err)
	}

	s.log.InfoContext(ctx, "feedback deleted", logger.FeedbackID(feedbackID), logger.UserID(who.UserID))
	return nil
}

// CanDelete reports whether who owns fb.
func CanDelete(who *Identity, fb Feedback) bool {
	return who != nil && who.UserID != "" && who.UserID == fb.UserID
}

func categoryCodes() []string {
	codes := make([]string, len(Categories))
	for i, c := range Categories {
		codes[i] = string(c)
	}
	return codes
}
