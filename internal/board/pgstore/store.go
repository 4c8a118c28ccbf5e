// Package pgstore implements board.Storage on PostgreSQL with pgx.
package pgstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/feedbackboard/internal/board"
	"github.com/dmitrymomot/feedbackboard/pkg/pg"
)

// DB is the subset of *pgxpool.Pool the store needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

var _ DB = (*pgxpool.Pool)(nil)

type Store struct {
	db DB
}

func New(db DB) *Store {
	return &Store{db: db}
}

func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case pg.IsNotFoundError(err):
		return errors.Join(board.ErrNotFound, err)
	case pg.IsDuplicateKeyError(err):
		return errors.Join(board.ErrDuplicate, err)
	case pg.IsForeignKeyViolationError(err):
		return errors.Join(board.ErrNotFound, err)
	}
	return err
}

const userColumns = `id, username, email, password_hash, created_at`

func scanUser(row pgx.Row) (board.User, error) {
	var u board.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, mapErr(err)
}

func (s *Store) CreateUser(ctx context.Context, u board.User) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.CreatedAt,
	)
	if pg.IsDuplicateKeyError(err) {
		switch pg.ConstraintName(err) {
		case "users_email_key":
			return errors.Join(board.ErrDuplicateEmail, err)
		case "users_username_key":
			return errors.Join(board.ErrDuplicateUsername, err)
		}
	}
	return mapErr(err)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (board.User, error) {
	return scanUser(s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (board.User, error) {
	return scanUser(s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(username) = lower($1)`, username))
}

const feedbackColumns = `id, title, description, category, status, user_id, username, vote_count, created_at`

func scanFeedback(row pgx.Row) (board.Feedback, error) {
	var fb board.Feedback
	err := row.Scan(&fb.ID, &fb.Title, &fb.Description, &fb.Category, &fb.Status,
		&fb.UserID, &fb.Username, &fb.VoteCount, &fb.CreatedAt)
	return fb, mapErr(err)
}

func (s *Store) CreateFeedback(ctx context.Context, fb board.Feedback) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO feedback (`+feedbackColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		fb.ID, fb.Title, fb.Description, fb.Category, fb.Status,
		fb.UserID, fb.Username, fb.VoteCount, fb.CreatedAt,
	)
	return mapErr(err)
}

func (s *Store) GetFeedback(ctx context.Context, id string) (board.Feedback, error) {
	return scanFeedback(s.db.QueryRow(ctx,
		`SELECT `+feedbackColumns+` FROM feedback WHERE id = $1`, id))
}

// ListFeedback treats empty filter fields as wildcards.
func (s *Store) ListFeedback(ctx context.Context, f board.Filter) ([]board.Feedback, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+feedbackColumns+`
		FROM feedback
		WHERE ($1 = '' OR category = $1)
		  AND ($2 = '' OR status = $2)
		  AND ($3 = '' OR user_id = $3)
		ORDER BY vote_count DESC, created_at DESC`,
		string(f.Category), string(f.Status), f.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("pgstore: list feedback: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (board.Feedback, error) {
		return scanFeedback(row)
	})
	if err != nil {
		return nil, fmt.Errorf("pgstore: list feedback: %w", err)
	}
	return items, nil
}

func (s *Store) DeleteFeedback(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return board.ErrNotFound
	}
	return nil
}

// ToggleVote runs in one transaction holding a row lock on the item so
// concurrent toggles serialize.
func (s *Store) ToggleVote(ctx context.Context, feedbackID, userID string) (voted bool, count int, err error) {
	err = pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx,
			`SELECT vote_count FROM feedback WHERE id = $1 FOR UPDATE`, feedbackID,
		).Scan(&count); err != nil {
			return mapErr(err)
		}

		tag, err := tx.Exec(ctx,
			`DELETE FROM votes WHERE feedback_id = $1 AND user_id = $2`, feedbackID, userID)
		if err != nil {
			return err
		}

		delta := -1
		if tag.RowsAffected() == 0 {
			if _, err := tx.Exec(ctx,
				`INSERT INTO votes (feedback_id, user_id) VALUES ($1, $2)`, feedbackID, userID,
			); err != nil {
				return mapErr(err)
			}
			delta, voted = 1, true
		}

		return tx.QueryRow(ctx,
			`UPDATE feedback SET vote_count = GREATEST(vote_count + $2, 0) WHERE id = $1 RETURNING vote_count`,
			feedbackID, delta,
		).Scan(&count)
	})
	if err != nil {
		return false, 0, err
	}
	return voted, count, nil
}

func (s *Store) CreateComment(ctx context.Context, c board.Comment) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO comments (id, feedback_id, user_id, username, text, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.FeedbackID, c.UserID, c.Username, c.Text, c.CreatedAt,
	)
	return mapErr(err)
}

func (s *Store) ListComments(ctx context.Context, feedbackID string) ([]board.Comment, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, feedback_id, user_id, username, text, created_at
		FROM comments
		WHERE feedback_id = $1
		ORDER BY created_at ASC`, feedbackID)
	if err != nil {
		return nil, fmt.Errorf("pgstore: list comments: %w", err)
	}
	comments, err := pgx.CollectRows(rows, pgx.RowToStructByPos[board.Comment])
	if err != nil {
		return nil, fmt.Errorf("pgstore: list comments: %w", err)
	}
	return comments, nil
}
