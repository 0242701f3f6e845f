package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/webmasterhq/webmaster-backend/internal/models"
)

// ErrUnavailable marks failures to reach the database at all, as opposed to
// a statement failing once a connection was handed out.
var ErrUnavailable = errors.New("database unavailable")

// NewSubmission is the validated input of the submission write path.
type NewSubmission struct {
	Name     string
	Email    string
	Phone    string
	FormType string
	Message  string
}

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// CreateSubmission inserts the user row and its form submission row in one
// transaction. Either both rows are committed or neither is.
func (s *PostgresStore) CreateSubmission(ctx context.Context, sub NewSubmission) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer tx.Rollback()

	var userID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO users (name, email, phone)
		VALUES ($1, $2, $3)
		RETURNING id
	`, sub.Name, sub.Email, sub.Phone).Scan(&userID)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO form_submissions (user_id, form_type, message)
		VALUES ($1, $2, $3)
	`, userID, sub.FormType, sub.Message)
	if err != nil {
		return 0, fmt.Errorf("insert form submission: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit submission: %w", err)
	}
	return userID, nil
}

// ListUsers returns every user left-joined to its form submission, newest
// users first. Users without a submission carry nil submission fields.
func (s *PostgresStore) ListUsers(ctx context.Context) ([]models.UserWithSubmission, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, `
		SELECT u.id, u.name, u.email, u.phone, u.created_at,
		       fs.form_type, fs.message, fs.created_at AS submission_time
		FROM users u
		LEFT JOIN form_submissions fs ON u.id = fs.user_id
		ORDER BY u.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := make([]models.UserWithSubmission, 0)
	for rows.Next() {
		var u models.UserWithSubmission
		var formType, message sql.NullString
		var submissionTime sql.NullTime

		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.CreatedAt,
			&formType, &message, &submissionTime); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}

		if formType.Valid {
			u.FormType = &formType.String
		}
		if message.Valid {
			u.Message = &message.String
		}
		if submissionTime.Valid {
			u.SubmissionTime = &submissionTime.Time
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}
