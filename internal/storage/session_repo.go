package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// SessionRecord is the per-session state: the last generated text and the
// settings it was generated with. Each regeneration overwrites the record
// wholesale.
type SessionRecord struct {
	ID            string
	ReportKind    string
	UserTitle     string
	GeneratedText string
	FilenameBase  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SessionStore defines the interface for session state persistence.
type SessionStore interface {
	// Upsert inserts a new session or replaces an existing one wholesale.
	// A record with an empty ID gets a new UUID assigned.
	Upsert(ctx context.Context, rec *SessionRecord) error
	// Get returns the session with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*SessionRecord, error)
}

// SessionRepo provides methods for session operations.
// It implements the SessionStore interface.
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo creates a new SessionRepo.
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Get returns the session with the given ID, or ErrNotFound.
func (r *SessionRepo) Get(ctx context.Context, id string) (*SessionRecord, error) {
	var rec SessionRecord
	var createdAtStr, updatedAtStr string

	err := r.db.QueryRowContext(ctx,
		"SELECT id, report_kind, user_title, generated_text, filename_base, created_at, updated_at FROM sessions WHERE id = ?",
		id,
	).Scan(&rec.ID, &rec.ReportKind, &rec.UserTitle, &rec.GeneratedText, &rec.FilenameBase, &createdAtStr, &updatedAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	if rec.CreatedAt, err = parseSQLiteTime(createdAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	if rec.UpdatedAt, err = parseSQLiteTime(updatedAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at timestamp: %w", err)
	}

	return &rec, nil
}

// Upsert inserts a new session or replaces an existing one wholesale.
func (r *SessionRepo) Upsert(ctx context.Context, rec *SessionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, report_kind, user_title, generated_text, filename_base)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			report_kind = excluded.report_kind,
			user_title = excluded.user_title,
			generated_text = excluded.generated_text,
			filename_base = excluded.filename_base,
			updated_at = CURRENT_TIMESTAMP`,
		rec.ID, rec.ReportKind, rec.UserTitle, rec.GeneratedText, rec.FilenameBase,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert session: %w", err)
	}

	return nil
}

// parseSQLiteTime handles the two timestamp formats SQLite may emit.
func parseSQLiteTime(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
