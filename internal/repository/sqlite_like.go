package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/focusflow/internal/db"
)

// SQLiteLikeRepo implements LikeRepo using a SQLite database.
type SQLiteLikeRepo struct {
	db db.DBTX
}

func NewSQLiteLikeRepo(db db.DBTX) *SQLiteLikeRepo {
	return &SQLiteLikeRepo{db: db}
}

func (r *SQLiteLikeRepo) Has(ctx context.Context, activityID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM likes WHERE activity_id = ?`, activityID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking like: %w", err)
	}
	return n > 0, nil
}

// Add is idempotent: liking an already liked activity changes nothing.
func (r *SQLiteLikeRepo) Add(ctx context.Context, activityID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO likes (activity_id, created_at) VALUES (?, ?) ON CONFLICT(activity_id) DO NOTHING`,
		activityID, formatTime(at))
	if err != nil {
		return fmt.Errorf("adding like: %w", err)
	}
	return nil
}

// Remove is idempotent as well.
func (r *SQLiteLikeRepo) Remove(ctx context.Context, activityID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE activity_id = ?`, activityID); err != nil {
		return fmt.Errorf("removing like: %w", err)
	}
	return nil
}
