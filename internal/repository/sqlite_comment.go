package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/focusflow/internal/db"
	"github.com/alexanderramin/focusflow/internal/domain"
)

// SQLiteCommentRepo implements CommentRepo using a SQLite database.
type SQLiteCommentRepo struct {
	db db.DBTX
}

func NewSQLiteCommentRepo(db db.DBTX) *SQLiteCommentRepo {
	return &SQLiteCommentRepo{db: db}
}

const commentColumns = `id, activity_id, body, created_at, updated_at`

func (r *SQLiteCommentRepo) Create(ctx context.Context, c *domain.Comment) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (`+commentColumns+`) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.ActivityID, c.Body, formatTime(c.CreatedAt), formatTime(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting comment: %w", err)
	}
	return nil
}

func (r *SQLiteCommentRepo) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = ?`, id)
	c, err := scanComment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("comment %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (r *SQLiteCommentRepo) ListByActivity(ctx context.Context, activityID string, limit, offset int) ([]*domain.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE activity_id = ? ORDER BY created_at, id`
	args := []any{activityID}
	if limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, limit, offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	defer rows.Close()

	var out []*domain.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating comments: %w", err)
	}
	return out, nil
}

func (r *SQLiteCommentRepo) UpdateBody(ctx context.Context, id, body string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE comments SET body = ?, updated_at = ? WHERE id = ?`, body, formatTime(at), id)
	if err != nil {
		return fmt.Errorf("updating comment: %w", err)
	}
	return requireAffected(res, "comment", id)
}

func (r *SQLiteCommentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}
	return requireAffected(res, "comment", id)
}

func scanComment(row rowScanner) (*domain.Comment, error) {
	var c domain.Comment
	var createdAt, updatedAt string
	if err := row.Scan(&c.ID, &c.ActivityID, &c.Body, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning comment: %w", err)
	}
	var err error
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &c, nil
}
