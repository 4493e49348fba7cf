package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/focusflow/internal/db"
	"github.com/alexanderramin/focusflow/internal/domain"
)

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db db.DBTX
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo. Pass a *sql.DB for
// standalone use or a tx from UnitOfWork.WithinTx.
func NewSQLiteActivityRepo(db db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: db}
}

const activityColumns = `id, category, duration_minutes, note, evidence_url, focus_level, visibility, share_count, created_at`

// activitySelect reads the stored columns plus the like and comment
// counters. Callers append WHERE / ORDER BY against the alias-free names.
const activitySelect = `SELECT id, category, duration_minutes, note, evidence_url, focus_level, visibility, share_count, created_at,
		(SELECT COUNT(*) FROM likes l WHERE l.activity_id = activities.id),
		(SELECT COUNT(*) FROM comments c WHERE c.activity_id = activities.id)
	FROM activities`

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	query := `INSERT INTO activities (` + activityColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Category,
		a.DurationMinutes,
		a.Note,
		a.EvidenceURL,
		nullableIntToValue(a.FocusLevel),
		string(a.Visibility),
		a.ShareCount,
		formatTime(a.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := activitySelect + ` WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	a, err := scanActivity(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("activity %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return a, nil
}

// List returns activities newest first.
func (r *SQLiteActivityRepo) List(ctx context.Context, f ActivityFilter) ([]*domain.Activity, error) {
	var where []string
	var args []any
	if f.Category != "" {
		where = append(where, "category = ?")
		args = append(args, f.Category)
	}
	if f.Visibility != "" {
		where = append(where, "visibility = ?")
		args = append(args, string(f.Visibility))
	}
	if f.Since != nil {
		where = append(where, "created_at >= ?")
		args = append(args, formatTime(*f.Since))
	}

	query := activitySelect
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC, id`
	if f.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var out []*domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return out, nil
}

func (r *SQLiteActivityRepo) Update(ctx context.Context, a *domain.Activity) error {
	query := `UPDATE activities
		SET category = ?, duration_minutes = ?, note = ?, evidence_url = ?, focus_level = ?, visibility = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		a.Category,
		a.DurationMinutes,
		a.Note,
		a.EvidenceURL,
		nullableIntToValue(a.FocusLevel),
		string(a.Visibility),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating activity: %w", err)
	}
	return requireAffected(res, "activity", a.ID)
}

func (r *SQLiteActivityRepo) IncrementShareCount(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE activities SET share_count = share_count + 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("incrementing share count: %w", err)
	}
	return requireAffected(res, "activity", id)
}

func (r *SQLiteActivityRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	return requireAffected(res, "activity", id)
}

func requireAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (*domain.Activity, error) {
	var a domain.Activity
	var focus sql.NullInt64
	var visibility, createdAt string

	err := row.Scan(
		&a.ID, &a.Category, &a.DurationMinutes, &a.Note, &a.EvidenceURL,
		&focus, &visibility, &a.ShareCount, &createdAt,
		&a.LikeCount, &a.CommentCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning activity: %w", err)
	}

	a.FocusLevel = nullIntToPtr(focus)
	a.Visibility = domain.Visibility(visibility)
	a.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &a, nil
}
