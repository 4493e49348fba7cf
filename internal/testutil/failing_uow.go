package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/focusflow/internal/db"
)

// FailOnNthExecUoW injects Err on the FailOn-th write inside a transaction,
// so tests can check that a multi-row save or import leaves no partial rows.
//
// Only ExecContext calls whose SQL contains Match are counted (all writes
// when Match is empty), starting at 1. Reads pass through untouched.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Match  string
	Err    error

	execs atomic.Int32
}

// Execs reports how many matching writes were attempted across all
// transactions, including the failed one.
func (u *FailOnNthExecUoW) Execs() int {
	return int(u.execs.Load())
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failOnNthExec{DBTX: tx, uow: u}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failOnNthExec struct {
	db.DBTX
	uow   *FailOnNthExecUoW
	count int32
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.uow.Match != "" && !strings.Contains(query, f.uow.Match) {
		return f.DBTX.ExecContext(ctx, query, args...)
	}
	f.uow.execs.Add(1)
	f.count++
	if f.count == f.uow.FailOn {
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
