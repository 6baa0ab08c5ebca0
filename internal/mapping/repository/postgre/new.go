package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/OlegGirko/boss-launcher-webhook/internal/mapping/repository"
	"github.com/OlegGirko/boss-launcher-webhook/pkg/log"
)

// queryer is satisfied by *sql.DB and *sql.Tx so the same repository code
// runs inside and outside a transaction.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type implRepository struct {
	db *sql.DB
	q  queryer
	l  log.Logger
}

// New creates a PostgreSQL-backed Repository for the mapping registry.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("mapping/repository/postgre: db is required")
	}
	return &implRepository{db: db, q: db, l: l}
}

// InTransaction runs fn against a repository bound to a single
// transaction. The mapping and its revision record are always persisted
// through this so readers see them change as one unit.
func (r *implRepository) InTransaction(ctx context.Context, fn func(ctx context.Context, tr repository.Repository) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InTransaction"), err)
		return repository.ErrFailedToBegin
	}

	txRepo := &implRepository{db: r.db, q: tx, l: r.l}
	if err := fn(ctx, txRepo); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("InTransaction"), err)
		return repository.ErrFailedToCommit
	}
	return nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("mapping/repository/postgre.%s", method)
}
