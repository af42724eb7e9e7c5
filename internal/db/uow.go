package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is satisfied by *pgxpool.Pool and pgx.Tx, so repositories can run
// standalone or inside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Runner runs fn against a store bound to a single transaction.
type Runner[S any] interface {
	Do(ctx context.Context, fn func(ctx context.Context, store S) error) error
}

// UnitOfWork runs a function against a store bound to a single transaction.
// The transaction is committed when the function returns nil and rolled back otherwise.
type UnitOfWork[S any] struct {
	db    TxBeginner
	build func(q Querier) S
}

func NewUnitOfWork[S any](db TxBeginner, build func(q Querier) S) *UnitOfWork[S] {
	return &UnitOfWork[S]{
		db:    db,
		build: build,
	}
}

func (u *UnitOfWork[S]) Do(ctx context.Context, fn func(ctx context.Context, store S) error) (err error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
			return
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			err = fmt.Errorf("commit tx: %w", commitErr)
		}
	}()

	return fn(ctx, u.build(tx))
}
