package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager runs the forum's multi-row writes (asking a question with its
// tags, signing up a user with a profile, seeding) in one transaction carried
// on the context. Nested RunInTx calls are NOT supported: calling RunInTx
// inside a RunInTx callback opens a second independent transaction.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// txOptions pins Read Committed regardless of default_transaction_isolation.
// tag.Repo.GetOrCreate depends on it inside Ask: after losing the insert race
// its follow-up SELECT must see the tag row another request just committed,
// which a Repeatable Read snapshot taken before that commit would hide.
var txOptions = pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

// RunInTx executes fn within a Read Committed transaction.
// On success: commits.
// On error from fn: rolls back and returns the error.
// On panic from fn: rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.pool.BeginTx(ctx, txOptions)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	txCtx := withTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
