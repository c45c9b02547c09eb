package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vishvakarma/studiodesk-api/internal/application/billing"
	"github.com/vishvakarma/studiodesk-api/internal/application/quoting"
	"github.com/vishvakarma/studiodesk-api/internal/domain/repository"
)

// Ensure TxRunner satisfies both application ports.
var _ quoting.TxRunner = (*TxRunner)(nil)
var _ billing.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction with the
// document repositories bound to it.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, runs fn with tx-bound repositories and commits,
// or rolls back on any error.
func (r *TxRunner) Run(ctx context.Context, fn func(
	quotationRepo repository.QuotationRepository,
	billRepo repository.BillRepository,
	receiptRepo repository.ReceiptRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewQuotationRepository(tx), NewBillRepository(tx), NewReceiptRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
