package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// run inicia una transacción, ejecuta fn con la tx y hace Commit o Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCatalog bien e imágenes en la misma transacción.
func (r *TxRunner) RunCatalog(ctx context.Context, fn func(
	goods repository.GoodRepository,
	images repository.GoodImageRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewGoodRepository(tx), NewGoodImageRepository(tx))
	})
}

// RunCheckout checkout, items y vaciado de la cesta en la misma transacción.
func (r *TxRunner) RunCheckout(ctx context.Context, fn func(
	checkouts repository.CheckoutRepository,
	basket repository.BasketRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewCheckoutRepository(tx), NewBasketRepository(tx))
	})
}

// RunSettlement estado de la transacción de pago y del checkout.
func (r *TxRunner) RunSettlement(ctx context.Context, fn func(
	transactions repository.TransactionRepository,
	checkouts repository.CheckoutRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewTransactionRepository(tx), NewCheckoutRepository(tx))
	})
}
