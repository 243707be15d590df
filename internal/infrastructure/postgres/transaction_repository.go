package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, checkout_id, created, updated, status, amount, provider_data`

// TransactionRepo transacciones de pago; provider_data se guarda como jsonb.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var (
		t    entity.Transaction
		data []byte
	)
	if err := row.Scan(&t.ID, &t.CheckoutID, &t.Created, &t.Updated, &t.Status, &t.Amount, &data); err != nil {
		return nil, err
	}
	if len(data) > 0 {
		t.ProviderData = data
	}
	return &t, nil
}

func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	var data []byte
	if len(t.ProviderData) > 0 {
		data = t.ProviderData
	}
	_, err := r.q.Exec(ctx,
		`INSERT INTO transactions (`+transactionColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.CheckoutID, t.Created, t.Updated, t.Status, t.Amount, data,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	return r.get(ctx, id, "")
}

// GetByIDForUpdate se usa en la liquidación para serializar cambios de estado.
func (r *TransactionRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Transaction, error) {
	return r.get(ctx, id, ` FOR UPDATE`)
}

func (r *TransactionRepo) get(ctx context.Context, id, lock string) (*entity.Transaction, error) {
	if !validID(id) {
		return nil, nil
	}
	t, err := scanTransaction(r.q.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`+lock, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// ListByCheckout transacciones del checkout, más antigua primero.
func (r *TransactionRepo) ListByCheckout(ctx context.Context, checkoutID string) ([]*entity.Transaction, error) {
	if !validID(checkoutID) {
		return nil, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE checkout_id = $1 ORDER BY created`, checkoutID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado y sella updated.
func (r *TransactionRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return execAffectingOne(ctx, r.q, "update transaction status",
		`UPDATE transactions SET status = $2, updated = $3 WHERE id = $1`, id, status, time.Now())
}
