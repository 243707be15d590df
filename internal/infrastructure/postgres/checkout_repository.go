package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.CheckoutRepository = (*CheckoutRepo)(nil)

const checkoutColumns = `id, user_id, recipient_id, payment_method_id, delivery_method_id, payment_total, created, status, is_paid`

// CheckoutRepo checkouts y sus líneas (usable con pool o tx).
type CheckoutRepo struct {
	q Querier
}

// NewCheckoutRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCheckoutRepository(q Querier) *CheckoutRepo {
	return &CheckoutRepo{q: q}
}

func scanCheckout(row pgx.Row) (*entity.Checkout, error) {
	var c entity.Checkout
	err := row.Scan(&c.ID, &c.UserID, &c.RecipientID, &c.PaymentMethodID, &c.DeliveryMethodID,
		&c.PaymentTotal, &c.Created, &c.Status, &c.IsPaid)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste la cabecera; las líneas van por CreateItem.
func (r *CheckoutRepo) Create(ctx context.Context, c *entity.Checkout) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO checkouts (`+checkoutColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.UserID, c.RecipientID, c.PaymentMethodID, c.DeliveryMethodID,
		c.PaymentTotal, c.Created, c.Status, c.IsPaid,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert checkout: %w", err)
	}
	return nil
}

// CreateItem persiste una línea del checkout.
func (r *CheckoutRepo) CreateItem(ctx context.Context, it *entity.CheckoutItem) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO checkout_items (id, checkout_id, good_id, count, position) VALUES ($1, $2, $3, $4, $5)`,
		it.ID, it.CheckoutID, it.GoodID, it.Count, it.Position,
	)
	if err != nil {
		return fmt.Errorf("insert checkout item: %w", err)
	}
	return nil
}

// GetByID obtiene el checkout con sus líneas; nil si no existe.
func (r *CheckoutRepo) GetByID(ctx context.Context, id string) (*entity.Checkout, error) {
	if !validID(id) {
		return nil, nil
	}
	c, err := scanCheckout(r.q.QueryRow(ctx, `SELECT `+checkoutColumns+` FROM checkouts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get checkout: %w", err)
	}
	if err := r.loadItems(ctx, map[string]*entity.Checkout{c.ID: c}); err != nil {
		return nil, err
	}
	return c, nil
}

// Exists resuelve checkoutId.
func (r *CheckoutRepo) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.q, "checkouts", id)
}

// ListByUser lista los checkouts del usuario, más recientes primero; userID vacío lista todos.
func (r *CheckoutRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Checkout, error) {
	query := `SELECT ` + checkoutColumns + ` FROM checkouts`
	var args []any
	if userID != "" {
		if !validID(userID) {
			return nil, nil
		}
		query += ` WHERE user_id = $1`
		args = append(args, userID)
	}
	query += ` ORDER BY created DESC`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list checkouts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Checkout
	byID := map[string]*entity.Checkout{}
	for rows.Next() {
		c, err := scanCheckout(rows)
		if err != nil {
			return nil, fmt.Errorf("scan checkout: %w", err)
		}
		list = append(list, c)
		byID[c.ID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, byID); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *CheckoutRepo) loadItems(ctx context.Context, byID map[string]*entity.Checkout) error {
	if len(byID) == 0 {
		return nil
	}
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	rows, err := r.q.Query(ctx,
		`SELECT id, checkout_id, good_id, count, position FROM checkout_items WHERE checkout_id::text = ANY($1) ORDER BY position, id`, ids)
	if err != nil {
		return fmt.Errorf("list checkout items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.CheckoutItem
		if err := rows.Scan(&it.ID, &it.CheckoutID, &it.GoodID, &it.Count, &it.Position); err != nil {
			return fmt.Errorf("scan checkout item: %w", err)
		}
		if c := byID[it.CheckoutID]; c != nil {
			c.Items = append(c.Items, it)
		}
	}
	return rows.Err()
}

// UpdateStatus cambia estado y marca de pago.
func (r *CheckoutRepo) UpdateStatus(ctx context.Context, id, status string, isPaid bool) error {
	return execAffectingOne(ctx, r.q, "update checkout status",
		`UPDATE checkouts SET status = $2, is_paid = $3 WHERE id = $1`, id, status, isPaid)
}
