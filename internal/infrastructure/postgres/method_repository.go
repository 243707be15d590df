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

var (
	_ repository.PaymentMethodRepository  = (*PaymentMethodRepo)(nil)
	_ repository.DeliveryMethodRepository = (*DeliveryMethodRepo)(nil)
)

// PaymentMethodRepo métodos de pago.
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository construye el adaptador.
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

func (r *PaymentMethodRepo) Create(ctx context.Context, m *entity.PaymentMethod) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO payment_methods (id, title, description, logo) VALUES ($1, $2, $3, $4)`,
		m.ID, m.Title, m.Description, m.Logo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

func (r *PaymentMethodRepo) GetByID(ctx context.Context, id string) (*entity.PaymentMethod, error) {
	if !validID(id) {
		return nil, nil
	}
	var m entity.PaymentMethod
	err := r.q.QueryRow(ctx,
		`SELECT id, title, description, logo FROM payment_methods WHERE id = $1`, id,
	).Scan(&m.ID, &m.Title, &m.Description, &m.Logo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return &m, nil
}

func (r *PaymentMethodRepo) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.q, "payment_methods", id)
}

func (r *PaymentMethodRepo) Update(ctx context.Context, m *entity.PaymentMethod) error {
	return execAffectingOne(ctx, r.q, "update payment method",
		`UPDATE payment_methods SET title = $2, description = $3, logo = $4 WHERE id = $1`,
		m.ID, m.Title, m.Description, m.Logo,
	)
}

func (r *PaymentMethodRepo) List(ctx context.Context) ([]*entity.PaymentMethod, error) {
	rows, err := r.q.Query(ctx, `SELECT id, title, description, logo FROM payment_methods ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentMethod
	for rows.Next() {
		var m entity.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.Logo); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *PaymentMethodRepo) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.q, "delete payment method", `DELETE FROM payment_methods WHERE id = $1`, id)
}

// DeliveryMethodRepo métodos de entrega.
type DeliveryMethodRepo struct {
	q Querier
}

// NewDeliveryMethodRepository construye el adaptador.
func NewDeliveryMethodRepository(q Querier) *DeliveryMethodRepo {
	return &DeliveryMethodRepo{q: q}
}

func (r *DeliveryMethodRepo) Create(ctx context.Context, m *entity.DeliveryMethod) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO delivery_methods (id, title, description) VALUES ($1, $2, $3)`,
		m.ID, m.Title, m.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert delivery method: %w", err)
	}
	return nil
}

func (r *DeliveryMethodRepo) GetByID(ctx context.Context, id string) (*entity.DeliveryMethod, error) {
	if !validID(id) {
		return nil, nil
	}
	var m entity.DeliveryMethod
	err := r.q.QueryRow(ctx,
		`SELECT id, title, description FROM delivery_methods WHERE id = $1`, id,
	).Scan(&m.ID, &m.Title, &m.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery method: %w", err)
	}
	return &m, nil
}

func (r *DeliveryMethodRepo) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.q, "delivery_methods", id)
}

func (r *DeliveryMethodRepo) Update(ctx context.Context, m *entity.DeliveryMethod) error {
	return execAffectingOne(ctx, r.q, "update delivery method",
		`UPDATE delivery_methods SET title = $2, description = $3 WHERE id = $1`,
		m.ID, m.Title, m.Description,
	)
}

func (r *DeliveryMethodRepo) List(ctx context.Context) ([]*entity.DeliveryMethod, error) {
	rows, err := r.q.Query(ctx, `SELECT id, title, description FROM delivery_methods ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list delivery methods: %w", err)
	}
	defer rows.Close()
	var list []*entity.DeliveryMethod
	for rows.Next() {
		var m entity.DeliveryMethod
		if err := rows.Scan(&m.ID, &m.Title, &m.Description); err != nil {
			return nil, fmt.Errorf("scan delivery method: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *DeliveryMethodRepo) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.q, "delete delivery method", `DELETE FROM delivery_methods WHERE id = $1`, id)
}
