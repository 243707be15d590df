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

var _ repository.BasketRepository = (*BasketRepo)(nil)

// basketSelect une la línea con el bien para la proyección anidada.
const basketSelect = `
	SELECT b.id, b.user_id, b.good_id, b.count,
	       g.id, g.name, g.description, g.price, g.category_id, g.seller_id, g.created_at, g.updated_at
	FROM basket_items b
	JOIN goods g ON g.id = b.good_id`

// BasketRepo líneas de cesta (usable con pool o tx).
type BasketRepo struct {
	q Querier
}

// NewBasketRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBasketRepository(q Querier) *BasketRepo {
	return &BasketRepo{q: q}
}

func scanBasketItem(row pgx.Row) (*entity.BasketItem, error) {
	var (
		it entity.BasketItem
		g  entity.Good
	)
	err := row.Scan(&it.ID, &it.UserID, &it.GoodID, &it.Count,
		&g.ID, &g.Name, &g.Description, &g.Price, &g.CategoryID, &g.SellerID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	it.Good = &g
	return &it, nil
}

// Create agrega una línea. (user_id, good_id) es único.
func (r *BasketRepo) Create(ctx context.Context, it *entity.BasketItem) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO basket_items (id, user_id, good_id, count) VALUES ($1, $2, $3, $4)`,
		it.ID, it.UserID, it.GoodID, it.Count,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert basket item: %w", err)
	}
	return nil
}

func (r *BasketRepo) GetByID(ctx context.Context, id string) (*entity.BasketItem, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.one(ctx, "get basket item", basketSelect+` WHERE b.id = $1`, id)
}

func (r *BasketRepo) GetByUserAndGood(ctx context.Context, userID, goodID string) (*entity.BasketItem, error) {
	if !validID(userID) || !validID(goodID) {
		return nil, nil
	}
	return r.one(ctx, "get basket item by good", basketSelect+` WHERE b.user_id = $1 AND b.good_id = $2`, userID, goodID)
}

func (r *BasketRepo) one(ctx context.Context, op, query string, args ...any) (*entity.BasketItem, error) {
	it, err := scanBasketItem(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return it, nil
}

func (r *BasketRepo) UpdateCount(ctx context.Context, id string, count int) error {
	return execAffectingOne(ctx, r.q, "update basket count", `UPDATE basket_items SET count = $2 WHERE id = $1`, id, count)
}

// ListByUser la cesta del usuario con cada bien cargado.
func (r *BasketRepo) ListByUser(ctx context.Context, userID string) ([]*entity.BasketItem, error) {
	return r.list(ctx, userID, "")
}

// ListByUserForUpdate bloquea las líneas de la cesta (no los bienes) dentro de la tx en curso.
func (r *BasketRepo) ListByUserForUpdate(ctx context.Context, userID string) ([]*entity.BasketItem, error) {
	return r.list(ctx, userID, ` FOR UPDATE OF b`)
}

func (r *BasketRepo) list(ctx context.Context, userID, lock string) ([]*entity.BasketItem, error) {
	if !validID(userID) {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, basketSelect+` WHERE b.user_id = $1 ORDER BY g.name, b.id`+lock, userID)
	if err != nil {
		return nil, fmt.Errorf("list basket: %w", err)
	}
	defer rows.Close()
	var list []*entity.BasketItem
	for rows.Next() {
		it, err := scanBasketItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan basket item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func (r *BasketRepo) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.q, "delete basket item", `DELETE FROM basket_items WHERE id = $1`, id)
}
