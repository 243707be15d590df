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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo categorías de bienes; parent_id NULL es una raíz.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.GoodCategory) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO good_categories (id, title, description, parent_id) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Title, c.Description, c.ParentID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría; nil si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.GoodCategory, error) {
	if !validID(id) {
		return nil, nil
	}
	var c entity.GoodCategory
	err := r.q.QueryRow(ctx,
		`SELECT id, title, description, parent_id FROM good_categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Title, &c.Description, &c.ParentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Exists resuelve parentId y categoryId.
func (r *CategoryRepo) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.q, "good_categories", id)
}

// Update reemplaza título, descripción y padre.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.GoodCategory) error {
	return execAffectingOne(ctx, r.q, "update category",
		`UPDATE good_categories SET title = $2, description = $3, parent_id = $4 WHERE id = $1`,
		c.ID, c.Title, c.Description, c.ParentID,
	)
}

// List lista categorías por título.
func (r *CategoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.GoodCategory, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, title, description, parent_id FROM good_categories ORDER BY title LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.GoodCategory
	for rows.Next() {
		var c entity.GoodCategory
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.ParentID); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una categoría. Con bienes asociados devuelve domain.ErrConflict.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.q, "delete category", `DELETE FROM good_categories WHERE id = $1`, id)
}
