package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var (
	_ repository.GoodRepository      = (*GoodRepo)(nil)
	_ repository.GoodImageRepository = (*GoodImageRepo)(nil)
)

const goodColumns = `id, name, description, price, category_id, seller_id, created_at, updated_at`

// GoodRepo bienes publicados por vendedores (usable con pool o tx).
type GoodRepo struct {
	q Querier
}

// NewGoodRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGoodRepository(q Querier) *GoodRepo {
	return &GoodRepo{q: q}
}

// Create persiste el bien sin imágenes; las imágenes van por GoodImageRepo en la misma tx.
func (r *GoodRepo) Create(ctx context.Context, g *entity.Good) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO goods (`+goodColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		g.ID, g.Name, g.Description, g.Price, g.CategoryID, g.SellerID, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert good: %w", err)
	}
	return nil
}

// GetByID obtiene el bien con sus imágenes.
func (r *GoodRepo) GetByID(ctx context.Context, id string) (*entity.Good, error) {
	if !validID(id) {
		return nil, nil
	}
	var g entity.Good
	err := r.q.QueryRow(ctx, `SELECT `+goodColumns+` FROM goods WHERE id = $1`, id).Scan(
		&g.ID, &g.Name, &g.Description, &g.Price, &g.CategoryID, &g.SellerID, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get good: %w", err)
	}
	images, err := NewGoodImageRepository(r.q).ListByGood(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	g.Images = images
	return &g, nil
}

// Exists resuelve goodId.
func (r *GoodRepo) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.q, "goods", id)
}

// Update actualiza los campos editables; seller_id y created_at no cambian.
func (r *GoodRepo) Update(ctx context.Context, g *entity.Good) error {
	return execAffectingOne(ctx, r.q, "update good",
		`UPDATE goods SET name = $2, description = $3, price = $4, category_id = $5, updated_at = $6 WHERE id = $1`,
		g.ID, g.Name, g.Description, g.Price, g.CategoryID, g.UpdatedAt,
	)
}

// List filtra por categoría y vendedor; carga las imágenes en una segunda consulta.
func (r *GoodRepo) List(ctx context.Context, f repository.GoodFilter) ([]*entity.Good, error) {
	var (
		where []string
		args  []any
	)
	if f.CategoryID != "" {
		if !validID(f.CategoryID) {
			return nil, nil
		}
		args = append(args, f.CategoryID)
		where = append(where, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if f.SellerID != "" {
		if !validID(f.SellerID) {
			return nil, nil
		}
		args = append(args, f.SellerID)
		where = append(where, fmt.Sprintf("seller_id = $%d", len(args)))
	}
	query := `SELECT ` + goodColumns + ` FROM goods`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list goods: %w", err)
	}
	defer rows.Close()
	var (
		list []*entity.Good
		ids  []string
	)
	byID := map[string]*entity.Good{}
	for rows.Next() {
		var g entity.Good
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.Price, &g.CategoryID, &g.SellerID, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan good: %w", err)
		}
		list = append(list, &g)
		ids = append(ids, g.ID)
		byID[g.ID] = &g
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	imgRows, err := r.q.Query(ctx,
		`SELECT id, good_id, image, thumbnail, position FROM good_images WHERE good_id::text = ANY($1) ORDER BY position, id`, ids)
	if err != nil {
		return nil, fmt.Errorf("list good images: %w", err)
	}
	defer imgRows.Close()
	for imgRows.Next() {
		var img entity.GoodImage
		if err := imgRows.Scan(&img.ID, &img.GoodID, &img.Image, &img.Thumbnail, &img.Position); err != nil {
			return nil, fmt.Errorf("scan good image: %w", err)
		}
		if g := byID[img.GoodID]; g != nil {
			g.Images = append(g.Images, img)
		}
	}
	return list, imgRows.Err()
}

// Delete elimina el bien; las imágenes caen por ON DELETE CASCADE.
func (r *GoodRepo) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.q, "delete good", `DELETE FROM goods WHERE id = $1`, id)
}

// GoodImageRepo imágenes de un bien.
type GoodImageRepo struct {
	q Querier
}

// NewGoodImageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGoodImageRepository(q Querier) *GoodImageRepo {
	return &GoodImageRepo{q: q}
}

// Create persiste una imagen. good_id debe existir en la misma tx.
func (r *GoodImageRepo) Create(ctx context.Context, img *entity.GoodImage) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO good_images (id, good_id, image, thumbnail, position) VALUES ($1, $2, $3, $4, $5)`,
		img.ID, img.GoodID, img.Image, img.Thumbnail, img.Position,
	)
	if err != nil {
		return fmt.Errorf("insert good image: %w", err)
	}
	return nil
}

// ListByGood lista las imágenes de un bien en el orden en que se subieron.
func (r *GoodImageRepo) ListByGood(ctx context.Context, goodID string) ([]entity.GoodImage, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, good_id, image, thumbnail, position FROM good_images WHERE good_id = $1 ORDER BY position, id`, goodID)
	if err != nil {
		return nil, fmt.Errorf("list good images: %w", err)
	}
	defer rows.Close()
	var list []entity.GoodImage
	for rows.Next() {
		var img entity.GoodImage
		if err := rows.Scan(&img.ID, &img.GoodID, &img.Image, &img.Thumbnail, &img.Position); err != nil {
			return nil, fmt.Errorf("scan good image: %w", err)
		}
		list = append(list, img)
	}
	return list, rows.Err()
}
