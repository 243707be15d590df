package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.RecipientRepository = (*RecipientRepo)(nil)

const recipientColumns = `id, user_id, first_name, last_name, middle_name, address, zip_code, phone`

// RecipientRepo destinatarios de envío de cada usuario.
type RecipientRepo struct {
	q Querier
}

// NewRecipientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecipientRepository(q Querier) *RecipientRepo {
	return &RecipientRepo{q: q}
}

func scanRecipient(row pgx.Row) (*entity.Recipient, error) {
	var rc entity.Recipient
	err := row.Scan(&rc.ID, &rc.UserID, &rc.FirstName, &rc.LastName, &rc.MiddleName, &rc.Address, &rc.ZipCode, &rc.Phone)
	if err != nil {
		return nil, err
	}
	return &rc, nil
}

// Create persiste un destinatario.
func (r *RecipientRepo) Create(ctx context.Context, rc *entity.Recipient) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO recipients (`+recipientColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rc.ID, rc.UserID, rc.FirstName, rc.LastName, rc.MiddleName, rc.Address, rc.ZipCode, rc.Phone,
	)
	if err != nil {
		return fmt.Errorf("insert recipient: %w", err)
	}
	return nil
}

// GetByID obtiene un destinatario; nil si no existe.
func (r *RecipientRepo) GetByID(ctx context.Context, id string) (*entity.Recipient, error) {
	if !validID(id) {
		return nil, nil
	}
	rc, err := scanRecipient(r.q.QueryRow(ctx, `SELECT `+recipientColumns+` FROM recipients WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipient: %w", err)
	}
	return rc, nil
}

// Exists resuelve recipientId.
func (r *RecipientRepo) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.q, "recipients", id)
}

// Update reemplaza los datos de contacto; user_id no cambia.
func (r *RecipientRepo) Update(ctx context.Context, rc *entity.Recipient) error {
	return execAffectingOne(ctx, r.q, "update recipient", `
		UPDATE recipients SET first_name = $2, last_name = $3, middle_name = $4, address = $5, zip_code = $6, phone = $7
		WHERE id = $1`,
		rc.ID, rc.FirstName, rc.LastName, rc.MiddleName, rc.Address, rc.ZipCode, rc.Phone,
	)
}

// ListByUser lista los destinatarios del usuario; userID vacío lista todos.
func (r *RecipientRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Recipient, error) {
	query := `SELECT ` + recipientColumns + ` FROM recipients`
	var args []any
	if userID != "" {
		if !validID(userID) {
			return nil, nil
		}
		query += ` WHERE user_id = $1`
		args = append(args, userID)
	}
	query += ` ORDER BY last_name, first_name`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Recipient
	for rows.Next() {
		rc, err := scanRecipient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipient: %w", err)
		}
		list = append(list, rc)
	}
	return list, rows.Err()
}

// Delete elimina un destinatario. Si un checkout lo referencia devuelve domain.ErrConflict.
func (r *RecipientRepo) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.q, "delete recipient", `DELETE FROM recipients WHERE id = $1`, id)
}
