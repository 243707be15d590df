// Package mapper traduce entre entidades de dominio y su representación en el wire.
// Las relaciones se exponen con sufijo "Id" (categoryId, sellerId, ...) y se resuelven
// contra su colección mediante un Resolver inyectado.
package mapper

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain"
)

// Resolver responde si existe un registro con ese id en una colección.
// Los repositorios lo implementan con su método Exists.
type Resolver interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// ResolverFunc adapta una función a Resolver.
type ResolverFunc func(ctx context.Context, id string) (bool, error)

func (f ResolverFunc) Exists(ctx context.Context, id string) (bool, error) { return f(ctx, id) }

// resolveRef valida una clave foránea requerida: vacía => campo requerido, inexistente => referencia inválida.
// Solo devuelve error ante fallos de infraestructura; los de validación quedan en verr.
func resolveRef(ctx context.Context, r Resolver, field, id string, verr *domain.ValidationError) error {
	if id == "" {
		verr.Add(field, domain.ReasonRequired)
		return nil
	}
	return resolveOptionalRef(ctx, r, field, id, verr)
}

// resolveOptionalRef valida una clave foránea presente.
func resolveOptionalRef(ctx context.Context, r Resolver, field, id string, verr *domain.ValidationError) error {
	ok, err := r.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("resolver %s: %w", field, err)
	}
	if !ok {
		verr.Add(field, domain.ReasonDoesNotExist(id))
	}
	return nil
}

func required(field, value string, verr *domain.ValidationError) {
	if value == "" {
		verr.Add(field, domain.ReasonRequired)
	}
}
