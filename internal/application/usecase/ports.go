package usecase

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/permission"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad de las escrituras con efectos en varias tablas.
type TxRunner interface {
	// RunCatalog bien + imágenes en una sola escritura lógica.
	RunCatalog(ctx context.Context, fn func(
		goods repository.GoodRepository,
		images repository.GoodImageRepository,
	) error) error
	// RunCheckout checkout + items + vaciado de la cesta.
	RunCheckout(ctx context.Context, fn func(
		checkouts repository.CheckoutRepository,
		basket repository.BasketRepository,
	) error) error
	// RunSettlement estado de la transacción + estado del checkout.
	RunSettlement(ctx context.Context, fn func(
		transactions repository.TransactionRepository,
		checkouts repository.CheckoutRepository,
	) error) error
}

// authorizeObject consulta la política de objeto; denegar es domain.ErrForbidden.
func authorizeObject(policy permission.ObjectPolicy, p *permission.Principal, op permission.Operation, obj any) error {
	if !policy.HasObjectPermission(p, op, obj) {
		return domain.ErrForbidden
	}
	return nil
}

// requireAuthenticated para operaciones que toman el dueño del principal.
func requireAuthenticated(p *permission.Principal) error {
	if !p.IsAuthenticated() {
		return domain.ErrUnauthorized
	}
	return nil
}

// ownerFilter staff ve todo (filtro vacío); el resto solo lo propio.
func ownerFilter(p *permission.Principal) string {
	if p.Staff() {
		return ""
	}
	return p.UserID
}
