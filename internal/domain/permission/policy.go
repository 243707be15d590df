package permission

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// CollectionPolicy decide antes de tener un objeto concreto (listar, crear).
type CollectionPolicy interface {
	HasPermission(p *Principal, op Operation) bool
}

// ObjectPolicy decide sobre un objeto ya cargado.
type ObjectPolicy interface {
	HasObjectPermission(p *Principal, op Operation, obj any) bool
}

// SellerOwnerOrReadOnly permite al staff o al vendedor dueño del objeto.
// Lectura y escritura usan el mismo predicado: un no dueño tampoco puede leer.
type SellerOwnerOrReadOnly struct{}

func (SellerOwnerOrReadOnly) HasPermission(*Principal, Operation) bool { return true }

func (SellerOwnerOrReadOnly) HasObjectPermission(p *Principal, _ Operation, obj any) bool {
	owned, ok := obj.(SellerOwned)
	if !ok {
		return p.Staff()
	}
	return p.Is(owned.GetSellerID()) || p.Staff()
}

// AdminOnly solo staff.
type AdminOnly struct{}

func (AdminOnly) HasPermission(p *Principal, _ Operation) bool {
	return p.Staff()
}

// SellerOrAdmin staff o miembros del grupo seller.
type SellerOrAdmin struct{}

func (SellerOrAdmin) HasPermission(p *Principal, _ Operation) bool {
	return p.Staff() || p.InGroup(entity.GroupSeller)
}

// OwnerOrAdmin staff o el usuario dueño del objeto.
type OwnerOrAdmin struct{}

func (OwnerOrAdmin) HasPermission(*Principal, Operation) bool { return true }

func (OwnerOrAdmin) HasObjectPermission(p *Principal, _ Operation, obj any) bool {
	if p.Staff() {
		return true
	}
	owned, ok := obj.(UserOwned)
	return ok && p.Is(owned.GetUserID())
}

// SellerOnly usuario autenticado con rol seller, staff o grupo seller.
type SellerOnly struct{}

func (SellerOnly) HasPermission(p *Principal, _ Operation) bool {
	return p.IsAuthenticated() &&
		(p.HasRole(entity.RoleSeller) || p.Staff() || p.InGroup(entity.GroupSeller))
}

// ReadOnlyOrSeller lectura libre; escritura para rol seller o staff autenticado.
type ReadOnlyOrSeller struct{}

func (ReadOnlyOrSeller) HasPermission(p *Principal, op Operation) bool {
	if op == OpRead {
		return true
	}
	return p.IsAuthenticated() && (p.HasRole(entity.RoleSeller) || p.Staff())
}

var (
	_ ObjectPolicy     = SellerOwnerOrReadOnly{}
	_ ObjectPolicy     = OwnerOrAdmin{}
	_ CollectionPolicy = AdminOnly{}
	_ CollectionPolicy = SellerOrAdmin{}
	_ CollectionPolicy = SellerOnly{}
	_ CollectionPolicy = ReadOnlyOrSeller{}
)
