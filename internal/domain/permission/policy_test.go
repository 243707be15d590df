package permission_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/permission"
)

const (
	ownerID = "00000000-0000-0000-0000-0000000000a1"
	otherID = "00000000-0000-0000-0000-0000000000b2"
	staffID = "00000000-0000-0000-0000-0000000000c3"
)

var (
	staff       = &permission.Principal{UserID: staffID, IsStaff: true}
	owner       = &permission.Principal{UserID: ownerID, Role: entity.RoleCustomer}
	stranger    = &permission.Principal{UserID: otherID, Role: entity.RoleCustomer}
	roleSeller  = &permission.Principal{UserID: otherID, Role: entity.RoleSeller}
	groupSeller = &permission.Principal{UserID: otherID, Role: entity.RoleCustomer, Groups: []string{entity.GroupSeller}}
	anonymous   = permission.Anonymous()
)

var ops = []permission.Operation{permission.OpRead, permission.OpWrite}

func TestOperationFromMethod(t *testing.T) {
	assert.Equal(t, permission.OpRead, permission.OperationFromMethod(http.MethodGet))
	assert.Equal(t, permission.OpRead, permission.OperationFromMethod(http.MethodHead))
	assert.Equal(t, permission.OpRead, permission.OperationFromMethod(http.MethodOptions))
	assert.Equal(t, permission.OpWrite, permission.OperationFromMethod(http.MethodPost))
	assert.Equal(t, permission.OpWrite, permission.OperationFromMethod(http.MethodPut))
	assert.Equal(t, permission.OpWrite, permission.OperationFromMethod(http.MethodPatch))
	assert.Equal(t, permission.OpWrite, permission.OperationFromMethod(http.MethodDelete))
}

// El no dueño queda denegado también en lectura: no hay excepción de solo lectura.
func TestSellerOwnerOrReadOnly_Matriz(t *testing.T) {
	policy := permission.SellerOwnerOrReadOnly{}
	good := &entity.Good{ID: "g1", SellerID: ownerID}

	for _, op := range ops {
		t.Run(op.String(), func(t *testing.T) {
			assert.True(t, policy.HasObjectPermission(staff, op, good), "staff siempre pasa")
			assert.True(t, policy.HasObjectPermission(owner, op, good), "el vendedor dueño pasa")
			assert.False(t, policy.HasObjectPermission(stranger, op, good), "el no dueño no pasa")
			assert.False(t, policy.HasObjectPermission(anonymous, op, good), "anónimo no pasa")
		})
	}
}

func TestSellerOwnerOrReadOnly_LecturaYEscrituraDecidenIgual(t *testing.T) {
	policy := permission.SellerOwnerOrReadOnly{}
	good := &entity.Good{ID: "g1", SellerID: ownerID}

	for _, p := range []*permission.Principal{staff, owner, stranger, roleSeller, groupSeller, anonymous} {
		assert.Equal(t,
			policy.HasObjectPermission(p, permission.OpRead, good),
			policy.HasObjectPermission(p, permission.OpWrite, good))
	}
}

func TestSellerOwnerOrReadOnly_ObjetoSinVendedor(t *testing.T) {
	policy := permission.SellerOwnerOrReadOnly{}
	recipient := &entity.Recipient{UserID: ownerID}

	assert.False(t, policy.HasObjectPermission(owner, permission.OpRead, recipient))
	assert.True(t, policy.HasObjectPermission(staff, permission.OpWrite, recipient))
}

func TestSellerOwnerOrReadOnly_VendedorVacioNoCoincideConAnonimo(t *testing.T) {
	policy := permission.SellerOwnerOrReadOnly{}
	good := &entity.Good{ID: "g1"}
	empty := &permission.Principal{}

	assert.False(t, policy.HasObjectPermission(empty, permission.OpRead, good))
	assert.False(t, policy.HasObjectPermission(anonymous, permission.OpWrite, good))
}

func TestAdminOnly(t *testing.T) {
	policy := permission.AdminOnly{}
	for _, op := range ops {
		assert.True(t, policy.HasPermission(staff, op))
		assert.False(t, policy.HasPermission(owner, op))
		assert.False(t, policy.HasPermission(roleSeller, op))
		assert.False(t, policy.HasPermission(anonymous, op))
	}
}

func TestSellerOrAdmin(t *testing.T) {
	policy := permission.SellerOrAdmin{}
	for _, op := range ops {
		assert.True(t, policy.HasPermission(staff, op))
		assert.True(t, policy.HasPermission(groupSeller, op))
		// el rol sin el grupo no alcanza en esta política
		assert.False(t, policy.HasPermission(roleSeller, op))
		assert.False(t, policy.HasPermission(stranger, op))
		assert.False(t, policy.HasPermission(anonymous, op))
	}
}

func TestOwnerOrAdmin_Matriz(t *testing.T) {
	policy := permission.OwnerOrAdmin{}
	objects := []any{
		&entity.Recipient{UserID: ownerID},
		&entity.Checkout{UserID: ownerID},
		&entity.BasketItem{UserID: ownerID},
	}
	for _, obj := range objects {
		for _, op := range ops {
			assert.True(t, policy.HasObjectPermission(staff, op, obj))
			assert.True(t, policy.HasObjectPermission(owner, op, obj))
			assert.False(t, policy.HasObjectPermission(stranger, op, obj))
			assert.False(t, policy.HasObjectPermission(anonymous, op, obj))
		}
	}
}

func TestOwnerOrAdmin_ObjetoSinDueno(t *testing.T) {
	policy := permission.OwnerOrAdmin{}
	good := &entity.Good{SellerID: ownerID}

	assert.False(t, policy.HasObjectPermission(owner, permission.OpRead, good))
	assert.True(t, policy.HasObjectPermission(staff, permission.OpRead, good))
}

func TestSellerOnly(t *testing.T) {
	policy := permission.SellerOnly{}
	for _, op := range ops {
		assert.True(t, policy.HasPermission(staff, op))
		assert.True(t, policy.HasPermission(roleSeller, op))
		assert.True(t, policy.HasPermission(groupSeller, op))
		assert.False(t, policy.HasPermission(stranger, op))
		assert.False(t, policy.HasPermission(anonymous, op))
	}
}

func TestReadOnlyOrSeller(t *testing.T) {
	policy := permission.ReadOnlyOrSeller{}

	for _, p := range []*permission.Principal{staff, owner, stranger, roleSeller, groupSeller, anonymous} {
		assert.True(t, policy.HasPermission(p, permission.OpRead), "lectura siempre permitida")
	}

	assert.True(t, policy.HasPermission(staff, permission.OpWrite))
	assert.True(t, policy.HasPermission(roleSeller, permission.OpWrite))
	// el grupo no cuenta para escritura en esta política
	assert.False(t, policy.HasPermission(groupSeller, permission.OpWrite))
	assert.False(t, policy.HasPermission(stranger, permission.OpWrite))
	assert.False(t, policy.HasPermission(anonymous, permission.OpWrite))
}

func TestPrincipal_NilSeguro(t *testing.T) {
	var p *permission.Principal
	assert.False(t, p.IsAuthenticated())
	assert.False(t, p.Staff())
	assert.False(t, p.InGroup(entity.GroupSeller))
	assert.False(t, p.HasRole(entity.RoleSeller))
	assert.False(t, p.Is(""))
}
