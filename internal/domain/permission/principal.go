// Package permission contiene las políticas de acceso de la tienda.
// Cada política es una función pura sobre (principal, operación, objeto opcional):
// no consulta estado global ni guarda estado entre llamadas.
package permission

import "net/http"

// Operation clasifica la petición en lectura o escritura.
type Operation int

const (
	OpRead Operation = iota
	OpWrite
)

func (o Operation) String() string {
	if o == OpRead {
		return "read"
	}
	return "write"
}

// OperationFromMethod mapea el método HTTP: GET, HEAD y OPTIONS son lectura.
func OperationFromMethod(method string) Operation {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return OpRead
	default:
		return OpWrite
	}
}

// Principal es quien hace la petición. Un *Principal nil es el usuario anónimo.
type Principal struct {
	UserID  string
	IsStaff bool
	Role    string
	Groups  []string
}

// Anonymous devuelve el principal anónimo.
func Anonymous() *Principal { return nil }

// IsAuthenticated indica si hay un usuario identificado.
func (p *Principal) IsAuthenticated() bool {
	return p != nil && p.UserID != ""
}

// Staff indica si el principal es administrador.
func (p *Principal) Staff() bool {
	return p != nil && p.IsStaff
}

// HasRole compara la etiqueta de rol.
func (p *Principal) HasRole(role string) bool {
	return p != nil && p.Role == role
}

// InGroup indica pertenencia al grupo dado.
func (p *Principal) InGroup(name string) bool {
	if p == nil {
		return false
	}
	for _, g := range p.Groups {
		if g == name {
			return true
		}
	}
	return false
}

// Is compara la identidad con un id de dueño. Un id vacío nunca coincide.
func (p *Principal) Is(userID string) bool {
	return p.IsAuthenticated() && userID != "" && p.UserID == userID
}

// SellerOwned objetos con un vendedor dueño (Good).
type SellerOwned interface {
	GetSellerID() string
}

// UserOwned objetos con un usuario dueño (Recipient, Checkout, BasketItem).
type UserOwned interface {
	GetUserID() string
}
