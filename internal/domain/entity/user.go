package entity

import "time"

// Roles válidos para User.
const (
	RoleSeller   = "seller"
	RoleCustomer = "customer"
)

// Estados de User.
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

// GroupSeller es el grupo que habilita la publicación de bienes sin necesidad del rol.
const GroupSeller = "seller"

// User representa un usuario de la tienda (comprador, vendedor o staff).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string   // seller, customer
	IsStaff      bool     // administrador de la plataforma
	Groups       []string // membresías (ej. "seller")
	Status       string   // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
