package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Good representa un bien publicado por un vendedor.
// SellerID se asigna al crear (desde la identidad de la petición) y no cambia después.
type Good struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  string
	SellerID    string
	Images      []GoodImage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GetSellerID expone el vendedor dueño para las políticas de permisos.
func (g *Good) GetSellerID() string { return g.SellerID }

// GoodImage imagen asociada a un bien.
type GoodImage struct {
	ID        string
	GoodID    string
	Image     string // referencia al blob (URL o clave de almacenamiento)
	Thumbnail string
	Position  int // orden dentro de uploaded_images
}
