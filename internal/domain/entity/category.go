package entity

// GoodCategory representa una categoría del catálogo (árbol opcional).
type GoodCategory struct {
	ID          string
	Title       string
	Description string
	ParentID    *string // nil si es raíz
}

// IsRoot indica si la categoría no tiene padre.
func (c *GoodCategory) IsRoot() bool {
	return c.ParentID == nil || *c.ParentID == ""
}
