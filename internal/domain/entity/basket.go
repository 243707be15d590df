package entity

// BasketItem línea de la cesta de un usuario. Good se carga solo para lectura.
type BasketItem struct {
	ID     string
	UserID string
	GoodID string
	Good   *Good
	Count  int
}

// GetUserID expone el dueño para las políticas de permisos.
func (b *BasketItem) GetUserID() string { return b.UserID }
