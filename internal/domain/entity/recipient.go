package entity

// Recipient destinatario de envío; pertenece a un usuario.
type Recipient struct {
	ID         string
	UserID     string
	FirstName  string
	LastName   string
	MiddleName string
	Address    string
	ZipCode    string
	Phone      string
}

// GetUserID expone el dueño para las políticas de permisos.
func (r *Recipient) GetUserID() string { return r.UserID }
