package mapper

import (
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// RecipientToResponse expone userId como solo lectura.
func RecipientToResponse(r *entity.Recipient) dto.RecipientResponse {
	return dto.RecipientResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		MiddleName: r.MiddleName,
		Address:    r.Address,
		ZipCode:    r.ZipCode,
		Phone:      r.Phone,
	}
}

// RecipientFromRequest no asigna UserID: sale del contexto de la petición.
func RecipientFromRequest(in dto.RecipientRequest) (*entity.Recipient, error) {
	verr := &domain.ValidationError{}
	required("first_name", in.FirstName, verr)
	required("last_name", in.LastName, verr)
	required("address", in.Address, verr)
	required("zip_code", in.ZipCode, verr)
	required("phone", in.Phone, verr)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return &entity.Recipient{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		MiddleName: in.MiddleName,
		Address:    in.Address,
		ZipCode:    in.ZipCode,
		Phone:      in.Phone,
	}, nil
}
