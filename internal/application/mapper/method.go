package mapper

import (
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

func PaymentMethodToResponse(m *entity.PaymentMethod) dto.PaymentMethodResponse {
	return dto.PaymentMethodResponse{ID: m.ID, Title: m.Title, Description: m.Description, Logo: m.Logo}
}

func PaymentMethodFromRequest(in dto.PaymentMethodRequest) (*entity.PaymentMethod, error) {
	verr := &domain.ValidationError{}
	required("title", in.Title, verr)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return &entity.PaymentMethod{Title: in.Title, Description: in.Description, Logo: in.Logo}, nil
}

func DeliveryMethodToResponse(m *entity.DeliveryMethod) dto.DeliveryMethodResponse {
	return dto.DeliveryMethodResponse{ID: m.ID, Title: m.Title, Description: m.Description}
}

func DeliveryMethodFromRequest(in dto.DeliveryMethodRequest) (*entity.DeliveryMethod, error) {
	verr := &domain.ValidationError{}
	required("title", in.Title, verr)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return &entity.DeliveryMethod{Title: in.Title, Description: in.Description}, nil
}
