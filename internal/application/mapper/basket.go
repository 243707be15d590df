package mapper

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ReasonMinCount motivo para cantidades menores a 1.
const ReasonMinCount = "Ensure this value is greater than or equal to 1."

// BasketMapper mapea BasketItem; goodId se resuelve contra todos los bienes.
type BasketMapper struct {
	Goods Resolver
}

// ToResponse incluye la proyección reducida del bien si está cargado.
func (m BasketMapper) ToResponse(item *entity.BasketItem) dto.BasketItemResponse {
	return dto.BasketItemResponse{
		ID:     item.ID,
		GoodID: item.GoodID,
		Good:   ToNestedResponse(item.Good),
		Count:  item.Count,
	}
}

// FromRequest valida goodId y count.
func (m BasketMapper) FromRequest(ctx context.Context, in dto.BasketItemRequest) (*entity.BasketItem, error) {
	verr := &domain.ValidationError{}
	if err := resolveRef(ctx, m.Goods, "goodId", in.GoodID, verr); err != nil {
		return nil, err
	}
	switch {
	case in.Count == nil:
		verr.Add("count", domain.ReasonRequired)
	case *in.Count < 1:
		verr.Add("count", ReasonMinCount)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return &entity.BasketItem{GoodID: in.GoodID, Count: *in.Count}, nil
}
