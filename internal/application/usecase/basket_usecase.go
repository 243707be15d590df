package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/mapper"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/permission"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// BasketUseCase cesta del usuario autenticado.
type BasketUseCase struct {
	repo   repository.BasketRepository
	mapper mapper.BasketMapper
	policy permission.ObjectPolicy
}

// NewBasketUseCase construye el caso de uso; goodId se resuelve contra goods.
func NewBasketUseCase(repo repository.BasketRepository, goods repository.GoodRepository) *BasketUseCase {
	return &BasketUseCase{
		repo:   repo,
		mapper: mapper.BasketMapper{Goods: goods},
		policy: permission.OwnerOrAdmin{},
	}
}

// Add agrega un bien; si ya estaba en la cesta suma la cantidad.
func (uc *BasketUseCase) Add(ctx context.Context, p *permission.Principal, in dto.BasketItemRequest) (*dto.BasketItemResponse, error) {
	if err := requireAuthenticated(p); err != nil {
		return nil, err
	}
	item, err := uc.mapper.FromRequest(ctx, in)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByUserAndGood(ctx, p.UserID, item.GoodID)
	if err != nil {
		return nil, err
	}
	id := uuid.New().String()
	if existing != nil {
		id = existing.ID
		if err := uc.repo.UpdateCount(ctx, id, existing.Count+item.Count); err != nil {
			return nil, err
		}
	} else {
		item.ID = id
		item.UserID = p.UserID
		if err := uc.repo.Create(ctx, item); err != nil {
			return nil, err
		}
	}
	return uc.get(ctx, id)
}

// List devuelve la cesta del principal.
func (uc *BasketUseCase) List(ctx context.Context, p *permission.Principal) ([]dto.BasketItemResponse, error) {
	if err := requireAuthenticated(p); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BasketItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, uc.mapper.ToResponse(it))
	}
	return items, nil
}

// SetCount fija la cantidad de una línea.
func (uc *BasketUseCase) SetCount(ctx context.Context, p *permission.Principal, id string, count int) (*dto.BasketItemResponse, error) {
	if count < 1 {
		return nil, domain.NewValidationError("count", mapper.ReasonMinCount)
	}
	if _, err := uc.load(ctx, p, id); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateCount(ctx, id, count); err != nil {
		return nil, err
	}
	return uc.get(ctx, id)
}

// Remove quita una línea de la cesta.
func (uc *BasketUseCase) Remove(ctx context.Context, p *permission.Principal, id string) error {
	if _, err := uc.load(ctx, p, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *BasketUseCase) get(ctx context.Context, id string) (*dto.BasketItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	out := uc.mapper.ToResponse(item)
	return &out, nil
}

func (uc *BasketUseCase) load(ctx context.Context, p *permission.Principal, id string) (*entity.BasketItem, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if err := authorizeObject(uc.policy, p, permission.OpWrite, item); err != nil {
		return nil, err
	}
	return item, nil
}
