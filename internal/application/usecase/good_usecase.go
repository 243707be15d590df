package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/mapper"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/permission"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// GoodUseCase casos de uso del catálogo de bienes.
// El vendedor se toma del principal al crear y nunca del cuerpo de la petición.
type GoodUseCase struct {
	repo   repository.GoodRepository
	tx     TxRunner
	mapper mapper.GoodMapper
	policy permission.ObjectPolicy
}

// NewGoodUseCase construye el caso de uso; categoryId se resuelve contra categories.
func NewGoodUseCase(repo repository.GoodRepository, categories repository.CategoryRepository, tx TxRunner) *GoodUseCase {
	return &GoodUseCase{
		repo:   repo,
		tx:     tx,
		mapper: mapper.GoodMapper{Categories: categories},
		policy: permission.SellerOwnerOrReadOnly{},
	}
}

// Create crea el bien y una GoodImage por cada uploaded_images, todo en una transacción.
func (uc *GoodUseCase) Create(ctx context.Context, p *permission.Principal, in dto.GoodRequest) (*dto.GoodResponse, error) {
	if err := requireAuthenticated(p); err != nil {
		return nil, err
	}
	good, err := uc.mapper.FromRequest(ctx, in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	good.ID = uuid.New().String()
	good.SellerID = p.UserID
	good.CreatedAt = now
	good.UpdatedAt = now
	for i := range good.Images {
		good.Images[i].ID = uuid.New().String()
		good.Images[i].GoodID = good.ID
		good.Images[i].Position = i
	}

	err = uc.tx.RunCatalog(ctx, func(goods repository.GoodRepository, images repository.GoodImageRepository) error {
		if err := goods.Create(ctx, good); err != nil {
			return err
		}
		for i := range good.Images {
			if err := images.Create(ctx, &good.Images[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := uc.mapper.ToResponse(good)
	return &out, nil
}

// GetByID obtiene un bien con sus imágenes.
func (uc *GoodUseCase) GetByID(ctx context.Context, id string) (*dto.GoodResponse, error) {
	good, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if good == nil {
		return nil, domain.ErrNotFound
	}
	out := uc.mapper.ToResponse(good)
	return &out, nil
}

// List lista bienes, opcionalmente filtrados por categoría.
func (uc *GoodUseCase) List(ctx context.Context, filter repository.GoodFilter) (*dto.GoodListResponse, error) {
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GoodResponse, 0, len(list))
	for _, g := range list {
		items = append(items, uc.mapper.ToResponse(g))
	}
	return &dto.GoodListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// ListMine lista los bienes del vendedor autenticado; el staff ve todos.
func (uc *GoodUseCase) ListMine(ctx context.Context, p *permission.Principal, limit, offset int) (*dto.GoodListResponse, error) {
	if err := requireAuthenticated(p); err != nil {
		return nil, err
	}
	return uc.List(ctx, repository.GoodFilter{SellerID: ownerFilter(p), Limit: limit, Offset: offset})
}

// Update reemplaza los datos del bien. Vendedor e imágenes no cambian; uploaded_images se ignora.
func (uc *GoodUseCase) Update(ctx context.Context, p *permission.Principal, id string, in dto.GoodRequest) (*dto.GoodResponse, error) {
	current, err := uc.load(ctx, p, id)
	if err != nil {
		return nil, err
	}
	in.UploadedImages = nil
	good, err := uc.mapper.FromRequest(ctx, in)
	if err != nil {
		return nil, err
	}
	good.ID = current.ID
	good.SellerID = current.SellerID
	good.Images = current.Images
	good.CreatedAt = current.CreatedAt
	good.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, good); err != nil {
		return nil, err
	}
	out := uc.mapper.ToResponse(good)
	return &out, nil
}

// Delete elimina el bien (las imágenes caen en cascada en la BD).
func (uc *GoodUseCase) Delete(ctx context.Context, p *permission.Principal, id string) error {
	if _, err := uc.load(ctx, p, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// load obtiene el bien y aplica la política de objeto para escritura.
func (uc *GoodUseCase) load(ctx context.Context, p *permission.Principal, id string) (*entity.Good, error) {
	good, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if good == nil {
		return nil, domain.ErrNotFound
	}
	if err := authorizeObject(uc.policy, p, permission.OpWrite, good); err != nil {
		return nil, err
	}
	return good, nil
}
