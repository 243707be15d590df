package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/mapper"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías del catálogo.
type CategoryUseCase struct {
	repo   repository.CategoryRepository
	mapper mapper.CategoryMapper
}

// NewCategoryUseCase construye el caso de uso. parentId se resuelve contra el mismo repositorio.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, mapper: mapper.CategoryMapper{Categories: repo}}
}

// Create crea una categoría (raíz si no trae parentId).
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.GoodCategoryRequest) (*dto.GoodCategoryResponse, error) {
	category, err := uc.mapper.FromRequest(ctx, in)
	if err != nil {
		return nil, err
	}
	category.ID = uuid.New().String()
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	out := uc.mapper.ToResponse(category)
	return &out, nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.GoodCategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	out := uc.mapper.ToResponse(category)
	return &out, nil
}

// List lista categorías con paginación.
func (uc *CategoryUseCase) List(ctx context.Context, limit, offset int) ([]dto.GoodCategoryResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GoodCategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, uc.mapper.ToResponse(c))
	}
	return items, nil
}

// Update reemplaza una categoría. Una categoría no puede ser su propio padre.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.GoodCategoryRequest) (*dto.GoodCategoryResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if in.ParentID != nil && *in.ParentID == id {
		return nil, domain.NewValidationError("parentId", "A category cannot be its own parent.")
	}
	category, err := uc.mapper.FromRequest(ctx, in)
	if err != nil {
		return nil, err
	}
	category.ID = id
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	out := uc.mapper.ToResponse(category)
	return &out, nil
}

// Delete elimina una categoría por ID.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}
