package mapper

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// CategoryMapper mapea GoodCategory; parentId se resuelve contra todas las categorías.
type CategoryMapper struct {
	Categories Resolver
}

// ToResponse expone parentId null para las raíces.
func (m CategoryMapper) ToResponse(c *entity.GoodCategory) dto.GoodCategoryResponse {
	out := dto.GoodCategoryResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
	}
	if !c.IsRoot() {
		parent := *c.ParentID
		out.ParentID = &parent
	}
	return out
}

// FromRequest valida la entrada y resuelve parentId si viene informado.
func (m CategoryMapper) FromRequest(ctx context.Context, in dto.GoodCategoryRequest) (*entity.GoodCategory, error) {
	verr := &domain.ValidationError{}
	required("title", in.Title, verr)
	c := &entity.GoodCategory{Title: in.Title, Description: in.Description}
	if in.ParentID != nil && *in.ParentID != "" {
		if err := resolveOptionalRef(ctx, m.Categories, "parentId", *in.ParentID, verr); err != nil {
			return nil, err
		}
		parent := *in.ParentID
		c.ParentID = &parent
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return c, nil
}
