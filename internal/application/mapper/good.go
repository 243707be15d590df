package mapper

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ImageToResponse mapea una imagen sin renombrar campos.
func ImageToResponse(img entity.GoodImage) dto.GoodImageResponse {
	return dto.GoodImageResponse{ID: img.ID, Image: img.Image, Thumbnail: img.Thumbnail}
}

// ImageFromRequest valida una imagen de entrada.
func ImageFromRequest(in dto.GoodImageRequest) (entity.GoodImage, error) {
	verr := &domain.ValidationError{}
	required("image", in.Image, verr)
	if err := verr.OrNil(); err != nil {
		return entity.GoodImage{}, err
	}
	return entity.GoodImage{Image: in.Image, Thumbnail: in.Thumbnail}, nil
}

// GoodMapper mapea Good. categoryId es escribible y se resuelve; sellerId e images
// son de solo lectura; uploaded_images es de solo escritura.
type GoodMapper struct {
	Categories Resolver
}

// ToResponse serializa el bien con sus imágenes anidadas.
func (m GoodMapper) ToResponse(g *entity.Good) dto.GoodResponse {
	images := make([]dto.GoodImageResponse, 0, len(g.Images))
	for _, img := range g.Images {
		images = append(images, ImageToResponse(img))
	}
	return dto.GoodResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Price:       g.Price,
		CategoryID:  g.CategoryID,
		SellerID:    g.SellerID,
		Images:      images,
	}
}

// FromRequest construye el bien sin vendedor: lo asigna quien lo crea.
// Cada payload de uploaded_images queda como una GoodImage pendiente de persistir.
func (m GoodMapper) FromRequest(ctx context.Context, in dto.GoodRequest) (*entity.Good, error) {
	verr := &domain.ValidationError{}
	required("name", in.Name, verr)
	if in.Price == nil {
		verr.Add("price", domain.ReasonRequired)
	}
	if err := resolveRef(ctx, m.Categories, "categoryId", in.CategoryID, verr); err != nil {
		return nil, err
	}
	images := make([]entity.GoodImage, 0, len(in.UploadedImages))
	for _, raw := range in.UploadedImages {
		if raw == "" {
			verr.Add("uploaded_images", domain.ReasonNull)
			continue
		}
		images = append(images, entity.GoodImage{Image: raw})
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return &entity.Good{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		CategoryID:  in.CategoryID,
		Images:      images,
	}, nil
}

// ToNestedResponse proyección reducida (sin vendedor, categoría ni imágenes).
func ToNestedResponse(g *entity.Good) *dto.GoodNestedResponse {
	if g == nil {
		return nil
	}
	return &dto.GoodNestedResponse{
		ID:          g.ID,
		Name:        g.Name,
		Price:       g.Price,
		Description: g.Description,
	}
}
