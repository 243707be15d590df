package dto

import "github.com/shopspring/decimal"

// GoodCategoryRequest entrada para crear o reemplazar una categoría.
// parentId ausente o null crea una categoría raíz.
type GoodCategoryRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	ParentID    *string `json:"parentId"`
}

// GoodCategoryResponse salida de una categoría.
type GoodCategoryResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ParentID    *string `json:"parentId"`
}

// GoodImageRequest entrada de una imagen.
type GoodImageRequest struct {
	Image     string `json:"image" validate:"required"`
	Thumbnail string `json:"thumbnail"`
}

// GoodImageResponse salida de una imagen.
type GoodImageResponse struct {
	ID        string `json:"id"`
	Image     string `json:"image"`
	Thumbnail string `json:"thumbnail"`
}

// GoodRequest entrada para crear o reemplazar un bien.
// sellerId e images no existen en la entrada: son de solo lectura.
type GoodRequest struct {
	Name           string           `json:"name" validate:"required"`
	Description    string           `json:"description"`
	Price          *decimal.Decimal `json:"price" validate:"required"`
	CategoryID     string           `json:"categoryId" validate:"required"`
	UploadedImages []string         `json:"uploaded_images"`
}

// GoodResponse salida de un bien.
type GoodResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       decimal.Decimal     `json:"price"`
	CategoryID  string              `json:"categoryId"`
	SellerID    string              `json:"sellerId"`
	Images      []GoodImageResponse `json:"images"`
}

// GoodListResponse lista paginada de bienes.
type GoodListResponse struct {
	Items []GoodResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// GoodNestedResponse proyección reducida usada dentro de la cesta.
type GoodNestedResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}
