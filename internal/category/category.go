package category

import (
	"time"

	internal "github.com/frahmantamala/asset-tracker/internal"
	categoryDatamodel "github.com/frahmantamala/asset-tracker/internal/core/datamodel/category"
)

type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Category) IsActiveCategory() bool {
	return c.IsActive
}

func (c *Category) ToResponse() CategoryResponse {
	return CategoryResponse{
		ID:   c.ID,
		Name: c.Name,
	}
}

func NewCategory(name string) *Category {
	return &Category{
		Name:      name,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
}

func ToDataModel(c *Category) *categoryDatamodel.AssetCategory {
	return &categoryDatamodel.AssetCategory{
		ID:        c.ID,
		Name:      c.Name,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}

func FromDataModel(c *categoryDatamodel.AssetCategory) *Category {
	return &Category{
		ID:        c.ID,
		Name:      c.Name,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}

var (
	ErrCategoryExists   = internal.NewConflictError("Category already exists", internal.ErrCodeCategoryExists)
	ErrCategoryNotFound = internal.NewNotFoundError("Category not found", internal.ErrCodeCategoryNotFound)
)
