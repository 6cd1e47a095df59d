package category

import (
	"strings"

	internal "github.com/frahmantamala/asset-tracker/internal"
)

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type AddCategoryDTO struct {
	Name string `json:"name"`
}

func (dto AddCategoryDTO) Validate() error {
	if strings.TrimSpace(dto.Name) == "" {
		return internal.NewValidationError("category name is required", internal.ErrCodeValidationFailed)
	}
	if len(dto.Name) > 100 {
		return internal.NewValidationError("category name must be at most 100 characters", internal.ErrCodeValidationFailed)
	}
	return nil
}

type AddCategoryResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
	Name    string `json:"name"`
}

type CheckDuplicateDTO struct {
	Name string `json:"name"`
}

func (dto CheckDuplicateDTO) Validate() error {
	if strings.TrimSpace(dto.Name) == "" {
		return internal.NewValidationError("category name is required", internal.ErrCodeValidationFailed)
	}
	return nil
}
