package postgres

import (
	"errors"

	"github.com/frahmantamala/asset-tracker/internal/category"
	categoryDatamodel "github.com/frahmantamala/asset-tracker/internal/core/datamodel/category"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) category.RepositoryAPI {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetActive() ([]*category.Category, error) {
	var rows []*categoryDatamodel.AssetCategory
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	categories := make([]*category.Category, len(rows))
	for i, row := range rows {
		categories[i] = category.FromDataModel(row)
	}
	return categories, nil
}

// GetActiveByName matches case-insensitively among active rows; returns
// nil when absent.
func (r *CategoryRepository) GetActiveByName(name string) (*category.Category, error) {
	var row categoryDatamodel.AssetCategory
	err := r.db.Where("LOWER(name) = LOWER(?) AND is_active = ?", name, true).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return category.FromDataModel(&row), nil
}

func (r *CategoryRepository) Create(c *category.Category) error {
	row := category.ToDataModel(c)
	if err := r.db.Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return category.ErrCategoryExists
		}
		return err
	}
	c.ID = row.ID
	return nil
}

func (r *CategoryRepository) NameByID(id int64) (string, bool, error) {
	var row categoryDatamodel.AssetCategory
	err := r.db.Select("name").Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return row.Name, true, nil
}
