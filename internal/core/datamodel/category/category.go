package category

import "time"

// AssetCategory groups assets and supplies the asset-code prefix.
// Rows are soft-deactivated, never deleted; name uniqueness is enforced
// case-insensitively among active rows.
type AssetCategory struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;not null"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (AssetCategory) TableName() string {
	return "categories"
}
