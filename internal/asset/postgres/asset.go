package postgres

import (
	"errors"
	"time"

	"github.com/frahmantamala/asset-tracker/internal/asset"
	assetDatamodel "github.com/frahmantamala/asset-tracker/internal/core/datamodel/asset"
	"gorm.io/gorm"
)

// AssetRepository implements the asset.Repository interface using GORM.
// Every transition method is one transaction; status changes are conditional
// updates guarded by the expected prior status so concurrent callers cannot
// both pass a precondition check and commit.
type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) asset.Repository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) GetByCode(code string) (*asset.Asset, error) {
	var a assetDatamodel.Asset
	err := r.db.Where("asset_code = ?", code).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, asset.ErrAssetNotFound
		}
		return nil, err
	}
	return asset.FromDataModel(&a), nil
}

func (r *AssetRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&assetDatamodel.Asset{}).Where("asset_code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *AssetRepository) List() ([]asset.ListItem, error) {
	var items []asset.ListItem
	err := r.db.Raw(`
		SELECT
			a.asset_code,
			c.name AS category,
			a.type,
			a.brand,
			a.model,
			a.serial_number,
			a.status,
			a.location,
			a.warranty_end_date,
			aa.employee_id,
			e.name AS employee_name
		FROM assets a
		LEFT JOIN categories c ON a.category_id = c.id
		LEFT JOIN asset_assignments aa
			ON aa.asset_code = a.asset_code AND aa.is_active = TRUE
		LEFT JOIN employees e ON e.employee_id = aa.employee_id
		ORDER BY a.created_at DESC`).Scan(&items).Error
	return items, err
}

func (r *AssetRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&assetDatamodel.Asset{}).Count(&count).Error
	return count, err
}

func (r *AssetRepository) Detail(code string) (*asset.Detail, error) {
	var d asset.Detail
	res := r.db.Raw(`
		SELECT
			a.asset_code,
			c.name AS category,
			a.type,
			a.brand,
			a.model,
			a.serial_number,
			a.status,
			a.location,
			a.warranty_applicable,
			a.warranty_end_date,
			a.remarks,
			aa.employee_id,
			e.name AS employee_name,
			e.email AS employee_email,
			e.location AS employee_location
		FROM assets a
		LEFT JOIN categories c ON a.category_id = c.id
		LEFT JOIN asset_assignments aa
			ON aa.asset_code = a.asset_code AND aa.is_active = TRUE
		LEFT JOIN employees e ON e.employee_id = aa.employee_id
		WHERE a.asset_code = ?`, code).Scan(&d)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, asset.ErrAssetNotFound
	}
	return &d, nil
}

// Create inserts a new asset; the asset_code primary key converts a
// duplicate-code race into a retryable conflict.
func (r *AssetRepository) Create(a *asset.Asset) error {
	err := r.db.Create(asset.ToDataModel(a)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return asset.ErrDuplicateAssetCode
		}
		return err
	}
	return nil
}

// UpdateDetails updates the mutable fields in place. When the asset sat in
// repair, the edit also forces it back to stock and closes the repair row.
func (r *AssetRepository) UpdateDetails(code string, dto asset.CreateAssetDTO, closeRepair bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"category_id":   dto.CategoryID,
			"type":          dto.Type,
			"brand":         dto.Brand,
			"model":         dto.Model,
			"serial_number": dto.SerialNumber,
			"location":      dto.Location,
			"updated_at":    time.Now(),
		}
		if closeRepair {
			updates["status"] = asset.StatusInStock

			if err := closeActiveRepairs(tx, code); err != nil {
				return err
			}
		}

		res := tx.Model(&assetDatamodel.Asset{}).
			Where("asset_code = ?", code).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return asset.ErrAssetNotFound
		}
		return nil
	})
}

func (r *AssetRepository) Assign(code, employeeID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&assetDatamodel.Asset{}).
			Where("asset_code = ? AND status = ?", code, asset.StatusInStock).
			Updates(map[string]interface{}{"status": asset.StatusAssigned, "updated_at": time.Now()})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return asset.ErrAssetNotInStock
		}

		return tx.Create(&assetDatamodel.Assignment{
			AssetCode:    code,
			EmployeeID:   employeeID,
			AssignedDate: time.Now(),
			IsActive:     true,
		}).Error
	})
}

func (r *AssetRepository) Return(code, remarks string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		closed, err := closeActiveAssignments(tx, code)
		if err != nil {
			return err
		}
		if closed == 0 {
			return asset.ErrAssetNotAssigned
		}

		res := tx.Model(&assetDatamodel.Asset{}).
			Where("asset_code = ? AND status = ?", code, asset.StatusAssigned).
			Updates(map[string]interface{}{"status": asset.StatusInStock, "updated_at": time.Now()})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return asset.ErrAssetNotAssigned
		}

		return appendHistory(tx, code, asset.ActionReturn, strPtr(asset.StatusAssigned), asset.StatusInStock, nil, remarks)
	})
}

func (r *AssetRepository) SendToRepair(code, assigneeID, remarks string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		current, err := currentStatus(tx, code)
		if err != nil {
			return err
		}
		if current == asset.StatusRetired {
			return asset.ErrAssetRetired
		}

		if err := closeActiveRepairs(tx, code); err != nil {
			return err
		}
		if _, err := closeActiveAssignments(tx, code); err != nil {
			return err
		}

		res := tx.Model(&assetDatamodel.Asset{}).
			Where("asset_code = ? AND status = ?", code, current).
			Updates(map[string]interface{}{"status": asset.StatusRepair, "updated_at": time.Now()})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return asset.ErrStatusConflict
		}

		if err := tx.Create(&assetDatamodel.RepairRecord{
			AssetCode:        code,
			RepairAssigneeID: assigneeID,
			RepairStartDate:  time.Now(),
			IsActive:         true,
		}).Error; err != nil {
			return err
		}

		return appendHistory(tx, code, asset.ActionRepair, strPtr(current), asset.StatusRepair, strPtr(assigneeID), remarks)
	})
}

func (r *AssetRepository) CompleteRepair(code string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&assetDatamodel.Asset{}).
			Where("asset_code = ? AND status = ?", code, asset.StatusRepair).
			Updates(map[string]interface{}{
				"status":     asset.StatusInStock,
				"type":       "Repaired",
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return asset.ErrAssetNotInRepair
		}

		return closeActiveRepairs(tx, code)
	})
}

func (r *AssetRepository) MarkMissing(code, remarks string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		current, err := currentStatus(tx, code)
		if err != nil {
			return err
		}
		if current == asset.StatusRetired {
			return asset.ErrAssetRetired
		}

		if _, err := closeActiveAssignments(tx, code); err != nil {
			return err
		}

		res := tx.Model(&assetDatamodel.Asset{}).
			Where("asset_code = ? AND status = ?", code, current).
			Updates(map[string]interface{}{"status": asset.StatusMissing, "updated_at": time.Now()})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return asset.ErrStatusConflict
		}

		return appendHistory(tx, code, asset.ActionMissing, strPtr(current), asset.StatusMissing, nil, remarks)
	})
}

func (r *AssetRepository) Recover(code string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&assetDatamodel.Asset{}).
			Where("asset_code = ? AND status = ?", code, asset.StatusMissing).
			Updates(map[string]interface{}{"status": asset.StatusInStock, "updated_at": time.Now()})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return asset.ErrAssetNotMissing
		}

		return appendHistory(tx, code, asset.ActionRecover, strPtr(asset.StatusMissing), asset.StatusInStock, nil, "")
	})
}

func (r *AssetRepository) Retire(code, remarks string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		current, err := currentStatus(tx, code)
		if err != nil {
			return err
		}
		if current == asset.StatusRetired {
			return asset.ErrAssetRetired
		}

		if _, err := closeActiveAssignments(tx, code); err != nil {
			return err
		}

		res := tx.Model(&assetDatamodel.Asset{}).
			Where("asset_code = ? AND status = ?", code, current).
			Updates(map[string]interface{}{"status": asset.StatusRetired, "updated_at": time.Now()})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return asset.ErrStatusConflict
		}

		return appendHistory(tx, code, asset.ActionRetire, strPtr(current), asset.StatusRetired, nil, remarks)
	})
}

func (r *AssetRepository) ActiveRepairs() ([]asset.RepairItem, error) {
	var items []asset.RepairItem
	err := r.db.Raw(`
		SELECT
			r.asset_code,
			e.name AS assignee_name,
			r.repair_start_date
		FROM repair_tracking r
		LEFT JOIN employees e ON r.repair_assignee_id = e.employee_id
		WHERE r.is_active = TRUE`).Scan(&items).Error
	return items, err
}

func currentStatus(tx *gorm.DB, code string) (string, error) {
	var a assetDatamodel.Asset
	err := tx.Select("status").Where("asset_code = ?", code).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", asset.ErrAssetNotFound
		}
		return "", err
	}
	return a.Status, nil
}

func closeActiveAssignments(tx *gorm.DB, code string) (int64, error) {
	res := tx.Model(&assetDatamodel.Assignment{}).
		Where("asset_code = ? AND is_active = ?", code, true).
		Updates(map[string]interface{}{"returned_date": time.Now(), "is_active": false})
	return res.RowsAffected, res.Error
}

func closeActiveRepairs(tx *gorm.DB, code string) error {
	return tx.Model(&assetDatamodel.RepairRecord{}).
		Where("asset_code = ? AND is_active = ?", code, true).
		Update("is_active", false).Error
}

func appendHistory(tx *gorm.DB, code, action string, oldStatus *string, newStatus string, employeeID *string, remarks string) error {
	return tx.Create(&assetDatamodel.HistoryEntry{
		AssetCode:  code,
		Action:     action,
		OldStatus:  oldStatus,
		NewStatus:  newStatus,
		EmployeeID: employeeID,
		Remarks:    remarks,
	}).Error
}

func strPtr(s string) *string {
	return &s
}
