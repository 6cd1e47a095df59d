package postgres

import (
	"errors"

	employeeDatamodel "github.com/frahmantamala/asset-tracker/internal/core/datamodel/employee"
	"github.com/frahmantamala/asset-tracker/internal/employee"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetActive() ([]*employee.Employee, error) {
	var rows []*employeeDatamodel.Employee
	err := r.db.Where("status = ?", employee.StatusActive).Order("name ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	employees := make([]*employee.Employee, len(rows))
	for i, row := range rows {
		employees[i] = employee.FromDataModel(row)
	}
	return employees, nil
}

func (r *EmployeeRepository) GetByID(employeeID string) (*employee.Employee, error) {
	var row employeeDatamodel.Employee
	err := r.db.Where("employee_id = ?", employeeID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee.FromDataModel(&row), nil
}

func (r *EmployeeRepository) Create(e *employee.Employee) error {
	if err := r.db.Create(employee.ToDataModel(e)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return employee.ErrEmployeeExists
		}
		return err
	}
	return nil
}

// Deactivate flips an active employee to inactive unless active assignments
// remain. The NOT EXISTS guard keeps a concurrent assign from slipping in
// between a check and the update.
func (r *EmployeeRepository) Deactivate(employeeID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&employeeDatamodel.Employee{}).
			Where("employee_id = ?", employeeID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return employee.ErrEmployeeNotFound
		}

		res := tx.Exec(`
			UPDATE employees
			SET status = ?
			WHERE employee_id = ?
			  AND NOT EXISTS (
				SELECT 1 FROM asset_assignments
				WHERE employee_id = ? AND is_active = TRUE
			  )`, employee.StatusInactive, employeeID, employeeID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return employee.ErrEmployeeHasAssets
		}
		return nil
	})
}

func (r *EmployeeRepository) ActiveAssets(employeeID string) ([]employee.ActiveAsset, error) {
	var assets []employee.ActiveAsset
	err := r.db.Raw(`
		SELECT
			a.asset_code,
			a.type,
			a.brand,
			a.model,
			aa.assigned_date
		FROM asset_assignments aa
		JOIN assets a ON a.asset_code = aa.asset_code
		WHERE aa.employee_id = ? AND aa.is_active = TRUE
		ORDER BY aa.assigned_date DESC`, employeeID).Scan(&assets).Error
	return assets, err
}

func (r *EmployeeRepository) ActiveExists(employeeID string) (bool, error) {
	var count int64
	err := r.db.Model(&employeeDatamodel.Employee{}).
		Where("employee_id = ? AND status = ?", employeeID, employee.StatusActive).
		Count(&count).Error
	return count > 0, err
}
