package postgres

import (
	"github.com/frahmantamala/asset-tracker/internal/clearance"
	employeeDatamodel "github.com/frahmantamala/asset-tracker/internal/core/datamodel/employee"
	"gorm.io/gorm"
)

type ClearanceRepository struct {
	db *gorm.DB
}

func NewClearanceRepository(db *gorm.DB) clearance.RepositoryAPI {
	return &ClearanceRepository{db: db}
}

func (r *ClearanceRepository) EmployeeExists(employeeID string) (bool, error) {
	var count int64
	err := r.db.Model(&employeeDatamodel.Employee{}).
		Where("employee_id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *ClearanceRepository) ActiveAssignments(employeeID string) ([]string, error) {
	var codes []string
	err := r.db.Raw(`
		SELECT asset_code
		FROM asset_assignments
		WHERE employee_id = ? AND is_active = TRUE
		ORDER BY asset_code`, employeeID).Scan(&codes).Error
	return codes, err
}

// MissingAssetsHeld returns assets currently missing that the employee held
// at any point, active or returned.
func (r *ClearanceRepository) MissingAssetsHeld(employeeID string) ([]string, error) {
	var codes []string
	err := r.db.Raw(`
		SELECT DISTINCT a.asset_code
		FROM asset_assignments aa
		JOIN assets a ON a.asset_code = aa.asset_code
		WHERE aa.employee_id = ? AND a.status = 'missing'
		ORDER BY a.asset_code`, employeeID).Scan(&codes).Error
	return codes, err
}

// DeactivateIfClear flips the employee to inactive only while no active
// assignment exists; the guard and the write are one statement.
func (r *ClearanceRepository) DeactivateIfClear(employeeID string) error {
	res := r.db.Exec(`
		UPDATE employees
		SET status = 'inactive'
		WHERE employee_id = ?
		  AND NOT EXISTS (
			SELECT 1 FROM asset_assignments
			WHERE employee_id = ? AND is_active = TRUE
		  )`, employeeID, employeeID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return clearance.ErrAssetsStillHeld
	}
	return nil
}
