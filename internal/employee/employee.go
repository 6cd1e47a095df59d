package employee

import (
	"time"

	internal "github.com/frahmantamala/asset-tracker/internal"
	employeeDatamodel "github.com/frahmantamala/asset-tracker/internal/core/datamodel/employee"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	EmployeeID string    `json:"employee_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Location   string    `json:"location"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}

func NewEmployee(id, name, email, location string) *Employee {
	return &Employee{
		EmployeeID: id,
		Name:       name,
		Email:      email,
		Location:   location,
		Status:     StatusActive,
		CreatedAt:  time.Now(),
	}
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Email:      e.Email,
		Location:   e.Location,
		Status:     e.Status,
		CreatedAt:  e.CreatedAt,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Email:      e.Email,
		Location:   e.Location,
		Status:     e.Status,
		CreatedAt:  e.CreatedAt,
	}
}

var (
	ErrEmployeeNotFound  = internal.NewNotFoundError("Employee not found", internal.ErrCodeEmployeeNotFound)
	ErrEmployeeExists    = internal.NewConflictError("Employee ID already exists", internal.ErrCodeEmployeeExists)
	ErrEmployeeHasAssets = internal.NewPreconditionFailedError("Employee still holds assigned assets", internal.ErrCodeAssetsStillHeld)
)
