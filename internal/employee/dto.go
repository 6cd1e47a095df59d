package employee

import (
	"strings"
	"time"

	internal "github.com/frahmantamala/asset-tracker/internal"
)

type AddEmployeeDTO struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Location   string `json:"location"`
}

func (dto AddEmployeeDTO) Validate() error {
	if strings.TrimSpace(dto.EmployeeID) == "" {
		return internal.NewValidationError("employee_id is required", internal.ErrCodeValidationFailed)
	}
	if strings.TrimSpace(dto.Name) == "" {
		return internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}
	if !validEmail(dto.Email) {
		return internal.NewValidationError("email is invalid", internal.ErrCodeValidationFailed)
	}
	return nil
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t")
}

type DeactivateDTO struct {
	EmployeeID string `json:"employee_id"`
}

func (dto DeactivateDTO) Validate() error {
	if strings.TrimSpace(dto.EmployeeID) == "" {
		return internal.NewValidationError("employee_id is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type EmployeeResponse struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Location   string `json:"location"`
	Status     string `json:"status"`
}

type AddEmployeeResponse struct {
	Message    string `json:"message"`
	EmployeeID string `json:"employee_id"`
}

type DeactivateResponse struct {
	Message    string `json:"message"`
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"`
}

// ActiveAsset is one asset currently assigned to an employee.
type ActiveAsset struct {
	AssetCode    string    `json:"asset_code"`
	Type         string    `json:"type"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	AssignedDate time.Time `json:"assigned_date"`
}

type ActiveAssetsResponse struct {
	EmployeeID   string        `json:"employee_id"`
	ActiveAssets int           `json:"active_assets"`
	Assets       []ActiveAsset `json:"assets,omitempty"`
}
