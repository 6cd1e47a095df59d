package clearance

import (
	internal "github.com/frahmantamala/asset-tracker/internal"
)

// Clearance reasons returned to the caller when an employee is blocked.
const (
	ReasonAssetsAssigned = "Assets still assigned"
	ReasonMissingAssets  = "Employee linked to missing assets"
)

// Result is the outcome of a clearance check. Assets carries the codes that
// block the clearance, empty when cleared.
type Result struct {
	EmployeeID string   `json:"employee_id"`
	Clearance  bool     `json:"clearance"`
	Reason     string   `json:"reason,omitempty"`
	Assets     []string `json:"assets,omitempty"`
	Message    string   `json:"message"`
}

type ApproveDTO struct {
	EmployeeID string `json:"employee_id"`
	Secret     string `json:"secret"`
}

func (dto ApproveDTO) Validate() error {
	if dto.EmployeeID == "" {
		return internal.NewValidationError("employee_id is required", internal.ErrCodeValidationFailed)
	}
	if dto.Secret == "" {
		return internal.NewValidationError("secret is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type ApproveResponse struct {
	Message    string `json:"message"`
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"`
}

var (
	ErrEmployeeNotFound   = internal.NewNotFoundError("Employee not found", internal.ErrCodeEmployeeNotFound)
	ErrAssetsStillHeld    = internal.NewPreconditionFailedError("Employee still holds assigned assets", internal.ErrCodeAssetsStillHeld)
	ErrInvalidAdminSecret = internal.NewForbiddenError("Invalid admin secret", internal.ErrCodeInvalidAdminSecret)
)
