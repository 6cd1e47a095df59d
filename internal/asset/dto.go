package asset

import (
	"time"

	internal "github.com/frahmantamala/asset-tracker/internal"
)

// CreateAssetDTO is the create-or-update payload. AssetCode empty means
// generate one from the category prefix.
type CreateAssetDTO struct {
	AssetCode          string     `json:"asset_code,omitempty"`
	CategoryID         int64      `json:"category_id"`
	Type               string     `json:"type"`
	Brand              string     `json:"brand"`
	Model              string     `json:"model"`
	SerialNumber       string     `json:"serial_number"`
	Location           string     `json:"location"`
	WarrantyApplicable bool       `json:"warranty_applicable,omitempty"`
	WarrantyEndDate    *time.Time `json:"warranty_end_date,omitempty"`
}

func (dto CreateAssetDTO) Validate() error {
	if dto.CategoryID <= 0 {
		return internal.NewValidationError("category_id is required", internal.ErrCodeValidationFailed)
	}
	if dto.Type == "" {
		return internal.NewValidationError("type is required", internal.ErrCodeValidationFailed)
	}
	if len(dto.AssetCode) > 50 {
		return internal.NewValidationError("asset_code must be at most 50 characters", internal.ErrCodeValidationFailed)
	}
	return nil
}

type AssignDTO struct {
	AssetCode  string `json:"asset_code"`
	EmployeeID string `json:"employee_id"`
}

func (dto AssignDTO) Validate() error {
	if dto.AssetCode == "" {
		return internal.NewValidationError("asset_code is required", internal.ErrCodeValidationFailed)
	}
	if dto.EmployeeID == "" {
		return internal.NewValidationError("employee_id is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type ReturnDTO struct {
	AssetCode string `json:"asset_code"`
	Remarks   string `json:"remarks,omitempty"`
}

func (dto ReturnDTO) Validate() error {
	if dto.AssetCode == "" {
		return internal.NewValidationError("asset_code is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type RepairDTO struct {
	AssetCode        string `json:"asset_code"`
	RepairEmployeeID string `json:"repair_employee_id"`
	Remarks          string `json:"remarks,omitempty"`
}

func (dto RepairDTO) Validate() error {
	if dto.AssetCode == "" {
		return internal.NewValidationError("asset_code is required", internal.ErrCodeValidationFailed)
	}
	if dto.RepairEmployeeID == "" {
		return internal.NewValidationError("repair_employee_id is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type MissingDTO struct {
	AssetCode string `json:"asset_code"`
	Remarks   string `json:"remarks,omitempty"`
}

func (dto MissingDTO) Validate() error {
	if dto.AssetCode == "" {
		return internal.NewValidationError("asset_code is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type RetireDTO struct {
	AssetCode string `json:"asset_code"`
	Secret    string `json:"secret"`
	Remarks   string `json:"remarks,omitempty"`
}

func (dto RetireDTO) Validate() error {
	if dto.AssetCode == "" {
		return internal.NewValidationError("asset_code is required", internal.ErrCodeValidationFailed)
	}
	if dto.Secret == "" {
		return internal.NewValidationError("secret is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type CodeDTO struct {
	AssetCode string `json:"asset_code"`
}

func (dto CodeDTO) Validate() error {
	if dto.AssetCode == "" {
		return internal.NewValidationError("asset_code is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

// ListItem is one row of the asset list joined with category name and the
// active assignee, when any.
type ListItem struct {
	AssetCode       string     `json:"asset_code"`
	Category        string     `json:"category"`
	Type            string     `json:"type"`
	Brand           string     `json:"brand"`
	Model           string     `json:"model"`
	SerialNumber    string     `json:"serial_number"`
	Status          string     `json:"status"`
	Location        string     `json:"location"`
	WarrantyEndDate *time.Time `json:"warranty_end_date,omitempty"`
	EmployeeID      *string    `json:"employee_id,omitempty"`
	EmployeeName    *string    `json:"employee_name,omitempty"`
}

// Detail is the full asset view including assignee contact info.
type Detail struct {
	AssetCode          string     `json:"asset_code"`
	Category           string     `json:"category"`
	Type               string     `json:"type"`
	Brand              string     `json:"brand"`
	Model              string     `json:"model"`
	SerialNumber       string     `json:"serial_number"`
	Status             string     `json:"status"`
	Location           string     `json:"location"`
	WarrantyApplicable bool       `json:"warranty_applicable"`
	WarrantyEndDate    *time.Time `json:"warranty_end_date,omitempty"`
	Remarks            *string    `json:"remarks,omitempty"`
	EmployeeID         *string    `json:"employee_id,omitempty"`
	EmployeeName       *string    `json:"employee_name,omitempty"`
	EmployeeEmail      *string    `json:"employee_email,omitempty"`
	EmployeeLocation   *string    `json:"employee_location,omitempty"`
}

// RepairItem is one active repair record with the assignee name.
type RepairItem struct {
	AssetCode       string    `json:"asset_code"`
	AssigneeName    *string   `json:"assignee_name,omitempty"`
	RepairStartDate time.Time `json:"repair_start_date"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type CreateAssetResponse struct {
	Message   string `json:"message"`
	AssetCode string `json:"asset_code"`
}

type TransitionResponse struct {
	Message   string `json:"message"`
	AssetCode string `json:"asset_code"`
	Status    string `json:"status"`
}
