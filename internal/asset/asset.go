package asset

import (
	"time"

	internal "github.com/frahmantamala/asset-tracker/internal"
	assetDatamodel "github.com/frahmantamala/asset-tracker/internal/core/datamodel/asset"
)

// Asset statuses. An asset holds exactly one at a time; retired is terminal.
const (
	StatusInStock  = "instock"
	StatusAssigned = "assigned"
	StatusRepair   = "repair"
	StatusMissing  = "missing"
	StatusRetired  = "retired"
)

// History actions, one per recorded transition.
const (
	ActionAssign         = "assign"
	ActionReturn         = "return"
	ActionRepair         = "repair"
	ActionRepairComplete = "repair_complete"
	ActionMissing        = "missing"
	ActionRecover        = "recover"
	ActionRetire         = "retire"
)

func IsValidStatus(status string) bool {
	switch status {
	case StatusInStock, StatusAssigned, StatusRepair, StatusMissing, StatusRetired:
		return true
	}
	return false
}

type Asset struct {
	AssetCode          string     `json:"asset_code"`
	CategoryID         int64      `json:"category_id"`
	Type               string     `json:"type"`
	Brand              string     `json:"brand"`
	Model              string     `json:"model"`
	SerialNumber       string     `json:"serial_number"`
	Status             string     `json:"status"`
	Location           string     `json:"location"`
	WarrantyApplicable bool       `json:"warranty_applicable"`
	WarrantyEndDate    *time.Time `json:"warranty_end_date,omitempty"`
	Remarks            *string    `json:"remarks,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (a *Asset) CanBeAssigned() bool {
	return a.Status == StatusInStock
}

func (a *Asset) CanBeSentToRepair() bool {
	return a.Status != StatusRetired
}

func (a *Asset) CanCompleteRepair() bool {
	return a.Status == StatusRepair
}

func (a *Asset) CanBeMarkedMissing() bool {
	return a.Status != StatusRetired
}

func (a *Asset) CanBeRecovered() bool {
	return a.Status == StatusMissing
}

func (a *Asset) IsRetired() bool {
	return a.Status == StatusRetired
}

func ToDataModel(a *Asset) *assetDatamodel.Asset {
	return &assetDatamodel.Asset{
		AssetCode:          a.AssetCode,
		CategoryID:         a.CategoryID,
		Type:               a.Type,
		Brand:              a.Brand,
		Model:              a.Model,
		SerialNumber:       a.SerialNumber,
		Status:             a.Status,
		Location:           a.Location,
		WarrantyApplicable: a.WarrantyApplicable,
		WarrantyEndDate:    a.WarrantyEndDate,
		Remarks:            a.Remarks,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func FromDataModel(a *assetDatamodel.Asset) *Asset {
	return &Asset{
		AssetCode:          a.AssetCode,
		CategoryID:         a.CategoryID,
		Type:               a.Type,
		Brand:              a.Brand,
		Model:              a.Model,
		SerialNumber:       a.SerialNumber,
		Status:             a.Status,
		Location:           a.Location,
		WarrantyApplicable: a.WarrantyApplicable,
		WarrantyEndDate:    a.WarrantyEndDate,
		Remarks:            a.Remarks,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// Domain errors surfaced by the lifecycle engine.
var (
	ErrAssetNotFound = internal.NewNotFoundError("Asset not found", internal.ErrCodeAssetNotFound)

	ErrAssetAlreadyAssigned = internal.NewConflictError("Asset already assigned", internal.ErrCodeAssetAlreadyAssigned)
	ErrAssetNotInStock      = internal.NewConflictError("Asset is not in stock", internal.ErrCodeAssetNotInStock)
	ErrAssetNotAssigned     = internal.NewConflictError("Asset not currently assigned", internal.ErrCodeAssetNotAssigned)
	ErrAssetNotInRepair     = internal.NewConflictError("Asset is not under repair", internal.ErrCodeAssetNotInRepair)
	ErrAssetNotMissing      = internal.NewConflictError("Asset is not marked missing", internal.ErrCodeAssetNotMissing)
	ErrAssetRetired         = internal.NewConflictError("Asset is retired", internal.ErrCodeAssetRetired)
	ErrDuplicateAssetCode   = internal.NewConflictError("Asset code already in use", internal.ErrCodeDuplicateAssetCode)
	ErrStatusConflict       = internal.NewConflictError("Asset status changed concurrently, retry the operation", internal.ErrCodeInvalidStatus)

	ErrEmployeeNotFound   = internal.NewNotFoundError("Employee not found", internal.ErrCodeEmployeeNotFound)
	ErrInvalidAdminSecret = internal.NewForbiddenError("Invalid admin secret", internal.ErrCodeInvalidAdminSecret)
)
