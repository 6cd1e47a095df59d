package asset

import "time"

// Asset is the persistence model for a tracked asset. The asset code is the
// natural primary key (human readable, generated from the category prefix).
type Asset struct {
	AssetCode          string     `gorm:"column:asset_code;primaryKey"`
	CategoryID         int64      `gorm:"column:category_id;not null"`
	Type               string     `gorm:"column:type"`
	Brand              string     `gorm:"column:brand"`
	Model              string     `gorm:"column:model"`
	SerialNumber       string     `gorm:"column:serial_number"`
	Status             string     `gorm:"column:status;default:instock"`
	Location           string     `gorm:"column:location"`
	WarrantyApplicable bool       `gorm:"column:warranty_applicable;default:false"`
	WarrantyEndDate    *time.Time `gorm:"column:warranty_end_date"`
	Remarks            *string    `gorm:"column:remarks"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Asset) TableName() string {
	return "assets"
}

// Assignment links an asset to an employee over an interval. is_active is
// true while returned_date is unset; at most one active row exists per asset.
type Assignment struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	AssetCode    string     `gorm:"column:asset_code;not null"`
	EmployeeID   string     `gorm:"column:employee_id;not null"`
	AssignedDate time.Time  `gorm:"column:assigned_date;autoCreateTime"`
	ReturnedDate *time.Time `gorm:"column:returned_date"`
	IsActive     bool       `gorm:"column:is_active;default:true"`
}

func (Assignment) TableName() string {
	return "asset_assignments"
}

// RepairRecord tracks an in-progress repair; at most one active per asset.
type RepairRecord struct {
	ID               int64     `gorm:"primaryKey;autoIncrement"`
	AssetCode        string    `gorm:"column:asset_code;not null"`
	RepairAssigneeID string    `gorm:"column:repair_assignee_id;not null"`
	RepairStartDate  time.Time `gorm:"column:repair_start_date;autoCreateTime"`
	IsActive         bool      `gorm:"column:is_active;default:true"`
}

func (RepairRecord) TableName() string {
	return "repair_tracking"
}

// HistoryEntry is an append-only audit record of one status transition.
// Rows are never updated or deleted.
type HistoryEntry struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	AssetCode  string    `gorm:"column:asset_code;not null"`
	Action     string    `gorm:"column:action;not null"`
	OldStatus  *string   `gorm:"column:old_status"`
	NewStatus  string    `gorm:"column:new_status;not null"`
	EmployeeID *string   `gorm:"column:employee_id"`
	Remarks    string    `gorm:"column:remarks"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (HistoryEntry) TableName() string {
	return "asset_history"
}
