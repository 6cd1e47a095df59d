package employee

import "time"

// Employee is identified by an externally issued id. Employees are
// soft-deactivated; rows are never removed while assignments reference them.
type Employee struct {
	EmployeeID string    `gorm:"column:employee_id;primaryKey"`
	Name       string    `gorm:"column:name;not null"`
	Email      string    `gorm:"column:email;not null"`
	Location   string    `gorm:"column:location"`
	Status     string    `gorm:"column:status;default:active"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
