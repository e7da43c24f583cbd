package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"uniqueIndex:uq_employee_number"`
	FullName       string
	Email          string     `gorm:"uniqueIndex:uq_employee_email"`
	Department     string     `gorm:"index"`
	Position       string
	ManagerID      *uuid.UUID `gorm:"type:uuid;index"`
	Manager        *Employee  `gorm:"foreignKey:ManagerID"`
	IsActive       bool       `gorm:"default:true"`
	HireDate       time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}
