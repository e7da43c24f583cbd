package delegation

import (
	"time"

	"github.com/google/uuid"

	"github.com/Harendra62/leave-management/internal/employee"
)

type Delegation struct {
	ID         uuid.UUID          `gorm:"type:uuid;primaryKey"`
	ManagerID  uuid.UUID          `gorm:"type:uuid;index"`
	DelegateID uuid.UUID          `gorm:"type:uuid;index"`
	Manager    *employee.Employee `gorm:"foreignKey:ManagerID"`
	Delegate   *employee.Employee `gorm:"foreignKey:DelegateID"`
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	IsActive   bool `gorm:"default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Delegation) TableName() string {
	return "leave_delegations"
}
