package balance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LeaveBalance struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID          uuid.UUID       `gorm:"type:uuid;uniqueIndex:uq_balance_employee_type_year"`
	LeaveTypeID         uuid.UUID       `gorm:"type:uuid;uniqueIndex:uq_balance_employee_type_year"`
	Year                int             `gorm:"uniqueIndex:uq_balance_employee_type_year"`
	TotalAllocated      decimal.Decimal `gorm:"type:numeric(5,2)"`
	TotalUsed           decimal.Decimal `gorm:"type:numeric(5,2)"`
	TotalCarriedForward decimal.Decimal `gorm:"type:numeric(5,2)"`
	RemainingBalance    decimal.Decimal `gorm:"type:numeric(5,2)"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}

// recalculate keeps remaining_balance consistent with the other columns.
func (b *LeaveBalance) recalculate() {
	b.RemainingBalance = b.TotalAllocated.Add(b.TotalCarriedForward).Sub(b.TotalUsed)
}
