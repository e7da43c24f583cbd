package leave

import (
	"time"

	"github.com/Harendra62/leave-management/internal/employee"
	"github.com/Harendra62/leave-management/internal/leavetype"

	"github.com/google/uuid"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

type LeaveRequest struct {
	ID                    uuid.UUID            `gorm:"type:uuid;primaryKey"`
	EmployeeID            uuid.UUID            `gorm:"type:uuid;index"`
	Employee              *employee.Employee   `gorm:"foreignKey:EmployeeID"`
	LeaveTypeID           uuid.UUID            `gorm:"type:uuid;index"`
	LeaveType             *leavetype.LeaveType `gorm:"foreignKey:LeaveTypeID"`
	StartDate             time.Time            `gorm:"index"`
	EndDate               time.Time            `gorm:"index"`
	TotalDays             int
	Reason                string
	Status                string             `gorm:"default:PENDING;index"`
	ApprovedByID          *uuid.UUID         `gorm:"type:uuid"`
	ApprovedBy            *employee.Employee `gorm:"foreignKey:ApprovedByID"`
	ApprovedAt            *time.Time
	RejectionReason       string
	MedicalCertificateURL string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}
