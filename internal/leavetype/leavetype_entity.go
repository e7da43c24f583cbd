package leavetype

import (
	"time"

	"github.com/google/uuid"
)

type LeaveType struct {
	ID                         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                       string    `gorm:"uniqueIndex:uq_leave_type_name"`
	Description                string
	MaxDaysPerYear             *int // nil means unlimited
	MaxConsecutiveDays         *int // nil means unlimited
	RequiresApproval           bool `gorm:"default:true"`
	RequiresMedicalCertificate bool `gorm:"default:false"`
	CarryForwardEnabled        bool `gorm:"default:false"`
	MaxCarryForwardDays        *int
	IsActive                   bool `gorm:"default:true"`
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}
