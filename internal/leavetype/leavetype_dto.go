package leavetype

type CreateLeaveTypeRequest struct {
	Name                       string `json:"name" binding:"required"`
	Description                string `json:"description"`
	MaxDaysPerYear             *int   `json:"max_days_per_year" binding:"omitempty,min=1"`
	MaxConsecutiveDays         *int   `json:"max_consecutive_days" binding:"omitempty,min=1"`
	RequiresApproval           *bool  `json:"requires_approval"`
	RequiresMedicalCertificate bool   `json:"requires_medical_certificate"`
	CarryForwardEnabled        bool   `json:"carry_forward_enabled"`
	MaxCarryForwardDays        *int   `json:"max_carry_forward_days" binding:"omitempty,min=1"`
}

type UpdateLeaveTypeRequest struct {
	Name                       string `json:"name" binding:"required"`
	Description                string `json:"description"`
	MaxDaysPerYear             *int   `json:"max_days_per_year" binding:"omitempty,min=1"`
	MaxConsecutiveDays         *int   `json:"max_consecutive_days" binding:"omitempty,min=1"`
	RequiresApproval           *bool  `json:"requires_approval"`
	RequiresMedicalCertificate bool   `json:"requires_medical_certificate"`
	CarryForwardEnabled        bool   `json:"carry_forward_enabled"`
	MaxCarryForwardDays        *int   `json:"max_carry_forward_days" binding:"omitempty,min=1"`
}

type LeaveTypeResponse struct {
	ID                         string `json:"id"`
	Name                       string `json:"name"`
	Description                string `json:"description,omitempty"`
	MaxDaysPerYear             *int   `json:"max_days_per_year"`
	MaxConsecutiveDays         *int   `json:"max_consecutive_days"`
	RequiresApproval           bool   `json:"requires_approval"`
	RequiresMedicalCertificate bool   `json:"requires_medical_certificate"`
	CarryForwardEnabled        bool   `json:"carry_forward_enabled"`
	MaxCarryForwardDays        *int   `json:"max_carry_forward_days"`
	IsActive                   bool   `json:"is_active"`
}
