package leave

import "github.com/Harendra62/leave-management/internal/balance"

type CreateLeaveRequest struct {
	EmployeeID            string `json:"employee_id" binding:"required,uuid"`
	LeaveTypeID           string `json:"leave_type_id" binding:"required,uuid"`
	StartDate             string `json:"start_date" binding:"required"`
	EndDate               string `json:"end_date" binding:"required"`
	Reason                string `json:"reason"`
	MedicalCertificateURL string `json:"medical_certificate_url"`
}

type UpdateLeaveRequest struct {
	StartDate             string  `json:"start_date"`
	EndDate               string  `json:"end_date"`
	Reason                *string `json:"reason"`
	MedicalCertificateURL *string `json:"medical_certificate_url"`
}

type DecisionRequest struct {
	ApproverID string `json:"approver_id" binding:"required,uuid"`
	Status     string `json:"status" binding:"required"`
	Comments   string `json:"comments"`
}

// Verdict is the outcome of validating a candidate request without
// persisting it.
type Verdict struct {
	IsValid     bool           `json:"is_valid"`
	Errors      []string       `json:"errors"`
	Warnings    []string       `json:"warnings"`
	Suggestions []string       `json:"suggestions,omitempty"`
	Details     map[string]any `json:"validation_details,omitempty"`
}

type LeaveRequestResponse struct {
	ID                    string `json:"id"`
	EmployeeID            string `json:"employee_id"`
	EmployeeName          string `json:"employee_name,omitempty"`
	LeaveTypeID           string `json:"leave_type_id"`
	LeaveTypeName         string `json:"leave_type_name,omitempty"`
	StartDate             string `json:"start_date"`
	EndDate               string `json:"end_date"`
	TotalDays             int    `json:"total_days"`
	Reason                string `json:"reason,omitempty"`
	Status                string `json:"status"`
	ApprovedByID          string `json:"approved_by_id,omitempty"`
	ApproverName          string `json:"approver_name,omitempty"`
	ApprovedAt            string `json:"approved_at,omitempty"`
	RejectionReason       string `json:"rejection_reason,omitempty"`
	MedicalCertificateURL string `json:"medical_certificate_url,omitempty"`
	CreatedAt             string `json:"created_at"`
}

type SummaryStatistics struct {
	TotalRequests    int     `json:"total_requests"`
	ApprovedRequests int     `json:"approved_requests"`
	PendingRequests  int     `json:"pending_requests"`
	RejectedRequests int     `json:"rejected_requests"`
	TotalDaysUsed    int     `json:"total_days_used"`
	ApprovalRate     float64 `json:"approval_rate"`
}

type PolicyRule struct {
	LeaveType                  string `json:"leave_type"`
	MaxDaysPerYear             *int   `json:"max_days_per_year"`
	MaxConsecutiveDays         *int   `json:"max_consecutive_days"`
	RequiresMedicalCertificate bool   `json:"requires_medical_certificate"`
	CarryForwardEnabled        bool   `json:"carry_forward_enabled"`
	MaxCarryForwardDays        *int   `json:"max_carry_forward_days"`
}

type EmployeeLeaveSummary struct {
	EmployeeID   string                    `json:"employee_id"`
	EmployeeName string                    `json:"employee_name"`
	Department   string                    `json:"department"`
	Position     string                    `json:"position"`
	HireDate     string                    `json:"hire_date"`
	IsActive     bool                      `json:"is_active"`
	Year         int                       `json:"year"`
	Balances     []balance.BalanceResponse `json:"leave_balances"`
	Statistics   SummaryStatistics         `json:"statistics"`
	PolicyRules  []PolicyRule              `json:"policy_rules"`
}

type ReportRequest struct {
	EmployeeID  string `json:"employee_id" binding:"omitempty,uuid"`
	Department  string `json:"department"`
	LeaveTypeID string `json:"leave_type_id" binding:"omitempty,uuid"`
	Status      string `json:"status"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type ReportResponse struct {
	TotalRequests    int                    `json:"total_requests"`
	ApprovedRequests int                    `json:"approved_requests"`
	RejectedRequests int                    `json:"rejected_requests"`
	PendingRequests  int                    `json:"pending_requests"`
	LeaveRequests    []LeaveRequestResponse `json:"leave_requests"`
}
