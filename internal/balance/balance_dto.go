package balance

import "github.com/shopspring/decimal"

type InitializeBalancesRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Year       int    `json:"year" binding:"required,min=2000"`
}

type CarryForwardRequest struct {
	Year int `json:"year" binding:"required,min=2000"`
}

type BalanceResponse struct {
	ID                  string          `json:"id"`
	EmployeeID          string          `json:"employee_id"`
	LeaveTypeID         string          `json:"leave_type_id"`
	LeaveTypeName       string          `json:"leave_type_name,omitempty"`
	Year                int             `json:"year"`
	TotalAllocated      decimal.Decimal `json:"total_allocated"`
	TotalUsed           decimal.Decimal `json:"total_used"`
	TotalCarriedForward decimal.Decimal `json:"total_carried_forward"`
	RemainingBalance    decimal.Decimal `json:"remaining_balance"`
}

type CarryForwardResponse struct {
	Year           int `json:"year"`
	ProcessedCount int `json:"processed_count"`
}
