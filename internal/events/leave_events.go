package events

import "time"

const (
	LeaveRequestedTopic       = "hr.leave.request.v1"
	LeaveDecidedTopic         = "hr.leave.decision.v1"
	DelegationAssignedTopic   = "hr.leave.delegation.v1"
	NotificationConsumerGroup = "leave-management-notifications"
)

type LeaveRequestedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	ManagerEmail string    `json:"manager_email"`
	ManagerName  string    `json:"manager_name"`
	LeaveType    string    `json:"leave_type"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	TotalDays    int       `json:"total_days"`
	Reason       string    `json:"reason,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type LeaveDecidedEvent struct {
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id"`
	EmployeeID      string    `json:"employee_id"`
	EmployeeEmail   string    `json:"employee_email"`
	EmployeeName    string    `json:"employee_name"`
	ApproverName    string    `json:"approver_name"`
	LeaveType       string    `json:"leave_type"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	TotalDays       int       `json:"total_days"`
	Status          string    `json:"status"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

type DelegationAssignedEvent struct {
	EventType     string    `json:"event_type"`
	DelegationID  string    `json:"delegation_id"`
	ManagerName   string    `json:"manager_name"`
	DelegateEmail string    `json:"delegate_email"`
	DelegateName  string    `json:"delegate_name"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	Reason        string    `json:"reason,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
