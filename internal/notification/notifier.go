package notification

import "context"

// RequestNotification tells a manager a subordinate filed a leave request.
type RequestNotification struct {
	RequestID    string
	EmployeeID   string
	EmployeeName string
	ManagerName  string
	ManagerEmail string
	LeaveType    string
	StartDate    string
	EndDate      string
	TotalDays    int
	Reason       string
}

// DecisionNotification tells an employee their request was approved or rejected.
type DecisionNotification struct {
	RequestID       string
	EmployeeID      string
	EmployeeName    string
	EmployeeEmail   string
	ApproverName    string
	LeaveType       string
	StartDate       string
	EndDate         string
	TotalDays       int
	Status          string
	RejectionReason string
}

// DelegationNotification tells a delegate they now approve on a manager's behalf.
type DelegationNotification struct {
	DelegationID  string
	ManagerName   string
	DelegateName  string
	DelegateEmail string
	StartDate     string
	EndDate       string
	Reason        string
}

// Notifier delivers fire-and-forget notifications. Callers log returned
// errors and continue: a failed notification must never roll back the
// leave-request or balance mutation it follows.
//
//go:generate mockgen -source=notifier.go -destination=mock/notifier_mock.go -package=mock
type Notifier interface {
	NotifyManagerOfRequest(ctx context.Context, n RequestNotification) error
	NotifyEmployeeOfDecision(ctx context.Context, n DecisionNotification) error
	NotifyDelegateOfAssignment(ctx context.Context, n DelegationNotification) error
}
