package notification

import (
	"fmt"
	"strings"

	"github.com/Harendra62/leave-management/internal/events"
)

// Email rendering for the notification consumer. The bodies mirror what an
// SMTP integration would send; the consumer currently logs them.

func RequestSubject(employeeName string) string {
	return fmt.Sprintf("New Leave Request from %s", employeeName)
}

func DecisionSubject(status string) string {
	return fmt.Sprintf("Leave Request %s", titleCase(status))
}

func DelegationSubject(startDate, endDate string) string {
	return fmt.Sprintf("Leave Delegation Assignment - %s to %s", startDate, endDate)
}

func RenderRequestEmail(e events.LeaveRequestedEvent) string {
	reason := e.Reason
	if reason == "" {
		reason = "Not specified"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", e.ManagerName)
	fmt.Fprintf(&b, "A new leave request has been submitted by %s.\n\n", e.EmployeeName)
	b.WriteString("Leave Details:\n")
	fmt.Fprintf(&b, "- Employee: %s\n", e.EmployeeName)
	fmt.Fprintf(&b, "- Leave Type: %s\n", e.LeaveType)
	fmt.Fprintf(&b, "- Start Date: %s\n", e.StartDate)
	fmt.Fprintf(&b, "- End Date: %s\n", e.EndDate)
	fmt.Fprintf(&b, "- Total Days: %d\n", e.TotalDays)
	fmt.Fprintf(&b, "- Reason: %s\n\n", reason)
	b.WriteString("Please review and approve/reject this request through the leave management system.\n\n")
	b.WriteString("Best regards,\nLeave Management System")
	return b.String()
}

func RenderDecisionEmail(e events.LeaveDecidedEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", e.EmployeeName)
	fmt.Fprintf(&b, "Your leave request has been %s by %s.\n\n", strings.ToLower(e.Status), e.ApproverName)
	b.WriteString("Leave Details:\n")
	fmt.Fprintf(&b, "- Leave Type: %s\n", e.LeaveType)
	fmt.Fprintf(&b, "- Start Date: %s\n", e.StartDate)
	fmt.Fprintf(&b, "- End Date: %s\n", e.EndDate)
	fmt.Fprintf(&b, "- Total Days: %d\n", e.TotalDays)
	fmt.Fprintf(&b, "- Status: %s\n", titleCase(e.Status))
	if e.RejectionReason != "" {
		fmt.Fprintf(&b, "- Rejection Reason: %s\n", e.RejectionReason)
	}
	b.WriteString("\nPlease contact your manager if you have any questions.\n\n")
	b.WriteString("Best regards,\nLeave Management System")
	return b.String()
}

func RenderDelegationEmail(e events.DelegationAssignedEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", e.DelegateName)
	fmt.Fprintf(&b, "You have been assigned as a leave approver for %s during the following period:\n\n", e.ManagerName)
	fmt.Fprintf(&b, "%s to %s\n\n", e.StartDate, e.EndDate)
	b.WriteString("During this time, you will be responsible for:\n")
	fmt.Fprintf(&b, "- Reviewing and approving/rejecting leave requests from %s's subordinates\n", e.ManagerName)
	b.WriteString("- Ensuring proper leave balance validation\n")
	b.WriteString("- Maintaining leave policy compliance\n\n")
	b.WriteString("Please log into the leave management system to review any pending requests.\n\n")
	b.WriteString("Best regards,\nLeave Management System")
	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
