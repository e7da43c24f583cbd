package leave

import (
	"fmt"
	"strings"
	"time"

	"github.com/Harendra62/leave-management/internal/employee"
	"github.com/Harendra62/leave-management/internal/holiday"
	"github.com/Harendra62/leave-management/internal/leavetype"

	"github.com/shopspring/decimal"
)

// probationDays is the window after hiring during which requests are
// flagged for extra scrutiny.
const probationDays = 90

// longLeaveThreshold marks requests that may need special approval.
const longLeaveThreshold = 30

// lowBalanceMargin: a request leaving fewer than this many days in the
// balance triggers a warning and a split suggestion.
const lowBalanceMargin = 5

// RuleResult is the outcome of one evaluator. Details carries the
// rule-specific payload (conflict list, balance snapshot, holiday list).
type RuleResult struct {
	IsValid  bool           `json:"is_valid"`
	Errors   []string       `json:"errors"`
	Warnings []string       `json:"warnings"`
	Details  map[string]any `json:"details,omitempty"`
}

func validResult() RuleResult {
	return RuleResult{IsValid: true, Errors: []string{}, Warnings: []string{}}
}

func (r *RuleResult) fail(msg string) {
	r.IsValid = false
	r.Errors = append(r.Errors, msg)
}

func (r *RuleResult) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// BalanceSnapshot is the balance row a rule evaluates against. A nil
// snapshot means no row exists for the employee, type, and year.
type BalanceSnapshot struct {
	TotalAllocated      decimal.Decimal
	TotalUsed           decimal.Decimal
	TotalCarriedForward decimal.Decimal
	Remaining           decimal.Decimal
}

func isWeekend(d time.Time) bool {
	return d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
}

// EvaluateDates checks date ordering and plausibility. today anchors the
// past/future checks so evaluation is deterministic.
func EvaluateDates(today, start, end time.Time) RuleResult {
	result := validResult()

	if start.Before(today) {
		result.fail("Start date cannot be in the past")
	}
	if end.Before(start) {
		result.fail("End date cannot be before start date")
	}
	if start.After(today.AddDate(0, 0, 365)) {
		result.warn("Start date is more than 1 year in the future")
	}
	if isWeekend(start) && isWeekend(end) {
		result.warn("Request appears to be for weekend only")
	}

	return result
}

// EvaluateTypeRules checks the leave-type policy: consecutive-day cap,
// medical certificate, and reason recommendation for sick and emergency
// leave.
func EvaluateTypeRules(lt *leavetype.LeaveType, requestedDays int, reason, medicalCertificateURL string) RuleResult {
	result := validResult()

	if lt.MaxConsecutiveDays != nil && requestedDays > *lt.MaxConsecutiveDays {
		result.fail(fmt.Sprintf("Request exceeds maximum consecutive days (%d)", *lt.MaxConsecutiveDays))
	}
	if lt.RequiresMedicalCertificate && medicalCertificateURL == "" {
		result.fail("Medical certificate is required for this leave type")
	}

	name := strings.ToLower(lt.Name)
	if (name == "sick leave" || name == "emergency leave") && reason == "" {
		result.warn("Reason is recommended for this leave type")
	}

	return result
}

// EvaluateBalance checks the remaining balance against the requested days.
func EvaluateBalance(snapshot *BalanceSnapshot, requestedDays int) RuleResult {
	result := validResult()

	if snapshot == nil {
		result.fail("No leave balance found for this leave type")
		return result
	}

	result.Details = map[string]any{
		"balance_info": map[string]any{
			"total_allocated":       snapshot.TotalAllocated,
			"total_used":            snapshot.TotalUsed,
			"total_carried_forward": snapshot.TotalCarriedForward,
			"remaining_balance":     snapshot.Remaining,
		},
	}

	requested := decimal.NewFromInt(int64(requestedDays))
	if snapshot.Remaining.LessThan(requested) {
		result.fail(fmt.Sprintf("Insufficient balance. Available: %s, Requested: %d",
			snapshot.Remaining.String(), requestedDays))
	} else if snapshot.Remaining.LessThan(requested.Add(decimal.NewFromInt(lowBalanceMargin))) {
		result.warn("Low balance remaining after this request")
	}

	return result
}

// EvaluateConflicts reports overlapping pending or approved requests.
func EvaluateConflicts(overlapping []LeaveRequest) RuleResult {
	result := validResult()

	if len(overlapping) == 0 {
		return result
	}

	result.fail(fmt.Sprintf("Found %d overlapping request(s)", len(overlapping)))
	conflicts := make([]map[string]any, len(overlapping))
	for i, req := range overlapping {
		c := map[string]any{
			"id":         req.ID.String(),
			"start_date": req.StartDate.Format("2006-01-02"),
			"end_date":   req.EndDate.Format("2006-01-02"),
			"status":     req.Status,
		}
		if req.LeaveType != nil {
			c["leave_type"] = req.LeaveType.Name
		}
		conflicts[i] = c
	}
	result.Details = map[string]any{"conflicts": conflicts}

	return result
}

// EvaluateHolidays fails when any active holiday falls inside the request.
func EvaluateHolidays(occurrences []holiday.Occurrence) RuleResult {
	result := validResult()

	if len(occurrences) == 0 {
		return result
	}

	result.fail(fmt.Sprintf("Request conflicts with %d holiday(s)", len(occurrences)))
	holidays := make([]map[string]any, len(occurrences))
	for i, occ := range occurrences {
		holidays[i] = map[string]any{
			"name": occ.Name,
			"date": occ.Date.Format("2006-01-02"),
		}
	}
	result.Details = map[string]any{"holidays": holidays}

	return result
}

// EvaluateEmployeeRules checks employee-level constraints: active status,
// probation window, long requests, and the December peak period.
func EvaluateEmployeeRules(today time.Time, empl *employee.Employee, start time.Time, requestedDays int) RuleResult {
	result := validResult()

	if !empl.IsActive {
		result.fail("Employee is not active")
	}
	if today.Before(empl.HireDate.AddDate(0, 0, probationDays)) {
		result.warn("Employee is still in probation period")
	}
	if requestedDays > longLeaveThreshold {
		result.warn("Request is for more than 30 days - may require special approval")
	}
	if start.Month() == time.December {
		result.warn("Request is during peak business period")
	}

	return result
}

// Suggestions proposes improvements for a candidate request. They never
// affect validity.
func Suggestions(today, start time.Time, requestedDays int, snapshot *BalanceSnapshot) []string {
	var suggestions []string

	if isWeekend(start) {
		suggestions = append(suggestions, "Consider starting on a weekday to maximize work days")
	}
	if snapshot != nil {
		threshold := decimal.NewFromInt(int64(requestedDays + lowBalanceMargin))
		if snapshot.Remaining.LessThan(threshold) {
			suggestions = append(suggestions, "Consider splitting the leave into smaller periods")
		}
	}
	if start.Sub(today) < 7*24*time.Hour {
		suggestions = append(suggestions, "Consider giving more advance notice for better planning")
	}

	return suggestions
}
