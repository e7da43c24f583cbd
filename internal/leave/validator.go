package leave

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Harendra62/leave-management/internal/balance"
	"github.com/Harendra62/leave-management/internal/employee"
	"github.com/Harendra62/leave-management/internal/holiday"
	leaveerrors "github.com/Harendra62/leave-management/internal/leave/errors"
	"github.com/Harendra62/leave-management/internal/leavetype"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Validator orchestrates the rule evaluators over live data. The
// lightweight path gates request creation; the comprehensive path powers
// the dry-run validation endpoints.
type Validator struct {
	repo     Repository
	balances balance.Service
	holidays holiday.Service
	types    leavetype.Repository
	empls    employee.Repository
	logger   *zap.Logger
}

func NewValidator(
	repo Repository,
	balances balance.Service,
	holidays holiday.Service,
	types leavetype.Repository,
	empls employee.Repository,
	logger ...*zap.Logger,
) *Validator {
	l := zap.L().Named("leave.validator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.validator")
	}
	return &Validator{
		repo:     repo,
		balances: balances,
		holidays: holidays,
		types:    types,
		empls:    empls,
		logger:   l,
	}
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func daysInclusive(start, end time.Time) int {
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

// ValidateLightweight gates creation. Checks run in a fixed order and the
// first failure wins: overlaps, holidays, balance, type rules.
func (v *Validator) ValidateLightweight(ctx context.Context, employeeID, leaveTypeID uuid.UUID, start, end time.Time) error {
	overlapping, err := v.repo.FindOverlapping(ctx, employeeID, start, end, uuid.Nil)
	if err != nil {
		v.logger.Error("overlap check failed", zap.Error(err))
		return err
	}
	if len(overlapping) > 0 {
		return leaveerrors.ValidationFailed(fmt.Sprintf(
			"Overlapping leave request found. You have %d conflicting request(s).", len(overlapping)))
	}

	occurrences, err := v.holidays.ActiveInRange(ctx, start, end)
	if err != nil {
		v.logger.Error("holiday check failed", zap.Error(err))
		return err
	}
	if len(occurrences) > 0 {
		names := make([]string, len(occurrences))
		for i, occ := range occurrences {
			names[i] = occ.Name
		}
		return leaveerrors.ValidationFailed(fmt.Sprintf(
			"Holiday conflicts detected: %s", strings.Join(names, ", ")))
	}

	remaining, found, err := v.balances.Remaining(ctx, employeeID, leaveTypeID, time.Now().Year())
	if err != nil {
		v.logger.Error("balance check failed", zap.Error(err))
		return err
	}
	if !found {
		return leaveerrors.ValidationFailed("No leave balance found for this leave type")
	}
	requestedDays := daysInclusive(start, end)
	if remaining.LessThan(decimal.NewFromInt(int64(requestedDays))) {
		return leaveerrors.ValidationFailed(fmt.Sprintf(
			"Insufficient leave balance. Available: %s days, Requested: %d days",
			remaining.String(), requestedDays))
	}

	lt, err := v.types.FindByID(ctx, leaveTypeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leaveerrors.ValidationFailed("Invalid or inactive leave type")
		}
		v.logger.Error("leave type check failed", zap.Error(err))
		return err
	}
	if !lt.IsActive {
		return leaveerrors.ValidationFailed("Invalid or inactive leave type")
	}
	if lt.MaxConsecutiveDays != nil && requestedDays > *lt.MaxConsecutiveDays {
		return leaveerrors.ValidationFailed(fmt.Sprintf(
			"Request exceeds maximum consecutive days allowed (%d days)", *lt.MaxConsecutiveDays))
	}

	return nil
}

// ValidateComprehensive runs every evaluator and aggregates the outcome
// instead of stopping at the first failure. Nothing is persisted.
func (v *Validator) ValidateComprehensive(ctx context.Context, req CreateLeaveRequest) (Verdict, error) {
	verdict := Verdict{
		IsValid:  true,
		Errors:   []string{},
		Warnings: []string{},
		Details:  map[string]any{},
	}

	empl, err := v.empls.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			verdict.IsValid = false
			verdict.Errors = append(verdict.Errors, "Employee not found")
			return verdict, nil
		}
		v.logger.Error("comprehensive validation fetch employee failed", zap.Error(err))
		return Verdict{}, err
	}

	lt, err := v.types.FindByID(ctx, req.LeaveTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			verdict.IsValid = false
			verdict.Errors = append(verdict.Errors, "Invalid leave type")
			return verdict, nil
		}
		v.logger.Error("comprehensive validation fetch leave type failed", zap.Error(err))
		return Verdict{}, err
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return Verdict{}, err
	}
	requestedDays := daysInclusive(start, end)
	now := today()

	snapshot, err := v.balanceSnapshot(ctx, empl.ID, lt.ID)
	if err != nil {
		return Verdict{}, err
	}
	overlapping, err := v.repo.FindOverlapping(ctx, empl.ID, start, end, uuid.Nil)
	if err != nil {
		v.logger.Error("comprehensive validation overlap query failed", zap.Error(err))
		return Verdict{}, err
	}
	occurrences, err := v.holidays.ActiveInRange(ctx, start, end)
	if err != nil {
		v.logger.Error("comprehensive validation holiday query failed", zap.Error(err))
		return Verdict{}, err
	}

	sections := []struct {
		key    string
		result RuleResult
	}{
		{"date_validation", EvaluateDates(now, start, end)},
		{"leave_type_validation", EvaluateTypeRules(lt, requestedDays, req.Reason, req.MedicalCertificateURL)},
		{"balance_validation", EvaluateBalance(snapshot, requestedDays)},
		{"conflict_validation", EvaluateConflicts(overlapping)},
		{"holiday_validation", EvaluateHolidays(occurrences)},
		{"business_rules_validation", EvaluateEmployeeRules(now, empl, start, requestedDays)},
	}

	for _, section := range sections {
		verdict.Details[section.key] = section.result
		if !section.result.IsValid {
			verdict.IsValid = false
			verdict.Errors = append(verdict.Errors, section.result.Errors...)
		}
		verdict.Warnings = append(verdict.Warnings, section.result.Warnings...)
	}

	verdict.Suggestions = Suggestions(now, start, requestedDays, snapshot)

	return verdict, nil
}

func (v *Validator) balanceSnapshot(ctx context.Context, employeeID, leaveTypeID uuid.UUID) (*BalanceSnapshot, error) {
	b, err := v.balances.Snapshot(ctx, employeeID, leaveTypeID, time.Now().Year())
	if err != nil {
		v.logger.Error("comprehensive validation balance query failed", zap.Error(err))
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	return &BalanceSnapshot{
		TotalAllocated:      b.TotalAllocated,
		TotalUsed:           b.TotalUsed,
		TotalCarriedForward: b.TotalCarriedForward,
		Remaining:           b.RemainingBalance,
	}, nil
}

func parseDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidLeaveDates
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidLeaveDates
	}
	return start, end, nil
}
