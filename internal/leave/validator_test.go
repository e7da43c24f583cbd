package leave_test

import (
	"context"
	"testing"
	"time"

	"github.com/Harendra62/leave-management/internal/balance"
	"github.com/Harendra62/leave-management/internal/employee"
	"github.com/Harendra62/leave-management/internal/holiday"
	"github.com/Harendra62/leave-management/internal/leave"
	"github.com/Harendra62/leave-management/internal/leavetype"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type validatorDeps struct {
	validator *leave.Validator
	repo      *fakeLeaveRepository
	empls     *fakeEmployeeRepository
	types     *fakeLeaveTypeRepository
	balances  *fakeBalanceService
	holidays  *fakeHolidayService
}

func setupValidatorTest(t *testing.T) *validatorDeps {
	t.Helper()

	repo := &fakeLeaveRepository{}
	empls := &fakeEmployeeRepository{}
	types := &fakeLeaveTypeRepository{}
	balances := &fakeBalanceService{}
	holidays := &fakeHolidayService{}

	return &validatorDeps{
		validator: leave.NewValidator(repo, balances, holidays, types, empls),
		repo:      repo,
		empls:     empls,
		types:     types,
		balances:  balances,
		holidays:  holidays,
	}
}

func TestValidator_ValidateLightweight(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	typeID := uuid.New()
	start := time.Date(2027, time.March, 8, 0, 0, 0, 0, time.UTC)
	end := time.Date(2027, time.March, 10, 0, 0, 0, 0, time.UTC)

	healthyType := func(ctx context.Context, id string) (*leavetype.LeaveType, error) {
		return &leavetype.LeaveType{ID: typeID, Name: "Annual Leave", IsActive: true}, nil
	}
	healthyBalance := func(ctx context.Context, eid, ltid uuid.UUID, year int) (decimal.Decimal, bool, error) {
		return decimal.NewFromInt(20), true, nil
	}

	t.Run("valid request passes", func(t *testing.T) {
		deps := setupValidatorTest(t)
		deps.types.findByIDFn = healthyType
		deps.balances.remainingFn = healthyBalance

		err := deps.validator.ValidateLightweight(ctx, employeeID, typeID, start, end)
		assert.NoError(t, err)
	})

	t.Run("overlap reported before holiday conflict", func(t *testing.T) {
		deps := setupValidatorTest(t)
		deps.repo.findOverlappingFn = func(ctx context.Context, eid uuid.UUID, s, e time.Time, exclude uuid.UUID) ([]leave.LeaveRequest, error) {
			return []leave.LeaveRequest{{ID: uuid.New()}, {ID: uuid.New()}}, nil
		}
		deps.holidays.activeInRangeFn = func(ctx context.Context, s, e time.Time) ([]holiday.Occurrence, error) {
			return []holiday.Occurrence{{Name: "Founders Day", Date: start}}, nil
		}

		err := deps.validator.ValidateLightweight(ctx, employeeID, typeID, start, end)
		assert.EqualError(t, err, "Overlapping leave request found. You have 2 conflicting request(s).")
	})

	t.Run("holiday conflict lists the names", func(t *testing.T) {
		deps := setupValidatorTest(t)
		deps.holidays.activeInRangeFn = func(ctx context.Context, s, e time.Time) ([]holiday.Occurrence, error) {
			return []holiday.Occurrence{
				{Name: "Founders Day", Date: start},
				{Name: "Harvest Festival", Date: end},
			}, nil
		}

		err := deps.validator.ValidateLightweight(ctx, employeeID, typeID, start, end)
		assert.EqualError(t, err, "Holiday conflicts detected: Founders Day, Harvest Festival")
	})

	t.Run("missing balance row", func(t *testing.T) {
		deps := setupValidatorTest(t)

		err := deps.validator.ValidateLightweight(ctx, employeeID, typeID, start, end)
		assert.EqualError(t, err, "No leave balance found for this leave type")
	})

	t.Run("insufficient balance", func(t *testing.T) {
		deps := setupValidatorTest(t)
		deps.balances.remainingFn = func(ctx context.Context, eid, ltid uuid.UUID, year int) (decimal.Decimal, bool, error) {
			return decimal.NewFromInt(1), true, nil
		}

		err := deps.validator.ValidateLightweight(ctx, employeeID, typeID, start, end)
		assert.EqualError(t, err, "Insufficient leave balance. Available: 1 days, Requested: 3 days")
	})

	t.Run("inactive leave type", func(t *testing.T) {
		deps := setupValidatorTest(t)
		deps.balances.remainingFn = healthyBalance
		deps.types.findByIDFn = func(ctx context.Context, id string) (*leavetype.LeaveType, error) {
			return &leavetype.LeaveType{ID: typeID, Name: "Annual Leave", IsActive: false}, nil
		}

		err := deps.validator.ValidateLightweight(ctx, employeeID, typeID, start, end)
		assert.EqualError(t, err, "Invalid or inactive leave type")
	})

	t.Run("unknown leave type", func(t *testing.T) {
		deps := setupValidatorTest(t)
		deps.balances.remainingFn = healthyBalance
		deps.types.findByIDFn = func(ctx context.Context, id string) (*leavetype.LeaveType, error) {
			return nil, gorm.ErrRecordNotFound
		}

		err := deps.validator.ValidateLightweight(ctx, employeeID, typeID, start, end)
		assert.EqualError(t, err, "Invalid or inactive leave type")
	})

	t.Run("consecutive day cap", func(t *testing.T) {
		deps := setupValidatorTest(t)
		deps.balances.remainingFn = healthyBalance
		deps.types.findByIDFn = func(ctx context.Context, id string) (*leavetype.LeaveType, error) {
			return &leavetype.LeaveType{ID: typeID, Name: "Annual Leave", IsActive: true, MaxConsecutiveDays: intPtr(2)}, nil
		}

		err := deps.validator.ValidateLightweight(ctx, employeeID, typeID, start, end)
		assert.EqualError(t, err, "Request exceeds maximum consecutive days allowed (2 days)")
	})
}

func TestValidator_ValidateComprehensive(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	typeID := uuid.New()

	// Next Monday at least two weeks out keeps the date evaluators quiet.
	nextMonday := time.Now().UTC().AddDate(0, 0, 14)
	for nextMonday.Weekday() != time.Monday {
		nextMonday = nextMonday.AddDate(0, 0, 1)
	}
	startDate := nextMonday.Format("2006-01-02")
	endDate := nextMonday.AddDate(0, 0, 2).Format("2006-01-02")

	activeEmployee := func(ctx context.Context, id string) (*employee.Employee, error) {
		return &employee.Employee{
			ID:       employeeID,
			FullName: "Jonah Reyes",
			IsActive: true,
			HireDate: time.Now().UTC().AddDate(-3, 0, 0),
		}, nil
	}
	annualType := func(ctx context.Context, id string) (*leavetype.LeaveType, error) {
		return &leavetype.LeaveType{ID: typeID, Name: "Annual Leave", IsActive: true}, nil
	}

	t.Run("unknown employee short-circuits", func(t *testing.T) {
		deps := setupValidatorTest(t)

		verdict, err := deps.validator.ValidateComprehensive(ctx, leave.CreateLeaveRequest{
			EmployeeID:  employeeID.String(),
			LeaveTypeID: typeID.String(),
			StartDate:   startDate,
			EndDate:     endDate,
		})

		assert.NoError(t, err)
		assert.False(t, verdict.IsValid)
		assert.Equal(t, []string{"Employee not found"}, verdict.Errors)
	})

	t.Run("all failures aggregated", func(t *testing.T) {
		deps := setupValidatorTest(t)
		deps.empls.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: employeeID, IsActive: false, HireDate: time.Now().UTC().AddDate(-3, 0, 0)}, nil
		}
		deps.types.findByIDFn = annualType
		deps.repo.findOverlappingFn = func(ctx context.Context, eid uuid.UUID, s, e time.Time, exclude uuid.UUID) ([]leave.LeaveRequest, error) {
			return []leave.LeaveRequest{{ID: uuid.New(), Status: leave.StatusPending}}, nil
		}

		verdict, err := deps.validator.ValidateComprehensive(ctx, leave.CreateLeaveRequest{
			EmployeeID:  employeeID.String(),
			LeaveTypeID: typeID.String(),
			StartDate:   startDate,
			EndDate:     endDate,
		})

		assert.NoError(t, err)
		assert.False(t, verdict.IsValid)
		assert.Contains(t, verdict.Errors, "No leave balance found for this leave type")
		assert.Contains(t, verdict.Errors, "Found 1 overlapping request(s)")
		assert.Contains(t, verdict.Errors, "Employee is not active")
		for _, key := range []string{
			"date_validation",
			"leave_type_validation",
			"balance_validation",
			"conflict_validation",
			"holiday_validation",
			"business_rules_validation",
		} {
			assert.Contains(t, verdict.Details, key)
		}
	})

	t.Run("clean request is valid with no suggestions", func(t *testing.T) {
		deps := setupValidatorTest(t)
		deps.empls.findByIDFn = activeEmployee
		deps.types.findByIDFn = annualType
		deps.balances.snapshotFn = func(ctx context.Context, eid, ltid uuid.UUID, year int) (*balance.LeaveBalance, error) {
			return &balance.LeaveBalance{
				EmployeeID:       eid,
				LeaveTypeID:      ltid,
				Year:             year,
				TotalAllocated:   decimal.NewFromInt(21),
				RemainingBalance: decimal.NewFromInt(21),
			}, nil
		}

		verdict, err := deps.validator.ValidateComprehensive(ctx, leave.CreateLeaveRequest{
			EmployeeID:  employeeID.String(),
			LeaveTypeID: typeID.String(),
			StartDate:   startDate,
			EndDate:     endDate,
		})

		assert.NoError(t, err)
		assert.True(t, verdict.IsValid)
		assert.Empty(t, verdict.Errors)
		assert.Empty(t, verdict.Suggestions)
	})
}
