package balance_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Harendra62/leave-management/internal/balance"
	"github.com/Harendra62/leave-management/internal/employee"
	"github.com/Harendra62/leave-management/internal/leavetype"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeBalanceRepository struct {
	createFn           func(ctx context.Context, b *balance.LeaveBalance) error
	findForEmployeeFn  func(ctx context.Context, employeeID uuid.UUID, year int) ([]balance.LeaveBalance, error)
	findOneFn          func(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*balance.LeaveBalance, error)
	findOneForUpdateFn func(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*balance.LeaveBalance, error)
	updateFn           func(ctx context.Context, b *balance.LeaveBalance) error
}

func (f *fakeBalanceRepository) WithTx(tx *gorm.DB) balance.Repository { return f }

func (f *fakeBalanceRepository) Create(ctx context.Context, b *balance.LeaveBalance) error {
	if f.createFn != nil {
		return f.createFn(ctx, b)
	}
	return nil
}

func (f *fakeBalanceRepository) FindForEmployee(ctx context.Context, employeeID uuid.UUID, year int) ([]balance.LeaveBalance, error) {
	if f.findForEmployeeFn != nil {
		return f.findForEmployeeFn(ctx, employeeID, year)
	}
	return nil, nil
}

func (f *fakeBalanceRepository) FindOne(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*balance.LeaveBalance, error) {
	if f.findOneFn != nil {
		return f.findOneFn(ctx, employeeID, leaveTypeID, year)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBalanceRepository) FindOneForUpdate(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*balance.LeaveBalance, error) {
	if f.findOneForUpdateFn != nil {
		return f.findOneForUpdateFn(ctx, employeeID, leaveTypeID, year)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBalanceRepository) Update(ctx context.Context, b *balance.LeaveBalance) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, b)
	}
	return nil
}

type fakeEmployeeRepository struct {
	findAllFn  func(ctx context.Context, activeOnly bool) ([]employee.Employee, error)
	findByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *gorm.DB) employee.Repository { return f }
func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	return nil
}
func (f *fakeEmployeeRepository) FindAll(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, activeOnly)
	}
	return nil, nil
}
func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepository) FindByNumber(ctx context.Context, number string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepository) FindSubordinates(ctx context.Context, managerID string) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeRepository) Deactivate(ctx context.Context, id string) error        { return nil }

type fakeLeaveTypeRepository struct {
	findAllFn func(ctx context.Context, activeOnly bool) ([]leavetype.LeaveType, error)
}

func (f *fakeLeaveTypeRepository) WithTx(tx *gorm.DB) leavetype.Repository { return f }
func (f *fakeLeaveTypeRepository) Create(ctx context.Context, lt *leavetype.LeaveType) error {
	return nil
}
func (f *fakeLeaveTypeRepository) FindAll(ctx context.Context, activeOnly bool) ([]leavetype.LeaveType, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, activeOnly)
	}
	return nil, nil
}
func (f *fakeLeaveTypeRepository) FindByID(ctx context.Context, id string) (*leavetype.LeaveType, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeLeaveTypeRepository) FindActiveByName(ctx context.Context, name string) (*leavetype.LeaveType, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeLeaveTypeRepository) Update(ctx context.Context, lt *leavetype.LeaveType) error {
	return nil
}
func (f *fakeLeaveTypeRepository) Deactivate(ctx context.Context, id string) error { return nil }

type balanceServiceDeps struct {
	sqlDB   *sql.DB
	gdb     *gorm.DB
	sqlMock sqlmock.Sqlmock
	service balance.Service
	repo    *fakeBalanceRepository
	empls   *fakeEmployeeRepository
	types   *fakeLeaveTypeRepository
}

func setupBalanceServiceTest(t *testing.T) *balanceServiceDeps {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)

	repo := &fakeBalanceRepository{}
	empls := &fakeEmployeeRepository{}
	types := &fakeLeaveTypeRepository{}
	svc := balance.NewService(gdb, repo, empls, types)

	return &balanceServiceDeps{
		sqlDB:   sqlDB,
		gdb:     gdb,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		empls:   empls,
		types:   types,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func intPtr(v int) *int { return &v }

func TestBalanceService_Initialize(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	annualID := uuid.New()
	sickID := uuid.New()

	t.Run("success - only missing balances are created", func(t *testing.T) {
		deps := setupBalanceServiceTest(t)
		defer deps.sqlDB.Close()

		expectTx(t, deps.sqlMock, true)
		deps.empls.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: employeeID, IsActive: true}, nil
		}
		deps.types.findAllFn = func(ctx context.Context, activeOnly bool) ([]leavetype.LeaveType, error) {
			assert.True(t, activeOnly)
			return []leavetype.LeaveType{
				{ID: annualID, Name: "Annual Leave", MaxDaysPerYear: intPtr(21), IsActive: true},
				{ID: sickID, Name: "Sick Leave", MaxDaysPerYear: nil, IsActive: true},
			}, nil
		}
		deps.repo.findOneFn = func(ctx context.Context, eid, ltid uuid.UUID, year int) (*balance.LeaveBalance, error) {
			if ltid == annualID {
				// Annual balance already exists and must not be recreated.
				return &balance.LeaveBalance{ID: uuid.New(), EmployeeID: eid, LeaveTypeID: ltid, Year: year}, nil
			}
			return nil, gorm.ErrRecordNotFound
		}

		var created []*balance.LeaveBalance
		deps.repo.createFn = func(ctx context.Context, b *balance.LeaveBalance) error {
			created = append(created, b)
			return nil
		}

		resp, err := deps.service.Initialize(ctx, employeeID.String(), 2026)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Len(t, created, 1)
		assert.Equal(t, sickID, created[0].LeaveTypeID)
		assert.True(t, created[0].TotalAllocated.IsZero())
		assert.True(t, created[0].RemainingBalance.IsZero())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success - idempotent when everything exists", func(t *testing.T) {
		deps := setupBalanceServiceTest(t)
		defer deps.sqlDB.Close()

		expectTx(t, deps.sqlMock, true)
		deps.empls.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: employeeID, IsActive: true}, nil
		}
		deps.types.findAllFn = func(ctx context.Context, activeOnly bool) ([]leavetype.LeaveType, error) {
			return []leavetype.LeaveType{
				{ID: annualID, Name: "Annual Leave", MaxDaysPerYear: intPtr(21), IsActive: true},
			}, nil
		}
		deps.repo.findOneFn = func(ctx context.Context, eid, ltid uuid.UUID, year int) (*balance.LeaveBalance, error) {
			return &balance.LeaveBalance{ID: uuid.New()}, nil
		}
		deps.repo.createFn = func(ctx context.Context, b *balance.LeaveBalance) error {
			t.Fatal("no balance should be created")
			return nil
		}

		resp, err := deps.service.Initialize(ctx, employeeID.String(), 2026)

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})

	t.Run("negative employee not found", func(t *testing.T) {
		deps := setupBalanceServiceTest(t)
		defer deps.sqlDB.Close()

		deps.empls.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.Initialize(ctx, uuid.New().String(), 2026)

		assert.Error(t, err)
	})
}

func TestBalanceService_Consume(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	leaveTypeID := uuid.New()

	t.Run("success - debits and recalculates", func(t *testing.T) {
		deps := setupBalanceServiceTest(t)
		defer deps.sqlDB.Close()

		deps.repo.findOneForUpdateFn = func(ctx context.Context, eid, ltid uuid.UUID, year int) (*balance.LeaveBalance, error) {
			return &balance.LeaveBalance{
				ID:                  uuid.New(),
				EmployeeID:          eid,
				LeaveTypeID:         ltid,
				Year:                year,
				TotalAllocated:      decimal.NewFromInt(21),
				TotalUsed:           decimal.NewFromInt(5),
				TotalCarriedForward: decimal.NewFromInt(2),
				RemainingBalance:    decimal.NewFromInt(18),
			}, nil
		}

		var saved *balance.LeaveBalance
		deps.repo.updateFn = func(ctx context.Context, b *balance.LeaveBalance) error {
			saved = b
			return nil
		}

		err := deps.service.Consume(ctx, deps.gdb, employeeID, leaveTypeID, 2026, 3)

		assert.NoError(t, err)
		assert.NotNil(t, saved)
		assert.True(t, saved.TotalUsed.Equal(decimal.NewFromInt(8)))
		assert.True(t, saved.RemainingBalance.Equal(decimal.NewFromInt(15)))
	})

	t.Run("missing balance row is skipped", func(t *testing.T) {
		deps := setupBalanceServiceTest(t)
		defer deps.sqlDB.Close()

		deps.repo.findOneForUpdateFn = func(ctx context.Context, eid, ltid uuid.UUID, year int) (*balance.LeaveBalance, error) {
			return nil, gorm.ErrRecordNotFound
		}
		deps.repo.updateFn = func(ctx context.Context, b *balance.LeaveBalance) error {
			t.Fatal("update must not be called without a balance row")
			return nil
		}

		err := deps.service.Consume(ctx, deps.gdb, employeeID, leaveTypeID, 2026, 3)

		assert.NoError(t, err)
	})
}

func TestBalanceService_CarryForward(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	annualID := uuid.New()
	sickID := uuid.New()

	setup := func(deps *balanceServiceDeps, prev []balance.LeaveBalance) {
		deps.empls.findAllFn = func(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
			return []employee.Employee{{ID: employeeID, IsActive: true}}, nil
		}
		deps.types.findAllFn = func(ctx context.Context, activeOnly bool) ([]leavetype.LeaveType, error) {
			return []leavetype.LeaveType{
				{ID: annualID, Name: "Annual Leave", MaxDaysPerYear: intPtr(21), CarryForwardEnabled: true, MaxCarryForwardDays: intPtr(5)},
				{ID: sickID, Name: "Sick Leave", MaxDaysPerYear: intPtr(10)},
			}, nil
		}
		deps.repo.findForEmployeeFn = func(ctx context.Context, eid uuid.UUID, year int) ([]balance.LeaveBalance, error) {
			assert.Equal(t, 2025, year)
			return prev, nil
		}
	}

	t.Run("caps at max carry forward days", func(t *testing.T) {
		deps := setupBalanceServiceTest(t)
		defer deps.sqlDB.Close()

		expectTx(t, deps.sqlMock, true)
		setup(deps, []balance.LeaveBalance{
			{
				EmployeeID:       employeeID,
				LeaveTypeID:      annualID,
				Year:             2025,
				RemainingBalance: decimal.NewFromInt(9),
			},
		})

		var created *balance.LeaveBalance
		deps.repo.createFn = func(ctx context.Context, b *balance.LeaveBalance) error {
			created = b
			return nil
		}

		processed, err := deps.service.CarryForward(ctx, 2026)

		assert.NoError(t, err)
		assert.Equal(t, 1, processed)
		assert.NotNil(t, created)
		assert.True(t, created.TotalCarriedForward.Equal(decimal.NewFromInt(5)))
		assert.True(t, created.RemainingBalance.Equal(decimal.NewFromInt(26)))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("skips disabled types and exhausted balances", func(t *testing.T) {
		deps := setupBalanceServiceTest(t)
		defer deps.sqlDB.Close()

		expectTx(t, deps.sqlMock, true)
		setup(deps, []balance.LeaveBalance{
			{
				EmployeeID:       employeeID,
				LeaveTypeID:      sickID, // carry forward disabled
				Year:             2025,
				RemainingBalance: decimal.NewFromInt(4),
			},
			{
				EmployeeID:       employeeID,
				LeaveTypeID:      annualID,
				Year:             2025,
				RemainingBalance: decimal.NewFromInt(-2), // overdrawn
			},
		})
		deps.repo.createFn = func(ctx context.Context, b *balance.LeaveBalance) error {
			t.Fatal("nothing should carry forward")
			return nil
		}

		processed, err := deps.service.CarryForward(ctx, 2026)

		assert.NoError(t, err)
		assert.Equal(t, 0, processed)
	})

	t.Run("updates existing current year balance", func(t *testing.T) {
		deps := setupBalanceServiceTest(t)
		defer deps.sqlDB.Close()

		expectTx(t, deps.sqlMock, true)
		setup(deps, []balance.LeaveBalance{
			{
				EmployeeID:       employeeID,
				LeaveTypeID:      annualID,
				Year:             2025,
				RemainingBalance: decimal.NewFromInt(3),
			},
		})

		deps.repo.findOneFn = func(ctx context.Context, eid, ltid uuid.UUID, year int) (*balance.LeaveBalance, error) {
			return &balance.LeaveBalance{
				EmployeeID:       eid,
				LeaveTypeID:      ltid,
				Year:             year,
				TotalAllocated:   decimal.NewFromInt(21),
				TotalUsed:        decimal.NewFromInt(1),
				RemainingBalance: decimal.NewFromInt(20),
			}, nil
		}

		var updated *balance.LeaveBalance
		deps.repo.updateFn = func(ctx context.Context, b *balance.LeaveBalance) error {
			updated = b
			return nil
		}

		processed, err := deps.service.CarryForward(ctx, 2026)

		assert.NoError(t, err)
		assert.Equal(t, 1, processed)
		assert.NotNil(t, updated)
		assert.True(t, updated.TotalCarriedForward.Equal(decimal.NewFromInt(3)))
		assert.True(t, updated.RemainingBalance.Equal(decimal.NewFromInt(23)))
	})
}

func TestBalanceService_Remaining(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		deps := setupBalanceServiceTest(t)
		defer deps.sqlDB.Close()

		deps.repo.findOneFn = func(ctx context.Context, eid, ltid uuid.UUID, year int) (*balance.LeaveBalance, error) {
			return &balance.LeaveBalance{RemainingBalance: decimal.NewFromInt(12)}, nil
		}

		remaining, found, err := deps.service.Remaining(ctx, uuid.New(), uuid.New(), 2026)

		assert.NoError(t, err)
		assert.True(t, found)
		assert.True(t, remaining.Equal(decimal.NewFromInt(12)))
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupBalanceServiceTest(t)
		defer deps.sqlDB.Close()

		remaining, found, err := deps.service.Remaining(ctx, uuid.New(), uuid.New(), 2026)

		assert.NoError(t, err)
		assert.False(t, found)
		assert.True(t, remaining.IsZero())
	})
}
