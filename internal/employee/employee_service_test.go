package employee_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/Harendra62/leave-management/internal/employee"
	employeeerrors "github.com/Harendra62/leave-management/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	createFn           func(ctx context.Context, empl *employee.Employee) error
	findAllFn          func(ctx context.Context, activeOnly bool) ([]employee.Employee, error)
	findByIDFn         func(ctx context.Context, id string) (*employee.Employee, error)
	findByNumberFn     func(ctx context.Context, number string) (*employee.Employee, error)
	findSubordinatesFn func(ctx context.Context, managerID string) ([]employee.Employee, error)
	updateFn           func(ctx context.Context, empl *employee.Employee) error
	deactivateFn       func(ctx context.Context, id string) error
}

func (f *fakeEmployeeRepository) WithTx(tx *gorm.DB) employee.Repository {
	return f
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, empl *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, empl)
	}
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
	if f.findByNumberFn != nil {
		return f.findByNumberFn(ctx, number)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindSubordinates(ctx context.Context, managerID string) ([]employee.Employee, error) {
	if f.findSubordinatesFn != nil {
		return f.findSubordinatesFn(ctx, managerID)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, empl *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmployeeRepository) Deactivate(ctx context.Context, id string) error {
	if f.deactivateFn != nil {
		return f.deactivateFn(ctx, id)
	}
	return nil
}

type fakeCounterRepository struct {
	getNextValueFn func(ctx context.Context, counterType string) (int64, error)
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	if f.getNextValueFn != nil {
		return f.getNextValueFn(ctx, counterType)
	}
	return 1, nil
}

type employeeServiceDeps struct {
	sqlDB   *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *fakeEmployeeRepository
	counter *fakeCounterRepository
}

func setupEmployeeServiceTest(t *testing.T) *employeeServiceDeps {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)

	repo := &fakeEmployeeRepository{}
	counterRepo := &fakeCounterRepository{}
	svc := employee.NewService(gdb, repo, counterRepo)

	return &employeeServiceDeps{
		sqlDB:   sqlDB,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		counter: counterRepo,
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

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - auto generate employee number", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.sqlDB.Close()

		expectTx(t, deps.sqlMock, true)
		req := employee.CreateEmployeeRequest{
			FullName:   "Jane Smith",
			Email:      "jane.smith@example.com",
			Department: "Engineering",
			Position:   "Backend Engineer",
			HireDate:   "2026-01-05",
		}

		deps.counter.getNextValueFn = func(ctx context.Context, counterType string) (int64, error) {
			assert.Equal(t, "employee_number", counterType)
			return 123, nil
		}
		deps.repo.createFn = func(ctx context.Context, empl *employee.Employee) error {
			assert.Equal(t, "EMP-000123", empl.EmployeeNumber)
			assert.Equal(t, req.FullName, empl.FullName)
			assert.Equal(t, req.Email, empl.Email)
			assert.True(t, empl.IsActive)
			assert.Nil(t, empl.ManagerID)
			return nil
		}

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "EMP-000123", resp.EmployeeNumber)
		assert.Equal(t, "2026-01-05", resp.HireDate)
		assert.True(t, resp.IsActive)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success - with manager", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.sqlDB.Close()

		expectTx(t, deps.sqlMock, true)
		managerID := uuid.New()
		req := employee.CreateEmployeeRequest{
			EmployeeNumber: "EMP-000200",
			FullName:       "John Doe",
			Email:          "john.doe@example.com",
			Department:     "Engineering",
			Position:       "Backend Engineer",
			ManagerID:      managerID.String(),
			HireDate:       "2026-02-01",
		}

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			assert.Equal(t, managerID.String(), id)
			return &employee.Employee{ID: managerID, IsActive: true}, nil
		}
		deps.repo.createFn = func(ctx context.Context, empl *employee.Employee) error {
			assert.NotNil(t, empl.ManagerID)
			assert.Equal(t, managerID, *empl.ManagerID)
			return nil
		}

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, managerID.String(), resp.ManagerID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid hire date", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.sqlDB.Close()

		req := employee.CreateEmployeeRequest{
			FullName:   "Jane Smith",
			Email:      "jane@example.com",
			Department: "HR",
			Position:   "HR Generalist",
			HireDate:   "05-01-2026",
		}

		_, err := deps.service.Create(ctx, req)

		assert.Error(t, err)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidHireDate)
	})

	t.Run("negative manager not found", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.sqlDB.Close()

		expectTx(t, deps.sqlMock, false)
		req := employee.CreateEmployeeRequest{
			FullName:   "Jane Smith",
			Email:      "jane@example.com",
			Department: "HR",
			Position:   "HR Generalist",
			ManagerID:  uuid.New().String(),
			HireDate:   "2026-01-05",
		}

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.Create(ctx, req)

		assert.Error(t, err)
		assert.ErrorIs(t, err, employeeerrors.ErrManagerNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative inactive manager", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.sqlDB.Close()

		expectTx(t, deps.sqlMock, false)
		managerID := uuid.New()
		req := employee.CreateEmployeeRequest{
			FullName:   "Jane Smith",
			Email:      "jane@example.com",
			Department: "HR",
			Position:   "HR Generalist",
			ManagerID:  managerID.String(),
			HireDate:   "2026-01-05",
		}

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: managerID, IsActive: false}, nil
		}

		_, err := deps.service.Create(ctx, req)

		assert.Error(t, err)
		assert.ErrorIs(t, err, employeeerrors.ErrManagerNotFound)
	})

	t.Run("negative duplicate email -> conflict", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.sqlDB.Close()

		expectTx(t, deps.sqlMock, false)
		req := employee.CreateEmployeeRequest{
			EmployeeNumber: "EMP-000300",
			FullName:       "Jane Smith",
			Email:          "jane@example.com",
			Department:     "HR",
			Position:       "HR Generalist",
			HireDate:       "2026-01-05",
		}

		deps.repo.createFn = func(ctx context.Context, empl *employee.Employee) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"}
		}

		_, err := deps.service.Create(ctx, req)

		assert.Error(t, err)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.sqlDB.Close()

		deps.repo.findAllFn = func(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
			assert.True(t, activeOnly)
			return []employee.Employee{
				{ID: uuid.New(), FullName: "Alice", Email: "alice@example.com", IsActive: true},
				{ID: uuid.New(), FullName: "Bob", Email: "bob@example.com", IsActive: true},
			}, nil
		}

		resp, err := deps.service.GetAll(ctx, true)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Alice", resp[0].FullName)
	})

	t.Run("negative repo error", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.sqlDB.Close()

		deps.repo.findAllFn = func(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
			return nil, errors.New("db error")
		}

		resp, err := deps.service.GetAll(ctx, true)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.sqlDB.Close()

		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*employee.Employee, error) {
			return &employee.Employee{
				ID:             uuid.MustParse(targetID),
				EmployeeNumber: "EMP-000042",
				FullName:       "Alice",
			}, nil
		}

		resp, err := deps.service.GetByID(ctx, id)

		assert.NoError(t, err)
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, "EMP-000042", resp.EmployeeNumber)
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.sqlDB.Close()

		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		}

		resp, err := deps.service.GetByID(ctx, id)

		assert.Error(t, err)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.Empty(t, resp.ID)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.sqlDB.Close()

		expectTx(t, deps.sqlMock, true)
		req := employee.UpdateEmployeeRequest{
			FullName:   "Alice Updated",
			Email:      "alice.updated@example.com",
			Department: "Platform",
			Position:   "Staff Engineer",
		}

		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*employee.Employee, error) {
			return &employee.Employee{ID: id, FullName: "Alice", IsActive: true}, nil
		}
		deps.repo.updateFn = func(ctx context.Context, empl *employee.Employee) error {
			assert.Equal(t, req.FullName, empl.FullName)
			assert.Equal(t, req.Email, empl.Email)
			assert.Equal(t, req.Department, empl.Department)
			return nil
		}

		resp, err := deps.service.Update(ctx, id.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, req.FullName, resp.FullName)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative employee is own manager", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.sqlDB.Close()

		expectTx(t, deps.sqlMock, false)
		req := employee.UpdateEmployeeRequest{
			FullName:   "Alice",
			Email:      "alice@example.com",
			Department: "Platform",
			Position:   "Staff Engineer",
			ManagerID:  id.String(),
		}

		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*employee.Employee, error) {
			return &employee.Employee{ID: id, IsActive: true}, nil
		}

		_, err := deps.service.Update(ctx, id.String(), req)

		assert.Error(t, err)
		assert.ErrorIs(t, err, employeeerrors.ErrManagerNotFound)
	})
}

func TestEmployeeService_Deactivate(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.sqlDB.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*employee.Employee, error) {
			return &employee.Employee{ID: id, IsActive: true}, nil
		}
		deps.repo.deactivateFn = func(ctx context.Context, targetID string) error {
			assert.Equal(t, id.String(), targetID)
			return nil
		}

		err := deps.service.Deactivate(ctx, id.String())

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative already inactive", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.sqlDB.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*employee.Employee, error) {
			return &employee.Employee{ID: id, IsActive: false}, nil
		}

		err := deps.service.Deactivate(ctx, id.String())

		assert.Error(t, err)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeInactive)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
