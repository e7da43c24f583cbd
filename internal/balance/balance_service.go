package balance

import (
	"context"
	"errors"
	"time"

	balanceerrors "github.com/Harendra62/leave-management/internal/balance/errors"
	"github.com/Harendra62/leave-management/internal/employee"
	"github.com/Harendra62/leave-management/internal/leavetype"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=balance_service.go -destination=mock/balance_service_mock.go -package=mock
type Service interface {
	// Initialize creates the current balances an employee is missing for the
	// given year, one per active leave type. Existing rows are left untouched.
	Initialize(ctx context.Context, employeeID string, year int) ([]BalanceResponse, error)

	// Consume debits an approved request's days inside the caller's
	// transaction. A missing balance row is logged and skipped so an approval
	// never fails on bookkeeping.
	Consume(ctx context.Context, tx *gorm.DB, employeeID, leaveTypeID uuid.UUID, year int, days int) error

	// CarryForward moves unused allowance from year-1 into year for every
	// active employee whose leave type allows it. Returns the number of
	// balances written.
	CarryForward(ctx context.Context, year int) (int, error)

	GetForEmployee(ctx context.Context, employeeID string, year int) ([]BalanceResponse, error)

	// Remaining reports the remaining balance for one employee and leave
	// type. The second result is false when no balance row exists.
	Remaining(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (decimal.Decimal, bool, error)

	// Snapshot returns the full balance row for one employee and leave
	// type, or nil when no row exists.
	Snapshot(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*LeaveBalance, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	empls  employee.Repository
	types  leavetype.Repository
	logger *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	empls employee.Repository,
	types leavetype.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("balance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		empls:  empls,
		types:  types,
		logger: l,
	}
}

func (s *service) Initialize(ctx context.Context, employeeID string, year int) ([]BalanceResponse, error) {
	s.logger.Debug("initialize balances requested",
		zap.String("employee_id", employeeID),
		zap.Int("year", year),
	)

	empl, err := s.empls.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("initialize balances employee not found", zap.String("employee_id", employeeID))
			return nil, balanceerrors.ErrEmployeeNotFound
		}
		s.logger.Error("initialize balances fetch employee failed", zap.Error(err))
		return nil, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("initialize balances begin tx failed", zap.Error(tx.Error))
		return nil, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	leaveTypes, err := s.types.WithTx(tx).FindAll(ctx, true)
	if err != nil {
		s.logger.Error("initialize balances list leave types failed", zap.Error(err))
		return nil, err
	}

	var created []LeaveBalance
	for _, lt := range leaveTypes {
		if _, err := qtx.FindOne(ctx, empl.ID, lt.ID, year); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("initialize balances lookup failed", zap.Error(err))
			return nil, err
		}

		allocated := decimal.Zero
		if lt.MaxDaysPerYear != nil {
			allocated = decimal.NewFromInt(int64(*lt.MaxDaysPerYear))
		}

		b := LeaveBalance{
			ID:                  uuid.New(),
			EmployeeID:          empl.ID,
			LeaveTypeID:         lt.ID,
			Year:                year,
			TotalAllocated:      allocated,
			TotalUsed:           decimal.Zero,
			TotalCarriedForward: decimal.Zero,
			RemainingBalance:    allocated,
		}
		if err := qtx.Create(ctx, &b); err != nil {
			s.logger.Error("initialize balances persist failed",
				zap.String("leave_type_id", lt.ID.String()),
				zap.Error(err),
			)
			return nil, err
		}
		created = append(created, b)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("initialize balances commit failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("initialize balances success",
		zap.String("employee_id", employeeID),
		zap.Int("year", year),
		zap.Int("created", len(created)),
	)

	return mapToListResponse(created), nil
}

func (s *service) Consume(ctx context.Context, tx *gorm.DB, employeeID, leaveTypeID uuid.UUID, year int, days int) error {
	qtx := s.repo.WithTx(tx)

	b, err := qtx.FindOneForUpdate(ctx, employeeID, leaveTypeID, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("no balance found to consume",
				zap.String("employee_id", employeeID.String()),
				zap.String("leave_type_id", leaveTypeID.String()),
				zap.Int("year", year),
			)
			return nil
		}
		s.logger.Error("consume balance lock failed", zap.Error(err))
		return err
	}

	b.TotalUsed = b.TotalUsed.Add(decimal.NewFromInt(int64(days)))
	b.recalculate()

	if err := qtx.Update(ctx, b); err != nil {
		s.logger.Error("consume balance persist failed", zap.Error(err))
		return err
	}

	s.logger.Info("balance consumed",
		zap.String("employee_id", employeeID.String()),
		zap.String("leave_type_id", leaveTypeID.String()),
		zap.String("total_used", b.TotalUsed.String()),
		zap.String("remaining", b.RemainingBalance.String()),
	)
	return nil
}

func (s *service) CarryForward(ctx context.Context, year int) (int, error) {
	s.logger.Debug("carry forward requested", zap.Int("year", year))

	employees, err := s.empls.FindAll(ctx, true)
	if err != nil {
		s.logger.Error("carry forward list employees failed", zap.Error(err))
		return 0, err
	}
	leaveTypes, err := s.types.FindAll(ctx, false)
	if err != nil {
		s.logger.Error("carry forward list leave types failed", zap.Error(err))
		return 0, err
	}
	typesByID := make(map[uuid.UUID]leavetype.LeaveType, len(leaveTypes))
	for _, lt := range leaveTypes {
		typesByID[lt.ID] = lt
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("carry forward begin tx failed", zap.Error(tx.Error))
		return 0, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	processed := 0
	for _, empl := range employees {
		prevBalances, err := qtx.FindForEmployee(ctx, empl.ID, year-1)
		if err != nil {
			s.logger.Error("carry forward fetch previous balances failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return 0, err
		}

		for _, prev := range prevBalances {
			lt, ok := typesByID[prev.LeaveTypeID]
			if !ok || !lt.CarryForwardEnabled {
				continue
			}

			amount := prev.RemainingBalance
			if lt.MaxCarryForwardDays != nil {
				limit := decimal.NewFromInt(int64(*lt.MaxCarryForwardDays))
				if limit.LessThan(amount) {
					amount = limit
				}
			}
			if !amount.IsPositive() {
				continue
			}

			current, err := qtx.FindOne(ctx, empl.ID, lt.ID, year)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				allocated := decimal.Zero
				if lt.MaxDaysPerYear != nil {
					allocated = decimal.NewFromInt(int64(*lt.MaxDaysPerYear))
				}
				b := LeaveBalance{
					ID:                  uuid.New(),
					EmployeeID:          empl.ID,
					LeaveTypeID:         lt.ID,
					Year:                year,
					TotalAllocated:      allocated,
					TotalUsed:           decimal.Zero,
					TotalCarriedForward: amount,
					RemainingBalance:    allocated.Add(amount),
				}
				if err := qtx.Create(ctx, &b); err != nil {
					s.logger.Error("carry forward create balance failed", zap.Error(err))
					return 0, err
				}
			} else if err != nil {
				s.logger.Error("carry forward fetch current balance failed", zap.Error(err))
				return 0, err
			} else {
				current.TotalCarriedForward = amount
				current.recalculate()
				if err := qtx.Update(ctx, current); err != nil {
					s.logger.Error("carry forward update balance failed", zap.Error(err))
					return 0, err
				}
			}
			processed++
		}
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("carry forward commit failed", zap.Error(err))
		return 0, err
	}

	s.logger.Info("carry forward success", zap.Int("year", year), zap.Int("processed", processed))
	return processed, nil
}

func (s *service) GetForEmployee(ctx context.Context, employeeID string, year int) ([]BalanceResponse, error) {
	if year <= 0 {
		year = time.Now().Year()
	}
	s.logger.Debug("get balances requested",
		zap.String("employee_id", employeeID),
		zap.Int("year", year),
	)

	empl, err := s.empls.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, balanceerrors.ErrEmployeeNotFound
		}
		s.logger.Error("get balances fetch employee failed", zap.Error(err))
		return nil, err
	}

	balances, err := s.repo.FindForEmployee(ctx, empl.ID, year)
	if err != nil {
		s.logger.Error("get balances failed", zap.Error(err))
		return nil, err
	}

	return mapToListResponse(balances), nil
}

func (s *service) Remaining(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (decimal.Decimal, bool, error) {
	b, err := s.repo.FindOne(ctx, employeeID, leaveTypeID, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, false, nil
		}
		s.logger.Error("remaining balance lookup failed", zap.Error(err))
		return decimal.Zero, false, err
	}
	return b.RemainingBalance, true, nil
}

func (s *service) Snapshot(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*LeaveBalance, error) {
	b, err := s.repo.FindOne(ctx, employeeID, leaveTypeID, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("balance snapshot lookup failed", zap.Error(err))
		return nil, err
	}
	return b, nil
}

func mapToResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		ID:                  b.ID.String(),
		EmployeeID:          b.EmployeeID.String(),
		LeaveTypeID:         b.LeaveTypeID.String(),
		Year:                b.Year,
		TotalAllocated:      b.TotalAllocated,
		TotalUsed:           b.TotalUsed,
		TotalCarriedForward: b.TotalCarriedForward,
		RemainingBalance:    b.RemainingBalance,
	}
}

func mapToListResponse(balances []LeaveBalance) []BalanceResponse {
	res := make([]BalanceResponse, len(balances))
	for i, b := range balances {
		res[i] = mapToResponse(b)
	}
	return res
}
