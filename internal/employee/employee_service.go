package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	employeeerrors "github.com/Harendra62/leave-management/internal/employee/errors"
	"github.com/Harendra62/leave-management/internal/shared/contextutil"
	"github.com/Harendra62/leave-management/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetByNumber(ctx context.Context, number string) (EmployeeResponse, error)
	GetSubordinates(ctx context.Context, managerID string) ([]EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	db      *gorm.DB
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("department", req.Department),
	)

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		s.logger.Warn("create employee invalid hire_date",
			zap.String("hire_date", req.HireDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return EmployeeResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	managerID, err := s.resolveManager(ctx, qtx, req.ManagerID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	if req.EmployeeNumber == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "employee_number")
		if err != nil {
			s.logger.Error("create employee generate number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeNumber = fmt.Sprintf("EMP-%06d", nextVal)
	}

	empl := &Employee{
		ID:             uuid.New(),
		EmployeeNumber: req.EmployeeNumber,
		FullName:       req.FullName,
		Email:          req.Email,
		Department:     req.Department,
		Position:       req.Position,
		ManagerID:      managerID,
		IsActive:       true,
		HireDate:       hireDate,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_number", empl.EmployeeNumber),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.Bool("active_only", activeOnly))
	empls, err := s.repo.FindAll(ctx, activeOnly)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) GetByNumber(ctx context.Context, number string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by number requested", zap.String("employee_number", number))
	empl, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		s.logger.Error("get employee by number failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) GetSubordinates(ctx context.Context, managerID string) ([]EmployeeResponse, error) {
	s.logger.Debug("get subordinates requested", zap.String("manager_id", managerID))
	empls, err := s.repo.FindSubordinates(ctx, managerID)
	if err != nil {
		s.logger.Error("get subordinates failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(tx.Error))
		return EmployeeResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	managerID, err := s.resolveManager(ctx, qtx, req.ManagerID)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if managerID != nil && *managerID == empl.ID {
		s.logger.Warn("update employee self manager rejected", zap.String("employee_id", id))
		return EmployeeResponse{}, employeeerrors.ErrManagerNotFound
	}

	empl.FullName = req.FullName
	empl.Email = req.Email
	empl.Department = req.Department
	empl.Position = req.Position
	empl.ManagerID = managerID

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	s.logger.Debug("deactivate employee requested", zap.String("employee_id", id))

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("deactivate employee begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("deactivate employee fetch existing failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if !empl.IsActive {
		s.logger.Warn("deactivate employee already inactive", zap.String("employee_id", id))
		return employeeerrors.ErrEmployeeInactive
	}

	if err := qtx.Deactivate(ctx, id); err != nil {
		s.logger.Error("deactivate employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("deactivate employee commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("deactivate employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) resolveManager(ctx context.Context, repo Repository, managerID string) (*uuid.UUID, error) {
	if managerID == "" {
		return nil, nil
	}

	manager, err := repo.FindByID(ctx, managerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("manager not found", zap.String("manager_id", managerID))
			return nil, employeeerrors.ErrManagerNotFound
		}
		s.logger.Error("fetch manager failed", zap.Error(err))
		return nil, err
	}
	if !manager.IsActive {
		s.logger.Warn("manager inactive", zap.String("manager_id", managerID))
		return nil, employeeerrors.ErrManagerNotFound
	}

	return &manager.ID, nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             empl.ID.String(),
		EmployeeNumber: empl.EmployeeNumber,
		FullName:       empl.FullName,
		Email:          empl.Email,
		Department:     empl.Department,
		Position:       empl.Position,
		IsActive:       empl.IsActive,
		HireDate:       empl.HireDate.Format("2006-01-02"),
	}
	if empl.ManagerID != nil {
		resp.ManagerID = empl.ManagerID.String()
	}
	if empl.Manager != nil {
		resp.ManagerName = empl.Manager.FullName
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
