package leavetype

import (
	"context"
	"errors"
	"strings"

	leavetypeerrors "github.com/Harendra62/leave-management/internal/leavetype/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leavetype_service.go -destination=mock/leavetype_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	GetAll(ctx context.Context, activeOnly bool) ([]LeaveTypeResponse, error)
	GetByID(ctx context.Context, id string) (LeaveTypeResponse, error)
	Update(ctx context.Context, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavetype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavetype.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error) {
	s.logger.Debug("create leave type requested", zap.String("name", req.Name))

	if req.MaxCarryForwardDays != nil && !req.CarryForwardEnabled {
		s.logger.Warn("create leave type carry forward limit without flag", zap.String("name", req.Name))
		return LeaveTypeResponse{}, leavetypeerrors.ErrCarryForwardLimitWithoutFlag
	}

	requiresApproval := true
	if req.RequiresApproval != nil {
		requiresApproval = *req.RequiresApproval
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create leave type begin tx failed", zap.Error(tx.Error))
		return LeaveTypeResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindActiveByName(ctx, req.Name); err == nil {
		s.logger.Warn("create leave type duplicate name", zap.String("name", req.Name))
		return LeaveTypeResponse{}, leavetypeerrors.ErrLeaveTypeAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("create leave type name lookup failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	lt := &LeaveType{
		ID:                         uuid.New(),
		Name:                       strings.TrimSpace(req.Name),
		Description:                req.Description,
		MaxDaysPerYear:             req.MaxDaysPerYear,
		MaxConsecutiveDays:         req.MaxConsecutiveDays,
		RequiresApproval:           requiresApproval,
		RequiresMedicalCertificate: req.RequiresMedicalCertificate,
		CarryForwardEnabled:        req.CarryForwardEnabled,
		MaxCarryForwardDays:        req.MaxCarryForwardDays,
		IsActive:                   true,
	}

	if err := qtx.Create(ctx, lt); err != nil {
		s.logger.Error("create leave type persist failed", zap.Error(err))
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create leave type commit failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	s.logger.Info("create leave type success",
		zap.String("leave_type_id", lt.ID.String()),
		zap.String("name", lt.Name),
	)

	return mapToResponse(*lt), nil
}

func (s *service) GetAll(ctx context.Context, activeOnly bool) ([]LeaveTypeResponse, error) {
	s.logger.Debug("get all leave types requested", zap.Bool("active_only", activeOnly))
	types, err := s.repo.FindAll(ctx, activeOnly)
	if err != nil {
		s.logger.Error("get all leave types failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(types), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveTypeResponse, error) {
	s.logger.Debug("get leave type by id requested", zap.String("leave_type_id", id))
	lt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get leave type by id failed", zap.Error(err))
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*lt), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error) {
	s.logger.Debug("update leave type requested", zap.String("leave_type_id", id))

	if req.MaxCarryForwardDays != nil && !req.CarryForwardEnabled {
		s.logger.Warn("update leave type carry forward limit without flag", zap.String("leave_type_id", id))
		return LeaveTypeResponse{}, leavetypeerrors.ErrCarryForwardLimitWithoutFlag
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update leave type begin tx failed", zap.Error(tx.Error))
		return LeaveTypeResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lt, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update leave type fetch existing failed", zap.Error(err))
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	if existing, err := qtx.FindActiveByName(ctx, req.Name); err == nil && existing.ID != lt.ID {
		s.logger.Warn("update leave type duplicate name", zap.String("name", req.Name))
		return LeaveTypeResponse{}, leavetypeerrors.ErrLeaveTypeAlreadyExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("update leave type name lookup failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	lt.Name = strings.TrimSpace(req.Name)
	lt.Description = req.Description
	lt.MaxDaysPerYear = req.MaxDaysPerYear
	lt.MaxConsecutiveDays = req.MaxConsecutiveDays
	if req.RequiresApproval != nil {
		lt.RequiresApproval = *req.RequiresApproval
	}
	lt.RequiresMedicalCertificate = req.RequiresMedicalCertificate
	lt.CarryForwardEnabled = req.CarryForwardEnabled
	lt.MaxCarryForwardDays = req.MaxCarryForwardDays

	if err := qtx.Update(ctx, lt); err != nil {
		s.logger.Error("update leave type persist failed", zap.Error(err))
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update leave type commit failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	s.logger.Info("update leave type success", zap.String("leave_type_id", id))

	return mapToResponse(*lt), nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	s.logger.Debug("deactivate leave type requested", zap.String("leave_type_id", id))

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("deactivate leave type begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lt, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("deactivate leave type fetch existing failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if !lt.IsActive {
		s.logger.Warn("deactivate leave type already inactive", zap.String("leave_type_id", id))
		return leavetypeerrors.ErrLeaveTypeInactive
	}

	if err := qtx.Deactivate(ctx, id); err != nil {
		s.logger.Error("deactivate leave type failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("deactivate leave type commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("deactivate leave type success", zap.String("leave_type_id", id))
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leavetypeerrors.ErrLeaveTypeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return leavetypeerrors.ErrLeaveTypeAlreadyExists
	}

	return err
}

func mapToResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:                         lt.ID.String(),
		Name:                       lt.Name,
		Description:                lt.Description,
		MaxDaysPerYear:             lt.MaxDaysPerYear,
		MaxConsecutiveDays:         lt.MaxConsecutiveDays,
		RequiresApproval:           lt.RequiresApproval,
		RequiresMedicalCertificate: lt.RequiresMedicalCertificate,
		CarryForwardEnabled:        lt.CarryForwardEnabled,
		MaxCarryForwardDays:        lt.MaxCarryForwardDays,
		IsActive:                   lt.IsActive,
	}
}

func mapToListResponse(types []LeaveType) []LeaveTypeResponse {
	res := make([]LeaveTypeResponse, len(types))
	for i, lt := range types {
		res[i] = mapToResponse(lt)
	}
	return res
}
