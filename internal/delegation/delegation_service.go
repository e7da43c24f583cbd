package delegation

import (
	"context"
	"errors"
	"time"

	delegationerrors "github.com/Harendra62/leave-management/internal/delegation/errors"
	"github.com/Harendra62/leave-management/internal/employee"
	"github.com/Harendra62/leave-management/internal/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=delegation_service.go -destination=mock/delegation_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDelegationRequest) (DelegationResponse, error)
	GetAll(ctx context.Context, managerID string, activeOnly bool) ([]DelegationResponse, error)
	GetByID(ctx context.Context, id string) (DelegationResponse, error)
	Update(ctx context.Context, id string, req UpdateDelegationRequest) (DelegationResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	empls    employee.Repository
	notifier notification.Notifier
	logger   *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	empls employee.Repository,
	notifier notification.Notifier,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("delegation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("delegation.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		empls:    empls,
		notifier: notifier,
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, req CreateDelegationRequest) (DelegationResponse, error) {
	s.logger.Debug("create delegation requested",
		zap.String("manager_id", req.ManagerID),
		zap.String("delegate_id", req.DelegateID),
	)

	if req.ManagerID == req.DelegateID {
		s.logger.Warn("create delegation self assignment rejected", zap.String("manager_id", req.ManagerID))
		return DelegationResponse{}, delegationerrors.ErrSelfDelegation
	}

	start, end, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("create delegation invalid period",
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return DelegationResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create delegation begin tx failed", zap.Error(tx.Error))
		return DelegationResponse{}, tx.Error
	}
	defer tx.Rollback()

	qempls := s.empls.WithTx(tx)

	manager, err := qempls.FindByID(ctx, req.ManagerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("create delegation manager not found", zap.String("manager_id", req.ManagerID))
			return DelegationResponse{}, delegationerrors.ErrManagerNotFound
		}
		s.logger.Error("create delegation fetch manager failed", zap.Error(err))
		return DelegationResponse{}, err
	}
	delegate, err := qempls.FindByID(ctx, req.DelegateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("create delegation delegate not found", zap.String("delegate_id", req.DelegateID))
			return DelegationResponse{}, delegationerrors.ErrDelegateNotFound
		}
		s.logger.Error("create delegation fetch delegate failed", zap.Error(err))
		return DelegationResponse{}, err
	}

	d := &Delegation{
		ID:         uuid.New(),
		ManagerID:  manager.ID,
		DelegateID: delegate.ID,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		IsActive:   true,
	}

	if err := s.repo.WithTx(tx).Create(ctx, d); err != nil {
		s.logger.Error("create delegation persist failed", zap.Error(err))
		return DelegationResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create delegation commit failed", zap.Error(err))
		return DelegationResponse{}, err
	}

	if s.notifier != nil {
		notifyErr := s.notifier.NotifyDelegateOfAssignment(ctx, notification.DelegationNotification{
			DelegationID:  d.ID.String(),
			ManagerName:   manager.FullName,
			DelegateName:  delegate.FullName,
			DelegateEmail: delegate.Email,
			StartDate:     d.StartDate.Format("2006-01-02"),
			EndDate:       d.EndDate.Format("2006-01-02"),
			Reason:        d.Reason,
		})
		if notifyErr != nil {
			s.logger.Error("delegation notification failed",
				zap.String("delegation_id", d.ID.String()),
				zap.Error(notifyErr),
			)
		}
	}

	s.logger.Info("create delegation success", zap.String("delegation_id", d.ID.String()))

	d.Manager = manager
	d.Delegate = delegate
	return mapToResponse(*d), nil
}

func (s *service) GetAll(ctx context.Context, managerID string, activeOnly bool) ([]DelegationResponse, error) {
	s.logger.Debug("get all delegations requested",
		zap.String("manager_id", managerID),
		zap.Bool("active_only", activeOnly),
	)
	delegations, err := s.repo.FindAll(ctx, managerID, activeOnly)
	if err != nil {
		s.logger.Error("get all delegations failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(delegations), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DelegationResponse, error) {
	s.logger.Debug("get delegation by id requested", zap.String("delegation_id", id))
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get delegation by id failed", zap.Error(err))
		return DelegationResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*d), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDelegationRequest) (DelegationResponse, error) {
	s.logger.Debug("update delegation requested", zap.String("delegation_id", id))

	start, end, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("update delegation invalid period",
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return DelegationResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update delegation begin tx failed", zap.Error(tx.Error))
		return DelegationResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	d, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update delegation fetch existing failed", zap.Error(err))
		return DelegationResponse{}, mapRepositoryError(err)
	}

	d.StartDate = start
	d.EndDate = end
	d.Reason = req.Reason
	if req.IsActive != nil {
		d.IsActive = *req.IsActive
	}

	if err := qtx.Update(ctx, d); err != nil {
		s.logger.Error("update delegation persist failed", zap.Error(err))
		return DelegationResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update delegation commit failed", zap.Error(err))
		return DelegationResponse{}, err
	}

	s.logger.Info("update delegation success", zap.String("delegation_id", id))

	return mapToResponse(*d), nil
}

func parsePeriod(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return time.Time{}, time.Time{}, delegationerrors.ErrInvalidDelegationPeriod
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return time.Time{}, time.Time{}, delegationerrors.ErrInvalidDelegationPeriod
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, delegationerrors.ErrInvalidDelegationPeriod
	}
	return start, end, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return delegationerrors.ErrDelegationNotFound
	}
	return err
}

func mapToResponse(d Delegation) DelegationResponse {
	resp := DelegationResponse{
		ID:         d.ID.String(),
		ManagerID:  d.ManagerID.String(),
		DelegateID: d.DelegateID.String(),
		StartDate:  d.StartDate.Format("2006-01-02"),
		EndDate:    d.EndDate.Format("2006-01-02"),
		Reason:     d.Reason,
		IsActive:   d.IsActive,
	}
	if d.Manager != nil {
		resp.ManagerName = d.Manager.FullName
	}
	if d.Delegate != nil {
		resp.DelegateName = d.Delegate.FullName
	}
	return resp
}

func mapToListResponse(delegations []Delegation) []DelegationResponse {
	res := make([]DelegationResponse, len(delegations))
	for i, d := range delegations {
		res[i] = mapToResponse(d)
	}
	return res
}
