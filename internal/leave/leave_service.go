package leave

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Harendra62/leave-management/internal/balance"
	"github.com/Harendra62/leave-management/internal/delegation"
	"github.com/Harendra62/leave-management/internal/employee"
	leaveerrors "github.com/Harendra62/leave-management/internal/leave/errors"
	"github.com/Harendra62/leave-management/internal/leavetype"
	"github.com/Harendra62/leave-management/internal/notification"
	"github.com/Harendra62/leave-management/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveRequestResponse, error)
	GetByID(ctx context.Context, id string) (LeaveRequestResponse, error)
	GetForEmployee(ctx context.Context, employeeID string, year int) ([]LeaveRequestResponse, error)
	GetForEmployeeByNumber(ctx context.Context, number string, year int) ([]LeaveRequestResponse, error)
	GetPendingForManager(ctx context.Context, managerID string) ([]LeaveRequestResponse, error)

	// Decide approves or rejects a pending request. The row is locked for
	// the duration of the transaction so concurrent decisions serialize;
	// approval debits the employee's balance before commit.
	Decide(ctx context.Context, id string, req DecisionRequest) (LeaveRequestResponse, error)

	Update(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveRequestResponse, error)
	Cancel(ctx context.Context, id string) error

	Validate(ctx context.Context, req CreateLeaveRequest) (Verdict, error)
	ValidateComprehensive(ctx context.Context, req CreateLeaveRequest) (Verdict, error)

	GetEmployeeSummary(ctx context.Context, employeeID string, year int) (EmployeeLeaveSummary, error)
	Report(ctx context.Context, req ReportRequest) (ReportResponse, error)
}

type service struct {
	db          *gorm.DB
	repo        Repository
	validator   *Validator
	balances    balance.Service
	empls       employee.Repository
	types       leavetype.Repository
	delegations delegation.Repository
	notifier    notification.Notifier
	logger      *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	validator *Validator,
	balances balance.Service,
	empls employee.Repository,
	types leavetype.Repository,
	delegations delegation.Repository,
	notifier notification.Notifier,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		validator:   validator,
		balances:    balances,
		empls:       empls,
		types:       types,
		delegations: delegations,
		notifier:    notifier,
		logger:      l,
	}
}

func (s *service) Create(ctx context.Context, req CreateLeaveRequest) (LeaveRequestResponse, error) {
	s.logger.Debug("create leave request requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type_id", req.LeaveTypeID),
	)

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("create leave request invalid dates",
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveRequestResponse{}, err
	}
	if end.Before(start) {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidLeaveDates
	}

	empl, err := s.empls.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("create leave request employee not found", zap.String("employee_id", req.EmployeeID))
			return LeaveRequestResponse{}, leaveerrors.ErrEmployeeNotFound
		}
		s.logger.Error("create leave request fetch employee failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	lt, err := s.types.FindByID(ctx, req.LeaveTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaveerrors.ValidationFailed("Invalid or inactive leave type")
		}
		s.logger.Error("create leave request fetch leave type failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	if err := s.validator.ValidateLightweight(ctx, empl.ID, lt.ID, start, end); err != nil {
		s.logger.Warn("create leave request rejected by validation",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return LeaveRequestResponse{}, err
	}

	lr := &LeaveRequest{
		ID:                    uuid.New(),
		EmployeeID:            empl.ID,
		LeaveTypeID:           lt.ID,
		StartDate:             start,
		EndDate:               end,
		TotalDays:             daysInclusive(start, end),
		Reason:                req.Reason,
		Status:                StatusPending,
		MedicalCertificateURL: req.MedicalCertificateURL,
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create leave request begin tx failed", zap.Error(tx.Error))
		return LeaveRequestResponse{}, tx.Error
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, lr); err != nil {
		s.logger.Error("create leave request persist failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create leave request commit failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	s.notifyRequest(ctx, lr, empl, lt)

	s.logger.Info("create leave request success",
		zap.String("request_id", lr.ID.String()),
		zap.String("employee_id", empl.ID.String()),
		zap.Int("total_days", lr.TotalDays),
	)

	lr.Employee = empl
	lr.LeaveType = lt
	return mapToResponse(*lr), nil
}

// notifyRequest tells the employee's manager a request is waiting. When
// the manager has an active delegation covering today, the delegate is
// addressed instead.
func (s *service) notifyRequest(ctx context.Context, lr *LeaveRequest, empl *employee.Employee, lt *leavetype.LeaveType) {
	if s.notifier == nil || empl.Manager == nil {
		return
	}

	recipient := empl.Manager
	if d, err := s.delegations.FindActiveForManagerOn(ctx, empl.Manager.ID.String(), today()); err == nil && d.Delegate != nil {
		recipient = d.Delegate
	}

	err := s.notifier.NotifyManagerOfRequest(ctx, notification.RequestNotification{
		RequestID:    lr.ID.String(),
		EmployeeID:   empl.ID.String(),
		EmployeeName: empl.FullName,
		ManagerName:  recipient.FullName,
		ManagerEmail: recipient.Email,
		LeaveType:    lt.Name,
		StartDate:    lr.StartDate.Format("2006-01-02"),
		EndDate:      lr.EndDate.Format("2006-01-02"),
		TotalDays:    lr.TotalDays,
		Reason:       lr.Reason,
	})
	if err != nil {
		s.logger.Error("leave request notification failed",
			zap.String("request_id", lr.ID.String()),
			zap.Error(err),
		)
	}
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveRequestResponse, error) {
	s.logger.Debug("get leave request requested", zap.String("request_id", id))
	lr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaveerrors.ErrLeaveRequestNotFound
		}
		s.logger.Error("get leave request failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	return mapToResponse(*lr), nil
}

func (s *service) GetForEmployee(ctx context.Context, employeeID string, year int) ([]LeaveRequestResponse, error) {
	empl, err := s.empls.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrEmployeeNotFound
		}
		s.logger.Error("get employee leave requests fetch employee failed", zap.Error(err))
		return nil, err
	}
	return s.requestsFor(ctx, empl, year)
}

func (s *service) GetForEmployeeByNumber(ctx context.Context, number string, year int) ([]LeaveRequestResponse, error) {
	empl, err := s.empls.FindByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrEmployeeNotFound
		}
		s.logger.Error("get employee leave requests fetch employee failed", zap.Error(err))
		return nil, err
	}
	return s.requestsFor(ctx, empl, year)
}

func (s *service) requestsFor(ctx context.Context, empl *employee.Employee, year int) ([]LeaveRequestResponse, error) {
	requests, err := s.repo.FindForEmployee(ctx, empl.ID, year)
	if err != nil {
		s.logger.Error("get employee leave requests failed",
			zap.String("employee_id", empl.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}
	return mapToListResponse(requests), nil
}

func (s *service) GetPendingForManager(ctx context.Context, managerID string) ([]LeaveRequestResponse, error) {
	s.logger.Debug("get pending approvals requested", zap.String("manager_id", managerID))

	subordinates, err := s.empls.FindSubordinates(ctx, managerID)
	if err != nil {
		s.logger.Error("get pending approvals fetch subordinates failed", zap.Error(err))
		return nil, err
	}
	if len(subordinates) == 0 {
		return []LeaveRequestResponse{}, nil
	}

	ids := make([]uuid.UUID, len(subordinates))
	for i, sub := range subordinates {
		ids[i] = sub.ID
	}

	requests, err := s.repo.FindPendingForEmployees(ctx, ids)
	if err != nil {
		s.logger.Error("get pending approvals failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(requests), nil
}

func (s *service) Decide(ctx context.Context, id string, req DecisionRequest) (LeaveRequestResponse, error) {
	s.logger.Debug("decide leave request requested",
		zap.String("request_id", id),
		zap.String("status", req.Status),
	)

	var target string
	switch strings.ToUpper(strings.TrimSpace(req.Status)) {
	case StatusApproved:
		target = StatusApproved
	case StatusRejected:
		target = StatusRejected
	default:
		s.logger.Warn("decide leave request invalid status", zap.String("status", req.Status))
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidDecisionStatus
	}

	approver, err := s.empls.FindByID(ctx, req.ApproverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaveerrors.ErrEmployeeNotFound
		}
		s.logger.Error("decide leave request fetch approver failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("decide leave request begin tx failed", zap.Error(tx.Error))
		return LeaveRequestResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lr, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaveerrors.ErrLeaveRequestNotFound
		}
		s.logger.Error("decide leave request lock failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	if lr.Status != StatusPending {
		s.logger.Warn("decide leave request not pending",
			zap.String("request_id", id),
			zap.String("status", lr.Status),
		)
		return LeaveRequestResponse{}, leaveerrors.ErrRequestNotPending
	}

	now := time.Now().UTC()
	approverID := approver.ID
	lr.Status = target
	lr.ApprovedByID = &approverID
	lr.ApprovedAt = &now
	if target == StatusRejected {
		lr.RejectionReason = req.Comments
	}

	if target == StatusApproved {
		if err := s.balances.Consume(ctx, tx, lr.EmployeeID, lr.LeaveTypeID, now.Year(), lr.TotalDays); err != nil {
			s.logger.Error("decide leave request consume balance failed", zap.Error(err))
			return LeaveRequestResponse{}, err
		}
	}

	if err := qtx.Update(ctx, lr); err != nil {
		s.logger.Error("decide leave request persist failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("decide leave request commit failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("decide leave request success",
		zap.String("request_id", id),
		zap.String("status", target),
		zap.String("approver_id", approver.ID.String()),
	)

	full, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("decide leave request reload failed", zap.Error(err))
		return mapToResponse(*lr), nil
	}

	s.notifyDecision(ctx, full, approver)

	return mapToResponse(*full), nil
}

func (s *service) notifyDecision(ctx context.Context, lr *LeaveRequest, approver *employee.Employee) {
	if s.notifier == nil || lr.Employee == nil {
		return
	}

	leaveTypeName := ""
	if lr.LeaveType != nil {
		leaveTypeName = lr.LeaveType.Name
	}

	err := s.notifier.NotifyEmployeeOfDecision(ctx, notification.DecisionNotification{
		RequestID:       lr.ID.String(),
		EmployeeID:      lr.EmployeeID.String(),
		EmployeeEmail:   lr.Employee.Email,
		EmployeeName:    lr.Employee.FullName,
		ApproverName:    approver.FullName,
		LeaveType:       leaveTypeName,
		StartDate:       lr.StartDate.Format("2006-01-02"),
		EndDate:         lr.EndDate.Format("2006-01-02"),
		TotalDays:       lr.TotalDays,
		Status:          lr.Status,
		RejectionReason: lr.RejectionReason,
	})
	if err != nil {
		s.logger.Error("leave decision notification failed",
			zap.String("request_id", lr.ID.String()),
			zap.Error(err),
		)
	}
}

func (s *service) Update(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveRequestResponse, error) {
	s.logger.Debug("update leave request requested", zap.String("request_id", id))

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update leave request begin tx failed", zap.Error(tx.Error))
		return LeaveRequestResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lr, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaveerrors.ErrLeaveRequestNotFound
		}
		s.logger.Error("update leave request lock failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	if lr.Status != StatusPending {
		return LeaveRequestResponse{}, leaveerrors.ErrUpdateRequiresPending
	}

	datesChanged := false
	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return LeaveRequestResponse{}, leaveerrors.ErrInvalidLeaveDates
		}
		lr.StartDate = start
		datesChanged = true
	}
	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return LeaveRequestResponse{}, leaveerrors.ErrInvalidLeaveDates
		}
		lr.EndDate = end
		datesChanged = true
	}
	if lr.EndDate.Before(lr.StartDate) {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidLeaveDates
	}
	if req.Reason != nil {
		lr.Reason = *req.Reason
	}
	if req.MedicalCertificateURL != nil {
		lr.MedicalCertificateURL = *req.MedicalCertificateURL
	}
	if datesChanged {
		lr.TotalDays = daysInclusive(lr.StartDate, lr.EndDate)
	}

	if err := qtx.Update(ctx, lr); err != nil {
		s.logger.Error("update leave request persist failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update leave request commit failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("update leave request success", zap.String("request_id", id))

	full, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapToResponse(*lr), nil
	}
	return mapToResponse(*full), nil
}

func (s *service) Cancel(ctx context.Context, id string) error {
	s.logger.Debug("cancel leave request requested", zap.String("request_id", id))

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("cancel leave request begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lr, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leaveerrors.ErrLeaveRequestNotFound
		}
		s.logger.Error("cancel leave request lock failed", zap.Error(err))
		return err
	}
	if lr.Status != StatusPending {
		s.logger.Warn("cancel leave request not pending",
			zap.String("request_id", id),
			zap.String("status", lr.Status),
		)
		return leaveerrors.ErrCancelRequiresPending
	}

	lr.Status = StatusCancelled
	if err := qtx.Update(ctx, lr); err != nil {
		s.logger.Error("cancel leave request persist failed", zap.Error(err))
		return err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("cancel leave request commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("cancel leave request success", zap.String("request_id", id))
	return nil
}

// Validate is the dry-run form of the creation gate: same checks, same
// short-circuit order, nothing persisted.
func (s *service) Validate(ctx context.Context, req CreateLeaveRequest) (Verdict, error) {
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return Verdict{}, err
	}

	empl, err := s.empls.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Verdict{}, leaveerrors.ErrEmployeeNotFound
		}
		return Verdict{}, err
	}

	leaveTypeID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return Verdict{IsValid: false, Errors: []string{"Invalid or inactive leave type"}}, nil
	}

	if err := s.validator.ValidateLightweight(ctx, empl.ID, leaveTypeID, start, end); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == apperror.CodeValidationFailed {
			return Verdict{IsValid: false, Errors: []string{appErr.Message}}, nil
		}
		return Verdict{}, err
	}

	return Verdict{IsValid: true, Errors: []string{}}, nil
}

func (s *service) ValidateComprehensive(ctx context.Context, req CreateLeaveRequest) (Verdict, error) {
	return s.validator.ValidateComprehensive(ctx, req)
}

func (s *service) GetEmployeeSummary(ctx context.Context, employeeID string, year int) (EmployeeLeaveSummary, error) {
	if year <= 0 {
		year = time.Now().Year()
	}
	s.logger.Debug("employee leave summary requested",
		zap.String("employee_id", employeeID),
		zap.Int("year", year),
	)

	empl, err := s.empls.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeLeaveSummary{}, leaveerrors.ErrEmployeeNotFound
		}
		s.logger.Error("employee leave summary fetch employee failed", zap.Error(err))
		return EmployeeLeaveSummary{}, err
	}

	balances, err := s.balances.GetForEmployee(ctx, employeeID, year)
	if err != nil {
		s.logger.Error("employee leave summary fetch balances failed", zap.Error(err))
		return EmployeeLeaveSummary{}, err
	}

	requests, err := s.repo.FindForEmployee(ctx, empl.ID, year)
	if err != nil {
		s.logger.Error("employee leave summary fetch requests failed", zap.Error(err))
		return EmployeeLeaveSummary{}, err
	}

	stats := SummaryStatistics{TotalRequests: len(requests)}
	for _, lr := range requests {
		switch lr.Status {
		case StatusApproved:
			stats.ApprovedRequests++
			stats.TotalDaysUsed += lr.TotalDays
		case StatusPending:
			stats.PendingRequests++
		case StatusRejected:
			stats.RejectedRequests++
		}
	}
	if stats.TotalRequests > 0 {
		stats.ApprovalRate = float64(stats.ApprovedRequests) / float64(stats.TotalRequests) * 100
	}

	leaveTypes, err := s.types.FindAll(ctx, true)
	if err != nil {
		s.logger.Error("employee leave summary fetch leave types failed", zap.Error(err))
		return EmployeeLeaveSummary{}, err
	}
	rules := make([]PolicyRule, len(leaveTypes))
	for i, lt := range leaveTypes {
		rules[i] = PolicyRule{
			LeaveType:                  lt.Name,
			MaxDaysPerYear:             lt.MaxDaysPerYear,
			MaxConsecutiveDays:         lt.MaxConsecutiveDays,
			RequiresMedicalCertificate: lt.RequiresMedicalCertificate,
			CarryForwardEnabled:        lt.CarryForwardEnabled,
			MaxCarryForwardDays:        lt.MaxCarryForwardDays,
		}
	}

	return EmployeeLeaveSummary{
		EmployeeID:   empl.ID.String(),
		EmployeeName: empl.FullName,
		Department:   empl.Department,
		Position:     empl.Position,
		HireDate:     empl.HireDate.Format("2006-01-02"),
		IsActive:     empl.IsActive,
		Year:         year,
		Balances:     balances,
		Statistics:   stats,
		PolicyRules:  rules,
	}, nil
}

func (s *service) Report(ctx context.Context, req ReportRequest) (ReportResponse, error) {
	s.logger.Debug("leave report requested",
		zap.String("department", req.Department),
		zap.String("status", req.Status),
	)

	filter := ReportFilter{
		Department: req.Department,
		Status:     strings.ToUpper(strings.TrimSpace(req.Status)),
	}
	if req.EmployeeID != "" {
		id, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			return ReportResponse{}, leaveerrors.ErrEmployeeNotFound
		}
		filter.EmployeeID = id
	}
	if req.LeaveTypeID != "" {
		id, err := uuid.Parse(req.LeaveTypeID)
		if err != nil {
			return ReportResponse{}, apperror.ErrInvalidInput
		}
		filter.LeaveTypeID = id
	}
	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return ReportResponse{}, leaveerrors.ErrInvalidLeaveDates
		}
		filter.StartDate = start
	}
	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return ReportResponse{}, leaveerrors.ErrInvalidLeaveDates
		}
		filter.EndDate = end
	}

	requests, err := s.repo.FindForReport(ctx, filter)
	if err != nil {
		s.logger.Error("leave report query failed", zap.Error(err))
		return ReportResponse{}, err
	}

	resp := ReportResponse{
		TotalRequests: len(requests),
		LeaveRequests: mapToListResponse(requests),
	}
	for _, lr := range requests {
		switch lr.Status {
		case StatusApproved:
			resp.ApprovedRequests++
		case StatusRejected:
			resp.RejectedRequests++
		case StatusPending:
			resp.PendingRequests++
		}
	}

	return resp, nil
}

func mapToResponse(lr LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:                    lr.ID.String(),
		EmployeeID:            lr.EmployeeID.String(),
		LeaveTypeID:           lr.LeaveTypeID.String(),
		StartDate:             lr.StartDate.Format("2006-01-02"),
		EndDate:               lr.EndDate.Format("2006-01-02"),
		TotalDays:             lr.TotalDays,
		Reason:                lr.Reason,
		Status:                lr.Status,
		RejectionReason:       lr.RejectionReason,
		MedicalCertificateURL: lr.MedicalCertificateURL,
		CreatedAt:             lr.CreatedAt.Format(time.RFC3339),
	}
	if lr.Employee != nil {
		resp.EmployeeName = lr.Employee.FullName
	}
	if lr.LeaveType != nil {
		resp.LeaveTypeName = lr.LeaveType.Name
	}
	if lr.ApprovedByID != nil {
		resp.ApprovedByID = lr.ApprovedByID.String()
	}
	if lr.ApprovedBy != nil {
		resp.ApproverName = lr.ApprovedBy.FullName
	}
	if lr.ApprovedAt != nil {
		resp.ApprovedAt = lr.ApprovedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(requests []LeaveRequest) []LeaveRequestResponse {
	res := make([]LeaveRequestResponse, len(requests))
	for i, lr := range requests {
		res[i] = mapToResponse(lr)
	}
	return res
}
