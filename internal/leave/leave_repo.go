package leave

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReportFilter narrows the report query. Zero values mean "no filter".
type ReportFilter struct {
	EmployeeID  uuid.UUID
	Department  string
	LeaveTypeID uuid.UUID
	Status      string
	StartDate   time.Time
	EndDate     time.Time
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, lr *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	// FindByIDForUpdate locks the row for the caller's transaction so
	// concurrent decisions on the same request serialize.
	FindByIDForUpdate(ctx context.Context, id string) (*LeaveRequest, error)
	FindOverlapping(ctx context.Context, employeeID uuid.UUID, start, end time.Time, excludeID uuid.UUID) ([]LeaveRequest, error)
	FindForEmployee(ctx context.Context, employeeID uuid.UUID, year int) ([]LeaveRequest, error)
	FindPendingForEmployees(ctx context.Context, employeeIDs []uuid.UUID) ([]LeaveRequest, error)
	FindForReport(ctx context.Context, filter ReportFilter) ([]LeaveRequest, error)
	Update(ctx context.Context, lr *LeaveRequest) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, lr *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(lr).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var lr LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("LeaveType").
		Preload("ApprovedBy").
		First(&lr, "id = ?", id).Error
	return &lr, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*LeaveRequest, error) {
	var lr LeaveRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&lr, "id = ?", id).Error
	return &lr, err
}

func (r *repository) FindOverlapping(ctx context.Context, employeeID uuid.UUID, start, end time.Time, excludeID uuid.UUID) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	q := r.db.WithContext(ctx).
		Preload("LeaveType").
		Where("employee_id = ?", employeeID).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("start_date <= ? AND end_date >= ?", end, start)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Find(&requests).Error
	return requests, err
}

func (r *repository) FindForEmployee(ctx context.Context, employeeID uuid.UUID, year int) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	q := r.db.WithContext(ctx).
		Preload("LeaveType").
		Where("employee_id = ?", employeeID)
	if year > 0 {
		yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
		q = q.Where("start_date <= ? AND end_date >= ?", yearEnd, yearStart)
	}
	err := q.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *repository) FindPendingForEmployees(ctx context.Context, employeeIDs []uuid.UUID) ([]LeaveRequest, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	var requests []LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("LeaveType").
		Where("employee_id IN ?", employeeIDs).
		Where("status = ?", StatusPending).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) FindForReport(ctx context.Context, filter ReportFilter) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	q := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("LeaveType")
	if filter.EmployeeID != uuid.Nil {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Department != "" {
		q = q.Joins("JOIN employees ON employees.id = leave_requests.employee_id").
			Where("employees.department = ?", filter.Department)
	}
	if filter.LeaveTypeID != uuid.Nil {
		q = q.Where("leave_type_id = ?", filter.LeaveTypeID)
	}
	if filter.Status != "" {
		q = q.Where("leave_requests.status = ?", filter.Status)
	}
	if !filter.StartDate.IsZero() {
		q = q.Where("start_date >= ?", filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		q = q.Where("end_date <= ?", filter.EndDate)
	}
	err := q.Order("leave_requests.created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *repository) Update(ctx context.Context, lr *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(lr).Error
}
