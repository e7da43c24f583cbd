package delegation

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=delegation_repo.go -destination=mock/delegation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, d *Delegation) error
	FindAll(ctx context.Context, managerID string, activeOnly bool) ([]Delegation, error)
	FindByID(ctx context.Context, id string) (*Delegation, error)
	FindActiveForManagerOn(ctx context.Context, managerID string, date time.Time) (*Delegation, error)
	Update(ctx context.Context, d *Delegation) error
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

func (r *repository) Create(ctx context.Context, d *Delegation) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindAll(ctx context.Context, managerID string, activeOnly bool) ([]Delegation, error) {
	var delegations []Delegation
	q := r.db.WithContext(ctx).
		Preload("Manager").
		Preload("Delegate")
	if managerID != "" {
		q = q.Where("manager_id = ?", managerID)
	}
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("start_date DESC").Find(&delegations).Error
	return delegations, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Delegation, error) {
	var d Delegation
	err := r.db.WithContext(ctx).
		Preload("Manager").
		Preload("Delegate").
		First(&d, "id = ?", id).Error
	return &d, err
}

func (r *repository) FindActiveForManagerOn(ctx context.Context, managerID string, date time.Time) (*Delegation, error) {
	var d Delegation
	err := r.db.WithContext(ctx).
		Preload("Delegate").
		Where("manager_id = ?", managerID).
		Where("is_active = ?", true).
		Where("start_date <= ? AND end_date >= ?", date, date).
		First(&d).Error
	return &d, err
}

func (r *repository) Update(ctx context.Context, d *Delegation) error {
	return r.db.WithContext(ctx).Save(d).Error
}
