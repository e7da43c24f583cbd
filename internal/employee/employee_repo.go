package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context, activeOnly bool) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByNumber(ctx context.Context, number string) (*Employee, error)
	FindSubordinates(ctx context.Context, managerID string) ([]Employee, error)
	Update(ctx context.Context, empl *Employee) error
	Deactivate(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context, activeOnly bool) ([]Employee, error) {
	var empls []Employee
	q := r.db.WithContext(ctx).Preload("Manager")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("employee_number").Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Manager").
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindByNumber(ctx context.Context, number string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Manager").
		First(&empl, "employee_number = ?", number).Error
	return &empl, err
}

func (r *repository) FindSubordinates(ctx context.Context, managerID string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Where("manager_id = ?", managerID).
		Where("is_active = ?", true).
		Order("employee_number").
		Find(&empls).Error
	return empls, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Deactivate(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
