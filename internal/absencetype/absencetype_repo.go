package absencetype

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, t *AbsenceType) error
	FindAll(ctx context.Context) ([]AbsenceType, error)
	FindActive(ctx context.Context) ([]AbsenceType, error)
	FindByID(ctx context.Context, id string) (*AbsenceType, error)
	FindByName(ctx context.Context, name string) (*AbsenceType, error)
	Update(ctx context.Context, t *AbsenceType) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *AbsenceType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAll(ctx context.Context) ([]AbsenceType, error) {
	var types []AbsenceType
	err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error
	return types, err
}

func (r *repository) FindActive(ctx context.Context) ([]AbsenceType, error) {
	var types []AbsenceType
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&types).Error
	return types, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*AbsenceType, error) {
	var t AbsenceType
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindByName(ctx context.Context, name string) (*AbsenceType, error) {
	var t AbsenceType
	err := r.db.WithContext(ctx).First(&t, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Update(ctx context.Context, t *AbsenceType) error {
	return r.db.WithContext(ctx).Save(t).Error
}
