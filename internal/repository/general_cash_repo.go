package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/krikodium/hermanascaradonti/internal/dto"
	"github.com/krikodium/hermanascaradonti/internal/model"
)

type GeneralCashRepository interface {
	Create(ctx context.Context, e *model.GeneralCashEntry) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.GeneralCashEntry, error)
	List(ctx context.Context, filter dto.GeneralCashFilter) ([]model.GeneralCashEntry, int64, error)
	ListAll(ctx context.Context) ([]model.GeneralCashEntry, error)
	Update(ctx context.Context, e *model.GeneralCashEntry) error
}

type generalCashRepo struct{ db *gorm.DB }

func NewGeneralCashRepository(db *gorm.DB) GeneralCashRepository { return &generalCashRepo{db: db} }

func (r *generalCashRepo) Create(ctx context.Context, e *model.GeneralCashEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *generalCashRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.GeneralCashEntry, error) {
	var e model.GeneralCashEntry
	err := r.db.WithContext(ctx).First(&e, id).Error
	return &e, err
}

func (r *generalCashRepo) List(ctx context.Context, filter dto.GeneralCashFilter) ([]model.GeneralCashEntry, int64, error) {
	var entries []model.GeneralCashEntry
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.GeneralCashEntry{})

	if filter.DateFrom != "" {
		q = q.Where("date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q = q.Where("date <= ?", filter.DateTo)
	}
	if filter.Application != "" {
		q = q.Where("application = ?", filter.Application)
	}
	if filter.Status != "" {
		q = q.Where("approval_status = ?", filter.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("date DESC, created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&entries).Error

	return entries, total, err
}

func (r *generalCashRepo) ListAll(ctx context.Context) ([]model.GeneralCashEntry, error) {
	var entries []model.GeneralCashEntry
	err := r.db.WithContext(ctx).Order("created_at").Find(&entries).Error
	return entries, err
}

func (r *generalCashRepo) Update(ctx context.Context, e *model.GeneralCashEntry) error {
	return r.db.WithContext(ctx).Save(e).Error
}
