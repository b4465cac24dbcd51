package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/krikodium/hermanascaradonti/internal/dto"
	"github.com/krikodium/hermanascaradonti/internal/model"
)

type ShopCashRepository interface {
	Create(ctx context.Context, e *model.ShopCashEntry) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ShopCashEntry, error)
	List(ctx context.Context, filter dto.ShopCashFilter) ([]model.ShopCashEntry, int64, error)
	ListAll(ctx context.Context) ([]model.ShopCashEntry, error)
	Update(ctx context.Context, e *model.ShopCashEntry) error
}

type shopCashRepo struct{ db *gorm.DB }

func NewShopCashRepository(db *gorm.DB) ShopCashRepository { return &shopCashRepo{db: db} }

func (r *shopCashRepo) Create(ctx context.Context, e *model.ShopCashEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *shopCashRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ShopCashEntry, error) {
	var e model.ShopCashEntry
	err := r.db.WithContext(ctx).First(&e, id).Error
	return &e, err
}

func (r *shopCashRepo) List(ctx context.Context, filter dto.ShopCashFilter) ([]model.ShopCashEntry, int64, error) {
	var entries []model.ShopCashEntry
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.ShopCashEntry{})

	if filter.Coordinator != "" {
		q = q.Where("internal_coordinator = ?", filter.Coordinator)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("date DESC, created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&entries).Error

	return entries, total, err
}

func (r *shopCashRepo) ListAll(ctx context.Context) ([]model.ShopCashEntry, error) {
	var entries []model.ShopCashEntry
	err := r.db.WithContext(ctx).Order("created_at").Find(&entries).Error
	return entries, err
}

func (r *shopCashRepo) Update(ctx context.Context, e *model.ShopCashEntry) error {
	return r.db.WithContext(ctx).Save(e).Error
}
