package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/krikodium/hermanascaradonti/internal/dto"
	"github.com/krikodium/hermanascaradonti/internal/model"
)

type CashCountRepository interface {
	Create(ctx context.Context, c *model.CashCount) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CashCount, error)
	List(ctx context.Context, filter dto.CashCountFilter) ([]model.CashCount, int64, error)
	ListAll(ctx context.Context) ([]model.CashCount, error)
	Update(ctx context.Context, c *model.CashCount) error
}

type cashCountRepo struct{ db *gorm.DB }

func NewCashCountRepository(db *gorm.DB) CashCountRepository { return &cashCountRepo{db: db} }

func (r *cashCountRepo) Create(ctx context.Context, c *model.CashCount) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cashCountRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CashCount, error) {
	var c model.CashCount
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *cashCountRepo) List(ctx context.Context, filter dto.CashCountFilter) ([]model.CashCount, int64, error) {
	var counts []model.CashCount
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.CashCount{})

	if filter.Deco != "" {
		q = q.Where("deco_name = ?", filter.Deco)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("count_date DESC, created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&counts).Error

	return counts, total, err
}

func (r *cashCountRepo) ListAll(ctx context.Context) ([]model.CashCount, error) {
	var counts []model.CashCount
	err := r.db.WithContext(ctx).Order("created_at").Find(&counts).Error
	return counts, err
}

func (r *cashCountRepo) Update(ctx context.Context, c *model.CashCount) error {
	return r.db.WithContext(ctx).Save(c).Error
}
