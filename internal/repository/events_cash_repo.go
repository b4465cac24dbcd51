package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/krikodium/hermanascaradonti/internal/dto"
	"github.com/krikodium/hermanascaradonti/internal/model"
)

type EventsCashRepository interface {
	Create(ctx context.Context, ev *model.EventsCash) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.EventsCash, error)
	List(ctx context.Context, filter dto.EventsCashFilter) ([]model.EventsCash, int64, error)
	ListAll(ctx context.Context) ([]model.EventsCash, error)
	Update(ctx context.Context, ev *model.EventsCash) error
}

type eventsCashRepo struct{ db *gorm.DB }

func NewEventsCashRepository(db *gorm.DB) EventsCashRepository { return &eventsCashRepo{db: db} }

func (r *eventsCashRepo) Create(ctx context.Context, ev *model.EventsCash) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

func (r *eventsCashRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.EventsCash, error) {
	var ev model.EventsCash
	err := r.db.WithContext(ctx).First(&ev, id).Error
	return &ev, err
}

func (r *eventsCashRepo) List(ctx context.Context, filter dto.EventsCashFilter) ([]model.EventsCash, int64, error) {
	var events []model.EventsCash
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.EventsCash{})

	if filter.EventType != "" {
		q = q.Where("header->>'event_type' = ?", filter.EventType)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&events).Error

	return events, total, err
}

func (r *eventsCashRepo) ListAll(ctx context.Context) ([]model.EventsCash, error) {
	var events []model.EventsCash
	err := r.db.WithContext(ctx).Order("created_at").Find(&events).Error
	return events, err
}

func (r *eventsCashRepo) Update(ctx context.Context, ev *model.EventsCash) error {
	return r.db.WithContext(ctx).Save(ev).Error
}
