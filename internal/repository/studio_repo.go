package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/krikodium/hermanascaradonti/internal/dto"
	"github.com/krikodium/hermanascaradonti/internal/model"
)

type StudioMovementRepository interface {
	Create(ctx context.Context, m *model.StudioMovement) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.StudioMovement, error)
	List(ctx context.Context, filter dto.StudioMovementFilter) ([]model.StudioMovement, int64, error)
	// ListByProject returns the project's full movement sequence in insertion
	// order, the running-balance chain.
	ListByProject(ctx context.Context, projectName string) ([]model.StudioMovement, error)
	ListAll(ctx context.Context) ([]model.StudioMovement, error)
	SaveAll(ctx context.Context, movements []model.StudioMovement) error
}

type studioMovementRepo struct{ db *gorm.DB }

func NewStudioMovementRepository(db *gorm.DB) StudioMovementRepository {
	return &studioMovementRepo{db: db}
}

func (r *studioMovementRepo) Create(ctx context.Context, m *model.StudioMovement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *studioMovementRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.StudioMovement, error) {
	var m model.StudioMovement
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *studioMovementRepo) List(ctx context.Context, filter dto.StudioMovementFilter) ([]model.StudioMovement, int64, error) {
	var movements []model.StudioMovement
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.StudioMovement{})

	if filter.Project != "" {
		q = q.Where("project_name = ?", filter.Project)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&movements).Error

	return movements, total, err
}

// ListByProject returns the project's movements in insertion order. The id
// tiebreaker keeps the running-balance chain stable when two rows share a
// created_at timestamp.
func (r *studioMovementRepo) ListByProject(ctx context.Context, projectName string) ([]model.StudioMovement, error) {
	var movements []model.StudioMovement
	err := r.db.WithContext(ctx).
		Where("project_name = ?", projectName).
		Order("created_at, id").
		Find(&movements).Error
	return movements, err
}

func (r *studioMovementRepo) ListAll(ctx context.Context) ([]model.StudioMovement, error) {
	var movements []model.StudioMovement
	err := r.db.WithContext(ctx).Order("created_at, id").Find(&movements).Error
	return movements, err
}

func (r *studioMovementRepo) SaveAll(ctx context.Context, movements []model.StudioMovement) error {
	if len(movements) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Save(&movements).Error
}

type DisbursementOrderRepository interface {
	Create(ctx context.Context, o *model.DisbursementOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.DisbursementOrder, error)
	ListByProject(ctx context.Context, projectName string) ([]model.DisbursementOrder, error)
	ListAll(ctx context.Context) ([]model.DisbursementOrder, error)
	Update(ctx context.Context, o *model.DisbursementOrder) error
}

type disbursementOrderRepo struct{ db *gorm.DB }

func NewDisbursementOrderRepository(db *gorm.DB) DisbursementOrderRepository {
	return &disbursementOrderRepo{db: db}
}

func (r *disbursementOrderRepo) Create(ctx context.Context, o *model.DisbursementOrder) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *disbursementOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.DisbursementOrder, error) {
	var o model.DisbursementOrder
	err := r.db.WithContext(ctx).First(&o, id).Error
	return &o, err
}

func (r *disbursementOrderRepo) ListByProject(ctx context.Context, projectName string) ([]model.DisbursementOrder, error) {
	var orders []model.DisbursementOrder
	err := r.db.WithContext(ctx).
		Where("project_name = ?", projectName).
		Order("requested_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *disbursementOrderRepo) ListAll(ctx context.Context) ([]model.DisbursementOrder, error) {
	var orders []model.DisbursementOrder
	err := r.db.WithContext(ctx).Order("requested_at DESC").Find(&orders).Error
	return orders, err
}

func (r *disbursementOrderRepo) Update(ctx context.Context, o *model.DisbursementOrder) error {
	return r.db.WithContext(ctx).Save(o).Error
}
