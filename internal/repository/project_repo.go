package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/krikodium/hermanascaradonti/internal/dto"
	"github.com/krikodium/hermanascaradonti/internal/model"
)

type ProjectRepository interface {
	Create(ctx context.Context, p *model.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	// FindByName matches among non-archived projects only.
	FindByName(ctx context.Context, name string) (*model.Project, error)
	List(ctx context.Context, filter dto.ProjectFilter) ([]model.Project, int64, error)
	ListAll(ctx context.Context) ([]model.Project, error)
	Update(ctx context.Context, p *model.Project) error
	Archive(ctx context.Context, id uuid.UUID) error
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepository(db *gorm.DB) ProjectRepository { return &projectRepo{db: db} }

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *projectRepo) FindByName(ctx context.Context, name string) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).
		Where("name = ? AND is_archived = false", name).
		First(&p).Error
	return &p, err
}

func (r *projectRepo) List(ctx context.Context, filter dto.ProjectFilter) ([]model.Project, int64, error) {
	var projects []model.Project
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Project{})

	if !filter.IncludeArchived {
		q = q.Where("is_archived = false")
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		q = q.Where("project_type = ?", filter.Type)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("name").
		Offset(offset).Limit(filter.Limit).
		Find(&projects).Error

	return projects, total, err
}

func (r *projectRepo) ListAll(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).Where("is_archived = false").Order("name").Find(&projects).Error
	return projects, err
}

func (r *projectRepo) Update(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *projectRepo) Archive(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Project{}).Where("id = ?", id).Update("is_archived", true).Error
}
