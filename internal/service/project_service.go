package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/krikodium/hermanascaradonti/internal/dto"
	"github.com/krikodium/hermanascaradonti/internal/ledger"
	"github.com/krikodium/hermanascaradonti/internal/model"
	"github.com/krikodium/hermanascaradonti/internal/repository"
)

// ProjectSummary is the dashboard view over projects.
type ProjectSummary struct {
	TotalProjects    int             `json:"total_projects"`
	ActiveProjects   int             `json:"active_projects"`
	ArchivedProjects int             `json:"archived_projects"`
	OverBudget       int             `json:"over_budget"`
	TotalBalanceUSD  decimal.Decimal `json:"total_balance_usd"`
	TotalBalanceARS  decimal.Decimal `json:"total_balance_ars"`

	ByStatus map[string]int `json:"by_status"`
	ByType   map[string]int `json:"by_type"`
}

type ProjectService interface {
	Create(ctx context.Context, user string, req dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	List(ctx context.Context, filter dto.ProjectFilter) (*dto.ProjectListResponse, error)
	// Get refreshes the project's cached financials from its movement ledger
	// and disbursement orders, persisting the result.
	Get(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error)
	Update(ctx context.Context, id uuid.UUID, user string, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Archive(ctx context.Context, id uuid.UUID) error
	Summary(ctx context.Context) (*ProjectSummary, error)
}

type projectService struct {
	repo      repository.ProjectRepository
	movements repository.StudioMovementRepository
	orders    repository.DisbursementOrderRepository
}

func NewProjectService(
	repo repository.ProjectRepository,
	movements repository.StudioMovementRepository,
	orders repository.DisbursementOrderRepository,
) ProjectService {
	return &projectService{repo: repo, movements: movements, orders: orders}
}

func (s *projectService) Create(ctx context.Context, user string, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if existing, err := s.repo.FindByName(ctx, req.Name); err == nil && existing != nil {
		return nil, errors.New("ya existe un proyecto activo con ese nombre")
	}

	projectType := model.ProjectType(req.ProjectType)
	if projectType == "" {
		projectType = model.ProjectDeco
	}
	project := &model.Project{
		Name:        req.Name,
		Description: req.Description,
		ProjectType: projectType,
		Status:      model.ProjectActive,

		StartDate: parseDatePtr(req.StartDate),
		EndDate:   parseDatePtr(req.EndDate),

		BudgetUSD: req.BudgetUSD,
		BudgetARS: req.BudgetARS,

		ClientName: req.ClientName,
		Location:   req.Location,
		Notes:      req.Notes,
		CreatedBy:  user,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	resp := toProjectResponse(project)
	return &resp, nil
}

func (s *projectService) List(ctx context.Context, filter dto.ProjectFilter) (*dto.ProjectListResponse, error) {
	projects, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProjectResponse, len(projects))
	for i := range projects {
		data[i] = toProjectResponse(&projects[i])
	}
	return &dto.ProjectListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if err := s.refreshFinancials(ctx, project); err != nil {
		return nil, err
	}
	resp := toProjectResponse(project)
	return &resp, nil
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, user string, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	if req.Description != nil {
		project.Description = req.Description
	}
	if req.ProjectType != nil {
		project.ProjectType = model.ProjectType(*req.ProjectType)
	}
	if req.Status != nil {
		project.Status = model.ProjectStatus(*req.Status)
	}
	if req.StartDate != nil {
		project.StartDate = parseDatePtr(req.StartDate)
	}
	if req.EndDate != nil {
		project.EndDate = parseDatePtr(req.EndDate)
	}
	if req.BudgetUSD != nil {
		project.BudgetUSD = req.BudgetUSD
	}
	if req.BudgetARS != nil {
		project.BudgetARS = req.BudgetARS
	}
	if req.ClientName != nil {
		project.ClientName = req.ClientName
	}
	if req.Location != nil {
		project.Location = req.Location
	}
	if req.Notes != nil {
		project.Notes = req.Notes
	}
	project.UpdatedBy = &user

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	resp := toProjectResponse(project)
	return &resp, nil
}

func (s *projectService) Archive(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.repo.Archive(ctx, id)
}

func (s *projectService) Summary(ctx context.Context) (*ProjectSummary, error) {
	projects, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &ProjectSummary{
		ByStatus: make(map[string]int),
		ByType:   make(map[string]int),
	}
	for i := range projects {
		p := &projects[i]
		summary.TotalProjects++
		if p.IsArchived {
			summary.ArchivedProjects++
		}
		if p.Status == model.ProjectActive {
			summary.ActiveProjects++
		}
		if p.IsOverBudget() {
			summary.OverBudget++
		}
		summary.TotalBalanceUSD = summary.TotalBalanceUSD.Add(p.CurrentBalanceUSD)
		summary.TotalBalanceARS = summary.TotalBalanceARS.Add(p.CurrentBalanceARS)
		summary.ByStatus[string(p.Status)]++
		summary.ByType[string(p.ProjectType)]++
	}
	return summary, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (s *projectService) refreshFinancials(ctx context.Context, project *model.Project) error {
	sequence, err := s.movements.ListByProject(ctx, project.Name)
	if err != nil {
		return err
	}
	orders, err := s.orders.ListByProject(ctx, project.Name)
	if err != nil {
		return err
	}

	totals := ledger.RecalculateMovements(sequence)
	project.TotalIncomeUSD = totals.TotalIncomeUSD
	project.TotalExpenseUSD = totals.TotalExpenseUSD
	project.TotalIncomeARS = totals.TotalIncomeARS
	project.TotalExpenseARS = totals.TotalExpenseARS
	project.CurrentBalanceUSD = totals.CurrentBalanceUSD
	project.CurrentBalanceARS = totals.CurrentBalanceARS
	project.MovementsCount = len(sequence)
	project.DisbursementOrdersCount = len(orders)

	return s.repo.Update(ctx, project)
}

func toProjectResponse(p *model.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		ProjectType: string(p.ProjectType),
		Status:      string(p.Status),

		StartDate: fmtDatePtr(p.StartDate),
		EndDate:   fmtDatePtr(p.EndDate),

		BudgetUSD: p.BudgetUSD,
		BudgetARS: p.BudgetARS,

		ClientName: p.ClientName,
		Location:   p.Location,

		CurrentBalanceUSD: p.CurrentBalanceUSD,
		CurrentBalanceARS: p.CurrentBalanceARS,
		TotalIncomeUSD:    p.TotalIncomeUSD,
		TotalExpenseUSD:   p.TotalExpenseUSD,
		TotalIncomeARS:    p.TotalIncomeARS,
		TotalExpenseARS:   p.TotalExpenseARS,

		MovementsCount:          p.MovementsCount,
		DisbursementOrdersCount: p.DisbursementOrdersCount,
		IsOverBudget:            p.IsOverBudget(),
		IsArchived:              p.IsArchived,

		Notes:     p.Notes,
		CreatedBy: p.CreatedBy,
		CreatedAt: fmtTime(p.CreatedAt),
	}
}
