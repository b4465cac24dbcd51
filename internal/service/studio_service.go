package service

import (
	"context"
	"errors"
	"time"

	"github.com/krikodium/hermanascaradonti/internal/dto"
	"github.com/krikodium/hermanascaradonti/internal/ledger"
	"github.com/krikodium/hermanascaradonti/internal/model"
	"github.com/krikodium/hermanascaradonti/internal/repository"
)

type StudioService interface {
	CreateMovement(ctx context.Context, user string, req dto.CreateStudioMovementRequest) (*dto.StudioMovementResponse, error)
	ListMovements(ctx context.Context, filter dto.StudioMovementFilter) (*dto.StudioMovementListResponse, error)
	CreateOrder(ctx context.Context, user string, req dto.CreateDisbursementOrderRequest) (*dto.DisbursementOrderResponse, error)
	ListOrders(ctx context.Context, projectName string) ([]dto.DisbursementOrderResponse, error)
	Summary(ctx context.Context) (*ledger.StudioSummary, error)
}

type studioService struct {
	movements repository.StudioMovementRepository
	orders    repository.DisbursementOrderRepository
	projects  repository.ProjectRepository
}

func NewStudioService(
	movements repository.StudioMovementRepository,
	orders repository.DisbursementOrderRepository,
	projects repository.ProjectRepository,
) StudioService {
	return &studioService{movements: movements, orders: orders, projects: projects}
}

// ── CreateMovement ────────────────────────────────────────────────────────────
// Movements chain running balances per project in insertion order, so every
// append recomputes and persists the project's whole sequence.

func (s *studioService) CreateMovement(ctx context.Context, user string, req dto.CreateStudioMovementRequest) (*dto.StudioMovementResponse, error) {
	if _, err := s.projects.FindByName(ctx, req.ProjectName); err != nil {
		return nil, errors.New("el proyecto no existe")
	}

	movement := &model.StudioMovement{
		Date:        parseDate(req.Date),
		ProjectName: req.ProjectName,
		Description: req.Description,

		IncomeUSD:  req.IncomeUSD,
		ExpenseUSD: req.ExpenseUSD,
		IncomeARS:  req.IncomeARS,
		ExpenseARS: req.ExpenseARS,

		Supplier:        req.Supplier,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
		CreatedBy:       user,
	}
	if err := s.movements.Create(ctx, movement); err != nil {
		return nil, err
	}

	sequence, err := s.movements.ListByProject(ctx, req.ProjectName)
	if err != nil {
		return nil, err
	}
	ledger.RecalculateMovements(sequence)
	if err := s.movements.SaveAll(ctx, sequence); err != nil {
		return nil, err
	}

	// Return the freshly chained copy
	for i := range sequence {
		if sequence[i].ID == movement.ID {
			movement = &sequence[i]
			break
		}
	}
	resp := toMovementResponse(movement)
	return &resp, nil
}

func (s *studioService) ListMovements(ctx context.Context, filter dto.StudioMovementFilter) (*dto.StudioMovementListResponse, error) {
	movements, total, err := s.movements.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.StudioMovementResponse, len(movements))
	for i := range movements {
		data[i] = toMovementResponse(&movements[i])
	}
	return &dto.StudioMovementListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// ── Disbursement orders ───────────────────────────────────────────────────────

func (s *studioService) CreateOrder(ctx context.Context, user string, req dto.CreateDisbursementOrderRequest) (*dto.DisbursementOrderResponse, error) {
	if _, err := s.projects.FindByName(ctx, req.ProjectName); err != nil {
		return nil, errors.New("el proyecto no existe")
	}

	priority := req.Priority
	if priority == "" {
		priority = "normal"
	}
	order := &model.DisbursementOrder{
		ProjectName:      req.ProjectName,
		DisbursementType: model.DisbursementType(req.DisbursementType),
		AmountUSD:        req.AmountUSD,
		AmountARS:        req.AmountARS,
		Supplier:         req.Supplier,
		Description:      req.Description,
		RequestedBy:      user,
		RequestedAt:      time.Now().UTC(),
		DueDate:          parseDatePtr(req.DueDate),
		Priority:         priority,
		Status:           model.DisbRequested,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	resp := toOrderResponse(order, time.Now().UTC())
	return &resp, nil
}

func (s *studioService) ListOrders(ctx context.Context, projectName string) ([]dto.DisbursementOrderResponse, error) {
	var orders []model.DisbursementOrder
	var err error
	if projectName != "" {
		orders, err = s.orders.ListByProject(ctx, projectName)
	} else {
		orders, err = s.orders.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	data := make([]dto.DisbursementOrderResponse, len(orders))
	for i := range orders {
		data[i] = toOrderResponse(&orders[i], now)
	}
	return data, nil
}

func (s *studioService) Summary(ctx context.Context) (*ledger.StudioSummary, error) {
	movements, err := s.movements.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// Overdue is derived at read time, never persisted
	now := time.Now().UTC()
	for i := range orders {
		if orders[i].IsOverdue(now) {
			orders[i].Status = model.DisbOverdue
		}
	}

	summary := ledger.SummarizeStudio(movements, orders)
	return &summary, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func toMovementResponse(m *model.StudioMovement) dto.StudioMovementResponse {
	return dto.StudioMovementResponse{
		ID:          m.ID.String(),
		Date:        fmtDate(m.Date),
		ProjectName: m.ProjectName,
		Description: m.Description,

		IncomeUSD:  m.IncomeUSD,
		ExpenseUSD: m.ExpenseUSD,
		IncomeARS:  m.IncomeARS,
		ExpenseARS: m.ExpenseARS,

		RunningBalanceUSD: m.RunningBalanceUSD,
		RunningBalanceARS: m.RunningBalanceARS,

		Supplier:        m.Supplier,
		ReferenceNumber: m.ReferenceNumber,

		CreatedBy: m.CreatedBy,
		CreatedAt: fmtTime(m.CreatedAt),
	}
}

func toOrderResponse(o *model.DisbursementOrder, now time.Time) dto.DisbursementOrderResponse {
	status := o.Status
	if o.IsOverdue(now) {
		status = model.DisbOverdue
	}
	return dto.DisbursementOrderResponse{
		ID:               o.ID.String(),
		ProjectName:      o.ProjectName,
		DisbursementType: string(o.DisbursementType),

		AmountUSD: o.AmountUSD,
		AmountARS: o.AmountARS,

		Supplier:    o.Supplier,
		Description: o.Description,
		RequestedBy: o.RequestedBy,
		RequestedAt: fmtTime(o.RequestedAt),
		DueDate:     fmtDatePtr(o.DueDate),
		Priority:    o.Priority,

		Status:          string(status),
		ApprovedBy:      o.ApprovedBy,
		ApprovedAt:      fmtTimePtr(o.ApprovedAt),
		ProcessedBy:     o.ProcessedBy,
		ProcessedAt:     fmtTimePtr(o.ProcessedAt),
		RejectionReason: o.RejectionReason,
	}
}
