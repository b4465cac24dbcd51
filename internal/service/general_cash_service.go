package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/krikodium/hermanascaradonti/internal/config"
	"github.com/krikodium/hermanascaradonti/internal/dto"
	"github.com/krikodium/hermanascaradonti/internal/ledger"
	"github.com/krikodium/hermanascaradonti/internal/model"
	"github.com/krikodium/hermanascaradonti/internal/repository"
	"github.com/krikodium/hermanascaradonti/internal/worker"
)

type GeneralCashService interface {
	Create(ctx context.Context, user string, req dto.CreateGeneralCashRequest) (*dto.GeneralCashResponse, error)
	List(ctx context.Context, filter dto.GeneralCashFilter) (*dto.GeneralCashListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.GeneralCashResponse, error)
	Update(ctx context.Context, id uuid.UUID, user string, req dto.UpdateGeneralCashRequest) (*dto.GeneralCashResponse, error)
	Approve(ctx context.Context, id uuid.UUID, approver string, q dto.ApproveQuery) (*dto.GeneralCashResponse, error)
	Summary(ctx context.Context) (*ledger.GeneralCashSummary, error)
}

type generalCashService struct {
	repo       repository.GeneralCashRepository
	cfg        *config.Config
	dispatcher *worker.Dispatcher
}

func NewGeneralCashService(repo repository.GeneralCashRepository, cfg *config.Config, dispatcher *worker.Dispatcher) GeneralCashService {
	return &generalCashService{repo: repo, cfg: cfg, dispatcher: dispatcher}
}

// ── Create ────────────────────────────────────────────────────────────────────
// Large expenses enter the approval workflow: the entry is flagged, a payment
// order is embedded, and a notification job is enqueued.

func (s *generalCashService) Create(ctx context.Context, user string, req dto.CreateGeneralCashRequest) (*dto.GeneralCashResponse, error) {
	entry := &model.GeneralCashEntry{
		Date:        parseDate(req.Date),
		Description: req.Description,
		Application: model.GeneralCashApplication(req.Application),
		Provider:    req.Provider,
		IncomeARS:   req.IncomeARS,
		IncomeUSD:   req.IncomeUSD,
		ExpenseARS:  req.ExpenseARS,
		ExpenseUSD:  req.ExpenseUSD,

		RequiresApproval:     true,
		ApprovalThresholdARS: s.cfg.ThresholdARS(),
		ApprovalThresholdUSD: s.cfg.ThresholdUSD(),
		ApprovalStatus:       model.ApprovalPending,

		Notes:     req.Notes,
		CreatedBy: user,
	}

	if ledger.NeedsApproval(entry) {
		orderType := model.OrderPayment
		entry.PaymentOrder = model.PaymentOrderDoc{Order: &model.PaymentOrder{
			ID:          uuid.New(),
			OrderType:   orderType,
			AmountARS:   req.ExpenseARS,
			AmountUSD:   req.ExpenseUSD,
			Description: req.Description,
			RequestedBy: user,
			RequestedAt: time.Now().UTC(),
			Status:      model.ApprovalPending,
		}}
	} else {
		// Below threshold: the workflow never engages
		entry.RequiresApproval = false
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	if entry.RequiresApproval {
		entry.PaymentOrder.Order.EntryID = entry.ID
		if err := s.repo.Update(ctx, entry); err != nil {
			return nil, err
		}
		s.notify(ctx, "approval_needed",
			"Aprobación pendiente en caja general",
			fmt.Sprintf("%s solicitó %q por %s", user, entry.Description, amountLabel(entry)))
	}

	resp := toGeneralCashResponse(entry)
	return &resp, nil
}

func (s *generalCashService) List(ctx context.Context, filter dto.GeneralCashFilter) (*dto.GeneralCashListResponse, error) {
	entries, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.GeneralCashResponse, len(entries))
	for i := range entries {
		data[i] = toGeneralCashResponse(&entries[i])
	}
	return &dto.GeneralCashListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *generalCashService) Get(ctx context.Context, id uuid.UUID) (*dto.GeneralCashResponse, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	resp := toGeneralCashResponse(entry)
	return &resp, nil
}

func (s *generalCashService) Update(ctx context.Context, id uuid.UUID, user string, req dto.UpdateGeneralCashRequest) (*dto.GeneralCashResponse, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if entry.ApprovalStatus.Terminal() {
		return nil, errors.New("la entrada ya fue resuelta y no puede modificarse")
	}

	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.Provider != nil {
		entry.Provider = *req.Provider
	}
	if req.IncomeARS != nil {
		entry.IncomeARS = req.IncomeARS
	}
	if req.IncomeUSD != nil {
		entry.IncomeUSD = req.IncomeUSD
	}
	if req.ExpenseARS != nil {
		entry.ExpenseARS = req.ExpenseARS
	}
	if req.ExpenseUSD != nil {
		entry.ExpenseUSD = req.ExpenseUSD
	}
	if req.Notes != nil {
		entry.Notes = req.Notes
	}
	entry.UpdatedBy = &user

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	resp := toGeneralCashResponse(entry)
	return &resp, nil
}

// ── Approve ───────────────────────────────────────────────────────────────────

func (s *generalCashService) Approve(ctx context.Context, id uuid.UUID, approver string, q dto.ApproveQuery) (*dto.GeneralCashResponse, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if !entry.RequiresApproval {
		return nil, errors.New("la entrada no requiere aprobación")
	}

	kind := ledger.ApprovalKind(q.ApprovalType)
	if err := ledger.RecordApproval(entry, approver, kind, time.Now().UTC()); err != nil {
		return nil, err
	}
	if kind == ledger.Reject && entry.PaymentOrder.Order != nil {
		entry.PaymentOrder.Order.RejectionReason = q.Reason
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}

	event := "approved"
	subject := "Entrada de caja general aprobada"
	if kind == ledger.Reject {
		event = "rejected"
		subject = "Entrada de caja general rechazada"
	}
	s.notify(ctx, event, subject,
		fmt.Sprintf("%s resolvió %q (%s)", approver, entry.Description, entry.ApprovalStatus))

	resp := toGeneralCashResponse(entry)
	return &resp, nil
}

func (s *generalCashService) Summary(ctx context.Context) (*ledger.GeneralCashSummary, error) {
	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	summary := ledger.SummarizeGeneralCash(entries)
	return &summary, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (s *generalCashService) notify(ctx context.Context, event, subject, body string) {
	err := s.dispatcher.EnqueueNotification(ctx, worker.NotificationPayload{
		Event:   event,
		Subject: subject,
		Body:    body,
		ToPhone: s.cfg.NotifyPhone,
		ToEmail: s.cfg.NotifyEmail,
	})
	if err != nil {
		log.Error().Err(err).Str("event", event).Msg("general_cash: enqueue notification failed")
	}
}

func amountLabel(e *model.GeneralCashEntry) string {
	if e.ExpenseUSD != nil && e.ExpenseUSD.IsPositive() {
		return "USD " + e.ExpenseUSD.StringFixed(2)
	}
	if e.ExpenseARS != nil && e.ExpenseARS.IsPositive() {
		return "ARS " + e.ExpenseARS.StringFixed(2)
	}
	return "ARS 0.00"
}

func toGeneralCashResponse(e *model.GeneralCashEntry) dto.GeneralCashResponse {
	resp := dto.GeneralCashResponse{
		ID:          e.ID.String(),
		Date:        fmtDate(e.Date),
		Description: e.Description,
		Application: string(e.Application),
		Provider:    e.Provider,
		IncomeARS:   e.IncomeARS,
		IncomeUSD:   e.IncomeUSD,
		ExpenseARS:  e.ExpenseARS,
		ExpenseUSD:  e.ExpenseUSD,

		RequiresApproval: e.RequiresApproval,
		ApprovalStatus:   string(e.ApprovalStatus),

		Notes:     e.Notes,
		CreatedBy: e.CreatedBy,
		CreatedAt: fmtTime(e.CreatedAt),
	}
	if order := e.PaymentOrder.Order; order != nil {
		resp.PaymentOrder = &dto.PaymentOrderResponse{
			ID:              order.ID.String(),
			OrderType:       string(order.OrderType),
			AmountARS:       order.AmountARS,
			AmountUSD:       order.AmountUSD,
			Description:     order.Description,
			RequestedBy:     order.RequestedBy,
			RequestedAt:     fmtTime(order.RequestedAt),
			Status:          string(order.Status),
			ApprovedBy:      order.ApprovedBy,
			ApprovedAt:      fmtTimePtr(order.ApprovedAt),
			RejectionReason: order.RejectionReason,
		}
	}
	return resp
}
