package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/krikodium/hermanascaradonti/internal/dto"
	"github.com/krikodium/hermanascaradonti/internal/ledger"
	"github.com/krikodium/hermanascaradonti/internal/model"
	"github.com/krikodium/hermanascaradonti/internal/repository"
)

type EventsCashService interface {
	Create(ctx context.Context, user string, req dto.CreateEventsCashRequest) (*dto.EventsCashResponse, error)
	List(ctx context.Context, filter dto.EventsCashFilter) (*dto.EventsCashListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.EventsCashResponse, error)
	AppendEntry(ctx context.Context, id uuid.UUID, user string, req dto.LedgerEntryRequest) (*dto.EventsCashResponse, error)
	Summary(ctx context.Context) (*ledger.EventsCashSummary, error)
}

type eventsCashService struct {
	repo repository.EventsCashRepository
}

func NewEventsCashService(repo repository.EventsCashRepository) EventsCashService {
	return &eventsCashService{repo: repo}
}

// ── Create ────────────────────────────────────────────────────────────────────

func (s *eventsCashService) Create(ctx context.Context, user string, req dto.CreateEventsCashRequest) (*dto.EventsCashResponse, error) {
	ev := &model.EventsCash{
		Header: model.EventHeader{
			EventDate:         parseDate(req.Header.EventDate),
			Organizer:         req.Header.Organizer,
			ClientName:        req.Header.ClientName,
			ClientRazonSocial: req.Header.ClientRazonSocial,
			EventType:         model.EventType(req.Header.EventType),
			Province:          req.Header.Province,
			Localidad:         req.Header.Localidad,
			ViaticosArmado:    req.Header.ViaticosArmado,
			HCFees:            req.Header.HCFees,
			TotalBudgetNoIVA:  req.Header.TotalBudgetNoIVA,
			BudgetNumber:      req.Header.BudgetNumber,
			PaymentTerms:      req.Header.PaymentTerms,
		},
		PaymentStatus: model.PaymentStatusPanel{
			TotalBudget:      req.PaymentStatus.TotalBudget,
			AnticipoReceived: req.PaymentStatus.AnticipoReceived,
			SegundoPago:      req.PaymentStatus.SegundoPago,
			TercerPago:       req.PaymentStatus.TercerPago,
		},
		LedgerEntries: model.LedgerEntries{},
		CreatedBy:     user,
	}

	if req.InitialEntry != nil {
		ev.LedgerEntries = append(ev.LedgerEntries, newLedgerEntry(*req.InitialEntry))
	}
	s.recalculate(ev)

	if err := s.repo.Create(ctx, ev); err != nil {
		return nil, err
	}
	resp := toEventsCashResponse(ev)
	return &resp, nil
}

func (s *eventsCashService) List(ctx context.Context, filter dto.EventsCashFilter) (*dto.EventsCashListResponse, error) {
	events, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.EventsCashResponse, len(events))
	for i := range events {
		data[i] = toEventsCashResponse(&events[i])
	}
	return &dto.EventsCashListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *eventsCashService) Get(ctx context.Context, id uuid.UUID) (*dto.EventsCashResponse, error) {
	ev, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	resp := toEventsCashResponse(ev)
	return &resp, nil
}

// ── AppendEntry ───────────────────────────────────────────────────────────────
// Entries are append-only; every append recomputes the whole running-balance
// chain in insertion order.

func (s *eventsCashService) AppendEntry(ctx context.Context, id uuid.UUID, user string, req dto.LedgerEntryRequest) (*dto.EventsCashResponse, error) {
	ev, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	ev.LedgerEntries = append(ev.LedgerEntries, newLedgerEntry(req))
	s.recalculate(ev)
	ev.UpdatedBy = &user

	if err := s.repo.Update(ctx, ev); err != nil {
		return nil, err
	}
	resp := toEventsCashResponse(ev)
	return &resp, nil
}

func (s *eventsCashService) Summary(ctx context.Context) (*ledger.EventsCashSummary, error) {
	events, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	summary := ledger.SummarizeEventsCash(events)
	return &summary, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (s *eventsCashService) recalculate(ev *model.EventsCash) {
	totals := ledger.Recalculate(ev.LedgerEntries)
	ev.TotalIncomeARS = totals.TotalIncomeARS
	ev.TotalExpenseARS = totals.TotalExpenseARS
	ev.TotalIncomeUSD = totals.TotalIncomeUSD
	ev.TotalExpenseUSD = totals.TotalExpenseUSD
	ev.FinalBalanceARS = totals.FinalBalanceARS
	ev.FinalBalanceUSD = totals.FinalBalanceUSD
	ev.HasOverdraft = totals.HasOverdraft
	ev.NeedsAttention = totals.HasOverdraft
}

func newLedgerEntry(req dto.LedgerEntryRequest) model.EventsLedgerEntry {
	return model.EventsLedgerEntry{
		ID:             uuid.New(),
		PaymentMethod:  model.PaymentMethod(req.PaymentMethod),
		Date:           parseDate(req.Date),
		Detail:         req.Detail,
		IncomeARS:      req.IncomeARS,
		ExpenseARS:     req.ExpenseARS,
		IncomeUSD:      req.IncomeUSD,
		ExpenseUSD:     req.ExpenseUSD,
		ApprovalStatus: model.ApprovalPending,
	}
}

func toEventsCashResponse(ev *model.EventsCash) dto.EventsCashResponse {
	entries := make([]dto.LedgerEntryResponse, len(ev.LedgerEntries))
	for i := range ev.LedgerEntries {
		e := &ev.LedgerEntries[i]
		entries[i] = dto.LedgerEntryResponse{
			ID:                e.ID.String(),
			PaymentMethod:     string(e.PaymentMethod),
			Date:              fmtDate(e.Date),
			Detail:            e.Detail,
			IncomeARS:         e.IncomeARS,
			ExpenseARS:        e.ExpenseARS,
			IncomeUSD:         e.IncomeUSD,
			ExpenseUSD:        e.ExpenseUSD,
			RunningBalanceARS: e.RunningBalanceARS,
			RunningBalanceUSD: e.RunningBalanceUSD,
		}
	}

	return dto.EventsCashResponse{
		ID: ev.ID.String(),
		Header: dto.EventHeaderRequest{
			EventDate:         fmtDate(ev.Header.EventDate),
			Organizer:         ev.Header.Organizer,
			ClientName:        ev.Header.ClientName,
			ClientRazonSocial: ev.Header.ClientRazonSocial,
			EventType:         string(ev.Header.EventType),
			Province:          ev.Header.Province,
			Localidad:         ev.Header.Localidad,
			ViaticosArmado:    ev.Header.ViaticosArmado,
			HCFees:            ev.Header.HCFees,
			TotalBudgetNoIVA:  ev.Header.TotalBudgetNoIVA,
			BudgetNumber:      ev.Header.BudgetNumber,
			PaymentTerms:      ev.Header.PaymentTerms,
		},
		PaymentStatus: dto.PaymentStatusResponse{
			TotalBudget:      ev.PaymentStatus.TotalBudget,
			AnticipoReceived: ev.PaymentStatus.AnticipoReceived,
			SegundoPago:      ev.PaymentStatus.SegundoPago,
			TercerPago:       ev.PaymentStatus.TercerPago,
			BalanceDue:       ev.PaymentStatus.BalanceDue(),
			Status:           string(ev.PaymentStatus.Status()),
		},
		LedgerEntries: entries,

		TotalIncomeARS:  ev.TotalIncomeARS,
		TotalExpenseARS: ev.TotalExpenseARS,
		TotalIncomeUSD:  ev.TotalIncomeUSD,
		TotalExpenseUSD: ev.TotalExpenseUSD,
		FinalBalanceARS: ev.FinalBalanceARS,
		FinalBalanceUSD: ev.FinalBalanceUSD,
		HasOverdraft:    ev.HasOverdraft,

		CreatedBy: ev.CreatedBy,
		CreatedAt: fmtTime(ev.CreatedAt),
	}
}
