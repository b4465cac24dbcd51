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

type CashCountService interface {
	Create(ctx context.Context, user string, req dto.CreateCashCountRequest) (*dto.CashCountResponse, error)
	List(ctx context.Context, filter dto.CashCountFilter) (*dto.CashCountListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.CashCountResponse, error)
	ResolveDiscrepancy(ctx context.Context, countID, discrepancyID uuid.UUID, user string, req dto.ResolveDiscrepancyRequest) (*dto.CashCountResponse, error)
	Summary(ctx context.Context) (*ledger.CashCountSummary, error)
}

type cashCountService struct {
	repo       repository.CashCountRepository
	movements  repository.StudioMovementRepository
	cfg        *config.Config
	dispatcher *worker.Dispatcher
}

func NewCashCountService(
	repo repository.CashCountRepository,
	movements repository.StudioMovementRepository,
	cfg *config.Config,
	dispatcher *worker.Dispatcher,
) CashCountService {
	return &cashCountService{repo: repo, movements: movements, cfg: cfg, dispatcher: dispatcher}
}

// ── Create ────────────────────────────────────────────────────────────────────
// The expected balance comes from the project's movement ledger; the counted
// amounts are reconciled against it immediately.

func (s *cashCountService) Create(ctx context.Context, user string, req dto.CreateCashCountRequest) (*dto.CashCountResponse, error) {
	countType := model.CashCountType(req.CountType)
	if countType == "" {
		countType = model.CountDaily
	}

	count := &model.CashCount{
		CountDate: parseDate(req.CountDate),
		DecoName:  req.DecoName,
		CountType: countType,

		CashUSDCounted: req.CashUSDCounted,
		CashARSCounted: req.CashARSCounted,

		ProfitCashUSD:          req.ProfitCashUSD,
		ProfitCashARS:          req.ProfitCashARS,
		ProfitTransferUSD:      req.ProfitTransferUSD,
		ProfitTransferARS:      req.ProfitTransferARS,
		CommissionsCashUSD:     req.CommissionsCashUSD,
		CommissionsCashARS:     req.CommissionsCashARS,
		CommissionsTransferUSD: req.CommissionsTransferUSD,
		CommissionsTransferARS: req.CommissionsTransferARS,
		HonorariaCashUSD:       req.HonorariaCashUSD,
		HonorariaCashARS:       req.HonorariaCashARS,
		HonorariaTransferUSD:   req.HonorariaTransferUSD,
		HonorariaTransferARS:   req.HonorariaTransferARS,

		Notes:     req.Notes,
		CreatedBy: user,
	}
	count.CalculateTotals()

	sequence, err := s.movements.ListByProject(ctx, req.DecoName)
	if err != nil {
		return nil, err
	}
	expected := ledger.RecalculateMovements(sequence)

	cmp := ledger.ApplyComparison(count,
		ledger.Amounts{USD: count.CashUSDCounted, ARS: count.CashARSCounted},
		ledger.Amounts{USD: expected.CurrentBalanceUSD, ARS: expected.CurrentBalanceARS},
	)

	if err := s.repo.Create(ctx, count); err != nil {
		return nil, err
	}

	if count.HasDiscrepancies {
		s.notifyDiscrepancies(ctx, count, cmp)
	}

	resp := toCashCountResponse(count)
	return &resp, nil
}

func (s *cashCountService) List(ctx context.Context, filter dto.CashCountFilter) (*dto.CashCountListResponse, error) {
	counts, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.CashCountResponse, len(counts))
	for i := range counts {
		data[i] = toCashCountResponse(&counts[i])
	}
	return &dto.CashCountListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *cashCountService) Get(ctx context.Context, id uuid.UUID) (*dto.CashCountResponse, error) {
	count, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	resp := toCashCountResponse(count)
	return &resp, nil
}

// ── ResolveDiscrepancy ────────────────────────────────────────────────────────

func (s *cashCountService) ResolveDiscrepancy(ctx context.Context, countID, discrepancyID uuid.UUID, user string, req dto.ResolveDiscrepancyRequest) (*dto.CashCountResponse, error) {
	count, err := s.repo.FindByID(ctx, countID)
	if err != nil {
		return nil, ErrNotFound
	}

	found := false
	now := time.Now().UTC()
	for i := range count.Discrepancies {
		if count.Discrepancies[i].ID != discrepancyID {
			continue
		}
		if count.Discrepancies[i].Resolved {
			return nil, errors.New("la discrepancia ya fue resuelta")
		}
		notes := req.ResolutionNotes
		count.Discrepancies[i].Resolved = true
		count.Discrepancies[i].ResolutionNotes = &notes
		count.Discrepancies[i].ResolvedBy = &user
		count.Discrepancies[i].ResolvedAt = &now
		found = true
		break
	}
	if !found {
		return nil, ErrNotFound
	}

	// With every record resolved the count is considered reconciled
	allResolved := true
	for i := range count.Discrepancies {
		if !count.Discrepancies[i].Resolved {
			allResolved = false
			break
		}
	}
	if allResolved {
		count.HasDiscrepancies = false
		count.Status = model.ReconCompleted
	}
	count.UpdatedBy = &user

	if err := s.repo.Update(ctx, count); err != nil {
		return nil, err
	}
	resp := toCashCountResponse(count)
	return &resp, nil
}

func (s *cashCountService) Summary(ctx context.Context) (*ledger.CashCountSummary, error) {
	counts, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	summary := ledger.SummarizeCashCounts(counts)
	return &summary, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (s *cashCountService) notifyDiscrepancies(ctx context.Context, count *model.CashCount, cmp ledger.Comparison) {
	body := fmt.Sprintf("Arqueo de %s (%s): %d discrepancia(s)", count.DecoName, fmtDate(count.CountDate), len(cmp.Discrepancies))
	for _, d := range cmp.Discrepancies {
		body += fmt.Sprintf("\n- %s %s %s (%s)", d.DiscrepancyType, d.Currency, d.Difference.Abs().StringFixed(2), d.Severity)
	}
	err := s.dispatcher.EnqueueNotification(ctx, worker.NotificationPayload{
		Event:   "discrepancy_found",
		Subject: "Discrepancia en arqueo de caja",
		Body:    body,
		ToPhone: s.cfg.NotifyPhone,
		ToEmail: s.cfg.NotifyEmail,
	})
	if err != nil {
		log.Error().Err(err).Str("deco", count.DecoName).Msg("cash_count: enqueue notification failed")
	}
}

func toComparisonResponse(doc model.ComparisonDoc) *dto.LedgerComparisonResponse {
	if doc.Comparison == nil {
		return nil
	}
	c := doc.Comparison
	return &dto.LedgerComparisonResponse{
		Currency:      string(c.Currency),
		LedgerBalance: c.LedgerBalance,
		CountedAmount: c.CountedAmount,
		Difference:    c.Difference,
		Matches:       c.Matches,
	}
}

func toCashCountResponse(c *model.CashCount) dto.CashCountResponse {
	discrepancies := make([]dto.DiscrepancyResponse, len(c.Discrepancies))
	for i, d := range c.Discrepancies {
		discrepancies[i] = dto.DiscrepancyResponse{
			ID:              d.ID.String(),
			DiscrepancyType: string(d.DiscrepancyType),
			Currency:        string(d.Currency),
			ExpectedAmount:  d.ExpectedAmount,
			ActualAmount:    d.ActualAmount,
			Difference:      d.Difference,
			Description:     d.Description,
			Severity:        string(d.Severity),
			Resolved:        d.Resolved,
			ResolutionNotes: d.ResolutionNotes,
			ResolvedBy:      d.ResolvedBy,
			ResolvedAt:      fmtTimePtr(d.ResolvedAt),
		}
	}

	return dto.CashCountResponse{
		ID:        c.ID.String(),
		CountDate: fmtDate(c.CountDate),
		DecoName:  c.DecoName,
		CountType: string(c.CountType),

		CashUSDCounted: c.CashUSDCounted,
		CashARSCounted: c.CashARSCounted,

		TotalProfitUSD:      c.TotalProfitUSD,
		TotalProfitARS:      c.TotalProfitARS,
		TotalCommissionsUSD: c.TotalCommissionsUSD,
		TotalCommissionsARS: c.TotalCommissionsARS,
		TotalHonorariaUSD:   c.TotalHonorariaUSD,
		TotalHonorariaARS:   c.TotalHonorariaARS,

		ExpectedBalanceUSD:  c.ExpectedBalanceUSD,
		ExpectedBalanceARS:  c.ExpectedBalanceARS,
		LedgerComparisonUSD: toComparisonResponse(c.LedgerComparisonUSD),
		LedgerComparisonARS: toComparisonResponse(c.LedgerComparisonARS),

		Status:           string(c.Status),
		Discrepancies:    discrepancies,
		HasDiscrepancies: c.HasDiscrepancies,

		Notes:     c.Notes,
		CreatedBy: c.CreatedBy,
		CreatedAt: fmtTime(c.CreatedAt),
	}
}
