package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krikodium/hermanascaradonti/internal/dto"
	"github.com/krikodium/hermanascaradonti/internal/model"
	"github.com/krikodium/hermanascaradonti/internal/repository"
	"github.com/krikodium/hermanascaradonti/internal/service"
)

// ── In-memory CashCountRepository ────────────────────────────────────────────

type fakeCashCountRepo struct {
	counts map[uuid.UUID]*model.CashCount
	order  []uuid.UUID
}

func newFakeCashCountRepo() *fakeCashCountRepo {
	return &fakeCashCountRepo{counts: make(map[uuid.UUID]*model.CashCount)}
}

func (r *fakeCashCountRepo) Create(_ context.Context, c *model.CashCount) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.counts[c.ID] = c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *fakeCashCountRepo) FindByID(_ context.Context, id uuid.UUID) (*model.CashCount, error) {
	c, ok := r.counts[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return c, nil
}

func (r *fakeCashCountRepo) List(_ context.Context, _ dto.CashCountFilter) ([]model.CashCount, int64, error) {
	all, _ := r.ListAll(context.Background())
	return all, int64(len(all)), nil
}

func (r *fakeCashCountRepo) ListAll(_ context.Context) ([]model.CashCount, error) {
	out := make([]model.CashCount, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.counts[id])
	}
	return out, nil
}

func (r *fakeCashCountRepo) Update(_ context.Context, c *model.CashCount) error {
	r.counts[c.ID] = c
	return nil
}

var _ repository.CashCountRepository = (*fakeCashCountRepo)(nil)

func newCashCountService(ledgerBalanceARS float64) (service.CashCountService, *fakeCashCountRepo) {
	repo := newFakeCashCountRepo()
	movements := &fakeMovementRepo{}
	if ledgerBalanceARS != 0 {
		movements.movements = append(movements.movements, model.StudioMovement{
			ID:          uuid.New(),
			ProjectName: "Pájaro",
			Description: "Saldo inicial",
			IncomeARS:   dec(ledgerBalanceARS),
		})
	}
	svc := service.NewCashCountService(repo, movements, testConfig(), nil)
	return svc, repo
}

func countRequest(countedARS float64) dto.CreateCashCountRequest {
	return dto.CreateCashCountRequest{
		CountDate:      "2025-06-30",
		DecoName:       "Pájaro",
		CashARSCounted: decimal.NewFromFloat(countedARS),
	}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCreateCountExactMatch(t *testing.T) {
	svc, _ := newCashCountService(80000)

	resp, err := svc.Create(context.Background(), "caro", countRequest(80000))
	require.NoError(t, err)

	assert.Equal(t, string(model.ReconCompleted), resp.Status)
	assert.False(t, resp.HasDiscrepancies)
	assert.Empty(t, resp.Discrepancies)
	require.NotNil(t, resp.LedgerComparisonARS)
	assert.True(t, resp.LedgerComparisonARS.Matches)
}

func TestCreateCountWithinTolerance(t *testing.T) {
	svc, _ := newCashCountService(80000)

	// ARS tolerance is 1.00: a 0.50 drift still reconciles
	resp, err := svc.Create(context.Background(), "caro", countRequest(80000.50))
	require.NoError(t, err)

	assert.Equal(t, string(model.ReconCompleted), resp.Status)
	assert.False(t, resp.HasDiscrepancies)
}

func TestCreateCountShortage(t *testing.T) {
	svc, _ := newCashCountService(80000)

	resp, err := svc.Create(context.Background(), "caro", countRequest(79500))
	require.NoError(t, err)

	assert.Equal(t, string(model.ReconDiscrepancyFound), resp.Status)
	assert.True(t, resp.HasDiscrepancies)
	require.Len(t, resp.Discrepancies, 1)
	d := resp.Discrepancies[0]
	assert.Equal(t, "shortage", d.DiscrepancyType)
	assert.Equal(t, "ARS", d.Currency)
	assert.Equal(t, "medium", d.Severity)
	assert.Equal(t, decimal.NewFromFloat(-500).String(), d.Difference.String())
}

func TestCreateCountLargeOverageIsHighSeverity(t *testing.T) {
	svc, _ := newCashCountService(80000)

	resp, err := svc.Create(context.Background(), "caro", countRequest(95000))
	require.NoError(t, err)

	require.Len(t, resp.Discrepancies, 1)
	assert.Equal(t, "overage", resp.Discrepancies[0].DiscrepancyType)
	assert.Equal(t, "high", resp.Discrepancies[0].Severity)
}

func TestResolveDiscrepancyCompletesCount(t *testing.T) {
	svc, _ := newCashCountService(80000)

	created, err := svc.Create(context.Background(), "caro", countRequest(79500))
	require.NoError(t, err)
	countID := uuid.MustParse(created.ID)
	discID := uuid.MustParse(created.Discrepancies[0].ID)

	resp, err := svc.ResolveDiscrepancy(context.Background(), countID, discID, "fede", dto.ResolveDiscrepancyRequest{
		ResolutionNotes: "Vuelto no registrado, ajustado contra caja chica",
	})
	require.NoError(t, err)

	assert.False(t, resp.HasDiscrepancies)
	assert.Equal(t, string(model.ReconCompleted), resp.Status)
	require.Len(t, resp.Discrepancies, 1)
	assert.True(t, resp.Discrepancies[0].Resolved)
	require.NotNil(t, resp.Discrepancies[0].ResolvedBy)
	assert.Equal(t, "fede", *resp.Discrepancies[0].ResolvedBy)
}

func TestResolveDiscrepancyTwiceFails(t *testing.T) {
	svc, _ := newCashCountService(80000)

	created, err := svc.Create(context.Background(), "caro", countRequest(79500))
	require.NoError(t, err)
	countID := uuid.MustParse(created.ID)
	discID := uuid.MustParse(created.Discrepancies[0].ID)

	_, err = svc.ResolveDiscrepancy(context.Background(), countID, discID, "fede", dto.ResolveDiscrepancyRequest{
		ResolutionNotes: "Ajustado contra caja chica",
	})
	require.NoError(t, err)

	_, err = svc.ResolveDiscrepancy(context.Background(), countID, discID, "fede", dto.ResolveDiscrepancyRequest{
		ResolutionNotes: "Otra vez",
	})
	assert.ErrorContains(t, err, "ya fue resuelta")
}

func TestResolveUnknownDiscrepancy(t *testing.T) {
	svc, _ := newCashCountService(80000)

	created, err := svc.Create(context.Background(), "caro", countRequest(80000))
	require.NoError(t, err)

	_, err = svc.ResolveDiscrepancy(context.Background(), uuid.MustParse(created.ID), uuid.New(), "fede", dto.ResolveDiscrepancyRequest{
		ResolutionNotes: "No existe",
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCashCountSummaryReconciliationRate(t *testing.T) {
	svc, _ := newCashCountService(80000)

	_, err := svc.Create(context.Background(), "caro", countRequest(80000))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "caro", countRequest(79500))
	require.NoError(t, err)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalCounts)
	assert.Equal(t, 1, summary.DiscrepancyCounts)
	assert.Equal(t, decimal.NewFromFloat(50).String(), summary.ReconciliationRate.String())
	assert.Contains(t, summary.ByDeco, "Pájaro")
}
