package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krikodium/hermanascaradonti/internal/model"
)

func TestSummarizeGeneralCashEmpty(t *testing.T) {
	s := SummarizeGeneralCash(nil)

	assert.Zero(t, s.TotalEntries)
	assert.Zero(t, s.PendingApprovals)
	assert.True(t, s.NetBalanceARS.IsZero())
	assert.True(t, s.NetBalanceUSD.IsZero())
	assert.Empty(t, s.ByApplication)
}

func TestSummarizeGeneralCash(t *testing.T) {
	entries := []model.GeneralCashEntry{
		{
			Application:      model.AppAportesSocias,
			IncomeARS:        decp("100000"),
			RequiresApproval: true,
			ApprovalStatus:   model.ApprovalPending,
		},
		{
			Application:      model.AppGastosGral,
			ExpenseARS:       decp("60000"),
			RequiresApproval: true,
			ApprovalStatus:   model.ApprovalApprovedByFede,
		},
		{
			ExpenseUSD:     decp("200"),
			ApprovalStatus: model.ApprovalPending,
		},
	}

	s := SummarizeGeneralCash(entries)

	assert.Equal(t, 3, s.TotalEntries)
	// Only pending entries that actually gate count as pending approvals.
	assert.Equal(t, 1, s.PendingApprovals)
	assert.True(t, s.TotalIncomeARS.Equal(dec("100000")))
	assert.True(t, s.TotalExpenseARS.Equal(dec("60000")))
	assert.True(t, s.NetBalanceARS.Equal(dec("40000")))
	assert.True(t, s.NetBalanceUSD.Equal(dec("-200")))

	require.Contains(t, s.ByApplication, string(model.AppAportesSocias))
	require.Contains(t, s.ByApplication, UngroupedKey)
	assert.Equal(t, 1, s.ByApplication[UngroupedKey].Count)
	assert.True(t, s.ByApplication[string(model.AppGastosGral)].TotalExpenseARS.Equal(dec("60000")))
}

func TestSummarizeEventsCash(t *testing.T) {
	events := []model.EventsCash{
		{
			Header: model.EventHeader{EventType: model.EventWedding},
			PaymentStatus: model.PaymentStatusPanel{
				TotalBudget:      dec("100000"),
				AnticipoReceived: dec("40000"),
			},
			TotalIncomeARS:  dec("40000"),
			TotalExpenseARS: dec("10000"),
		},
		{
			Header: model.EventHeader{EventType: model.EventWedding},
			PaymentStatus: model.PaymentStatusPanel{
				TotalBudget:      dec("50000"),
				AnticipoReceived: dec("20000"),
				SegundoPago:      dec("30000"),
			},
			TotalIncomeARS: dec("50000"),
			HasOverdraft:   true,
		},
		{
			PaymentStatus: model.PaymentStatusPanel{TotalBudget: dec("20000")},
		},
	}

	s := SummarizeEventsCash(events)

	assert.Equal(t, 3, s.TotalEvents)
	assert.Equal(t, 1, s.CompletedEvents)
	assert.Equal(t, 2, s.ActiveEvents)
	assert.Equal(t, 1, s.EventsWithOverdraft)
	assert.True(t, s.TotalBudget.Equal(dec("170000")))
	assert.True(t, s.TotalReceived.Equal(dec("90000")))
	assert.True(t, s.OutstandingBalance.Equal(dec("80000")))

	require.Contains(t, s.ByEventType, string(model.EventWedding))
	assert.Equal(t, 2, s.ByEventType[string(model.EventWedding)].Count)
	assert.Equal(t, 1, s.ByEventType[UngroupedKey].Count)
}

func TestSummarizeShopCash(t *testing.T) {
	sale := model.ShopCashEntry{
		InternalCoordinator: "carla",
		PaymentMethod:       model.PaymentEfectivo,
		SoldAmountARS:       decp("10000"),
		CostARS:             decp("6000"),
		CommissionRate:      model.DefaultCommissionRate,
	}
	sale.CalculateAmounts()

	other := model.ShopCashEntry{
		PaymentMethod:  model.PaymentTransferencia,
		SoldAmountUSD:  decp("200"),
		CostUSD:        decp("150"),
		CommissionRate: model.DefaultCommissionRate,
	}
	other.CalculateAmounts()

	s := SummarizeShopCash([]model.ShopCashEntry{sale, other})

	assert.Equal(t, 2, s.TotalSales)
	assert.True(t, s.TotalRevenueARS.Equal(dec("10000")))
	assert.True(t, s.TotalRevenueUSD.Equal(dec("200")))
	// net 4000, commission 2% = 80, profit 3920
	assert.True(t, s.TotalCommissionARS.Equal(dec("80")))
	assert.True(t, s.TotalProfitARS.Equal(dec("3920")))
	// net 50, commission 1.00, profit 49
	assert.True(t, s.TotalCommissionUSD.Equal(dec("1")))
	assert.True(t, s.TotalProfitUSD.Equal(dec("49")))

	assert.Equal(t, 1, s.ByCoordinator["carla"].Count)
	assert.Equal(t, 1, s.ByCoordinator[UngroupedKey].Count)
	assert.Equal(t, 1, s.ByPaymentMethod[string(model.PaymentEfectivo)])
	assert.Equal(t, 1, s.ByPaymentMethod[string(model.PaymentTransferencia)])
}

func TestSummarizeStudio(t *testing.T) {
	movements := []model.StudioMovement{
		{ProjectName: "Alvear", IncomeUSD: decp("1000")},
		{ProjectName: "Alvear", ExpenseUSD: decp("300"), ExpenseARS: decp("15000")},
		{IncomeARS: decp("20000")},
	}
	due := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	orders := []model.DisbursementOrder{
		{ProjectName: "Alvear", Status: model.DisbRequested, DueDate: &due},
		{ProjectName: "Alvear", Status: model.DisbOverdue},
		{ProjectName: "Alvear", Status: model.DisbProcessed},
	}

	s := SummarizeStudio(movements, orders)

	assert.Equal(t, 3, s.TotalMovements)
	assert.Equal(t, 1, s.PendingDisbursements)
	assert.Equal(t, 1, s.OverduePayments)
	assert.True(t, s.TotalBalanceUSD.Equal(dec("700")))
	assert.True(t, s.TotalBalanceARS.Equal(dec("5000")))
	assert.Equal(t, 2, s.ByProject["Alvear"].Count)
	assert.Equal(t, 1, s.ByProject[UngroupedKey].Count)
}

func TestSummarizeCashCountsEmpty(t *testing.T) {
	s := SummarizeCashCounts(nil)

	assert.Zero(t, s.TotalCounts)
	assert.True(t, s.ReconciliationRate.Equal(dec("100")))
}

func TestSummarizeCashCounts(t *testing.T) {
	counts := []model.CashCount{
		{DecoName: "Pájaro", Status: model.ReconCompleted, CashARSCounted: dec("5000")},
		{
			DecoName: "Pájaro",
			Status:   model.ReconDiscrepancyFound,
			Discrepancies: model.DiscrepancyRecords{
				{Currency: model.CurrencyARS, Difference: dec("-2500")},
				{Currency: model.CurrencyUSD, Difference: dec("30")},
			},
		},
		{Status: model.ReconPending},
		{DecoName: "Alvear", Status: model.ReconCompleted},
	}

	s := SummarizeCashCounts(counts)

	assert.Equal(t, 4, s.TotalCounts)
	assert.Equal(t, 2, s.CompletedCounts)
	assert.Equal(t, 1, s.DiscrepancyCounts)
	assert.Equal(t, 1, s.PendingCounts)
	assert.True(t, s.TotalDiscrepancyAmountARS.Equal(dec("2500")))
	assert.True(t, s.TotalDiscrepancyAmountUSD.Equal(dec("30")))
	assert.True(t, s.ReconciliationRate.Equal(dec("75")))
	assert.Equal(t, 2, s.ByDeco["Pájaro"].Count)
	assert.Equal(t, 1, s.ByDeco[UngroupedKey].Count)
}
