package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/krikodium/hermanascaradonti/internal/model"
)

// Summary aggregators: pure, order-invariant folds over stored collections.
// Empty input always yields a zero-valued summary, never an error. Grouped
// breakdowns bucket missing keys under UngroupedKey instead of dropping them.

// UngroupedKey is the bucket for records whose group key is empty.
const UngroupedKey = "ungrouped"

// GroupTotals is a per-group breakdown of income/expense sums.
type GroupTotals struct {
	Count           int             `json:"count"`
	TotalIncomeARS  decimal.Decimal `json:"total_income_ars"`
	TotalIncomeUSD  decimal.Decimal `json:"total_income_usd"`
	TotalExpenseARS decimal.Decimal `json:"total_expense_ars"`
	TotalExpenseUSD decimal.Decimal `json:"total_expense_usd"`
}

// GeneralCashSummary is the dashboard view over general-cash entries.
type GeneralCashSummary struct {
	TotalEntries     int             `json:"total_entries"`
	PendingApprovals int             `json:"pending_approvals"`
	TotalIncomeARS   decimal.Decimal `json:"total_income_ars"`
	TotalIncomeUSD   decimal.Decimal `json:"total_income_usd"`
	TotalExpenseARS  decimal.Decimal `json:"total_expense_ars"`
	TotalExpenseUSD  decimal.Decimal `json:"total_expense_usd"`
	NetBalanceARS    decimal.Decimal `json:"net_balance_ars"`
	NetBalanceUSD    decimal.Decimal `json:"net_balance_usd"`

	ByApplication map[string]GroupTotals `json:"by_application"`
}

// SummarizeGeneralCash folds the entry list into summary statistics,
// grouped by application.
func SummarizeGeneralCash(entries []model.GeneralCashEntry) GeneralCashSummary {
	s := GeneralCashSummary{ByApplication: make(map[string]GroupTotals)}

	for i := range entries {
		e := &entries[i]
		s.TotalEntries++
		if e.ApprovalStatus == model.ApprovalPending && e.RequiresApproval {
			s.PendingApprovals++
		}

		incARS, incUSD := deref(e.IncomeARS), deref(e.IncomeUSD)
		expARS, expUSD := deref(e.ExpenseARS), deref(e.ExpenseUSD)

		s.TotalIncomeARS = s.TotalIncomeARS.Add(incARS)
		s.TotalIncomeUSD = s.TotalIncomeUSD.Add(incUSD)
		s.TotalExpenseARS = s.TotalExpenseARS.Add(expARS)
		s.TotalExpenseUSD = s.TotalExpenseUSD.Add(expUSD)

		key := string(e.Application)
		if key == "" {
			key = UngroupedKey
		}
		g := s.ByApplication[key]
		g.Count++
		g.TotalIncomeARS = g.TotalIncomeARS.Add(incARS)
		g.TotalIncomeUSD = g.TotalIncomeUSD.Add(incUSD)
		g.TotalExpenseARS = g.TotalExpenseARS.Add(expARS)
		g.TotalExpenseUSD = g.TotalExpenseUSD.Add(expUSD)
		s.ByApplication[key] = g
	}

	s.NetBalanceARS = s.TotalIncomeARS.Sub(s.TotalExpenseARS)
	s.NetBalanceUSD = s.TotalIncomeUSD.Sub(s.TotalExpenseUSD)
	return s
}

// EventsCashSummary is the dashboard view over event budgets.
type EventsCashSummary struct {
	TotalEvents         int             `json:"total_events"`
	ActiveEvents        int             `json:"active_events"`
	CompletedEvents     int             `json:"completed_events"`
	EventsWithOverdraft int             `json:"events_with_overdraft"`
	TotalBudget         decimal.Decimal `json:"total_budget"`
	TotalReceived       decimal.Decimal `json:"total_received"`
	OutstandingBalance  decimal.Decimal `json:"outstanding_balance"`
	TotalIncomeARS      decimal.Decimal `json:"total_income_ars"`
	TotalIncomeUSD      decimal.Decimal `json:"total_income_usd"`
	TotalExpenseARS     decimal.Decimal `json:"total_expense_ars"`
	TotalExpenseUSD     decimal.Decimal `json:"total_expense_usd"`

	ByEventType map[string]GroupTotals `json:"by_event_type"`
}

// SummarizeEventsCash folds event documents into summary statistics,
// grouped by event type.
func SummarizeEventsCash(events []model.EventsCash) EventsCashSummary {
	s := EventsCashSummary{ByEventType: make(map[string]GroupTotals)}

	for i := range events {
		ev := &events[i]
		s.TotalEvents++
		switch ev.PaymentStatus.Status() {
		case model.PaymentCompleted:
			s.CompletedEvents++
		default:
			s.ActiveEvents++
		}
		if ev.HasOverdraft {
			s.EventsWithOverdraft++
		}

		s.TotalBudget = s.TotalBudget.Add(ev.PaymentStatus.TotalBudget)
		received := ev.PaymentStatus.AnticipoReceived.
			Add(ev.PaymentStatus.SegundoPago).
			Add(ev.PaymentStatus.TercerPago)
		s.TotalReceived = s.TotalReceived.Add(received)
		s.OutstandingBalance = s.OutstandingBalance.Add(ev.PaymentStatus.BalanceDue())

		s.TotalIncomeARS = s.TotalIncomeARS.Add(ev.TotalIncomeARS)
		s.TotalIncomeUSD = s.TotalIncomeUSD.Add(ev.TotalIncomeUSD)
		s.TotalExpenseARS = s.TotalExpenseARS.Add(ev.TotalExpenseARS)
		s.TotalExpenseUSD = s.TotalExpenseUSD.Add(ev.TotalExpenseUSD)

		key := string(ev.Header.EventType)
		if key == "" {
			key = UngroupedKey
		}
		g := s.ByEventType[key]
		g.Count++
		g.TotalIncomeARS = g.TotalIncomeARS.Add(ev.TotalIncomeARS)
		g.TotalIncomeUSD = g.TotalIncomeUSD.Add(ev.TotalIncomeUSD)
		g.TotalExpenseARS = g.TotalExpenseARS.Add(ev.TotalExpenseARS)
		g.TotalExpenseUSD = g.TotalExpenseUSD.Add(ev.TotalExpenseUSD)
		s.ByEventType[key] = g
	}
	return s
}

// ShopCashSummary is the dashboard view over shop sales.
type ShopCashSummary struct {
	TotalSales         int             `json:"total_sales"`
	TotalRevenueARS    decimal.Decimal `json:"total_revenue_ars"`
	TotalRevenueUSD    decimal.Decimal `json:"total_revenue_usd"`
	TotalCostARS       decimal.Decimal `json:"total_cost_ars"`
	TotalCostUSD       decimal.Decimal `json:"total_cost_usd"`
	TotalProfitARS     decimal.Decimal `json:"total_profit_ars"`
	TotalProfitUSD     decimal.Decimal `json:"total_profit_usd"`
	TotalCommissionARS decimal.Decimal `json:"total_commission_ars"`
	TotalCommissionUSD decimal.Decimal `json:"total_commission_usd"`

	ByCoordinator   map[string]GroupTotals `json:"by_coordinator"`
	ByPaymentMethod map[string]int         `json:"by_payment_method"`
}

// SummarizeShopCash folds sale entries into summary statistics, grouped by
// internal coordinator and payment method.
func SummarizeShopCash(entries []model.ShopCashEntry) ShopCashSummary {
	s := ShopCashSummary{
		ByCoordinator:   make(map[string]GroupTotals),
		ByPaymentMethod: make(map[string]int),
	}

	for i := range entries {
		e := &entries[i]
		s.TotalSales++

		soldARS, soldUSD := deref(e.SoldAmountARS), deref(e.SoldAmountUSD)
		s.TotalRevenueARS = s.TotalRevenueARS.Add(soldARS)
		s.TotalRevenueUSD = s.TotalRevenueUSD.Add(soldUSD)
		s.TotalCostARS = s.TotalCostARS.Add(deref(e.CostARS))
		s.TotalCostUSD = s.TotalCostUSD.Add(deref(e.CostUSD))
		s.TotalProfitARS = s.TotalProfitARS.Add(e.ProfitARS)
		s.TotalProfitUSD = s.TotalProfitUSD.Add(e.ProfitUSD)
		s.TotalCommissionARS = s.TotalCommissionARS.Add(e.CommissionARS)
		s.TotalCommissionUSD = s.TotalCommissionUSD.Add(e.CommissionUSD)

		key := e.InternalCoordinator
		if key == "" {
			key = UngroupedKey
		}
		g := s.ByCoordinator[key]
		g.Count++
		g.TotalIncomeARS = g.TotalIncomeARS.Add(soldARS)
		g.TotalIncomeUSD = g.TotalIncomeUSD.Add(soldUSD)
		s.ByCoordinator[key] = g

		s.ByPaymentMethod[string(e.PaymentMethod)]++
	}
	return s
}

// StudioSummary is the dashboard view over project movements and orders.
type StudioSummary struct {
	TotalMovements       int             `json:"total_movements"`
	PendingDisbursements int             `json:"pending_disbursements"`
	OverduePayments      int             `json:"overdue_payments"`
	TotalBalanceARS      decimal.Decimal `json:"total_balance_ars"`
	TotalBalanceUSD      decimal.Decimal `json:"total_balance_usd"`
	TotalIncomeARS       decimal.Decimal `json:"total_income_ars"`
	TotalIncomeUSD       decimal.Decimal `json:"total_income_usd"`
	TotalExpenseARS      decimal.Decimal `json:"total_expense_ars"`
	TotalExpenseUSD      decimal.Decimal `json:"total_expense_usd"`

	ByProject map[string]GroupTotals `json:"by_project"`
}

// SummarizeStudio folds movements and disbursement orders into summary
// statistics, grouped by project.
func SummarizeStudio(movements []model.StudioMovement, orders []model.DisbursementOrder) StudioSummary {
	s := StudioSummary{ByProject: make(map[string]GroupTotals)}

	for i := range movements {
		m := &movements[i]
		s.TotalMovements++

		incARS, incUSD := deref(m.IncomeARS), deref(m.IncomeUSD)
		expARS, expUSD := deref(m.ExpenseARS), deref(m.ExpenseUSD)

		s.TotalIncomeARS = s.TotalIncomeARS.Add(incARS)
		s.TotalIncomeUSD = s.TotalIncomeUSD.Add(incUSD)
		s.TotalExpenseARS = s.TotalExpenseARS.Add(expARS)
		s.TotalExpenseUSD = s.TotalExpenseUSD.Add(expUSD)

		key := m.ProjectName
		if key == "" {
			key = UngroupedKey
		}
		g := s.ByProject[key]
		g.Count++
		g.TotalIncomeARS = g.TotalIncomeARS.Add(incARS)
		g.TotalIncomeUSD = g.TotalIncomeUSD.Add(incUSD)
		g.TotalExpenseARS = g.TotalExpenseARS.Add(expARS)
		g.TotalExpenseUSD = g.TotalExpenseUSD.Add(expUSD)
		s.ByProject[key] = g
	}

	for i := range orders {
		o := &orders[i]
		if o.Status == model.DisbRequested {
			s.PendingDisbursements++
		}
		if o.Status == model.DisbOverdue {
			s.OverduePayments++
		}
	}

	s.TotalBalanceARS = s.TotalIncomeARS.Sub(s.TotalExpenseARS)
	s.TotalBalanceUSD = s.TotalIncomeUSD.Sub(s.TotalExpenseUSD)
	return s
}

// CashCountSummary is the dashboard view over arqueos.
type CashCountSummary struct {
	TotalCounts       int `json:"total_counts"`
	CompletedCounts   int `json:"completed_counts"`
	PendingCounts     int `json:"pending_counts"`
	DiscrepancyCounts int `json:"discrepancy_counts"`

	TotalDiscrepancyAmountUSD decimal.Decimal `json:"total_discrepancy_amount_usd"`
	TotalDiscrepancyAmountARS decimal.Decimal `json:"total_discrepancy_amount_ars"`

	// ReconciliationRate is the percentage of counts without discrepancies,
	// rounded to two decimals. 100 when there are no counts at all.
	ReconciliationRate decimal.Decimal `json:"reconciliation_rate"`

	ByDeco map[string]GroupTotals `json:"by_deco"`
}

// SummarizeCashCounts folds arqueos into summary statistics, grouped by
// project name.
func SummarizeCashCounts(counts []model.CashCount) CashCountSummary {
	s := CashCountSummary{
		ByDeco:             make(map[string]GroupTotals),
		ReconciliationRate: decimal.NewFromInt(100),
	}

	for i := range counts {
		c := &counts[i]
		s.TotalCounts++
		switch c.Status {
		case model.ReconCompleted:
			s.CompletedCounts++
		case model.ReconDiscrepancyFound:
			s.DiscrepancyCounts++
		default:
			s.PendingCounts++
		}

		for _, d := range c.Discrepancies {
			abs := d.Difference.Abs()
			switch d.Currency {
			case model.CurrencyUSD:
				s.TotalDiscrepancyAmountUSD = s.TotalDiscrepancyAmountUSD.Add(abs)
			case model.CurrencyARS:
				s.TotalDiscrepancyAmountARS = s.TotalDiscrepancyAmountARS.Add(abs)
			}
		}

		key := c.DecoName
		if key == "" {
			key = UngroupedKey
		}
		g := s.ByDeco[key]
		g.Count++
		g.TotalIncomeARS = g.TotalIncomeARS.Add(c.CashARSCounted)
		g.TotalIncomeUSD = g.TotalIncomeUSD.Add(c.CashUSDCounted)
		s.ByDeco[key] = g
	}

	if s.TotalCounts > 0 {
		clean := s.TotalCounts - s.DiscrepancyCounts
		s.ReconciliationRate = decimal.NewFromInt(int64(clean)).
			Div(decimal.NewFromInt(int64(s.TotalCounts))).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	return s
}
