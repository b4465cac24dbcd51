// Package ledger holds the pure computation core of the admin tool: running
// balance recomputation, cash-count reconciliation, the approval gate and the
// summary aggregators. Nothing in this package touches the database, the
// network or the clock — services feed it fully materialized records and
// persist whatever it returns.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/krikodium/hermanascaradonti/internal/model"
)

// Totals is the whole-ledger result of a recomputation.
type Totals struct {
	TotalIncomeARS  decimal.Decimal
	TotalExpenseARS decimal.Decimal
	TotalIncomeUSD  decimal.Decimal
	TotalExpenseUSD decimal.Decimal
	FinalBalanceARS decimal.Decimal
	FinalBalanceUSD decimal.Decimal
	HasOverdraft    bool
}

// Recalculate overwrites every entry's running balances and returns the
// ledger totals. Entries are processed in stored order — insertion order IS
// the running-balance chain; the nominal date on an entry never reorders it.
// Recomputation is whole-sequence: correct under append and mid-sequence
// edit alike, at O(n) per change. Idempotent.
func Recalculate(entries []model.EventsLedgerEntry) Totals {
	var t Totals
	runningARS := decimal.Zero
	runningUSD := decimal.Zero

	for i := range entries {
		e := &entries[i]

		t.TotalIncomeARS = t.TotalIncomeARS.Add(deref(e.IncomeARS))
		t.TotalExpenseARS = t.TotalExpenseARS.Add(deref(e.ExpenseARS))
		t.TotalIncomeUSD = t.TotalIncomeUSD.Add(deref(e.IncomeUSD))
		t.TotalExpenseUSD = t.TotalExpenseUSD.Add(deref(e.ExpenseUSD))

		runningARS = runningARS.Add(e.NetARS())
		runningUSD = runningUSD.Add(e.NetUSD())

		e.RunningBalanceARS = runningARS
		e.RunningBalanceUSD = runningUSD
	}

	t.FinalBalanceARS = runningARS
	t.FinalBalanceUSD = runningUSD
	t.HasOverdraft = runningARS.IsNegative() || runningUSD.IsNegative()
	return t
}

// ProjectTotals is the recomputation result for a project movement ledger.
type ProjectTotals struct {
	TotalIncomeUSD    decimal.Decimal
	TotalExpenseUSD   decimal.Decimal
	TotalIncomeARS    decimal.Decimal
	TotalExpenseARS   decimal.Decimal
	CurrentBalanceUSD decimal.Decimal
	CurrentBalanceARS decimal.Decimal
}

// RecalculateMovements overwrites each movement's running balances in stored
// order and returns the project totals. Same ordering policy as Recalculate.
func RecalculateMovements(movements []model.StudioMovement) ProjectTotals {
	var t ProjectTotals
	runningUSD := decimal.Zero
	runningARS := decimal.Zero

	for i := range movements {
		m := &movements[i]

		t.TotalIncomeUSD = t.TotalIncomeUSD.Add(deref(m.IncomeUSD))
		t.TotalExpenseUSD = t.TotalExpenseUSD.Add(deref(m.ExpenseUSD))
		t.TotalIncomeARS = t.TotalIncomeARS.Add(deref(m.IncomeARS))
		t.TotalExpenseARS = t.TotalExpenseARS.Add(deref(m.ExpenseARS))

		runningUSD = runningUSD.Add(m.NetUSD())
		runningARS = runningARS.Add(m.NetARS())

		m.RunningBalanceUSD = runningUSD
		m.RunningBalanceARS = runningARS
	}

	t.CurrentBalanceUSD = t.TotalIncomeUSD.Sub(t.TotalExpenseUSD)
	t.CurrentBalanceARS = t.TotalIncomeARS.Sub(t.TotalExpenseARS)
	return t
}

// deref treats an absent amount as zero.
func deref(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
