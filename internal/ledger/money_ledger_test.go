package ledger

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krikodium/hermanascaradonti/internal/model"
)

func dec(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

func decp(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}

func entry(incARS, expARS, incUSD, expUSD *decimal.Decimal) model.EventsLedgerEntry {
	return model.EventsLedgerEntry{
		PaymentMethod: model.PaymentEfectivo,
		Date:          time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Detail:        "movimiento",
		IncomeARS:     incARS,
		ExpenseARS:    expARS,
		IncomeUSD:     incUSD,
		ExpenseUSD:    expUSD,
	}
}

func TestRecalculateRunningBalances(t *testing.T) {
	entries := []model.EventsLedgerEntry{
		entry(decp("1000"), nil, decp("100"), nil),
		entry(nil, decp("300"), nil, decp("40")),
		entry(decp("200"), decp("50"), nil, nil),
	}

	totals := Recalculate(entries)

	assert.True(t, entries[0].RunningBalanceARS.Equal(dec("1000")))
	assert.True(t, entries[1].RunningBalanceARS.Equal(dec("700")))
	assert.True(t, entries[2].RunningBalanceARS.Equal(dec("850")))

	assert.True(t, entries[0].RunningBalanceUSD.Equal(dec("100")))
	assert.True(t, entries[1].RunningBalanceUSD.Equal(dec("60")))
	assert.True(t, entries[2].RunningBalanceUSD.Equal(dec("60")))

	assert.True(t, totals.TotalIncomeARS.Equal(dec("1200")))
	assert.True(t, totals.TotalExpenseARS.Equal(dec("350")))
	assert.True(t, totals.FinalBalanceARS.Equal(dec("850")))
	assert.True(t, totals.FinalBalanceUSD.Equal(dec("60")))
	assert.False(t, totals.HasOverdraft)
}

func TestRecalculateInsertionOrderNotDateOrder(t *testing.T) {
	// An entry appended earlier with a LATER nominal date still precedes
	// later-appended entries in the running-balance chain.
	later := entry(decp("500"), nil, nil, nil)
	later.Date = time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	earlier := entry(nil, decp("200"), nil, nil)
	earlier.Date = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	entries := []model.EventsLedgerEntry{later, earlier}
	Recalculate(entries)

	assert.True(t, entries[0].RunningBalanceARS.Equal(dec("500")))
	assert.True(t, entries[1].RunningBalanceARS.Equal(dec("300")))
}

func TestRecalculateIdempotent(t *testing.T) {
	entries := []model.EventsLedgerEntry{
		entry(decp("1000.50"), decp("250.25"), decp("10"), nil),
		entry(nil, decp("99.99"), decp("5.05"), decp("1.01")),
	}

	first := Recalculate(entries)
	snapshotARS := []decimal.Decimal{entries[0].RunningBalanceARS, entries[1].RunningBalanceARS}

	second := Recalculate(entries)

	assert.True(t, first.FinalBalanceARS.Equal(second.FinalBalanceARS))
	assert.True(t, first.FinalBalanceUSD.Equal(second.FinalBalanceUSD))
	assert.True(t, entries[0].RunningBalanceARS.Equal(snapshotARS[0]))
	assert.True(t, entries[1].RunningBalanceARS.Equal(snapshotARS[1]))
}

func TestRecalculateOverdraft(t *testing.T) {
	entries := []model.EventsLedgerEntry{
		entry(decp("100"), nil, nil, nil),
		entry(nil, decp("250"), nil, nil),
	}

	totals := Recalculate(entries)

	assert.True(t, totals.FinalBalanceARS.Equal(dec("-150")))
	assert.True(t, totals.HasOverdraft)
}

func TestRecalculateEmpty(t *testing.T) {
	totals := Recalculate(nil)

	assert.True(t, totals.FinalBalanceARS.IsZero())
	assert.True(t, totals.FinalBalanceUSD.IsZero())
	assert.False(t, totals.HasOverdraft)
}

func TestRecalculateFinalBalancePermutationInvariant(t *testing.T) {
	// Permuting entries changes intermediate running balances but never
	// the final balance or the totals.
	entries := []model.EventsLedgerEntry{
		entry(decp("100"), nil, decp("7"), nil),
		entry(nil, decp("40"), nil, decp("3")),
		entry(decp("15"), decp("5"), decp("1"), nil),
		entry(nil, decp("60"), nil, nil),
	}

	base := Recalculate(append([]model.EventsLedgerEntry(nil), entries...))

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := append([]model.EventsLedgerEntry(nil), entries...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := Recalculate(shuffled)
		require.True(t, got.FinalBalanceARS.Equal(base.FinalBalanceARS))
		require.True(t, got.FinalBalanceUSD.Equal(base.FinalBalanceUSD))
		require.True(t, got.TotalIncomeARS.Equal(base.TotalIncomeARS))
		require.True(t, got.TotalExpenseARS.Equal(base.TotalExpenseARS))
	}
}

func TestRecalculateSumConsistency(t *testing.T) {
	entries := []model.EventsLedgerEntry{
		entry(decp("1200"), decp("150"), decp("30"), decp("12.50")),
		entry(decp("80"), nil, nil, decp("2.50")),
		entry(nil, decp("430"), decp("5"), nil),
	}

	totals := Recalculate(entries)

	sumARS := decimal.Zero
	sumUSD := decimal.Zero
	for i := range entries {
		sumARS = sumARS.Add(entries[i].NetARS())
		sumUSD = sumUSD.Add(entries[i].NetUSD())
	}

	assert.True(t, totals.FinalBalanceARS.Equal(sumARS))
	assert.True(t, totals.FinalBalanceUSD.Equal(sumUSD))
	assert.True(t, totals.FinalBalanceARS.Equal(totals.TotalIncomeARS.Sub(totals.TotalExpenseARS)))
	assert.True(t, totals.FinalBalanceUSD.Equal(totals.TotalIncomeUSD.Sub(totals.TotalExpenseUSD)))
}

func TestRecalculateMovements(t *testing.T) {
	movs := []model.StudioMovement{
		{ProjectName: "Alvear", IncomeUSD: decp("1000"), IncomeARS: decp("50000")},
		{ProjectName: "Alvear", ExpenseUSD: decp("400"), ExpenseARS: decp("20000")},
	}

	totals := RecalculateMovements(movs)

	assert.True(t, movs[0].RunningBalanceUSD.Equal(dec("1000")))
	assert.True(t, movs[1].RunningBalanceUSD.Equal(dec("600")))
	assert.True(t, totals.CurrentBalanceUSD.Equal(dec("600")))
	assert.True(t, totals.CurrentBalanceARS.Equal(dec("30000")))
	assert.True(t, totals.TotalExpenseARS.Equal(dec("20000")))
}
