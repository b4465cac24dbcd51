package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krikodium/hermanascaradonti/internal/model"
)

func TestCompareExactMatch(t *testing.T) {
	cmp := Compare(
		Amounts{USD: dec("100.00"), ARS: dec("50000")},
		Amounts{USD: dec("100.00"), ARS: dec("50000")},
	)

	assert.True(t, cmp.USD.Matches)
	assert.True(t, cmp.ARS.Matches)
	assert.Empty(t, cmp.Discrepancies)
	assert.Equal(t, model.ReconCompleted, cmp.Status)
}

func TestCompareWithinTolerance(t *testing.T) {
	// ARS tolerance is 1.00: a 0.50 difference still matches.
	cmp := Compare(
		Amounts{ARS: dec("1000.50")},
		Amounts{ARS: dec("1000.00")},
	)

	assert.True(t, cmp.ARS.Matches)
	assert.Equal(t, model.ReconCompleted, cmp.Status)
}

func TestCompareUSDOverageMedium(t *testing.T) {
	cmp := Compare(
		Amounts{USD: dec("100.02")},
		Amounts{USD: dec("100.00")},
	)

	assert.False(t, cmp.USD.Matches)
	assert.Equal(t, model.ReconDiscrepancyFound, cmp.Status)
	require.Len(t, cmp.Discrepancies, 1)

	d := cmp.Discrepancies[0]
	assert.Equal(t, model.DiscrepancyOverage, d.DiscrepancyType)
	assert.Equal(t, model.CurrencyUSD, d.Currency)
	assert.True(t, d.Difference.Equal(dec("0.02")))
	assert.Equal(t, model.SeverityMedium, d.Severity)
	assert.False(t, d.Resolved)
}

func TestCompareARSOverageHighAtThreshold(t *testing.T) {
	// A 10000 ARS difference is exactly at the high-severity threshold.
	cmp := Compare(
		Amounts{ARS: dec("50000")},
		Amounts{ARS: dec("40000")},
	)

	require.Len(t, cmp.Discrepancies, 1)
	d := cmp.Discrepancies[0]
	assert.Equal(t, model.DiscrepancyOverage, d.DiscrepancyType)
	assert.True(t, d.Difference.Equal(dec("10000")))
	assert.Equal(t, model.SeverityHigh, d.Severity)
}

func TestCompareShortage(t *testing.T) {
	cmp := Compare(
		Amounts{USD: dec("80.00")},
		Amounts{USD: dec("99.50")},
	)

	require.Len(t, cmp.Discrepancies, 1)
	d := cmp.Discrepancies[0]
	assert.Equal(t, model.DiscrepancyShortage, d.DiscrepancyType)
	assert.True(t, d.Difference.Equal(dec("-19.50")))
	assert.Equal(t, model.SeverityMedium, d.Severity)
}

func TestCompareBothCurrenciesFail(t *testing.T) {
	cmp := Compare(
		Amounts{USD: dec("350.00"), ARS: dec("12000")},
		Amounts{USD: dec("200.00"), ARS: dec("30000")},
	)

	require.Len(t, cmp.Discrepancies, 2)
	assert.Equal(t, model.CurrencyUSD, cmp.Discrepancies[0].Currency)
	assert.Equal(t, model.SeverityHigh, cmp.Discrepancies[0].Severity)
	assert.Equal(t, model.CurrencyARS, cmp.Discrepancies[1].Currency)
	assert.Equal(t, model.SeverityHigh, cmp.Discrepancies[1].Severity)
}

func TestToleranceByCurrency(t *testing.T) {
	assert.True(t, Tolerance(model.CurrencyUSD).Equal(dec("0.01")))
	assert.True(t, Tolerance(model.CurrencyARS).Equal(dec("1")))
}

func TestApplyComparisonWritesSnapshot(t *testing.T) {
	count := &model.CashCount{
		CashUSDCounted: dec("100.02"),
		CashARSCounted: dec("5000"),
	}

	cmp := ApplyComparison(count,
		Amounts{USD: count.CashUSDCounted, ARS: count.CashARSCounted},
		Amounts{USD: dec("100.00"), ARS: dec("5000")},
	)

	assert.Equal(t, model.ReconDiscrepancyFound, count.Status)
	assert.True(t, count.HasDiscrepancies)
	assert.True(t, count.ExpectedBalanceUSD.Equal(dec("100.00")))
	require.NotNil(t, count.LedgerComparisonUSD.Comparison)
	assert.False(t, count.LedgerComparisonUSD.Comparison.Matches)
	require.NotNil(t, count.LedgerComparisonARS.Comparison)
	assert.True(t, count.LedgerComparisonARS.Comparison.Matches)
	assert.Len(t, count.Discrepancies, len(cmp.Discrepancies))
}

func TestApplyComparisonRerunDoesNotDuplicate(t *testing.T) {
	count := &model.CashCount{}
	counted := Amounts{USD: dec("100.02")}
	expected := Amounts{USD: dec("100.00")}

	ApplyComparison(count, counted, expected)
	require.Len(t, count.Discrepancies, 1)

	ApplyComparison(count, counted, expected)
	assert.Len(t, count.Discrepancies, 1)
}

func TestApplyComparisonKeepsResolvedRecords(t *testing.T) {
	count := &model.CashCount{}
	ApplyComparison(count, Amounts{USD: dec("120")}, Amounts{USD: dec("100")})
	require.Len(t, count.Discrepancies, 1)

	notes := "adjusted against petty cash"
	count.Discrepancies[0].Resolved = true
	count.Discrepancies[0].ResolutionNotes = &notes

	// Re-running with matching amounts keeps the resolved record and marks
	// the count clean.
	ApplyComparison(count, Amounts{USD: dec("100")}, Amounts{USD: dec("100")})

	require.Len(t, count.Discrepancies, 1)
	assert.True(t, count.Discrepancies[0].Resolved)
	assert.False(t, count.HasDiscrepancies)
	assert.Equal(t, model.ReconCompleted, count.Status)
}
