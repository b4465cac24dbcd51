package ledger

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/krikodium/hermanascaradonti/internal/model"
)

// Per-currency thresholds. ARS tolerance is 100x looser than USD, matching
// its much larger typical magnitudes and lower per-unit precision needs.
var (
	toleranceUSD = decimal.NewFromFloat(0.01)
	toleranceARS = decimal.NewFromInt(1)

	// A discrepancy at or above these absolute amounts is HIGH severity.
	highSeverityUSD = decimal.NewFromInt(100)
	highSeverityARS = decimal.NewFromInt(10000)
)

// Tolerance returns the maximum absolute counted-vs-expected difference
// still considered a match for the currency.
func Tolerance(c model.Currency) decimal.Decimal {
	if c == model.CurrencyUSD {
		return toleranceUSD
	}
	return toleranceARS
}

// Amounts is a dual-currency amount pair.
type Amounts struct {
	USD decimal.Decimal
	ARS decimal.Decimal
}

// Comparison is the full result of reconciling a counted pair against an
// expected pair.
type Comparison struct {
	USD           model.LedgerComparison
	ARS           model.LedgerComparison
	Discrepancies []model.DiscrepancyRecord
	Status        model.ReconciliationStatus
}

// Compare reconciles counted cash against the expected ledger balance, per
// currency. Both currencies must match for COMPLETED; any failure yields
// DISCREPANCY_FOUND plus one discrepancy record per failing currency.
func Compare(counted, expected Amounts) Comparison {
	cmp := Comparison{
		USD: compareCurrency(model.CurrencyUSD, counted.USD, expected.USD),
		ARS: compareCurrency(model.CurrencyARS, counted.ARS, expected.ARS),
	}

	if !cmp.USD.Matches {
		cmp.Discrepancies = append(cmp.Discrepancies, newDiscrepancy(cmp.USD, highSeverityUSD))
	}
	if !cmp.ARS.Matches {
		cmp.Discrepancies = append(cmp.Discrepancies, newDiscrepancy(cmp.ARS, highSeverityARS))
	}

	if cmp.USD.Matches && cmp.ARS.Matches {
		cmp.Status = model.ReconCompleted
	} else {
		cmp.Status = model.ReconDiscrepancyFound
	}
	return cmp
}

func compareCurrency(c model.Currency, counted, expected decimal.Decimal) model.LedgerComparison {
	diff := counted.Sub(expected)
	return model.LedgerComparison{
		Currency:      c,
		LedgerBalance: expected,
		CountedAmount: counted,
		Difference:    diff,
		Matches:       diff.Abs().LessThan(Tolerance(c)),
	}
}

func newDiscrepancy(cmp model.LedgerComparison, highThreshold decimal.Decimal) model.DiscrepancyRecord {
	// Zero difference cannot fail the tolerance check; a non-positive
	// difference that somehow does is classified as shortage.
	dtype := model.DiscrepancyShortage
	if cmp.Difference.IsPositive() {
		dtype = model.DiscrepancyOverage
	}

	severity := model.SeverityMedium
	if cmp.Difference.Abs().GreaterThanOrEqual(highThreshold) {
		severity = model.SeverityHigh
	}

	return model.DiscrepancyRecord{
		ID:              uuid.New(),
		DiscrepancyType: dtype,
		Currency:        cmp.Currency,
		ExpectedAmount:  cmp.LedgerBalance,
		ActualAmount:    cmp.CountedAmount,
		Difference:      cmp.Difference,
		Description:     fmt.Sprintf("%s cash count discrepancy: %s", cmp.Currency, dtype),
		Severity:        severity,
	}
}

// ApplyComparison writes a Compare result into the cash count. Unresolved
// discrepancies from a previous run are replaced; resolved records are kept
// untouched, so re-running a reconciliation never duplicates findings.
func ApplyComparison(count *model.CashCount, counted, expected Amounts) Comparison {
	cmp := Compare(counted, expected)

	count.ExpectedBalanceUSD = expected.USD
	count.ExpectedBalanceARS = expected.ARS
	usd := cmp.USD
	ars := cmp.ARS
	count.LedgerComparisonUSD = model.ComparisonDoc{Comparison: &usd}
	count.LedgerComparisonARS = model.ComparisonDoc{Comparison: &ars}

	kept := count.Discrepancies[:0]
	for _, d := range count.Discrepancies {
		if d.Resolved {
			kept = append(kept, d)
		}
	}
	count.Discrepancies = append(kept, cmp.Discrepancies...)

	count.HasDiscrepancies = len(cmp.Discrepancies) > 0
	count.Status = cmp.Status
	return cmp
}
