package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReconciliationStatus is the lifecycle state of a cash count.
type ReconciliationStatus string

const (
	ReconPending          ReconciliationStatus = "pending"
	ReconInProgress       ReconciliationStatus = "in_progress"
	ReconCompleted        ReconciliationStatus = "completed"
	ReconDiscrepancyFound ReconciliationStatus = "discrepancy_found"
	ReconRequiresReview   ReconciliationStatus = "requires_review"
)

// DiscrepancyType classifies a counted-vs-expected mismatch.
type DiscrepancyType string

const (
	DiscrepancyOverage  DiscrepancyType = "overage"  // more cash than expected
	DiscrepancyShortage DiscrepancyType = "shortage" // less cash than expected
)

// DiscrepancySeverity: "medium" | "high"
type DiscrepancySeverity string

const (
	SeverityMedium DiscrepancySeverity = "medium"
	SeverityHigh   DiscrepancySeverity = "high"
)

// CashCountType: cadence or reason for the count.
type CashCountType string

const (
	CountDaily   CashCountType = "daily"
	CountWeekly  CashCountType = "weekly"
	CountMonthly CashCountType = "monthly"
	CountSpecial CashCountType = "special"
	CountAudit   CashCountType = "audit"
)

// DiscrepancyRecord is one typed mismatch for one currency. Records are
// appended at reconciliation time and never removed once resolved.
type DiscrepancyRecord struct {
	ID              uuid.UUID           `json:"id"`
	DiscrepancyType DiscrepancyType     `json:"discrepancy_type"`
	Currency        Currency            `json:"currency"`
	ExpectedAmount  decimal.Decimal     `json:"expected_amount"`
	ActualAmount    decimal.Decimal     `json:"actual_amount"`
	Difference      decimal.Decimal     `json:"difference"`
	Description     string              `json:"description"`
	Severity        DiscrepancySeverity `json:"severity"`

	Resolved        bool       `json:"resolved"`
	ResolutionNotes *string    `json:"resolution_notes"`
	ResolvedBy      *string    `json:"resolved_by"`
	ResolvedAt      *time.Time `json:"resolved_at"`
}

// DiscrepancyRecords is the JSONB-backed list.
type DiscrepancyRecords []DiscrepancyRecord

func (d DiscrepancyRecords) Value() (driver.Value, error) { return jsonbValue(d) }
func (d *DiscrepancyRecords) Scan(src interface{}) error  { return jsonbScan(src, d) }

// LedgerComparison is a per-currency snapshot fixed at reconciliation time.
type LedgerComparison struct {
	Currency      Currency        `json:"currency"`
	LedgerBalance decimal.Decimal `json:"ledger_balance"`
	CountedAmount decimal.Decimal `json:"counted_amount"`
	Difference    decimal.Decimal `json:"difference"`
	Matches       bool            `json:"matches"`
}

// ComparisonDoc is the nullable JSONB column wrapper.
type ComparisonDoc struct {
	Comparison *LedgerComparison
}

func (d ComparisonDoc) Value() (driver.Value, error) {
	if d.Comparison == nil {
		return nil, nil
	}
	return jsonbValue(d.Comparison)
}

func (d *ComparisonDoc) Scan(src interface{}) error {
	if src == nil {
		d.Comparison = nil
		return nil
	}
	d.Comparison = &LedgerComparison{}
	return jsonbScan(src, d.Comparison)
}

// CashCount (arqueo) is a point-in-time count of physical/transfer cash for
// one project, reconciled against the project's movement ledger.
type CashCount struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CountDate time.Time     `gorm:"type:date;not null;index"`
	DecoName  string        `gorm:"not null;index"`
	CountType CashCountType `gorm:"type:varchar(10);not null;default:'daily'"`

	CashUSDCounted decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CashARSCounted decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	// Category breakdown, split by payment channel and currency
	ProfitCashUSD          decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	ProfitCashARS          decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	ProfitTransferUSD      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	ProfitTransferARS      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CommissionsCashUSD     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CommissionsCashARS     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CommissionsTransferUSD decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CommissionsTransferARS decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	HonorariaCashUSD       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	HonorariaCashARS       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	HonorariaTransferUSD   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	HonorariaTransferARS   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	// Derived category totals
	TotalProfitUSD      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalProfitARS      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalCommissionsUSD decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalCommissionsARS decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalHonorariaUSD   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalHonorariaARS   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	// Reconciliation snapshot
	ExpectedBalanceUSD  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	ExpectedBalanceARS  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	LedgerComparisonUSD ComparisonDoc   `gorm:"type:jsonb"`
	LedgerComparisonARS ComparisonDoc   `gorm:"type:jsonb"`

	Status           ReconciliationStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	Discrepancies    DiscrepancyRecords   `gorm:"type:jsonb;not null;default:'[]'"`
	HasDiscrepancies bool                 `gorm:"not null;default:false"`

	ReviewedBy *string
	ReviewedAt *time.Time
	ApprovedBy *string
	ApprovedAt *time.Time

	Notes *string

	CreatedBy string `gorm:"not null"`
	UpdatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CashCount) TableName() string { return "cash_counts" }

// CalculateTotals derives the per-category totals from the channel split.
func (c *CashCount) CalculateTotals() {
	c.TotalProfitUSD = c.ProfitCashUSD.Add(c.ProfitTransferUSD)
	c.TotalProfitARS = c.ProfitCashARS.Add(c.ProfitTransferARS)

	c.TotalCommissionsUSD = c.CommissionsCashUSD.Add(c.CommissionsTransferUSD)
	c.TotalCommissionsARS = c.CommissionsCashARS.Add(c.CommissionsTransferARS)

	c.TotalHonorariaUSD = c.HonorariaCashUSD.Add(c.HonorariaTransferUSD)
	c.TotalHonorariaARS = c.HonorariaCashARS.Add(c.HonorariaTransferARS)
}
