package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// CashCountFilter is bound from the query string of GET /api/cash-counts.
type CashCountFilter struct {
	Deco   string `form:"deco"`   // project name; empty = all
	Status string `form:"status"` // reconciliation status; empty = all
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type CashCountListResponse struct {
	Data  []CashCountResponse `json:"data"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCashCountRequest struct {
	CountDate string `json:"count_date" validate:"required,datetime=2006-01-02"`
	DecoName  string `json:"deco_name"  validate:"required,min=2"`
	CountType string `json:"count_type" validate:"omitempty,oneof=daily weekly monthly special audit"`

	CashUSDCounted decimal.Decimal `json:"cash_usd_counted" validate:"min=0"`
	CashARSCounted decimal.Decimal `json:"cash_ars_counted" validate:"min=0"`

	ProfitCashUSD          decimal.Decimal `json:"profit_cash_usd"          validate:"min=0"`
	ProfitCashARS          decimal.Decimal `json:"profit_cash_ars"          validate:"min=0"`
	ProfitTransferUSD      decimal.Decimal `json:"profit_transfer_usd"      validate:"min=0"`
	ProfitTransferARS      decimal.Decimal `json:"profit_transfer_ars"      validate:"min=0"`
	CommissionsCashUSD     decimal.Decimal `json:"commissions_cash_usd"     validate:"min=0"`
	CommissionsCashARS     decimal.Decimal `json:"commissions_cash_ars"     validate:"min=0"`
	CommissionsTransferUSD decimal.Decimal `json:"commissions_transfer_usd" validate:"min=0"`
	CommissionsTransferARS decimal.Decimal `json:"commissions_transfer_ars" validate:"min=0"`
	HonorariaCashUSD       decimal.Decimal `json:"honoraria_cash_usd"       validate:"min=0"`
	HonorariaCashARS       decimal.Decimal `json:"honoraria_cash_ars"       validate:"min=0"`
	HonorariaTransferUSD   decimal.Decimal `json:"honoraria_transfer_usd"   validate:"min=0"`
	HonorariaTransferARS   decimal.Decimal `json:"honoraria_transfer_ars"   validate:"min=0"`

	Notes *string `json:"notes"`
}

type ResolveDiscrepancyRequest struct {
	ResolutionNotes string `json:"resolution_notes" validate:"required,min=5"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LedgerComparisonResponse struct {
	Currency      string          `json:"currency"`
	LedgerBalance decimal.Decimal `json:"ledger_balance"`
	CountedAmount decimal.Decimal `json:"counted_amount"`
	Difference    decimal.Decimal `json:"difference"`
	Matches       bool            `json:"matches"`
}

type DiscrepancyResponse struct {
	ID              string          `json:"id"`
	DiscrepancyType string          `json:"discrepancy_type"`
	Currency        string          `json:"currency"`
	ExpectedAmount  decimal.Decimal `json:"expected_amount"`
	ActualAmount    decimal.Decimal `json:"actual_amount"`
	Difference      decimal.Decimal `json:"difference"`
	Description     string          `json:"description"`
	Severity        string          `json:"severity"`

	Resolved        bool    `json:"resolved"`
	ResolutionNotes *string `json:"resolution_notes"`
	ResolvedBy      *string `json:"resolved_by"`
	ResolvedAt      *string `json:"resolved_at"`
}

type CashCountResponse struct {
	ID        string `json:"id"`
	CountDate string `json:"count_date"`
	DecoName  string `json:"deco_name"`
	CountType string `json:"count_type"`

	CashUSDCounted decimal.Decimal `json:"cash_usd_counted"`
	CashARSCounted decimal.Decimal `json:"cash_ars_counted"`

	TotalProfitUSD      decimal.Decimal `json:"total_profit_usd"`
	TotalProfitARS      decimal.Decimal `json:"total_profit_ars"`
	TotalCommissionsUSD decimal.Decimal `json:"total_commissions_usd"`
	TotalCommissionsARS decimal.Decimal `json:"total_commissions_ars"`
	TotalHonorariaUSD   decimal.Decimal `json:"total_honoraria_usd"`
	TotalHonorariaARS   decimal.Decimal `json:"total_honoraria_ars"`

	ExpectedBalanceUSD  decimal.Decimal           `json:"expected_balance_usd"`
	ExpectedBalanceARS  decimal.Decimal           `json:"expected_balance_ars"`
	LedgerComparisonUSD *LedgerComparisonResponse `json:"ledger_comparison_usd"`
	LedgerComparisonARS *LedgerComparisonResponse `json:"ledger_comparison_ars"`

	Status           string                `json:"status"`
	Discrepancies    []DiscrepancyResponse `json:"discrepancies"`
	HasDiscrepancies bool                  `json:"has_discrepancies"`

	Notes     *string `json:"notes"`
	CreatedBy string  `json:"created_by"`
	CreatedAt string  `json:"created_at"`
}
