package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// StudioMovementFilter is bound from the query string of GET /api/deco-movements.
type StudioMovementFilter struct {
	Project string `form:"project"` // empty = all
	Page    int    `form:"page,default=1"   validate:"min=1"`
	Limit   int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type StudioMovementListResponse struct {
	Data  []StudioMovementResponse `json:"data"`
	Total int64                    `json:"total"`
	Page  int                      `json:"page"`
	Limit int                      `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateStudioMovementRequest struct {
	Date        string `json:"date"         validate:"required,datetime=2006-01-02"`
	ProjectName string `json:"project_name" validate:"required,min=2"`
	Description string `json:"description"  validate:"required,min=3"`

	IncomeUSD  *decimal.Decimal `json:"income_usd"  validate:"omitempty,min=0"`
	ExpenseUSD *decimal.Decimal `json:"expense_usd" validate:"omitempty,min=0"`
	IncomeARS  *decimal.Decimal `json:"income_ars"  validate:"omitempty,min=0"`
	ExpenseARS *decimal.Decimal `json:"expense_ars" validate:"omitempty,min=0"`

	Supplier        *string `json:"supplier"`
	ReferenceNumber *string `json:"reference_number"`
	Notes           *string `json:"notes"`
}

type CreateDisbursementOrderRequest struct {
	ProjectName      string `json:"project_name"      validate:"required,min=2"`
	DisbursementType string `json:"disbursement_type" validate:"required,oneof=supplier_payment materials labor transport utilities maintenance other"`

	AmountUSD *decimal.Decimal `json:"amount_usd" validate:"omitempty,min=0"`
	AmountARS *decimal.Decimal `json:"amount_ars" validate:"omitempty,min=0"`

	Supplier    string  `json:"supplier"    validate:"required,min=2"`
	Description string  `json:"description" validate:"required,min=3"`
	DueDate     *string `json:"due_date"    validate:"omitempty,datetime=2006-01-02"`
	Priority    string  `json:"priority"    validate:"omitempty,oneof=low normal high urgent"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type StudioMovementResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	ProjectName string `json:"project_name"`
	Description string `json:"description"`

	IncomeUSD  *decimal.Decimal `json:"income_usd"`
	ExpenseUSD *decimal.Decimal `json:"expense_usd"`
	IncomeARS  *decimal.Decimal `json:"income_ars"`
	ExpenseARS *decimal.Decimal `json:"expense_ars"`

	RunningBalanceUSD decimal.Decimal `json:"running_balance_usd"`
	RunningBalanceARS decimal.Decimal `json:"running_balance_ars"`

	Supplier        *string `json:"supplier"`
	ReferenceNumber *string `json:"reference_number"`

	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}

type DisbursementOrderResponse struct {
	ID               string `json:"id"`
	ProjectName      string `json:"project_name"`
	DisbursementType string `json:"disbursement_type"`

	AmountUSD *decimal.Decimal `json:"amount_usd"`
	AmountARS *decimal.Decimal `json:"amount_ars"`

	Supplier    string  `json:"supplier"`
	Description string  `json:"description"`
	RequestedBy string  `json:"requested_by"`
	RequestedAt string  `json:"requested_at"`
	DueDate     *string `json:"due_date"`
	Priority    string  `json:"priority"`

	Status          string  `json:"status"`
	ApprovedBy      *string `json:"approved_by"`
	ApprovedAt      *string `json:"approved_at"`
	ProcessedBy     *string `json:"processed_by"`
	ProcessedAt     *string `json:"processed_at"`
	RejectionReason *string `json:"rejection_reason"`
}
