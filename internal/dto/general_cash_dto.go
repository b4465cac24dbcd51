package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// GeneralCashFilter is bound from the query string of GET /api/general-cash.
type GeneralCashFilter struct {
	DateFrom    string `form:"date_from"`   // YYYY-MM-DD
	DateTo      string `form:"date_to"`     // YYYY-MM-DD
	Application string `form:"application"` // empty = all
	Status      string `form:"status"`      // approval status; empty = all
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type GeneralCashListResponse struct {
	Data  []GeneralCashResponse `json:"data"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateGeneralCashRequest struct {
	Date        string `json:"date"        validate:"required,datetime=2006-01-02"`
	Description string `json:"description" validate:"required,min=3"`
	Application string `json:"application" validate:"required,oneof=aportes_socias sueldos_admin venta_usd gastos_generales viaticos honorarios impuestos otros"`
	Provider    string `json:"provider"    validate:"required,min=2"`

	IncomeARS  *decimal.Decimal `json:"income_ars"  validate:"omitempty,min=0"`
	IncomeUSD  *decimal.Decimal `json:"income_usd"  validate:"omitempty,min=0"`
	ExpenseARS *decimal.Decimal `json:"expense_ars" validate:"omitempty,min=0"`
	ExpenseUSD *decimal.Decimal `json:"expense_usd" validate:"omitempty,min=0"`

	Notes *string `json:"notes"`
}

type UpdateGeneralCashRequest struct {
	Description *string          `json:"description" validate:"omitempty,min=3"`
	Provider    *string          `json:"provider"    validate:"omitempty,min=2"`
	IncomeARS   *decimal.Decimal `json:"income_ars"  validate:"omitempty,min=0"`
	IncomeUSD   *decimal.Decimal `json:"income_usd"  validate:"omitempty,min=0"`
	ExpenseARS  *decimal.Decimal `json:"expense_ars" validate:"omitempty,min=0"`
	ExpenseUSD  *decimal.Decimal `json:"expense_usd" validate:"omitempty,min=0"`
	Notes       *string          `json:"notes"`
}

// ApproveQuery is bound from POST /api/general-cash/{id}/approve.
type ApproveQuery struct {
	ApprovalType string  `form:"approval_type" validate:"required,oneof=fede sisters reject"`
	Reason       *string `form:"reason"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PaymentOrderResponse struct {
	ID              string           `json:"id"`
	OrderType       string           `json:"order_type"`
	AmountARS       *decimal.Decimal `json:"amount_ars"`
	AmountUSD       *decimal.Decimal `json:"amount_usd"`
	Description     string           `json:"description"`
	RequestedBy     string           `json:"requested_by"`
	RequestedAt     string           `json:"requested_at"`
	Status          string           `json:"status"`
	ApprovedBy      *string          `json:"approved_by"`
	ApprovedAt      *string          `json:"approved_at"`
	RejectionReason *string          `json:"rejection_reason"`
}

type GeneralCashResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Application string `json:"application"`
	Provider    string `json:"provider"`

	IncomeARS  *decimal.Decimal `json:"income_ars"`
	IncomeUSD  *decimal.Decimal `json:"income_usd"`
	ExpenseARS *decimal.Decimal `json:"expense_ars"`
	ExpenseUSD *decimal.Decimal `json:"expense_usd"`

	RequiresApproval bool                  `json:"requires_approval"`
	ApprovalStatus   string                `json:"approval_status"`
	PaymentOrder     *PaymentOrderResponse `json:"payment_order"`

	Notes     *string `json:"notes"`
	CreatedBy string  `json:"created_by"`
	CreatedAt string  `json:"created_at"`
}
