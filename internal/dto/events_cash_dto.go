package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// EventsCashFilter is bound from the query string of GET /api/events-cash.
type EventsCashFilter struct {
	EventType string `form:"event_type"` // empty = all
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type EventsCashListResponse struct {
	Data  []EventsCashResponse `json:"data"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type EventHeaderRequest struct {
	EventDate         string           `json:"event_date"  validate:"required,datetime=2006-01-02"`
	Organizer         string           `json:"organizer"   validate:"required,min=2"`
	ClientName        string           `json:"client_name" validate:"required,min=2"`
	ClientRazonSocial *string          `json:"client_razon_social"`
	EventType         string           `json:"event_type"  validate:"required,oneof=birthday quinceanera wedding sports_event corporate other"`
	Province          string           `json:"province"    validate:"required"`
	Localidad         string           `json:"localidad"   validate:"required"`
	ViaticosArmado    *decimal.Decimal `json:"viaticos_armado" validate:"omitempty,min=0"`
	HCFees            *decimal.Decimal `json:"hc_fees"         validate:"omitempty,min=0"`
	TotalBudgetNoIVA  decimal.Decimal  `json:"total_budget_no_iva" validate:"required"`
	BudgetNumber      string           `json:"budget_number"       validate:"required"`
	PaymentTerms      string           `json:"payment_terms"       validate:"required"`
}

type PaymentStatusRequest struct {
	TotalBudget      decimal.Decimal `json:"total_budget"      validate:"required"`
	AnticipoReceived decimal.Decimal `json:"anticipo_received" validate:"min=0"`
	SegundoPago      decimal.Decimal `json:"segundo_pago"      validate:"min=0"`
	TercerPago       decimal.Decimal `json:"tercer_pago"       validate:"min=0"`
}

type LedgerEntryRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=efectivo transferencia tarjeta"`
	Date          string `json:"date"           validate:"required,datetime=2006-01-02"`
	Detail        string `json:"detail"         validate:"required,min=3"`

	IncomeARS  *decimal.Decimal `json:"income_ars"  validate:"omitempty,min=0"`
	ExpenseARS *decimal.Decimal `json:"expense_ars" validate:"omitempty,min=0"`
	IncomeUSD  *decimal.Decimal `json:"income_usd"  validate:"omitempty,min=0"`
	ExpenseUSD *decimal.Decimal `json:"expense_usd" validate:"omitempty,min=0"`
}

type CreateEventsCashRequest struct {
	Header        EventHeaderRequest   `json:"header"         validate:"required"`
	PaymentStatus PaymentStatusRequest `json:"payment_status" validate:"required"`
	// InitialEntry seeds the ledger; running balances are computed on create.
	InitialEntry *LedgerEntryRequest `json:"initial_entry" validate:"omitempty"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LedgerEntryResponse struct {
	ID            string `json:"id"`
	PaymentMethod string `json:"payment_method"`
	Date          string `json:"date"`
	Detail        string `json:"detail"`

	IncomeARS  *decimal.Decimal `json:"income_ars"`
	ExpenseARS *decimal.Decimal `json:"expense_ars"`
	IncomeUSD  *decimal.Decimal `json:"income_usd"`
	ExpenseUSD *decimal.Decimal `json:"expense_usd"`

	RunningBalanceARS decimal.Decimal `json:"running_balance_ars"`
	RunningBalanceUSD decimal.Decimal `json:"running_balance_usd"`
}

type PaymentStatusResponse struct {
	TotalBudget      decimal.Decimal `json:"total_budget"`
	AnticipoReceived decimal.Decimal `json:"anticipo_received"`
	SegundoPago      decimal.Decimal `json:"segundo_pago"`
	TercerPago       decimal.Decimal `json:"tercer_pago"`
	BalanceDue       decimal.Decimal `json:"balance_due"`
	Status           string          `json:"status"`
}

type EventsCashResponse struct {
	ID            string                `json:"id"`
	Header        EventHeaderRequest    `json:"header"`
	PaymentStatus PaymentStatusResponse `json:"payment_status"`
	LedgerEntries []LedgerEntryResponse `json:"ledger_entries"`

	TotalIncomeARS  decimal.Decimal `json:"total_income_ars"`
	TotalExpenseARS decimal.Decimal `json:"total_expense_ars"`
	TotalIncomeUSD  decimal.Decimal `json:"total_income_usd"`
	TotalExpenseUSD decimal.Decimal `json:"total_expense_usd"`
	FinalBalanceARS decimal.Decimal `json:"final_balance_ars"`
	FinalBalanceUSD decimal.Decimal `json:"final_balance_usd"`
	HasOverdraft    bool            `json:"has_overdraft"`

	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}
