package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// ProjectFilter is bound from the query string of GET /api/projects.
type ProjectFilter struct {
	Status          string `form:"status"` // empty = all
	Type            string `form:"type"`   // empty = all
	IncludeArchived bool   `form:"include_archived,default=false"`
	Page            int    `form:"page,default=1"   validate:"min=1"`
	Limit           int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ProjectListResponse struct {
	Data  []ProjectResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProjectRequest struct {
	Name        string  `json:"name"         validate:"required,min=2,max=150"`
	Description *string `json:"description"`
	ProjectType string  `json:"project_type" validate:"omitempty,oneof=deco event mixed"`

	StartDate *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date"   validate:"omitempty,datetime=2006-01-02"`

	BudgetUSD *decimal.Decimal `json:"budget_usd"`
	BudgetARS *decimal.Decimal `json:"budget_ars"`

	ClientName *string `json:"client_name"`
	Location   *string `json:"location"`
	Notes      *string `json:"notes"`
}

type UpdateProjectRequest struct {
	Description *string          `json:"description"`
	ProjectType *string          `json:"project_type" validate:"omitempty,oneof=deco event mixed"`
	Status      *string          `json:"status"       validate:"omitempty,oneof=active completed on_hold cancelled"`
	StartDate   *string          `json:"start_date"   validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string          `json:"end_date"     validate:"omitempty,datetime=2006-01-02"`
	BudgetUSD   *decimal.Decimal `json:"budget_usd"`
	BudgetARS   *decimal.Decimal `json:"budget_ars"`
	ClientName  *string          `json:"client_name"`
	Location    *string          `json:"location"`
	Notes       *string          `json:"notes"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProjectResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ProjectType string  `json:"project_type"`
	Status      string  `json:"status"`

	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`

	BudgetUSD *decimal.Decimal `json:"budget_usd"`
	BudgetARS *decimal.Decimal `json:"budget_ars"`

	ClientName *string `json:"client_name"`
	Location   *string `json:"location"`

	CurrentBalanceUSD decimal.Decimal `json:"current_balance_usd"`
	CurrentBalanceARS decimal.Decimal `json:"current_balance_ars"`
	TotalIncomeUSD    decimal.Decimal `json:"total_income_usd"`
	TotalExpenseUSD   decimal.Decimal `json:"total_expense_usd"`
	TotalIncomeARS    decimal.Decimal `json:"total_income_ars"`
	TotalExpenseARS   decimal.Decimal `json:"total_expense_ars"`

	MovementsCount          int  `json:"movements_count"`
	DisbursementOrdersCount int  `json:"disbursement_orders_count"`
	IsOverBudget            bool `json:"is_over_budget"`
	IsArchived              bool `json:"is_archived"`

	Notes     *string `json:"notes"`
	CreatedBy string  `json:"created_by"`
	CreatedAt string  `json:"created_at"`
}
