package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// ShopCashFilter is bound from the query string of GET /api/shop-cash.
type ShopCashFilter struct {
	Coordinator string `form:"coordinator"` // empty = all
	Status      string `form:"status"`      // sale status; empty = all
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ShopCashListResponse struct {
	Data  []ShopCashResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type BillingDataRequest struct {
	CUIT    *string `json:"cuit"    validate:"omitempty,min=11,max=13"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

type CreateShopCashRequest struct {
	Date                string              `json:"date"                 validate:"required,datetime=2006-01-02"`
	Provider            string              `json:"provider"             validate:"required,min=2"`
	Client              string              `json:"client"               validate:"required,min=2"`
	BillingData         *BillingDataRequest `json:"billing_data"         validate:"omitempty"`
	InternalCoordinator string              `json:"internal_coordinator" validate:"required,min=2"`

	Quantity        int     `json:"quantity"         validate:"required,min=1"`
	ItemDescription string  `json:"item_description" validate:"required,min=2"`
	SKU             *string `json:"sku"`

	SoldAmountARS *decimal.Decimal `json:"sold_amount_ars" validate:"omitempty,min=0"`
	SoldAmountUSD *decimal.Decimal `json:"sold_amount_usd" validate:"omitempty,min=0"`
	PaymentMethod string           `json:"payment_method"  validate:"required,oneof=efectivo transferencia tarjeta"`
	CostARS       *decimal.Decimal `json:"cost_ars"        validate:"omitempty,min=0"`
	CostUSD       *decimal.Decimal `json:"cost_usd"        validate:"omitempty,min=0"`

	// CommissionRate overrides the default 2% when present.
	CommissionRate *decimal.Decimal `json:"commission_rate" validate:"omitempty,min=0,max=1"`

	Comments *string `json:"comments"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ShopCashResponse struct {
	ID                  string              `json:"id"`
	Date                string              `json:"date"`
	Provider            string              `json:"provider"`
	Client              string              `json:"client"`
	BillingData         *BillingDataRequest `json:"billing_data"`
	InternalCoordinator string              `json:"internal_coordinator"`

	Quantity        int     `json:"quantity"`
	ItemDescription string  `json:"item_description"`
	SKU             *string `json:"sku"`

	SoldAmountARS *decimal.Decimal `json:"sold_amount_ars"`
	SoldAmountUSD *decimal.Decimal `json:"sold_amount_usd"`
	PaymentMethod string           `json:"payment_method"`
	CostARS       *decimal.Decimal `json:"cost_ars"`
	CostUSD       *decimal.Decimal `json:"cost_usd"`

	NetSaleARS     decimal.Decimal `json:"net_sale_ars"`
	NetSaleUSD     decimal.Decimal `json:"net_sale_usd"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	CommissionARS  decimal.Decimal `json:"commission_ars"`
	CommissionUSD  decimal.Decimal `json:"commission_usd"`
	ProfitARS      decimal.Decimal `json:"profit_ars"`
	ProfitUSD      decimal.Decimal `json:"profit_usd"`

	Status    string  `json:"status"`
	Comments  *string `json:"comments"`
	CreatedBy string  `json:"created_by"`
	CreatedAt string  `json:"created_at"`
}
