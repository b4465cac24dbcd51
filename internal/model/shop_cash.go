package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleStatus: "pending" | "confirmed" | "delivered" | "cancelled" | "returned"
type SaleStatus string

const (
	SalePending   SaleStatus = "pending"
	SaleConfirmed SaleStatus = "confirmed"
	SaleDelivered SaleStatus = "delivered"
	SaleCancelled SaleStatus = "cancelled"
	SaleReturned  SaleStatus = "returned"
)

// ClientBillingData is optional invoicing info attached to a sale.
type ClientBillingData struct {
	CUIT    *string `json:"cuit"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// BillingDataDoc is the nullable JSONB column wrapper.
type BillingDataDoc struct {
	Data *ClientBillingData
}

func (d BillingDataDoc) Value() (driver.Value, error) {
	if d.Data == nil {
		return nil, nil
	}
	return jsonbValue(d.Data)
}

func (d *BillingDataDoc) Scan(src interface{}) error {
	if src == nil {
		d.Data = nil
		return nil
	}
	d.Data = &ClientBillingData{}
	return jsonbScan(src, d.Data)
}

// DefaultCommissionRate is the coordinator commission applied to net sales.
var DefaultCommissionRate = decimal.NewFromFloat(0.02)

// ShopCashEntry records one shop sale with its derived margins.
// Net sale, commission and profit are recomputed by CalculateAmounts
// whenever the sold/cost inputs change.
type ShopCashEntry struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date                time.Time      `gorm:"type:date;not null;index"`
	Provider            string         `gorm:"not null"`
	Client              string         `gorm:"not null"`
	BillingData         BillingDataDoc `gorm:"type:jsonb"`
	InternalCoordinator string         `gorm:"not null;index"`

	Quantity        int     `gorm:"not null"`
	ItemDescription string  `gorm:"not null"`
	SKU             *string `gorm:"column:sku"`

	SoldAmountARS *decimal.Decimal `gorm:"type:decimal(14,2)"`
	SoldAmountUSD *decimal.Decimal `gorm:"type:decimal(14,2)"`
	PaymentMethod PaymentMethod    `gorm:"type:varchar(20);not null"`
	CostARS       *decimal.Decimal `gorm:"type:decimal(14,2)"`
	CostUSD       *decimal.Decimal `gorm:"type:decimal(14,2)"`

	NetSaleARS     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	NetSaleUSD     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CommissionRate decimal.Decimal `gorm:"type:decimal(5,4);not null;default:0.02"`
	CommissionARS  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CommissionUSD  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	ProfitARS      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	ProfitUSD      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	Status   SaleStatus `gorm:"type:varchar(15);not null;default:'pending'"`
	Comments *string

	CreatedBy string `gorm:"not null"`
	UpdatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ShopCashEntry) TableName() string { return "shop_cash_entries" }

// CalculateAmounts derives net sale, commission and profit from the raw
// sold/cost amounts. Net sale = sold − cost; commission = net × rate;
// profit = net − commission. Idempotent.
func (e *ShopCashEntry) CalculateAmounts() {
	e.NetSaleARS = orZero(e.SoldAmountARS).Sub(orZero(e.CostARS))
	e.NetSaleUSD = orZero(e.SoldAmountUSD).Sub(orZero(e.CostUSD))

	e.CommissionARS = e.NetSaleARS.Mul(e.CommissionRate).Round(2)
	e.CommissionUSD = e.NetSaleUSD.Mul(e.CommissionRate).Round(2)

	e.ProfitARS = e.NetSaleARS.Sub(e.CommissionARS)
	e.ProfitUSD = e.NetSaleUSD.Sub(e.CommissionUSD)
}
