package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GeneralCashApplication categorizes org-level cash entries.
type GeneralCashApplication string

const (
	AppAportesSocias GeneralCashApplication = "aportes_socias"
	AppSueldosAdmin  GeneralCashApplication = "sueldos_admin"
	AppVentaUSD      GeneralCashApplication = "venta_usd"
	AppGastosGral    GeneralCashApplication = "gastos_generales"
	AppViaticos      GeneralCashApplication = "viaticos"
	AppHonorarios    GeneralCashApplication = "honorarios"
	AppImpuestos     GeneralCashApplication = "impuestos"
	AppOtros         GeneralCashApplication = "otros"
)

// PaymentOrderType: "payment_order" (outflow) | "receipt_order" (inflow)
type PaymentOrderType string

const (
	OrderPayment PaymentOrderType = "payment_order"
	OrderReceipt PaymentOrderType = "receipt_order"
)

// PaymentOrder is the approval artifact attached to a gated entry.
// Its status and approver metadata mirror the owning entry's.
type PaymentOrder struct {
	ID              uuid.UUID        `json:"id"`
	EntryID         uuid.UUID        `json:"entry_id"`
	OrderType       PaymentOrderType `json:"order_type"`
	AmountARS       *decimal.Decimal `json:"amount_ars"`
	AmountUSD       *decimal.Decimal `json:"amount_usd"`
	Description     string           `json:"description"`
	RequestedBy     string           `json:"requested_by"`
	RequestedAt     time.Time        `json:"requested_at"`
	Status          ApprovalStatus   `json:"status"`
	ApprovedBy      *string          `json:"approved_by"`
	ApprovedAt      *time.Time       `json:"approved_at"`
	RejectionReason *string          `json:"rejection_reason"`
}

// PaymentOrderDoc is the nullable JSONB column wrapper.
type PaymentOrderDoc struct {
	Order *PaymentOrder
}

func (d PaymentOrderDoc) Value() (driver.Value, error) {
	if d.Order == nil {
		return nil, nil
	}
	return jsonbValue(d.Order)
}

func (d *PaymentOrderDoc) Scan(src interface{}) error {
	if src == nil {
		d.Order = nil
		return nil
	}
	d.Order = &PaymentOrder{}
	return jsonbScan(src, d.Order)
}

// GeneralCashEntry is one org-level cash movement, optionally gated by the
// approval workflow. Income and expense per currency are independent; the
// net amount is always derived, never stored.
type GeneralCashEntry struct {
	ID          uuid.UUID              `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date        time.Time              `gorm:"type:date;not null;index"`
	Description string                 `gorm:"not null"`
	Application GeneralCashApplication `gorm:"type:varchar(30);not null;index"`
	Provider    string                 `gorm:"not null"`

	IncomeARS  *decimal.Decimal `gorm:"type:decimal(14,2)"`
	IncomeUSD  *decimal.Decimal `gorm:"type:decimal(14,2)"`
	ExpenseARS *decimal.Decimal `gorm:"type:decimal(14,2)"`
	ExpenseUSD *decimal.Decimal `gorm:"type:decimal(14,2)"`

	RequiresApproval     bool            `gorm:"not null;default:true"`
	ApprovalThresholdARS decimal.Decimal `gorm:"type:decimal(14,2);not null;default:50000"`
	ApprovalThresholdUSD decimal.Decimal `gorm:"type:decimal(14,2);not null;default:500"`
	ApprovalStatus       ApprovalStatus  `gorm:"type:varchar(25);not null;default:'pending'"`
	PaymentOrder         PaymentOrderDoc `gorm:"type:jsonb"`

	Notes *string

	CreatedBy string `gorm:"not null"`
	UpdatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (GeneralCashEntry) TableName() string { return "general_cash_entries" }

// NetARS returns income minus expense in ARS, nil amounts as zero.
func (e *GeneralCashEntry) NetARS() decimal.Decimal {
	return orZero(e.IncomeARS).Sub(orZero(e.ExpenseARS))
}

// NetUSD returns income minus expense in USD, nil amounts as zero.
func (e *GeneralCashEntry) NetUSD() decimal.Decimal {
	return orZero(e.IncomeUSD).Sub(orZero(e.ExpenseUSD))
}

// orZero dereferences an optional amount, treating nil as zero.
func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
