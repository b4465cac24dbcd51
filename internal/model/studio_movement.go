package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DisbursementType classifies an outgoing payment request.
type DisbursementType string

const (
	DisbSupplierPayment DisbursementType = "supplier_payment"
	DisbMaterials       DisbursementType = "materials"
	DisbLabor           DisbursementType = "labor"
	DisbTransport       DisbursementType = "transport"
	DisbUtilities       DisbursementType = "utilities"
	DisbMaintenance     DisbursementType = "maintenance"
	DisbOther           DisbursementType = "other"
)

// DisbursementStatus: "requested" | "approved" | "processed" | "rejected" | "overdue"
type DisbursementStatus string

const (
	DisbRequested DisbursementStatus = "requested"
	DisbApproved  DisbursementStatus = "approved"
	DisbProcessed DisbursementStatus = "processed"
	DisbRejected  DisbursementStatus = "rejected"
	DisbOverdue   DisbursementStatus = "overdue"
)

// StudioMovement is one income/expense movement against a studio project.
// Movements are immutable once persisted except for their running-balance
// fields, which are overwritten on every whole-ledger recomputation.
type StudioMovement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date        time.Time `gorm:"type:date;not null"`
	ProjectName string    `gorm:"not null;index"`
	Description string    `gorm:"not null"`

	IncomeUSD  *decimal.Decimal `gorm:"type:decimal(14,2)"`
	ExpenseUSD *decimal.Decimal `gorm:"type:decimal(14,2)"`
	IncomeARS  *decimal.Decimal `gorm:"type:decimal(14,2)"`
	ExpenseARS *decimal.Decimal `gorm:"type:decimal(14,2)"`

	RunningBalanceUSD decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	RunningBalanceARS decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	Supplier        *string
	ReferenceNumber *string

	IsOverduePayment  bool `gorm:"not null;default:false"`
	RequiresAttention bool `gorm:"not null;default:false"`

	DisbursementOrderID *uuid.UUID `gorm:"type:uuid"`

	Notes *string

	CreatedBy string `gorm:"not null"`
	UpdatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (StudioMovement) TableName() string { return "studio_movements" }

// NetUSD returns income minus expense in USD.
func (m *StudioMovement) NetUSD() decimal.Decimal {
	return orZero(m.IncomeUSD).Sub(orZero(m.ExpenseUSD))
}

// NetARS returns income minus expense in ARS.
func (m *StudioMovement) NetARS() decimal.Decimal {
	return orZero(m.IncomeARS).Sub(orZero(m.ExpenseARS))
}

// DisbursementOrder is an outgoing payment request that must be approved
// before execution.
type DisbursementOrder struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectName      string           `gorm:"not null;index"`
	DisbursementType DisbursementType `gorm:"type:varchar(20);not null"`

	AmountUSD *decimal.Decimal `gorm:"type:decimal(14,2)"`
	AmountARS *decimal.Decimal `gorm:"type:decimal(14,2)"`

	Supplier    string `gorm:"not null"`
	Description string `gorm:"not null"`

	RequestedBy string     `gorm:"not null"`
	RequestedAt time.Time  `gorm:"not null"`
	DueDate     *time.Time `gorm:"type:date"`
	Priority    string     `gorm:"type:varchar(10);not null;default:'normal'"` // low | normal | high | urgent

	Status          DisbursementStatus `gorm:"type:varchar(15);not null;default:'requested'"`
	ApprovedBy      *string
	ApprovedAt      *time.Time
	ProcessedBy     *string
	ProcessedAt     *time.Time
	RejectionReason *string

	ApprovalNotes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DisbursementOrder) TableName() string { return "disbursement_orders" }

// IsOverdue reports whether the order passed its due date while still
// requested or approved.
func (o *DisbursementOrder) IsOverdue(now time.Time) bool {
	if o.DueDate == nil {
		return false
	}
	if o.Status != DisbRequested && o.Status != DisbApproved {
		return false
	}
	return o.DueDate.Before(now.Truncate(24 * time.Hour))
}
