package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType classifies an event budget.
type EventType string

const (
	EventBirthday  EventType = "birthday"
	EventQuince    EventType = "quinceanera"
	EventWedding   EventType = "wedding"
	EventSports    EventType = "sports_event"
	EventCorporate EventType = "corporate"
	EventOther     EventType = "other"
)

// PaymentStatus of an event's client payments.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPartial   PaymentStatus = "partial"
	PaymentCompleted PaymentStatus = "completed"
	PaymentOverdue   PaymentStatus = "overdue"
)

// EventHeader holds the static event information.
type EventHeader struct {
	EventDate         time.Time        `json:"event_date"`
	Organizer         string           `json:"organizer"`
	ClientName        string           `json:"client_name"`
	ClientRazonSocial *string          `json:"client_razon_social"`
	EventType         EventType        `json:"event_type"`
	Province          string           `json:"province"`
	Localidad         string           `json:"localidad"`
	ViaticosArmado    *decimal.Decimal `json:"viaticos_armado"`
	HCFees            *decimal.Decimal `json:"hc_fees"`
	TotalBudgetNoIVA  decimal.Decimal  `json:"total_budget_no_iva"`
	BudgetNumber      string           `json:"budget_number"`
	PaymentTerms      string           `json:"payment_terms"`
}

func (h EventHeader) Value() (driver.Value, error) { return jsonbValue(h) }
func (h *EventHeader) Scan(src interface{}) error  { return jsonbScan(src, h) }

// PaymentStatusPanel tracks the client's installments against the budget.
type PaymentStatusPanel struct {
	TotalBudget      decimal.Decimal `json:"total_budget"`
	AnticipoReceived decimal.Decimal `json:"anticipo_received"`
	SegundoPago      decimal.Decimal `json:"segundo_pago"`
	TercerPago       decimal.Decimal `json:"tercer_pago"`
}

func (p PaymentStatusPanel) Value() (driver.Value, error) { return jsonbValue(p) }
func (p *PaymentStatusPanel) Scan(src interface{}) error  { return jsonbScan(src, p) }

// BalanceDue is the outstanding amount after all received installments.
func (p PaymentStatusPanel) BalanceDue() decimal.Decimal {
	received := p.AnticipoReceived.Add(p.SegundoPago).Add(p.TercerPago)
	return p.TotalBudget.Sub(received)
}

// Status derives the payment state from the installments.
func (p PaymentStatusPanel) Status() PaymentStatus {
	if p.BalanceDue().LessThanOrEqual(decimal.Zero) {
		return PaymentCompleted
	}
	if p.AnticipoReceived.IsPositive() || p.SegundoPago.IsPositive() || p.TercerPago.IsPositive() {
		return PaymentPartial
	}
	return PaymentPending
}

// EventsLedgerEntry is one movement in an event's ledger. Entries are
// append-only: insertion order is the running-balance chain, and the nominal
// date is descriptive metadata only — never an ordering key.
type EventsLedgerEntry struct {
	ID            uuid.UUID     `json:"id"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Date          time.Time     `json:"date"`
	Detail        string        `json:"detail"`

	IncomeARS  *decimal.Decimal `json:"income_ars"`
	ExpenseARS *decimal.Decimal `json:"expense_ars"`
	IncomeUSD  *decimal.Decimal `json:"income_usd"`
	ExpenseUSD *decimal.Decimal `json:"expense_usd"`

	// Running balances, overwritten on every whole-sequence recomputation
	RunningBalanceARS decimal.Decimal `json:"running_balance_ars"`
	RunningBalanceUSD decimal.Decimal `json:"running_balance_usd"`

	RequiresApproval bool           `json:"requires_approval"`
	ApprovalStatus   ApprovalStatus `json:"approval_status"`
	ApprovedBy       *string        `json:"approved_by"`
	ApprovedAt       *time.Time     `json:"approved_at"`
}

// NetARS returns income minus expense in ARS.
func (e *EventsLedgerEntry) NetARS() decimal.Decimal {
	return orZero(e.IncomeARS).Sub(orZero(e.ExpenseARS))
}

// NetUSD returns income minus expense in USD.
func (e *EventsLedgerEntry) NetUSD() decimal.Decimal {
	return orZero(e.IncomeUSD).Sub(orZero(e.ExpenseUSD))
}

// LedgerEntries is the JSONB-backed ordered entry sequence.
type LedgerEntries []EventsLedgerEntry

func (l LedgerEntries) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *LedgerEntries) Scan(src interface{}) error  { return jsonbScan(src, l) }

// EventsCash owns an event's budget header, payment panel and ledger.
// Totals and final balances are caches of the last recomputation.
type EventsCash struct {
	ID            uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Header        EventHeader        `gorm:"type:jsonb;not null"`
	PaymentStatus PaymentStatusPanel `gorm:"type:jsonb;not null"`
	LedgerEntries LedgerEntries      `gorm:"type:jsonb;not null;default:'[]'"`

	TotalIncomeARS  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalExpenseARS decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalIncomeUSD  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalExpenseUSD decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	FinalBalanceARS decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	FinalBalanceUSD decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	HasOverdraft   bool `gorm:"not null;default:false"`
	NeedsAttention bool `gorm:"not null;default:false"`

	CreatedBy string `gorm:"not null"`
	UpdatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (EventsCash) TableName() string { return "events_cash" }
