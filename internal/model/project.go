package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectStatus: "active" | "completed" | "on_hold" | "cancelled"
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCancelled ProjectStatus = "cancelled"
)

// ProjectType: "deco" | "event" | "mixed"
type ProjectType string

const (
	ProjectDeco  ProjectType = "deco"
	ProjectEvent ProjectType = "event"
	ProjectMixed ProjectType = "mixed"
)

// Project is the container that studio movements, disbursement orders and
// cash counts reference by name. Financial totals are caches recomputed from
// the movement ledger on read; the movement sequence is the source of truth.
type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"not null;index"`
	Description *string
	ProjectType ProjectType   `gorm:"type:varchar(10);not null;default:'deco'"`
	Status      ProjectStatus `gorm:"type:varchar(15);not null;default:'active'"`

	StartDate *time.Time `gorm:"type:date"`
	EndDate   *time.Time `gorm:"type:date"`

	BudgetUSD *decimal.Decimal `gorm:"type:decimal(14,2)"`
	BudgetARS *decimal.Decimal `gorm:"type:decimal(14,2)"`

	ClientName *string
	Location   *string

	// Cached financials — overwritten by ProjectService on read
	CurrentBalanceUSD decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CurrentBalanceARS decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalIncomeUSD    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalExpenseUSD   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalIncomeARS    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalExpenseARS   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	MovementsCount          int `gorm:"not null;default:0"`
	DisbursementOrdersCount int `gorm:"not null;default:0"`

	Notes      *string
	IsArchived bool `gorm:"not null;default:false"`

	CreatedBy string `gorm:"not null"`
	UpdatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOverBudget reports whether expenses exceed the budget in either currency.
// A nil budget means that currency is unconstrained.
func (p *Project) IsOverBudget() bool {
	if p.BudgetUSD != nil && p.TotalExpenseUSD.GreaterThan(*p.BudgetUSD) {
		return true
	}
	if p.BudgetARS != nil && p.TotalExpenseARS.GreaterThan(*p.BudgetARS) {
		return true
	}
	return false
}
