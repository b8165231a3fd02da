package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense item kinds.
const (
	KindProduct = "product"
	KindOther   = "other"
)

// DailyReport is the reconciled end-of-day sheet for the cafe.
// ReportDate ("YYYY-MM-DD") is the natural key: the unique index is the
// authoritative at-most-one-report-per-date guard under concurrent saves.
// TotalExpenses, CashInRegister, RemainingBalance and Excess are derived
// server-side on every write and never accepted from clients.
type DailyReport struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReportDate string    `gorm:"type:varchar(10);uniqueIndex;not null"`

	PosProfit         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	EmployeePayout    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	GovernmentExpense decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	TotalExpenses    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CashInRegister   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	RemainingBalance decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Excess           decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	CreatedBy string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []ExpenseItem `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
}

// ExpenseItem is one expense line on a daily report, owned exclusively by
// that report. ItemID is the client-generated id; Position preserves the
// order the items were entered in.
type ExpenseItem struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReportID uuid.UUID       `gorm:"type:uuid;index;not null"`
	ItemID   string          `gorm:"not null"`
	Kind     string          `gorm:"type:varchar(10);not null"` // product | other
	Title    string          `gorm:"not null"`
	Amount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Position int             `gorm:"not null"`
}
