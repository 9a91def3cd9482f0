package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrLoanTypeRequired      = errors.New("loan type is required")
	ErrLoanStartDateRequired = errors.New("loan start date is required")
	ErrNegativeLoanAmount    = errors.New("loan amount cannot be negative")
)

// Loan is a credit product. LoanType is an open set.
type Loan struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	LoanType  string          `gorm:"type:varchar(50);not null;index" json:"loan_type"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	StartDate time.Time       `gorm:"not null;index" json:"start_date"`
}

func (l *Loan) BeforeCreate(tx *gorm.DB) error {
	if err := l.Validate(); err != nil {
		return err
	}
	l.StartDate = l.StartDate.UTC()
	return nil
}

func (l *Loan) Validate() error {
	if strings.TrimSpace(l.LoanType) == "" {
		return ErrLoanTypeRequired
	}
	if l.StartDate.IsZero() {
		return ErrLoanStartDateRequired
	}
	if l.Amount.IsNegative() {
		return ErrNegativeLoanAmount
	}
	return nil
}

func (l *Loan) TableName() string {
	return "loans"
}
