package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

const (
	AccountTypeChecking = "Checking"
	AccountTypeSavings  = "Savings"
	AccountTypeBusiness = "Business"
)

var (
	ErrAccountCustomerRequired = errors.New("account must belong to a customer")
	ErrAccountOpenDateRequired = errors.New("account open date is required")
)

// Account belongs to exactly one customer. OpenDate is the basis for
// cohort years.
type Account struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CustomerID  uint      `gorm:"not null;index" json:"customer_id"`
	AccountType string    `gorm:"type:varchar(30)" json:"account_type"`
	OpenDate    time.Time `gorm:"not null;index" json:"open_date"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if err := a.Validate(); err != nil {
		return err
	}
	a.OpenDate = a.OpenDate.UTC()
	return nil
}

func (a *Account) Validate() error {
	if a.CustomerID == 0 {
		return ErrAccountCustomerRequired
	}
	if a.OpenDate.IsZero() {
		return ErrAccountOpenDateRequired
	}
	return nil
}

func (a *Account) TableName() string {
	return "accounts"
}
