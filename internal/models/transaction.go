package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionDateRequired    = errors.New("transaction date is required")
	ErrTransactionChannelRequired = errors.New("transaction channel is required")
)

// Transaction is an append-only monetary event. Channel is stored as the
// raw label so rows outside the known set can still be loaded.
type Transaction struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	TransactionDate time.Time       `gorm:"not null;index" json:"transaction_date"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Channel         string          `gorm:"type:varchar(30);not null;index" json:"channel"`
}

// BeforeCreate stores the timestamp in UTC so year filters and month
// extraction agree on every dialect.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if err := t.Validate(); err != nil {
		return err
	}
	t.TransactionDate = t.TransactionDate.UTC()
	return nil
}

func (t *Transaction) Validate() error {
	if t.TransactionDate.IsZero() {
		return ErrTransactionDateRequired
	}
	if strings.TrimSpace(t.Channel) == "" {
		return ErrTransactionChannelRequired
	}
	return nil
}

func (t *Transaction) TableName() string {
	return "transactions"
}
