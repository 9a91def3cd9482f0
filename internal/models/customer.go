package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrCustomerNameRequired    = errors.New("customer name is required")
	ErrCustomerCountryRequired = errors.New("customer country is required")
)

// Customer is a bank customer as seen by the analytics tables. Zone holds
// the raw stored label; see ParseZone.
type Customer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	Age         int       `json:"age"`
	Gender      string    `gorm:"type:varchar(1)" json:"gender"`
	Country     string    `gorm:"type:varchar(100);not null;index" json:"country"`
	Zone        string    `gorm:"type:varchar(20);not null;index" json:"zone"`
	IncomeLevel string    `gorm:"type:varchar(50)" json:"income_level"`
	Segment     string    `gorm:"type:varchar(50)" json:"segment"`
	RiskRating  string    `gorm:"type:varchar(20)" json:"risk_rating"`
	CreatedAt   time.Time `json:"created_at"`

	Accounts []Account `gorm:"foreignKey:CustomerID" json:"-"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	return c.Validate()
}

func (c *Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrCustomerNameRequired
	}
	if strings.TrimSpace(c.Country) == "" {
		return ErrCustomerCountryRequired
	}
	return nil
}

func (c *Customer) ParsedZone() Zone {
	return ParseZone(c.Zone)
}

func (c *Customer) TableName() string {
	return "customers"
}
