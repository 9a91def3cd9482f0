package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	date := time.Date(2023, time.March, 4, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{
			name:        "valid known channel",
			transaction: Transaction{TransactionDate: date, Amount: decimal.NewFromFloat(100), Channel: "Online"},
		},
		{
			name:        "unknown channel is still storable",
			transaction: Transaction{TransactionDate: date, Amount: decimal.NewFromFloat(5), Channel: "Wire"},
		},
		{
			name:        "missing date",
			transaction: Transaction{Amount: decimal.NewFromFloat(5), Channel: "ATM"},
			wantErr:     ErrTransactionDateRequired,
		},
		{
			name:        "blank channel",
			transaction: Transaction{TransactionDate: date, Channel: " "},
			wantErr:     ErrTransactionChannelRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_BeforeCreateStoresUTC(t *testing.T) {
	plusFive := time.FixedZone("UTC+5", 5*60*60)
	txn := Transaction{
		TransactionDate: time.Date(2024, time.January, 1, 3, 0, 0, 0, plusFive),
		Amount:          decimal.NewFromInt(9),
		Channel:         "ATM",
	}

	require.NoError(t, txn.BeforeCreate(nil))
	assert.Equal(t, time.UTC, txn.TransactionDate.Location())
	assert.Equal(t, 2023, txn.TransactionDate.Year())
	assert.Equal(t, time.December, txn.TransactionDate.Month())
}

func TestTransaction_BeforeCreateRejectsInvalid(t *testing.T) {
	txn := Transaction{Channel: "ATM"}
	assert.ErrorIs(t, txn.BeforeCreate(nil), ErrTransactionDateRequired)
}

func TestLoan_Validate(t *testing.T) {
	date := time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, (&Loan{LoanType: "Auto", Amount: decimal.NewFromInt(1000), StartDate: date}).Validate())
	assert.ErrorIs(t, (&Loan{Amount: decimal.NewFromInt(1), StartDate: date}).Validate(), ErrLoanTypeRequired)
	assert.ErrorIs(t, (&Loan{LoanType: "Auto"}).Validate(), ErrLoanStartDateRequired)
	assert.ErrorIs(t, (&Loan{LoanType: "Auto", Amount: decimal.NewFromInt(-1), StartDate: date}).Validate(), ErrNegativeLoanAmount)
}

func TestAccount_Validate(t *testing.T) {
	open := time.Date(2021, time.January, 15, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, (&Account{CustomerID: 1, OpenDate: open}).Validate())
	assert.ErrorIs(t, (&Account{OpenDate: open}).Validate(), ErrAccountCustomerRequired)
	assert.ErrorIs(t, (&Account{CustomerID: 1}).Validate(), ErrAccountOpenDateRequired)
}

func TestLoanAndAccount_BeforeCreateStoreUTC(t *testing.T) {
	minusFive := time.FixedZone("UTC-5", -5*60*60)
	local := time.Date(2021, time.December, 31, 21, 0, 0, 0, minusFive)

	l := Loan{LoanType: "Auto", Amount: decimal.NewFromInt(1), StartDate: local}
	require.NoError(t, l.BeforeCreate(nil))
	assert.Equal(t, time.UTC, l.StartDate.Location())
	assert.Equal(t, 2022, l.StartDate.Year())

	a := Account{CustomerID: 1, OpenDate: local}
	require.NoError(t, a.BeforeCreate(nil))
	assert.Equal(t, time.UTC, a.OpenDate.Location())
	assert.Equal(t, 2022, a.OpenDate.Year())
}

func TestCustomer_Validate(t *testing.T) {
	assert.NoError(t, (&Customer{Name: "Ada", Country: "Canada", Zone: "North"}).Validate())
	assert.ErrorIs(t, (&Customer{Country: "Canada"}).Validate(), ErrCustomerNameRequired)
	assert.ErrorIs(t, (&Customer{Name: "Ada"}).Validate(), ErrCustomerCountryRequired)
	assert.Equal(t, ZoneWest, (&Customer{Zone: "west"}).ParsedZone())
}
