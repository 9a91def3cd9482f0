package services

import (
	"time"

	"bank-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	businessHoursStart = 6
	businessHoursEnd   = 24
	hoursInDay         = 24
	minCustomerAge     = 18
	maxCustomerAge     = 85
	maxAccountsPerUser = 3
)

var (
	seedCountries    = []string{"Canada", "United States", "Mexico", "Brazil", "United Kingdom", "Germany", "India", "Australia"}
	seedIncomeLevels = []string{"High", "Medium", "Low"}
	seedSegments     = []string{"Retail", "Corporate"}
	seedRiskRatings  = []string{"Low", "Medium", "High"}
	seedGenders      = []string{"M", "F"}
	seedAccountTypes = []string{models.AccountTypeChecking, models.AccountTypeSavings, models.AccountTypeBusiness}
	seedLoanTypes    = []string{"Home", "Auto", "Personal", "Education", "Business"}
)

type dataGenerator struct {
	faker *gofakeit.Faker
}

// NewDataGenerator creates a generator. A zero seed picks a random one;
// any other seed makes the output reproducible.
func NewDataGenerator(seed uint64) DataGeneratorInterface {
	return &dataGenerator{
		faker: gofakeit.New(seed),
	}
}

func (g *dataGenerator) GenerateCustomers(count int) []models.Customer {
	customers := make([]models.Customer, 0, count)
	zones := models.Zones()

	for i := 0; i < count; i++ {
		customers = append(customers, models.Customer{
			Name:        g.faker.Name(),
			Age:         g.faker.Number(minCustomerAge, maxCustomerAge),
			Gender:      g.faker.RandomString(seedGenders),
			Country:     g.faker.RandomString(seedCountries),
			Zone:        zones[g.faker.Number(0, len(zones)-1)].String(),
			IncomeLevel: g.faker.RandomString(seedIncomeLevels),
			Segment:     g.faker.RandomString(seedSegments),
			RiskRating:  g.faker.RandomString(seedRiskRatings),
		})
	}

	return customers
}

// GenerateAccounts opens one to three accounts per customer with open
// dates spread over [startYear, endYear]. Customers must already carry
// their database ids.
func (g *dataGenerator) GenerateAccounts(customers []models.Customer, startYear, endYear int) []models.Account {
	if endYear < startYear {
		startYear, endYear = endYear, startYear
	}

	start := time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(endYear+1, time.January, 1, 0, 0, 0, 0, time.UTC)

	accounts := make([]models.Account, 0, len(customers)*2)
	for _, customer := range customers {
		for n := g.faker.Number(1, maxAccountsPerUser); n > 0; n-- {
			accounts = append(accounts, models.Account{
				CustomerID:  customer.ID,
				AccountType: g.faker.RandomString(seedAccountTypes),
				OpenDate:    g.GenerateTimestamp(start, end),
			})
		}
	}

	return accounts
}

func (g *dataGenerator) GenerateTransactions(year, count int) []models.Transaction {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	channels := models.Channels()

	transactions := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		channel := channels[g.faker.Number(0, len(channels)-1)]
		transactions = append(transactions, models.Transaction{
			TransactionDate: g.GenerateTimestamp(start, end),
			Amount:          g.GenerateAmount(channel),
			Channel:         channel.String(),
		})
	}

	return transactions
}

func (g *dataGenerator) GenerateLoans(year, count int) []models.Loan {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	loans := make([]models.Loan, 0, count)
	for i := 0; i < count; i++ {
		loanType := g.faker.RandomString(seedLoanTypes)
		minValue, maxValue := loanAmountRange(loanType)
		loans = append(loans, models.Loan{
			LoanType:  loanType,
			Amount:    decimal.NewFromFloat(g.faker.Float64Range(minValue, maxValue)).Round(2),
			StartDate: g.GenerateTimestamp(start, end),
		})
	}

	return loans
}

func (g *dataGenerator) GenerateAmount(channel models.Channel) decimal.Decimal {
	minValue, maxValue := channelAmountRange(channel)
	return decimal.NewFromFloat(g.faker.Price(minValue, maxValue)).Round(2)
}

// GenerateTimestamp returns a UTC instant in [startDate, endDate) during
// business hours.
func (g *dataGenerator) GenerateTimestamp(startDate, endDate time.Time) time.Time {
	day := g.faker.DateRange(startDate, endDate.Add(-time.Hour*hoursInDay)).UTC()
	if day.Before(startDate) {
		day = startDate.UTC()
	}

	return time.Date(
		day.Year(),
		day.Month(),
		day.Day(),
		g.faker.Number(businessHoursStart, businessHoursEnd-1),
		g.faker.Number(0, 59),
		g.faker.Number(0, 59),
		0,
		time.UTC,
	)
}

func channelAmountRange(channel models.Channel) (float64, float64) {
	switch channel {
	case models.ChannelOnline:
		return 5, 1500
	case models.ChannelDebitCard:
		return 2, 400
	case models.ChannelCreditCard:
		return 10, 2500
	case models.ChannelATM:
		return 20, 800
	default:
		return 1, 100
	}
}

func loanAmountRange(loanType string) (float64, float64) {
	switch loanType {
	case "Home":
		return 80000, 900000
	case "Auto":
		return 8000, 75000
	case "Education":
		return 5000, 120000
	case "Business":
		return 25000, 500000
	default:
		return 1000, 40000
	}
}
