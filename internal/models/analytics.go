package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

const MonthsPerYear = 12

var monthLabels = [MonthsPerYear]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthLabels returns a fresh copy of the Jan..Dec labels.
func MonthLabels() []string {
	labels := make([]string, MonthsPerYear)
	copy(labels, monthLabels[:])
	return labels
}

// MonthlyChannelTotal is one row of the (month, channel) grouping over
// transactions.
type MonthlyChannelTotal struct {
	Month       int             `gorm:"column:txn_month"`
	Channel     string          `gorm:"column:channel"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount"`
}

// LoanTypeTotal is one row of the loan-type grouping.
type LoanTypeTotal struct {
	LoanType    string          `gorm:"column:loan_type"`
	LoanCount   int64           `gorm:"column:loan_count"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount"`
}

// CohortZoneCount is one row of the (open year, zone) grouping over
// accounts joined to customers.
type CohortZoneCount struct {
	OpenYear      int    `gorm:"column:open_year"`
	Zone          string `gorm:"column:zone"`
	CustomerCount int64  `gorm:"column:customer_count"`
}

// LabelCount is a generic (label, count) grouping row.
type LabelCount struct {
	Label string `gorm:"column:label"`
	Count int64  `gorm:"column:customer_count"`
}

// TransactionGrid is the dense month by channel matrix. Every cell starts
// at zero.
type TransactionGrid [MonthsPerYear][ChannelCount]float64

// Add accumulates amount into the given 1-based month and channel. Labels
// that differ only in case parse to the same channel, so one cell may be
// fed by several grouped rows. It reports false when either coordinate is
// out of range.
func (g *TransactionGrid) Add(month int, channel Channel, amount float64) bool {
	if month < 1 || month > MonthsPerYear || !channel.IsKnown() {
		return false
	}
	g[month-1][channel] += amount
	return true
}

func (g *TransactionGrid) Series() *TransactionSeries {
	series := &TransactionSeries{
		Months:     MonthLabels(),
		Online:     make([]float64, MonthsPerYear),
		DebitCard:  make([]float64, MonthsPerYear),
		CreditCard: make([]float64, MonthsPerYear),
		ATM:        make([]float64, MonthsPerYear),
	}

	for m := 0; m < MonthsPerYear; m++ {
		series.Online[m] = g[m][ChannelOnline]
		series.DebitCard[m] = g[m][ChannelDebitCard]
		series.CreditCard[m] = g[m][ChannelCreditCard]
		series.ATM[m] = g[m][ChannelATM]
	}

	return series
}

// TransactionSeries is the chart-ready monthly totals per channel. All
// slices have exactly twelve entries.
type TransactionSeries struct {
	Months     []string  `json:"months"`
	Online     []float64 `json:"online"`
	DebitCard  []float64 `json:"debitCard"`
	CreditCard []float64 `json:"creditCard"`
	ATM        []float64 `json:"atm"`
}

// ForChannel returns the monthly values for a known channel.
func (s *TransactionSeries) ForChannel(channel Channel) []float64 {
	switch channel {
	case ChannelOnline:
		return s.Online
	case ChannelDebitCard:
		return s.DebitCard
	case ChannelCreditCard:
		return s.CreditCard
	case ChannelATM:
		return s.ATM
	default:
		return nil
	}
}

// LoanDistribution holds parallel arrays; index i of each describes the
// same loan type.
type LoanDistribution struct {
	LoanTypes   []string  `json:"loanTypes"`
	LoanCounts  []int64   `json:"loanCounts"`
	LoanAmounts []float64 `json:"loanAmounts"`
}

func NewLoanDistribution(capacity int) *LoanDistribution {
	return &LoanDistribution{
		LoanTypes:   make([]string, 0, capacity),
		LoanCounts:  make([]int64, 0, capacity),
		LoanAmounts: make([]float64, 0, capacity),
	}
}

func (d *LoanDistribution) Append(loanType string, count int64, amount float64) {
	d.LoanTypes = append(d.LoanTypes, loanType)
	d.LoanCounts = append(d.LoanCounts, count)
	d.LoanAmounts = append(d.LoanAmounts, amount)
}

// ZoneCounts is a dense per-zone counter. It serializes as an object
// keyed by zone name with every zone present.
type ZoneCounts [ZoneCount]int64

func (z ZoneCounts) Get(zone Zone) int64 {
	if !zone.IsKnown() {
		return 0
	}
	return z[zone]
}

func (z ZoneCounts) MarshalJSON() ([]byte, error) {
	out := make(map[string]int64, ZoneCount)
	for _, zone := range Zones() {
		out[zone.String()] = z.Get(zone)
	}
	return json.Marshal(out)
}

// CustomerCohorts maps an account-opening year to its per-zone distinct
// customer counts. A year is present once any row was seen for it, and
// then every zone is present.
type CustomerCohorts map[int]ZoneCounts

// Add records count for (year, zone). The year is registered even when
// the zone is unknown; the count itself is dropped and Add reports false.
func (c CustomerCohorts) Add(year int, zone Zone, count int64) bool {
	counts := c[year]
	if zone.IsKnown() {
		counts[zone] += count
	}
	c[year] = counts
	return zone.IsKnown()
}


// SegmentBreakdown is the customer count per income level and per
// segment.
type SegmentBreakdown struct {
	IncomeData  map[string]int64 `json:"income_data"`
	SegmentData map[string]int64 `json:"segment_data"`
}

func NewSegmentBreakdown() *SegmentBreakdown {
	return &SegmentBreakdown{
		IncomeData:  map[string]int64{},
		SegmentData: map[string]int64{},
	}
}
