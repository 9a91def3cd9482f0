package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionGrid_ZeroFilledSeries(t *testing.T) {
	var grid TransactionGrid

	assert.True(t, grid.Add(3, ChannelOnline, 100))
	assert.True(t, grid.Add(3, ChannelOnline, 50))
	assert.True(t, grid.Add(12, ChannelATM, 20.5))
	assert.False(t, grid.Add(0, ChannelOnline, 1))
	assert.False(t, grid.Add(13, ChannelOnline, 1))
	assert.False(t, grid.Add(5, ChannelUnknown, 1))

	series := grid.Series()

	assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}, series.Months)
	for _, ch := range Channels() {
		assert.Len(t, series.ForChannel(ch), MonthsPerYear, ch.String())
	}
	assert.Equal(t, 150.0, series.Online[2])
	assert.Equal(t, 20.5, series.ATM[11])
	assert.Equal(t, 0.0, series.Online[0])
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, series.DebitCard)
	assert.Nil(t, series.ForChannel(ChannelUnknown))
}

func TestTransactionSeries_JSONKeys(t *testing.T) {
	var grid TransactionGrid
	grid.Add(1, ChannelCreditCard, 10)

	raw, err := json.Marshal(grid.Series())
	require.NoError(t, err)

	var decoded map[string][]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for _, key := range []string{"months", "online", "debitCard", "creditCard", "atm"} {
		assert.Len(t, decoded[key], MonthsPerYear, key)
	}
}

func TestMonthLabels_ReturnsCopy(t *testing.T) {
	labels := MonthLabels()
	labels[0] = "changed"

	assert.Equal(t, "Jan", MonthLabels()[0])
}

func TestLoanDistribution_Append(t *testing.T) {
	dist := NewLoanDistribution(2)
	dist.Append("Auto", 2, 1500.5)
	dist.Append("Home", 1, 250000)

	assert.Equal(t, []string{"Auto", "Home"}, dist.LoanTypes)
	assert.Equal(t, []int64{2, 1}, dist.LoanCounts)
	assert.Equal(t, []float64{1500.5, 250000}, dist.LoanAmounts)
}

func TestCustomerCohorts_AddAndMarshal(t *testing.T) {
	cohorts := CustomerCohorts{}

	assert.True(t, cohorts.Add(2021, ZoneNorth, 3))
	assert.True(t, cohorts.Add(2021, ZoneNorth, 2))
	assert.True(t, cohorts.Add(2022, ZoneCentral, 1))
	assert.False(t, cohorts.Add(2023, ZoneUnknown, 9))

	assert.Len(t, cohorts, 3)
	assert.Contains(t, cohorts, 2023)
	assert.Equal(t, int64(5), cohorts[2021].Get(ZoneNorth))
	assert.Equal(t, int64(0), cohorts[2023].Get(ZoneNorth))
	assert.Equal(t, int64(0), cohorts[2021].Get(ZoneUnknown))

	raw, err := json.Marshal(cohorts)
	require.NoError(t, err)

	var decoded map[string]map[string]int64
	require.NoError(t, json.Unmarshal(raw, &decoded))

	require.Len(t, decoded, 3)
	for year, zones := range decoded {
		assert.Len(t, zones, ZoneCount, year)
	}
	assert.Equal(t, map[string]int64{"North": 5, "South": 0, "East": 0, "West": 0, "Central": 0}, decoded["2021"])
	assert.Equal(t, int64(1), decoded["2022"]["Central"])
}

func TestCustomerCohorts_EmptyMarshalsAsObject(t *testing.T) {
	raw, err := json.Marshal(CustomerCohorts{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
}
