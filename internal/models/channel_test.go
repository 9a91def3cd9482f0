package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseChannel(t *testing.T) {
	tests := []struct {
		input string
		want  Channel
	}{
		{"Online", ChannelOnline},
		{"Debit Card", ChannelDebitCard},
		{"Credit Card", ChannelCreditCard},
		{"ATM", ChannelATM},
		{"  atm ", ChannelATM},
		{"credit card", ChannelCreditCard},
		{"Wire", ChannelUnknown},
		{"", ChannelUnknown},
		{"DebitCard", ChannelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseChannel(tt.input))
		})
	}
}

func TestChannel_OrdinalsAreDense(t *testing.T) {
	for i, ch := range Channels() {
		assert.Equal(t, i, int(ch))
		assert.True(t, ch.IsKnown())
		assert.Equal(t, ch, ParseChannel(ch.String()))
	}
	assert.Len(t, Channels(), ChannelCount)
	assert.False(t, ChannelUnknown.IsKnown())
	assert.Equal(t, "Unknown", ChannelUnknown.String())
}

func TestParseZone(t *testing.T) {
	tests := []struct {
		input string
		want  Zone
	}{
		{"North", ZoneNorth},
		{"south", ZoneSouth},
		{" East", ZoneEast},
		{"WEST", ZoneWest},
		{"Central", ZoneCentral},
		{"Northeast", ZoneUnknown},
		{"", ZoneUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseZone(tt.input))
		})
	}
}

func TestZone_OrdinalsAreDense(t *testing.T) {
	for i, z := range Zones() {
		assert.Equal(t, i, int(z))
		assert.Equal(t, z, ParseZone(z.String()))
	}
	assert.Len(t, Zones(), ZoneCount)
	assert.Equal(t, "Unknown", ZoneUnknown.String())
}
