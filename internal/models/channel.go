package models

import "strings"

// Channel is the closed set of transaction channels plotted by the
// dashboard. The zero-based ordinal indexes dense per-channel arrays.
type Channel int

const (
	ChannelUnknown Channel = iota - 1
	ChannelOnline
	ChannelDebitCard
	ChannelCreditCard
	ChannelATM

	ChannelCount = int(ChannelATM) + 1
)

var channelNames = [ChannelCount]string{
	ChannelOnline:     "Online",
	ChannelDebitCard:  "Debit Card",
	ChannelCreditCard: "Credit Card",
	ChannelATM:        "ATM",
}

// Channels lists the known channels in ordinal order.
func Channels() []Channel {
	return []Channel{ChannelOnline, ChannelDebitCard, ChannelCreditCard, ChannelATM}
}

// ParseChannel maps a stored channel label to its Channel. Matching
// ignores case and surrounding whitespace. Anything else is
// ChannelUnknown.
func ParseChannel(s string) Channel {
	s = strings.TrimSpace(s)
	for i, name := range channelNames {
		if strings.EqualFold(s, name) {
			return Channel(i)
		}
	}
	return ChannelUnknown
}

func (c Channel) IsKnown() bool {
	return c >= ChannelOnline && c <= ChannelATM
}

func (c Channel) String() string {
	if !c.IsKnown() {
		return "Unknown"
	}
	return channelNames[c]
}
