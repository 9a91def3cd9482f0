package models

import "strings"

// Zone is the closed set of geographic zones a customer belongs to.
type Zone int

const (
	ZoneUnknown Zone = iota - 1
	ZoneNorth
	ZoneSouth
	ZoneEast
	ZoneWest
	ZoneCentral

	ZoneCount = int(ZoneCentral) + 1
)

var zoneNames = [ZoneCount]string{
	ZoneNorth:   "North",
	ZoneSouth:   "South",
	ZoneEast:    "East",
	ZoneWest:    "West",
	ZoneCentral: "Central",
}

func Zones() []Zone {
	return []Zone{ZoneNorth, ZoneSouth, ZoneEast, ZoneWest, ZoneCentral}
}

// ParseZone is case-insensitive and trims whitespace; unrecognised
// values yield ZoneUnknown.
func ParseZone(s string) Zone {
	s = strings.TrimSpace(s)
	for i, name := range zoneNames {
		if strings.EqualFold(s, name) {
			return Zone(i)
		}
	}
	return ZoneUnknown
}

func (z Zone) IsKnown() bool {
	return z >= ZoneNorth && z <= ZoneCentral
}

func (z Zone) String() string {
	if !z.IsKnown() {
		return "Unknown"
	}
	return zoneNames[z]
}
