// Package xsdtime parses timestamps in the XML Schema dateTime lexical
// format (http://www.w3.org/TR/xmlschema-2/#dateTime), a subset of ISO 8601:
//
//	'-'? yyyy '-' mm '-' dd 'T' hh ':' mm ':' ss ('.' s+)? ('Z' | ('+' | '-') hh ':' mm)?
//
// The parser is purely lexical. It extracts the numeric fields and resolves
// the zone designator to a fixed offset, but does not validate calendar
// ranges (a day of 31 in February, or a second of 60, passes through as
// written). Beyond the specification it restricts the year to exactly four
// digits and the fractional second to one to three digits, and it ignores
// the sign of a leading '-' (a B.C. year).
package xsdtime

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// [-]yyyy-mm-dd'T'hh:mm:ss(.s+)?(Z|[+-]hh:mm)?
// Surrounding whitespace is tolerated; interior whitespace is not.
var dateTimeFormat = regexp.MustCompile(
	`^\s*(-)?(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})(\.(\d{1,3}))?(Z|([+-])(\d{2}):(\d{2}))?\s*$`)

// Submatch positions in dateTimeFormat.
const (
	posYearSign = iota + 1
	posYear
	posMonth
	posDay
	posHour
	posMinute
	posSecond
	posFraction // fractional part including the dot
	posMillisecond
	posZone
	posZoneSign
	posZoneHour
	posZoneMinute
)

// DateTime holds the fields of one parsed xs:dateTime. It is a plain value;
// Time and Location convert it when a time.Time is wanted.
type DateTime struct {
	Year        int // always the non-negative four digit value, even for B.C. input
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int

	// Offset is the resolved zone offset in minutes east of UTC. UTC
	// reports whether the designator was "Z" or absent, both of which
	// resolve to offset zero.
	Offset int
	UTC    bool
}

// Parse parses an xs:dateTime string, for example:
//
//	2005-11-14T02:16:38Z
//	2005-11-14T02:16:38-09:00
//	2005-11-14T02:16:38.125
//
// Leading and trailing whitespace is ignored. The second return value is
// false when s does not conform to the format; malformed input produces no
// further detail.
func Parse(s string) (DateTime, bool) {
	m := dateTimeFormat.FindStringSubmatch(s)
	if m == nil {
		return DateTime{}, false
	}

	dt := DateTime{
		Year:        atoiOrZero(m[posYear]),
		Month:       atoiOrZero(m[posMonth]),
		Day:         atoiOrZero(m[posDay]),
		Hour:        atoiOrZero(m[posHour]),
		Minute:      atoiOrZero(m[posMinute]),
		Second:      atoiOrZero(m[posSecond]),
		Millisecond: toMilliseconds(m[posMillisecond]),
	}
	dt.Offset, dt.UTC = resolveZone(m)
	return dt, true
}

// atoiOrZero converts a captured digit group, defaulting to zero on error.
// The pattern only captures fixed-width digit runs, so the default is
// defensive rather than a path tests can reach through Parse.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// toMilliseconds scales a one to three digit fractional-second capture to
// milliseconds: "5" -> 500, "12" -> 120, "125" -> 125, absent -> 0.
func toMilliseconds(s string) int {
	n := atoiOrZero(s)
	switch len(s) {
	case 0:
		return 0
	case 1:
		return 100 * n
	case 2:
		return 10 * n
	default:
		return n
	}
}

func resolveZone(m []string) (offset int, utc bool) {
	zone := m[posZone]
	if zone == "" || zone == "Z" {
		return 0, true
	}
	offset = atoiOrZero(m[posZoneHour])*60 + atoiOrZero(m[posZoneMinute])
	if m[posZoneSign] == "-" {
		offset = -offset
	}
	return offset, false
}

// Location returns the parsed zone as a fixed time.Location. A UTC result
// is time.UTC itself; anything else is a fixed zone named in the custom
// "GMT+hh:mm" style.
func (dt DateTime) Location() *time.Location {
	if dt.UTC {
		return time.UTC
	}
	off := dt.Offset
	sign := '+'
	if off < 0 {
		sign = '-'
		off = -off
	}
	name := fmt.Sprintf("GMT%c%02d:%02d", sign, off/60, off%60)
	return time.FixedZone(name, dt.Offset*60)
}

// Time assembles the parsed fields into a time.Time in Location. Out of
// range fields are normalized by time.Date in the usual way.
func (dt DateTime) Time() time.Time {
	return time.Date(dt.Year, time.Month(dt.Month), dt.Day,
		dt.Hour, dt.Minute, dt.Second, dt.Millisecond*int(time.Millisecond), dt.Location())
}
