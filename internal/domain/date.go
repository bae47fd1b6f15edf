package domain

import "time"

// DateInt is a calendar date encoded as the integer YYYYMMDD, e.g. 20250614.
// Client_Trip stores RegisteredAt and PaymentDate this way and the API exposes
// them unchanged.
type DateInt int

// DateIntOf encodes the calendar date of t in t's own location.
func DateIntOf(t time.Time) DateInt {
	y, m, d := t.Date()
	return DateInt(y*10000 + int(m)*100 + d)
}

// Time decodes d to midnight in loc.
func (d DateInt) Time(loc *time.Location) time.Time {
	n := int(d)
	return time.Date(n/10000, time.Month(n/100%100), n%100, 0, 0, 0, 0, loc)
}

// Valid reports whether d names a real calendar date.
// 20250230 is not valid because time.Date would normalise it to March.
func (d DateInt) Valid() bool {
	if d <= 0 {
		return false
	}
	return DateIntOf(d.Time(time.UTC)) == d
}
