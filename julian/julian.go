// Public domain.

// Package julian converts civil calendar dates to Julian Days and Julian
// centuries.
//
// Dates use astronomical year numbering: year 0 is 1 BCE, year -1 is
// 2 BCE, and so on.  The day of month may carry a fractional part
// expressing time of day as a fraction of 24 hours since midnight.
// Dates on or after 1582 October 15 are taken as Gregorian calendar
// dates; earlier dates as (proleptic) Julian calendar dates.
package julian

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/base"
)

// DomainError indicates a calendar field outside its representable range.
type DomainError struct {
	Field string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("julian: %s %v out of range", e.Field, e.Value)
}

// monthDays is the number of days in each month of a non-leap year.
var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// leapYear reports whether year y contains February 29.
//
// The Gregorian rule applies from 1583 on, the quadrennial Julian rule
// before, proleptically for years before the common era.  Go's % keeps
// the sign of the dividend but a zero remainder still means divisible,
// so the tests below hold for negative years too.
func leapYear(y int) bool {
	if y > 1582 {
		return y%4 == 0 && (y%100 != 0 || y%400 == 0)
	}
	return y%4 == 0
}

// gregorian reports whether y, m, d falls on or after 1582 October 15,
// the first day of the Gregorian calendar.
func gregorian(y, m int, d float64) bool {
	switch {
	case y != 1582:
		return y > 1582
	case m != 10:
		return m > 10
	}
	return d >= 15
}

// CalendarToJD converts a calendar date to a Julian Day.
//
// The fractional part of d expresses time of day; d = 0 is allowed by
// the astronomical "day 0" convention and means the last day of the
// preceding month.  A DomainError is returned for a month outside 1..12,
// a negative day, a day of 31.x in a 30-day month (and so on), or a date
// preceding the Julian Day epoch, -4712 January 1.5.
func CalendarToJD(y, m int, d float64) (float64, error) {
	if m < 1 || m > 12 {
		return 0, &DomainError{"month", float64(m)}
	}
	dm := monthDays[m]
	if m == 2 && leapYear(y) {
		dm = 29
	}
	if d < 0 || d >= float64(dm+1) {
		return 0, &DomainError{"day", d}
	}
	greg := gregorian(y, m, d)
	if m <= 2 {
		y--
		m += 12
	}
	var b float64
	if greg {
		a := y / 100
		b = float64(2 - a + a/4)
	}
	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) + d + b - 1524.5
	if jd < 0 {
		return 0, &DomainError{"year", float64(y)}
	}
	return jd, nil
}

// CalendarFromJD converts a Julian Day to a calendar date, the inverse
// of CalendarToJD.  Dates before 1582 October 15 come back in the
// Julian calendar.
func CalendarFromJD(jd float64) (y, m int, d float64) {
	zf, f := math.Modf(jd + .5)
	z := int64(zf)
	a := z
	if z >= 2299161 {
		α := int64(math.Floor((zf - 1867216.25) / 36524.25))
		a = z + 1 + α - α/4
	}
	b := a + 1524
	c := int64(math.Floor((float64(b) - 122.1) / 365.25))
	da := int64(math.Floor(365.25 * float64(c)))
	e := int64(math.Floor(float64(b-da) / 30.6001))
	d = float64(b-da) - math.Floor(30.6001*float64(e)) + f
	if e < 14 {
		m = int(e - 1)
	} else {
		m = int(e - 13)
	}
	if m > 2 {
		y = int(c - 4716)
	} else {
		y = int(c - 4715)
	}
	return
}

// TimeToJD converts a time.Time to a Julian Day.
//
// Go's time package uses the proleptic Gregorian calendar throughout,
// so the Gregorian formula is applied regardless of date.
func TimeToJD(t time.Time) float64 {
	ut := t.UTC()
	y, m, _ := ut.Date()
	yd := y
	md := int(m)
	if md <= 2 {
		yd--
		md += 12
	}
	a := yd / 100
	b := 2 - a + a/4
	d := float64(ut.Day()) + float64(ut.Hour())/24 +
		float64(ut.Minute())/1440 +
		(float64(ut.Second())+float64(ut.Nanosecond())*1e-9)/86400
	return math.Floor(365.25*float64(yd+4716)) +
		math.Floor(30.6001*float64(md+1)) + d + float64(b) - 1524.5
}

// Century converts a Julian Day to Julian centuries from J2000.0, the
// time argument of the solar and lunar series.
func Century(jd float64) float64 {
	return (jd - base.J2000) / base.JulianCentury
}
