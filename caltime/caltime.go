// Package caltime converts between Unix timestamps and broken-down
// calendar values in the proleptic Gregorian calendar. It ignores leap
// seconds but respects leap years.
//
// The implementation is based on the Go standard library's time package
// but does not depend on time.Location. The rest of this module computes
// local time from POSIX timezone rules precisely because no timezone
// database is available; going through time.Location here would smuggle
// the platform zone data back in.
package caltime

import (
	"fmt"
	"time"
)

// DateTime is a broken-down calendar value in no particular zone.
// Month and Weekday use the standard library conventions
// (time.January == 1, time.Sunday == 0). YearDay is 1-based.
type DateTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int

	// Weekday and YearDay are derived from the date fields. FromUnix
	// and Date fill them in; Unix ignores them.
	Weekday time.Weekday
	YearDay int
}

// Date returns the normalized DateTime for the given fields with
// Weekday and YearDay filled in. Hour, Minute and Second may be
// outside their usual ranges, including negative; the excess is
// carried into the other fields.
func Date(year int, month time.Month, day, hour, min, sec int) DateTime {
	d := DateTime{Year: year, Month: month, Day: day, Hour: hour, Minute: min, Second: sec}
	return FromUnix(d.Unix())
}

// FromUnix converts a Unix timestamp, i.e. the number of seconds since
// 1970-01-01 00:00:00 UTC, to the broken-down value showing on a UTC
// clock at that instant. It is the inverse of DateTime.Unix.
func FromUnix(sec int64) DateTime {
	// Shift to the unsigned absolute time base used by the standard
	// library's time package so the day arithmetic never sees a
	// negative value.
	abs := uint64(sec + unixToInternal - absoluteToInternal)

	days := abs / secondsPerDay
	clock := abs - days*secondsPerDay

	var d DateTime
	d.Hour = int(clock / secondsPerHour)
	clock -= uint64(d.Hour) * secondsPerHour
	d.Minute = int(clock / secondsPerMinute)
	d.Second = int(clock - uint64(d.Minute)*secondsPerMinute)

	// January 1 of year 1 of the absolute epoch, like January 1 of
	// 2001, was a Monday.
	d.Weekday = time.Weekday((days + uint64(time.Monday)) % 7)

	var yday int
	d.Year, d.Month, d.Day, yday = date(days)
	d.YearDay = yday + 1
	return d
}

// Unix converts the broken-down value, interpreted as a UTC wall clock
// reading, to a Unix timestamp. Hour, Minute and Second may be outside
// their usual ranges, including negative; the excess is carried into
// the day arithmetic. Weekday and YearDay are ignored.
func (d DateTime) Unix() int64 {
	days := daysSinceEpoch(d.Year) + uint64(daysBefore[d.Month-1]) + uint64(d.Day-1)
	if d.Month > time.February && IsLeapYear(d.Year) {
		days++ // +leap day
	}
	abs := days*secondsPerDay + uint64(d.Hour)*secondsPerHour + uint64(d.Minute)*secondsPerMinute + uint64(d.Second)
	return int64(abs) + (absoluteToInternal + internalToUnix)
}

// String renders the value as "2021-03-14 07:00:00".
func (d DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", d.Year, int(d.Month), d.Day, d.Hour, d.Minute, d.Second)
}

// The constants were copied from time.go in the Go standard library's
// time package.
const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	daysPer400Years  = 365*400 + 97
	daysPer100Years  = 365*100 + 24
	daysPer4Years    = 365*4 + 1

	absoluteZeroYear         = -292277022399
	internalYear             = 1
	absoluteToInternal int64 = (absoluteZeroYear - internalYear) * 365.2425 * secondsPerDay
	unixToInternal     int64 = (1969*365 + 1969/4 - 1969/100 + 1969/400) * secondsPerDay
	internalToUnix     int64 = -unixToInternal
)

// daysBefore[m] counts the number of days in a non-leap year before
// month m+1 begins. daysBefore[12] is the number of days in a year.
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// daysSinceEpoch takes a year and returns the number of days from
// the absolute epoch to the start of that year.
// This is basically (year - zeroYear) * 365, but accounting for leap days.
//
// This function was copied from time.go in the Go standard library time package.
func daysSinceEpoch(year int) uint64 {
	y := uint64(int64(year) - absoluteZeroYear)

	// Add in days from 400-year cycles.
	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	// Add in 100-year cycles.
	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	// Add in 4-year cycles.
	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	// Add in non-leap years.
	n = y
	d += 365 * n

	return d
}

// date is the inverse of daysSinceEpoch: it takes a count of days from
// the absolute epoch and splits it into year, month, day of month and
// 0-based day of year. The algorithm is the one used by absDate in the
// Go standard library time package.
func date(d uint64) (year int, month time.Month, day int, yday int) {
	// Account for 400 year cycles.
	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	// Cut off 100-year cycles.
	// The last cycle has one extra leap year, so on the last day
	// of that year, day / daysPer100Years will be 4 instead of 3.
	// Cut it back down to 3 by subtracting n>>2.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	// Cut off 4-year cycles.
	// The last cycle has a missing leap year, which does not
	// affect the missing day.
	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Cut off years within a 4-year cycle.
	// The last year is a leap year, so on the last day of that year,
	// day / 365 will be 4 instead of 3. Cut it back down to 3
	// by subtracting n>>2.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year = int(int64(y) + absoluteZeroYear)
	yday = int(d)

	day = yday
	if IsLeapYear(year) {
		switch {
		case day > 31+29-1:
			// After leap day; pretend it wasn't there.
			day--
		case day == 31+29-1:
			// Leap day.
			return year, time.February, 29, yday
		}
	}

	// Estimate month on assumption that every month has 31 days.
	// The estimate may be too low by at most one month, so adjust.
	month = time.Month(day / 31)
	end := daysBefore[month+1]
	var begin int
	if day >= end {
		month++
		begin = end
	} else {
		begin = daysBefore[month]
	}

	month++ // because January is 1
	day = day - begin + 1
	return year, month, day, yday
}
