package caltime

import "time"

// IsLeapYear determines if the year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in a given month for a
// specific year.
func DaysInMonth(year int, month time.Month) int {
	if month == time.February {
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	switch month {
	case time.April, time.June, time.September, time.November:
		return 30
	}
	return 31
}

// Weekday calculates the day of the week for a given date.
func Weekday(year int, month time.Month, day int) time.Weekday {
	// Zeller's Congruence algorithm adjustment for Gregorian calendar
	m := int(month)
	if m < 3 {
		m += 12
		year -= 1
	}
	k := year % 100
	j := year / 100
	h := (day + ((13 * (m + 1)) / 5) + k + (k / 4) + (j / 4) + (5 * j)) % 7
	// Adjust result to fit time.Weekday, Sunday=0, Monday=1, ..., Saturday=6
	return time.Weekday((h + 6) % 7)
}
