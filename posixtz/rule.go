package posixtz

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ngrash/go-localtime/caltime"
)

// Rule is a recurring daylight-saving transition: the Week'th
// occurrence of Weekday in Month, at the local clock time Time.
// The zero Rule is not Valid and means the zone observes no daylight
// saving time.
type Rule struct {
	Month   time.Month
	Week    int // 1 to 5, where 5 means the last occurrence in the month
	Weekday time.Weekday
	Time    HMS // local clock time of the transition
	Valid   bool
}

// ParseRule parses a transition rule. The transition time defaults to
// 02:00:00 when omitted. On error it returns the zero Rule.
//
// The spec says:
//
//	Mm.n.d
//	    The d'th day (0 <= d <= 6) of week n of month m of the year
//	    (1 <= n <= 5, 1 <= m <= 12, where week 5 means "the last d day
//	    in month m" which may occur in either the fourth or the fifth
//	    week). Week 1 is the first week in which the d'th day occurs.
//	    Day zero is Sunday.
//
// The Julian day forms ("Jn" and "n") are not accepted.
func ParseRule(s string) (Rule, error) {
	if s == "" {
		return Rule{}, fmt.Errorf("empty rule")
	}
	if s[0] != 'M' {
		return Rule{}, fmt.Errorf("expected 'M', got %q", s[0])
	}
	date := s[1:]
	var clock string
	if i := strings.IndexByte(date, '/'); i != -1 {
		date, clock = date[:i], date[i+1:]
	}
	parts := strings.Split(date, ".")
	if len(parts) != 3 {
		return Rule{}, fmt.Errorf("expected month.week.day, got %q", date)
	}
	var (
		r    Rule
		errs error
		err  error
	)
	var month int
	if month, err = parseNum(parts[0], 1, 12); err != nil {
		errs = errors.Join(errs, fmt.Errorf("month %q: %w", parts[0], err))
	}
	r.Month = time.Month(month)
	if r.Week, err = parseNum(parts[1], 1, 5); err != nil {
		errs = errors.Join(errs, fmt.Errorf("week %q: %w", parts[1], err))
	}
	var day int
	if day, err = parseNum(parts[2], 0, 6); err != nil {
		errs = errors.Join(errs, fmt.Errorf("day %q: %w", parts[2], err))
	}
	r.Weekday = time.Weekday(day)
	if clock != "" {
		if r.Time, err = ParseHMS(clock); err != nil {
			errs = errors.Join(errs, fmt.Errorf("time %q: %w", clock, err))
		}
	} else {
		r.Time = HMS{Hour: 2} // POSIX default transition time
	}
	if errs != nil {
		return Rule{}, errs
	}
	r.Valid = true
	return r, nil
}

// String renders the rule in canonical "Mm.n.d/H:MM:SS" form, always
// including the transition time.
func (r Rule) String() string {
	return fmt.Sprintf("M%d.%d.%d/%s", int(r.Month), r.Week, int(r.Weekday), r.Time)
}

// Clear resets the rule to its zero, invalid value.
func (r *Rule) Clear() {
	*r = Rule{}
}

// Day resolves the rule to the day of the month it falls on in the
// given year. Week 5 resolves to the last occurrence of the weekday in
// the month, which is the fourth occurrence when there is no fifth.
func (r Rule) Day(year int) int {
	first := 1 + (int(r.Weekday)-int(caltime.Weekday(year, r.Month, 1))+7)%7
	day := first + (r.Week-1)*7
	if day > caltime.DaysInMonth(year, r.Month) {
		day -= 7
	}
	return day
}

// Calculate computes the UTC instant at which the rule fires in the
// given year, together with the local broken-down time of the
// transition. offset is the zone's UTC offset in force before the
// transition, in the POSIX sign convention, so UTC is the local
// transition time plus the offset. POSIX states transition times in
// the clock reading that is current when the transition happens:
// standard time for the start of daylight saving time and daylight
// saving time for the end.
//
// The result is unspecified if the rule is not Valid; callers check
// Valid first.
func (r Rule) Calculate(year int, offset HMS) (int64, caltime.DateTime) {
	local := caltime.Date(year, r.Month, r.Day(year), r.Time.Hour, r.Time.Minute, r.Time.Second)
	utc := local
	offset.AddTo(&utc)
	return utc.Unix(), local
}
