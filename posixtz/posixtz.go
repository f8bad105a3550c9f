// Package posixtz parses POSIX timezone strings like
// "EST5EDT,M3.2.0/2:00:00,M11.1.0/2:00:00" into their standard and
// daylight-saving names, offsets and transition rules.
//
// The grammar is the second format of the TZ environment variable
// described by POSIX.1-2017 section 8.3:
//
//	stdoffset[dst[offset][,start[/time],end[/time]]]
//
// with two deviations: the start and end rules must use the
// month.week.day form ("M3.2.0"), not the Julian day forms, and a dst
// name must be followed by the two rules. Offsets keep the POSIX sign
// convention, where a positive value means the zone is west of the
// Prime Meridian and the offset is added to local time to get UTC.
package posixtz

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Timezone is a parsed POSIX timezone string.
//
// StdOffset and DSTOffset carry the verbatim POSIX values. Use
// StandardUTCOffset and DSTUTCOffset for the conventional sign.
type Timezone struct {
	StdName   string
	StdOffset HMS
	DSTName   string
	DSTOffset HMS
	DSTStart  Rule // transition to daylight saving time
	STDStart  Rule // transition back to standard time
}

// Parse parses a POSIX timezone string. On error it returns the zero
// Timezone.
//
// If the dst offset is omitted, daylight saving time is assumed to be
// one hour ahead of standard time, so the defaulted DSTOffset is
// StdOffset with the hour decremented.
func Parse(s string) (Timezone, error) {
	var (
		z   Timezone
		err error
	)
	rest := s

	if z.StdName, rest, err = scanName(rest); err != nil {
		return Timezone{}, fmt.Errorf("std: %w", err)
	}

	var raw string
	raw, rest = scanOffset(rest)
	if raw == "" {
		return Timezone{}, fmt.Errorf("offset: missing after name %q", z.StdName)
	}
	if z.StdOffset, err = ParseHMS(raw); err != nil {
		return Timezone{}, fmt.Errorf("offset %q: %w", raw, err)
	}

	if rest == "" {
		// Standard time only.
		return z, nil
	}

	if z.DSTName, rest, err = scanName(rest); err != nil {
		return Timezone{}, fmt.Errorf("dst: %w", err)
	}

	if raw, rest = scanOffset(rest); raw != "" {
		if z.DSTOffset, err = ParseHMS(raw); err != nil {
			return Timezone{}, fmt.Errorf("dst offset %q: %w", raw, err)
		}
	} else {
		// One hour ahead of standard time. The adjustment is made on
		// the hour field, not on the total second count.
		z.DSTOffset = z.StdOffset
		z.DSTOffset.Hour--
	}

	if rest == "" || rest[0] != ',' {
		return Timezone{}, fmt.Errorf("rule: expected ',' after dst name %q", z.DSTName)
	}
	parts := strings.Split(rest[1:], ",")
	if len(parts) != 2 {
		return Timezone{}, fmt.Errorf("rule: expected 2 rules, got %d", len(parts))
	}
	var errs error
	if z.DSTStart, err = ParseRule(parts[0]); err != nil {
		errs = errors.Join(errs, fmt.Errorf("start rule %q: %w", parts[0], err))
	}
	if z.STDStart, err = ParseRule(parts[1]); err != nil {
		errs = errors.Join(errs, fmt.Errorf("end rule %q: %w", parts[1], err))
	}
	if errs != nil {
		return Timezone{}, errs
	}
	return z, nil
}

// String reconstructs the canonical POSIX string. Offsets are always
// rendered in full H:MM:SS form and the dst offset is always explicit,
// so the result may be longer than the string it was parsed from, but
// it reparses to the same value. The dst clause is omitted entirely
// when HasDST reports false.
func (z Timezone) String() string {
	var b strings.Builder
	b.WriteString(quoteName(z.StdName))
	b.WriteString(z.StdOffset.String())
	if !z.HasDST() {
		return b.String()
	}
	b.WriteString(quoteName(z.DSTName))
	b.WriteString(z.DSTOffset.String())
	b.WriteByte(',')
	b.WriteString(z.DSTStart.String())
	b.WriteByte(',')
	b.WriteString(z.STDStart.String())
	return b.String()
}

// Clear resets the timezone to its zero value.
func (z *Timezone) Clear() {
	*z = Timezone{}
}

// HasDST reports whether the timezone observes daylight saving time,
// i.e. whether both transition rules are present.
func (z Timezone) HasDST() bool {
	return z.DSTStart.Valid && z.STDStart.Valid
}

// StandardUTCOffset returns the standard-time offset in conventional
// signed seconds east of UTC. This is the negation of the POSIX value
// held in StdOffset: "EST5" is UTC-5, so StandardUTCOffset returns
// -18000.
func (z Timezone) StandardUTCOffset() int {
	return -z.StdOffset.Seconds()
}

// DSTUTCOffset returns the daylight-saving offset in conventional
// signed seconds east of UTC.
func (z Timezone) DSTUTCOffset() int {
	return -z.DSTOffset.Seconds()
}

// scanName scans a zone name from the start of s and returns the name
// and the remaining input.
//
// The spec says:
//
//	Each of these fields can occur in either of two formats quoted or
//	unquoted. In the quoted form, the first character shall be the
//	less-than ( '<' ) character and the last character shall be the
//	greater-than ( '>' ) character. All characters between these
//	quoting characters shall be alphanumeric characters from the
//	portable character set in the current locale, the <plus-sign>
//	( '+' ) character, or the <minus-sign> ( '-' ) character. In the
//	unquoted form, all characters in these fields shall be alphabetic
//	characters from the portable character set in the current locale.
//	The interpretation is unspecified if this field is less than three
//	bytes.
func scanName(s string) (string, string, error) {
	if len(s) > 0 && s[0] == '<' {
		end := strings.IndexByte(s, '>')
		if end == -1 {
			return "", "", fmt.Errorf("unterminated quoted name: %q", s)
		}
		name := s[1:end]
		if len(name) < 3 {
			return "", "", fmt.Errorf("name %q shorter than three characters", name)
		}
		for i := 0; i < len(name); i++ {
			if !isAlphanum(name[i]) && name[i] != '+' && name[i] != '-' {
				return "", "", fmt.Errorf("invalid character %q in quoted name %q", name[i], name)
			}
		}
		return name, s[end+1:], nil
	}
	var i int
	for i < len(s) && isAlpha(s[i]) {
		i++
	}
	if i < 3 {
		return "", "", fmt.Errorf("name %q shorter than three characters", s[:i])
	}
	return s[:i], s[i:], nil
}

// scanOffset scans the longest prefix of s that can belong to an
// offset and returns it with the remaining input. It never fails; an
// empty prefix means no offset is present.
func scanOffset(s string) (string, string) {
	var i int
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == ':') {
		i++
	}
	return s[:i], s[i:]
}

// quoteName wraps a name in angle brackets if it contains characters
// that are only allowed in the quoted form.
func quoteName(s string) string {
	for i := 0; i < len(s); i++ {
		if !isAlpha(s[i]) {
			return "<" + s + ">"
		}
	}
	return s
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isAlphanum(c byte) bool {
	return isAlpha(c) || c >= '0' && c <= '9'
}

// parseNum parses an unsigned decimal field and checks it against an
// inclusive range.
func parseNum(s string, min, max int) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty field")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("invalid character %q", s[i])
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < min || n > max {
		return 0, fmt.Errorf("%d out of range %d..%d", n, min, max)
	}
	return n, nil
}
