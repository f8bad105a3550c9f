package posixtz

import (
	"fmt"
	"strings"

	"github.com/ngrash/go-localtime/caltime"
)

// HMS is a clock-of-day value or a clock-of-day sized offset. The sign
// lives on the hour and applies to the whole value: -1:30:00 means
// minus one and a half hours, not -1:00:00 plus 30 minutes.
type HMS struct {
	Hour   int // -23 to 23
	Minute int // 0 to 59
	Second int // 0 to 59
}

// ParseHMS parses a clock value in "H", "H:MM" or "H:MM:SS" form. A
// sign is permitted on the hour only; omitted fields default to zero.
// On error it returns the zero HMS.
//
// The spec says:
//
//	The offset has the form:
//
//	    hh[:mm[:ss]]
//
//	The minutes (mm) and seconds (ss) are optional. The hour (hh)
//	shall be required and may be a single digit. If preceded by a
//	'-', the timezone shall be east of the Prime Meridian; otherwise,
//	it shall be west (which may be indicated by an optional preceding
//	'+' ).
func ParseHMS(s string) (HMS, error) {
	if s == "" {
		return HMS{}, fmt.Errorf("empty time")
	}
	var negative bool
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return HMS{}, fmt.Errorf("expected at most 3 fields, got %d", len(parts))
	}
	var (
		t   HMS
		err error
	)
	if t.Hour, err = parseNum(parts[0], 0, 23); err != nil {
		return HMS{}, fmt.Errorf("hour %q: %w", parts[0], err)
	}
	if len(parts) > 1 {
		if t.Minute, err = parseNum(parts[1], 0, 59); err != nil {
			return HMS{}, fmt.Errorf("minute %q: %w", parts[1], err)
		}
	}
	if len(parts) > 2 {
		if t.Second, err = parseNum(parts[2], 0, 59); err != nil {
			return HMS{}, fmt.Errorf("second %q: %w", parts[2], err)
		}
	}
	if negative {
		t.Hour = -t.Hour
	}
	return t, nil
}

// String renders the value in canonical "H:MM:SS" form with the minute
// and second zero-padded, regardless of how brief the parsed input
// was: parsing "2:0" and printing yields "2:00:00".
func (t HMS) String() string {
	return fmt.Sprintf("%d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Seconds returns the value as a signed second count.
func (t HMS) Seconds() int {
	s := t.Minute*60 + t.Second
	if t.Hour < 0 {
		return t.Hour*3600 - s
	}
	return t.Hour*3600 + s
}

// Clear resets the value to zero.
func (t *HMS) Clear() {
	*t = HMS{}
}

// AddTo shifts the clock fields of d forward by t. The adjustment
// touches Hour, Minute and Second only and never carries into Day or
// Month; converting the result back through DateTime.Unix normalizes
// any overflow. Callers that need a normalized calendar value use
// caltime.Date or the Unix round trip instead.
func (t HMS) AddTo(d *caltime.DateTime) {
	min, sec := t.Minute, t.Second
	if t.Hour < 0 {
		min, sec = -min, -sec
	}
	d.Hour += t.Hour
	d.Minute += min
	d.Second += sec
}

// SubtractFrom shifts the clock fields of d backward by t. It is the
// inverse of AddTo and has the same no-carry behavior.
func (t HMS) SubtractFrom(d *caltime.DateTime) {
	min, sec := t.Minute, t.Second
	if t.Hour < 0 {
		min, sec = -min, -sec
	}
	d.Hour -= t.Hour
	d.Minute -= min
	d.Second -= sec
}
