// Package localtime computes local civil time and daylight-saving
// status from Unix timestamps and POSIX timezone rules. It needs no
// timezone database, which makes it suitable for hosts that have a
// clock and a TZ string but no zoneinfo files.
package localtime

import (
	"time"

	"github.com/ngrash/go-localtime/caltime"
	"github.com/ngrash/go-localtime/posixtz"
)

// Position locates an instant relative to the daylight-saving
// transitions of the year containing it.
type Position int

const (
	// NoDST means the timezone does not observe daylight saving time.
	NoDST Position = iota
	// BeforeDST means standard time before the daylight period.
	BeforeDST
	// InDST means daylight saving time is in effect.
	InDST
	// AfterDST means standard time after the daylight period.
	AfterDST
)

func (p Position) String() string {
	switch p {
	case NoDST:
		return "NoDST"
	case BeforeDST:
		return "BeforeDST"
	case InDST:
		return "InDST"
	case AfterDST:
		return "AfterDST"
	default:
		return "<UNDEFINED>"
	}
}

// Value is a broken-down local time.
type Value struct {
	caltime.DateTime
}

// Hour12 returns the hour in 12-hour form, 1 to 12.
func (v Value) Hour12() int {
	h := v.Hour % 12
	if h == 0 {
		h = 12
	}
	return h
}

// IsAM reports whether the time is before noon.
func (v Value) IsAM() bool {
	return v.Hour < 12
}

// IsPM reports whether the time is noon or later.
func (v Value) IsPM() bool {
	return !v.IsAM()
}

// Converter converts UTC instants to local time under a single POSIX
// timezone. Each call to Convert recomputes the exported result fields
// from scratch; only the most recent result is held.
//
// The zero Converter is ready to use once TZ is set. Now may be set to
// inject a clock for testing; if nil, the system clock is used.
type Converter struct {
	TZ  posixtz.Timezone
	Now func() int64

	// Results of the most recent Convert call.

	// Position classifies Time relative to the transitions.
	Position Position
	// Time is the converted UTC instant.
	Time int64
	// Local is the wall clock reading at Time.
	Local Value

	// DSTStart and StandardStart are the UTC instants of the two
	// transitions in the year containing Time, with their local wall
	// clock readings just before the clock change. Both are zero when
	// Position is NoDST.
	DSTStart           int64
	DSTStartLocal      Value
	StandardStart      int64
	StandardStartLocal Value
}

// Convert computes the local time and daylight-saving status of the
// given UTC instant.
//
// When the zone observes daylight saving time, the two transition
// instants are computed for the year containing utc. In the northern
// hemisphere pattern the daylight period lies between them. In the
// southern hemisphere pattern the daylight period wraps the year
// boundary, so the instant is in daylight saving time when it falls
// before the standard transition or on or after the daylight
// transition; the standard block in between is reported as BeforeDST,
// it being before the daylight period that starts in the same year.
//
// A timezone whose rules are inconsistent, which Parse never produces
// but hand-built values can, is treated as observing no daylight
// saving time.
func (c *Converter) Convert(utc int64) {
	c.Time = utc
	c.Position = NoDST
	c.DSTStart, c.StandardStart = 0, 0
	c.DSTStartLocal, c.StandardStartLocal = Value{}, Value{}

	if c.TZ.HasDST() {
		year := caltime.FromUnix(utc).Year

		// POSIX states each transition time in the clock reading
		// current before the change: standard time for the start of
		// daylight saving time, daylight saving time for the end.
		var dstLocal, stdLocal caltime.DateTime
		c.DSTStart, dstLocal = c.TZ.DSTStart.Calculate(year, c.TZ.StdOffset)
		c.StandardStart, stdLocal = c.TZ.STDStart.Calculate(year, c.TZ.DSTOffset)
		c.DSTStartLocal = Value{dstLocal}
		c.StandardStartLocal = Value{stdLocal}

		if c.DSTStart < c.StandardStart {
			switch {
			case utc < c.DSTStart:
				c.Position = BeforeDST
			case utc < c.StandardStart:
				c.Position = InDST
			default:
				c.Position = AfterDST
			}
		} else {
			if utc < c.StandardStart || utc >= c.DSTStart {
				c.Position = InDST
			} else {
				c.Position = BeforeDST
			}
		}
	}

	offset := c.TZ.StdOffset
	if c.Position == InDST {
		offset = c.TZ.DSTOffset
	}
	// Full epoch conversion, not a clock-field shift: crossing
	// midnight must roll the date over.
	c.Local = Value{caltime.FromUnix(utc - int64(offset.Seconds()))}
}

// ConvertNow converts the current time.
func (c *Converter) ConvertNow() {
	c.Convert(c.now())
}

// IsDST reports whether the most recently converted instant is in
// daylight saving time.
func (c *Converter) IsDST() bool {
	return c.Position == InDST
}

// IsStandardTime reports whether the most recently converted instant
// is in standard time.
func (c *Converter) IsStandardTime() bool {
	return !c.IsDST()
}

func (c *Converter) now() int64 {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now().Unix()
}
