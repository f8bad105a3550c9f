package posixtz

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Timezone
		wantErr bool
	}{
		{
			in:   "EST5",
			want: Timezone{StdName: "EST", StdOffset: HMS{Hour: 5}},
		},
		{
			in:   "MST7",
			want: Timezone{StdName: "MST", StdOffset: HMS{Hour: 7}},
		},
		{
			in:   "UTC0",
			want: Timezone{StdName: "UTC"},
		},
		{
			in: "EST5EDT,M3.2.0/2:00:00,M11.1.0/2:00:00",
			want: Timezone{
				StdName:   "EST",
				StdOffset: HMS{Hour: 5},
				DSTName:   "EDT",
				DSTOffset: HMS{Hour: 4},
				DSTStart:  Rule{Month: time.March, Week: 2, Weekday: time.Sunday, Time: HMS{Hour: 2}, Valid: true},
				STDStart:  Rule{Month: time.November, Week: 1, Weekday: time.Sunday, Time: HMS{Hour: 2}, Valid: true},
			},
		},
		{
			// Explicit dst offset, default rule times.
			in: "EST5EDT4:00:00,M3.2.0,M11.1.0",
			want: Timezone{
				StdName:   "EST",
				StdOffset: HMS{Hour: 5},
				DSTName:   "EDT",
				DSTOffset: HMS{Hour: 4},
				DSTStart:  Rule{Month: time.March, Week: 2, Weekday: time.Sunday, Time: HMS{Hour: 2}, Valid: true},
				STDStart:  Rule{Month: time.November, Week: 1, Weekday: time.Sunday, Time: HMS{Hour: 2}, Valid: true},
			},
		},
		{
			// Southern hemisphere, east of UTC.
			in: "AEST-10AEDT,M10.1.0,M4.1.0/3",
			want: Timezone{
				StdName:   "AEST",
				StdOffset: HMS{Hour: -10},
				DSTName:   "AEDT",
				DSTOffset: HMS{Hour: -11},
				DSTStart:  Rule{Month: time.October, Week: 1, Weekday: time.Sunday, Time: HMS{Hour: 2}, Valid: true},
				STDStart:  Rule{Month: time.April, Week: 1, Weekday: time.Sunday, Time: HMS{Hour: 3}, Valid: true},
			},
		},
		{
			in: "CET-1CEST,M3.5.0,M10.5.0/3",
			want: Timezone{
				StdName:   "CET",
				StdOffset: HMS{Hour: -1},
				DSTName:   "CEST",
				DSTOffset: HMS{Hour: -2},
				DSTStart:  Rule{Month: time.March, Week: 5, Weekday: time.Sunday, Time: HMS{Hour: 2}, Valid: true},
				STDStart:  Rule{Month: time.October, Week: 5, Weekday: time.Sunday, Time: HMS{Hour: 3}, Valid: true},
			},
		},
		{
			// Defaulted dst offset crosses zero: BST is UTC+1.
			in: "GMT0BST,M3.5.0/1,M10.5.0",
			want: Timezone{
				StdName:   "GMT",
				DSTName:   "BST",
				DSTOffset: HMS{Hour: -1},
				DSTStart:  Rule{Month: time.March, Week: 5, Weekday: time.Sunday, Time: HMS{Hour: 1}, Valid: true},
				STDStart:  Rule{Month: time.October, Week: 5, Weekday: time.Sunday, Time: HMS{Hour: 2}, Valid: true},
			},
		},
		{
			// Quoted name for a zone without an abbreviation.
			in:   "<+0845>-8:45:15",
			want: Timezone{StdName: "+0845", StdOffset: HMS{Hour: -8, Minute: 45, Second: 15}},
		},
		{
			in: "<-04>4<-03>,M9.1.6/0,M4.1.6/0",
			want: Timezone{
				StdName:   "-04",
				StdOffset: HMS{Hour: 4},
				DSTName:   "-03",
				DSTOffset: HMS{Hour: 3},
				DSTStart:  Rule{Month: time.September, Week: 1, Weekday: time.Saturday, Valid: true},
				STDStart:  Rule{Month: time.April, Week: 1, Weekday: time.Saturday, Valid: true},
			},
		},
		{in: "", wantErr: true},
		{in: "EST", wantErr: true},                          // missing offset
		{in: "ES5", wantErr: true},                          // name too short
		{in: "123", wantErr: true},                          // no name
		{in: "EST25", wantErr: true},                        // offset out of range
		{in: "<EST", wantErr: true},                         // unterminated quote
		{in: "<AB>5", wantErr: true},                        // quoted name too short
		{in: "EST5EDT", wantErr: true},                      // dst name without rules
		{in: "EST5EDT,M3.2.0", wantErr: true},               // only one rule
		{in: "EST5EDT,M3.2.0,M11.1.0,M1.1.0", wantErr: true}, // too many rules
		{in: "EST5EDT,garbage,M11.1.0", wantErr: true},      // bad rule
		{in: "EST5<E DT>,M3.2.0,M11.1.0", wantErr: true},    // bad character in quoted name
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			// On error the zero value is returned, matching Clear.
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestTimezone_String(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"EST5", "EST5:00:00"},
		{"EST5EDT,M3.2.0,M11.1.0", "EST5:00:00EDT4:00:00,M3.2.0/2:00:00,M11.1.0/2:00:00"},
		{"AEST-10AEDT,M10.1.0,M4.1.0/3", "AEST-10:00:00AEDT-11:00:00,M10.1.0/2:00:00,M4.1.0/3:00:00"},
		{"<+0845>-8:45:15", "<+0845>-8:45:15"},
	}
	for _, tt := range tests {
		z, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tt.in, err)
		}
		if got := z.String(); got != tt.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestParse_RoundTrip checks that the canonical form reparses to the
// same value.
func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		"EST5",
		"MST7",
		"UTC0",
		"EST5EDT,M3.2.0/2:00:00,M11.1.0/2:00:00",
		"EST5EDT4:00:00,M3.2.0,M11.1.0",
		"AEST-10AEDT,M10.1.0,M4.1.0/3",
		"CET-1CEST,M3.5.0,M10.5.0/3",
		"GMT0BST,M3.5.0/1,M10.5.0",
		"<+0845>-8:45:15",
		"<-04>4<-03>,M9.1.6/0,M4.1.6/0",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			first, err := Parse(in)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", in, err)
			}
			second, err := Parse(first.String())
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", first.String(), err)
			}
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("round trip through %q mismatch (-first +second):\n%s", first.String(), diff)
			}
		})
	}
}

func TestTimezone_HasDST(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"EST5", false},
		{"UTC0", false},
		{"EST5EDT,M3.2.0,M11.1.0", true},
		{"AEST-10AEDT,M10.1.0,M4.1.0/3", true},
	}
	for _, tt := range tests {
		z, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tt.in, err)
		}
		if got := z.HasDST(); got != tt.want {
			t.Errorf("Parse(%q).HasDST() = %v, want %v", tt.in, got, tt.want)
		}
	}

	// A hand-built value with a single valid rule does not observe DST.
	z := Timezone{DSTStart: Rule{Month: time.March, Week: 2, Weekday: time.Sunday, Valid: true}}
	if z.HasDST() {
		t.Error("HasDST() = true for a timezone with only one valid rule")
	}
}

func TestTimezone_UTCOffsets(t *testing.T) {
	z, err := Parse("EST5EDT,M3.2.0,M11.1.0")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got, want := z.StandardUTCOffset(), -18000; got != want {
		t.Errorf("StandardUTCOffset() = %d, want %d", got, want)
	}
	if got, want := z.DSTUTCOffset(), -14400; got != want {
		t.Errorf("DSTUTCOffset() = %d, want %d", got, want)
	}

	z, err = Parse("AEST-10AEDT,M10.1.0,M4.1.0/3")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got, want := z.StandardUTCOffset(), 36000; got != want {
		t.Errorf("StandardUTCOffset() = %d, want %d", got, want)
	}
	if got, want := z.DSTUTCOffset(), 39600; got != want {
		t.Errorf("DSTUTCOffset() = %d, want %d", got, want)
	}
}

func TestTimezone_Clear(t *testing.T) {
	z, err := Parse("EST5EDT,M3.2.0,M11.1.0")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	z.Clear()
	if diff := cmp.Diff(Timezone{}, z); diff != "" {
		t.Errorf("Clear() mismatch (-want +got):\n%s", diff)
	}
}
