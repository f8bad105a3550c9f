// Command tzclock converts a UTC instant to local time under a POSIX
// timezone string and reports the daylight-saving status together with
// the bracketing transition instants.
//
//	tzclock [--utc 1625140800] 'EST5EDT,M3.2.0/2:00:00,M11.1.0/2:00:00'
//
// With no --utc flag the current time is converted.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/ngrash/go-localtime/localtime"
	"github.com/ngrash/go-localtime/posixtz"
)

var (
	utcFlag     = pflag.Int64P("utc", "u", 0, "UTC instant to convert as a Unix timestamp, default now")
	verboseFlag = pflag.BoolP("verbose", "v", false, "log the parsed timezone fields")
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := run(); err != nil {
		slog.Error("tzclock failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	pflag.Parse()
	args := pflag.Args()
	if len(args) != 1 {
		return fmt.Errorf("usage: tzclock [--utc N] <POSIX TZ string>")
	}

	z, err := posixtz.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parsing %q: %w", args[0], err)
	}
	if *verboseFlag {
		slog.Info("parsed timezone",
			"canonical", z.String(),
			"std", z.StdName, "stdOffset", z.StdOffset.String(),
			"dst", z.DSTName, "dstOffset", z.DSTOffset.String(),
			"hasDST", z.HasDST())
	}

	c := localtime.Converter{TZ: z}
	if pflag.Lookup("utc").Changed {
		c.Convert(*utcFlag)
	} else {
		c.ConvertNow()
	}

	meridiem := "AM"
	if c.Local.IsPM() {
		meridiem = "PM"
	}
	fmt.Printf("local     = %s (%s, %d %s)\n", c.Local, c.Local.Weekday, c.Local.Hour12(), meridiem)
	fmt.Println("position  =", c.Position)
	fmt.Println("isDST     =", c.IsDST())
	if c.Position != localtime.NoDST {
		fmt.Printf("dst start = %s local (%d utc)\n", c.DSTStartLocal, c.DSTStart)
		fmt.Printf("std start = %s local (%d utc)\n", c.StandardStartLocal, c.StandardStart)
	}
	return nil
}
