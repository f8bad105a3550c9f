// Command tzrules parses a POSIX timezone string and prints its fields,
// its canonical normalization and the daylight-saving transition
// instants for a given year.
//
//	tzrules [--year 2021] 'EST5EDT,M3.2.0/2:00:00,M11.1.0/2:00:00'
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/ngrash/go-localtime/caltime"
	"github.com/ngrash/go-localtime/posixtz"
)

var yearFlag = pflag.IntP("year", "y", time.Now().UTC().Year(), "year to compute the transitions for")

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run() error {
	pflag.Parse()
	args := pflag.Args()
	if len(args) != 1 {
		return fmt.Errorf("usage: tzrules [--year N] <POSIX TZ string>")
	}

	z, err := posixtz.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parsing %q: %w", args[0], err)
	}

	fmt.Println("canonical =", z)
	fmt.Println("std name  =", z.StdName)
	fmt.Printf("std offset = %s (UTC%+ds)\n", z.StdOffset, z.StandardUTCOffset())
	if !z.HasDST() {
		fmt.Println("no daylight saving time")
		return nil
	}
	fmt.Println("dst name  =", z.DSTName)
	fmt.Printf("dst offset = %s (UTC%+ds)\n", z.DSTOffset, z.DSTUTCOffset())

	// The start rule fires on a standard-time clock, the end rule on a
	// daylight-saving clock.
	dstUTC, dstLocal := z.DSTStart.Calculate(*yearFlag, z.StdOffset)
	stdUTC, stdLocal := z.STDStart.Calculate(*yearFlag, z.DSTOffset)

	fmt.Printf("%d transitions:\n", *yearFlag)
	printTransition("dst start", z.DSTStart, dstUTC, dstLocal)
	printTransition("std start", z.STDStart, stdUTC, stdLocal)
	return nil
}

func printTransition(label string, r posixtz.Rule, utc int64, local caltime.DateTime) {
	fmt.Printf("  %s  %s  local %s (%s)  utc %s (%d)\n",
		label, r, local, local.Weekday, caltime.FromUnix(utc), utc)
}
