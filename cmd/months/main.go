// Command months is a command-line front-end for the months package.
// It performs month arithmetic and span queries on YYYY-MM values.
//
// Configuration is read from months.toml (or .yaml/.json) in the working
// directory or $HOME/.config/months, then from MONTHS_* environment
// variables, then from flags.
//
// Usage:
//
//	months current --tz Asia/Tokyo
//	months add 2019-12 1
//	months period 2019-03 2019-01
//	months shift 2019-01/2019-03 3
//	months within 2019-01-15 2019-01/2019-03
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
