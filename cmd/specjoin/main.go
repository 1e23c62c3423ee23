// Command specjoin stitches overlapping spectra and converts them to energy.
//
// Usage:
//
//	specjoin <command> [flags]
//
// Examples:
//
//	specjoin join -o joined.csv blue.csv red.csv
//	specjoin energy -o joined-ev.fits joined.fits
//	specjoin nair --from 300 --to 900
package main

import (
	"os"

	"github.com/cwbudde/algo-spectro/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
