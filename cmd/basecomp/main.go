// 15 Jun 2026

package main

import (
	"fmt"
	"os"

	"github.com/david-ta-ming/fastqgen/pkg/basecomp"
	. "github.com/david-ta-ming/fastqgen/pkg/fastq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "filename")
}

func mymain() int {
	if len(os.Args) != 2 {
		usage()
		return ExitUsageError
	}
	tally, err := basecomp.FromFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitFailure
	}
	fmt.Print(tally)
	return ExitSuccess
}

func main() { os.Exit(mymain()) }
