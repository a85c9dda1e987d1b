// 15 Jun 2026

// Open a fastq file and count its records. Four lines make a record,
// so this is a newline count divided by four.

package main

import (
	"fmt"
	"log"
	"os"

	. "github.com/david-ta-ming/fastqgen/pkg/fastq/common"
	"github.com/david-ta-ming/fastqgen/pkg/numrec"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "filename")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(ExitUsageError)
	}
	fname := os.Args[1]
	var err error
	var nRec int
	if nRec, err = numrec.Main(fname); err != nil {
		log.Fatal(err)
	}

	fmt.Println("got", nRec, "records")
	os.Exit(ExitSuccess)
}
