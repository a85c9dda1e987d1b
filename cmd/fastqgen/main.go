// 15 Jun 2026

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"github.com/david-ta-ming/fastqgen/pkg/basecomp"
	. "github.com/david-ta-ming/fastqgen/pkg/fastq/common"
	"github.com/david-ta-ming/fastqgen/pkg/fastqgen"
	"github.com/david-ta-ming/fastqgen/pkg/numrec"
)

type cmdFlag struct {
	iseed    int64
	outname  string
	progress bool
	compo    bool
	recount  bool
}

func usage(f *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] sequenceLength fileSizeInMB")
	f.PrintDefaults()
}

// generate opens the sink, runs the generator and makes sure the file
// is flushed and closed on every path before we get back to mymain.
func generate(args *fastqgen.Args, fname string, toStdout, progress bool) (fastqgen.Stats, error) {
	var stats fastqgen.Stats
	fp := os.Stdout
	if !toStdout {
		var err error
		if fp, err = os.Create(fname); err != nil {
			return stats, err
		}
	}
	bwrtr := bufio.NewWriter(fp)
	args.Wrtr = bwrtr
	if progress {
		args.Progress = progressbar.DefaultBytes(args.TargetSize, "writing")
	}

	stats, err := fastqgen.Mymain(args)
	if err == nil {
		err = bwrtr.Flush()
	}
	if toStdout {
		return stats, err
	}
	if err != nil {
		fp.Close()
		return stats, err
	}
	return stats, fp.Close()
}

func mymain() int {
	f := flag.NewFlagSet("fastqgen", flag.ExitOnError)
	var flags cmdFlag
	f.Int64Var(&flags.iseed, "r", 0, "random number seed, 0 means seed from the clock")
	f.StringVar(&flags.outname, "o", "", "output file name, \"-\" for stdout")
	f.BoolVar(&flags.progress, "p", false, "show progress while writing")
	f.BoolVar(&flags.compo, "c", false, "print the base composition of the finished file")
	f.BoolVar(&flags.recount, "n", false, "recount the records in the finished file")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		return ExitUsageError
	}
	if f.NArg() != 2 {
		usage(f)
		return ExitUsageError
	}

	const emsg = "Failed converting %s to positive integer\n"
	var seqlen, sizeMB uint64
	var err error
	if seqlen, err = strconv.ParseUint(f.Args()[0], 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Args()[0])
		return ExitFailure
	}
	if sizeMB, err = strconv.ParseUint(f.Args()[1], 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Args()[1])
		return ExitFailure
	}
	if seqlen == 0 || sizeMB == 0 {
		fmt.Fprintln(os.Stderr, "Error: sequence length and file size must be positive")
		return ExitFailure
	}

	args := fastqgen.Args{
		Iseed:      flags.iseed,
		Len:        int(seqlen),
		TargetSize: int64(sizeMB) * MByte,
	}
	fname := flags.outname
	toStdout := fname == "-"
	if fname == "" {
		fname = fastqgen.Filename(time.Now())
	}

	stats, err := generate(&args, fname, toStdout, flags.progress)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error writing FASTQ file:", err)
		return ExitFailure
	}

	if !toStdout {
		fmt.Println("FASTQ file generated successfully:", fname)
		fmt.Println("Sequence length:", seqlen, "bp")
		fmt.Println("Target file size:", sizeMB, "MB")
		fmt.Println("Wrote", humanize.Comma(int64(stats.NRec)), "records,",
			humanize.Bytes(uint64(stats.NBytes)))
	}

	if flags.recount && !toStdout {
		if n, err := numrec.Main(fname); err != nil {
			fmt.Fprintln(os.Stderr, "Recount:", err)
			return ExitFailure
		} else if n != stats.NRec {
			fmt.Fprintln(os.Stderr, "Recount: file has", n, "records, generator wrote", stats.NRec)
			return ExitFailure
		} else {
			fmt.Println("Recount agrees:", humanize.Comma(int64(n)), "records")
		}
	}
	if flags.compo && !toStdout {
		if tally, err := basecomp.FromFile(fname); err != nil {
			fmt.Fprintln(os.Stderr, "Composition:", err)
			return ExitFailure
		} else {
			fmt.Print(tally)
		}
	}
	return ExitSuccess
}

func main() { os.Exit(mymain()) }
