// 12 Jun 2026

// Package fastqgen writes simulated fastq files for testing pipelines.
// Each record is four lines: an "@SEQ" identifier, a random sequence
// over ATCG, a bare "+", and a random quality string of the same
// length. Records are appended until a byte budget is reached.
// The content is random with no biological meaning.
package fastqgen

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	. "github.com/david-ta-ming/fastqgen/pkg/fastq/common"
)

// Args is the set of arguments passed to the main function
type Args struct {
	Iseed      int64     // random number seed, 0 means take one from the clock
	Wrtr       io.Writer // where records go
	Progress   io.Writer // optional, gets a copy of everything written
	Len        int       // length of each sequence in bp
	TargetSize int64     // bytes. Stop once at least this much is written
}

// Stats says what a run did.
type Stats struct {
	NRec   int   // records written
	NBytes int64 // bytes written. At least TargetSize on success
}

// appendSeq adds seqlen random nucleotides to buf
func appendSeq(buf []byte, seqlen int, rnd *rand.Rand) []byte {
	l := int32(len(Nucleotides))
	for i := 0; i < seqlen; i++ {
		buf = append(buf, Nucleotides[rnd.Int31n(l)])
	}
	return buf
}

// appendQual adds seqlen random quality characters, uniform over the
// 41 codes from QualMin to QualMax.
func appendQual(buf []byte, seqlen int, rnd *rand.Rand) []byte {
	n := int32(QualMax - QualMin + 1)
	for i := 0; i < seqlen; i++ {
		buf = append(buf, QualMin+byte(rnd.Int31n(n)))
	}
	return buf
}

// record assembles the four lines of entry number n into buf, which is
// reused from call to call.
func record(buf []byte, n int, seqlen int, rnd *rand.Rand) []byte {
	buf = buf[:0]
	buf = append(buf, "@SEQ"...)
	buf = strconv.AppendInt(buf, int64(n), 10)
	buf = append(buf, '\n')
	buf = appendSeq(buf, seqlen, rnd)
	buf = append(buf, "\n+\n"...)
	buf = appendQual(buf, seqlen, rnd)
	buf = append(buf, '\n')
	return buf
}

// Filename is the default output name, built from the wall clock as
// simulated_YYYYMMDDHHMMSS.fastq. Two runs in the same second get the
// same name and the later run overwrites the earlier one. We do not
// try to detect this. A caller who cares gives its own name.
func Filename(t time.Time) string {
	return "simulated_" + t.Format("20060102150405") + ".fastq"
}

// Mymain writes whole records to args.Wrtr until at least
// args.TargetSize bytes have gone out. The last record is never cut
// short, so the output may run over the target by up to one record.
// Identifiers count up from @SEQ1 with no gaps. The first write error
// ends the run.
func Mymain(args *Args) (Stats, error) {
	var stats Stats
	if args.Len <= 0 {
		return stats, fmt.Errorf("sequence length must be positive, not %d", args.Len)
	}
	if args.TargetSize <= 0 {
		return stats, fmt.Errorf("target size must be positive, not %d", args.TargetSize)
	}
	if args.Wrtr == nil {
		return stats, fmt.Errorf("no writer for output")
	}

	iseed := args.Iseed
	if iseed == 0 {
		iseed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(iseed))

	wrtr := args.Wrtr
	if args.Progress != nil {
		wrtr = io.MultiWriter(args.Wrtr, args.Progress)
	}

	buf := make([]byte, 0, 2*args.Len+16)
	for n := 1; stats.NBytes < args.TargetSize; n++ {
		buf = record(buf, n, args.Len, rnd)
		if _, err := wrtr.Write(buf); err != nil {
			return stats, fmt.Errorf("writing record %d: %w", n, err)
		}
		stats.NRec = n
		stats.NBytes += int64(len(buf))
	}
	return stats, nil
}
