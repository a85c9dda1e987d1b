package basecomp_test

import (
	"strings"
	"testing"

	"github.com/david-ta-ming/fastqgen/pkg/basecomp"
	"github.com/david-ta-ming/fastqgen/pkg/fastqgen"
)

// gen builds fastq text in memory with a fixed seed.
func gen(t *testing.T, seqlen int, target int64) (string, fastqgen.Stats) {
	var sb strings.Builder
	args := fastqgen.Args{Iseed: 1637, Len: seqlen, TargetSize: target, Wrtr: &sb}
	stats, err := fastqgen.Mymain(&args)
	if err != nil {
		t.Fatal(err)
	}
	return sb.String(), stats
}

func TestTally(t *testing.T) {
	const seqlen = 80
	text, stats := gen(t, seqlen, 256*1024)
	tally, err := basecomp.FromReader(strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}
	if tally.NRec != stats.NRec {
		t.Fatal("got", tally.NRec, "records expected", stats.NRec)
	}
	if tally.SeqLen() != seqlen {
		t.Fatal("got seqlen", tally.SeqLen(), "expected", seqlen)
	}

	var total int
	for _, c := range []byte{'A', 'T', 'C', 'G'} {
		total += tally.Total(c)
	}
	if want := stats.NRec * seqlen; total != want {
		t.Fatal("tallied", total, "bases expected", want)
	}

	// Uniform draws, thousands of records. Anything far from a
	// quarter means the generator is broken, not unlucky.
	for _, c := range []byte{'A', 'T', 'C', 'G'} {
		if f := tally.Frac(c); f < 0.22 || f > 0.28 {
			t.Fatal("fraction of", string(c), "is", f)
		}
	}
}

func TestCountAgainstTotal(t *testing.T) {
	const seqlen = 12
	text, _ := gen(t, seqlen, 4096)
	tally, err := basecomp.FromReader(strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []byte{'A', 'T', 'C', 'G'} {
		var n int
		for pos := 0; pos < seqlen; pos++ {
			n += tally.Count(c, pos)
		}
		if n != tally.Total(c) {
			t.Fatal("positions of", string(c), "sum to", n, "expected", tally.Total(c))
		}
	}
}

var badfiles = []string{
	"",                                   // nothing at all
	"SEQ1\nATCG\n+\nIIII\n",              // no @
	"@SEQ1\nATXG\n+\nIIII\n",             // X is not a base
	"@SEQ1\nATCG\n+\nII\n",               // short quality line
	"@SEQ1\nATCG\nIIII\n@SEQ2\n",         // no + line
	"@SEQ1\nATCG\n+\nIIII\n@SEQ2\nAT\n+\nII\n", // lengths differ
}

func TestBroken(t *testing.T) {
	for i, s := range badfiles {
		if _, err := basecomp.FromReader(strings.NewReader(s)); err == nil {
			t.Fatal("case", i, "expected an error")
		}
	}
}

func TestNoFinalNewline(t *testing.T) {
	s := "@SEQ1\nATCG\n+\nIIII"
	tally, err := basecomp.FromReader(strings.NewReader(s))
	if err != nil {
		t.Fatal(err)
	}
	if tally.NRec != 1 {
		t.Fatal("got", tally.NRec, "expected 1")
	}
}
