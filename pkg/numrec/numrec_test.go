package numrec_test

import (
	"os"
	"testing"

	"github.com/david-ta-ming/fastqgen/pkg/fastq/common"
	"github.com/david-ta-ming/fastqgen/pkg/fastqgen"
	"github.com/david-ta-ming/fastqgen/pkg/numrec"
)

var smalltestArg = fastqgen.Args{
	Iseed:      1637,
	Len:        150,
	TargetSize: 512 * 1024,
}

// makeTestData writes a fastq file to a temp file and returns its
// name and the number of records in it.
func makeTestData() (string, int, error) {
	args := smalltestArg
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", 0, err
	}
	args.Wrtr = f_tmp
	defer f_tmp.Close()

	stats, err := fastqgen.Mymain(&args)
	if err != nil {
		return "", 0, err
	}
	return f_tmp.Name(), stats.NRec, nil
}

func TestByMmap(t *testing.T) {
	fname, nrec, err := makeTestData()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	if i, err := numrec.ByMmap(fname); err != nil {
		t.Fatal(err)
	} else if i != nrec {
		t.Fatal("got", i, "expected", nrec)
	}
}

func TestByReading(t *testing.T) {
	fname, nrec, err := makeTestData()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	for _, bufsize := range []int{64, 4096, 64 * 1024} {
		if i, err := numrec.ByReading(fname, bufsize); err != nil {
			t.Fatal(err)
		} else if i != nrec {
			t.Fatal("bufsize", bufsize, "got", i, "expected", nrec)
		}
	}
}

// TestRagged checks that a file with a torn-off last record is
// reported as broken, not silently rounded.
func TestRagged(t *testing.T) {
	fname, err := common.WrtTemp("@SEQ1\nATCG\n+\nIIII\n@SEQ2\nATCG\n")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	if _, err := numrec.ByReading(fname, 64*1024); err == nil {
		t.Fatal("expected an error on a ragged file")
	}
	if _, err := numrec.ByMmap(fname); err == nil {
		t.Fatal("expected an error on a ragged file")
	}
}

// TestNoFinalNewline makes sure an unterminated last line is still
// counted as a line.
func TestNoFinalNewline(t *testing.T) {
	fname, err := common.WrtTemp("@SEQ1\nATCG\n+\nIIII")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	if i, err := numrec.Main(fname); err != nil {
		t.Fatal(err)
	} else if i != 1 {
		t.Fatal("got", i, "expected 1")
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := numrec.Main("no_such_file_anywhere.fastq"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func setupbmark(b *testing.B) (string, int) {
	b.StopTimer()
	fname, nrec, err := makeTestData()
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { os.Remove(fname) })
	b.StartTimer()
	return fname, nrec
}

func BenchmarkByMmap(b *testing.B) {
	fname, nset := setupbmark(b)
	for i := 0; i < b.N; i++ {
		n, _ := numrec.ByMmap(fname)
		if n != nset {
			b.Fatal("got", n, "expected", nset)
		}
	}
}

func BenchmarkByReading64k(b *testing.B) {
	fname, nset := setupbmark(b)
	for i := 0; i < b.N; i++ {
		n, _ := numrec.ByReading(fname, 64*1024)
		if n != nset {
			b.Fatal("got", n, "expected", nset)
		}
	}
}

func BenchmarkByReading1m(b *testing.B) {
	fname, nset := setupbmark(b)
	for i := 0; i < b.N; i++ {
		n, _ := numrec.ByReading(fname, 1024*1024)
		if n != nset {
			b.Fatal("got", n, "expected", nset)
		}
	}
}
