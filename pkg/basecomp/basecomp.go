// 14 Jun 2026

// Package basecomp tallies the base composition of a fastq file,
// position by position. It is mostly a sanity check on generated
// data. Every byte of a sequence line should be one of ATCG and, for
// uniform random data, the four counts at each position should come
// out roughly level.
package basecomp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andrew-torda/matrix"
	. "github.com/david-ta-ming/fastqgen/pkg/fastq/common"
)

// A Tally holds, for each position along a read, how often each
// nucleotide turned up there.
// counts.Mat looks like [number_of_nucleotides][length_of_read]
type Tally struct {
	counts  *matrix.FMatrix2d
	mapping [256]int8 // nucleotide -> row in counts, -1 elsewhere
	NRec    int       // records seen
	seqlen  int
}

// newTally sets up the mapping and the count table for reads of
// seqlen bases.
func newTally(seqlen int) *Tally {
	t := &Tally{seqlen: seqlen}
	for i := range t.mapping {
		t.mapping[i] = -1
	}
	for i, c := range Nucleotides {
		t.mapping[c] = int8(i)
	}
	t.counts = matrix.NewFMatrix2d(len(Nucleotides), seqlen)
	return t
}

// readLine gets the next line without its newline. At the end of the
// file it returns io.EOF, but only once any unterminated last line
// has been handed out.
func readLine(brdr *bufio.Reader) ([]byte, error) {
	line, err := brdr.ReadBytes('\n')
	if err == io.EOF && len(line) > 0 {
		return line, nil
	}
	if err != nil {
		return nil, err
	}
	return line[:len(line)-1], nil
}

// addseq folds one sequence line into the counts.
func (t *Tally) addseq(s []byte) error {
	if len(s) != t.seqlen {
		return fmt.Errorf("read of length %d in a file of %d bp reads", len(s), t.seqlen)
	}
	for i, c := range s {
		row := t.mapping[c]
		if row < 0 {
			return fmt.Errorf("byte %q at position %d is not a nucleotide", c, i)
		}
		t.counts.Mat[row][i]++
	}
	return nil
}

// FromReader tallies every record it can pull from rdr. All reads
// must be the same length. The first record decides that length.
func FromReader(rdr io.Reader) (*Tally, error) {
	brdr := bufio.NewReader(rdr)
	var t *Tally
	for {
		id, err := readLine(brdr)
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if len(id) == 0 || id[0] != '@' {
			return nil, fmt.Errorf("record %d: identifier line %q does not start with @", t.nrec()+1, id)
		}
		seq, err := readLine(brdr)
		if err != nil {
			return nil, fmt.Errorf("record %d: missing sequence line", t.nrec()+1)
		}
		if t == nil {
			t = newTally(len(seq))
		}
		if err := t.addseq(seq); err != nil {
			return nil, fmt.Errorf("record %d: %w", t.NRec+1, err)
		}
		plus, err := readLine(brdr)
		if err != nil || len(plus) == 0 || plus[0] != '+' {
			return nil, fmt.Errorf("record %d: missing + line", t.NRec+1)
		}
		qual, err := readLine(brdr)
		if err != nil || len(qual) != len(seq) {
			return nil, fmt.Errorf("record %d: quality line does not match sequence length", t.NRec+1)
		}
		t.NRec++
	}
	if t == nil {
		return nil, fmt.Errorf("no records found")
	}
	return t, nil
}

// nrec is NRec that tolerates a nil tally, for error messages before
// the first record has been seen.
func (t *Tally) nrec() int {
	if t == nil {
		return 0
	}
	return t.NRec
}

// FromFile opens fname and tallies it.
func FromFile(fname string) (*Tally, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return FromReader(fp)
}

// SeqLen is the read length the tally was built over.
func (t *Tally) SeqLen() int { return t.seqlen }

// Count returns how often base c was seen at position pos.
func (t *Tally) Count(c byte, pos int) int {
	row := t.mapping[c]
	if row < 0 || pos < 0 || pos >= t.seqlen {
		return 0
	}
	return int(t.counts.Mat[row][pos])
}

// Total returns how often base c was seen anywhere.
func (t *Tally) Total(c byte) int {
	row := t.mapping[c]
	if row < 0 {
		return 0
	}
	var n float32
	for _, v := range t.counts.Mat[row] {
		n += v
	}
	return int(n)
}

// Frac returns the fraction of all bases which were c.
func (t *Tally) Frac(c byte) float64 {
	total := t.NRec * t.seqlen
	if total == 0 {
		return 0
	}
	return float64(t.Total(c)) / float64(total)
}

// String formats the overall composition, one line per nucleotide.
func (t *Tally) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d records of %d bp\n", t.NRec, t.seqlen)
	for _, c := range Nucleotides {
		fmt.Fprintf(&sb, "%c %10d %6.4f\n", c, t.Total(c), t.Frac(c))
	}
	return sb.String()
}
