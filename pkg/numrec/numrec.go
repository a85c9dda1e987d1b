// 13 Jun 2026

// Count the records in a fastq file. A record is four lines, so we
// count line ends and divide by four. Counting "@" would be wrong,
// since ascii 64 is a legal quality character and can start a quality
// line. There are two versions. One maps the file and lets the library
// do the counting. One reads with a fixed buffer. The mmap version
// wins on big files, which is why both are here with benchmarks.

package numrec

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

const linesPerRec = 4

// fromLines turns a line count into a record count. A file that does
// not hold a whole number of records is damaged and gets an error.
func fromLines(nline int) (int, error) {
	if nline%linesPerRec != 0 {
		return 0, fmt.Errorf("%d lines is not a whole number of %d line records", nline, linesPerRec)
	}
	return nline / linesPerRec, nil
}

// ByMmap maps the file and counts newlines in the mapped region.
func ByMmap(fname string) (int, error) {
	var fp *os.File
	var err error
	var mm mmap.MMap
	if fp, err = os.Open(fname); err != nil {
		return 0, err
	}
	defer fp.Close()
	if mm, err = mmap.Map(fp, mmap.RDONLY, 0); err != nil {
		return 0, err
	}
	defer mm.Unmap()
	nline := bytes.Count(mm, []byte{'\n'})
	if len(mm) > 0 && mm[len(mm)-1] != '\n' {
		nline++ // unterminated last line still counts
	}
	return fromLines(nline)
}

// ByReading reads the file with a buffer of bufsize bytes and counts
// line ends on the way through.
func ByReading(fname string, bufsize int) (int, error) {
	var fp io.ReadCloser
	var err error
	if fp, err = os.Open(fname); err != nil {
		return 0, err
	}
	defer fp.Close()

	buf := make([]byte, bufsize)
	nline := 0
	var last byte = '\n'
	for {
		n, err := fp.Read(buf)
		if n > 0 {
			nline += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}
	if last != '\n' {
		nline++
	}
	return fromLines(nline)
}

// Main counts the records in fname. It tries the mapped version first
// and falls back to plain reading if the map fails, which happens on
// empty files on some systems.
func Main(fname string) (int, error) {
	if _, err := os.Stat(fname); err != nil {
		return 0, err
	}
	if n, err := ByMmap(fname); err == nil {
		return n, nil
	}
	return ByReading(fname, 64*1024)
}
