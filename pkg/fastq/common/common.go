// 12 Jun 2026

package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// Nucleotides is the alphabet for sequence lines. Equal probability for
// each, no biology implied.
var Nucleotides = []byte{'A', 'T', 'C', 'G'}

// The quality line uses the 41 ascii codes from '!' to 'I'. This is the
// range of a phred+33 encoding, but values are drawn uniformly, not from
// any real error model.
const (
	QualMin byte = '!' // ascii 33
	QualMax byte = 'I' // ascii 73
)

// MByte is for converting the command line file size to bytes.
const MByte = 1024 * 1024

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}
