// brokenio is a wrapper around an io.Writer. It lets us make write
// operations fail on demand.
// Typical use: You have a writer going to a file or a buffer. You write
// wrtr = NewWriter(wrtr) to wrap the old writer. Everything then
// functions as before, until the byte budget runs out and writes start
// returning errors. This is how one tests code that has to survive a
// full disk without filling a disk.

package brokenio

import (
	"fmt"
	"io"
)

// A BrknWrtrClsr is modelled on the writers in the standard library,
// but with variables controlling when writes start to fail.
// failAfter is the number of bytes accepted before writes break. A
// negative value means never break.
// If verbose is true, print out the amount of data when Close is called.
type BrknWrtrClsr struct {
	wrtr_orig io.Writer // Wrapped writer
	failAfter int
	failClose bool // should Close also return an error
	nCalled   int
	nByte     int
	verbose   bool
}

// dfltWriter sets default values for a new brokenio writer.
var dfltWriter = BrknWrtrClsr{
	wrtr_orig: nil,
	failAfter: -1,
	failClose: false,
	verbose:   false,
}

// SetVerbose sets the verbosity flag to true or false
func (w *BrknWrtrClsr) SetVerbose(newV bool) { w.verbose = newV }

// SetFailAfter says how many bytes will be accepted before writes
// start returning errors. Zero makes the very first write fail.
func (w *BrknWrtrClsr) SetFailAfter(n int) { w.failAfter = n }

// SetFailClose makes the Close method return an error as well.
func (w *BrknWrtrClsr) SetFailClose(b bool) { w.failClose = b }

// NewWriter returns a new Writer - a wrapper around the old one
func NewWriter(wIn io.Writer) *BrknWrtrClsr {
	var wOut = dfltWriter
	wOut.wrtr_orig = wIn
	return &wOut
}

// Write passes data through to the original writer and sums up the
// amount that has gone through. Once the failAfter budget is used up,
// nothing more is passed through and every call returns an error.
// A call that straddles the budget writes the part that still fits,
// which is what a filesystem does when the disk fills mid-write.
func (w *BrknWrtrClsr) Write(p []byte) (int, error) {
	w.nCalled++
	if w.failAfter < 0 {
		n, err := w.wrtr_orig.Write(p)
		w.nByte += n
		return n, err
	}
	room := w.failAfter - w.nByte
	if room <= 0 {
		return 0, fmt.Errorf("no space left after %d bytes", w.nByte)
	}
	if len(p) <= room {
		n, err := w.wrtr_orig.Write(p)
		w.nByte += n
		return n, err
	}
	n, err := w.wrtr_orig.Write(p[:room])
	w.nByte += n
	if err != nil {
		return n, err
	}
	return n, fmt.Errorf("no space left after %d bytes", w.nByte)
}

// Close wraps the Close method of the original writer, if it has one.
func (w *BrknWrtrClsr) Close() error {
	if w.verbose {
		fmt.Println("Closing", w.nCalled, "calls and", w.nByte, "bytes")
	}
	if w.failClose {
		return fmt.Errorf("close failed after %d bytes", w.nByte)
	}
	if c, ok := w.wrtr_orig.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
