// Package ioutil provides I/O helpers for the rendering code.
package ioutil

//go:generate go tool errtrace -w .

import (
	"io"
	"sync"

	"braces.dev/errtrace"
)

// CountingWriter wraps an [io.Writer], sums the written bytes and remembers the first error.
// After the first error every write is a no-op, so a sequence of writes
// can be checked once with [CountingWriter.Result].
type CountingWriter struct {
	w   io.Writer
	num int
	err error
}

// WriteString implements [io.StringWriter].
func (cw *CountingWriter) WriteString(s string) (n int, err error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err = io.WriteString(cw.w, s)
	cw.num += n
	if err != nil {
		cw.err = err
	}
	return n, errtrace.Wrap(err)
}

// Result returns the number of bytes written and the first error.
func (cw *CountingWriter) Result() (num int, err error) {
	return cw.num, errtrace.Wrap(cw.err)
}

var cntWrtPool = &sync.Pool{
	New: func() any { return &CountingWriter{} },
}

// GetCountingWriter returns a pooled writer counting bytes written to w.
// Release it with [FreeCountingWriter].
func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := cntWrtPool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

func FreeCountingWriter(cw *CountingWriter) {
	*cw = CountingWriter{}
	cntWrtPool.Put(cw)
}
