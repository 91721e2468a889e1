package ioutil_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/urikit/internal/ioutil"
)

var errWrite = errors.New("write failed")

// limitWriter fails once more than limit bytes are requested.
type limitWriter struct {
	limit int
	buf   bytes.Buffer
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if w.buf.Len()+len(p) > w.limit {
		n := w.limit - w.buf.Len()
		w.buf.Write(p[:n])
		return n, errWrite
	}
	return w.buf.Write(p)
}

func TestCountingWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cw := ioutil.GetCountingWriter(&buf)
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteString("http")
	cw.WriteString("://")
	cw.WriteString("example.com:80/a")

	num, err := cw.Result()
	if err != nil {
		t.Fatalf("cw.Result() error = %v, want nil", err)
	}
	if got, want := buf.String(), "http://example.com:80/a"; got != want {
		t.Errorf("written = %q, want %q", got, want)
	}
	if num != buf.Len() {
		t.Errorf("cw.Result() = %d, want %d", num, buf.Len())
	}
}

func TestCountingWriter_Error(t *testing.T) {
	t.Parallel()

	w := &limitWriter{limit: 6}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteString("http")
	cw.WriteString("://")
	if n, err := cw.WriteString("example.com"); n != 0 || err == nil {
		t.Errorf("cw.WriteString() after error = (%d, %v), want (0, error)", n, err)
	}

	num, err := cw.Result()
	if diff := cmp.Diff(err, errWrite, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("cw.Result() error = %v, want %v\ndiff (-got +want):\n%v", err, errWrite, diff)
	}
	if num != 6 {
		t.Errorf("cw.Result() = %d, want 6", num)
	}
	if got, want := w.buf.String(), "http:/"; got != want {
		t.Errorf("written = %q, want %q", got, want)
	}
}

func TestCountingWriter_Reuse(t *testing.T) {
	t.Parallel()

	cw := ioutil.GetCountingWriter(&limitWriter{limit: 0})
	cw.WriteString("x")
	ioutil.FreeCountingWriter(cw)

	var buf bytes.Buffer
	cw = ioutil.GetCountingWriter(&buf)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString("ok")
	if num, err := cw.Result(); num != 2 || err != nil {
		t.Errorf("cw.Result() = (%d, %v), want (2, nil)", num, err)
	}
}
