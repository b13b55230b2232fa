package check402

import (
	"io"

	"golang.org/x/text/encoding/unicode"
)

// ReadAutoCloser wraps an io.Reader, and closes it automatically, if closable,
// once it has been completely read. Data read through it is decoded as UTF-8:
// each invalid byte sequence in the source comes out as the replacement
// character U+FFFD.
type ReadAutoCloser struct {
	r      io.Reader
	source io.Closer
}

// Read reads up to len(b) bytes from the data source into b. It returns the
// number of bytes read and any error encountered. At end of file, Read returns
// 0, io.EOF. In the EOF case, the data source will be closed.
func (a ReadAutoCloser) Read(b []byte) (n int, err error) {
	if a.r == nil {
		return 0, io.EOF
	}
	n, err = a.r.Read(b)
	if err == io.EOF {
		a.Close()
	}
	return n, err
}

// Close closes the data source associated with a, and returns the result of
// that close operation.
func (a ReadAutoCloser) Close() error {
	if a.source == nil {
		return nil
	}
	return a.source.Close()
}

// NewReadAutoCloser returns a ReadAutoCloser wrapping the supplied Reader. If
// the Reader is not a Closer, it will be wrapped in a NopCloser to make it
// closable.
func NewReadAutoCloser(r io.Reader) ReadAutoCloser {
	c, ok := r.(io.Closer)
	if !ok {
		c = io.NopCloser(r)
	}
	return ReadAutoCloser{
		r:      unicode.UTF8.NewDecoder().Reader(r),
		source: c,
	}
}
