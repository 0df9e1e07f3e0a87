package morse

import (
	"errors"
	"fmt"
	"io"
)

var errDestinationTooSmall = errors.New("destination must be at least MaxLength of source")

// sliceWriter appends into a buffer whose capacity the caller has already checked.
type sliceWriter struct {
	buf []byte
}

func (s *sliceWriter) WriteByte(c byte) error {
	s.buf = append(s.buf, c)
	return nil
}

func (s *sliceWriter) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// DecodeAll decodes an entire Morse buffer from src into dst in a single call.
//
// dst must be at least MaxLength(len(src)) bytes. Returns the number of
// decoded bytes written to dst and any error. Dots and dashes after the last
// terminator are reported with [ErrIncomplete]; n is valid in that case.
func DecodeAll(dst, src []byte, opts ...DecoderOption) (n int, err error) {
	if len(dst) < MaxLength(len(src)) {
		return 0, errDestinationTooSmall
	}

	sw := &sliceWriter{buf: dst[:0]}
	d := NewDecoder(sw, opts...)

	_, err = d.Write(src)
	n = len(sw.buf)
	if err != nil {
		return n, err
	}
	if d.Pending() {
		return n, fmt.Errorf("[morse] %d trailing symbols without terminator: %w", d.depth, ErrIncomplete)
	}

	return n, nil
}

// Decode reads Morse symbols from r until io.EOF and writes the decoded text
// to w. Symbols left pending at io.EOF are reported with [ErrIncomplete].
func Decode(w io.Writer, r io.Reader, opts ...DecoderOption) (Stats, error) {
	d := NewDecoder(w, opts...)

	if _, err := d.ReadFrom(r); err != nil {
		return d.Stats(), err
	}
	if d.Pending() {
		return d.Stats(), fmt.Errorf("[morse] %d trailing symbols without terminator: %w", d.depth, ErrIncomplete)
	}

	return d.Stats(), nil
}
