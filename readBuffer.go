package morse

import (
	"io"
)

const defaultReadBufSize = 32 * 1024

type streamFeeder interface {
	feed(in []byte) (consumed int, done bool, err error)
}

type readBuffer struct {
	buf        []byte
	start, end int
}

func (rb *readBuffer) init() {
	if len(rb.buf) == 0 {
		rb.buf = make([]byte, defaultReadBufSize)
	}
}

func (rb *readBuffer) window() []byte {
	return rb.buf[rb.start:rb.end]
}

func (rb *readBuffer) advance(consumed int) {
	if consumed <= 0 {
		return
	}
	rb.start += consumed
	if rb.start >= rb.end {
		rb.start, rb.end = 0, 0
	}
}

func (rb *readBuffer) compact() {
	if rb.start == 0 || rb.start == rb.end {
		return
	}
	copy(rb.buf, rb.buf[rb.start:rb.end])
	rb.end -= rb.start
	rb.start = 0
}

func (rb *readBuffer) readMore(r io.Reader) (int, error) {
	if rb.end == len(rb.buf) {
		rb.compact()
	}
	if rb.end == len(rb.buf) {
		return 0, io.ErrShortBuffer
	}
	n, err := r.Read(rb.buf[rb.end:])
	if n > 0 {
		rb.end += n
	}
	return n, err
}

// feedUntilDone reads from r and hands every window to feeder until the feeder
// reports done or the reader fails. Bytes returned together with an error are
// fed before the error is returned, so the final chunk before io.EOF is kept.
func (rb *readBuffer) feedUntilDone(r io.Reader, feeder streamFeeder) error {
	rb.init()

	for {
		_, readErr := rb.readMore(r)

		if rb.end > rb.start {
			consumed, done, err := feeder.feed(rb.window())
			rb.advance(consumed)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}

		if readErr != nil {
			return readErr
		}
	}
}
