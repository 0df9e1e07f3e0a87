package morse

import (
	"errors"
	"fmt"
	"io"
)

// Decoder turns a stream of dot/dash/terminator bytes into decoded characters,
// written one at a time to its sink.
//
// A Decoder holds the state of a single stream and is not safe for concurrent
// use; decode independent streams with independent Decoders.
type Decoder struct {
	w   io.Writer
	rb  readBuffer
	one [1]byte

	acc   uint // position in the prefix tree, 1 when no letter is pending
	depth int  // dots and dashes fed since the last terminator

	strict         bool
	overflowMarker byte
	unknownMarker  byte

	stats Stats
}

type DecoderOption func(d *Decoder)

// NewDecoder returns a Decoder writing decoded characters to w.
// A nil w discards the output.
//
// By default an over-long sequence is reported as [ErrInvalidSequence].
func NewDecoder(w io.Writer, opts ...DecoderOption) *Decoder {
	d := &Decoder{
		acc:           1,
		strict:        true,
		unknownMarker: unknownEntry,
	}
	d.setWriter(w)

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// WithStrict makes an over-long sequence fail with [ErrInvalidSequence].
func WithStrict() DecoderOption {
	return func(d *Decoder) {
		d.strict = true
	}
}

// WithOverflowMarker emits b for an over-long sequence instead of failing.
func WithOverflowMarker(b byte) DecoderOption {
	return func(d *Decoder) {
		d.strict = false
		d.overflowMarker = b
	}
}

// WithUnknownMarker emits b instead of '?' for codes with no assigned character.
func WithUnknownMarker(b byte) DecoderOption {
	return func(d *Decoder) {
		d.unknownMarker = b
	}
}

// WithBufferSize sets the read buffer size used by [Decoder.ReadFrom].
func WithBufferSize(size int) DecoderOption {
	return func(d *Decoder) {
		d.rb = readBuffer{buf: make([]byte, size)}
	}
}

var (
	ErrInvalidSequence = errors.New("invalid sequence")
	ErrIncomplete      = errors.New("input ended inside a letter")
)

func (d *Decoder) setWriter(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	d.w = w
}

// Reset discards the Decoder's state and makes it write to w instead,
// keeping the configured options.
func (d *Decoder) Reset(w io.Writer) {
	d.setWriter(w)
	d.acc = 1
	d.depth = 0
	d.stats = Stats{}
	d.rb.start, d.rb.end = 0, 0
}

// Feed consumes one symbol. A dot or dash extends the pending letter, any
// other byte emits it and starts a new one.
//
// The only errors are an over-long sequence in strict mode and a failed write
// to the sink. The Decoder is reset to an empty letter in both cases.
func (d *Decoder) Feed(c byte) error {
	d.stats.BytesConsumed++

	switch symbolLUT[c] {
	case SymbolDot:
		d.push(0)
		return nil
	case SymbolDash:
		d.push(1)
		return nil
	}

	acc, depth := d.acc, d.depth
	d.acc, d.depth = 1, 0
	d.stats.Letters++

	out, ok := Lookup(acc)
	if !ok {
		d.stats.Overflows++
		if d.strict {
			return fmt.Errorf("[morse] %d symbols before terminator, at most %d fit: %w", depth, MaxSymbols, ErrInvalidSequence)
		}
		return d.emit(d.overflowMarker)
	}

	if out == unknownEntry {
		d.stats.Unknown++
		out = d.unknownMarker
	}

	return d.emit(out)
}

func (d *Decoder) push(bit uint) {
	d.depth++
	// Once past the table the value no longer matters, only that it stays out of range.
	if d.acc > TableSize {
		return
	}
	d.acc = d.acc<<1 | bit
}

func (d *Decoder) emit(c byte) error {
	var err error
	if bw, ok := d.w.(io.ByteWriter); ok {
		err = bw.WriteByte(c)
	} else {
		d.one[0] = c
		_, err = d.w.Write(d.one[:])
	}
	if err != nil {
		return err
	}
	d.stats.BytesProduced++
	return nil
}

// Write feeds every byte of p in order, stopping at the first error.
// It makes a Decoder usable as the destination of [io.Copy].
func (d *Decoder) Write(p []byte) (n int, err error) {
	for i, c := range p {
		if err := d.Feed(c); err != nil {
			return i + 1, err
		}
	}
	return len(p), nil
}

// feed implements streamFeeder. A Decoder always takes the whole window
// since its state lives in the accumulator rather than in the buffer.
func (d *Decoder) feed(in []byte) (consumed int, done bool, err error) {
	n, err := d.Write(in)
	return n, false, err
}

// ReadFrom feeds everything read from r until io.EOF, which is not returned.
// Symbols left pending at io.EOF stay pending; see [Decoder.Pending].
func (d *Decoder) ReadFrom(r io.Reader) (n int64, err error) {
	before := d.stats.BytesConsumed
	err = d.rb.feedUntilDone(r, d)
	n = d.stats.BytesConsumed - before
	if errors.Is(err, io.EOF) {
		err = nil
	}
	return n, err
}

// Pending reports whether dots or dashes have been fed since the last terminator.
func (d *Decoder) Pending() bool {
	return d.depth > 0
}

// Stats returns a snapshot of the Decoder's counters.
func (d *Decoder) Stats() Stats {
	return d.stats
}
