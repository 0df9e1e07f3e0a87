package morse

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// Stream pairs a Morse source with the destination of its decoded text.
type Stream struct {
	R io.Reader
	W io.Writer
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

// DecodeStreams decodes every stream with its own Decoder, running at most
// limit of them at once (no limit when limit <= 0).
//
// The first failing stream cancels the others, which stop at their next read.
// The returned Stats are indexed like streams.
func DecodeStreams(ctx context.Context, limit int, streams []Stream, opts ...DecoderOption) ([]Stats, error) {
	stats := make([]Stats, len(streams))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, s := range streams {
		g.Go(func() error {
			st, err := Decode(s.W, ctxReader{ctx: ctx, r: s.R}, opts...)
			stats[i] = st
			if err != nil {
				return fmt.Errorf("[morse] stream %d: %w", i, err)
			}
			return nil
		})
	}

	return stats, g.Wait()
}
