package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/mnightingale/morse"
	"github.com/pkg/errors"
)

var marker = flag.String("marker", "", "emit this character for over-long sequences instead of failing")
var unknown = flag.String("unknown", "?", "character emitted for codes with no assigned letter")
var jobs = flag.Int("j", 4, "number of files decoded concurrently")
var verbose = flag.Bool("verbose", false, "print decode statistics to stderr")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [filename...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	opts, err := options()
	if err != nil {
		flag.Usage()
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := run(ctx, os.Stdout, os.Stdin, flag.Args(), *jobs, opts)
	if *verbose {
		fmt.Fprintf(os.Stderr, "consumed=%d letters=%d produced=%d unknown=%d overflows=%d\n",
			stats.BytesConsumed, stats.Letters, stats.BytesProduced, stats.Unknown, stats.Overflows)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func options() ([]morse.DecoderOption, error) {
	var opts []morse.DecoderOption
	if *marker != "" {
		if len(*marker) != 1 {
			return nil, errors.Errorf("-marker must be a single byte, got %q", *marker)
		}
		opts = append(opts, morse.WithOverflowMarker((*marker)[0]))
	}
	if len(*unknown) != 1 {
		return nil, errors.Errorf("-unknown must be a single byte, got %q", *unknown)
	}
	opts = append(opts, morse.WithUnknownMarker((*unknown)[0]))
	return opts, nil
}

// run decodes stdin when names is empty, otherwise every named file. Files are
// decoded concurrently and written to w in argument order.
func run(ctx context.Context, w io.Writer, stdin io.Reader, names []string, jobs int, opts []morse.DecoderOption) (morse.Stats, error) {
	if len(names) == 0 {
		stats, err := morse.Decode(w, stdin, opts...)
		return stats, errors.Wrap(err, "stdin")
	}

	var total morse.Stats
	streams := make([]morse.Stream, len(names))
	outs := make([]*bytes.Buffer, len(names))
	for i, name := range names {
		f, err := os.Open(name)
		if err != nil {
			return total, errors.Wrap(err, "")
		}
		defer f.Close()

		outs[i] = new(bytes.Buffer)
		streams[i] = morse.Stream{R: f, W: outs[i]}
	}

	perFile, err := morse.DecodeStreams(ctx, jobs, streams, opts...)
	for _, s := range perFile {
		total.Add(s)
	}
	if err != nil {
		return total, errors.Wrap(err, "")
	}

	for i, out := range outs {
		if _, err := out.WriteTo(w); err != nil {
			return total, errors.Wrap(err, names[i])
		}
	}
	return total, nil
}
