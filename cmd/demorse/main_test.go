package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mnightingale/morse"
	"github.com/stretchr/testify/require"
)

func TestRunStdin(t *testing.T) {
	out := new(bytes.Buffer)
	stats, err := run(context.Background(), out, strings.NewReader(".... . .-.. .-.. ---\n"), nil, 1, nil)
	require.NoError(t, err)
	require.Equal(t, "HELLO", out.String())
	require.Equal(t, int64(5), stats.Letters)
}

func TestRunFilesKeepArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	inputs := []string{"... --- ... ", "-- --- .-. ... . ", "..--- ----- ..--- -.... "}
	want := []string{"SOS", "MORSE", "2026"}

	names := make([]string, len(inputs))
	for i, in := range inputs {
		names[i] = filepath.Join(dir, string(rune('a'+i))+".txt")
		require.NoError(t, os.WriteFile(names[i], []byte(in), 0o644))
	}

	out := new(bytes.Buffer)
	stats, err := run(context.Background(), out, nil, names, 2, nil)
	require.NoError(t, err)
	require.Equal(t, strings.Join(want, ""), out.String())
	require.Equal(t, int64(12), stats.BytesProduced)
}

func TestRunOverflow(t *testing.T) {
	cases := []struct {
		name     string
		opts     []morse.DecoderOption
		expected string
		wantErr  bool
	}{
		{"strict", nil, "E", true},
		{"marker", []morse.DecoderOption{morse.WithOverflowMarker('#')}, "E#T", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := new(bytes.Buffer)
			_, err := run(context.Background(), out, strings.NewReader(". ...... - "), nil, 1, tc.opts)
			if tc.wantErr {
				require.ErrorIs(t, err, morse.ErrInvalidSequence)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tc.expected, out.String())
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	_, err := run(context.Background(), new(bytes.Buffer), nil, []string{filepath.Join(t.TempDir(), "missing")}, 1, nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}
