package morse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	for c := 0; c < 256; c++ {
		switch byte(c) {
		case '.':
			require.Equal(t, SymbolDot, Classify(byte(c)))
		case '-':
			require.Equal(t, SymbolDash, Classify(byte(c)))
		default:
			require.Equal(t, SymbolTerminator, Classify(byte(c)), "byte %#02x", c)
		}
	}
	require.Equal(t, "dash", SymbolDash.String())
}

func TestLookup(t *testing.T) {
	require.Len(t, table, TableSize)
	require.Equal(t, TableSize, 1<<(MaxSymbols+1)-1)

	cases := []struct {
		acc uint
		c   byte
		ok  bool
	}{
		{0, 0, false},
		{1, ' ', true},
		{2, 'E', true},
		{19, '?', true},
		{26, 'C', true},
		{63, '0', true},
		{64, 0, false},
		{^uint(0), 0, false},
	}

	for _, tc := range cases {
		c, ok := Lookup(tc.acc)
		require.Equal(t, tc.ok, ok, "acc %d", tc.acc)
		require.Equal(t, tc.c, c, "acc %d", tc.acc)
	}

	require.True(t, IsUnknown('?'))
	require.False(t, IsUnknown('Q'))
}
