package morse

// table is an implicit binary tree of Morse prefixes stored breadth first.
// The accumulator a selects table[a-1]; a dot moves to 2a and a dash to 2a+1.
const table = " ETIANMSURWDKGOHVF?L?PJBXCYZQ??54?3???2???????16???????7???8?90"

const (
	// TableSize is the number of entries in the lookup table.
	TableSize = 63
	// MaxSymbols is the longest dot/dash run that still lands inside the table.
	MaxSymbols = 5
)

// unknownEntry fills the slots for codes with no character assigned.
const unknownEntry = '?'

// Lookup returns the table entry for accumulator acc, or ok=false when acc is
// outside 1..TableSize.
func Lookup(acc uint) (c byte, ok bool) {
	if acc < 1 || acc > TableSize {
		return 0, false
	}
	return table[acc-1], true
}

// IsUnknown reports whether c is the placeholder used for unassigned codes.
func IsUnknown(c byte) bool {
	return c == unknownEntry
}
