package morse

// Symbol is the class of a single input byte.
//
// Only '.' and '-' extend the current letter; every other byte, whitespace or
// not, ends it.
type Symbol int

const (
	SymbolTerminator Symbol = 0 // default
	SymbolDot        Symbol = 1
	SymbolDash       Symbol = 2
)

func (s Symbol) String() string {
	switch s {
	case SymbolDot:
		return "dot"
	case SymbolDash:
		return "dash"
	default:
		return "terminator"
	}
}

var symbolLUT [256]Symbol

func init() {
	symbolLUT['.'] = SymbolDot
	symbolLUT['-'] = SymbolDash
}

// Classify returns the Symbol for c.
func Classify(c byte) Symbol {
	return symbolLUT[c]
}
