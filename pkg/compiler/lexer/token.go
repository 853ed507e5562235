package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindNumber
	KindOperator
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindNumber:
		return "Number"
	case KindOperator:
		return "Operator"
	}
	return "Unknown"
}

// Token represents a lexical unit pointing back to the source.
// 16-byte struct so scanning never allocates.
type Token struct {
	Kind   Kind
	Offset uint32
	Length uint32
	Line   uint32
}

// Text returns the token text from src.
func (t Token) Text(src []byte) string {
	return string(src[t.Offset : t.Offset+t.Length])
}
