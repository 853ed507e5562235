package lexer

// Scanner splits postfix source into blank-delimited tokens.
type Scanner struct {
	source []byte
	cursor int
	line   int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

// Reset re-initializes the scanner with new source for pool reuse.
// Resetting with the same source replays the same token sequence.
func (s *Scanner) Reset(source []byte) {
	s.source = source
	s.cursor = 0
	s.line = 1
}

// Next returns the next token from the source, or a KindEOF token once the
// source is exhausted.
func (s *Scanner) Next() Token {
	s.skipWhitespace()

	if s.cursor >= len(s.source) {
		return Token{Kind: KindEOF, Offset: uint32(s.cursor), Line: uint32(s.line)}
	}

	start := s.cursor
	for s.cursor < len(s.source) && !isBlank(s.source[s.cursor]) {
		s.cursor++
	}

	kind := KindOperator
	if isLiteral(s.source[start:s.cursor]) {
		kind = KindNumber
	}
	return Token{Kind: kind, Offset: uint32(start), Length: uint32(s.cursor - start), Line: uint32(s.line)}
}

// More reports whether another token follows the current position.
func (s *Scanner) More() bool {
	s.skipWhitespace()
	return s.cursor < len(s.source)
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		if ch == '\n' {
			s.line++
			s.cursor++
		} else if isBlank(ch) {
			s.cursor++
		} else {
			break
		}
	}
}

// isLiteral: a leading digit, or '-' immediately followed by a digit.
func isLiteral(tok []byte) bool {
	if isDigit(tok[0]) {
		return true
	}
	return len(tok) > 1 && tok[0] == '-' && isDigit(tok[1])
}

func isBlank(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
