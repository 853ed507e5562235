package lexer_test

import (
	"testing"

	"github.com/agenthands/postfix/pkg/compiler/lexer"
)

func TestScannerZeroAlloc(t *testing.T) {
	src := []byte("10 -3 %\t2 ^ 4 >=\n1 ||")
	s := lexer.NewScanner(src)

	// Measure allocations
	allocs := testing.AllocsPerRun(10, func() {
		s.Reset(src)
		for {
			tok := s.Next()
			if tok.Kind == lexer.KindEOF {
				break
			}
		}
	})

	if allocs > 0 {
		t.Errorf("expected 0 allocations, got %f", allocs)
	}
}

func TestScannerClassification(t *testing.T) {
	type want struct {
		kind lexer.Kind
		text string
	}
	tests := []struct {
		name string
		src  string
		want []want
	}{
		{"Empty", "", nil},
		{"Blank", " \t\n ", nil},
		{"Simple", "3 4 +", []want{
			{lexer.KindNumber, "3"}, {lexer.KindNumber, "4"}, {lexer.KindOperator, "+"},
		}},
		{"Negative Literal", "-5 3 -", []want{
			{lexer.KindNumber, "-5"}, {lexer.KindNumber, "3"}, {lexer.KindOperator, "-"},
		}},
		{"Minus Then Letter", "-x", []want{{lexer.KindOperator, "-x"}}},
		{"Digit Prefix", "12ab", []want{{lexer.KindNumber, "12ab"}}},
		{"Two Char Operators", ">= <= == != && ||", []want{
			{lexer.KindOperator, ">="}, {lexer.KindOperator, "<="}, {lexer.KindOperator, "=="},
			{lexer.KindOperator, "!="}, {lexer.KindOperator, "&&"}, {lexer.KindOperator, "||"},
		}},
		{"Mixed Blanks", "1\t\t2\r\n\f%", []want{
			{lexer.KindNumber, "1"}, {lexer.KindNumber, "2"}, {lexer.KindOperator, "%"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := []byte(tt.src)
			s := lexer.NewScanner(src)
			for i, w := range tt.want {
				tok := s.Next()
				if tok.Kind != w.kind || tok.Text(src) != w.text {
					t.Errorf("token %d: expected %v %q, got %v %q", i, w.kind, w.text, tok.Kind, tok.Text(src))
				}
			}
			if tok := s.Next(); tok.Kind != lexer.KindEOF {
				t.Errorf("expected EOF, got %v %q", tok.Kind, tok.Text(src))
			}
		})
	}
}

func TestScannerMoreAndRestart(t *testing.T) {
	src := []byte("10 3 %  \n")
	s := lexer.NewScanner(src)

	var first []string
	for s.More() {
		first = append(first, s.Next().Text(src))
	}
	if len(first) != 3 || first[2] != "%" {
		t.Fatalf("unexpected tokens: %q", first)
	}
	if s.More() {
		t.Errorf("More reported a token after the last one")
	}

	s.Reset(src)
	for i, exp := range first {
		if got := s.Next().Text(src); got != exp {
			t.Errorf("replay token %d: expected %q, got %q", i, exp, got)
		}
	}
}

func TestScannerLines(t *testing.T) {
	src := []byte("1\n2\n\n+")
	s := lexer.NewScanner(src)

	lines := []uint32{1, 2, 4}
	for i, exp := range lines {
		tok := s.Next()
		if tok.Line != exp {
			t.Errorf("token %d: expected line %d, got %d", i, exp, tok.Line)
		}
	}
}
