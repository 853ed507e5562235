package vm

import (
	"math"
	"math/bits"
)

// Op identifies one of the binary operators understood by the machine.
type Op uint8

const (
	OP_NOOP Op = iota
	OP_ADD
	OP_SUB
	OP_MUL
	OP_DIV
	OP_POW
	OP_MOD
	OP_GT
	OP_GE
	OP_LT
	OP_LE
	OP_EQ
	OP_NE
	OP_AND
	OP_OR
)

type opEntry struct {
	symbol string
	apply  func(l, r int64) (int64, error)
}

// opTable is indexed by Op. Every entry is a pure function of its operands.
var opTable = [...]opEntry{
	OP_NOOP: {"", nil},
	OP_ADD:  {"+", func(l, r int64) (int64, error) { return l + r, nil }},
	OP_SUB:  {"-", func(l, r int64) (int64, error) { return l - r, nil }},
	OP_MUL:  {"*", func(l, r int64) (int64, error) { return l * r, nil }},
	OP_DIV: {"/", func(l, r int64) (int64, error) {
		if r == 0 {
			return 0, ErrDivideByZero
		}
		return l / r, nil
	}},
	OP_POW: {"^", func(l, r int64) (int64, error) { return power(l, r), nil }},
	OP_MOD: {"%", func(l, r int64) (int64, error) {
		if r == 0 {
			return 0, ErrModulusByZero
		}
		return l % r, nil
	}},
	OP_GT:  {">", func(l, r int64) (int64, error) { return boolInt(l > r), nil }},
	OP_GE:  {">=", func(l, r int64) (int64, error) { return boolInt(l >= r), nil }},
	OP_LT:  {"<", func(l, r int64) (int64, error) { return boolInt(l < r), nil }},
	OP_LE:  {"<=", func(l, r int64) (int64, error) { return boolInt(l <= r), nil }},
	OP_EQ:  {"==", func(l, r int64) (int64, error) { return boolInt(l == r), nil }},
	OP_NE:  {"!=", func(l, r int64) (int64, error) { return boolInt(l != r), nil }},
	OP_AND: {"&&", func(l, r int64) (int64, error) { return boolInt(l > 0 && r > 0), nil }},
	OP_OR:  {"||", func(l, r int64) (int64, error) { return boolInt(l > 0 || r > 0), nil }},
}

var opsBySymbol = func() map[string]Op {
	m := make(map[string]Op, len(opTable))
	for op := OP_ADD; int(op) < len(opTable); op++ {
		m[opTable[op].symbol] = op
	}
	return m
}()

// LookupOp maps an operator token to its Op.
func LookupOp(symbol string) (Op, bool) {
	op, ok := opsBySymbol[symbol]
	return op, ok
}

func (op Op) String() string {
	if int(op) < len(opTable) && op != OP_NOOP {
		return opTable[op].symbol
	}
	return "NOOP"
}

// Apply computes l op r. Division and modulus by zero return
// ErrDivideByZero and ErrModulusByZero.
func (op Op) Apply(l, r int64) (int64, error) {
	if op == OP_NOOP || int(op) >= len(opTable) {
		return 0, ErrUnknownOperator
	}
	return opTable[op].apply(l, r)
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// power truncates l**r toward zero and clamps to the int64 range, the same
// answer a float power followed by a saturating integer cast gives.
func power(l, r int64) int64 {
	if r < 0 {
		switch l {
		case 0:
			return math.MaxInt64 // 1/0 is +Inf
		case 1:
			return 1
		case -1:
			if r%2 == 0 {
				return 1
			}
			return -1
		}
		return 0
	}

	neg := l < 0 && r%2 == 1
	base := uint64(l)
	if l < 0 {
		base = -base
	}

	mag := uint64(1)
	overflow := false
	for e := uint64(r); e > 0 && !overflow; {
		if e&1 == 1 {
			hi, lo := bits.Mul64(mag, base)
			overflow = hi != 0
			mag = lo
		}
		e >>= 1
		if e > 0 {
			hi, lo := bits.Mul64(base, base)
			overflow = overflow || hi != 0
			base = lo
		}
	}

	switch {
	case neg && (overflow || mag > 1<<63):
		return math.MinInt64
	case neg:
		return -int64(mag)
	case overflow || mag > math.MaxInt64:
		return math.MaxInt64
	}
	return int64(mag)
}
