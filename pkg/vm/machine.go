package vm

import (
	"strconv"
	"sync"

	"github.com/agenthands/postfix/pkg/compiler/lexer"
	"github.com/agenthands/postfix/pkg/core/stack"
)

// Step describes the machine state after one token has been processed.
type Step struct {
	Index int
	Token string
	Kind  lexer.Kind
	Op    Op
	Stack []int64
}

// Tracer observes every step of an evaluation.
type Tracer func(Step)

// Machine evaluates postfix expressions over an int64 operand stack.
// A Machine is not safe for concurrent use; use GetMachine or Evaluate
// to share machines between goroutines.
type Machine struct {
	stack   stack.Stack[int64]
	scanner lexer.Scanner

	// Strict rejects unknown operator tokens and operands left below the
	// result instead of ignoring them.
	Strict bool

	// Tracer, when set, is called after each token.
	Tracer Tracer
}

var machinePool = sync.Pool{
	New: func() any { return &Machine{} },
}

// GetMachine returns a reset machine from the pool.
func GetMachine() *Machine {
	return machinePool.Get().(*Machine)
}

// PutMachine resets m and returns it to the pool.
func PutMachine(m *Machine) {
	m.Reset()
	machinePool.Put(m)
}

// Reset clears the machine state for reuse (sync.Pool compliant).
func (m *Machine) Reset() {
	m.stack.Reset()
	m.scanner.Reset(nil)
	m.Strict = false
	m.Tracer = nil
}

// Eval runs expr and returns the value left on top of the stack.
//
// A '%' that is the final token returns its remainder directly instead of
// the stack top. Failures are *Error values matching one of the Err
// sentinels.
func (m *Machine) Eval(expr string) (int64, error) {
	src := []byte(expr)
	m.stack.Reset()
	m.scanner.Reset(src)

	for i := 0; ; i++ {
		tok := m.scanner.Next()
		if tok.Kind == lexer.KindEOF {
			break
		}
		text := tok.Text(src)
		offset := int(tok.Offset)

		if tok.Kind == lexer.KindNumber {
			n, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return 0, ErrInvalidLiteral.at(text, offset, err)
			}
			m.stack.Push(n)
			m.trace(i, text, tok.Kind, OP_NOOP)
			continue
		}

		op, ok := LookupOp(text)
		if !ok {
			if m.Strict {
				return 0, ErrUnknownOperator.at(text, offset, nil)
			}
			m.trace(i, text, tok.Kind, OP_NOOP)
			continue
		}

		r, err := m.stack.Pop()
		if err != nil {
			return 0, ErrInvalidExpression.at(text, offset, err)
		}
		l, err := m.stack.Pop()
		if err != nil {
			return 0, ErrInvalidExpression.at(text, offset, err)
		}

		res, err := op.Apply(l, r)
		if err != nil {
			if e, ok := err.(*Error); ok {
				return 0, e.at(text, offset, nil)
			}
			return 0, err
		}

		if op == OP_MOD && !m.scanner.More() {
			m.trace(i, text, tok.Kind, op)
			return res, nil
		}

		m.stack.Push(res)
		m.trace(i, text, tok.Kind, op)
	}

	if m.Strict && m.stack.Len() > 1 {
		return 0, ErrDanglingOperands.at("", len(src), nil)
	}

	top, err := m.stack.Peek()
	if err != nil {
		return 0, ErrEmptyResult.at("", len(src), err)
	}
	return top, nil
}

// Render evaluates expr and formats the outcome: the decimal result, or
// the two-line error message.
func (m *Machine) Render(expr string) string {
	v, err := m.Eval(expr)
	if err != nil {
		return err.Error()
	}
	return strconv.FormatInt(v, 10)
}

func (m *Machine) trace(index int, token string, kind lexer.Kind, op Op) {
	if m.Tracer == nil {
		return
	}
	m.Tracer(Step{
		Index: index,
		Token: token,
		Kind:  kind,
		Op:    op,
		Stack: m.stack.Values(),
	})
}

// Evaluate runs expr on a pooled machine. It is safe for concurrent use.
func Evaluate(expr string) (int64, error) {
	m := GetMachine()
	defer PutMachine(m)
	return m.Eval(expr)
}

// Render is the string form of Evaluate.
func Render(expr string) string {
	m := GetMachine()
	defer PutMachine(m)
	return m.Render(expr)
}
