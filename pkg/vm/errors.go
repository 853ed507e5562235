package vm

const (
	CategoryInvalidExpression = "Invalid Expression"
	CategoryArithmetic        = "Arithmetic"
)

var (
	ErrInvalidExpression = &Error{Category: CategoryInvalidExpression, Description: "Invalid Infix Expression"}
	ErrDivideByZero      = &Error{Category: CategoryArithmetic, Description: "Divide By Zero"}
	ErrModulusByZero     = &Error{Category: CategoryArithmetic, Description: "Modulus By Zero"}
	ErrEmptyResult       = &Error{Category: CategoryInvalidExpression, Description: "Empty Expression"}
	ErrInvalidLiteral    = &Error{Category: CategoryInvalidExpression, Description: "Invalid Integer Literal"}

	// Only reported by strict machines.
	ErrUnknownOperator  = &Error{Category: CategoryInvalidExpression, Description: "Unknown Operator"}
	ErrDanglingOperands = &Error{Category: CategoryInvalidExpression, Description: "Dangling Operands"}
)

// Error is an evaluation failure. Its message is the two-line
// "<Category> Error\nError: <Description>" form; Token and Offset locate
// the token that triggered it, when there is one.
type Error struct {
	Category    string
	Description string
	Token       string
	Offset      int

	cause error
}

func (e *Error) Error() string {
	return e.Category + " Error\nError: " + e.Description
}

// Is matches any Error with the same category and description, so a
// positioned error still satisfies errors.Is against its sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Category == e.Category && t.Description == e.Description
}

func (e *Error) Unwrap() error {
	return e.cause
}

// at returns a copy of e positioned at the given token.
func (e *Error) at(token string, offset int, cause error) *Error {
	c := *e
	c.Token = token
	c.Offset = offset
	c.cause = cause
	return &c
}
