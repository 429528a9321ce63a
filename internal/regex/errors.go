package regex

import (
	"errors"
	"fmt"
)

// ErrSyntax matches every parse failure via errors.Is.
var ErrSyntax = errors.New("regex: syntax error")

// UnexpectedTokenError reports a missing delimiter or a stray token.
// Offset is the number of characters consumed before the failure.
type UnexpectedTokenError struct {
	Expected string
	Found    string
	Offset   int
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("[col %d] expected %s, but %s found", e.Offset, e.Expected, e.Found)
}

func (e *UnexpectedTokenError) Is(target error) bool { return target == ErrSyntax }

// EmptyOperandError reports an operator with nothing to apply it to,
// such as a leading '*', an empty branch or "()".
type EmptyOperandError struct {
	Found  string
	Offset int
}

func (e *EmptyOperandError) Error() string {
	return fmt.Sprintf("[col %d] expected non-empty operand, but %s found", e.Offset, e.Found)
}

func (e *EmptyOperandError) Is(target error) bool { return target == ErrSyntax }

// DepthExceededError reports grouping nested deeper than the parser allows.
type DepthExceededError struct {
	Limit  int
	Offset int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("[col %d] groups nested deeper than %d", e.Offset, e.Limit)
}

func (e *DepthExceededError) Is(target error) bool { return target == ErrSyntax }

// Offset extracts the failure offset from a parse error.
func Offset(err error) (int, bool) {
	var (
		ute *UnexpectedTokenError
		eoe *EmptyOperandError
		dee *DepthExceededError
	)
	switch {
	case errors.As(err, &ute):
		return ute.Offset, true
	case errors.As(err, &eoe):
		return eoe.Offset, true
	case errors.As(err, &dee):
		return dee.Offset, true
	}
	return 0, false
}
