package semantic

import (
	"fmt"

	mplerrors "github.com/cbozin/myPL/internal/errors"
	"github.com/cbozin/myPL/internal/lexer"
)

// StaticError reports a type or scoping rule violated by an otherwise
// syntactically valid program.
type StaticError struct {
	Message string
	Pos     mplerrors.Positioned
}

func (e *StaticError) Error() string {
	return mplerrors.Format("Static Error", e.Message, e.Pos)
}

// newError builds a StaticError positioned at tok.
func newError(msg string, tok lexer.Token) *StaticError {
	return &StaticError{
		Message: msg,
		Pos:     mplerrors.Positioned{Line: tok.Line, Column: tok.Column},
	}
}

// newErrorNoPos builds a whole-program StaticError with no source position,
// for checks (like a missing main function) that name no single token.
func newErrorNoPos(format string, args ...any) *StaticError {
	return &StaticError{Message: fmt.Sprintf(format, args...)}
}
