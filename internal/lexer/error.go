package lexer

import (
	"fmt"

	mplerrors "github.com/cbozin/myPL/internal/errors"
)

// LexerError reports a violation found while scanning source text: an
// unterminated literal, an unexpected character, or an ill-formed number.
type LexerError struct {
	Message string
	Pos     mplerrors.Positioned
}

func (e *LexerError) Error() string {
	return mplerrors.Format("Lexer Error", e.Message, e.Pos)
}

func newError(line, column int, format string, args ...any) *LexerError {
	return &LexerError{
		Message: fmt.Sprintf(format, args...),
		Pos:     mplerrors.Positioned{Line: line, Column: column},
	}
}
