package parser

import (
	"fmt"

	mplerrors "github.com/cbozin/myPL/internal/errors"
	"github.com/cbozin/myPL/internal/lexer"
)

// ParserError reports a token sequence the grammar does not accept.
type ParserError struct {
	Message string
	Pos     mplerrors.Positioned
}

func (e *ParserError) Error() string {
	return mplerrors.Format("Parser Error", e.Message, e.Pos)
}

func newError(tok lexer.Token, format string, args ...any) *ParserError {
	msg := fmt.Sprintf(format, args...)
	msg = fmt.Sprintf("%s found '%s'", msg, tok.Lexeme)
	return &ParserError{
		Message: msg,
		Pos:     mplerrors.Positioned{Line: tok.Line, Column: tok.Column},
	}
}
