package parse

import (
	"errors"
	"fmt"
)

// Sentinel errors for the kinds of failure a parse can produce. Every
// error returned by [Parse] wraps exactly one of these.
var (
	ErrSyntax             = errors.New("syntax error")
	ErrIndentation        = errors.New("indentation error")
	ErrUnterminatedScalar = errors.New("unterminated scalar")
	ErrDuplicateKey       = errors.New("duplicate mapping key")
)

// Error is a positioned parse error. Line and Col are 0-based, with Col
// counting bytes within the line.
type Error struct {
	Err  error
	Msg  string
	Line int
	Col  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line=%d, col=%d: %s", e.Err.Error(), e.Line, e.Col, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind error, line, col int, format string, args ...any) *Error {
	return &Error{
		Err:  kind,
		Msg:  fmt.Sprintf(format, args...),
		Line: line,
		Col:  col,
	}
}
