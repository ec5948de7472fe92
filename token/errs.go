package token

import (
	"errors"
)

var (
	ErrBadUTF8        = errors.New("bad utf8")
	ErrUnterminated   = errors.New("unterminated")
	ErrBadEscape      = errors.New("bad escape")
	ErrTabIndent      = errors.New("tab used for indentation")
	ErrMalformedBlock = errors.New("malformed block scalar")
	ErrPlain          = errors.New("bad plain scalar")
	ErrAnchorName     = errors.New("bad anchor name")
)
