package token

import (
	"fmt"
)

type TokenType int

const (
	TIndent TokenType = iota
	TDash
	TColon
	TComma
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TScalar
	TString
	TBlock
	TComment
	TDocSep
	TDocEnd
	TAnchor
	TAlias
	TTag
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TIndent:  "TIndent",
		TDash:    "TDash",
		TColon:   "TColon",
		TComma:   "TComma",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TScalar:  "TScalar",
		TString:  "TString",
		TBlock:   "TBlock",
		TComment: "TComment",
		TDocSep:  "TDocSep",
		TDocEnd:  "TDocEnd",
		TAnchor:  "TAnchor",
		TAlias:   "TAlias",
		TTag:     "TTag",
	}[t]
}

// IsScalar reports whether the token carries scalar content. For TString
// and TBlock the Bytes are the resolved content, with quotes, escapes,
// folding and chomping already applied.
func (t TokenType) IsScalar() bool {
	switch t {
	case TScalar, TString, TBlock:
		return true
	default:
		return false
	}
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}

// Name returns an anchor or alias token's name without the leading sigil.
func (t *Token) Name() string {
	switch t.Type {
	case TAnchor, TAlias:
		return string(t.Bytes[1:])
	default:
		return string(t.Bytes)
	}
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
