package token

import (
	"unicode"
	"unicode/utf8"
)

type tkState struct {
	cb, sb int
	// reset every '\n'
	lnIndent int
}

func (ts *tkState) inFlow() bool {
	return ts.cb > 0 || ts.sb > 0
}

// Tokenize scans src and appends the resulting tokens to dst. The input is
// treated as a complete document; a trailing newline is supplied if missing.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	posDoc := &PosDoc{d: make([]byte, len(src), len(src)+1)}
	copy(posDoc.d, src)
	posDoc.d = append(posDoc.d, '\n')
	d := posDoc.d
	n := len(d)
	ts := &tkState{}
	i := 0

	if tok, sz := docMarker(d, 0, posDoc); sz > 0 {
		dst = append(dst, *tok)
		i = sz
	} else if indent := readIndent(d); indent > 0 {
		if d[indent] == '\t' {
			return nil, NewTokenizeErr(ErrTabIndent, posDoc.Pos(indent))
		}
		dst = append(dst, Token{
			Type:  TIndent,
			Bytes: d[:indent],
			Pos:   posDoc.Pos(0),
		})
		ts.lnIndent = indent
		i = indent
	} else if d[0] == '\t' {
		return nil, NewTokenizeErr(ErrTabIndent, posDoc.Pos(0))
	}

	for i < n {
		c := d[i]
		if c == '\n' {
			posDoc.nl(i)
			i++
			if i >= n {
				break
			}
			if d[i] == '\n' {
				continue
			}
			if tok, sz := docMarker(d, i, posDoc); sz > 0 {
				dst = append(dst, *tok)
				i += sz
				continue
			}
			indent := readIndent(d[i:])
			if !ts.inFlow() && i+indent < n && d[i+indent] == '\t' {
				return nil, NewTokenizeErr(ErrTabIndent, posDoc.Pos(i+indent))
			}
			dst = append(dst, Token{
				Type:  TIndent,
				Bytes: d[i : i+indent],
				Pos:   posDoc.Pos(i),
			})
			ts.lnIndent = indent
			i += indent
			continue
		}

		switch c {
		case ' ', '\t', '\r':
			i++
		case '#':
			end := i
			for end < n && d[end] != '\n' {
				end++
			}
			dst = append(dst, Token{
				Type:  TComment,
				Pos:   posDoc.Pos(i),
				Bytes: d[i:end],
			})
			i = end
		case ':':
			if separatesValue(d, i, ts) {
				dst = append(dst, Token{
					Type:  TColon,
					Pos:   posDoc.Pos(i),
					Bytes: d[i : i+1],
				})
				i++
				continue
			}
			off, err := scanPlain(d[i:], ts.inFlow())
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			dst = append(dst, Token{Type: TScalar, Pos: posDoc.Pos(i), Bytes: d[i : i+off]})
			i += off
		case '-':
			if d[i+1] == ' ' || d[i+1] == '\t' || d[i+1] == '\n' {
				dst = append(dst, Token{
					Type:  TDash,
					Pos:   posDoc.Pos(i),
					Bytes: d[i : i+1],
				})
				i++
				continue
			}
			off, err := scanPlain(d[i:], ts.inFlow())
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			dst = append(dst, Token{Type: TScalar, Pos: posDoc.Pos(i), Bytes: d[i : i+off]})
			i += off
		case '?':
			if d[i+1] == ' ' || d[i+1] == '\t' || d[i+1] == '\n' {
				return nil, UnexpectedErr("'?' complex key", posDoc.Pos(i))
			}
			off, err := scanPlain(d[i:], ts.inFlow())
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			dst = append(dst, Token{Type: TScalar, Pos: posDoc.Pos(i), Bytes: d[i : i+off]})
			i += off
		case '"':
			tok, off, err := doubleQuoted(d[i:], posDoc, i)
			if err != nil {
				return nil, err
			}
			dst = append(dst, *tok)
			i += off
		case '\'':
			tok, off, err := singleQuoted(d[i:], posDoc, i)
			if err != nil {
				return nil, err
			}
			dst = append(dst, *tok)
			i += off
		case '|', '>':
			if ts.inFlow() {
				return nil, UnexpectedErr(string(c)+" in flow collection", posDoc.Pos(i))
			}
			// An introducer opening its own line already sits deeper than
			// its parent, so content may stay at the introducer's column.
			// One that follows a key indents past the key's line.
			min := ts.lnIndent + 1
			if startsLine(d, i) {
				min = ts.lnIndent
			}
			tok, off, err := blockScalar(d[i:], min, posDoc, i)
			if err != nil {
				return nil, err
			}
			dst = append(dst, *tok)
			i += off
		case '&', '*':
			end := i + 1
			for end < n {
				r, sz := utf8.DecodeRune(d[end:])
				if !anchorChar(r) {
					break
				}
				end += sz
			}
			if end == i+1 {
				return nil, NewTokenizeErr(ErrAnchorName, posDoc.Pos(i))
			}
			typ := TAnchor
			if c == '*' {
				typ = TAlias
			}
			dst = append(dst, Token{Type: typ, Pos: posDoc.Pos(i), Bytes: d[i:end]})
			i = end
		case '!':
			end := i + 1
			for end < n {
				r, sz := utf8.DecodeRune(d[end:])
				if unicode.IsSpace(r) || unicode.IsControl(r) {
					break
				}
				switch r {
				case ',', '[', ']', '{', '}':
					goto tagDone
				}
				end += sz
			}
		tagDone:
			dst = append(dst, Token{Type: TTag, Pos: posDoc.Pos(i), Bytes: d[i:end]})
			i = end
		case '{':
			ts.cb++
			dst = append(dst, Token{Type: TLCurl, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case '}':
			ts.cb--
			dst = append(dst, Token{Type: TRCurl, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case '[':
			ts.sb++
			dst = append(dst, Token{Type: TLSquare, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case ']':
			ts.sb--
			dst = append(dst, Token{Type: TRSquare, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case ',':
			if ts.inFlow() {
				dst = append(dst, Token{Type: TComma, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
				i++
				continue
			}
			off, err := scanPlain(d[i:], false)
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			dst = append(dst, Token{Type: TScalar, Pos: posDoc.Pos(i), Bytes: d[i : i+off]})
			i += off
		case '%':
			if i == 0 || d[i-1] == '\n' {
				// %YAML / %TAG directives are recognized and skipped
				for i < n && d[i] != '\n' {
					i++
				}
				continue
			}
			off, err := scanPlain(d[i:], ts.inFlow())
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			dst = append(dst, Token{Type: TScalar, Pos: posDoc.Pos(i), Bytes: d[i : i+off]})
			i += off
		default:
			off, err := scanPlain(d[i:], ts.inFlow())
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			dst = append(dst, Token{Type: TScalar, Pos: posDoc.Pos(i), Bytes: d[i : i+off]})
			i += off
		}
	}
	return dst, nil
}

// separatesValue reports whether the ':' at d[i] acts as a key/value
// separator rather than scalar content.
func separatesValue(d []byte, i int, ts *tkState) bool {
	if i+1 >= len(d) {
		return true
	}
	switch d[i+1] {
	case ' ', '\t', '\n', '\r':
		return true
	case ',', '}', ']':
		return ts.inFlow()
	}
	return false
}

func docMarker(d []byte, i int, pd *PosDoc) (*Token, int) {
	if i+3 > len(d) {
		return nil, 0
	}
	var typ TokenType
	switch {
	case d[i] == '-' && d[i+1] == '-' && d[i+2] == '-':
		typ = TDocSep
	case d[i] == '.' && d[i+1] == '.' && d[i+2] == '.':
		typ = TDocEnd
	default:
		return nil, 0
	}
	if i+3 < len(d) {
		switch d[i+3] {
		case ' ', '\t', '\n', '\r':
		default:
			return nil, 0
		}
	}
	return &Token{Type: typ, Pos: pd.Pos(i), Bytes: d[i : i+3]}, 3
}

// startsLine reports whether only spaces precede d[i] on its line.
func startsLine(d []byte, i int) bool {
	for j := i - 1; j >= 0; j-- {
		switch d[j] {
		case ' ':
		case '\n':
			return true
		default:
			return false
		}
	}
	return true
}

func readIndent(d []byte) int {
	i := 0
	for i < len(d) && d[i] == ' ' {
		i++
	}
	return i
}

func anchorChar(r rune) bool {
	switch r {
	case '-', '_':
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
