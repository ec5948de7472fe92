package token

import (
	"strconv"
	"unicode/utf8"
)

// singleQuoted scans a single-quoted scalar starting at the opening quote
// in d[0]. The returned token's Bytes hold the resolved content: a doubled
// quote collapses to one and unescaped line breaks fold per YAML rules.
func singleQuoted(d []byte, pd *PosDoc, off int) (*Token, int, error) {
	i := 1
	n := len(d)
	res := []byte{}
	nl := 0
	for i < n {
		c := d[i]
		switch c {
		case '\'':
			if i+1 < n && d[i+1] == '\'' {
				res, nl = foldPending(res, nl)
				res = append(res, '\'')
				i += 2
				continue
			}
			return &Token{Type: TString, Pos: pd.Pos(off), Bytes: res}, i + 1, nil
		case '\n':
			pd.nl(off + i)
			res = trimLineEnd(res)
			nl++
			i++
			for i < n && (d[i] == ' ' || d[i] == '\t') {
				i++
			}
		default:
			res, nl = foldPending(res, nl)
			res = append(res, c)
			i++
		}
	}
	return nil, 0, NewTokenizeErr(ErrUnterminated, pd.Pos(off))
}

// doubleQuoted scans a double-quoted scalar starting at d[0] == '"',
// resolving backslash escapes and line folding.
func doubleQuoted(d []byte, pd *PosDoc, off int) (*Token, int, error) {
	i := 1
	n := len(d)
	res := []byte{}
	nl := 0
	for i < n {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz == 1 {
			return nil, 0, NewTokenizeErr(ErrBadUTF8, pd.Pos(off+i))
		}
		switch r {
		case '"':
			return &Token{Type: TString, Pos: pd.Pos(off), Bytes: res}, i + 1, nil
		case '\n':
			pd.nl(off + i)
			res = trimLineEnd(res)
			nl++
			i++
			for i < n && (d[i] == ' ' || d[i] == '\t') {
				i++
			}
		case '\\':
			if i+1 >= n {
				return nil, 0, NewTokenizeErr(ErrUnterminated, pd.Pos(off))
			}
			e := d[i+1]
			if e == '\n' {
				// escaped break joins without folding
				pd.nl(off + i + 1)
				res = trimLineEnd(res)
				i += 2
				for i < n && (d[i] == ' ' || d[i] == '\t') {
					i++
				}
				continue
			}
			res, nl = foldPending(res, nl)
			esc, consumed, err := resolveEscape(d[i:])
			if err != nil {
				return nil, 0, NewTokenizeErr(err, pd.Pos(off+i))
			}
			res = append(res, esc...)
			i += consumed
		default:
			res, nl = foldPending(res, nl)
			res = append(res, d[i:i+sz]...)
			i += sz
		}
	}
	return nil, 0, NewTokenizeErr(ErrUnterminated, pd.Pos(off))
}

// foldPending applies YAML line folding: one pending break becomes a
// space, k>1 pending breaks become k-1 newlines.
func foldPending(res []byte, nl int) ([]byte, int) {
	switch {
	case nl == 1:
		res = append(res, ' ')
	case nl > 1:
		for ; nl > 1; nl-- {
			res = append(res, '\n')
		}
	}
	return res, 0
}

func trimLineEnd(res []byte) []byte {
	for len(res) > 0 {
		switch res[len(res)-1] {
		case ' ', '\t', '\r':
			res = res[:len(res)-1]
		default:
			return res
		}
	}
	return res
}

// resolveEscape decodes the escape sequence at d[0] == '\\', returning the
// replacement bytes and the number of input bytes consumed.
func resolveEscape(d []byte) ([]byte, int, error) {
	switch d[1] {
	case '0':
		return []byte{0}, 2, nil
	case 'a':
		return []byte{'\a'}, 2, nil
	case 'b':
		return []byte{'\b'}, 2, nil
	case 't':
		return []byte{'\t'}, 2, nil
	case 'n':
		return []byte{'\n'}, 2, nil
	case 'v':
		return []byte{'\v'}, 2, nil
	case 'f':
		return []byte{'\f'}, 2, nil
	case 'r':
		return []byte{'\r'}, 2, nil
	case 'e':
		return []byte{0x1b}, 2, nil
	case ' ':
		return []byte{' '}, 2, nil
	case '"':
		return []byte{'"'}, 2, nil
	case '/':
		return []byte{'/'}, 2, nil
	case '\\':
		return []byte{'\\'}, 2, nil
	case 'N':
		return utf8.AppendRune(nil, 0x85), 2, nil
	case '_':
		return utf8.AppendRune(nil, 0xa0), 2, nil
	case 'L':
		return utf8.AppendRune(nil, 0x2028), 2, nil
	case 'P':
		return utf8.AppendRune(nil, 0x2029), 2, nil
	case 'x':
		return hexEscape(d, 2)
	case 'u':
		return hexEscape(d, 4)
	case 'U':
		return hexEscape(d, 8)
	default:
		return nil, 0, ErrBadEscape
	}
}

func hexEscape(d []byte, digits int) ([]byte, int, error) {
	if len(d) < 2+digits {
		return nil, 0, ErrBadEscape
	}
	u, err := strconv.ParseUint(string(d[2:2+digits]), 16, 32)
	if err != nil {
		return nil, 0, ErrBadEscape
	}
	return utf8.AppendRune(nil, rune(u)), 2 + digits, nil
}
