package token

import (
	"unicode"
	"unicode/utf8"
)

// scanPlain returns the length of the plain scalar starting at d[0], with
// trailing whitespace excluded. Plain scalars are single-line: a line break
// always terminates them.
func scanPlain(d []byte, inFlow bool) (int, error) {
	i := 0
	n := len(d)
	for i < n {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz == 1 {
			return 0, ErrBadUTF8
		}
		switch r {
		case '\n', '\r':
			goto done
		case ':':
			nxt := byte('\n')
			if i+1 < n {
				nxt = d[i+1]
			}
			switch nxt {
			case ' ', '\t', '\n', '\r':
				goto done
			case ',', '}', ']':
				if inFlow {
					goto done
				}
			}
		case '#':
			if i > 0 && (d[i-1] == ' ' || d[i-1] == '\t') {
				goto done
			}
		case ',', '[', ']', '{', '}':
			if inFlow {
				goto done
			}
		default:
			if unicode.IsControl(r) {
				goto done
			}
		}
		i += sz
	}
done:
	for i > 0 && (d[i-1] == ' ' || d[i-1] == '\t') {
		i--
	}
	if i == 0 {
		return 0, ErrPlain
	}
	return i, nil
}
