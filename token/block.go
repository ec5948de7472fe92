package token

import (
	"strings"
)

const (
	blockStrip = '-'
	blockKeep  = '+'
)

// blockScalar scans a literal (|) or folded (>) block scalar whose
// introducer is at d[0]. Content lines must be indented by at least
// minIndent columns; the content indentation is auto-detected from the
// first non-empty line unless an explicit indentation indicator is given.
// The returned size leaves the final consumed newline unread so the main
// loop emits the following line's indent token.
func blockScalar(d []byte, minIndent int, pd *PosDoc, off int) (*Token, int, error) {
	folded := d[0] == '>'
	n := len(d)
	var chomp byte
	explicit := 0
	i := 1
header:
	for i < n {
		switch c := d[i]; {
		case c == blockStrip || c == blockKeep:
			if chomp != 0 {
				return nil, 0, NewTokenizeErr(ErrMalformedBlock, pd.Pos(off+i))
			}
			chomp = c
			i++
		case c >= '1' && c <= '9':
			if explicit != 0 {
				return nil, 0, NewTokenizeErr(ErrMalformedBlock, pd.Pos(off+i))
			}
			explicit = int(c - '0')
			i++
		default:
			break header
		}
	}
	for i < n && (d[i] == ' ' || d[i] == '\t') {
		i++
	}
	if i < n && d[i] == '#' {
		for i < n && d[i] != '\n' {
			i++
		}
	}
	if i >= n || d[i] != '\n' {
		return nil, 0, NewTokenizeErr(ErrMalformedBlock, pd.Pos(off+i))
	}
	pd.nl(off + i)
	i++

	contentIndent := 0
	if explicit > 0 {
		contentIndent = max(minIndent-1, 0) + explicit
	}
	var lines []string
	for i < n {
		j := i
		for j < n && d[j] == ' ' {
			j++
		}
		if j >= n {
			i = j
			break
		}
		if d[j] == '\n' {
			lines = append(lines, "")
			pd.nl(off + j)
			i = j + 1
			continue
		}
		ind := j - i
		if contentIndent == 0 {
			if ind < minIndent {
				break
			}
			contentIndent = ind
		}
		if ind < contentIndent {
			break
		}
		k := j
		for k < n && d[k] != '\n' {
			k++
		}
		lines = append(lines, string(d[i+contentIndent:k]))
		if k < n {
			pd.nl(off + k)
		}
		i = k + 1
	}

	var text string
	if folded {
		text = foldLines(lines)
	} else if len(lines) > 0 {
		text = strings.Join(lines, "\n") + "\n"
	}
	switch chomp {
	case blockKeep:
	case blockStrip:
		text = strings.TrimRight(text, "\n")
	default:
		t := strings.TrimRight(text, "\n")
		if t == "" {
			text = ""
		} else {
			text = t + "\n"
		}
	}
	return &Token{Type: TBlock, Pos: pd.Pos(off), Bytes: []byte(text)}, max(i-1, 1), nil
}

// foldLines joins block lines per the folded style: single breaks between
// text lines become spaces, blank lines become line breaks, and
// more-indented lines keep their literal breaks.
func foldLines(lines []string) string {
	b := &strings.Builder{}
	prevText := false
	prevMore := false
	for _, ln := range lines {
		switch {
		case ln == "":
			b.WriteByte('\n')
			prevText = false
			prevMore = false
		case ln[0] == ' ' || ln[0] == '\t':
			if prevText || prevMore {
				b.WriteByte('\n')
			}
			b.WriteString(ln)
			prevMore = true
			prevText = false
		default:
			if prevText {
				b.WriteByte(' ')
			} else if prevMore {
				b.WriteByte('\n')
			}
			b.WriteString(ln)
			prevText = true
			prevMore = false
		}
	}
	res := b.String()
	if len(lines) > 0 && !strings.HasSuffix(res, "\n") {
		res += "\n"
	}
	return res
}
