package dump

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/arkadeleon/yamlnode/node"
)

type dumpState struct {
	indent int
	color  func(node.Kind, ColorAttr, string) string
}

// Dump writes n to w in block style with a trailing newline.
func Dump(n *node.Node, w io.Writer, opts ...Option) error {
	ds := &dumpState{
		indent: 2,
		color: func(_ node.Kind, _ ColorAttr, s string) string {
			return s
		},
	}
	for _, opt := range opts {
		opt(ds)
	}
	d := &dumper{w: bufio.NewWriter(w), ds: ds}
	d.value(n, 0)
	d.str("\n")
	if d.err != nil {
		return d.err
	}
	return d.w.Flush()
}

type dumper struct {
	w   *bufio.Writer
	ds  *dumpState
	err error
}

func (d *dumper) str(s string) {
	if d.err != nil {
		return
	}
	_, d.err = d.w.WriteString(s)
}

func (d *dumper) pad(depth int) {
	d.str(strings.Repeat(" ", depth*d.ds.indent))
}

// value emits n starting at the current cursor. Nested block entries are
// written on following lines at depth+1.
func (d *dumper) value(n *node.Node, depth int) {
	if tag := n.Tag(); tag != "" {
		d.str(d.ds.color(n.Kind(), TagColor, tag))
		d.str(" ")
	}
	switch n.Kind() {
	case node.NullKind:
		d.str(d.ds.color(node.NullKind, ValueColor, "null"))
	case node.ScalarKind:
		d.scalar(n)
	case node.MappingKind:
		d.mapping(n, depth)
	case node.SequenceKind:
		d.sequence(n, depth)
	}
}

func (d *dumper) mapping(n *node.Node, depth int) {
	mv, _ := n.Mapping()
	if mv.Len() == 0 {
		d.str("{}")
		return
	}
	i := 0
	for k, v := range mv.All() {
		if i > 0 {
			d.str("\n")
			d.pad(depth)
		}
		i++
		d.str(d.ds.color(node.MappingKind, FieldColor, renderScalar(k)))
		d.str(d.ds.color(node.MappingKind, SepColor, ":"))
		if isInline(v) {
			d.str(" ")
			d.value(v, depth)
			continue
		}
		d.str("\n")
		d.pad(depth + 1)
		d.value(v, depth+1)
	}
}

func (d *dumper) sequence(n *node.Node, depth int) {
	sv, _ := n.Sequence()
	if sv.Len() == 0 {
		d.str("[]")
		return
	}
	for i, v := range sv.All() {
		if i > 0 {
			d.str("\n")
			d.pad(depth)
		}
		d.str(d.ds.color(node.SequenceKind, SepColor, "-"))
		d.str(strings.Repeat(" ", d.ds.indent-1))
		d.value(v, depth+1)
	}
}

// isInline reports whether v fits after its key on the same line.
func isInline(v *node.Node) bool {
	switch v.Kind() {
	case node.MappingKind:
		mv, _ := v.Mapping()
		return mv.Len() == 0
	case node.SequenceKind:
		sv, _ := v.Sequence()
		return sv.Len() == 0
	}
	return true
}

func (d *dumper) scalar(n *node.Node) {
	s, _ := n.Scalar()
	attr := ValueColor
	if _, ok := n.Bool(); ok {
		attr = BoolColor
	} else if _, ok := n.Float(); ok {
		attr = NumberColor
	}
	d.str(d.ds.color(node.ScalarKind, attr, renderScalar(s)))
}

// renderScalar emits s plain when it would re-parse as the same text and
// double-quoted otherwise.
func renderScalar(s string) string {
	if plainSafe(s) {
		return s
	}
	return strconv.Quote(s)
}

func plainSafe(s string) bool {
	if s == "" || node.IsNullLiteral(s) {
		return false
	}
	switch s[0] {
	case '#', '&', '*', '!', '|', '>', '%', '@', '`', '"', '\'',
		'{', '}', '[', ']', ',', ' ', '\t':
		return false
	case '-', '?', ':':
		if len(s) == 1 || s[1] == ' ' || s[1] == '\t' {
			return false
		}
	}
	if s[len(s)-1] == ' ' || s[len(s)-1] == '\t' {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c < 0x20:
			return false
		case c == ':':
			if i+1 == len(s) || s[i+1] == ' ' || s[i+1] == '\t' {
				return false
			}
		case c == '#':
			if s[i-1] == ' ' || s[i-1] == '\t' {
				return false
			}
		}
	}
	return true
}
