package parse

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/arkadeleon/yamlnode/node"
	"github.com/arkadeleon/yamlnode/token"
)

func mustParse(t *testing.T, in string, opts ...Option) *node.Node {
	t.Helper()
	n, err := ParseString(in, opts...)
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return n
}

func asJSON(t *testing.T, n *node.Node) string {
	t.Helper()
	d, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(d)
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want string
	}{
		{"plain-scalar", "hello", `"hello"`},
		{"int-scalar", "42", `42`},
		{"empty-doc", "", `null`},
		{"blank-doc", "\n\n", `null`},
		{"tilde", "~", `null`},
		{"null-word", "null", `null`},
		{"quoted-null-stays-text", `"null"`, `"null"`},
		{"single-quoted-null-stays-text", `'~'`, `"~"`},

		{"map", "a: 1\nb: two\n", `{"a":1,"b":"two"}`},
		{"nested-map", "a:\n  b: 1\n  c: 2\nd: 3\n", `{"a":{"b":1,"c":2},"d":3}`},
		{"missing-value", "a:\nb: 1\n", `{"a":null,"b":1}`},
		{"last-missing-value", "a: 1\nb:\n", `{"a":1,"b":null}`},
		{"dup-key-last-wins", "a: 1\nb: 2\na: 3\n", `{"a":3,"b":2}`},

		{"seq", "- 1\n- 2\n", `[1,2]`},
		{"seq-null-entry", "- 1\n-\n- 2\n", `[1,null,2]`},
		{"seq-nested-dash", "- - a\n  - b\n- c\n", `[["a","b"],"c"]`},
		{"seq-of-maps", "- name: alice\n- name: bob\n", `[{"name":"alice"},{"name":"bob"}]`},
		{"seq-under-key", "a:\n- 1\n- 2\nb: 3\n", `{"a":[1,2],"b":3}`},
		{"seq-indented-under-key", "a:\n  - 1\n  - 2\n", `{"a":[1,2]}`},

		{"flow", "a: [1, {b: 2}, []]\n", `{"a":[1,{"b":2},[]]}`},
		{"flow-multiline", "a: [1,\n  2]\n", `{"a":[1,2]}`},
		{"flow-trailing-comma", "[1, 2, ]", `[1,2]`},
		{"flow-empty-map", "{}", `{}`},
		{"flow-bare-key", "{a, b: 1}", `{"a":null,"b":1}`},
		{"flow-empty-value", "{a: }", `{"a":null}`},
		{"flow-empty-value-then-pair", "{a: , b: 1}", `{"a":null,"b":1}`},
		{"flow-pair-in-seq", "[a: 1, b]", `[{"a":1},"b"]`},
		{"flow-empty-pair-in-seq", "[a: ]", `[{"a":null}]`},
		{"flow-dup-key", "{a: 1, a: 2}", `{"a":2}`},

		{"single-quoted", `'it''s'`, `"it's"`},
		{"double-quoted-escapes", `"a\tb\u00e9"`, `"a\tbé"`},
		{"double-quoted-fold", "\"a\n  b\"", `"a b"`},
		{"quoted-key", `"a b": 1`, `{"a b":1}`},

		{"literal-block", "a: |\n  line1\n  line2\n", `{"a":"line1\nline2\n"}`},
		{"literal-strip", "a: |-\n  text\n", `{"a":"text"}`},
		{"folded-block", "a: >\n  one\n  two\n", `{"a":"one two\n"}`},
		{"block-then-key", "a: |\n  text\nb: 1\n", `{"a":"text\n","b":1}`},
		{"block-on-own-line", "a:\n  |\n  x\n", `{"a":"x\n"}`},

		{"comments", "# head\na: 1 # trailing\n# tail\n", `{"a":1}`},
		{"doc-markers", "---\na: 1\n...\n", `{"a":1}`},
		{"second-doc-ignored", "---\na: 1\n---\nb: 2\n", `{"a":1}`},
		{"doc-sep-only", "---\n", `null`},
		{"directive-skipped", "%YAML 1.2\n---\na: 1\n", `{"a":1}`},

		{"anchor-alias", "a: &x\n  b: 1\nc: *x\n", `{"a":{"b":1},"c":{"b":1}}`},
		{"anchor-scalar", "a: &v 1\nb: *v\n", `{"a":1,"b":1}`},
		{"dash-not-seq", "a: -1\n", `{"a":-1}`},
		{"colon-in-plain", "a: b:c\n", `{"a":"b:c"}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := asJSON(t, mustParse(t, tc.in))
			if got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		kind error
		// wantLine/wantCol of -1 skips the position check
		wantLine, wantCol int
	}{
		{"bad-dedent", "a:\n  b: 1\n c: 2\n", ErrIndentation, 2, 1},
		{"unexpected-indent", "a: 1\n   b: 2\n", ErrIndentation, 1, 3},
		{"tab-indent", "a:\n\tb: 1\n", ErrIndentation, 1, 0},
		{"unterminated-double", `"abc`, ErrUnterminatedScalar, 0, 0},
		{"unterminated-single", "a: 'abc\n", ErrUnterminatedScalar, 0, 3},
		{"unclosed-flow-seq", "[1, 2\n", ErrSyntax, -1, -1},
		{"unclosed-flow-map", "{a: 1\n", ErrSyntax, -1, -1},
		{"flow-missing-comma", "[1 2]", ErrSyntax, -1, -1},
		{"unknown-alias", "a: *nope\n", ErrSyntax, 0, 3},
		{"alias-of-self", "a: &x *x\n", ErrSyntax, 0, 6},
		{"content-after-doc", "a\nb\n", ErrSyntax, 1, 0},
		{"complex-key", "? a\n", ErrSyntax, 0, 0},
		{"key-without-colon", "a: 1\nb\n", ErrSyntax, 1, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseString(tc.in)
			if err == nil {
				t.Fatalf("no error for %q", tc.in)
			}
			if !errors.Is(err, tc.kind) {
				t.Fatalf("got %v, want kind %v", err, tc.kind)
			}
			var pe *Error
			if !errors.As(err, &pe) {
				t.Fatalf("error %v carries no position", err)
			}
			if tc.wantLine >= 0 && (pe.Line != tc.wantLine || pe.Col != tc.wantCol) {
				t.Errorf("got line=%d col=%d, want line=%d col=%d",
					pe.Line, pe.Col, tc.wantLine, tc.wantCol)
			}
		})
	}
}

func TestStrictDuplicateKey(t *testing.T) {
	in := "a: 1\nb: 2\na: 3\n"
	if _, err := ParseString(in); err != nil {
		t.Fatalf("default mode: %v", err)
	}
	_, err := ParseString(in, Strict())
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("got %v, want duplicate key error", err)
	}
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatal("no position")
	}
	if pe.Line != 2 || pe.Col != 0 {
		t.Errorf("got line=%d col=%d, want line=2 col=0", pe.Line, pe.Col)
	}
}

func TestPositions(t *testing.T) {
	m := map[*node.Node]*token.Pos{}
	root := mustParse(t, "a:\n  b: 1\n", Positions(m))
	if pos := m[root]; pos == nil || pos.Line() != 0 || pos.Col() != 0 {
		t.Errorf("root position %v", pos)
	}
	mv, _ := root.Mapping()
	inner, _ := mv.Get("a")
	iv, _ := inner.Mapping()
	leaf, _ := iv.Get("b")
	pos := m[leaf]
	if pos == nil {
		t.Fatal("leaf has no position")
	}
	if l, c := pos.LineCol(); l != 1 || c != 5 {
		t.Errorf("leaf at line=%d col=%d, want line=1 col=5", l, c)
	}
}

func TestTags(t *testing.T) {
	root := mustParse(t, "a: !secret x\nb: !!str 1\n")
	mv, _ := root.Mapping()
	a, _ := mv.Get("a")
	if a.Tag() != "!secret" {
		t.Errorf("got tag %q", a.Tag())
	}
	b, _ := mv.Get("b")
	if b.Tag() != "!!str" {
		t.Errorf("got tag %q", b.Tag())
	}
	if s, _ := b.Scalar(); s != "1" {
		t.Errorf("got %q", s)
	}
}

func TestAliasCopiesAreIndependent(t *testing.T) {
	root := mustParse(t, "a: &x\n  b: 1\nc: *x\n")
	mv, _ := root.Mapping()
	a, _ := mv.Get("a")
	c, _ := mv.Get("c")
	if a == c {
		t.Fatal("alias shares the anchored node")
	}
	if !node.Equal(a, c) {
		t.Fatal("alias copy differs from anchor")
	}
}

func TestMappingEqualityIgnoresKeyOrder(t *testing.T) {
	x := mustParse(t, "a: 1\nb: [1, 2]\n")
	y := mustParse(t, "b: [1, 2]\na: 1\n")
	if !node.Equal(x, y) {
		t.Error("reordered mappings compare unequal")
	}
	z := mustParse(t, "a: 1\nb: [2, 1]\n")
	if node.Equal(x, z) {
		t.Error("reordered sequences compare equal")
	}
}
