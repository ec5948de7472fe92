package token

import (
	"errors"
	"testing"
)

func types(toks []Token) []TokenType {
	res := make([]TokenType, len(toks))
	for i := range toks {
		res[i] = toks[i].Type
	}
	return res
}

func typesEq(a, b []TokenType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokenizeTypes(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want []TokenType
	}{
		{"inline-map", "a: 1\n", []TokenType{TScalar, TColon, TScalar}},
		{"nested-map", "a:\n  b: 1\n",
			[]TokenType{TScalar, TColon, TIndent, TScalar, TColon, TScalar}},
		{"seq", "- x\n- y\n",
			[]TokenType{TDash, TScalar, TIndent, TDash, TScalar}},
		{"flow-seq", "[1, 2]",
			[]TokenType{TLSquare, TScalar, TComma, TScalar, TRSquare}},
		{"flow-map", "{a: 1}",
			[]TokenType{TLCurl, TScalar, TColon, TScalar, TRCurl}},
		{"doc-markers", "---\na\n...\n",
			[]TokenType{TDocSep, TIndent, TScalar, TDocEnd}},
		{"comment", "# c\nx # y\n",
			[]TokenType{TComment, TIndent, TScalar, TComment}},
		{"anchor", "&a x", []TokenType{TAnchor, TScalar}},
		{"alias", "*a", []TokenType{TAlias}},
		{"tag", "!t x", []TokenType{TTag, TScalar}},
		{"dash-scalar", "-1", []TokenType{TScalar}},
		{"colon-in-plain", "b:c", []TokenType{TScalar}},
		{"directive", "%YAML 1.2\nx\n", []TokenType{TIndent, TScalar}},
		{"quoted", `"a" 'b'`, []TokenType{TString, TString}},
		{"block", "|\n  x\n", []TokenType{TBlock}},
		{"block-own-line", "a:\n  |\n  x\n",
			[]TokenType{TScalar, TColon, TIndent, TBlock}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize(nil, []byte(tc.in))
			if err != nil {
				t.Fatalf("tokenize %q: %v", tc.in, err)
			}
			if got := types(toks); !typesEq(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestScalarResolution(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want string
	}{
		{"double-escapes", `"a\tb\nc"`, "a\tb\nc"},
		{"double-unicode", `"caf\u00e9"`, "café"},
		{"double-hex", `"\x41"`, "A"},
		{"double-fold", "\"a\n b\"", "a b"},
		{"double-fold-blank", "\"a\n\n b\"", "a\nb"},
		{"single-escape", `'it''s'`, "it's"},
		{"single-fold", "'a\n b'", "a b"},
		{"literal", "|\n  x\n  y\n", "x\ny\n"},
		{"literal-strip", "|-\n  x\n", "x"},
		{"literal-inner-blank", "|\n  x\n\n  y\n", "x\n\ny\n"},
		{"literal-explicit-indent", "|2\n  x\n", "x\n"},
		{"folded", ">\n  a\n  b\n", "a b\n"},
		{"folded-blank", ">\n  a\n\n  b\n", "a\nb\n"},
		{"folded-more-indented", ">\n  a\n    c\n  b\n", "a\n  c\nb\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize(nil, []byte(tc.in))
			if err != nil {
				t.Fatalf("tokenize %q: %v", tc.in, err)
			}
			if len(toks) != 1 {
				t.Fatalf("got %d tokens %v", len(toks), types(toks))
			}
			if got := toks[0].String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTokenPositions(t *testing.T) {
	toks, err := Tokenize(nil, []byte("a:\n  b: 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	find := func(text string) *Token {
		for i := range toks {
			if toks[i].Type == TScalar && toks[i].String() == text {
				return &toks[i]
			}
		}
		t.Fatalf("no token %q", text)
		return nil
	}
	if l, c := find("b").Pos.LineCol(); l != 1 || c != 2 {
		t.Errorf("b at line=%d col=%d", l, c)
	}
	if l, c := find("1").Pos.LineCol(); l != 1 || c != 5 {
		t.Errorf("1 at line=%d col=%d", l, c)
	}
}

func TestTokenizeErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want error
	}{
		{"unterminated-double", `"abc`, ErrUnterminated},
		{"unterminated-single", "'abc", ErrUnterminated},
		{"tab-indent", "\tx", ErrTabIndent},
		{"tab-indent-later", "a:\n\tb", ErrTabIndent},
		{"bad-anchor", "& x", ErrAnchorName},
		{"bad-escape", `"\q"`, ErrBadEscape},
		{"bad-block-header", "| x\n", ErrMalformedBlock},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Tokenize(nil, []byte(tc.in))
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
			var te *TokenizeErr
			if !errors.As(err, &te) {
				t.Errorf("error %v carries no position", err)
			}
		})
	}
}
