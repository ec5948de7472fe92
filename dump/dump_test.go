package dump

import (
	"testing"

	"github.com/arkadeleon/yamlnode/node"
	"github.com/arkadeleon/yamlnode/parse"
)

func TestDump(t *testing.T) {
	for _, tc := range []struct {
		name string
		n    *node.Node
		want string
	}{
		{"null", node.Null(), "null"},
		{"scalar", node.FromScalar("hi"), "hi"},
		{"number-text-stays-plain", node.FromScalar("42"), "42"},
		{"null-literal-text-quoted", node.FromScalar("~"), `"~"`},
		{"empty-text-quoted", node.FromScalar(""), `""`},
		{"space-text-quoted", node.FromScalar("a "), `"a "`},
		{"newline-text-quoted", node.FromScalar("a\nb"), `"a\nb"`},
		{"empty-map", node.FromPairs(nil), "{}"},
		{"empty-seq", node.FromSlice(nil), "[]"},
		{"map", node.FromPairs([]node.Pair{
			{Key: "a", Val: node.FromScalar("1")},
			{Key: "b", Val: node.Null()},
		}), "a: 1\nb: null"},
		{"nested-map", node.FromPairs([]node.Pair{
			{Key: "a", Val: node.FromPairs([]node.Pair{
				{Key: "b", Val: node.FromScalar("1")},
			})},
		}), "a:\n  b: 1"},
		{"seq", node.FromSlice([]*node.Node{
			node.FromScalar("x"),
			node.FromScalar("y"),
		}), "- x\n- y"},
		{"seq-of-maps", node.FromSlice([]*node.Node{
			node.FromPairs([]node.Pair{
				{Key: "a", Val: node.FromScalar("1")},
				{Key: "b", Val: node.FromScalar("2")},
			}),
		}), "- a: 1\n  b: 2"},
		{"seq-under-key", node.FromPairs([]node.Pair{
			{Key: "a", Val: node.FromSlice([]*node.Node{node.FromScalar("1")})},
		}), "a:\n  - 1"},
		{"tagged", node.FromScalar("x").WithTag("!secret"), "!secret x"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := MustString(tc.n); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, in := range []string{
		"a: 1\nb: [1, 2]\nc:\n  d: text\n",
		"- 1\n- a: 2\n  b: 3\n- ~\n",
		"a: \"has: colon\"\nb: 'it''s'\n",
		"a: |\n  line1\n  line2\n",
		"empty: {}\nnone: []\n",
	} {
		orig, err := parse.ParseString(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		out := MustString(orig)
		back, err := parse.ParseString(out)
		if err != nil {
			t.Fatalf("reparse %q: %v", out, err)
		}
		if !node.Equal(orig, back) {
			t.Errorf("round trip of %q changed the tree:\n%s", in, out)
		}
	}
}

func TestColorsCover(t *testing.T) {
	c := NewColors()
	for _, k := range node.Kinds() {
		if c.Get(k, TagColor) == nil || c.Get(k, SepColor) == nil {
			t.Errorf("kind %v missing color", k)
		}
	}
	if got := c.Color(node.ScalarKind, ValueColor, "100%"); got == "" {
		t.Error("empty colorized text")
	}
}
