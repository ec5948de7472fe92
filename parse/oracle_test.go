package parse

import (
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

// Cross-checks the tree against an independent YAML decoder by comparing
// the JSON projections. The inputs keep mapping keys in alphabetical
// order since encoding/json sorts the keys of a Go map.
func TestAgainstYAMLDecoder(t *testing.T) {
	for _, in := range []string{
		"42",
		"-7",
		"3.25",
		"true",
		"hello world",
		`"quoted text"`,
		"null",
		"~",
		"a: 1\nb: two\nc: true\n",
		"a:\n  b: 1\n  c: 2\nd: 3\n",
		"- 1\n- two\n- 3.5\n",
		"- a: 1\n- b: 2\n",
		"a:\n- 1\n- 2\nb: 3\n",
		"a: [1, 2, {b: 3}]\n",
		"{a: 1, b: [x, y]}",
		"{a: }",
		"{a: , b: 1}",
		"a: |\n  line1\n  line2\n",
		"a:\n  |\n  x\n",
		"a: |-\n  text\n",
		"a: 'it''s'\n",
		"# comment\na: 1 # more\n",
		"---\na: 1\n",
	} {
		n, err := ParseString(in)
		if err != nil {
			t.Errorf("parse %q: %v", in, err)
			continue
		}
		var ref any
		if err := yaml.Unmarshal([]byte(in), &ref); err != nil {
			t.Fatalf("reference decoder rejects %q: %v", in, err)
		}
		got, err := json.Marshal(n)
		if err != nil {
			t.Fatalf("marshal ours for %q: %v", in, err)
		}
		want, err := json.Marshal(ref)
		if err != nil {
			t.Fatalf("marshal reference for %q: %v", in, err)
		}
		if d := cmp.Diff(string(want), string(got)); d != "" {
			t.Errorf("%q: (-reference +ours)\n%s", in, d)
		}
	}
}
