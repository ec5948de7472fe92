package diff

import (
	"testing"

	"github.com/arkadeleon/yamlnode/dump"
	"github.com/arkadeleon/yamlnode/parse"
)

func TestDiff(t *testing.T) {
	for _, tc := range []struct {
		name     string
		from, to string
		// rendered diff, or "" for no differences
		want string
	}{
		{"equal", "a: 1\nb: 2\n", "a: 1\nb: 2\n", ""},
		{"equal-reordered", "a: 1\nb: 2\n", "b: 2\na: 1\n", ""},
		{"scalar-change", "1", "2", "!chg - 1\n- 2"},
		{"kind-change", "a: 1\n", "[1]", "!chg - a: 1\n- - 1"},
		{"key-added", "a: 1\n", "a: 1\nb: 2\n", "b: !ins 2"},
		{"key-removed", "a: 1\nb: 2\n", "a: 1\n", "b: !del 2"},
		{"value-change", "a: 1\nb: 2\n", "a: 1\nb: 3\n", "b:\n  !chg - 2\n  - 3"},
		{"nested-change", "a:\n  b: 1\n  c: 2\n", "a:\n  b: 1\n  c: 3\n",
			"a:\n  c:\n    !chg - 2\n    - 3"},
		{"seq-insert", "- 1\n- 2\n", "- 1\n- 9\n- 2\n", "- 1\n- !ins 9\n- 2"},
		{"seq-delete", "- 1\n- 2\n- 3\n", "- 1\n- 3\n", "- 1\n- !del 2\n- 3"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			from, err := parse.ParseString(tc.from)
			if err != nil {
				t.Fatal(err)
			}
			to, err := parse.ParseString(tc.to)
			if err != nil {
				t.Fatal(err)
			}
			d := Diff(from, to)
			if tc.want == "" {
				if d != nil {
					t.Fatalf("got diff %q", dump.MustString(d))
				}
				return
			}
			if d == nil {
				t.Fatal("got no diff")
			}
			if got := dump.MustString(d); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
