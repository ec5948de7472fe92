package diff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/arkadeleon/yamlnode/dump"
	"github.com/arkadeleon/yamlnode/node"
)

const (
	InsertTag = "!ins"
	DeleteTag = "!del"
	ChangeTag = "!chg"
)

// Diff returns the structural diff taking from to to, or nil when the
// trees are equal.
func Diff(from, to *node.Node) *node.Node {
	if from == nil {
		from = node.Null()
	}
	if to == nil {
		to = node.Null()
	}
	if from.Kind() != to.Kind() {
		return change(from, to)
	}
	switch from.Kind() {
	case node.MappingKind:
		return diffMapping(from, to)
	case node.SequenceKind:
		return diffSequence(from, to)
	default:
		if node.Equal(from, to) {
			return nil
		}
		return change(from, to)
	}
}

func change(from, to *node.Node) *node.Node {
	return node.FromSlice([]*node.Node{from, to}).WithTag(ChangeTag)
}

// diffMapping lines the two key sets up with an edit script over runes,
// one rune per distinct key, and recurses on keys both sides share.
func diffMapping(from, to *node.Node) *node.Node {
	fm, _ := from.Mapping()
	tm, _ := to.Mapping()
	keyRune := map[string]rune{}
	runeKey := map[rune]string{}
	fromRunes := keysToRunes(keyRune, runeKey, fm.Keys())
	toRunes := keysToRunes(keyRune, runeKey, tm.Keys())
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var pairs []node.Pair
	for i := range diffs {
		d := &diffs[i]
		for _, r := range d.Text {
			key := runeKey[r]
			switch d.Type {
			case diffpatch.DiffDelete:
				if tm.Has(key) {
					// reordered, handled on the insert side
					continue
				}
				v, _ := fm.Get(key)
				pairs = append(pairs, node.Pair{Key: key, Val: v.WithTag(DeleteTag)})
			case diffpatch.DiffInsert:
				if fv, ok := fm.Get(key); ok {
					tv, _ := tm.Get(key)
					if sub := Diff(fv, tv); sub != nil {
						pairs = append(pairs, node.Pair{Key: key, Val: sub})
					}
					continue
				}
				v, _ := tm.Get(key)
				pairs = append(pairs, node.Pair{Key: key, Val: v.WithTag(InsertTag)})
			case diffpatch.DiffEqual:
				fv, _ := fm.Get(key)
				tv, _ := tm.Get(key)
				if sub := Diff(fv, tv); sub != nil {
					pairs = append(pairs, node.Pair{Key: key, Val: sub})
				}
			}
		}
	}
	if len(pairs) == 0 {
		return nil
	}
	return node.FromPairs(pairs)
}

func keysToRunes(m map[string]rune, im map[rune]string, keys []string) []rune {
	res := make([]rune, 0, len(keys))
	for _, k := range keys {
		r, ok := m[k]
		if !ok {
			r = rune(len(m) + 1)
			m[k] = r
			im[r] = k
		}
		res = append(res, r)
	}
	return res
}

// diffSequence lines elements up by their rendered fingerprint. Equal
// fingerprints pass through untouched, the rest are marked inserted or
// deleted.
func diffSequence(from, to *node.Node) *node.Node {
	fs, _ := from.Sequence()
	ts, _ := to.Sequence()
	fpRune := map[string]rune{}
	fromRunes := make([]rune, 0, fs.Len())
	toRunes := make([]rune, 0, ts.Len())
	for _, v := range fs.All() {
		fromRunes = append(fromRunes, fingerprint(fpRune, v))
	}
	for _, v := range ts.All() {
		toRunes = append(toRunes, fingerprint(fpRune, v))
	}
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var elts []*node.Node
	changed := false
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		for range d.Text {
			switch d.Type {
			case diffpatch.DiffDelete:
				elts = append(elts, fs.At(fi).WithTag(DeleteTag))
				changed = true
				fi++
			case diffpatch.DiffInsert:
				elts = append(elts, ts.At(ti).WithTag(InsertTag))
				changed = true
				ti++
			case diffpatch.DiffEqual:
				elts = append(elts, fs.At(fi))
				fi++
				ti++
			}
		}
	}
	if !changed {
		return nil
	}
	return node.FromSlice(elts)
}

func fingerprint(m map[string]rune, n *node.Node) rune {
	key := dump.MustString(n)
	r, ok := m[key]
	if !ok {
		r = rune(len(m) + 1)
		m[key] = r
	}
	return r
}
