package node

import (
	"iter"
)

// Node is a single value in a parsed document. The zero value is the null
// node. Nodes are immutable once constructed.
type Node struct {
	kind   Kind
	tag    string
	scalar string
	keys   []string
	values []*Node
}

// Null returns a new null node.
func Null() *Node {
	return &Node{kind: NullKind}
}

// FromScalar returns a scalar node holding the given text.
func FromScalar(v string) *Node {
	return &Node{kind: ScalarKind, scalar: v}
}

// Pair is a single mapping entry.
type Pair struct {
	Key string
	Val *Node
}

// FromPairs returns a mapping node with the given entries in order. A
// repeated key replaces the earlier value in place.
func FromPairs(pairs []Pair) *Node {
	res := &Node{
		kind:   MappingKind,
		keys:   make([]string, 0, len(pairs)),
		values: make([]*Node, 0, len(pairs)),
	}
	for _, p := range pairs {
		v := p.Val
		if v == nil {
			v = Null()
		}
		if i := res.keyIndex(p.Key); i >= 0 {
			res.values[i] = v
			continue
		}
		res.keys = append(res.keys, p.Key)
		res.values = append(res.values, v)
	}
	return res
}

// FromSlice returns a sequence node over the given elements.
func FromSlice(elts []*Node) *Node {
	res := &Node{
		kind:   SequenceKind,
		values: make([]*Node, len(elts)),
	}
	for i, e := range elts {
		if e == nil {
			e = Null()
		}
		res.values[i] = e
	}
	return res
}

// WithTag returns a copy of n carrying the given tag.
func (n *Node) WithTag(tag string) *Node {
	if tag == "" || tag == n.tag {
		return n
	}
	res := *n
	res.tag = tag
	return &res
}

func (n *Node) Kind() Kind {
	return n.kind
}

// Tag returns the node's tag, or "" when untagged.
func (n *Node) Tag() string {
	return n.tag
}

func (n *Node) IsNull() bool {
	return n.kind == NullKind
}

// Scalar returns the node's text if and only if it is a scalar.
func (n *Node) Scalar() (string, bool) {
	if n.kind != ScalarKind {
		return "", false
	}
	return n.scalar, true
}

// Mapping returns an ordered key/value view if and only if the node is a
// mapping.
func (n *Node) Mapping() (MappingView, bool) {
	if n.kind != MappingKind {
		return MappingView{}, false
	}
	return MappingView{n: n}, true
}

// Sequence returns an indexed view if and only if the node is a sequence.
func (n *Node) Sequence() (SequenceView, bool) {
	if n.kind != SequenceKind {
		return SequenceView{}, false
	}
	return SequenceView{n: n}, true
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	res := &Node{
		kind:   n.kind,
		tag:    n.tag,
		scalar: n.scalar,
	}
	if n.keys != nil {
		res.keys = make([]string, len(n.keys))
		copy(res.keys, n.keys)
	}
	if n.values != nil {
		res.values = make([]*Node, len(n.values))
		for i, v := range n.values {
			res.values[i] = v.Clone()
		}
	}
	return res
}

// Visit walks the tree rooted at n in depth-first order. f is called once
// before descending (isPost false) and once after (isPost true); returning
// false from the pre call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

func (n *Node) keyIndex(key string) int {
	for i, k := range n.keys {
		if k == key {
			return i
		}
	}
	return -1
}

// MappingView is a read-only view of a mapping node's entries, in
// insertion order.
type MappingView struct {
	n *Node
}

func (m MappingView) Len() int {
	return len(m.n.keys)
}

func (m MappingView) Has(key string) bool {
	return m.n.keyIndex(key) >= 0
}

// Get returns the value for key, distinguishing an absent key from a
// present-but-null value.
func (m MappingView) Get(key string) (*Node, bool) {
	i := m.n.keyIndex(key)
	if i < 0 {
		return nil, false
	}
	return m.n.values[i], true
}

// Keys returns the mapping's keys in insertion order.
func (m MappingView) Keys() []string {
	res := make([]string, len(m.n.keys))
	copy(res, m.n.keys)
	return res
}

func (m MappingView) All() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for i, k := range m.n.keys {
			if !yield(k, m.n.values[i]) {
				return
			}
		}
	}
}

// SequenceView is a read-only view of a sequence node's elements.
type SequenceView struct {
	n *Node
}

func (s SequenceView) Len() int {
	return len(s.n.values)
}

// At returns the i-th element, or nil when i is out of range.
func (s SequenceView) At(i int) *Node {
	if i < 0 || i >= len(s.n.values) {
		return nil
	}
	return s.n.values[i]
}

func (s SequenceView) All() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		for i, v := range s.n.values {
			if !yield(i, v) {
				return
			}
		}
	}
}
