package node

// Equal reports whether a and b are structurally equal. Mappings compare
// as unordered key/value sets, sequences compare elementwise and scalars
// compare as text. Tags do not take part in the comparison.
func Equal(a, b *Node) bool {
	if a == nil {
		a = Null()
	}
	if b == nil {
		b = Null()
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case NullKind:
		return true
	case ScalarKind:
		return a.scalar == b.scalar
	case SequenceKind:
		if len(a.values) != len(b.values) {
			return false
		}
		for i, v := range a.values {
			if !Equal(v, b.values[i]) {
				return false
			}
		}
		return true
	case MappingKind:
		if len(a.keys) != len(b.keys) {
			return false
		}
		for i, k := range a.keys {
			j := b.keyIndex(k)
			if j < 0 || !Equal(a.values[i], b.values[j]) {
				return false
			}
		}
		return true
	}
	return false
}
