package node

import "fmt"

// Kind discriminates a Node's active variant.
type Kind int

const (
	NullKind Kind = iota
	ScalarKind
	MappingKind
	SequenceKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:     "Null",
		ScalarKind:   "Scalar",
		MappingKind:  "Mapping",
		SequenceKind: "Sequence",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":     NullKind,
		"Scalar":   ScalarKind,
		"Mapping":  MappingKind,
		"Sequence": SequenceKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		ScalarKind,
		MappingKind,
		SequenceKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case MappingKind, SequenceKind:
		return false
	default:
		return true
	}
}
