package node

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// MarshalJSON renders the tree as natural JSON: mappings become objects
// in insertion order, sequences become arrays, scalars become numbers or
// booleans when their text coerces and strings otherwise.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, n *Node) error {
	switch n.kind {
	case NullKind:
		buf.WriteString("null")
	case ScalarKind:
		buf.WriteString(scalarJSON(n))
	case SequenceKind:
		buf.WriteByte('[')
		for i, v := range n.values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case MappingKind:
		buf.WriteByte('{')
		for i, k := range n.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kd, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(kd)
			buf.WriteByte(':')
			if err := writeJSON(buf, n.values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func scalarJSON(n *Node) string {
	if b, ok := n.Bool(); ok {
		return strconv.FormatBool(b)
	}
	if v, ok := n.Int(); ok {
		return strconv.FormatInt(v, 10)
	}
	if v, ok := n.Float(); ok {
		if d, err := json.Marshal(v); err == nil {
			return string(d)
		}
	}
	d, _ := json.Marshal(n.scalar)
	return string(d)
}

// Interface converts the tree to plain Go values: map[string]any for
// mappings, []any for sequences, nil for null and a coerced bool, int64,
// float64 or string for scalars.
func (n *Node) Interface() any {
	switch n.kind {
	case ScalarKind:
		if b, ok := n.Bool(); ok {
			return b
		}
		if v, ok := n.Int(); ok {
			return v
		}
		if v, ok := n.Float(); ok {
			return v
		}
		return n.scalar
	case SequenceKind:
		res := make([]any, len(n.values))
		for i, v := range n.values {
			res[i] = v.Interface()
		}
		return res
	case MappingKind:
		res := make(map[string]any, len(n.keys))
		for i, k := range n.keys {
			res[k] = n.values[i].Interface()
		}
		return res
	}
	return nil
}
