// Package node defines the document tree produced by parsing YAML text.
//
// # Overview
//
// A [Node] is a closed tagged union over four kinds: mapping, sequence,
// scalar and null. Exactly one kind is active, fixed at construction, and
// the tree is immutable afterwards: accessors return views, there are no
// setters, and transformations produce new trees.
//
// Each child is owned by exactly one parent container and nodes carry no
// parent back-references, so a tree is safe to share and read concurrently
// without synchronization.
//
// # Kinds and accessors
//
// Querying a node for the wrong kind is a normal code path and yields
// absence, never an error and never a fabricated default:
//
//	if m, ok := n.Mapping(); ok {
//	    v, _ := m.Get("name")
//	    ...
//	}
//	if s, ok := n.Scalar(); ok {
//	    ...
//	}
//
// # Scalar typing
//
// Scalars store raw text. Interpreting that text as a bool, integer or
// float is a query-time operation ([Node.Bool], [Node.Int], [Node.Float]);
// nothing is coerced at parse time, so no fidelity is lost for consumers
// that want the literal form.
//
// # Equality
//
// [Equal] compares structurally: mappings are equal regardless of key
// order, sequences and scalars compare exactly, and kinds must match.
package node
