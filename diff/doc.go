// Package diff computes structural diffs between node trees.
//
// A diff is itself a node tree. Changed positions carry marker tags:
//
//   - !ins marks an inserted value
//   - !del marks a deleted value
//   - !chg marks a replaced value, as a two element sequence [from, to]
//
// Mappings diff to a mapping holding only the changed keys. Sequences
// diff to a sequence holding unchanged elements as is and changed
// elements marked. Diff returns nil when the trees are equal.
package diff
