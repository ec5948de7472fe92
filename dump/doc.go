// Package dump renders node trees back to YAML block style, optionally
// colorized for terminal display. Output from Dump re-parses to an equal
// tree.
package dump
