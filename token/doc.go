// Package token provides tokenization support for YAML documents.
//
// [Tokenize] converts raw bytes into a positioned token stream. Indentation
// is surfaced as explicit [TIndent] tokens at the start of every non-empty
// line so that the parser can maintain its indentation stack without
// re-scanning the input.
package token
