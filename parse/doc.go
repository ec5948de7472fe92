// Package parse parses YAML text into node trees.
//
// # Usage
//
//	// Parse a document
//	n, err := parse.Parse([]byte(`{name: "alice", age: 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from a string
//	n, err := parse.ParseString(`[1, 2, 3]`)
//
//	// Reject duplicate mapping keys
//	n, err := parse.Parse(data, parse.Strict())
//
// Errors carry a 0-based line and column and wrap one of the package's
// sentinel errors, so callers can classify with errors.Is.
//
// # Related Packages
//
//   - github.com/arkadeleon/yamlnode/node - document tree
//   - github.com/arkadeleon/yamlnode/token - tokenization
package parse
