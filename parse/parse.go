package parse

import (
	"errors"

	"github.com/arkadeleon/yamlnode/node"
	"github.com/arkadeleon/yamlnode/token"
)

// Parse reads one document from d and returns its tree. Only the first
// document is parsed: a leading "---" is consumed, and everything past a
// subsequent "---" or "..." is ignored. An empty document yields the null
// node.
func Parse(d []byte, opts ...Option) (*node.Node, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, mapTokenErr(err)
	}
	p := &parser{opts: o, anchors: map[string]*node.Node{}}
	for i := range toks {
		switch toks[i].Type {
		case token.TIndent, token.TComment:
		default:
			p.toks = append(p.toks, toks[i])
		}
	}
	if t := p.cur(); t != nil && t.Type == token.TDocSep {
		p.i++
	}
	t := p.cur()
	if atDocBoundary(t) {
		return node.Null(), nil
	}
	v, err := p.parseValue(-1, t.Pos.Line())
	if err != nil {
		return nil, err
	}
	switch t := p.cur(); {
	case t == nil:
	case t.Type == token.TDocEnd, t.Type == token.TDocSep:
		// later documents are out of scope
	default:
		return nil, p.errAt(ErrSyntax, t, "unexpected %q after document", t.String())
	}
	return v, nil
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...Option) (*node.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	toks    []token.Token
	i       int
	opts    *options
	anchors map[string]*node.Node
	// columns of the enclosing block collections
	indents []int
}

func (p *parser) cur() *token.Token {
	if p.i < len(p.toks) {
		return &p.toks[p.i]
	}
	return nil
}

func (p *parser) peek() *token.Token {
	if p.i+1 < len(p.toks) {
		return &p.toks[p.i+1]
	}
	return nil
}

func (p *parser) record(n *node.Node, pos *token.Pos) {
	if p.opts.positions != nil && pos != nil {
		p.opts.positions[n] = pos
	}
}

func (p *parser) errAt(kind error, t *token.Token, format string, args ...any) *Error {
	l, c := t.Pos.LineCol()
	return newError(kind, l, c, format, args...)
}

func (p *parser) errEOF(kind error, format string, args ...any) *Error {
	l, c := 0, 0
	if len(p.toks) > 0 {
		l, c = p.toks[len(p.toks)-1].Pos.LineCol()
	}
	return newError(kind, l, c, format, args...)
}

// checkDedent validates that a token left of the current block lines up
// with one of the enclosing blocks.
func (p *parser) checkDedent(t *token.Token) error {
	c := t.Pos.Col()
	for _, lvl := range p.indents {
		if lvl == c {
			return nil
		}
	}
	return p.errAt(ErrIndentation, t, "column %d matches no enclosing block", c)
}

func atDocBoundary(t *token.Token) bool {
	return t == nil || t.Type == token.TDocSep || t.Type == token.TDocEnd
}

// parseValue parses the value owned by a construct on line whose block
// sits at column minCol. A following token that has moved to a later
// line without indenting past minCol means the value is absent.
func (p *parser) parseValue(minCol, line int) (*node.Node, error) {
	anchor, tag := "", ""
	for {
		t := p.cur()
		if t == nil {
			break
		}
		if t.Type == token.TAnchor {
			anchor = t.Name()
			line = t.Pos.Line()
			p.i++
			continue
		}
		if t.Type == token.TTag {
			tag = t.String()
			line = t.Pos.Line()
			p.i++
			continue
		}
		break
	}
	v, err := p.parseBareValue(minCol, line)
	if err != nil {
		return nil, err
	}
	if tag != "" {
		v = v.WithTag(tag)
	}
	if anchor != "" {
		p.anchors[anchor] = v
	}
	return v, nil
}

func (p *parser) parseBareValue(minCol, line int) (*node.Node, error) {
	t := p.cur()
	if atDocBoundary(t) {
		return node.Null(), nil
	}
	tl, tc := t.Pos.LineCol()
	if tl > line && tc <= minCol {
		// the token belongs to an enclosing block
		return node.Null(), nil
	}
	switch t.Type {
	case token.TLCurl:
		return p.parseFlowMapping(t)
	case token.TLSquare:
		return p.parseFlowSequence(t)
	case token.TDash:
		return p.parseBlockSequence(tc)
	case token.TAlias:
		return p.resolveAlias(t)
	case token.TScalar:
		if p.colonFollows(t) {
			return p.parseBlockMapping(tc)
		}
		p.i++
		return p.plainScalar(t), nil
	case token.TString:
		if p.colonFollows(t) {
			return p.parseBlockMapping(tc)
		}
		p.i++
		v := node.FromScalar(t.String())
		p.record(v, t.Pos)
		return v, nil
	case token.TBlock:
		p.i++
		v := node.FromScalar(t.String())
		p.record(v, t.Pos)
		return v, nil
	default:
		return nil, p.errAt(ErrSyntax, t, "unexpected %q", t.String())
	}
}

// colonFollows reports whether the scalar at t opens a block mapping
// entry, which requires the ':' on the same line as the key.
func (p *parser) colonFollows(t *token.Token) bool {
	n := p.peek()
	return n != nil && n.Type == token.TColon && n.Pos.Line() == t.Pos.Line()
}

// plainScalar turns a plain scalar token into a node, recognizing the
// null literals. Quoted scalars never null out.
func (p *parser) plainScalar(t *token.Token) *node.Node {
	var v *node.Node
	if node.IsNullLiteral(t.String()) {
		v = node.Null()
	} else {
		v = node.FromScalar(t.String())
	}
	p.record(v, t.Pos)
	return v
}

func (p *parser) resolveAlias(t *token.Token) (*node.Node, error) {
	ref, ok := p.anchors[t.Name()]
	if !ok {
		return nil, p.errAt(ErrSyntax, t, "unknown alias *%s", t.Name())
	}
	p.i++
	v := ref.Clone()
	p.record(v, t.Pos)
	return v, nil
}

func (p *parser) parseBlockMapping(col int) (*node.Node, error) {
	first := p.cur()
	p.indents = append(p.indents, col)
	defer func() {
		p.indents = p.indents[:len(p.indents)-1]
	}()
	var acc mapAcc
	for {
		t := p.cur()
		if atDocBoundary(t) {
			break
		}
		tl, tc := t.Pos.LineCol()
		if tc < col {
			if err := p.checkDedent(t); err != nil {
				return nil, err
			}
			break
		}
		if tc > col {
			return nil, p.errAt(ErrIndentation, t, "unexpected indentation to column %d", tc)
		}
		if t.Type != token.TScalar && t.Type != token.TString {
			return nil, p.errAt(ErrSyntax, t, "expected mapping key, got %q", t.String())
		}
		key := t.String()
		p.i++
		colon := p.cur()
		if colon == nil || colon.Type != token.TColon || colon.Pos.Line() != tl {
			return nil, p.errAt(ErrSyntax, t, "expected ':' after mapping key %q", key)
		}
		p.i++
		var v *node.Node
		var err error
		if d := p.cur(); d != nil && d.Type == token.TDash &&
			d.Pos.Col() == col && d.Pos.Line() > tl {
			// a sequence may sit at its key's own column
			v, err = p.parseBlockSequence(col)
		} else {
			v, err = p.parseValue(col, tl)
		}
		if err != nil {
			return nil, err
		}
		if err := p.putEntry(&acc, key, t, v); err != nil {
			return nil, err
		}
	}
	res := node.FromPairs(acc.pairs)
	p.record(res, first.Pos)
	return res, nil
}

func (p *parser) parseBlockSequence(col int) (*node.Node, error) {
	first := p.cur()
	p.indents = append(p.indents, col)
	defer func() {
		p.indents = p.indents[:len(p.indents)-1]
	}()
	var elts []*node.Node
	for {
		t := p.cur()
		if atDocBoundary(t) {
			break
		}
		tl, tc := t.Pos.LineCol()
		if tc < col {
			if err := p.checkDedent(t); err != nil {
				return nil, err
			}
			break
		}
		if tc > col {
			return nil, p.errAt(ErrIndentation, t, "unexpected indentation to column %d", tc)
		}
		if t.Type != token.TDash {
			// a mapping key of the enclosing block at the same column
			break
		}
		p.i++
		v, err := p.parseValue(tc, tl)
		if err != nil {
			return nil, err
		}
		elts = append(elts, v)
	}
	res := node.FromSlice(elts)
	p.record(res, first.Pos)
	return res, nil
}

func (p *parser) parseFlowMapping(open *token.Token) (*node.Node, error) {
	p.i++
	var acc mapAcc
	for {
		t := p.cur()
		if t == nil {
			return nil, p.unclosed(open, "flow mapping")
		}
		if t.Type == token.TRCurl {
			p.i++
			break
		}
		if t.Type != token.TScalar && t.Type != token.TString {
			return nil, p.errAt(ErrSyntax, t, "expected flow mapping key, got %q", t.String())
		}
		key := t.String()
		keyTok := t
		p.i++
		v := node.Null()
		if c := p.cur(); c != nil && c.Type == token.TColon {
			p.i++
			if !p.flowValueAbsent() {
				var err error
				v, err = p.parseFlowValue(open)
				if err != nil {
					return nil, err
				}
			}
		}
		if err := p.putEntry(&acc, key, keyTok, v); err != nil {
			return nil, err
		}
		switch t := p.cur(); {
		case t == nil:
			return nil, p.unclosed(open, "flow mapping")
		case t.Type == token.TComma:
			p.i++
		case t.Type == token.TRCurl:
		default:
			return nil, p.errAt(ErrSyntax, t, "expected ',' or '}', got %q", t.String())
		}
	}
	res := node.FromPairs(acc.pairs)
	p.record(res, open.Pos)
	return res, nil
}

func (p *parser) parseFlowSequence(open *token.Token) (*node.Node, error) {
	p.i++
	var elts []*node.Node
	for {
		t := p.cur()
		if t == nil {
			return nil, p.unclosed(open, "flow sequence")
		}
		if t.Type == token.TRSquare {
			p.i++
			break
		}
		v, err := p.parseFlowValue(open)
		if err != nil {
			return nil, err
		}
		elts = append(elts, v)
		switch t := p.cur(); {
		case t == nil:
			return nil, p.unclosed(open, "flow sequence")
		case t.Type == token.TComma:
			p.i++
		case t.Type == token.TRSquare:
		default:
			return nil, p.errAt(ErrSyntax, t, "expected ',' or ']', got %q", t.String())
		}
	}
	res := node.FromSlice(elts)
	p.record(res, open.Pos)
	return res, nil
}

// flowValueAbsent reports whether the current token ends a flow entry
// before any value, as in {a: } or [a: , b]. The missing value is null.
func (p *parser) flowValueAbsent() bool {
	t := p.cur()
	if t == nil {
		return false
	}
	switch t.Type {
	case token.TComma, token.TRCurl, token.TRSquare:
		return true
	}
	return false
}

func (p *parser) unclosed(open *token.Token, what string) *Error {
	return p.errEOF(ErrSyntax, "%s opened at line=%d, col=%d is not closed",
		what, open.Pos.Line(), open.Pos.Col())
}

func (p *parser) parseFlowValue(open *token.Token) (*node.Node, error) {
	anchor, tag := "", ""
	for {
		t := p.cur()
		if t == nil {
			break
		}
		if t.Type == token.TAnchor {
			anchor = t.Name()
			p.i++
			continue
		}
		if t.Type == token.TTag {
			tag = t.String()
			p.i++
			continue
		}
		break
	}
	v, err := p.parseBareFlowValue(open)
	if err != nil {
		return nil, err
	}
	if tag != "" {
		v = v.WithTag(tag)
	}
	if anchor != "" {
		p.anchors[anchor] = v
	}
	return v, nil
}

func (p *parser) parseBareFlowValue(open *token.Token) (*node.Node, error) {
	t := p.cur()
	if t == nil {
		return nil, p.unclosed(open, "flow collection")
	}
	switch t.Type {
	case token.TLCurl:
		return p.parseFlowMapping(t)
	case token.TLSquare:
		return p.parseFlowSequence(t)
	case token.TAlias:
		return p.resolveAlias(t)
	case token.TScalar, token.TString:
		if n := p.peek(); n != nil && n.Type == token.TColon {
			// a bare pair inside a flow sequence, as in [a: 1]
			key := t.String()
			keyTok := t
			p.i += 2
			v := node.Null()
			if !p.flowValueAbsent() {
				var err error
				v, err = p.parseFlowValue(open)
				if err != nil {
					return nil, err
				}
			}
			res := node.FromPairs([]node.Pair{{Key: key, Val: v}})
			p.record(res, keyTok.Pos)
			return res, nil
		}
		p.i++
		if t.Type == token.TString {
			v := node.FromScalar(t.String())
			p.record(v, t.Pos)
			return v, nil
		}
		return p.plainScalar(t), nil
	default:
		return nil, p.errAt(ErrSyntax, t, "unexpected %q in flow collection", t.String())
	}
}

type mapAcc struct {
	pairs []node.Pair
}

func (a *mapAcc) index(key string) int {
	for i := range a.pairs {
		if a.pairs[i].Key == key {
			return i
		}
	}
	return -1
}

// putEntry adds a mapping entry. A repeated key replaces the earlier
// value in place, or errors under Strict.
func (p *parser) putEntry(acc *mapAcc, key string, keyTok *token.Token, v *node.Node) error {
	if i := acc.index(key); i >= 0 {
		if p.opts.strict {
			return p.errAt(ErrDuplicateKey, keyTok, "key %q repeats", key)
		}
		acc.pairs[i].Val = v
		return nil
	}
	acc.pairs = append(acc.pairs, node.Pair{Key: key, Val: v})
	return nil
}

// mapTokenErr rewrites a tokenizer error into a positioned parse error.
func mapTokenErr(err error) error {
	kind := ErrSyntax
	switch {
	case errors.Is(err, token.ErrUnterminated):
		kind = ErrUnterminatedScalar
	case errors.Is(err, token.ErrTabIndent):
		kind = ErrIndentation
	}
	line, col := 0, 0
	msg := err.Error()
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		line, col = te.Pos.LineCol()
		msg = te.Err.Error()
	}
	return newError(kind, line, col, "%s", msg)
}
