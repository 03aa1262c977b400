package syntax

import "sort"

// Parse tokenizes and parses content into a Tree. It never fails:
// malformed input produces NodeError elements and entries in
// Tree.Errors, and the tree remains lossless (every source byte is
// covered by exactly one leaf token).
func Parse(content []byte) *Tree {
	tree := &Tree{source: append([]byte(nil), content...)}
	tokens, lexErrs := lex(tree.source)

	p := &parser{tree: tree, tokens: tokens}
	root := p.node(NodeRoot)
	p.eatTrivia(root)

	if _, ok := p.peek(); ok {
		root.appendChild(p.parseExpr())
		p.eatTrivia(root)
	} else {
		p.errs = append(p.errs, ParseError{Kind: ErrUnexpectedEOF})
	}

	// Trailing input after a complete expression.
	if t, ok := p.peek(); ok {
		p.errs = append(p.errs, ParseError{
			Kind: ErrUnexpectedExtra,
			At:   NewRange(t.start, t.end),
			Got:  t.kind,
		})
		extra := p.node(NodeError)
		for p.pos < len(p.tokens) {
			p.consume(extra)
		}
		root.appendChild(p.finish(extra))
	}

	hoistTrivia(root)
	if root.FirstChild == nil {
		root.Range = NewRange(0, len(tree.source))
	}
	tree.Root = root

	tree.Errors = append(lexErrs, p.errs...)
	sort.SliceStable(tree.Errors, func(i, j int) bool {
		return tree.Errors[i].At.Start < tree.Errors[j].At.Start
	})
	return tree
}

type parser struct {
	tree   *Tree
	tokens []rawToken
	pos    int
	errs   []ParseError
}

// hoistTrivia lifts leading trivia tokens out of composite nodes into
// their parents, bottom-up. The parse attaches pending trivia to
// whichever node consumes the next real token, which would otherwise
// leave whitespace and comments inside the front of composite ranges.
// After hoisting, every composite range starts and ends at content.
func hoistTrivia(n *Node) {
	for c := n.FirstChild; c != nil; c = c.Next {
		if !c.IsToken() {
			hoistTrivia(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.Next {
		if c.IsToken() {
			continue
		}
		moved := false
		for c.FirstChild != nil && c.FirstChild.Kind.IsTrivia() {
			n.insertBefore(c.detachFirstChild(), c)
			moved = true
		}
		if moved && c.FirstChild != nil {
			c.coverChildren()
		}
	}
	n.coverChildren()
}

// node creates a fresh composite node positioned at the current offset.
// finish recomputes its range from its children.
func (p *parser) node(kind Kind) *Node {
	return &Node{Kind: kind, Range: EmptyRange(p.currentOffset()), tree: p.tree}
}

func (p *parser) finish(n *Node) *Node {
	n.coverChildren()
	return n
}

func (p *parser) currentOffset() int {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos].start
	}
	return len(p.tree.source)
}

// peek returns the next non-trivia token without consuming anything.
func (p *parser) peek() (rawToken, bool) {
	return p.peekN(0)
}

// peekN returns the nth non-trivia token ahead (0-based).
func (p *parser) peekN(n int) (rawToken, bool) {
	seen := 0
	for i := p.pos; i < len(p.tokens); i++ {
		if p.tokens[i].kind.IsTrivia() {
			continue
		}
		if seen == n {
			return p.tokens[i], true
		}
		seen++
	}
	return rawToken{}, false
}

func (p *parser) peekKind() (Kind, bool) {
	t, ok := p.peek()
	return t.kind, ok
}

// eatTrivia appends pending whitespace and comment tokens to parent.
func (p *parser) eatTrivia(parent *Node) {
	for p.pos < len(p.tokens) && p.tokens[p.pos].kind.IsTrivia() {
		p.consume(parent)
	}
}

// consume appends exactly one raw token to parent.
func (p *parser) consume(parent *Node) {
	t := p.tokens[p.pos]
	p.pos++
	parent.appendChild(&Node{
		Kind:  t.kind,
		Range: NewRange(t.start, t.end),
		tree:  p.tree,
	})
}

// bump appends pending trivia plus the next non-trivia token to parent.
func (p *parser) bump(parent *Node) {
	p.eatTrivia(parent)
	if p.pos < len(p.tokens) {
		p.consume(parent)
	}
}

// expect consumes the next token if it has the wanted kind. Otherwise
// it records a parse error and leaves the token in place.
func (p *parser) expect(parent *Node, kind Kind) bool {
	t, ok := p.peek()
	if !ok {
		p.errs = append(p.errs, ParseError{
			Kind:   ErrUnexpectedEOFWanted,
			Wanted: []Kind{kind},
		})
		return false
	}
	if t.kind != kind {
		p.errs = append(p.errs, ParseError{
			Kind:   ErrUnexpectedWanted,
			At:     NewRange(t.start, t.end),
			Got:    t.kind,
			Wanted: []Kind{kind},
		})
		return false
	}
	p.bump(parent)
	return true
}

func (p *parser) errUnexpected(t rawToken) {
	p.errs = append(p.errs, ParseError{
		Kind: ErrUnexpected,
		At:   NewRange(t.start, t.end),
		Got:  t.kind,
	})
}

// errorToken wraps the next token in a NodeError so the parse can make
// progress past input it does not understand.
func (p *parser) errorToken() *Node {
	n := p.node(NodeError)
	if _, ok := p.peek(); ok {
		p.bump(n)
	}
	return p.finish(n)
}

// parseExpr parses a full expression, dispatching on the leading token.
func (p *parser) parseExpr() *Node {
	k, ok := p.peekKind()
	if !ok {
		p.errs = append(p.errs, ParseError{Kind: ErrUnexpectedEOF})
		return p.node(NodeError)
	}
	switch k {
	case TokenLet:
		if t, ok := p.peekN(1); ok && t.kind == TokenCurlyOpen {
			return p.parseLegacyLet()
		}
		return p.parseLetIn()
	case TokenIf:
		return p.parseIfElse()
	case TokenWith:
		return p.parseWith()
	case TokenAssert:
		return p.parseAssert()
	case TokenIdent:
		if t, ok := p.peekN(1); ok && (t.kind == TokenColon || t.kind == TokenAt) {
			return p.parseLambda()
		}
	case TokenCurlyOpen:
		if p.patternAhead() {
			return p.parseLambda()
		}
	}
	return p.parseOp(1)
}

// patternAhead reports whether the '{' at the cursor opens a lambda
// pattern rather than an attrset, by finding the matching '}' and
// checking for a following ':' or '@'.
func (p *parser) patternAhead() bool {
	depth := 0
	for i := p.pos; i < len(p.tokens); i++ {
		switch p.tokens[i].kind {
		case TokenCurlyOpen, TokenDollarCurly:
			depth++
		case TokenCurlyClose:
			depth--
			if depth == 0 {
				for j := i + 1; j < len(p.tokens); j++ {
					if p.tokens[j].kind.IsTrivia() {
						continue
					}
					k := p.tokens[j].kind
					return k == TokenColon || k == TokenAt
				}
				return false
			}
		}
	}
	return false
}

func (p *parser) parseLetIn() *Node {
	n := p.node(NodeLetIn)
	p.expect(n, TokenLet)
	p.parseBindings(n, TokenIn)
	p.expect(n, TokenIn)
	n.appendChild(p.parseExpr())
	return p.finish(n)
}

func (p *parser) parseLegacyLet() *Node {
	n := p.node(NodeLegacyLet)
	p.expect(n, TokenLet)
	p.expect(n, TokenCurlyOpen)
	p.parseBindings(n, TokenCurlyClose)
	p.expect(n, TokenCurlyClose)
	return p.finish(n)
}

// parseBindings parses attrset/let bindings until the terminator kind
// or end of input.
func (p *parser) parseBindings(parent *Node, terminator Kind) {
	for {
		t, ok := p.peek()
		if !ok || t.kind == terminator {
			return
		}
		switch t.kind {
		case TokenInherit:
			parent.appendChild(p.parseInherit())
		case TokenIdent, TokenString, TokenDollarCurly:
			parent.appendChild(p.parseKeyValue())
		default:
			p.errUnexpected(t)
			parent.appendChild(p.errorToken())
		}
	}
}

func (p *parser) parseKeyValue() *Node {
	n := p.node(NodeKeyValue)
	n.appendChild(p.parseKey())
	p.expect(n, TokenAssign)
	n.appendChild(p.parseExpr())
	p.expect(n, TokenSemicolon)
	return p.finish(n)
}

// parseKey parses a dotted attribute path: a.b."c".${d}
func (p *parser) parseKey() *Node {
	n := p.node(NodeKey)
	n.appendChild(p.parseAttr())
	for {
		k, ok := p.peekKind()
		if !ok || k != TokenDot {
			break
		}
		p.bump(n)
		n.appendChild(p.parseAttr())
	}
	return p.finish(n)
}

// parseAttr parses a single attrpath component.
func (p *parser) parseAttr() *Node {
	k, ok := p.peekKind()
	if !ok {
		p.errs = append(p.errs, ParseError{
			Kind:   ErrUnexpectedEOFWanted,
			Wanted: []Kind{TokenIdent},
		})
		return p.node(NodeError)
	}
	switch k {
	case TokenIdent:
		return p.parseIdent()
	case TokenString:
		return p.parseString()
	case TokenDollarCurly:
		return p.parseDynamic()
	}
	t, _ := p.peek()
	p.errUnexpected(t)
	return p.errorToken()
}

func (p *parser) parseIdent() *Node {
	n := p.node(NodeIdent)
	p.expect(n, TokenIdent)
	return p.finish(n)
}

func (p *parser) parseString() *Node {
	n := p.node(NodeString)
	p.expect(n, TokenString)
	return p.finish(n)
}

func (p *parser) parseDynamic() *Node {
	n := p.node(NodeDynamic)
	p.expect(n, TokenDollarCurly)
	n.appendChild(p.parseExpr())
	p.expect(n, TokenCurlyClose)
	return p.finish(n)
}

func (p *parser) parseInherit() *Node {
	n := p.node(NodeInherit)
	p.expect(n, TokenInherit)
	if k, ok := p.peekKind(); ok && k == TokenParenOpen {
		from := p.node(NodeInheritFrom)
		p.bump(from)
		from.appendChild(p.parseExpr())
		p.expect(from, TokenParenClose)
		n.appendChild(p.finish(from))
	}
	for {
		k, ok := p.peekKind()
		if !ok {
			break
		}
		if k == TokenIdent {
			n.appendChild(p.parseIdent())
			continue
		}
		if k == TokenString {
			n.appendChild(p.parseString())
			continue
		}
		break
	}
	p.expect(n, TokenSemicolon)
	return p.finish(n)
}

func (p *parser) parseIfElse() *Node {
	n := p.node(NodeIfElse)
	p.expect(n, TokenIf)
	n.appendChild(p.parseExpr())
	p.expect(n, TokenThen)
	n.appendChild(p.parseExpr())
	p.expect(n, TokenElse)
	n.appendChild(p.parseExpr())
	return p.finish(n)
}

func (p *parser) parseWith() *Node {
	n := p.node(NodeWith)
	p.expect(n, TokenWith)
	n.appendChild(p.parseExpr())
	p.expect(n, TokenSemicolon)
	n.appendChild(p.parseExpr())
	return p.finish(n)
}

func (p *parser) parseAssert() *Node {
	n := p.node(NodeAssert)
	p.expect(n, TokenAssert)
	n.appendChild(p.parseExpr())
	p.expect(n, TokenSemicolon)
	n.appendChild(p.parseExpr())
	return p.finish(n)
}

func (p *parser) parseLambda() *Node {
	n := p.node(NodeLambda)
	k, _ := p.peekKind()
	if k == TokenIdent {
		if t, ok := p.peekN(1); ok && t.kind == TokenAt {
			n.appendChild(p.parsePattern())
		} else {
			n.appendChild(p.parseIdent())
		}
	} else {
		n.appendChild(p.parsePattern())
	}
	p.expect(n, TokenColon)
	n.appendChild(p.parseExpr())
	return p.finish(n)
}

func (p *parser) parsePattern() *Node {
	pat := p.node(NodePattern)

	// Leading binding: ident @ { ... }
	if k, ok := p.peekKind(); ok && k == TokenIdent {
		pb := p.node(NodePatBind)
		pb.appendChild(p.parseIdent())
		p.expect(pb, TokenAt)
		pat.appendChild(p.finish(pb))
	}

	p.expect(pat, TokenCurlyOpen)
	for {
		k, ok := p.peekKind()
		if !ok || k == TokenCurlyClose {
			break
		}
		if k == TokenEllipsis {
			p.bump(pat)
		} else if k == TokenIdent {
			pat.appendChild(p.parsePatEntry())
		} else {
			t, _ := p.peek()
			p.errUnexpected(t)
			pat.appendChild(p.errorToken())
			continue
		}
		if k, ok := p.peekKind(); ok && k == TokenComma {
			p.bump(pat)
			continue
		}
		break
	}
	p.expect(pat, TokenCurlyClose)

	// Trailing binding: { ... } @ ident
	if k, ok := p.peekKind(); ok && k == TokenAt {
		pb := p.node(NodePatBind)
		p.bump(pb)
		pb.appendChild(p.parseIdent())
		pat.appendChild(p.finish(pb))
	}
	return p.finish(pat)
}

func (p *parser) parsePatEntry() *Node {
	n := p.node(NodePatEntry)
	n.appendChild(p.parseIdent())
	if k, ok := p.peekKind(); ok && k == TokenQuestion {
		p.bump(n)
		n.appendChild(p.parseExpr())
	}
	return p.finish(n)
}

// binaryPrec returns the binding power of a binary operator token, or
// ok == false for non-operators. Higher binds tighter.
func binaryPrec(k Kind) (prec int, rightAssoc bool, ok bool) {
	switch k {
	case TokenImplication:
		return 1, true, true
	case TokenOr:
		return 2, false, true
	case TokenAnd:
		return 3, false, true
	case TokenEqual, TokenNotEqual:
		return 4, false, true
	case TokenLess, TokenLessOrEq, TokenMore, TokenMoreOrEq:
		return 5, false, true
	case TokenUpdate:
		return 6, true, true
	case TokenQuestion:
		return 7, false, true
	case TokenAdd, TokenSub:
		return 8, false, true
	case TokenMul, TokenDiv:
		return 9, false, true
	case TokenConcat:
		return 10, true, true
	}
	return 0, false, false
}

// parseOp implements precedence climbing over binary operators.
func (p *parser) parseOp(minPrec int) *Node {
	lhs := p.parseUnary()
	for {
		k, ok := p.peekKind()
		if !ok {
			break
		}
		prec, rightAssoc, isOp := binaryPrec(k)
		if !isOp || prec < minPrec {
			break
		}
		n := p.node(NodeBinOp)
		n.appendChild(lhs)
		p.bump(n)
		next := prec + 1
		if rightAssoc {
			next = prec
		}
		n.appendChild(p.parseOp(next))
		lhs = p.finish(n)
	}
	return lhs
}

func (p *parser) parseUnary() *Node {
	if k, ok := p.peekKind(); ok && (k == TokenNot || k == TokenSub) {
		n := p.node(NodeUnaryOp)
		p.bump(n)
		n.appendChild(p.parseUnary())
		return p.finish(n)
	}
	return p.parseApply()
}

// atomStart reports whether k can begin a function argument.
func atomStart(k Kind) bool {
	switch k {
	case TokenIdent, TokenInt, TokenFloat, TokenPath, TokenURI,
		TokenString, TokenParenOpen, TokenCurlyOpen, TokenSquareOpen,
		TokenRec:
		return true
	}
	return false
}

func (p *parser) parseApply() *Node {
	lhs := p.parseSelect()
	for {
		k, ok := p.peekKind()
		if !ok || !atomStart(k) {
			break
		}
		n := p.node(NodeApply)
		n.appendChild(lhs)
		n.appendChild(p.parseSelect())
		lhs = p.finish(n)
	}
	return lhs
}

func (p *parser) parseSelect() *Node {
	expr := p.parseAtom()
	for {
		k, ok := p.peekKind()
		if !ok || k != TokenDot {
			break
		}
		n := p.node(NodeSelect)
		n.appendChild(expr)
		p.bump(n)
		n.appendChild(p.parseAttr())
		expr = p.finish(n)
	}
	if k, ok := p.peekKind(); ok && k == TokenOrKeyword {
		n := p.node(NodeOrDefault)
		n.appendChild(expr)
		p.bump(n)
		n.appendChild(p.parseSelect())
		expr = p.finish(n)
	}
	return expr
}

func (p *parser) parseAtom() *Node {
	k, ok := p.peekKind()
	if !ok {
		p.errs = append(p.errs, ParseError{Kind: ErrUnexpectedEOF})
		return p.node(NodeError)
	}
	switch k {
	case TokenIdent:
		return p.parseIdent()
	case TokenInt, TokenFloat, TokenPath, TokenURI:
		n := p.node(NodeLiteral)
		p.bump(n)
		return p.finish(n)
	case TokenString:
		return p.parseString()
	case TokenDollarCurly:
		return p.parseDynamic()
	case TokenParenOpen:
		n := p.node(NodeParen)
		p.bump(n)
		n.appendChild(p.parseExpr())
		p.expect(n, TokenParenClose)
		return p.finish(n)
	case TokenSquareOpen:
		n := p.node(NodeList)
		p.bump(n)
		for {
			k, ok := p.peekKind()
			if !ok || !atomStart(k) {
				break
			}
			n.appendChild(p.parseSelect())
		}
		p.expect(n, TokenSquareClose)
		return p.finish(n)
	case TokenCurlyOpen:
		return p.parseAttrSet(false)
	case TokenRec:
		return p.parseAttrSet(true)
	case TokenLet, TokenIf, TokenWith, TokenAssert:
		return p.parseExpr()
	}
	t, _ := p.peek()
	p.errUnexpected(t)
	return p.errorToken()
}

func (p *parser) parseAttrSet(rec bool) *Node {
	n := p.node(NodeAttrSet)
	if rec {
		p.expect(n, TokenRec)
	}
	p.expect(n, TokenCurlyOpen)
	p.parseBindings(n, TokenCurlyClose)
	p.expect(n, TokenCurlyClose)
	return p.finish(n)
}
