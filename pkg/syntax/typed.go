package syntax

// Typed wrappers give rules structured access to common node shapes
// without walking raw children by hand. Each Cast* returns false when
// the element is not of the expected kind.

// Ident wraps a NodeIdent.
type Ident struct{ n *Node }

// CastIdent wraps n if it is an identifier node.
func CastIdent(n *Node) (Ident, bool) {
	if n == nil || n.Kind != NodeIdent {
		return Ident{}, false
	}
	return Ident{n: n}, true
}

func (i Ident) Node() *Node { return i.n }

// Name returns the identifier text.
func (i Ident) Name() string {
	if tok := i.n.FirstChildOfKind(TokenIdent); tok != nil {
		return tok.Text()
	}
	return ""
}

// KeyValue wraps a NodeKeyValue binding (attrpath = value ;).
type KeyValue struct{ n *Node }

// CastKeyValue wraps n if it is a key/value binding.
func CastKeyValue(n *Node) (KeyValue, bool) {
	if n == nil || n.Kind != NodeKeyValue {
		return KeyValue{}, false
	}
	return KeyValue{n: n}, true
}

func (kv KeyValue) Node() *Node { return kv.n }

// Key returns the attrpath node of this binding, or nil.
func (kv KeyValue) Key() *Node {
	return kv.n.FirstChildOfKind(NodeKey)
}

// KeyPath returns the attrpath components in order.
func (kv KeyValue) KeyPath() []*Node {
	key := kv.Key()
	if key == nil {
		return nil
	}
	var path []*Node
	for child := key.FirstChild; child != nil; child = child.Next {
		if !child.IsToken() {
			path = append(path, child)
		}
	}
	return path
}

// Value returns the bound expression: the first node child after the
// assignment token, or nil for malformed bindings.
func (kv KeyValue) Value() *Node {
	sawAssign := false
	for child := kv.n.FirstChild; child != nil; child = child.Next {
		if child.Kind == TokenAssign {
			sawAssign = true
			continue
		}
		if sawAssign && !child.IsToken() {
			return child
		}
	}
	return nil
}

// Select wraps a NodeSelect (set.index).
type Select struct{ n *Node }

// CastSelect wraps n if it is a select expression.
func CastSelect(n *Node) (Select, bool) {
	if n == nil || n.Kind != NodeSelect {
		return Select{}, false
	}
	return Select{n: n}, true
}

func (s Select) Node() *Node { return s.n }

// Set returns the expression being indexed into, or nil.
func (s Select) Set() *Node {
	return s.n.FirstNodeChild()
}

// Index returns the attribute being selected, or nil.
func (s Select) Index() *Node {
	set := s.Set()
	if set == nil {
		return nil
	}
	for sib := set.Next; sib != nil; sib = sib.Next {
		if !sib.IsToken() {
			return sib
		}
	}
	return nil
}

// Lambda wraps a NodeLambda (param: body).
type Lambda struct{ n *Node }

// CastLambda wraps n if it is a lambda.
func CastLambda(n *Node) (Lambda, bool) {
	if n == nil || n.Kind != NodeLambda {
		return Lambda{}, false
	}
	return Lambda{n: n}, true
}

func (l Lambda) Node() *Node { return l.n }

// Param returns the parameter: a NodeIdent or NodePattern, or nil.
func (l Lambda) Param() *Node {
	return l.n.FirstNodeChild()
}

// Body returns the lambda body expression, or nil.
func (l Lambda) Body() *Node {
	param := l.Param()
	if param == nil {
		return nil
	}
	for sib := param.Next; sib != nil; sib = sib.Next {
		if !sib.IsToken() {
			return sib
		}
	}
	return nil
}

// Pattern wraps a NodePattern ({ a, b ? c, ... } @ bind).
type Pattern struct{ n *Node }

// CastPattern wraps n if it is a lambda pattern.
func CastPattern(n *Node) (Pattern, bool) {
	if n == nil || n.Kind != NodePattern {
		return Pattern{}, false
	}
	return Pattern{n: n}, true
}

func (p Pattern) Node() *Node { return p.n }

// Entries returns the pattern's field entries.
func (p Pattern) Entries() []*Node {
	var entries []*Node
	for child := p.n.FirstChild; child != nil; child = child.Next {
		if child.Kind == NodePatEntry {
			entries = append(entries, child)
		}
	}
	return entries
}

// HasEllipsis returns true if the pattern contains "...".
func (p Pattern) HasEllipsis() bool {
	return p.n.FirstChildOfKind(TokenEllipsis) != nil
}

// Bind returns the @-binding node, or nil if unbound.
func (p Pattern) Bind() *Node {
	return p.n.FirstChildOfKind(NodePatBind)
}

// Apply wraps a NodeApply (fn arg).
type Apply struct{ n *Node }

// CastApply wraps n if it is a function application.
func CastApply(n *Node) (Apply, bool) {
	if n == nil || n.Kind != NodeApply {
		return Apply{}, false
	}
	return Apply{n: n}, true
}

func (a Apply) Node() *Node { return a.n }

// Fn returns the function expression, or nil.
func (a Apply) Fn() *Node {
	return a.n.FirstNodeChild()
}

// Arg returns the argument expression, or nil.
func (a Apply) Arg() *Node {
	fn := a.Fn()
	if fn == nil {
		return nil
	}
	for sib := fn.Next; sib != nil; sib = sib.Next {
		if !sib.IsToken() {
			return sib
		}
	}
	return nil
}

// BinOp wraps a NodeBinOp (lhs op rhs).
type BinOp struct{ n *Node }

// CastBinOp wraps n if it is a binary operation.
func CastBinOp(n *Node) (BinOp, bool) {
	if n == nil || n.Kind != NodeBinOp {
		return BinOp{}, false
	}
	return BinOp{n: n}, true
}

func (b BinOp) Node() *Node { return b.n }

// Lhs returns the left operand, or nil.
func (b BinOp) Lhs() *Node {
	return b.n.FirstNodeChild()
}

// Operator returns the operator token kind, or TokenError.
func (b BinOp) Operator() Kind {
	for child := b.n.FirstChild; child != nil; child = child.Next {
		if child.IsToken() && !child.Kind.IsTrivia() {
			return child.Kind
		}
	}
	return TokenError
}

// Rhs returns the right operand, or nil.
func (b BinOp) Rhs() *Node {
	lhs := b.Lhs()
	if lhs == nil {
		return nil
	}
	for sib := lhs.Next; sib != nil; sib = sib.Next {
		if !sib.IsToken() {
			return sib
		}
	}
	return nil
}

// UnaryOp wraps a NodeUnaryOp (op operand).
type UnaryOp struct{ n *Node }

// CastUnaryOp wraps n if it is a unary operation.
func CastUnaryOp(n *Node) (UnaryOp, bool) {
	if n == nil || n.Kind != NodeUnaryOp {
		return UnaryOp{}, false
	}
	return UnaryOp{n: n}, true
}

func (u UnaryOp) Node() *Node { return u.n }

// Operator returns the operator token kind, or TokenError.
func (u UnaryOp) Operator() Kind {
	for child := u.n.FirstChild; child != nil; child = child.Next {
		if child.IsToken() && !child.Kind.IsTrivia() {
			return child.Kind
		}
	}
	return TokenError
}

// Operand returns the operand expression, or nil.
func (u UnaryOp) Operand() *Node {
	return u.n.FirstNodeChild()
}

// Inherit wraps a NodeInherit (inherit a b; / inherit (from) a;).
type Inherit struct{ n *Node }

// CastInherit wraps n if it is an inherit statement.
func CastInherit(n *Node) (Inherit, bool) {
	if n == nil || n.Kind != NodeInherit {
		return Inherit{}, false
	}
	return Inherit{n: n}, true
}

func (i Inherit) Node() *Node { return i.n }

// From returns the parenthesized source expression of an
// inherit-from, or nil for a plain inherit.
func (i Inherit) From() *Node {
	from := i.n.FirstChildOfKind(NodeInheritFrom)
	if from == nil {
		return nil
	}
	return from.FirstNodeChild()
}

// Idents returns the inherited attribute names.
func (i Inherit) Idents() []Ident {
	var idents []Ident
	for child := i.n.FirstChild; child != nil; child = child.Next {
		if id, ok := CastIdent(child); ok {
			idents = append(idents, id)
		}
	}
	return idents
}

// LetIn wraps a NodeLetIn (let bindings in body).
type LetIn struct{ n *Node }

// CastLetIn wraps n if it is a let-in expression.
func CastLetIn(n *Node) (LetIn, bool) {
	if n == nil || n.Kind != NodeLetIn {
		return LetIn{}, false
	}
	return LetIn{n: n}, true
}

func (l LetIn) Node() *Node { return l.n }

// Bindings returns the let's binding nodes in source order.
func (l LetIn) Bindings() []*Node {
	var bindings []*Node
	for child := l.n.FirstChild; child != nil; child = child.Next {
		if child.Kind == NodeKeyValue || child.Kind == NodeInherit {
			bindings = append(bindings, child)
		}
	}
	return bindings
}

// Body returns the expression after "in", or nil.
func (l LetIn) Body() *Node {
	in := l.n.FirstChildOfKind(TokenIn)
	if in == nil {
		return nil
	}
	for sib := in.Next; sib != nil; sib = sib.Next {
		if !sib.IsToken() {
			return sib
		}
	}
	return nil
}

// AttrSet wraps a NodeAttrSet ({ bindings } / rec { bindings }).
type AttrSet struct{ n *Node }

// CastAttrSet wraps n if it is an attribute set.
func CastAttrSet(n *Node) (AttrSet, bool) {
	if n == nil || n.Kind != NodeAttrSet {
		return AttrSet{}, false
	}
	return AttrSet{n: n}, true
}

func (a AttrSet) Node() *Node { return a.n }

// IsRec returns true for recursive attribute sets.
func (a AttrSet) IsRec() bool {
	return a.n.FirstChildOfKind(TokenRec) != nil
}

// Bindings returns the set's binding nodes in source order.
func (a AttrSet) Bindings() []*Node {
	var bindings []*Node
	for child := a.n.FirstChild; child != nil; child = child.Next {
		if child.Kind == NodeKeyValue || child.Kind == NodeInherit {
			bindings = append(bindings, child)
		}
	}
	return bindings
}

// Paren wraps a NodeParen ((inner)).
type Paren struct{ n *Node }

// CastParen wraps n if it is a parenthesized expression.
func CastParen(n *Node) (Paren, bool) {
	if n == nil || n.Kind != NodeParen {
		return Paren{}, false
	}
	return Paren{n: n}, true
}

func (p Paren) Node() *Node { return p.n }

// Inner returns the wrapped expression, or nil.
func (p Paren) Inner() *Node {
	return p.n.FirstNodeChild()
}
