package syntax

// Tree is the result of parsing one source buffer. It owns the source
// text and the root node; parse failures are collected in Errors rather
// than aborting the parse.
type Tree struct {
	source []byte

	// Root is the top-level NodeRoot element.
	Root *Node

	// Errors holds every parse error encountered, in source order.
	Errors []ParseError
}

// Source returns the original source buffer. Callers must not mutate it.
func (t *Tree) Source() []byte {
	return t.source
}

// HasErrors returns true if parsing produced at least one error.
func (t *Tree) HasErrors() bool {
	return len(t.Errors) > 0
}

// Node is a single element of the syntax tree: either a composite node
// or a leaf token. Both carry a kind tag and a byte range into the
// original source.
type Node struct {
	// Kind identifies the syntactic role of this element.
	Kind Kind

	// Range is the half-open byte span this element covers.
	Range TextRange

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// tree is a back-reference to the owning Tree, used to render text.
	tree *Tree
}

// IsToken returns true if this element is a leaf token.
func (n *Node) IsToken() bool {
	return n.Kind.IsToken()
}

// Tree returns the tree this element belongs to.
func (n *Node) Tree() *Tree {
	return n.tree
}

// Text renders this element's source text from the owning buffer.
func (n *Node) Text() string {
	if n.tree == nil {
		return ""
	}
	src := n.tree.source
	if n.Range.Start < 0 || n.Range.End > len(src) || n.Range.Start > n.Range.End {
		return ""
	}
	return string(src[n.Range.Start:n.Range.End])
}

// HasChildren returns true if this element has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// Children returns a slice of all direct children, tokens included.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// NonTriviaChildren returns direct children that are not whitespace or
// comments.
func (n *Node) NonTriviaChildren() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		if !child.Kind.IsTrivia() {
			children = append(children, child)
		}
	}
	return children
}

// FirstChildOfKind returns the first direct child of the given kind,
// or nil if there is none.
func (n *Node) FirstChildOfKind(kind Kind) *Node {
	for child := n.FirstChild; child != nil; child = child.Next {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

// FirstNodeChild returns the first direct child that is a composite
// node, or nil.
func (n *Node) FirstNodeChild() *Node {
	for child := n.FirstChild; child != nil; child = child.Next {
		if !child.IsToken() {
			return child
		}
	}
	return nil
}

// NextNonTrivia returns the next sibling that is not trivia, or nil.
func (n *Node) NextNonTrivia() *Node {
	for sib := n.Next; sib != nil; sib = sib.Next {
		if !sib.Kind.IsTrivia() {
			return sib
		}
	}
	return nil
}

// PrevNonTrivia returns the previous sibling that is not trivia, or nil.
func (n *Node) PrevNonTrivia() *Node {
	for sib := n.Prev; sib != nil; sib = sib.Prev {
		if !sib.Kind.IsTrivia() {
			return sib
		}
	}
	return nil
}

// appendChild links c as the last child of n. Used only during parsing;
// the tree is immutable afterwards.
func (n *Node) appendChild(c *Node) {
	c.Parent = n
	if n.LastChild == nil {
		n.FirstChild = c
		n.LastChild = c
		return
	}
	c.Prev = n.LastChild
	n.LastChild.Next = c
	n.LastChild = c
}

// insertBefore links c into n's child list immediately before ref,
// which must be a child of n.
func (n *Node) insertBefore(c, ref *Node) {
	c.Parent = n
	c.Next = ref
	c.Prev = ref.Prev
	if ref.Prev == nil {
		n.FirstChild = c
	} else {
		ref.Prev.Next = c
	}
	ref.Prev = c
}

// detachFirstChild unlinks and returns n's first child.
func (n *Node) detachFirstChild() *Node {
	c := n.FirstChild
	n.FirstChild = c.Next
	if c.Next == nil {
		n.LastChild = nil
	} else {
		c.Next.Prev = nil
	}
	c.Parent = nil
	c.Next = nil
	c.Prev = nil
	return c
}

// coverChildren recomputes n's range as the cover of its children.
// Childless nodes keep their assigned range.
func (n *Node) coverChildren() {
	if n.FirstChild == nil {
		return
	}
	n.Range = n.FirstChild.Range
	for child := n.FirstChild.Next; child != nil; child = child.Next {
		n.Range = n.Range.Cover(child.Range)
	}
}
