package syntax

import "errors"

// WalkFunc is the callback signature for Walk. Returning a non-nil
// error stops the walk immediately.
type WalkFunc func(n *Node) error

// Walk performs a pre-order traversal starting at root, visiting
// composite nodes and leaf tokens alike.
func Walk(root *Node, fn WalkFunc) error {
	if root == nil {
		return nil
	}
	if err := fn(root); err != nil {
		return err
	}
	for child := root.FirstChild; child != nil; child = child.Next {
		if err := Walk(child, fn); err != nil {
			return err
		}
	}
	return nil
}

// errStopWalk is a sentinel used to end a walk early.
var errStopWalk = errors.New("stop walk")

// FindAll returns every element matching the predicate, in traversal
// order.
func FindAll(root *Node, predicate func(n *Node) bool) []*Node {
	var result []*Node
	_ = Walk(root, func(n *Node) error {
		if predicate(n) {
			result = append(result, n)
		}
		return nil
	})
	return result
}

// FindFirst returns the first element matching the predicate, or nil.
func FindFirst(root *Node, predicate func(n *Node) bool) *Node {
	var found *Node
	_ = Walk(root, func(n *Node) error {
		if predicate(n) {
			found = n
			return errStopWalk
		}
		return nil
	})
	return found
}

// FindByKind returns all elements of the given kind, in traversal
// order.
func FindByKind(root *Node, kind Kind) []*Node {
	return FindAll(root, func(n *Node) bool {
		return n.Kind == kind
	})
}
