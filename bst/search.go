// File: search.go
// Role: lookups — Find, FindNode, FindParent, Min, Max.
//
// All searches walk from the root and test equality before descending,
// so with duplicates the shallowest matching node is reported.

package bst

// Find reports whether a value equal to v is stored in the tree.
//
// Complexity: O(h).
func (t *Tree[T]) Find(v T) bool {
	return t.findNode(v) != nil
}

// FindNode returns the shallowest node holding a value equal to v.
// The node is only valid until the next mutating call.
func (t *Tree[T]) FindNode(v T) (*Node[T], bool) {
	n := t.findNode(v)

	return n, n != nil
}

// FindParent locates the owner of the node holding v.
//
// The result distinguishes three outcomes: v absent (ParentNotFound),
// v held by the root (ParentIsRoot), and v held by a child of Parent
// (ParentFound).
func (t *Tree[T]) FindParent(v T) ParentResult[T] {
	n := t.findNode(v)
	switch {
	case n == nil:
		return ParentResult[T]{Kind: ParentNotFound}
	case n.parent == nil:
		return ParentResult[T]{Kind: ParentIsRoot}
	default:
		return ParentResult[T]{Kind: ParentFound, Parent: n.parent}
	}
}

// Min returns the smallest value. ok is false on an empty tree and the
// returned value is then the zero value of T.
func (t *Tree[T]) Min() (v T, ok bool) {
	n := minNode(t.root)
	if n == nil {
		return v, false
	}

	return n.value, true
}

// Max returns the largest value. ok is false on an empty tree.
// With duplicates of the maximum, the deepest copy is returned.
func (t *Tree[T]) Max() (v T, ok bool) {
	n := maxNode(t.root)
	if n == nil {
		return v, false
	}

	return n.value, true
}

func (t *Tree[T]) findNode(v T) *Node[T] {
	cur := t.root
	for cur != nil {
		if t.equal(v, cur.value) {
			return cur
		}
		if t.less(v, cur.value) {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	return nil
}

// minNode walks left from n to exhaustion.
func minNode[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}

	return n
}

// maxNode walks right from n to exhaustion.
func maxNode[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}

	return n
}
