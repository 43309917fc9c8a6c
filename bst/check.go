// File: check.go
// Role: structural self-check (ordering, parent back-references, size).

package bst

import "fmt"

// Check verifies the tree's invariants and returns the first violation:
//
//   - ErrParentMismatch: a child's back-reference does not name its owner,
//     or the root has a parent.
//   - ErrOrderViolation: a value in a left subtree does not rank before an
//     ancestor, or a value in a right subtree ranks before one.
//   - ErrSizeMismatch: Size() differs from the number of reachable nodes.
//
// Check walks the tree with an explicit stack carrying the tightest
// ancestor bounds, so every node is compared against two ancestors only.
//
// Complexity: O(n).
func (t *Tree[T]) Check() error {
	count := 0
	var stack []bound[T]
	if t.root != nil {
		stack = append(stack, bound[T]{n: t.root})
	}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++

		if b.n.parent != b.parent {
			return fmt.Errorf("%w: node %v", ErrParentMismatch, b.n.value)
		}
		if b.lo != nil && t.less(b.n.value, b.lo.value) {
			return fmt.Errorf("%w: %v ranks before ancestor %v in its right subtree",
				ErrOrderViolation, b.n.value, b.lo.value)
		}
		if b.hi != nil && !t.less(b.n.value, b.hi.value) {
			return fmt.Errorf("%w: %v does not rank before ancestor %v in its left subtree",
				ErrOrderViolation, b.n.value, b.hi.value)
		}

		if b.n.left != nil {
			stack = append(stack, bound[T]{n: b.n.left, parent: b.n, lo: b.lo, hi: b.n})
		}
		if b.n.right != nil {
			stack = append(stack, bound[T]{n: b.n.right, parent: b.n, lo: b.n, hi: b.hi})
		}
	}

	if count != t.size {
		return fmt.Errorf("%w: size %d, reachable %d", ErrSizeMismatch, t.size, count)
	}

	return nil
}

// bound is a node awaiting Check together with its expected parent and
// the nearest ancestors constraining its value.
type bound[T any] struct {
	n      *Node[T]
	parent *Node[T]
	lo     *Node[T] // value must not rank before lo (right-subtree ancestor)
	hi     *Node[T] // value must rank before hi (left-subtree ancestor)
}
