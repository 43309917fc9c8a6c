// SPDX-License-Identifier: MIT
//
// File: remove.go
// Role: deletion with in-order predecessor value copy.
//
// Cases, in priority order:
//  1. sole node      → root cleared
//  2. leaf           → owning slot cleared
//  3. one child      → child spliced into the owning slot
//  4. two children   → predecessor value copied into target,
//     predecessor excised from its own slot; when the left maximum
//     occurs more than once the successor is used instead, since ties
//     must stay right of their equals
//
// The owning slot is always resolved through the parent back-reference
// and pointer identity, never by re-comparing values: with duplicates a
// value comparison cannot tell which side a node hangs from.

package bst

import "fmt"

// Remove deletes one node holding a value equal to v and reports whether
// anything was removed. Removing an absent value is a no-op returning false.
//
// With duplicates, the shallowest matching node is removed; the other
// copies stay in the tree.
//
// Remove panics with ErrCorrupt if the tree's parent/child links are
// found inconsistent while splicing.
//
// Complexity: O(h).
func (t *Tree[T]) Remove(v T) bool {
	target := t.findNode(v)
	if target == nil {
		return false
	}

	switch {
	case t.size == 1:
		// Sole node: it must be a childless root.
		if target != t.root || !target.IsLeaf() {
			panic(fmt.Errorf("%w: size is 1 but target is not a childless root", ErrCorrupt))
		}
		t.root = nil
		t.log.Debug("bst: remove", "value", v, "case", "sole")

	case target.IsLeaf():
		t.replace(target, nil)
		t.log.Debug("bst: remove", "value", v, "case", "leaf")

	case target.left == nil:
		t.replace(target, target.right)
		t.log.Debug("bst: remove", "value", v, "case", "right-child")

	case target.right == nil:
		t.replace(target, target.left)
		t.log.Debug("bst: remove", "value", v, "case", "left-child")

	default:
		pred := maxNode(target.left)
		if pred.right != nil {
			panic(fmt.Errorf("%w: predecessor has a right child", ErrCorrupt))
		}
		if pred.parent != target && !t.less(pred.parent.value, pred.value) {
			// The left maximum is duplicated; copying it up would leave an
			// equal value left of target. Take the successor instead.
			succ := minNode(target.right)
			if succ.left != nil {
				panic(fmt.Errorf("%w: successor has a left child", ErrCorrupt))
			}
			target.value = succ.value
			t.replace(succ, succ.right)
			t.log.Debug("bst: remove", "value", v, "case", "two-children", "successor", target.value)

			break
		}
		target.value = pred.value
		// pred may be target.left itself; replace resolves the slot by
		// identity so target.left is the one cleared in that case.
		t.replace(pred, pred.left)
		t.log.Debug("bst: remove", "value", v, "case", "two-children", "predecessor", target.value)
	}

	t.size--

	return true
}

// replace puts child into the slot currently holding n and detaches n.
// child may be nil.
func (t *Tree[T]) replace(n, child *Node[T]) {
	slot := t.slotOf(n)
	*slot = child
	if child != nil {
		child.parent = n.parent
	}
	n.parent, n.left, n.right = nil, nil, nil
}

// slotOf returns the pointer that owns n: the root field or one of its
// parent's child fields.
func (t *Tree[T]) slotOf(n *Node[T]) **Node[T] {
	p := n.parent
	switch {
	case p == nil:
		if t.root != n {
			panic(fmt.Errorf("%w: parentless node is not the root", ErrCorrupt))
		}
		return &t.root
	case p.left == n:
		return &p.left
	case p.right == n:
		return &p.right
	default:
		panic(fmt.Errorf("%w: node missing from its parent's slots", ErrCorrupt))
	}
}
