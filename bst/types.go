// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node and Tree definitions, sentinel errors, construction options.
// Policy:
//   - Node owns its children; the parent field is a back-reference only.
//   - Absence is reported through bool / tagged results, never through errors.
//   - Structural corruption panics with ErrCorrupt.

package bst

import (
	"errors"
	"io"
	"log/slog"
)

// Sentinel errors for tree construction, traversal and structural checks.
var (
	// ErrNilComparator is the panic value used when New receives a nil comparator.
	ErrNilComparator = errors.New("bst: comparator is nil")

	// ErrUnknownOrder indicates a traversal Order outside the four supported strategies.
	ErrUnknownOrder = errors.New("bst: unknown traversal order")

	// ErrOptionViolation is returned when an invalid WalkOption is supplied.
	ErrOptionViolation = errors.New("bst: invalid option supplied")

	// ErrNilSink is returned when a traversal or export is given a nil sink.
	ErrNilSink = errors.New("bst: sink is nil")

	// ErrOrderViolation is reported by Check when a node breaks the ordering invariant.
	ErrOrderViolation = errors.New("bst: ordering invariant violated")

	// ErrParentMismatch is reported by Check when a child's back-reference
	// does not point at the node that owns it.
	ErrParentMismatch = errors.New("bst: parent back-reference mismatch")

	// ErrSizeMismatch is reported by Check when the element count disagrees
	// with the number of reachable nodes.
	ErrSizeMismatch = errors.New("bst: size does not match node count")

	// ErrCorrupt is the panic value for internal structural corruption
	// detected while mutating the tree.
	ErrCorrupt = errors.New("bst: tree structure corrupt")
)

// Node is a single tree vertex.
//
// A Node owns its left and right children. parent is a non-owning
// back-reference kept in sync by the Tree so deletion can reach the
// owning slot without re-searching from the root.
type Node[T any] struct {
	value  T
	left   *Node[T]
	right  *Node[T]
	parent *Node[T]
}

// Value returns the value held by n.
func (n *Node[T]) Value() T { return n.value }

// Left returns the left child of n, or nil.
func (n *Node[T]) Left() *Node[T] { return n.left }

// Right returns the right child of n, or nil.
func (n *Node[T]) Right() *Node[T] { return n.right }

// Parent returns the node owning n, or nil for the root.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool { return n.left == nil && n.right == nil }

// Tree is an ordered, unbalanced binary search tree.
//
// For every node N, values in N's left subtree rank before N's value and
// values in N's right subtree do not rank before it. Equal values are
// routed right, so the tree behaves as a multiset.
//
// A Tree is a single-owner structure: it is not safe for concurrent use,
// and *Node values obtained from it must not be retained past the next
// mutating call.
type Tree[T any] struct {
	root *Node[T]
	size int

	less  func(a, b T) bool // strict weak order: a ranks before b
	equal func(a, b T) bool // equality used by searches
	log   *slog.Logger
}

// Option configures a Tree at construction time.
type Option[T any] func(*Tree[T])

// WithEqual overrides the equality used by Find, FindNode, FindParent and
// Remove. By default two values are equal when neither ranks before the other.
func WithEqual[T any](fn func(a, b T) bool) Option[T] {
	return func(t *Tree[T]) {
		if fn != nil {
			t.equal = fn
		}
	}
}

// WithLogger installs a structured logger. Structural mutations are
// logged at Debug level. A nil logger is ignored.
func WithLogger[T any](l *slog.Logger) Option[T] {
	return func(t *Tree[T]) {
		if l != nil {
			t.log = l
		}
	}
}

// discardLogger returns a logger whose output goes nowhere.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParentKind tags the outcome of FindParent.
type ParentKind int

const (
	// ParentNotFound means the value is not in the tree.
	ParentNotFound ParentKind = iota
	// ParentIsRoot means the value is held by the root, which has no parent.
	ParentIsRoot
	// ParentFound means Parent holds the owner of the matching node.
	ParentFound
)

// String returns a short name for the kind.
func (k ParentKind) String() string {
	switch k {
	case ParentNotFound:
		return "not-found"
	case ParentIsRoot:
		return "root"
	case ParentFound:
		return "found"
	default:
		return "unknown"
	}
}

// ParentResult is the tagged result of FindParent. Parent is non-nil
// only when Kind == ParentFound.
type ParentResult[T any] struct {
	Kind   ParentKind
	Parent *Node[T]
}
