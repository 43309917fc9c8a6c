// SPDX-License-Identifier: MIT
//
// File: traverse.go
// Role: the four traversal strategies behind a single entry point.
//
// Depth-first orders use an explicit stack and breadth-first uses a FIFO
// queue, so no strategy recurses and deep (degenerate) trees are safe.
// Sequences are lazy and restartable: ranging over All twice walks the
// tree twice and never mutates it.

package bst

import (
	"fmt"
	"iter"
	"strings"
)

// Order selects a traversal strategy.
type Order int

const (
	// PreOrder visits a node, then its left subtree, then its right subtree.
	PreOrder Order = iota
	// PostOrder visits the left subtree, the right subtree, then the node.
	PostOrder
	// InOrder visits the left subtree, the node, then the right subtree,
	// yielding values in ascending comparator order.
	InOrder
	// BreadthFirst visits level by level, left to right.
	BreadthFirst
)

var orderNames = [...]string{
	PreOrder:     "pre",
	PostOrder:    "post",
	InOrder:      "in",
	BreadthFirst: "breadth",
}

// String returns the short name of o ("pre", "post", "in", "breadth").
func (o Order) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Order(%d)", int(o))
	}

	return orderNames[o]
}

// Valid reports whether o is one of the four supported strategies.
func (o Order) Valid() bool { return o >= PreOrder && o <= BreadthFirst }

// ParseOrder converts a name into an Order. Accepted names are the
// String forms plus the long spellings "pre-order", "post-order",
// "in-order", "breadth-first", "level" and "bfs"; matching ignores case.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pre", "preorder", "pre-order", "pre_order":
		return PreOrder, nil
	case "post", "postorder", "post-order", "post_order":
		return PostOrder, nil
	case "in", "inorder", "in-order", "in_order":
		return InOrder, nil
	case "breadth", "breadth-first", "breadth_first", "level", "bfs":
		return BreadthFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
	}
}

// WalkOption configures Traverse.
type WalkOption func(*WalkOptions)

// WalkOptions holds hooks and limits for Traverse.
type WalkOptions struct {
	// OnEnter is called with a node's depth (root = 0) right before its
	// value is handed to the sink.
	OnEnter func(depth int)

	// MaxDepth, when >= 0, prunes every node deeper than MaxDepth.
	// -1 means no limit.
	MaxDepth int

	err error
}

// DefaultWalkOptions returns options with no hook and no depth limit.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		OnEnter:  func(int) {},
		MaxDepth: -1,
	}
}

// WithOnEnter installs a hook called before each visit.
func WithOnEnter(fn func(depth int)) WalkOption {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnEnter = fn
		}
	}
}

// WithMaxDepth limits the walk to nodes at depth <= d (root = 0).
// A negative d is recorded and surfaced by Traverse as ErrOptionViolation.
func WithMaxDepth(d int) WalkOption {
	return func(o *WalkOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// All returns a lazy sequence of the tree's values in the given order.
// An empty tree or an invalid Order yields nothing. Breaking out of the
// range loop stops the walk.
func (t *Tree[T]) All(order Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		w := walker[T]{maxDepth: -1}
		w.walk(t.root, order, func(f frame[T]) bool {
			return yield(f.n.value)
		})
	}
}

// Values collects the traversal in the given order into a slice.
// The result is never nil.
func (t *Tree[T]) Values(order Order) []T {
	out := make([]T, 0, t.size)
	for v := range t.All(order) {
		out = append(out, v)
	}

	return out
}

// Traverse delivers the tree's values, in the given order, to sink.
// A sink error stops the walk and is returned wrapped.
//
// Errors:
//   - ErrUnknownOrder    if order is not one of the four strategies.
//   - ErrNilSink         if sink is nil.
//   - ErrOptionViolation for invalid options.
//   - the sink's error, wrapped.
func (t *Tree[T]) Traverse(order Order, sink func(T) error, opts ...WalkOption) error {
	if !order.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownOrder, int(order))
	}
	if sink == nil {
		return ErrNilSink
	}
	o := DefaultWalkOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	var err error
	w := walker[T]{maxDepth: o.MaxDepth}
	w.walk(t.root, order, func(f frame[T]) bool {
		o.OnEnter(f.depth)
		if serr := sink(f.n.value); serr != nil {
			err = fmt.Errorf("bst: visit %v: %w", f.n.value, serr)
			return false
		}
		return true
	})

	return err
}

// frame pairs a node with its depth below the walk root.
type frame[T any] struct {
	n     *Node[T]
	depth int
}

// walker runs one traversal; maxDepth < 0 disables pruning.
type walker[T any] struct {
	maxDepth int
}

// at returns a frame for n at depth, or an empty frame when n is absent
// or lies beyond the depth limit.
func (w walker[T]) at(n *Node[T], depth int) frame[T] {
	if n == nil || (w.maxDepth >= 0 && depth > w.maxDepth) {
		return frame[T]{}
	}

	return frame[T]{n: n, depth: depth}
}

// walk visits nodes under root in the given order until visit returns false.
func (w walker[T]) walk(root *Node[T], order Order, visit func(frame[T]) bool) {
	start := w.at(root, 0)
	if start.n == nil {
		return
	}
	switch order {
	case PreOrder:
		w.preOrder(start, visit)
	case InOrder:
		w.inOrder(start, visit)
	case PostOrder:
		w.postOrder(start, visit)
	case BreadthFirst:
		w.breadthFirst(start, visit)
	}
}

func (w walker[T]) preOrder(start frame[T], visit func(frame[T]) bool) {
	stack := []frame[T]{start}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(f) {
			return
		}
		// right pushed first so left is popped first
		if r := w.at(f.n.right, f.depth+1); r.n != nil {
			stack = append(stack, r)
		}
		if l := w.at(f.n.left, f.depth+1); l.n != nil {
			stack = append(stack, l)
		}
	}
}

func (w walker[T]) inOrder(start frame[T], visit func(frame[T]) bool) {
	var stack []frame[T]
	cur := start
	for cur.n != nil || len(stack) > 0 {
		for cur.n != nil {
			stack = append(stack, cur)
			cur = w.at(cur.n.left, cur.depth+1)
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(f) {
			return
		}
		cur = w.at(f.n.right, f.depth+1)
	}
}

func (w walker[T]) postOrder(start frame[T], visit func(frame[T]) bool) {
	var (
		stack []frame[T]
		last  *Node[T] // most recently visited node
	)
	cur := start
	for cur.n != nil || len(stack) > 0 {
		if cur.n != nil {
			stack = append(stack, cur)
			cur = w.at(cur.n.left, cur.depth+1)
			continue
		}
		top := stack[len(stack)-1]
		if r := w.at(top.n.right, top.depth+1); r.n != nil && r.n != last {
			cur = r
			continue
		}
		stack = stack[:len(stack)-1]
		if !visit(top) {
			return
		}
		last = top.n
	}
}

func (w walker[T]) breadthFirst(start frame[T], visit func(frame[T]) bool) {
	queue := []frame[T]{start}
	for head := 0; head < len(queue); head++ {
		f := queue[head]
		if !visit(f) {
			return
		}
		if l := w.at(f.n.left, f.depth+1); l.n != nil {
			queue = append(queue, l)
		}
		if r := w.at(f.n.right, f.depth+1); r.n != nil {
			queue = append(queue, r)
		}
	}
}
