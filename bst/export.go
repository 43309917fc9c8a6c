// File: export.go
// Role: shape export as a directed graph (labels NODE<i>, edges parent→child).

package bst

import (
	"fmt"
	"io"
	"strconv"
)

// GraphSink receives the tree's shape during ExportGraph.
type GraphSink[T any] interface {
	// Node declares a vertex with its label and the value it carries.
	Node(label string, value T) error
	// Edge declares a directed edge from a parent label to a child label.
	Edge(from, to string) error
}

// Label returns the export label for the i-th node in pre-order.
func Label(i int) string { return "NODE" + strconv.Itoa(i) }

// ExportGraph streams the tree's shape to sink.
//
// Labels are assigned sequentially in pre-order. For every child, the
// parent→child edge is emitted right before the child's Node call, so a
// sink sees: Node(root), Edge(root, c1), Node(c1), ... An empty tree
// produces no calls. The first sink error stops the export.
func (t *Tree[T]) ExportGraph(sink GraphSink[T]) error {
	if sink == nil {
		return ErrNilSink
	}
	if t.root == nil {
		return nil
	}

	stack := []exportItem[T]{{n: t.root, parent: -1}}
	next := 0
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx := next
		next++
		if it.parent >= 0 {
			if err := sink.Edge(Label(it.parent), Label(idx)); err != nil {
				return fmt.Errorf("bst: export edge: %w", err)
			}
		}
		if err := sink.Node(Label(idx), it.n.value); err != nil {
			return fmt.Errorf("bst: export node: %w", err)
		}

		if it.n.right != nil {
			stack = append(stack, exportItem[T]{n: it.n.right, parent: idx})
		}
		if it.n.left != nil {
			stack = append(stack, exportItem[T]{n: it.n.left, parent: idx})
		}
	}

	return nil
}

// exportItem is a pending node and the label index of its parent
// (-1 for the root).
type exportItem[T any] struct {
	n      *Node[T]
	parent int
}

// DOTWriter is a GraphSink that writes Graphviz DOT statements.
// Use Tree.WriteDOT for a complete document.
type DOTWriter[T any] struct {
	w io.Writer
}

// NewDOTWriter returns a DOTWriter writing to w.
func NewDOTWriter[T any](w io.Writer) *DOTWriter[T] {
	return &DOTWriter[T]{w: w}
}

// Node writes `NODE<i> [ label = "<value>"]`.
func (d *DOTWriter[T]) Node(label string, value T) error {
	_, err := fmt.Fprintf(d.w, "%s [ label = %q]\n", label, fmt.Sprint(value))
	return err
}

// Edge writes `NODE<i> -> NODE<j>`.
func (d *DOTWriter[T]) Edge(from, to string) error {
	_, err := fmt.Fprintf(d.w, "%s -> %s\n", from, to)
	return err
}

// WriteDOT writes the tree as a complete DOT digraph named G.
func (t *Tree[T]) WriteDOT(w io.Writer) error {
	if _, err := io.WriteString(w, "digraph G\n{\n"); err != nil {
		return err
	}
	if err := t.ExportGraph(NewDOTWriter[T](w)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}\n")

	return err
}

// Edge is a directed parent→child pair of labels.
type Edge struct {
	From, To string
}

// EdgeList is a GraphSink that records labels, values and edges in memory.
type EdgeList[T any] struct {
	Labels []string
	Values map[string]T
	Edges  []Edge
}

// NewEdgeList returns an empty EdgeList.
func NewEdgeList[T any]() *EdgeList[T] {
	return &EdgeList[T]{Values: make(map[string]T)}
}

// Node records a label and its value.
func (l *EdgeList[T]) Node(label string, value T) error {
	l.Labels = append(l.Labels, label)
	l.Values[label] = value
	return nil
}

// Edge records a parent→child edge.
func (l *EdgeList[T]) Edge(from, to string) error {
	l.Edges = append(l.Edges, Edge{From: from, To: to})
	return nil
}
