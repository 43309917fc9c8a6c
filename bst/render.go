// File: render.go
// Role: sideways ASCII drawing of the tree for diagnostics.

package bst

import (
	"fmt"
	"io"
)

// branch tells render which edge leads into a node.
type branch int

const (
	branchRoot branch = iota
	branchLeft
	branchRight
)

// Render writes an ASCII picture of the tree rotated a quarter turn:
// the right subtree is drawn above its parent and the left subtree below.
//
//	       /------+ 70
//	|------+ 50
//	       |      /------+ 40
//	       \------+ 30
//	              \------+ 20
//
// An empty tree writes nothing.
func (t *Tree[T]) Render(w io.Writer) error {
	return render(w, t.root, "", branchRoot)
}

func render[T any](w io.Writer, n *Node[T], prefix string, br branch) error {
	if n == nil {
		return nil
	}
	if n.right != nil {
		pad := "       "
		if br == branchLeft {
			pad = "|      "
		}
		if err := render(w, n.right, prefix+pad, branchRight); err != nil {
			return err
		}
	}

	var head string
	switch br {
	case branchRoot:
		head = "|------+ "
	case branchLeft:
		head = "\\------+ "
	case branchRight:
		head = "/------+ "
	}
	if _, err := fmt.Fprintf(w, "%s%s%v\n", prefix, head, n.value); err != nil {
		return err
	}

	if n.left != nil {
		pad := "       "
		if br == branchRight {
			pad = "|      "
		}
		if err := render(w, n.left, prefix+pad, branchLeft); err != nil {
			return err
		}
	}

	return nil
}
