// Package bst provides an ordered, mutable binary search tree over any
// type with a caller-supplied strict weak order.
//
// What
//
//   - Insert, Find, FindNode, FindParent, Remove, Min, Max, Size.
//   - Four traversal strategies behind one entry point: PreOrder,
//     InOrder, PostOrder and BreadthFirst, available as a lazy
//     iter.Seq (All), a slice (Values) or pushed into a sink (Traverse).
//   - Shape export as a directed graph (ExportGraph, WriteDOT) with
//     sequential NODE<i> labels assigned in pre-order.
//   - Diagnostics: Check for invariants, Render for an ASCII drawing,
//     Height.
//
// Ordering
//
//	less(a, b) reports whether a ranks before b. A value goes left of a
//	node when it ranks before the node's value, right otherwise, so
//	equal values are kept (multiset) and routed right. Searches test
//	equality first at each node and report the shallowest match.
//
// Deletion
//
//	A node with two children takes its in-order predecessor's value
//	(the rightmost node of its left subtree), and the predecessor node
//	is spliced out of its own slot. Slots are resolved through parent
//	back-references and pointer identity, so duplicates never confuse
//	which side of a parent a node occupies.
//
// Balancing
//
//	None. Sorted input degenerates the tree into a list with O(n)
//	operations. Traversals, insertion and search are iterative, so a
//	degenerate tree does not grow the goroutine stack.
//
// Concurrency
//
//	A Tree is a single-owner structure and is not safe for concurrent
//	use. Nodes returned by Root or FindNode are valid only until the
//	next mutating call.
//
// Errors
//
//   - Absence is never an error: Find, FindNode, Remove, Min and Max
//     report it through a bool, FindParent through ParentKind.
//   - ErrUnknownOrder, ErrNilSink, ErrOptionViolation from Traverse.
//   - ErrOrderViolation, ErrParentMismatch, ErrSizeMismatch from Check.
//   - ErrNilComparator and ErrCorrupt are panic values for programming
//     errors and broken structure.
//
// Usage
//
//	t := bst.NewOrdered[int]()
//	for _, v := range []int{50, 30, 70, 20, 40} {
//	    t.Insert(v)
//	}
//	t.Remove(50)
//	for v := range t.All(bst.InOrder) {
//	    fmt.Print(v, " ") // 20 30 40 70
//	}
package bst
