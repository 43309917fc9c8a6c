package bst_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/iamOgunyinka/DSA/bst"
)

// ExampleTree_Remove removes a node with two children. Tree:
//
//	     50
//	    /  \
//	  30    70
//	 /  \
//	20  40
//
// 50's in-order predecessor is 40; its value moves up into the root.
func ExampleTree_Remove() {
	t := bst.NewOrdered[int]()
	for _, v := range []int{50, 30, 70, 20, 40} {
		t.Insert(v)
	}

	fmt.Println(t.Remove(50), t.Remove(99))
	fmt.Println(t.Values(bst.InOrder), t.Size())

	// Output:
	// true false
	// [20 30 40 70] 4
}

// ExampleTree_All walks the same tree in every strategy.
func ExampleTree_All() {
	t := bst.FromValues(func(a, b int) bool { return a < b }, []int{50, 30, 70, 20, 40})

	for _, o := range []bst.Order{bst.PreOrder, bst.InOrder, bst.PostOrder, bst.BreadthFirst} {
		var parts []string
		for v := range t.All(o) {
			parts = append(parts, fmt.Sprint(v))
		}
		fmt.Printf("%-7s %s\n", o, strings.Join(parts, " "))
	}

	// Output:
	// pre     50 30 20 40 70
	// in      20 30 40 50 70
	// post    20 40 30 70 50
	// breadth 50 30 70 20 40
}

// ExampleTree_FindParent shows the three outcomes of a parent lookup.
func ExampleTree_FindParent() {
	t := bst.FromValues(func(a, b string) bool { return a < b }, []string{"m", "c", "x"})

	for _, v := range []string{"c", "m", "q"} {
		r := t.FindParent(v)
		if r.Kind == bst.ParentFound {
			fmt.Println(v, r.Kind, r.Parent.Value())
			continue
		}
		fmt.Println(v, r.Kind)
	}

	// Output:
	// c found m
	// m root
	// q not-found
}

// ExampleTree_WriteDOT exports the tree for Graphviz.
func ExampleTree_WriteDOT() {
	t := bst.NewOrdered[int]()
	for _, v := range []int{2, 1, 3} {
		t.Insert(v)
	}
	_ = t.WriteDOT(os.Stdout)

	// Output:
	// digraph G
	// {
	// NODE0 [ label = "2"]
	// NODE0 -> NODE1
	// NODE1 [ label = "1"]
	// NODE0 -> NODE2
	// NODE2 [ label = "3"]
	// }
}
