// Package dsa collects ordered data structures written for direct,
// single-owner use.
//
// Under the hood everything lives in subpackages:
//
//	bst/          — unbalanced binary search tree: insert, find, remove,
//	                four traversal strategies, min/max, DOT export
//	internal/     — configuration and command wiring for the CLI
//	cmd/bstree/   — command-line front end over bst
//
// Quick example:
//
//	     50
//	    /  \
//	  30    70
//	 /  \
//	20  40
//
//	bstree traverse --order breadth 50 30 70 20 40   # 50 30 70 20 40
//	bstree remove --value 50 50 30 70 20 40          # in-order: 20 30 40 70
//
//	go get github.com/iamOgunyinka/DSA/bst
package dsa
