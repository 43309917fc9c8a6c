// Command bstree builds binary search trees from the command line.
package main

import (
	"os"

	"github.com/iamOgunyinka/DSA/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
