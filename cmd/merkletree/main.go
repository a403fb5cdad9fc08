// Command merkletree builds a Merkle tree over a fixed set of elements and
// prints every node digest, root first.
package main

import (
	"fmt"
	"os"

	merkle "github.com/toni-calvin/merkle-tree"
)

func main() {
	elements := [][]byte{
		[]byte("Cat"),
		[]byte("Dog"),
		[]byte("Spider"),
		[]byte("Snake"),
	}
	tree, err := merkle.New(elements)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, node := range tree.Nodes() {
		fmt.Println(node)
	}
}
