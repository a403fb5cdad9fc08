package merkle_test

import (
	"fmt"

	merkle "github.com/toni-calvin/merkle-tree"
)

func ExampleNew() {
	tree, err := merkle.New([][]byte{[]byte("hola"), []byte("moikka")})
	if err != nil {
		panic(err)
	}
	fmt.Println(tree.Root())
	// Output:
	// d703ed960de71d89e617a637f87813b9da95461f30d5d5030329b979ff931032
}

func ExampleTree_Prove() {
	tree, err := merkle.New([][]byte{
		[]byte("hola"), []byte("moikka"), []byte("heippa"), []byte("ahoj"),
	})
	if err != nil {
		panic(err)
	}

	proof, err := tree.Prove(0)
	if err != nil {
		panic(err)
	}
	fmt.Println(tree.Verify(proof))
	// Output:
	// true
}

func ExampleTree_Add() {
	tree, err := merkle.New([][]byte{[]byte("hola"), []byte("moikka")})
	if err != nil {
		panic(err)
	}
	if err := tree.Add([]byte("heippa"), []byte("ahoj")); err != nil {
		panic(err)
	}
	fmt.Println(tree.Root())
	// Output:
	// 8321751cd2de3135bcc3ee9ad978061b284d1ec23f83279192ebcc3666c9e5cc
}
