// Package hashing contains the digest primitives the Merkle tree is built on:
// * Digest is the fixed-size output of a cryptographic hash function
// * TreeHasher defines how leaves and sibling pairs are hashed, so the
//   concrete hash function can be swapped without touching the tree logic.
package hashing
