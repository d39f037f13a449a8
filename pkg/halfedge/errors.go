package halfedge

import "errors"

// ErrInvalidHandle indicates an id that is out of range, tombstoned, or
// otherwise does not resolve to a live element.
var ErrInvalidHandle = errors.New("halfedge: invalid handle")

// ErrCorruptTopology indicates a ring or loop walk that failed to close
// within the element count, meaning the adjacency pointers are broken.
var ErrCorruptTopology = errors.New("halfedge: corrupt topology")

// ErrLoopMismatch indicates two edge loops whose lengths differ where
// equal lengths are required.
var ErrLoopMismatch = errors.New("halfedge: loop length mismatch")

// ErrArityMismatch indicates a face whose derived side count does not
// match what the caller requested.
var ErrArityMismatch = errors.New("halfedge: face arity mismatch")
