// Package graph provides the immutable, compressed-sparse-row directed
// graph used by the BMSSP core and its classical Dijkstra oracle.
//
// A Graph is built incrementally with a Builder, then Finalize'd into a
// read-only CSR view: offsets[0..n], head[], weight[]. Out-edges of vertex
// v live in head[offsets[v]:offsets[v+1]] with matching weights in the
// parallel weight slice. The CSR view never mutates after Finalize, which
// is what lets the BMSSP recursion share one Graph across every stack
// frame without locking.
//
// Two on-ramps exist besides Builder: FromCore converts a teacher-style
// mutable github.com/lvlath-labs/fastsssp/core.Graph (string-keyed,
// int64-weighted) into a CSR Graph, and ReadDIMACS parses the DIMACS
// ".gr" shortest-path challenge format directly into one.
package graph
