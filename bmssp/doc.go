// Package bmssp implements the recursive bounded multi-source shortest
// path driver (spec §4.6): the procedure that shrinks the active
// frontier at each recursion level via pivots.Find and streams
// sub-problems through a dstructure.DataStructure, bottoming out in
// minidijkstra.Run at level 0.
//
// A call bmssp(level, bound, S) returns (Bprime, U): U contains every
// vertex with true distance strictly below Bprime, Bprime <= bound, and
// every vertex in U has its distance finalized in the shared
// distance.Table. The recursion is single-threaded throughout — every
// frame reads and writes the same distance.Table, and there is no
// parallel relaxation variant in this package.
package bmssp
