// Package distance provides the tentative-distance table shared by the
// mini-Dijkstra base case, FIND-PIVOTS, and the BMSSP recursion.
//
// A Table holds one float64 distance and one predecessor per vertex,
// indexed directly by the CSR vertex index, and offers a single mutator,
// Relax, that tightens an edge and reports whether it did. Every BMSSP
// stack frame shares one Table for the whole run, so Relax is the only
// place distances ever change (spec §4.2).
package distance
