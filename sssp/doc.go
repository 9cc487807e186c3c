// Package sssp is the top-level single-source shortest path driver (spec
// §4.7, §6, §7): it derives the BMSSP recursion parameters (k, t, L),
// seeds the distance table, and dispatches to either the fast BMSSP
// recursion or the classical Dijkstra oracle depending on Config.
//
// Compute is the module's one public entry point, matching this
// module's convention of a single tagged-variant operation rather than
// a deep algorithm hierarchy: the two algorithms share one result shape,
// chosen via Config.Algorithm.
//
// Error handling: ErrNilGraph, ErrInvalidConfig, ErrSourceOutOfRange,
// and ErrNegativeWeight are surfaced only at this
// boundary — nothing inside the BMSSP recursion or the classical
// Dijkstra oracle raises them, because by the time Compute calls into
// either, its own validation has already ruled them out.
package sssp
