// Package dijkstra provides a classical binary-heap Dijkstra over the
// module's immutable CSR graph.Graph, serving two roles: the
// correctness oracle the BMSSP recursion is tested against, and a
// first-class algorithm selectable from sssp.Compute.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source
//     vertex to every reachable vertex in O((V + E) log V) time.
//   - It relies on a min-heap to always expand the next-closest vertex,
//     using a lazy decrease-key discipline (stale heap entries are
//     skipped on pop rather than removed in place).
//   - Supports an optional MaxDistance cap to bound exploration.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph: g is nil.
//   - ErrSourceOutOfRange: source is outside [0, VertexCount()).
//   - ErrNegativeWeight: a negative edge weight was detected.
//   - ErrBadMaxDistance: WithMaxDistance was given a negative value (panics).
//
// Thread safety:
//
//   - Compute is not thread-safe against concurrent reads of the same
//     graph.Graph alongside graph construction — build the graph fully
//     via Builder.Finalize before calling Compute.
package dijkstra
