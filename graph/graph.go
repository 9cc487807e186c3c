package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrInvalidVertex indicates an edge endpoint outside [0, vertexCount).
	ErrInvalidVertex = errors.New("graph: vertex index out of range")

	// ErrInvalidEdge indicates a structurally malformed edge.
	ErrInvalidEdge = errors.New("graph: invalid edge")

	// ErrNegativeWeight indicates an edge with weight < 0.
	ErrNegativeWeight = errors.New("graph: negative edge weight")
)

// Graph is an immutable directed graph in compressed-sparse-row form.
//
// Invariants: 0 <= head[e] < VertexCount() for every e; weight[e] >= 0;
// offsets is non-decreasing and has length VertexCount()+1.
type Graph struct {
	offsets []int
	head    []int
	weight  []float64
}

// Edge is a single out-edge: a destination vertex and its weight.
type Edge struct {
	To     int
	Weight float64
}

// VertexCount returns the number of vertices n. Vertices are identified
// by the indices 0..n-1.
func (g *Graph) VertexCount() int {
	if g == nil {
		return 0
	}
	return len(g.offsets) - 1
}

// EdgeCount returns the number of directed edges m.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	return len(g.head)
}

// OutEdges returns the out-edges of v in stored order, as a freshly
// allocated slice safe for the caller to keep or mutate. Prefer Range in
// hot relaxation loops to avoid this allocation.
func (g *Graph) OutEdges(v int) []Edge {
	start, end := g.offsets[v], g.offsets[v+1]
	out := make([]Edge, end-start)
	for i := start; i < end; i++ {
		out[i-start] = Edge{To: g.head[i], Weight: g.weight[i]}
	}
	return out
}

// Range calls fn for every out-edge of v, in stored order, without
// allocating. Iteration stops early if fn returns false.
func (g *Graph) Range(v int, fn func(to int, weight float64) bool) {
	start, end := g.offsets[v], g.offsets[v+1]
	for i := start; i < end; i++ {
		if !fn(g.head[i], g.weight[i]) {
			return
		}
	}
}

// Builder accumulates edges before Finalize compiles them into a CSR Graph.
//
// Construction from an edge list validates vertex indices and non-negative
// weights; Finalize fails with ErrInvalidVertex or ErrNegativeWeight
// otherwise, per spec §4.1.
type Builder struct {
	n     int
	edges []rawEdge
}

type rawEdge struct {
	from, to int
	weight   float64
}

// NewBuilder creates a Builder for a graph with exactly n vertices
// (0..n-1). n must be non-negative.
func NewBuilder(n int) (*Builder, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: vertex count %d is negative", ErrInvalidVertex, n)
	}
	return &Builder{n: n}, nil
}

// AddEdge stages a directed edge u->v with the given weight. Self-loops
// are accepted structurally (spec §8 S6 requires they be ignored by
// relaxation, not rejected at construction).
func (b *Builder) AddEdge(u, v int, weight float64) error {
	if u < 0 || u >= b.n || v < 0 || v >= b.n {
		return fmt.Errorf("%w: edge (%d -> %d) with %d vertices", ErrInvalidVertex, u, v, b.n)
	}
	if weight < 0 {
		return fmt.Errorf("%w: edge (%d -> %d) has weight %g", ErrNegativeWeight, u, v, weight)
	}
	b.edges = append(b.edges, rawEdge{from: u, to: v, weight: weight})
	return nil
}

// Finalize compiles the staged edges into an immutable CSR Graph. Edges
// keep their stored insertion order within each vertex's adjacency run.
func (b *Builder) Finalize() *Graph {
	offsets := make([]int, b.n+1)
	for _, e := range b.edges {
		offsets[e.from+1]++
	}
	for v := 0; v < b.n; v++ {
		offsets[v+1] += offsets[v]
	}

	head := make([]int, len(b.edges))
	weight := make([]float64, len(b.edges))
	cursor := append([]int(nil), offsets...)
	for _, e := range b.edges {
		idx := cursor[e.from]
		head[idx] = e.to
		weight[idx] = e.weight
		cursor[e.from]++
	}

	return &Graph{offsets: offsets, head: head, weight: weight}
}
