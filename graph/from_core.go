package graph

import (
	"fmt"

	"github.com/lvlath-labs/fastsssp/core"
)

// FromCore compiles a mutable core.Graph into an immutable CSR Graph,
// casting the teacher's int64 edge weights to float64. Vertex indices are
// assigned by core.Graph.Vertices()'s deterministic lexicographic order,
// so the same core.Graph always compiles to the same CSR layout.
//
// Undirected edges in g are expanded into both directions, matching the
// semantics core.Graph already enforces when mirroring adjacency. Negative
// weights are rejected with ErrNegativeWeight, even though a weighted
// core.Graph cannot itself hold them by construction (an extra boundary
// check, since FromCore is an external-facing bridge per spec §6/§7).
func FromCore(g *core.Graph) (*Graph, []string, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("%w: nil core graph", ErrInvalidEdge)
	}

	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	b, err := NewBuilder(len(ids))
	if err != nil {
		return nil, nil, err
	}

	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s->%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		u, ok := index[e.From]
		if !ok {
			return nil, nil, fmt.Errorf("%w: unknown source vertex %q", ErrInvalidVertex, e.From)
		}
		v, ok := index[e.To]
		if !ok {
			return nil, nil, fmt.Errorf("%w: unknown destination vertex %q", ErrInvalidVertex, e.To)
		}
		if err := b.AddEdge(u, v, float64(e.Weight)); err != nil {
			return nil, nil, err
		}
		if !e.Directed && u != v {
			if err := b.AddEdge(v, u, float64(e.Weight)); err != nil {
				return nil, nil, err
			}
		}
	}

	return b.Finalize(), ids, nil
}
