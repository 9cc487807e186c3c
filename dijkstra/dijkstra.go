package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/lvlath-labs/fastsssp/graph"
)

// Compute computes shortest distances from source to every vertex of g,
// using a classical binary-heap Dijkstra.
//
// Returns:
//   - dist: dist[v] is nil if v is unreachable from source (within
//     MaxDistance, if set), otherwise the shortest distance.
//   - pred: pred[v] is nil if v has no predecessor (the source itself,
//     or unreachable), otherwise the immediate predecessor on one
//     shortest path from source.
//   - err: ErrNilGraph, ErrSourceOutOfRange, or ErrNegativeWeight.
func Compute(g *graph.Graph, source int, opts ...Option) ([]*float64, []*int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, nil, fmt.Errorf("%w: source=%d vertexCount=%d", ErrSourceOutOfRange, source, n)
	}

	// The CSR graph already rejects negative weights at construction, but
	// Compute is an external-facing boundary (spec §7), so it re-validates
	// rather than trusting that invariant silently.
	for v := 0; v < n; v++ {
		for _, e := range g.OutEdges(v) {
			if e.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %d->%d weight=%g", ErrNegativeWeight, v, e.To, e.Weight)
			}
		}
	}

	r := &runner{
		g:       g,
		maxDist: cfg.MaxDistance,
		dist:    make([]float64, n),
		pred:    make([]int, n),
		visited: make([]bool, n),
	}
	r.init(source)
	r.process()

	return r.result()
}

type runner struct {
	g       *graph.Graph
	maxDist float64
	dist    []float64
	pred    []int
	visited []bool
	pq      nodePQ
}

const noPredecessor = -1

func (r *runner) init(source int) {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.pred[v] = noPredecessor
	}
	r.dist[source] = 0

	r.pq = make(nodePQ, 0, r.g.VertexCount())
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{vertex: source, dist: 0})
}

func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.vertex

		if r.visited[u] {
			continue
		}
		if item.dist > r.maxDist {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

func (r *runner) relax(u int) {
	r.g.Range(u, func(v int, w float64) bool {
		newDist := r.dist[u] + w
		if newDist > r.maxDist || newDist >= r.dist[v] {
			return true
		}
		r.dist[v] = newDist
		r.pred[v] = u
		heap.Push(&r.pq, &nodeItem{vertex: v, dist: newDist})
		return true
	})
}

func (r *runner) result() ([]*float64, []*int, error) {
	dist := make([]*float64, len(r.dist))
	pred := make([]*int, len(r.pred))
	for v := range r.dist {
		if !r.visited[v] {
			continue
		}
		d := r.dist[v]
		dist[v] = &d
		if r.pred[v] != noPredecessor {
			p := r.pred[v]
			pred[v] = &p
		}
	}
	return dist, pred, nil
}

type nodeItem struct {
	vertex int
	dist   float64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
