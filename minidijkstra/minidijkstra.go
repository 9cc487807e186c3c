package minidijkstra

import (
	"container/heap"

	"github.com/lvlath-labs/fastsssp/distance"
	"github.com/lvlath-labs/fastsssp/graph"
)

// Run performs a bounded, multi-source Dijkstra seeded from every vertex
// in sources at its current d.Dist(v), relaxing only into strictly lower
// distances below bound, and stopping once limit vertices have been
// finalized. It mutates d in place.
//
// Run returns the set U of vertices finalized during this call (in no
// particular order) and a new bound: if fewer than limit vertices were
// finalized, newBound == bound (the frontier was exhausted without
// hitting the cap); otherwise newBound is the maximum finalized distance
// in U, tightening the caller's bound so remaining work can be split.
func Run(g *graph.Graph, d *distance.Table, sources []int, bound float64, limit int) (U []int, newBound float64) {
	finalized := make(map[int]bool, limit)
	pq := make(nodePQ, 0, len(sources))
	heap.Init(&pq)

	for _, s := range sources {
		heap.Push(&pq, &nodeItem{vertex: s, dist: d.Dist(s)})
	}

	for pq.Len() > 0 && len(finalized) < limit {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.vertex

		if finalized[u] {
			continue
		}
		if item.dist > d.Dist(u) {
			continue
		}

		finalized[u] = true

		g.Range(u, func(v int, w float64) bool {
			newDist := d.Dist(u) + w
			if newDist <= d.Dist(v) && newDist < bound {
				tightened, nd := d.Relax(u, v, w)
				if tightened {
					heap.Push(&pq, &nodeItem{vertex: v, dist: nd})
				}
			}
			return true
		})
	}

	U = make([]int, 0, len(finalized))
	for v := range finalized {
		U = append(U, v)
	}

	if len(U) < limit {
		return U, bound
	}

	maxDist := 0.0
	for _, v := range U {
		if d.Dist(v) > maxDist {
			maxDist = d.Dist(v)
		}
	}
	return U, maxDist
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
