package pivots

import (
	"math"
	"sort"

	"github.com/lvlath-labs/fastsssp/distance"
	"github.com/lvlath-labs/fastsssp/graph"
)

// Result holds FIND-PIVOTS's two outputs: the selected pivot set P and
// the work-set W of every vertex touched by the k relaxation rounds.
type Result struct {
	P []int
	W []int
}

// Find runs FIND-PIVOTS with k bounded-relaxation rounds from frontier S
// under bound B, mutating d with every relaxation performed along the
// way (exactly as the BMSSP recursion expects, since these relaxations
// are not wasted work: they contribute to the final distance table).
//
// If the work-set grows past k*len(S), Find short-circuits and returns
// P = S unchanged (the "small subproblem" fast path); otherwise P is
// built from the subtree sizes of the predecessor forest restricted to
// W, selecting vertices in S whose subtree has at least k vertices, with
// ties among candidates broken by ascending vertex index.
func Find(g *graph.Graph, d *distance.Table, s []int, bound float64, k int) Result {
	inW := make(map[int]bool, len(s))
	w := make([]int, len(s))
	copy(w, s)
	for _, v := range s {
		inW[v] = true
	}

	frontier := s
	for round := 0; round < k; round++ {
		var next []int
		for _, u := range frontier {
			g.Range(u, func(v int, weight float64) bool {
				newDist := d.Dist(u) + weight
				if newDist < d.Dist(v) && newDist < bound {
					tightened, _ := d.Relax(u, v, weight)
					if tightened && !inW[v] {
						inW[v] = true
						w = append(w, v)
						next = append(next, v)
					}
				}
				return true
			})
		}

		if len(w) > k*len(s) {
			return Result{P: append([]int(nil), s...), W: w}
		}
		frontier = next
	}

	p := selectPivots(g, d, s, inW, k)
	return Result{P: p, W: w}
}

// selectPivots builds the predecessor forest restricted to edges
// (pred[v], v) with both endpoints in W and finite distances, and
// returns the vertices of s whose subtree in that forest has at least k
// vertices.
func selectPivots(g *graph.Graph, d *distance.Table, s []int, inW map[int]bool, k int) []int {
	memo := make(map[int]int, len(inW))
	children := make(map[int][]int, len(inW))

	for v := range inW {
		pred := d.Pred(v)
		if pred != distance.NoPredecessor && inW[pred] && approxEqual(d.Dist(v), d.Dist(pred)+edgeWeight(g, pred, v)) {
			children[pred] = append(children[pred], v)
		}
	}
	for _, kids := range children {
		sort.Ints(kids)
	}

	var subtreeSize func(int) int
	subtreeSize = func(v int) int {
		if size, ok := memo[v]; ok {
			return size
		}
		memo[v] = 1
		size := 1
		for _, c := range children[v] {
			size += subtreeSize(c)
		}
		memo[v] = size
		return size
	}

	candidates := append([]int(nil), s...)
	sort.Ints(candidates)

	var p []int
	for _, v := range candidates {
		if subtreeSize(v) >= k {
			p = append(p, v)
		}
	}
	return p
}

// edgeWeight returns the weight of the edge u->v, or +Inf if no such
// edge exists. Used only to re-verify a tentative parent/child
// relationship already implied by pred[], so the linear scan cost is
// bounded by the out-degree of u, not of the whole graph.
func edgeWeight(g *graph.Graph, u, v int) float64 {
	found := math.Inf(1)
	g.Range(u, func(to int, w float64) bool {
		if to == v && w < found {
			found = w
		}
		return true
	})
	return found
}

func approxEqual(a, b float64) bool {
	const eps = 1e-9
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < eps
}
