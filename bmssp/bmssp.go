package bmssp

import (
	"github.com/lvlath-labs/fastsssp/distance"
	"github.com/lvlath-labs/fastsssp/dstructure"
	"github.com/lvlath-labs/fastsssp/graph"
	"github.com/lvlath-labs/fastsssp/minidijkstra"
	"github.com/lvlath-labs/fastsssp/pivots"
)

// Params holds the k, t recursion parameters the SSSP driver derives
// once at entry and threads through every BMSSP frame unchanged.
type Params struct {
	K int
	T int
}

// Run executes bmssp(level, bound, s) against g and d, mutating d with
// every relaxation performed along the way. It returns the tightened
// bound Bprime (Bprime <= bound) and the set U of vertices whose true
// distance is strictly below Bprime; every vertex in U has its distance
// finalized in d by the time Run returns (spec §4.6).
func Run(g *graph.Graph, d *distance.Table, params Params, level int, bound float64, s []int) (float64, []int) {
	if level == 0 {
		return baseCase(g, d, params, bound, s)
	}

	res := pivots.Find(g, d, s, bound, params.K)
	p, w := res.P, res.W

	if len(p) == 0 {
		return finalize(d, bound, w, nil)
	}

	m := blockSize(level, params.T)
	store := dstructure.New(m, bound)
	for _, x := range p {
		store.Insert(x, d.Dist(x))
	}

	limit := params.K * pow2(level*params.T)
	u := make(map[int]bool)
	bprime := bound
	stoppedByCap := false

	for len(u) < limit && !store.Empty() {
		si, bi := pull(store)
		bprimeI, ui := Run(g, d, params, level-1, bi, si)

		for _, x := range ui {
			u[x] = true
		}

		batch := relaxAndCollect(g, d, store, ui, bound, bi, bprimeI)
		for _, x := range si {
			if dx := d.Dist(x); dx >= bprimeI && dx < bi {
				batch = append(batch, dstructure.Item{Vertex: x, Key: dx})
			}
		}
		store.BatchPrepend(batch)

		if len(u) >= limit {
			bprime = bprimeI
			stoppedByCap = true
			break
		}
	}

	if !stoppedByCap {
		bprime = bound
	}

	uList := make([]int, 0, len(u))
	for x := range u {
		uList = append(uList, x)
	}
	return finalize(d, bprime, w, uList)
}

// baseCase handles level 0: S is a singleton, and a single bounded
// multi-source mini-Dijkstra run (capped at k^2+1 finalizations) is the
// entire recursion's leaf.
func baseCase(g *graph.Graph, d *distance.Table, params Params, bound float64, s []int) (float64, []int) {
	limit := params.K*params.K + 1
	u, newBound := minidijkstra.Run(g, d, s, bound, limit)
	return newBound, u
}

// relaxAndCollect scans the out-edges of every vertex in ui, inserting
// tightened vertices whose new distance lands in [bi, bound) directly
// into the D-structure, and collecting vertices whose new distance lands
// in [bprimeI, bi) for the caller's subsequent BATCH_PREPEND.
func relaxAndCollect(g *graph.Graph, d *distance.Table, store *dstructure.DataStructure, ui []int, bound, bi, bprimeI float64) []dstructure.Item {
	var batch []dstructure.Item
	for _, x := range ui {
		g.Range(x, func(v int, weight float64) bool {
			newDist := d.Dist(x) + weight
			if newDist >= d.Dist(v) {
				return true
			}
			tightened, nd := d.Relax(x, v, weight)
			if !tightened || nd >= bound {
				return true
			}
			switch {
			case nd >= bi:
				store.Insert(v, nd)
			case nd >= bprimeI:
				batch = append(batch, dstructure.Item{Vertex: v, Key: nd})
			}
			return true
		})
	}
	return batch
}

func finalize(d *distance.Table, bprime float64, w []int, u []int) (float64, []int) {
	seen := make(map[int]bool, len(u))
	for _, x := range u {
		seen[x] = true
	}
	out := append([]int(nil), u...)
	for _, x := range w {
		if !seen[x] && d.Dist(x) < bprime {
			seen[x] = true
			out = append(out, x)
		}
	}
	return bprime, out
}

func pull(store *dstructure.DataStructure) ([]int, float64) {
	items, sep := store.Pull()
	si := make([]int, len(items))
	for i, it := range items {
		si[i] = it.Vertex
	}
	return si, sep
}

func blockSize(level, t int) int {
	return pow2((level - 1) * t)
}

func pow2(exp int) int {
	if exp <= 0 {
		return 1
	}
	if exp >= 62 {
		return 1 << 62
	}
	return 1 << uint(exp)
}
