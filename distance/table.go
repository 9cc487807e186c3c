package distance

import "math"

// Unreached is the distance value for a vertex that has not yet been
// reached by any relaxation.
const Unreached = math.MaxFloat64

// NoPredecessor marks a vertex with no recorded predecessor: the source
// itself, or a vertex that has never been relaxed.
const NoPredecessor = -1

// Table is a tentative-distance table over n vertices, indexed 0..n-1.
// The zero value is not usable; construct one with New.
type Table struct {
	dist []float64
	pred []int
}

// New allocates a Table for n vertices with every distance set to
// Unreached and every predecessor set to NoPredecessor.
func New(n int) *Table {
	t := &Table{
		dist: make([]float64, n),
		pred: make([]int, n),
	}
	for i := range t.dist {
		t.dist[i] = Unreached
		t.pred[i] = NoPredecessor
	}
	return t
}

// Dist returns the current tentative distance of v.
func (t *Table) Dist(v int) float64 {
	return t.dist[v]
}

// Pred returns the current predecessor of v, or NoPredecessor.
func (t *Table) Pred(v int) int {
	return t.pred[v]
}

// Reached reports whether v has a finite tentative distance.
func (t *Table) Reached(v int) bool {
	return t.dist[v] < Unreached
}

// Len returns the number of vertices the table was built for.
func (t *Table) Len() int {
	return len(t.dist)
}

// SetSource marks src as reached at distance 0 with no predecessor.
// Relaxation from a source edge case still works without this, but
// callers use it to seed a multi-source run explicitly.
func (t *Table) SetSource(src int) {
	t.dist[src] = 0
	t.pred[src] = NoPredecessor
}

// Relax tightens the tentative distance of v via the edge u->v with the
// given weight, if doing so improves on the current d[v]. It reports
// whether the relaxation tightened v and the (possibly unchanged) new
// distance of v.
func (t *Table) Relax(u, v int, weight float64) (tightened bool, newDist float64) {
	candidate := t.dist[u] + weight
	if candidate < t.dist[v] {
		t.dist[v] = candidate
		t.pred[v] = u
		return true, candidate
	}
	return false, t.dist[v]
}

// Snapshot returns independent copies of the distance and predecessor
// slices, safe for a caller to retain past further mutation of t.
func (t *Table) Snapshot() (dist []float64, pred []int) {
	dist = make([]float64, len(t.dist))
	pred = make([]int, len(t.pred))
	copy(dist, t.dist)
	copy(pred, t.pred)
	return dist, pred
}
