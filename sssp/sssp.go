package sssp

import (
	"fmt"
	"math"

	"github.com/lvlath-labs/fastsssp/bmssp"
	"github.com/lvlath-labs/fastsssp/dijkstra"
	"github.com/lvlath-labs/fastsssp/distance"
	"github.com/lvlath-labs/fastsssp/graph"
)

// Compute computes shortest distances from source to every vertex of g.
//
// With the default Config (AlgoAuto), Compute runs the classical
// Dijkstra oracle for graphs at or below BaseThreshold vertices, and the
// BMSSP recursion above it — the BMSSP recursion parameters k, t, L are
// derived from the vertex count unless overridden via WithParams.
//
// Returns:
//   - dist: dist[v] is nil if v is unreachable from source, otherwise
//     the shortest distance.
//   - pred: pred[v] is nil if v has no predecessor (the source itself,
//     or unreachable), otherwise the immediate predecessor on one
//     shortest path from source.
//   - err: ErrNilGraph, ErrSourceOutOfRange, ErrNegativeWeight, or
//     ErrInvalidConfig.
func Compute(g *graph.Graph, source int, opts ...Option) ([]*float64, []*int, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.BaseThreshold <= 0 {
		return nil, nil, fmt.Errorf("%w: BaseThreshold=%d", ErrInvalidConfig, cfg.BaseThreshold)
	}
	if cfg.KOverride < 0 || cfg.TOverride < 0 || cfg.LevelOverride < 0 {
		return nil, nil, fmt.Errorf("%w: negative parameter override", ErrInvalidConfig)
	}

	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, nil, fmt.Errorf("%w: source=%d vertexCount=%d", ErrSourceOutOfRange, source, n)
	}
	for v := 0; v < n; v++ {
		for _, e := range g.OutEdges(v) {
			if e.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %d->%d weight=%g", ErrNegativeWeight, v, e.To, e.Weight)
			}
		}
	}

	algo := cfg.Algorithm
	if algo == AlgoAuto {
		if n <= cfg.BaseThreshold {
			algo = AlgoDijkstra
		} else {
			algo = AlgoFastSSSP
		}
	}

	if algo == AlgoDijkstra {
		return dijkstra.Compute(g, source)
	}

	k, t, level := deriveParams(n, cfg)
	d := distance.New(n)
	d.SetSource(source)
	bmssp.Run(g, d, bmssp.Params{K: k, T: t}, level, math.Inf(1), []int{source})

	return materialize(d)
}

// deriveParams computes the k, t, L recursion parameters from the graph
// size (spec §4.7):
//
//	k = max(1, floor(log2(n)^(1/3)))
//	t = max(1, floor(log2(n)^(2/3)))
//	L = max(1, ceil(ln(n)/t))
//
// Any positive override in cfg replaces its corresponding parameter.
func deriveParams(n int, cfg Config) (k, t, level int) {
	logN := math.Log2(math.Max(float64(n), 2))

	k = int(math.Floor(math.Pow(logN, 1.0/3.0)))
	if k < 1 {
		k = 1
	}
	t = int(math.Floor(math.Pow(logN, 2.0/3.0)))
	if t < 1 {
		t = 1
	}

	if cfg.KOverride > 0 {
		k = cfg.KOverride
	}
	if cfg.TOverride > 0 {
		t = cfg.TOverride
	}

	level = int(math.Ceil(math.Log(math.Max(float64(n), 2)) / float64(t)))
	if level < 1 {
		level = 1
	}
	if cfg.LevelOverride > 0 {
		level = cfg.LevelOverride
	}

	return k, t, level
}

// materialize converts the Table BMSSP mutated in place into the same
// nil-means-unreached, pointer-per-vertex shape dijkstra.Compute returns,
// so callers can treat the two algorithms' results interchangeably.
func materialize(d *distance.Table) ([]*float64, []*int, error) {
	n := d.Len()
	dist := make([]*float64, n)
	pred := make([]*int, n)
	for v := 0; v < n; v++ {
		if !d.Reached(v) {
			continue
		}
		dv := d.Dist(v)
		dist[v] = &dv
		if p := d.Pred(v); p != distance.NoPredecessor {
			pp := p
			pred[v] = &pp
		}
	}
	return dist, pred, nil
}
