// Package dijkstra implements a classical binary-heap Dijkstra over the
// module's immutable CSR graph.Graph, used as the correctness oracle for
// the BMSSP recursion and as a first-class, selectable algorithm from
// sssp.Compute (spec §4.8).
//
// Complexity:
//
//	- Time:  O((V + E) log V)   where V = vertex count, E = edge count.
//	- Each vertex is extracted from the priority queue at most once.
//	- Each edge relaxation may push into the priority queue (lazy decrease-key).
//	- Space: O(V + E)
//
// Options:
//
//	- MaxDistance: optional cap on distances to explore; vertices beyond
//	  this are left unreached.
//
// Errors (sentinel):
//
//	- ErrNilGraph          if the provided graph pointer is nil.
//	- ErrSourceOutOfRange  if source is outside [0, VertexCount()).
//	- ErrNegativeWeight    if a negative edge weight is detected.
//	- ErrBadMaxDistance    if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Compute.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to Compute.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates the source vertex index is outside
	// [0, VertexCount()).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures a Compute call.
//
// MaxDistance caps exploration: vertices whose shortest distance would
// exceed MaxDistance are left unreached. Default is +Inf (no cap).
type Options struct {
	MaxDistance float64
}

// Option is a functional option for Compute.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold. Must be
// non-negative; a negative value panics with ErrBadMaxDistance, matching
// this module's convention of validating option literals at construction
// time rather than deferring to a runtime error.
func WithMaxDistance(max float64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns the default Options: no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}
