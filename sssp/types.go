package sssp

import (
	"errors"
)

// Sentinel errors returned by Compute. These are the only errors this
// module ever surfaces: by the time Compute calls into bmssp.Run or
// dijkstra.Compute, validation here has already ruled out nil graphs,
// out-of-range sources, and negative weights.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to Compute.
	ErrNilGraph = errors.New("sssp: graph is nil")

	// ErrSourceOutOfRange indicates source is outside [0, VertexCount()).
	ErrSourceOutOfRange = errors.New("sssp: source vertex out of range")

	// ErrNegativeWeight indicates a negative edge weight was detected.
	ErrNegativeWeight = errors.New("sssp: negative edge weight encountered")

	// ErrInvalidConfig indicates a Config field is out of range: a
	// negative KOverride, TOverride, or LevelOverride, or a non-positive
	// BaseThreshold.
	ErrInvalidConfig = errors.New("sssp: invalid configuration")
)

// Algorithm selects which shortest-path driver Compute dispatches to.
type Algorithm int

const (
	// AlgoAuto picks AlgoFastSSSP for graphs above Config.BaseThreshold
	// vertices and AlgoDijkstra otherwise, matching this module's policy
	// that the asymptotically faster algorithm only pays off at scale.
	AlgoAuto Algorithm = iota

	// AlgoDijkstra forces the classical binary-heap oracle regardless of
	// graph size.
	AlgoDijkstra

	// AlgoFastSSSP forces the BMSSP recursion regardless of graph size.
	AlgoFastSSSP
)

// Config controls Compute's algorithm selection and the BMSSP recursion
// parameters. The zero Config is invalid; use DefaultConfig.
type Config struct {
	// Algorithm selects the driver. Default: AlgoAuto.
	Algorithm Algorithm

	// BaseThreshold is the vertex-count cutoff AlgoAuto uses to decide
	// between AlgoDijkstra and AlgoFastSSSP. Must be positive. Default: 64.
	BaseThreshold int

	// KOverride, TOverride, and LevelOverride replace the derived k, t,
	// and L recursion parameters when positive. Zero means "derive from
	// graph size" (spec §4.7). Negative values are invalid.
	KOverride     int
	TOverride     int
	LevelOverride int
}

// Option is a functional option for Compute.
type Option func(*Config)

// DefaultConfig returns AlgoAuto with BaseThreshold 64 and no parameter
// overrides.
func DefaultConfig() Config {
	return Config{
		Algorithm:     AlgoAuto,
		BaseThreshold: 64,
	}
}

// WithAlgorithm forces Compute to use a specific algorithm, bypassing
// AlgoAuto's size-based selection.
func WithAlgorithm(a Algorithm) Option {
	return func(c *Config) {
		c.Algorithm = a
	}
}

// WithBaseThreshold sets the vertex-count cutoff AlgoAuto uses. Panics if
// threshold is not positive, matching this module's convention of
// validating option literals at construction time.
func WithBaseThreshold(threshold int) Option {
	if threshold <= 0 {
		panic(ErrInvalidConfig.Error())
	}
	return func(c *Config) {
		c.BaseThreshold = threshold
	}
}

// WithParams overrides the derived k, t, and L recursion parameters.
// Each of k, t, level must be positive. Panics on a non-positive value.
func WithParams(k, t, level int) Option {
	if k <= 0 || t <= 0 || level <= 0 {
		panic(ErrInvalidConfig.Error())
	}
	return func(c *Config) {
		c.KOverride = k
		c.TOverride = t
		c.LevelOverride = level
	}
}
