// Package instancegen synthesizes reproducible pricer.Instance values for
// tests and benchmarks, the way builder synthesizes core.Graph topologies:
// a functional-options config resolved once, then a deterministic
// generation pass driven by a seeded *rand.Rand.
package instancegen

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrBadOptions indicates that the resolved Options describe a degenerate
// instance shape (too few nodes, an empty or inverted resource range).
var ErrBadOptions = errors.New("instancegen: invalid options")

// Options configures the shape and resource distributions of a generated
// instance. The zero value is not meaningful; use DefaultOptions.
type Options struct {
	// N is the node count, including the two depots. Must be ≥ 2.
	N int

	// Seed drives every random draw (topology, drive times, demand,
	// windows). The same Seed and Options reproduce byte-identical
	// instances.
	Seed int64

	// EdgeProb is the RandomSparse-style independent arc inclusion
	// probability (§ builder.RandomSparse). Must lie in [0,1].
	EdgeProb float64

	// MinDrive, MaxDrive bound the uniform drive-time distribution sampled
	// per included arc. Must satisfy 0 ≤ MinDrive ≤ MaxDrive.
	MinDrive, MaxDrive int64

	// MinDemand, MaxDemand bound the uniform per-customer demand
	// distribution. Depot demand is always forced to 0 regardless of this
	// range. Must satisfy 0 ≤ MinDemand ≤ MaxDemand.
	MinDemand, MaxDemand int64

	// Capacity is the vehicle capacity carried into InstanceConfig.
	Capacity int64

	// MinService, MaxService bound the uniform per-node service duration.
	// Must satisfy 0 ≤ MinService ≤ MaxService.
	MinService, MaxService int64

	// WindowSlack sets each node's time window to [0, Latest], with Latest
	// drawn uniformly from [WindowSlack, 2·WindowSlack]; the end depot's
	// Latest is then raised to the largest sampled Latest. Larger values
	// loosen feasibility, smaller values tighten it. Must be ≥ 0.
	WindowSlack int64

	// Elementary sets InstanceConfig.Elementary on the generated instance.
	Elementary bool
}

// Option mutates an Options value during resolution.
type Option func(*Options)

// DefaultOptions returns a small, densely connected, loosely windowed
// instance: 8 nodes, 40% arc density, drive times in [1,20], demand in
// [0,5], capacity 20, service in [0,3], window slack 50, elementary mode.
func DefaultOptions() Options {
	return Options{
		N:           8,
		Seed:        1,
		EdgeProb:    0.4,
		MinDrive:    1,
		MaxDrive:    20,
		MinDemand:   0,
		MaxDemand:   5,
		Capacity:    20,
		MinService:  0,
		MaxService:  3,
		WindowSlack: 50,
		Elementary:  true,
	}
}

// WithN sets the node count.
func WithN(n int) Option { return func(o *Options) { o.N = n } }

// WithSeed sets the RNG seed.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithEdgeProb sets the RandomSparse-style arc density.
func WithEdgeProb(p float64) Option { return func(o *Options) { o.EdgeProb = p } }

// WithDriveRange sets the uniform drive-time bounds.
func WithDriveRange(min, max int64) Option {
	return func(o *Options) { o.MinDrive, o.MaxDrive = min, max }
}

// WithDemandRange sets the uniform customer-demand bounds.
func WithDemandRange(min, max int64) Option {
	return func(o *Options) { o.MinDemand, o.MaxDemand = min, max }
}

// WithCapacity sets the vehicle capacity.
func WithCapacity(cap int64) Option { return func(o *Options) { o.Capacity = cap } }

// WithServiceRange sets the uniform service-duration bounds.
func WithServiceRange(min, max int64) Option {
	return func(o *Options) { o.MinService, o.MaxService = min, max }
}

// WithWindowSlack sets WindowSlack, the lower bound of each sampled window's Latest.
func WithWindowSlack(slack int64) Option { return func(o *Options) { o.WindowSlack = slack } }

// WithElementary sets the Elementary flag carried onto the generated
// instance.
func WithElementary(elementary bool) Option { return func(o *Options) { o.Elementary = elementary } }

// resolve applies opts over DefaultOptions and validates the result.
func resolve(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.N < 2 {
		return o, fmt.Errorf("%w: N must be ≥ 2, got %d", ErrBadOptions, o.N)
	}
	if o.EdgeProb < 0 || o.EdgeProb > 1 {
		return o, fmt.Errorf("%w: edge_prob %.6f not in [0,1]", ErrBadOptions, o.EdgeProb)
	}
	if o.MinDrive < 0 || o.MaxDrive < o.MinDrive {
		return o, fmt.Errorf("%w: drive range [%d,%d] invalid", ErrBadOptions, o.MinDrive, o.MaxDrive)
	}
	if o.MinDemand < 0 || o.MaxDemand < o.MinDemand {
		return o, fmt.Errorf("%w: demand range [%d,%d] invalid", ErrBadOptions, o.MinDemand, o.MaxDemand)
	}
	if o.MinService < 0 || o.MaxService < o.MinService {
		return o, fmt.Errorf("%w: service range [%d,%d] invalid", ErrBadOptions, o.MinService, o.MaxService)
	}
	if o.WindowSlack < 0 {
		return o, fmt.Errorf("%w: window_slack must be ≥ 0, got %d", ErrBadOptions, o.WindowSlack)
	}
	return o, nil
}

// rngFrom is the same pattern builder's sequence generators use: a fresh,
// locally seeded source, never a shared global one.
func rngFrom(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }
