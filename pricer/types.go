// Package pricer implements the ESPPRC label-setting pricing subproblem
// used inside column generation for a capacitated vehicle routing problem
// with time windows (VRPTW-C).
//
// Given an Instance (nodes, demands, time windows, service times, vehicle
// capacity, travel-time matrix, successor adjacency) and, per call, a dual
// price vector and a set of forbidden arcs, FindPaths enumerates every
// elementary source-to-sink path whose reduced cost is strictly negative.
// The search is a monotone dynamic program: a resource-extension function
// produces a child label from a parent along an arc, a feasibility
// predicate discards infeasible children, and a dominance relation prunes
// provably inferior labels from a per-node frontier before they can expand
// further.
//
// Complexity:
//
//   - Time: polynomial in N for relaxed dominance; worst-case exponential
//     in N for elementary dominance (the visited-subset condition makes
//     the frontier antichain exponentially large in the worst case).
//   - Space: O(label count), monotonically growing during a call and
//     released at return; labels are pruned only by dominance.
package pricer

import "errors"

// Sentinel errors of the pricer package: NewInstance returns ErrInstanceShape
// and ErrBadWindow, New returns ErrNilInstance, FindPaths returns
// ErrMissingDual, and WithEpsilon panics with ErrBadEpsilon's message.
var (
	// ErrInstanceShape indicates an index-bounds violation or a drive
	// matrix that is not N×N.
	ErrInstanceShape = errors.New("pricer: instance shape invalid")

	// ErrMissingDual indicates a node reachable as a parent during search
	// has no entry in the per-call duals mapping.
	ErrMissingDual = errors.New("pricer: missing dual for node")

	// ErrBadWindow indicates a time window with e_i > l_i.
	ErrBadWindow = errors.New("pricer: time window has e > l")

	// ErrBadEpsilon indicates a non-positive Epsilon option.
	ErrBadEpsilon = errors.New("pricer: epsilon must be positive")

	// ErrNilInstance indicates a nil *Instance was passed to New.
	ErrNilInstance = errors.New("pricer: instance is nil")
)

// defaultEpsilon is the strictly-negative-reduced-cost threshold: a path
// is reported iff its reduced cost is less than -defaultEpsilon.
const defaultEpsilon = 1e-6

// Options configures a Pricer's behavior across calls to FindPaths.
//
// Elementary  – toggles the dominance mode (§4.4): true requires the
//
//	visited-subset condition in addition to the three scalar
//	resource comparisons; false compares only the scalars.
//
// Epsilon     – the negative-reduced-cost output filter; a result is
//
//	included iff rcost < -Epsilon. Defaults to 1e-6.
//
// Parallel    – if true, extends a popped label's successor arcs
//
//	concurrently via golang.org/x/sync/errgroup, serializing
//	per-destination dominance insertion behind the node
//	frontier's mutex. Extension is embarrassingly parallel per
//	successor; the frontier is the only shared mutable state.
type Options struct {
	Elementary bool
	Epsilon    float64
	Parallel   bool
}

// Option is a functional option for configuring a Pricer.
type Option func(*Options)

// WithElementary toggles elementary dominance mode (the visited-subset
// condition). Pass false to run in relaxed mode.
func WithElementary(elementary bool) Option {
	return func(o *Options) {
		o.Elementary = elementary
	}
}

// WithEpsilon overrides the negative-reduced-cost output threshold.
// Must be positive; WithEpsilon panics on a non-positive value since this
// is a programmer error caught at option-construction time.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			panic(ErrBadEpsilon.Error())
		}
		o.Epsilon = eps
	}
}

// WithParallel enables optional intra-call parallel resource extension
// over a popped label's successor list (§5).
func WithParallel(parallel bool) Option {
	return func(o *Options) {
		o.Parallel = parallel
	}
}

// DefaultOptions returns an Options struct with Elementary=false,
// Epsilon=1e-6, and Parallel=false.
func DefaultOptions() Options {
	return Options{
		Elementary: false,
		Epsilon:    defaultEpsilon,
		Parallel:   false,
	}
}

// Arc identifies a directed edge by its endpoint node indices.
type Arc struct {
	From int
	To   int
}

// Path is one emitted result: an elementary source-to-sink path together
// with its arrival-time schedule, true cost, and reduced cost.
type Path struct {
	// Nodes is the sequence of node indices; Nodes[0] == start depot,
	// Nodes[len(Nodes)-1] == end depot.
	Nodes []int

	// Times[i] is the earliest feasible service-start at Nodes[i].
	Times []int64

	// Cost is the true path cost: the sum of drive times along Nodes.
	Cost int64

	// ReducedCost is the accumulated reduced cost along Nodes.
	ReducedCost float64
}
