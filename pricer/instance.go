package pricer

import "fmt"

// Window is a time window (e, l) with e ≤ l: the earliest and latest
// feasible service-start at a node.
type Window struct {
	Earliest int64
	Latest   int64
}

// InstanceConfig is the construction-time input for an Instance: the
// read-only data describing a fixed ESPPRC pricing problem. Every field
// maps directly onto §3 of the component specification.
type InstanceConfig struct {
	// N is the number of nodes, indexed 0..N-1.
	N int

	// StartDepot and EndDepot are distinguished node indices; the
	// remaining indices form the customer set.
	StartDepot int
	EndDepot   int

	// Demand[i] is the demand of node i. Demand[StartDepot] and
	// Demand[EndDepot] must be 0.
	Demand []int64

	// Windows[i] is the time window of node i.
	Windows []Window

	// Service[i] is the service duration at node i.
	Service []int64

	// Capacity is the vehicle's capacity.
	Capacity int64

	// Drive[u][v] is the travel time from u to v. Must be N×N. Not
	// assumed symmetric.
	Drive [][]int64

	// Succ[u] is the ordered sequence of out-neighbours of u. Absence
	// (a nil or missing entry) means no outgoing arcs from u.
	Succ [][]int

	// Elementary toggles the dominance mode used by FindPaths unless
	// overridden per-Pricer via WithElementary.
	Elementary bool
}

// Instance is the validated, read-only data describing a fixed ESPPRC
// pricing problem. It is built once via NewInstance and reused across
// many FindPaths calls; Instance itself is never mutated by a call.
type Instance struct {
	n          int
	startDepot int
	endDepot   int
	demand     []int64
	windows    []Window
	service    []int64
	capacity   int64
	drive      [][]int64
	succ       [][]int
	elementary bool
}

// NewInstance validates cfg and returns an immutable Instance.
//
// Validation order:
//  1. N must be positive.
//  2. StartDepot and EndDepot must be valid indices and distinct.
//  3. Demand, Windows, Service must each have length N.
//  4. Demand[StartDepot] == Demand[EndDepot] == 0.
//  5. Every window satisfies e ≤ l (ErrBadWindow).
//  6. Drive must be N×N.
//  7. Succ, if non-nil, must have length N; every successor index must
//     be in 0..N-1.
//
// Any violation returns ErrInstanceShape (or ErrBadWindow for window
// ordering specifically).
func NewInstance(cfg InstanceConfig) (*Instance, error) {
	if cfg.N <= 0 {
		return nil, fmt.Errorf("%w: N must be positive, got %d", ErrInstanceShape, cfg.N)
	}
	if cfg.StartDepot < 0 || cfg.StartDepot >= cfg.N {
		return nil, fmt.Errorf("%w: start_depot %d out of range", ErrInstanceShape, cfg.StartDepot)
	}
	if cfg.EndDepot < 0 || cfg.EndDepot >= cfg.N {
		return nil, fmt.Errorf("%w: end_depot %d out of range", ErrInstanceShape, cfg.EndDepot)
	}
	if cfg.StartDepot == cfg.EndDepot {
		return nil, fmt.Errorf("%w: start_depot and end_depot must differ", ErrInstanceShape)
	}
	if len(cfg.Demand) != cfg.N {
		return nil, fmt.Errorf("%w: demand length %d != N %d", ErrInstanceShape, len(cfg.Demand), cfg.N)
	}
	if len(cfg.Windows) != cfg.N {
		return nil, fmt.Errorf("%w: windows length %d != N %d", ErrInstanceShape, len(cfg.Windows), cfg.N)
	}
	if len(cfg.Service) != cfg.N {
		return nil, fmt.Errorf("%w: service length %d != N %d", ErrInstanceShape, len(cfg.Service), cfg.N)
	}
	if cfg.Demand[cfg.StartDepot] != 0 || cfg.Demand[cfg.EndDepot] != 0 {
		return nil, fmt.Errorf("%w: depot demand must be 0", ErrInstanceShape)
	}
	for i, w := range cfg.Windows {
		if w.Earliest > w.Latest {
			return nil, fmt.Errorf("%w: node %d has e=%d > l=%d", ErrBadWindow, i, w.Earliest, w.Latest)
		}
	}
	if len(cfg.Drive) != cfg.N {
		return nil, fmt.Errorf("%w: drive has %d rows, want %d", ErrInstanceShape, len(cfg.Drive), cfg.N)
	}
	for i, row := range cfg.Drive {
		if len(row) != cfg.N {
			return nil, fmt.Errorf("%w: drive row %d has %d cols, want %d", ErrInstanceShape, i, len(row), cfg.N)
		}
	}

	succ := cfg.Succ
	if succ == nil {
		succ = make([][]int, cfg.N)
	}
	if len(succ) != cfg.N {
		return nil, fmt.Errorf("%w: succ has %d entries, want %d", ErrInstanceShape, len(succ), cfg.N)
	}
	for u, outs := range succ {
		for _, v := range outs {
			if v < 0 || v >= cfg.N {
				return nil, fmt.Errorf("%w: succ[%d] contains out-of-range node %d", ErrInstanceShape, u, v)
			}
		}
	}

	return &Instance{
		n:          cfg.N,
		startDepot: cfg.StartDepot,
		endDepot:   cfg.EndDepot,
		demand:     append([]int64(nil), cfg.Demand...),
		windows:    append([]Window(nil), cfg.Windows...),
		service:    append([]int64(nil), cfg.Service...),
		capacity:   cfg.Capacity,
		drive:      cfg.Drive,
		succ:       succ,
		elementary: cfg.Elementary,
	}, nil
}

// N returns the number of nodes.
func (inst *Instance) N() int { return inst.n }

// StartDepot returns the start depot's node index.
func (inst *Instance) StartDepot() int { return inst.startDepot }

// EndDepot returns the end depot's node index.
func (inst *Instance) EndDepot() int { return inst.endDepot }

