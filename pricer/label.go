package pricer

// label is an immutable record describing a partial path ending at some
// node with accumulated resources (§3). Labels are created by the driver
// (the initial label) or by extend, and are never mutated after
// construction — dominance and expansion only ever replace a label's
// presence in a frontier/queue/predecessor map, never its fields.
type label struct {
	id     int     // dense unique integer per call; identity for predecessor lookup
	node   int     // the partial path's current endpoint
	cost   int64   // true path cost: sum of drive along the path
	rcost  float64 // reduced cost accumulated along the path
	demand int64   // sum of demand[v] for every node visited, start depot contributes 0
	etime  int64   // earliest feasible service-start at node
	parent *label  // predecessor label, nil for the initial label

	// removed marks a label that has been dominated and evicted from its
	// frontier bag. A removed label is skipped if still present in the
	// expansion queue (lazy deletion, the same pattern dijkstra's nodePQ
	// uses for stale heap entries) and is never expanded afterward. A label
	// removed after it was already expanded keeps its existing descendants,
	// but harvest skips every sink label whose parent chain contains a
	// removed label — this is how removal propagates to "the predecessor
	// map" per §9's shared-ownership note, since predecessor links here are
	// parent pointers, not a side table.
	removed bool

	// visited is a dense bitset over 0..N-1 (§9 recommends a bitset over a
	// hash set for the dominance hot path's subset/membership checks).
	visited bitset
}

// bitset is a fixed-size dense bitset over node indices 0..n-1.
type bitset []uint64

// newBitset returns a bitset sized for n node indices, all clear.
func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

// clone returns an independent copy of b.
func (b bitset) clone() bitset {
	out := make(bitset, len(b))
	copy(out, b)
	return out
}

// set marks index i as present.
func (b bitset) set(i int) {
	b[i/64] |= 1 << uint(i%64)
}

// has reports whether index i is present.
func (b bitset) has(i int) bool {
	return b[i/64]&(1<<uint(i%64)) != 0
}

// subsetOf reports whether every index set in b is also set in other —
// i.e. b ⊆ other. Both bitsets must have equal length.
func (b bitset) subsetOf(other bitset) bool {
	for i := range b {
		if b[i]&^other[i] != 0 {
			return false
		}
	}
	return true
}

// extend implements the resource-extension function (§4.2): given parent
// label p and arc (u,v) where u == p.node, it produces the child label
// that results from traversing that arc. The caller is responsible for
// the §4.3 pre-filters (v not visited, arc not forbidden) before calling
// extend, and for feasibility afterward.
//
//	d        = drive[u][v]
//	arrival  = p.etime + service[u] + d
//	child.etime  = max(arrival, e_v)
//	child.cost   = p.cost + d
//	child.rcost  = p.rcost + d - duals[u]
//	child.demand = p.demand + demand[v]
//
// duals[u] — the price of leaving u — is subtracted on every extension;
// this is the authoritative interpretation per §4.2/§9 Open Question 2.
func extend(p *label, v int, inst *Instance, duals map[int]float64, nextID func() int) (*label, error) {
	u := p.node
	dualU, ok := duals[u]
	if !ok {
		return nil, ErrMissingDual
	}

	d := inst.drive[u][v]
	arrival := p.etime + inst.service[u] + d
	etime := arrival
	if w := inst.windows[v]; etime < w.Earliest {
		etime = w.Earliest
	}

	visited := p.visited.clone()
	visited.set(v)

	return &label{
		id:      nextID(),
		node:    v,
		cost:    p.cost + d,
		rcost:   p.rcost + float64(d) - dualU,
		demand:  p.demand + inst.demand[v],
		etime:   etime,
		parent:  p,
		visited: visited,
	}, nil
}

// feasible implements the feasibility predicate (§4.3): a child label is
// feasible iff its earliest service-start does not exceed the node's
// latest service-start and its accumulated demand does not exceed
// capacity.
func feasible(child *label, inst *Instance) bool {
	w := inst.windows[child.node]
	if child.etime > w.Latest {
		return false
	}
	if child.demand > inst.capacity {
		return false
	}
	return true
}

// dominates implements the dominance relation (§4.4): label a dominates
// label b at the same node iff a is no worse on every scalar resource,
// strictly better on at least one, and — in elementary mode — a's
// visited set is a subset of b's.
func dominates(a, b *label, elementary bool) bool {
	if a.etime > b.etime || a.rcost > b.rcost || a.demand > b.demand {
		return false
	}
	if a.etime == b.etime && a.rcost == b.rcost && a.demand == b.demand {
		return false // ties do not dominate
	}
	if elementary && !a.visited.subsetOf(b.visited) {
		return false
	}
	return true
}

// path reconstructs the (nodes, times) sequence by walking parent links
// from sink back to the initial label, then reversing.
func (l *label) path() ([]int, []int64) {
	var nodes []int
	var times []int64
	for cur := l; cur != nil; cur = cur.parent {
		nodes = append(nodes, cur.node)
		times = append(times, cur.etime)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
		times[i], times[j] = times[j], times[i]
	}
	return nodes, times
}
