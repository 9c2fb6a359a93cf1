package pricer

import "sync"

// frontier holds, per node, the bag of unprocessed and processed labels
// (§4.5). The invariant maintained by insert is that unprocessed[i] ∪
// processed[i] is an antichain under the dominance relation for every
// node i.
//
// unprocessed and processed are separate slices per node rather than one
// slice with a processed-flag, matching the spec's own two-bag
// description; a label moves from unprocessed to processed exactly once,
// when popped by the search driver for expansion (§9 Open Question 1) —
// except end-depot labels, which are inserted directly into processed
// and never expanded, since they have no successors.
type frontier struct {
	mu         sync.Mutex
	unproc     [][]*label
	proc       [][]*label
	endDepot   int
	elementary bool
}

// newFrontier allocates empty bags for n nodes.
func newFrontier(n, endDepot int, elementary bool) *frontier {
	return &frontier{
		unproc:     make([][]*label, n),
		proc:       make([][]*label, n),
		endDepot:   endDepot,
		elementary: elementary,
	}
}

// isDominated reports whether any live label in node v's bags dominates
// cand.
func (f *frontier) isDominated(v int, cand *label) bool {
	for _, l := range f.unproc[v] {
		if !l.removed && dominates(l, cand, f.elementary) {
			return true
		}
	}
	for _, l := range f.proc[v] {
		if !l.removed && dominates(l, cand, f.elementary) {
			return true
		}
	}
	return false
}

// insertResult reports the outcome of attempting to insert a candidate
// label into the frontier at its node.
type insertResult struct {
	accepted bool
	// dominated is the set of existing labels cand dominated and evicted
	// (empty when v == end depot, per the §4.5 sink exception).
	dominated []*label
}

// insert implements §4.5's per-node insertion algorithm. The caller (the
// search driver) is responsible for also removing any dominated labels
// from the expansion queue; insert only updates the frontier's own bags
// and marks evicted labels removed.
func (f *frontier) insert(v int, cand *label) insertResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.isDominated(v, cand) {
		return insertResult{accepted: false}
	}

	var evicted []*label
	if v != f.endDepot {
		// Sink labels accumulate and are never retracted (§4.5 step 2
		// exception): skip the dominated_by scan entirely at the end depot.
		evicted = f.removeDominatedLocked(v, cand)
	}

	if v == f.endDepot {
		f.proc[v] = append(f.proc[v], cand)
	} else {
		f.unproc[v] = append(f.unproc[v], cand)
	}

	return insertResult{accepted: true, dominated: evicted}
}

// removeDominatedLocked removes every live label at node v that cand
// dominates, from both bags, marking each removed. Must be called with
// f.mu held.
func (f *frontier) removeDominatedLocked(v int, cand *label) []*label {
	var evicted []*label

	keep := f.unproc[v][:0]
	for _, l := range f.unproc[v] {
		if !l.removed && dominates(cand, l, f.elementary) {
			l.removed = true
			evicted = append(evicted, l)
			continue
		}
		keep = append(keep, l)
	}
	f.unproc[v] = keep

	keepP := f.proc[v][:0]
	for _, l := range f.proc[v] {
		if !l.removed && dominates(cand, l, f.elementary) {
			l.removed = true
			evicted = append(evicted, l)
			continue
		}
		keepP = append(keepP, l)
	}
	f.proc[v] = keepP

	return evicted
}

// markProcessed moves l from unprocessed[l.node] to processed[l.node],
// used by the search driver when popping l for expansion. l must not be
// an end-depot label (those are inserted directly into processed and
// never queued).
func (f *frontier) markProcessed(l *label) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v := l.node
	keep := f.unproc[v][:0]
	for _, x := range f.unproc[v] {
		if x == l {
			continue
		}
		keep = append(keep, x)
	}
	f.unproc[v] = keep
	f.proc[v] = append(f.proc[v], l)
}

// sinkLabels returns every live (non-removed) label at the end depot,
// i.e. processed[end_depot] plus unprocessed[end_depot] per §4.7's
// output step (defensive: with the §9-resolved insertion policy, sink
// labels always land in processed, but unprocessed is scanned too in
// case a future change to that policy reintroduces the ambiguity §9
// describes).
func (f *frontier) sinkLabels() []*label {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*label
	for _, l := range f.proc[f.endDepot] {
		if !l.removed {
			out = append(out, l)
		}
	}
	for _, l := range f.unproc[f.endDepot] {
		if !l.removed {
			out = append(out, l)
		}
	}
	return out
}

// antichainCheck reports whether, for the given node, no two live labels
// in unprocessed[i] ∪ processed[i] dominate one another. This is exposed
// for testing the frontier-antichain invariant (§8 property 1); it is not
// used by the search driver itself.
func (f *frontier) antichainCheck(v int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	all := make([]*label, 0, len(f.unproc[v])+len(f.proc[v]))
	for _, l := range f.unproc[v] {
		if !l.removed {
			all = append(all, l)
		}
	}
	for _, l := range f.proc[v] {
		if !l.removed {
			all = append(all, l)
		}
	}
	for i := range all {
		for j := range all {
			if i == j {
				continue
			}
			if dominates(all[i], all[j], f.elementary) {
				return false
			}
		}
	}
	return true
}
