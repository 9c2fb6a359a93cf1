// File: pricer.go
// Role: the Pricer façade (§4.1) and the search driver (§4.7) that drives
// the label-setting loop to termination and harvests negative-reduced-
// cost sink labels.
package pricer

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Pricer holds the instance data for one ESPPRC pricing problem and
// exposes FindPaths, the single operation of §4.1. A Pricer is built once
// per instance and reused across many calls; the elementary dominance
// mode may be toggled between calls via SetElementary.
type Pricer struct {
	inst       *Instance
	epsilon    float64
	parallel   bool
	elementary bool
}

// New builds a Pricer over inst. By default the dominance mode follows
// inst's own Elementary flag (as set in InstanceConfig); pass
// WithElementary to override it.
func New(inst *Instance, opts ...Option) (*Pricer, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}

	cfg := DefaultOptions()
	cfg.Elementary = inst.elementary
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Pricer{
		inst:       inst,
		epsilon:    cfg.Epsilon,
		parallel:   cfg.Parallel,
		elementary: cfg.Elementary,
	}, nil
}

// Elementary reports the Pricer's current dominance mode.
func (p *Pricer) Elementary() bool { return p.elementary }

// SetElementary toggles the dominance mode used by subsequent FindPaths
// calls (§4.1: "setter/getter on elementary toggle the dominance mode
// before a call").
func (p *Pricer) SetElementary(elementary bool) { p.elementary = elementary }

// FindPaths runs one pricing call: it primes the frontier at the start
// depot, runs the label-setting loop to termination, then harvests every
// end-depot label with reduced cost < -epsilon and no dominated ancestor,
// reconstructs each as a
// Path, and returns them sorted lexicographically by Nodes for
// deterministic output (§7).
//
// duals must define an entry for every node that can appear as a parent
// during the search; a missing entry returns ErrMissingDual and no
// partial results, per §6. forbiddenArcs lists arcs that must not be
// traversed this call.
//
// An empty, nil-error result means no negative-reduced-cost path exists;
// per §7 this is not an error condition.
func (p *Pricer) FindPaths(duals map[int]float64, forbiddenArcs []Arc) ([]Path, error) {
	inst := p.inst
	forbidden := make(map[Arc]struct{}, len(forbiddenArcs))
	for _, a := range forbiddenArcs {
		forbidden[a] = struct{}{}
	}

	fr := newFrontier(inst.n, inst.endDepot, p.elementary)
	q := &expansionQueue{}

	nextID := idCounter()

	start := inst.startDepot
	initVisited := newBitset(inst.n)
	initVisited.set(start)
	initial := &label{
		id:      nextID(),
		node:    start,
		cost:    0,
		rcost:   0,
		demand:  0,
		etime:   inst.windows[start].Earliest,
		visited: initVisited,
	}
	fr.insert(start, initial)
	if start != inst.endDepot {
		q.push(initial)
	}

	for {
		cur := q.pop()
		if cur == nil {
			break
		}
		fr.markProcessed(cur)

		if err := p.expand(cur, inst, duals, forbidden, fr, q, nextID); err != nil {
			return nil, err
		}
	}

	return p.harvest(fr, inst)
}

// expand extends cur along every allowed outgoing arc, inserting
// survivors into the frontier and queue. When p.parallel is set, the
// successor list is extended concurrently via errgroup.Group; each
// goroutine builds its child label with noID (id left at the zero value),
// and nextID is consulted only afterward, serially, in allowed[] order —
// the shared counter in idCounter is never touched from more than one
// goroutine. Dominance insertion also remains serialized because
// frontier.insert holds a single mutex for the whole call (§5's
// correctness requirement — no two candidate labels at one node may be
// inserted without consulting each other — is satisfied trivially by that
// single lock).
func (p *Pricer) expand(cur *label, inst *Instance, duals map[int]float64, forbidden map[Arc]struct{}, fr *frontier, q *expansionQueue, nextID func() int) error {
	succs := inst.succ[cur.node]

	allowed := make([]int, 0, len(succs))
	for _, v := range succs {
		if cur.visited.has(v) {
			continue // §4.3 pre-filter: no revisits
		}
		if _, blocked := forbidden[Arc{From: cur.node, To: v}]; blocked {
			continue // §4.3 pre-filter: forbidden arc
		}
		allowed = append(allowed, v)
	}

	if !p.parallel || len(allowed) <= 1 {
		for _, v := range allowed {
			child, err := extend(cur, v, inst, duals, nextID)
			if err != nil {
				return err
			}
			p.insertChild(v, child, inst, fr, q)
		}
		return nil
	}

	children := make([]*label, len(allowed))
	g, _ := errgroup.WithContext(context.Background())
	for i, v := range allowed {
		i, v := i, v
		g.Go(func() error {
			child, err := extend(cur, v, inst, duals, noID)
			if err != nil {
				return err
			}
			children[i] = child
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	// Ids are assigned here, serially, in the fixed allowed[] order, so
	// that a parallel call produces the same label ids as a serial one —
	// extend itself never touches the shared counter concurrently.
	for i, v := range allowed {
		children[i].id = nextID()
		p.insertChild(v, children[i], inst, fr, q)
	}
	return nil
}

// noID is the id source passed to extend for labels built inside a
// parallel goroutine: id assignment is deferred to the caller, which
// issues ids serially after every goroutine has returned (see expand).
func noID() int { return 0 }

// insertChild applies feasibility (§4.3) then frontier insertion (§4.5)
// to a freshly extended child label, queuing it for further expansion
// unless it landed at the end depot.
func (p *Pricer) insertChild(v int, child *label, inst *Instance, fr *frontier, q *expansionQueue) {
	if !feasible(child, inst) {
		return
	}
	res := fr.insert(v, child)
	if !res.accepted {
		return
	}
	if v != inst.endDepot {
		q.push(child)
	}
}

// harvest collects every live end-depot label with reduced cost below
// -epsilon, skips any whose predecessor chain contains a label later
// removed by dominance, reconstructs each remaining path, and sorts the
// results lexicographically by Nodes (§7).
func (p *Pricer) harvest(fr *frontier, inst *Instance) ([]Path, error) {
	sinks := fr.sinkLabels()

	results := make([]Path, 0, len(sinks))
	for _, l := range sinks {
		if l.rcost >= -p.epsilon {
			continue
		}
		retracted := false
		for a := l.parent; a != nil; a = a.parent {
			if a.removed {
				retracted = true
				break
			}
		}
		if retracted {
			continue
		}
		nodes, times := l.path()
		results = append(results, Path{
			Nodes:       nodes,
			Times:       times,
			Cost:        l.cost,
			ReducedCost: l.rcost,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return lessLex(results[i].Nodes, results[j].Nodes)
	})

	return results, nil
}

// lessLex compares two node sequences lexicographically, then by length
// when one is a prefix of the other.
func lessLex(a, b []int) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// idCounter returns a closure producing dense unique ids starting at 0,
// the per-call label-id generator (§9: "the id counter is per-call").
func idCounter() func() int {
	next := 0
	return func() int {
		id := next
		next++
		return id
	}
}
