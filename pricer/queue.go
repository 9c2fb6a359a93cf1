package pricer

// expansionQueue is the set of labels whose successors have not yet been
// explored (§4.6). The spec default is a LIFO stack; pop order is
// unspecified by the algorithm's correctness as long as every enqueued
// non-dominated label is eventually popped or proven dominated (§9 Open
// Question 4 resolves the stack-vs-priority-queue choice in favor of the
// stack, since the teacher's own packages reach for container/heap only
// where ordering affects asymptotic complexity, not correctness).
//
// A label dominated after being queued is not removed from the slice;
// pop skips it lazily by checking label.removed, the same
// stale-entry discipline dijkstra's nodePQ uses for its heap.
type expansionQueue struct {
	stack []*label
}

// push adds l to the top of the stack.
func (q *expansionQueue) push(l *label) {
	q.stack = append(q.stack, l)
}

// pop removes and returns the top non-removed label, or nil if the queue
// (after skipping stale entries) is empty.
func (q *expansionQueue) pop() *label {
	for len(q.stack) > 0 {
		n := len(q.stack) - 1
		l := q.stack[n]
		q.stack = q.stack[:n]
		if !l.removed {
			return l
		}
	}
	return nil
}

// empty reports whether the queue has no non-removed label remaining. It
// drains stale entries from the top as a side effect, same as pop would.
func (q *expansionQueue) empty() bool {
	for len(q.stack) > 0 {
		n := len(q.stack) - 1
		if !q.stack[n].removed {
			return false
		}
		q.stack = q.stack[:n]
	}
	return true
}
