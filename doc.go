// Package espprc is a solver for the Elementary Shortest Path Problem with
// Resource Constraints (ESPPRC), the pricing subproblem that arises inside
// column generation for the Vehicle Routing Problem with Time Windows and
// capacity constraints (VRPTW-C).
//
// Given a set of dual prices from the restricted master problem, the pricer
// performs a label-setting search over a fixed instance (nodes, demands,
// time windows, drive times, vehicle capacity) and returns every elementary
// path whose reduced cost is negative — each such path is a candidate column
// to add to the master problem. The search enforces capacity and
// time-window feasibility via resource extension, and prunes the label set
// with a dominance relation so that provably inferior partial paths are
// discarded before they can expand further.
//
// Under the hood, everything is organized under several subpackages:
//
//	core/        — thread-safe Graph/Vertex/Edge primitives; builder lays a
//	               random topology over a core.Graph, which instancegen then
//	               reads back into the plain adjacency arrays an Instance
//	               wants
//	builder/     — deterministic graph generators, the base instancegen
//	               builds on to synthesize topologies
//	instancegen/ — synthesizes reproducible ESPPRC instances (demand,
//	               windows, service, capacity, drive times) for tests
//	               and benchmarks
//	pricer/      — the label-setting search itself: resource extension,
//	               feasibility, dominance, the node frontier, the
//	               expansion queue, and the FindPaths façade
//
// Quick usage:
//
//	inst, err := pricer.NewInstance(pricer.InstanceConfig{ ... })
//	p, err := pricer.New(inst, pricer.WithElementary(true))
//	paths, err := p.FindPaths(duals, forbiddenArcs)
//
// FindPaths returns paths sorted deterministically by their node sequence;
// an empty, nil-error result means no negative-reduced-cost path exists.
//
//	go get github.com/routeforge/espprc
package espprc
