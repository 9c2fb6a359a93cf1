package instancegen

import (
	"fmt"
	"strconv"

	"github.com/routeforge/espprc/builder"
	"github.com/routeforge/espprc/core"
	"github.com/routeforge/espprc/pricer"
)

// GenerateConfig synthesizes a pricer.InstanceConfig: node 0 is the start
// depot, node N-1 is the end depot, and the arc set is sampled the way
// builder.RandomSparse samples a topology — each ordered pair (u,v), u≠v,
// included independently with probability EdgeProb, weighted by a uniform
// drive time in [MinDrive,MaxDrive]. Demand, service, and time windows are
// drawn independently per node from their configured uniform ranges; depot
// demand is forced to 0 to satisfy NewInstance's shape contract.
//
// The same Options (in particular the same Seed) always produce the same
// InstanceConfig.
func GenerateConfig(opts ...Option) (pricer.InstanceConfig, error) {
	o, err := resolve(opts...)
	if err != nil {
		return pricer.InstanceConfig{}, err
	}

	rng := rngFrom(o.Seed)

	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true), core.WithWeighted()},
		[]builder.BuilderOption{
			builder.WithRand(rng),
			builder.WithUniformWeight(o.MinDrive, o.MaxDrive),
		},
		builder.RandomSparse(o.N, o.EdgeProb),
	)
	if err != nil {
		return pricer.InstanceConfig{}, fmt.Errorf("instancegen: topology: %w", err)
	}

	succ := make([][]int, o.N)
	drive := make([][]int64, o.N)
	for i := range drive {
		drive[i] = make([]int64, o.N)
	}
	for _, e := range g.Edges() {
		u, err := strconv.Atoi(e.From)
		if err != nil {
			return pricer.InstanceConfig{}, fmt.Errorf("instancegen: edge endpoint %q: %w", e.From, err)
		}
		v, err := strconv.Atoi(e.To)
		if err != nil {
			return pricer.InstanceConfig{}, fmt.Errorf("instancegen: edge endpoint %q: %w", e.To, err)
		}
		succ[u] = append(succ[u], v)
		drive[u][v] = e.Weight
	}

	start, end := 0, o.N-1

	demand := make([]int64, o.N)
	service := make([]int64, o.N)
	windows := make([]pricer.Window, o.N)
	demandSpan := o.MaxDemand - o.MinDemand
	serviceSpan := o.MaxService - o.MinService

	for i := 0; i < o.N; i++ {
		if i == start || i == end {
			demand[i] = 0
		} else {
			demand[i] = o.MinDemand
			if demandSpan > 0 {
				demand[i] += rng.Int63n(demandSpan + 1)
			}
		}

		service[i] = o.MinService
		if serviceSpan > 0 {
			service[i] += rng.Int63n(serviceSpan + 1)
		}

		latest := o.WindowSlack
		if o.WindowSlack > 0 {
			latest += rng.Int63n(o.WindowSlack + 1)
		}
		windows[i] = pricer.Window{Earliest: 0, Latest: latest}
	}
	// The end depot's window must not be the binding constraint in a
	// freshly generated instance: widen it to the loosest sampled window.
	for i := 0; i < o.N; i++ {
		if windows[i].Latest > windows[end].Latest {
			windows[end].Latest = windows[i].Latest
		}
	}

	return pricer.InstanceConfig{
		N:          o.N,
		StartDepot: start,
		EndDepot:   end,
		Demand:     demand,
		Windows:    windows,
		Service:    service,
		Capacity:   o.Capacity,
		Drive:      drive,
		Succ:       succ,
		Elementary: o.Elementary,
	}, nil
}

// Generate synthesizes and validates a pricer.Instance in one call.
func Generate(opts ...Option) (*pricer.Instance, error) {
	cfg, err := GenerateConfig(opts...)
	if err != nil {
		return nil, err
	}
	inst, err := pricer.NewInstance(cfg)
	if err != nil {
		return nil, fmt.Errorf("instancegen: generated config rejected: %w", err)
	}
	return inst, nil
}

// UniformDuals builds a flat dual-price map — every node priced at the
// same value — a convenient baseline for exercising a freshly generated
// instance's FindPaths before wiring in real column-generation duals.
func UniformDuals(n int, value float64) map[int]float64 {
	duals := make(map[int]float64, n)
	for i := 0; i < n; i++ {
		duals[i] = value
	}
	return duals
}
