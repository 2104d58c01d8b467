// Package solver finds the maximum flow that one or two agents can release
// from a network within a time budget, by seeding an exhaustive search with
// every possible first move.
package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/rhartert/flowsearch/flownet"
	"github.com/rhartert/flowsearch/flownet/route"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	// Budget is the number of time units available. Opening a node costs one
	// time unit and so does moving through a tunnel.
	Budget int

	// Agents is the number of agents opening nodes, either 1 or 2. All agents
	// start from the same node at time 0.
	Agents int

	// Start is the name of the node where the agents start.
	Start string

	// Workers bounds the number of seeds searched concurrently. Zero or a
	// negative value means one worker per CPU.
	Workers int

	// Logger receives progress messages. The default logger is used if nil.
	Logger *slog.Logger
}

// Validate returns an error if the configuration cannot be solved.
func (c Config) Validate() error {
	if c.Budget < 0 {
		return fmt.Errorf("budget must be non-negative, got: %d", c.Budget)
	}
	if c.Agents != 1 && c.Agents != 2 {
		return fmt.Errorf("number of agents must be 1 or 2, got: %d", c.Agents)
	}
	if c.Start == "" {
		return errors.New("missing start node")
	}
	return nil
}

// Result is the outcome of a search.
type Result struct {
	MaxFlow int
	Plan    flownet.Plan
	Seeds   int // number of first moves searched
}

type Solver struct {
	Network *flownet.Network
	Table   *flownet.DistanceTable
	Cfg     Config

	logger *slog.Logger
}

// New returns a solver for the network. The shortest travel times between the
// nodes worth opening are computed once here and shared by all searches.
func New(net *flownet.Network, cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	start, ok := net.Lookup(cfg.Start)
	if !ok {
		return nil, fmt.Errorf("start node %q: %w", cfg.Start, flownet.ErrUnknownNode)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "solver"))

	table, err := flownet.NewDistanceTable(net, start)
	if err != nil {
		return nil, fmt.Errorf("error building distance table: %w", err)
	}
	logger.Debug("distance table ready",
		"nodes", net.Len(),
		"useful", len(table.Useful()),
		"start", cfg.Start)

	return &Solver{
		Network: net,
		Table:   table,
		Cfg:     cfg,
		logger:  logger,
	}, nil
}

// Seeds returns the first moves of the agents from the start node. With two
// agents, every ordered pair of distinct useful nodes is a seed, followed by
// every single useful node for the case where the second agent never moves.
func (s *Solver) Seeds() [][]flownet.AgentState {
	first := []flownet.AgentState{}
	for _, h := range s.Table.From(s.Table.Start()) {
		if t := h.Distance + 1; t <= s.Cfg.Budget {
			first = append(first, flownet.AgentState{Node: h.To, Time: t})
		}
	}

	seeds := [][]flownet.AgentState{}
	if s.Cfg.Agents == 2 {
		for _, a := range first {
			for _, b := range first {
				if a.Node == b.Node {
					continue
				}
				seeds = append(seeds, []flownet.AgentState{a, b})
			}
		}
	}
	for _, a := range first {
		seeds = append(seeds, []flownet.AgentState{a})
	}
	return seeds
}

// Solve searches every seed and returns the best result. Seeds are searched
// concurrently, each one with its own Maximizer. Solve returns ctx.Err() if
// the context is canceled before all seeds are searched.
func (s *Solver) Solve(ctx context.Context) (Result, error) {
	seeds := s.Seeds()
	workers := s.Cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	s.logger.Debug("searching", "seeds", len(seeds), "workers", workers, "budget", s.Cfg.Budget)

	results := make([]Result, len(seeds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		i, seed := i, seed
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m := flownet.NewMaximizer(s.Network, s.Table, s.Cfg.Budget)
			flow := m.MaxFlow(seed...)
			results[i] = Result{MaxFlow: flow, Plan: s.pad(m.Best())}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	best := s.reduce(results)
	best.Seeds = len(seeds)
	s.logger.Info("search complete", "max_flow", best.MaxFlow, "seeds", len(seeds))
	return best, nil
}

// reduce returns the result with the highest flow. Ties are broken in favor
// of the earliest seed so that the returned plan is deterministic.
func (s *Solver) reduce(results []Result) Result {
	best := Result{Plan: s.pad(flownet.Plan{})}
	for _, r := range results {
		if r.MaxFlow > best.MaxFlow {
			best = r
		}
	}
	return best
}

// pad adds an empty route for each agent that does not move in the plan.
func (s *Solver) pad(p flownet.Plan) flownet.Plan {
	for len(p.Routes) < s.Cfg.Agents {
		p.Routes = append(p.Routes, route.New(s.Table.Start(), 0))
	}
	return p
}
