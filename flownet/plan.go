package flownet

import (
	"fmt"
	"strings"

	"github.com/rhartert/flowsearch/flownet/route"
	"github.com/rhartert/sparsesets"
)

// Plan is an opening schedule: one route per agent and the total flow it
// releases.
type Plan struct {
	Flow   int
	Routes []*route.Route
}

// newPlan rebuilds the routes of a schedule from an opening trail. It panics
// if the trail cannot be replayed as routes, which would mean that the search
// recorded an agent opening a node twice or going back in time.
func newPlan(start int, nAgents int, flow int, openings []Opening) Plan {
	p := Plan{
		Flow:   flow,
		Routes: make([]*route.Route, nAgents),
	}
	for i := range p.Routes {
		p.Routes[i] = route.New(start, len(openings))
	}
	for _, o := range openings {
		if !p.Routes[o.Agent].Append(o.Node, o.Time) {
			panic(fmt.Sprintf("flownet: agent %d cannot open node %d at time %d", o.Agent, o.Node, o.Time))
		}
	}
	return p
}

// Validate checks that the plan is feasible on the network for the given time
// budget: every opened node has a positive flow rate and is opened at most
// once across all routes, every opening completes within the budget and no
// sooner than the travel time from the previous stop allows, and Flow is the
// flow released by the openings.
func (p Plan) Validate(net *Network, table *DistanceTable, budget int) error {
	credited := sparsesets.New(net.Len())
	flow := 0
	for a, r := range p.Routes {
		replay := route.New(r.Node(0), r.Openings())
		for i := 1; i < r.Length(); i++ {
			node, t := r.Node(i), r.Time(i)
			prev, prevTime := replay.Last()
			if net.FlowRate(node) <= 0 {
				return fmt.Errorf("agent %d opens node %q which has no flow", a, net.Name(node))
			}
			if credited.Contains(node) {
				return fmt.Errorf("node %q is opened more than once", net.Name(node))
			}
			credited.Insert(node)
			if t > budget {
				return fmt.Errorf("agent %d opens node %q at time %d, after the budget of %d", a, net.Name(node), t, budget)
			}
			d, ok := table.Distance(prev, node)
			if !ok {
				return fmt.Errorf("agent %d cannot reach node %q from node %q", a, net.Name(node), net.Name(prev))
			}
			if t < prevTime+d+1 {
				return fmt.Errorf("agent %d opens node %q at time %d, too early", a, net.Name(node), t)
			}
			if !replay.Append(node, t) {
				return fmt.Errorf("agent %d cannot open node %q at time %d", a, net.Name(node), t)
			}
			flow += (budget - t) * net.FlowRate(node)
		}
	}
	if flow != p.Flow {
		return fmt.Errorf("plan releases %d, not %d", flow, p.Flow)
	}
	return nil
}

// Format returns a multi-line description of the plan with node names.
func (p Plan) Format(net *Network) string {
	sb := strings.Builder{}
	for a, r := range p.Routes {
		sb.WriteString(fmt.Sprintf("agent %d: %s\n", a, r.Format(net.Name)))
	}
	return sb.String()
}
