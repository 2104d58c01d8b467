package flownet

import "testing"

// lineDefs returns the network A -- B -- C.
func lineDefs() map[string]NodeDef {
	return map[string]NodeDef{
		"A": {FlowRate: 0, Neighbors: []string{"B"}},
		"B": {FlowRate: 13, Neighbors: []string{"A", "C"}},
		"C": {FlowRate: 2, Neighbors: []string{"B"}},
	}
}

// sampleDefs returns the ten-node sample network used throughout the tests.
func sampleDefs() map[string]NodeDef {
	return map[string]NodeDef{
		"AA": {0, []string{"DD", "II", "BB"}},
		"BB": {13, []string{"CC", "AA"}},
		"CC": {2, []string{"DD", "BB"}},
		"DD": {20, []string{"CC", "AA", "EE"}},
		"EE": {3, []string{"FF", "DD"}},
		"FF": {0, []string{"EE", "GG"}},
		"GG": {0, []string{"FF", "HH"}},
		"HH": {22, []string{"GG"}},
		"II": {0, []string{"AA", "JJ"}},
		"JJ": {21, []string{"II"}},
	}
}

func mustNetwork(t *testing.T, defs map[string]NodeDef) *Network {
	t.Helper()
	net, err := NewNetwork(defs)
	if err != nil {
		t.Fatalf("NewNetwork(): want no error, got %s", err)
	}
	return net
}

func mustTable(t *testing.T, net *Network, start string) *DistanceTable {
	t.Helper()
	s, ok := net.Lookup(start)
	if !ok {
		t.Fatalf("Lookup(%q): node not found", start)
	}
	dt, err := NewDistanceTable(net, s)
	if err != nil {
		t.Fatalf("NewDistanceTable(): want no error, got %s", err)
	}
	return dt
}

// bestSeeded searches every first move from the start and returns the best
// flow and the schedule that achieves it.
func bestSeeded(net *Network, dt *DistanceTable, budget int, agents int) (int, Plan) {
	m := NewMaximizer(net, dt, budget)
	first := []AgentState{}
	for _, h := range dt.From(dt.Start()) {
		first = append(first, AgentState{Node: h.To, Time: h.Distance + 1})
	}

	seeds := [][]AgentState{}
	for _, a := range first {
		seeds = append(seeds, []AgentState{a})
		if agents < 2 {
			continue
		}
		for _, b := range first {
			if a.Node != b.Node {
				seeds = append(seeds, []AgentState{a, b})
			}
		}
	}

	best, plan := 0, Plan{}
	for _, s := range seeds {
		if f := m.MaxFlow(s...); f > best {
			best, plan = f, m.Best()
		}
	}
	return best, plan
}
