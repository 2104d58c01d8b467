package flownet

// AgentState is the position of an agent in the search: the node it has just
// reached and opened, and the time elapsed once the opening is complete.
type AgentState struct {
	Node int
	Time int
}

// agent is an AgentState tagged with the agent it belongs to, so that openings
// can be attributed once agents have been dropped from the search.
type agent struct {
	id   int
	node int
	time int
}

// Maximizer searches the opening schedule that releases the most flow within
// a time budget. A Maximizer is not safe for concurrent use; use one instance
// per goroutine. Instances can share the same Network and DistanceTable.
type Maximizer struct {
	net     *Network
	table   *DistanceTable
	budget  int
	nUseful int

	open *OpenSet

	// Best leaf of the last search, used to rebuild the schedule.
	nAgents  int
	bestFlow int
	best     []Opening
}

// NewMaximizer returns a Maximizer over the given network and its distance
// table for a fixed time budget.
func NewMaximizer(net *Network, table *DistanceTable, budget int) *Maximizer {
	return &Maximizer{
		net:     net,
		table:   table,
		budget:  budget,
		nUseful: len(table.Useful()),
		open:    NewOpenSet(net.Len()),
		best:    make([]Opening, 0, len(table.Useful())),
	}
}

// MaxFlow returns the maximum total flow that can be released by the given
// agents (one or two) starting from their current states, with nothing open
// yet. Each agent's current node is opened at the agent's time, so agents
// should be seeded on useful nodes with Time set to the travel time from the
// start plus one. An agent on a node with no flow opens nothing and only
// moves on from there.
//
// MaxFlow panics if called with more than two agents.
func (m *Maximizer) MaxFlow(agents ...AgentState) int {
	if len(agents) > 2 {
		panic("flownet: at most two agents are supported")
	}

	m.open.Clear()
	m.nAgents = len(agents)
	m.bestFlow = -1
	m.best = m.best[:0]

	tagged := make([]agent, len(agents))
	for i, a := range agents {
		tagged[i] = agent{id: i, node: a.Node, time: a.Time}
	}
	return m.search(tagged, 0)
}

// search returns the flow released by the agents' current openings plus the
// best flow that can be released afterwards. The openings made by ancestor
// calls are in m.open; acc is the flow they released, and is only used to
// record the best schedule.
func (m *Maximizer) search(agents []agent, acc int) int {
	// Agents that are out of time cannot open anything else.
	var buf [2]agent
	active := buf[:0]
	for _, a := range agents {
		if a.time <= m.budget {
			active = append(active, a)
		}
	}
	if len(active) == 0 {
		m.leaf(acc)
		return 0
	}

	mark := m.open.Mark()
	defer m.open.Undo(mark)

	gain := 0
	for _, a := range active {
		flow := m.net.FlowRate(a.node)
		if flow == 0 {
			continue
		}
		if !m.open.Open(Opening{Node: a.node, Agent: a.id, Time: a.time}) {
			return 0 // conflicting open: the node was credited already
		}
		gain += (m.budget - a.time) * flow
	}
	acc += gain

	if m.open.Len() == m.nUseful {
		m.leaf(acc)
		return gain
	}

	best := 0
	branched := false
	if len(active) == 1 {
		a := active[0]
		for _, h := range m.table.From(a.node) {
			next, ok := m.advance(a, h)
			if !ok {
				continue
			}
			branched = true
			best = max(best, m.search([]agent{next}, acc))
		}
	} else {
		// Each agent either moves to an unopened node or stops for good while
		// the other one keeps going. Both agents never target the same node.
		a, b := active[0], active[1]
		hopsA, hopsB := m.table.From(a.node), m.table.From(b.node)
		for i := -1; i < len(hopsA); i++ {
			var nextA agent
			moveA := i >= 0
			if moveA {
				var ok bool
				if nextA, ok = m.advance(a, hopsA[i]); !ok {
					continue
				}
			}
			for j := -1; j < len(hopsB); j++ {
				var next [2]agent
				n := 0
				if moveA {
					next[n] = nextA
					n++
				}
				if j >= 0 {
					nextB, ok := m.advance(b, hopsB[j])
					if !ok || (moveA && nextB.node == nextA.node) {
						continue
					}
					next[n] = nextB
					n++
				}
				if n == 0 {
					continue // both agents stop
				}
				branched = true
				best = max(best, m.search(next[:n], acc))
			}
		}
	}

	if !branched {
		m.leaf(acc)
	}
	return best + gain
}

// advance moves agent a along hop h and opens the destination. The second
// returned value is false if the destination is already open or if it cannot
// be opened within the budget.
func (m *Maximizer) advance(a agent, h Hop) (agent, bool) {
	if m.open.Contains(h.To) {
		return agent{}, false
	}
	t := a.time + h.Distance + 1
	if t > m.budget {
		return agent{}, false
	}
	return agent{id: a.id, node: h.To, time: t}, true
}

// leaf records the openings of the current branch if they release more flow
// than the best branch seen so far.
func (m *Maximizer) leaf(acc int) {
	if acc <= m.bestFlow {
		return
	}
	m.bestFlow = acc
	m.best = append(m.best[:0], m.open.Trail()...)
}

// Best returns the schedule found by the last call to MaxFlow. The schedule
// is empty if MaxFlow has not been called or if its agents were in conflict.
func (m *Maximizer) Best() Plan {
	return newPlan(m.table.Start(), m.nAgents, max(m.bestFlow, 0), m.best)
}
