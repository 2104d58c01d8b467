package flownet

// Edge represents a directed tunnel between two nodes. Cost is the number of
// time units needed to traverse it.
type Edge struct {
	From int
	To   int
	Cost int
}

// Topology represents the tunnels of a network as a directed graph. Nodes are
// identified by their index in [0, len(Nexts)) and Nexts[u] lists the indices
// (in Edges) of the edges leaving node u.
type Topology struct {
	Nexts [][]int
	Edges []Edge
}

// NewTopology creates a new topology with the specified edges and number of
// nodes. It is important to ensure that edges are only between nodes within
// the range [0, nNodes); otherwise, the function will panic.
func NewTopology(edges []Edge, nNodes int) *Topology {
	t := &Topology{
		Nexts: make([][]int, nNodes),
		Edges: make([]Edge, len(edges)),
	}
	for i, e := range edges {
		t.Edges[i] = e
		t.Nexts[e.From] = append(t.Nexts[e.From], i)
	}
	return t
}

// Successors returns the nodes reachable from u in one step, in edge order.
func (t *Topology) Successors(u int) []int {
	succ := make([]int, len(t.Nexts[u]))
	for i, e := range t.Nexts[u] {
		succ[i] = t.Edges[e].To
	}
	return succ
}
