package flownet

import (
	"fmt"
	"math"
	"sort"

	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"
)

// Unreachable is the distance reported for nodes that cannot be reached.
const Unreachable = -1

// ShortestPaths computes single-source shortest distances on a topology. The
// set of finalized nodes and the cost slice are reused by every call to
// DistancesFrom. The heap is not: popped entries keep their position in a
// yagh.IntMap, so each call starts from a fresh one.
type ShortestPaths struct {
	topology  *Topology
	finalized *sparsesets.Set
	costs     []int
}

// NewShortestPaths returns a shortest path engine for the given topology.
func NewShortestPaths(t *Topology) *ShortestPaths {
	nNodes := len(t.Nexts)
	return &ShortestPaths{
		topology:  t,
		finalized: sparsesets.New(nNodes),
		costs:     make([]int, nNodes),
	}
}

// DistancesFrom returns the minimum travel cost from src to every node of the
// topology. The returned slice is indexed by node and holds Unreachable for
// nodes that have no path from src.
func (sp *ShortestPaths) DistancesFrom(src int) ([]int, error) {
	nNodes := len(sp.topology.Nexts)
	if src < 0 || nNodes <= src {
		return nil, fmt.Errorf("node %d is not in the topology: %w", src, ErrUnknownNode)
	}

	for i := range sp.costs {
		sp.costs[i] = math.MaxInt
	}
	sp.finalized.Clear()

	heap := yagh.New[int](nNodes)
	heap.Put(src, 0)
	sp.costs[src] = 0

	for heap.Size() > 0 {
		entry := heap.Pop()
		u, c := entry.Elem, entry.Cost
		if sp.finalized.Contains(u) {
			continue
		}
		sp.finalized.Insert(u)

		for _, e := range sp.topology.Nexts[u] {
			v := sp.topology.Edges[e].To
			if sp.finalized.Contains(v) {
				continue
			}
			// Path src -> u -> v is not better than the best known path.
			newCost := c + sp.topology.Edges[e].Cost
			if sp.costs[v] <= newCost {
				continue
			}
			sp.costs[v] = newCost
			heap.Put(v, newCost)
		}
	}

	dist := make([]int, nNodes)
	for v, c := range sp.costs {
		if c == math.MaxInt {
			dist[v] = Unreachable
			continue
		}
		dist[v] = c
	}
	return dist, nil
}

// Hop is a destination reachable from a node of a DistanceTable together with
// the shortest travel time to reach it.
type Hop struct {
	To       int
	Distance int
}

// DistanceTable holds the shortest travel times between the nodes worth
// visiting: the nodes with a positive flow rate and the start node. Only
// useful nodes appear as destinations.
type DistanceTable struct {
	start  int
	useful []int
	hops   map[int][]Hop
}

// NewDistanceTable runs the shortest path engine once for every useful node
// of the network and once for the start node, and keeps the distances to
// useful destinations only. Destinations that are unreachable are absent.
func NewDistanceTable(net *Network, start int) (*DistanceTable, error) {
	if start < 0 || net.Len() <= start {
		return nil, fmt.Errorf("start node %d: %w", start, ErrUnknownNode)
	}

	sources := append([]int{start}, net.Useful()...)
	sp := NewShortestPaths(net.Topology())
	dt := &DistanceTable{
		start:  start,
		useful: net.Useful(),
		hops:   make(map[int][]Hop, len(sources)),
	}

	for _, src := range sources {
		if _, ok := dt.hops[src]; ok {
			continue // start node is also useful
		}
		dist, err := sp.DistancesFrom(src)
		if err != nil {
			return nil, err
		}
		hops := make([]Hop, 0, len(dt.useful))
		for _, v := range dt.useful {
			// A useful start node can be opened on the spot.
			if (v == src && src != start) || dist[v] == Unreachable {
				continue
			}
			hops = append(hops, Hop{To: v, Distance: dist[v]})
		}
		dt.hops[src] = hops // sorted since useful nodes are
	}

	return dt, nil
}

// Start returns the start node of the table.
func (dt *DistanceTable) Start() int {
	return dt.start
}

// Useful returns the useful nodes of the table in increasing order.
func (dt *DistanceTable) Useful() []int {
	return dt.useful
}

// From returns the useful destinations reachable from node u, sorted by node
// index. It returns nil if u is neither useful nor the start node.
//
// Important: the slice is a view on the table's internal structure and should
// only be used in read-only operations.
func (dt *DistanceTable) From(u int) []Hop {
	return dt.hops[u]
}

// Distance returns the shortest travel time from u to v. The second returned
// value is false if v is not reachable from u or if the pair is not part of
// the table.
func (dt *DistanceTable) Distance(u int, v int) (int, bool) {
	hops := dt.hops[u]
	i := sort.Search(len(hops), func(i int) bool { return hops[i].To >= v })
	if i < len(hops) && hops[i].To == v {
		return hops[i].Distance, true
	}
	return 0, false
}
