// Package flownet computes the maximum flow that one or two agents can
// release from a network of nodes within a time budget.
//
// A node releases its flow rate once it has been opened, for every remaining
// time unit. Moving through a tunnel and opening a node each cost one time
// unit. The package is organized bottom-up: a [Network] holds the nodes and
// their tunnels, a [DistanceTable] holds the shortest travel times between the
// nodes worth opening, and a [Maximizer] searches the best opening schedule.
package flownet

import (
	"errors"
	"fmt"
	"sort"
)

// ErrMalformedGraph is returned (wrapped in a *MalformedGraphError) when a
// network definition cannot be turned into a Network.
var ErrMalformedGraph = errors.New("malformed graph")

// ErrUnknownNode is returned when a node name or index does not belong to the
// network.
var ErrUnknownNode = errors.New("unknown node")

// MalformedGraphError reports the definition that could not be resolved.
type MalformedGraphError struct {
	Node     string
	Neighbor string // empty if the error is not about a neighbor reference
	Reason   string
}

func (e *MalformedGraphError) Error() string {
	if e.Neighbor != "" {
		return fmt.Sprintf("%s: node %q: neighbor %q: %s", ErrMalformedGraph, e.Node, e.Neighbor, e.Reason)
	}
	return fmt.Sprintf("%s: node %q: %s", ErrMalformedGraph, e.Node, e.Reason)
}

func (e *MalformedGraphError) Unwrap() error {
	return ErrMalformedGraph
}

// Node is a location of the network. Two nodes are the same node if and only
// if they have the same name.
type Node struct {
	Name     string
	FlowRate int
}

// NodeDef is the definition of a node used to build a Network.
type NodeDef struct {
	FlowRate  int
	Neighbors []string
}

// Network is an immutable arena of nodes connected by unit-cost tunnels.
type Network struct {
	nodes    []Node
	index    map[string]int
	topology *Topology
	useful   []int
}

// NewNetwork builds a network from node definitions keyed by node name. Nodes
// are indexed in lexicographic order of their names so that the same
// definitions always produce the same network.
//
// An error wrapping ErrMalformedGraph is returned if a neighbor is not defined
// or if a flow rate is negative. No network is returned in that case.
func NewNetwork(defs map[string]NodeDef) (*Network, error) {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	net := &Network{
		nodes: make([]Node, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if name == "" {
			return nil, &MalformedGraphError{Reason: "empty node name"}
		}
		def := defs[name]
		if def.FlowRate < 0 {
			return nil, &MalformedGraphError{
				Node:   name,
				Reason: fmt.Sprintf("negative flow rate %d", def.FlowRate),
			}
		}
		net.nodes[i] = Node{Name: name, FlowRate: def.FlowRate}
		net.index[name] = i
		if def.FlowRate > 0 {
			net.useful = append(net.useful, i)
		}
	}

	edges := []Edge{}
	for u, name := range names {
		for _, nb := range defs[name].Neighbors {
			v, ok := net.index[nb]
			if !ok {
				return nil, &MalformedGraphError{
					Node:     name,
					Neighbor: nb,
					Reason:   "no such node",
				}
			}
			edges = append(edges, Edge{From: u, To: v, Cost: 1})
		}
	}
	net.topology = NewTopology(edges, len(names))

	return net, nil
}

// Len returns the number of nodes in the network.
func (n *Network) Len() int {
	return len(n.nodes)
}

// Lookup returns the index of the node with the given name.
func (n *Network) Lookup(name string) (int, bool) {
	i, ok := n.index[name]
	return i, ok
}

// Node returns the node at index i.
func (n *Network) Node(i int) Node {
	return n.nodes[i]
}

// Name returns the name of the node at index i.
func (n *Network) Name(i int) string {
	return n.nodes[i].Name
}

// FlowRate returns the flow rate of the node at index i.
func (n *Network) FlowRate(i int) int {
	return n.nodes[i].FlowRate
}

// Neighbors returns the indices of the nodes reachable from node i through a
// single tunnel, in the order they were defined.
func (n *Network) Neighbors(i int) []int {
	return n.topology.Successors(i)
}

// Useful returns the indices of the nodes with a positive flow rate in
// increasing order.
//
// Important: the slice is shared with the network and must not be modified.
func (n *Network) Useful() []int {
	return n.useful
}

// Topology returns the tunnels of the network.
func (n *Network) Topology() *Topology {
	return n.topology
}
