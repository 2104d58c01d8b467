// Package route provides a compact representation of the route followed by a
// single agent: the node it starts from and the nodes it opens, in order,
// together with the time at which each opening completes.
package route

import (
	"fmt"
	"strings"
)

// Route represents the sequence of stops of an agent.
//
// A Route respects the following invariants:
//
//   - Start: the first stop is the start node at time 0
//   - Increasing time: each stop completes strictly after the previous one
//   - Unique openings: a node is opened at most once (the start node is not
//     an opening unless it appears again later in the route)
//
// All operations on Route guarantee that these invariants are maintained.
type Route struct {
	nodes  []int
	times  []int
	length int
}

// New instantiates and returns a new Route starting at node start and able to
// hold up to maxStops openings.
func New(start int, maxStops int) *Route {
	r := &Route{
		nodes: make([]int, maxStops+1),
		times: make([]int, maxStops+1),
	}
	r.nodes[0] = start
	r.length = 1
	return r
}

// Length returns the length of the route in terms of stops, including the
// start node.
func (r *Route) Length() int {
	return r.length
}

// Openings returns the number of nodes opened along the route.
func (r *Route) Openings() int {
	return r.length - 1
}

// Node returns the node at position pos starting from 0 (the start).
func (r *Route) Node(pos int) int {
	return r.nodes[pos]
}

// Time returns the time at which the stop at position pos completes.
func (r *Route) Time(pos int) int {
	return r.times[pos]
}

// Last returns the last node of the route and the time at which it was
// reached.
func (r *Route) Last() (int, int) {
	return r.nodes[r.length-1], r.times[r.length-1]
}

// CanAppend returns true if the Append operation can be performed.
func (r *Route) CanAppend(node int, time int) bool {
	if r.length == len(r.nodes) {
		return false
	}
	if time <= r.times[r.length-1] {
		return false
	}
	for i := 1; i < r.length; i++ {
		if r.nodes[i] == node {
			return false
		}
	}
	return true
}

// Append opens node at the given time at the end of the route. It returns
// true if the operation succeeded or false if the operation would violate one
// of the route invariants.
func (r *Route) Append(node int, time int) bool {
	if !r.CanAppend(node, time) {
		return false
	}
	r.nodes[r.length] = node
	r.times[r.length] = time
	r.length++
	return true
}

// Format returns a representation of the route where nodes are named with
// the given function and each opening is followed by its completion time. For
// example: "AA -> DD@2 -> BB@5".
func (r *Route) Format(name func(int) string) string {
	sb := strings.Builder{}
	sb.WriteString(name(r.nodes[0]))
	for i := 1; i < r.length; i++ {
		sb.WriteString(fmt.Sprintf(" -> %s@%d", name(r.nodes[i]), r.times[i]))
	}
	return sb.String()
}

// String returns a string representation of the route as a sequence of nodes
// separated by " -> ". For example: "0 -> 4@2 -> 3@5".
func (r *Route) String() string {
	return r.Format(func(n int) string { return fmt.Sprintf("%d", n) })
}
