package flownet

// Opening records that a node was opened by an agent at a given time.
type Opening struct {
	Node  int
	Agent int
	Time  int
}

// OpenSet is a reversible set of opened nodes. Openings are pushed on a trail
// so that a search can mark the current state, explore a branch, and undo
// everything the branch opened in O(k) where k is the number of openings made
// since the mark.
type OpenSet struct {
	opened []bool
	trail  []Opening
}

// NewOpenSet returns an empty OpenSet for nodes in [0, nNodes).
func NewOpenSet(nNodes int) *OpenSet {
	return &OpenSet{
		opened: make([]bool, nNodes),
		trail:  make([]Opening, 0, nNodes),
	}
}

// Open adds the node to the set. It returns false, and leaves the set
// unchanged, if the node was already open.
func (s *OpenSet) Open(o Opening) bool {
	if s.opened[o.Node] {
		return false
	}
	s.opened[o.Node] = true
	s.trail = append(s.trail, o)
	return true
}

// Contains returns true if the node is open.
func (s *OpenSet) Contains(node int) bool {
	return s.opened[node]
}

// Len returns the number of open nodes.
func (s *OpenSet) Len() int {
	return len(s.trail)
}

// Mark returns a marker of the current state that can be passed to Undo.
func (s *OpenSet) Mark() int {
	return len(s.trail)
}

// Undo closes every node opened since the given mark.
func (s *OpenSet) Undo(mark int) {
	for len(s.trail) > mark {
		last := len(s.trail) - 1
		s.opened[s.trail[last].Node] = false
		s.trail = s.trail[:last]
	}
}

// Clear closes all the nodes.
func (s *OpenSet) Clear() {
	s.Undo(0)
}

// Trail returns the openings in the order they were made.
//
// Important: the slice is a view on the set's internal structure and should
// only be used in read-only operations. Modifying the slice will most likely
// results in incorrect behavior.
func (s *OpenSet) Trail() []Opening {
	return s.trail
}
