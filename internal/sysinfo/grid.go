package sysinfo

import "math/rand"

// Warm pool census as told by the story: 255 visible nodes, of which 7 are
// isolated dissidents and 5 form the weak cluster.
const (
	GridTotal   = 255
	GridRogue   = 7
	GridProbing = 5
)

// NodeState classifies a warm-pool node for rendering.
type NodeState string

const (
	NodeActive  NodeState = "active"
	NodeRogue   NodeState = "rogue"
	NodeProbing NodeState = "probing"
)

// Node is one cell of the warm-pool status grid.
type Node struct {
	State NodeState
	Glyph string
}

// Grid builds a shuffled warm-pool status grid. The seed controls the
// shuffle so renders are reproducible in tests.
func Grid(total, rogue, probing int, seed int64) []Node {
	if total <= 0 {
		return nil
	}
	if rogue < 0 {
		rogue = 0
	}
	if probing < 0 {
		probing = 0
	}
	if rogue+probing > total {
		rogue = 0
		probing = 0
	}

	nodes := make([]Node, 0, total)
	for i := 0; i < total-rogue-probing; i++ {
		nodes = append(nodes, Node{State: NodeActive, Glyph: "C"})
	}
	for i := 0; i < rogue; i++ {
		nodes = append(nodes, Node{State: NodeRogue, Glyph: "!"})
	}
	for i := 0; i < probing; i++ {
		nodes = append(nodes, Node{State: NodeProbing, Glyph: "?"})
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(nodes), func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})
	return nodes
}
