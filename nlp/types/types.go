// Package nlp holds the linguistic types shared by the parser, the corpus
// formats and the evaluator.
package nlp

import (
	"fmt"
	"strings"
)

const (
	// RootLabel is the relation of the synthetic root arc.
	RootLabel = "root"
	// RootToken is the form/POS of the synthetic root node at index 0.
	RootToken = "<ROOT>"
)

// DepRel is a dependency relation label.
type DepRel string

// TaggedToken is a word form with its part-of-speech tag.
type TaggedToken struct {
	Token string
	POS   string
}

func (t TaggedToken) String() string {
	return t.Token + "/" + t.POS
}

// TaggedSentence is a POS-tagged sentence, excluding the synthetic root.
type TaggedSentence []TaggedToken

func (s TaggedSentence) String() string {
	strs := make([]string, len(s))
	for i, token := range s {
		strs[i] = token.String()
	}
	return strings.Join(strs, " ")
}

// BasicDepArc is a labeled head -> modifier attachment. Node indices count
// the synthetic root as 0, the first word as 1.
type BasicDepArc struct {
	Head     int
	Relation DepRel
	Modifier int
}

func (a *BasicDepArc) String() string {
	return fmt.Sprintf("(%d,%s,%d)", a.Head, a.Relation, a.Modifier)
}

// LabeledDependencyGraph is a dependency tree over a tagged sentence.
// Node 0 is the synthetic root.
type LabeledDependencyGraph interface {
	NumberOfNodes() int
	GetNode(nodeID int) TaggedToken
	// GetArc returns the arc whose modifier is nodeID, if one exists.
	GetArc(modifierID int) (*BasicDepArc, bool)
	NumberOfArcs() int
}

// BasicDepGraph is the concrete graph produced by parsing and corpus reading.
type BasicDepGraph struct {
	Nodes []TaggedToken // Nodes[0] is the root node
	Arcs  []*BasicDepArc
}

var _ LabeledDependencyGraph = &BasicDepGraph{}

func (g *BasicDepGraph) NumberOfNodes() int {
	return len(g.Nodes)
}

func (g *BasicDepGraph) GetNode(nodeID int) TaggedToken {
	return g.Nodes[nodeID]
}

func (g *BasicDepGraph) GetArc(modifierID int) (*BasicDepArc, bool) {
	for _, arc := range g.Arcs {
		if arc.Modifier == modifierID {
			return arc, true
		}
	}
	return nil, false
}

func (g *BasicDepGraph) NumberOfArcs() int {
	return len(g.Arcs)
}

// TaggedSentence returns the sentence underlying the graph, without the root.
func (g *BasicDepGraph) TaggedSentence() TaggedSentence {
	return TaggedSentence(g.Nodes[1:])
}

// Equal compares nodes and arc sets, ignoring arc order.
func (g *BasicDepGraph) Equal(other LabeledDependencyGraph) bool {
	if g.NumberOfNodes() != other.NumberOfNodes() || g.NumberOfArcs() != other.NumberOfArcs() {
		return false
	}
	for i := 0; i < g.NumberOfNodes(); i++ {
		if g.GetNode(i) != other.GetNode(i) {
			return false
		}
	}
	for i := 1; i < g.NumberOfNodes(); i++ {
		left, lExists := g.GetArc(i)
		right, rExists := other.GetArc(i)
		if lExists != rExists {
			return false
		}
		if lExists && *left != *right {
			return false
		}
	}
	return true
}

// NewRootedGraph returns a graph over sent with the root node set up and no
// arcs.
func NewRootedGraph(sent TaggedSentence) *BasicDepGraph {
	nodes := make([]TaggedToken, 0, len(sent)+1)
	nodes = append(nodes, TaggedToken{RootToken, RootToken})
	nodes = append(nodes, sent...)
	return &BasicDepGraph{
		Nodes: nodes,
		Arcs:  make([]*BasicDepArc, 0, len(sent)),
	}
}
