package transition

import (
	"fmt"
	"sort"
	"strings"

	"arcparse/alg"
	abstract "arcparse/alg/transition"
	nlp "arcparse/nlp/types"
)

// SimpleConfiguration is the stack-buffer parser state. Node 0 is the
// synthetic root; it starts on the stack while all words start on the
// buffer.
type SimpleConfiguration struct {
	InternalStack alg.Stack
	InternalQueue alg.Queue
	Nodes         []nlp.TaggedToken
	Heads         []int
	Rels          []nlp.DepRel
	ArcsAdded     []*nlp.BasicDepArc

	Last     abstract.Transition
	previous *SimpleConfiguration
}

var _ abstract.Configuration = &SimpleConfiguration{}

func (c *SimpleConfiguration) Init(abstractSentence interface{}) {
	sent, ok := abstractSentence.(nlp.TaggedSentence)
	if !ok {
		panic("got wrong problem type, expected a tagged sentence")
	}
	numNodes := len(sent) + 1
	c.Nodes = make([]nlp.TaggedToken, 0, numNodes)
	c.Nodes = append(c.Nodes, nlp.TaggedToken{Token: nlp.RootToken, POS: nlp.RootToken})
	c.Nodes = append(c.Nodes, sent...)

	c.Heads = make([]int, numNodes)
	c.Rels = make([]nlp.DepRel, numNodes)
	for i := range c.Heads {
		c.Heads[i] = -1
	}

	c.InternalStack = alg.NewStackArray(numNodes)
	c.InternalQueue = alg.NewQueueSlice(numNodes)
	c.Stack().Push(0)
	for i := 1; i < numNodes; i++ {
		c.Queue().Enqueue(i)
	}

	c.ArcsAdded = make([]*nlp.BasicDepArc, 0, numNodes-1)
	c.Last = abstract.None
	c.previous = nil
}

// Terminal holds when the buffer is exhausted and only the root remains.
func (c *SimpleConfiguration) Terminal() bool {
	return c.Queue().Size() == 0 && c.Stack().Size() == 1
}

func (c *SimpleConfiguration) Stack() alg.Stack {
	return c.InternalStack
}

func (c *SimpleConfiguration) Queue() alg.Queue {
	return c.InternalQueue
}

// Copy also works on a zero-value configuration, which parsers use as a
// template before Init.
func (c *SimpleConfiguration) Copy() abstract.Configuration {
	newConf := new(SimpleConfiguration)

	if c.InternalStack != nil {
		newConf.InternalStack = c.InternalStack.Copy()
	}
	if c.InternalQueue != nil {
		newConf.InternalQueue = c.InternalQueue.Copy()
	}

	// nodes are immutable across transitions, the slice is shared
	newConf.Nodes = c.Nodes

	newConf.Heads = make([]int, len(c.Heads))
	copy(newConf.Heads, c.Heads)
	newConf.Rels = make([]nlp.DepRel, len(c.Rels))
	copy(newConf.Rels, c.Rels)

	newConf.ArcsAdded = make([]*nlp.BasicDepArc, len(c.ArcsAdded), cap(c.ArcsAdded))
	copy(newConf.ArcsAdded, c.ArcsAdded)

	newConf.Last = c.Last
	newConf.previous = c
	return newConf
}

func (c *SimpleConfiguration) AddArc(arc *nlp.BasicDepArc) {
	c.Heads[arc.Modifier] = arc.Head
	c.Rels[arc.Modifier] = arc.Relation
	c.ArcsAdded = append(c.ArcsAdded, arc)
}

// LastArc returns the arc added by the most recent transition, if any.
func (c *SimpleConfiguration) LastArc() (*nlp.BasicDepArc, bool) {
	if c.previous != nil && len(c.ArcsAdded) > len(c.previous.ArcsAdded) {
		return c.ArcsAdded[len(c.ArcsAdded)-1], true
	}
	return nil, false
}

// Attached reports whether the node already has a head.
func (c *SimpleConfiguration) Attached(nodeID int) bool {
	return c.Heads[nodeID] >= 0
}

// Dependents returns the current modifiers of head, in node order.
func (c *SimpleConfiguration) Dependents(head int) []int {
	deps := make([]int, 0, 4)
	for _, arc := range c.ArcsAdded {
		if arc.Head == head {
			deps = append(deps, arc.Modifier)
		}
	}
	sort.Ints(deps)
	return deps
}

// LeftChild returns the k-th leftmost current dependent of head left of it
// (k counts from 1).
func (c *SimpleConfiguration) LeftChild(head, k int) (int, bool) {
	for _, dep := range c.Dependents(head) {
		if dep < head {
			k--
			if k == 0 {
				return dep, true
			}
		}
	}
	return 0, false
}

// RightChild returns the k-th rightmost current dependent of head right of
// it (k counts from 1).
func (c *SimpleConfiguration) RightChild(head, k int) (int, bool) {
	deps := c.Dependents(head)
	for i := len(deps) - 1; i >= 0; i-- {
		if deps[i] > head {
			k--
			if k == 0 {
				return deps[i], true
			}
		}
	}
	return 0, false
}

func (c *SimpleConfiguration) Previous() abstract.Configuration {
	if c.previous == nil {
		return nil
	}
	return c.previous
}

func (c *SimpleConfiguration) GetSequence() abstract.ConfigurationSequence {
	retval := make(abstract.ConfigurationSequence, 0, 2*len(c.Nodes))
	currentConf := c
	for currentConf != nil {
		retval = append(retval, currentConf)
		currentConf = currentConf.previous
	}
	return retval
}

func (c *SimpleConfiguration) SetLastTransition(t abstract.Transition) {
	c.Last = t
}

func (c *SimpleConfiguration) GetLastTransition() abstract.Transition {
	return c.Last
}

// Graph returns the dependency graph accumulated so far.
func (c *SimpleConfiguration) Graph() *nlp.BasicDepGraph {
	arcs := make([]*nlp.BasicDepArc, len(c.ArcsAdded))
	copy(arcs, c.ArcsAdded)
	return &nlp.BasicDepGraph{Nodes: c.Nodes, Arcs: arcs}
}

func (c *SimpleConfiguration) NumberOfNodes() int {
	return len(c.Nodes)
}

func (c *SimpleConfiguration) GetNode(nodeID int) nlp.TaggedToken {
	return c.Nodes[nodeID]
}

func (c *SimpleConfiguration) String() string {
	return fmt.Sprintf("%s\t=>\t([%s],\t[%s],\t%s)",
		c.StringLast(), c.StringStack(), c.StringQueue(), c.StringArcs())
}

func (c *SimpleConfiguration) StringLast() string {
	if c.Last == abstract.None {
		return ""
	}
	return fmt.Sprintf("%d", int(c.Last))
}

func (c *SimpleConfiguration) StringStack() string {
	tokens := make([]string, 0, c.Stack().Size())
	for i := c.Stack().Size() - 1; i >= 0; i-- {
		nodeID, _ := c.Stack().Index(i)
		tokens = append(tokens, c.Nodes[nodeID].Token)
	}
	return strings.Join(tokens, ",")
}

func (c *SimpleConfiguration) StringQueue() string {
	tokens := make([]string, 0, c.Queue().Size())
	for i := 0; i < c.Queue().Size(); i++ {
		nodeID, _ := c.Queue().Index(i)
		tokens = append(tokens, c.Nodes[nodeID].Token)
	}
	return strings.Join(tokens, ",")
}

func (c *SimpleConfiguration) StringArcs() string {
	arcs := make([]string, len(c.ArcsAdded))
	for i, arc := range c.ArcsAdded {
		arcs[i] = fmt.Sprintf("(%s,%s,%s)", c.Nodes[arc.Head].Token, arc.Relation, c.Nodes[arc.Modifier].Token)
	}
	return fmt.Sprintf("A={%s}", strings.Join(arcs, ","))
}
