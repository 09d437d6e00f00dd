package transition

import (
	"fmt"

	abstract "arcparse/alg/transition"
	nlp "arcparse/nlp/types"
	"arcparse/util"
)

// ArcStandard is the stack-pair arc-standard transition system:
//
//	SH      (S,       wi|B, A) => (S|wi,    B, A)
//	LA-r    (S|wj|wi, B,    A) => (S|wi,    B, A+{(wi,r,wj)})    if: j != 0
//	RA-r    (S|wj|wi, B,    A) => (S|wj,    B, A+{(wj,r,wi)})
//
// Transitions are dense ints: SHIFT, then LEFT+rel for every relation, then
// RIGHT+rel. A sentence of n words always terminates in exactly 2n
// transitions (n shifts, n attachments).
type ArcStandard struct {
	oracle             abstract.Oracle
	Relations          *util.EnumSet
	Transitions        *util.EnumSet
	SHIFT, LEFT, RIGHT int
}

var _ abstract.TransitionSystem = &ArcStandard{}

// NewArcStandard derives the transition enumeration from the relation set.
func NewArcStandard(relations *util.EnumSet) *ArcStandard {
	transitions := util.NewEnumSet(relations.Len()*2 + 1)
	shift, _ := transitions.Add("SH")
	left := transitions.Len()
	for _, rel := range relations.Values() {
		transitions.Add("LA-" + rel)
	}
	right := transitions.Len()
	for _, rel := range relations.Values() {
		transitions.Add("RA-" + rel)
	}
	return &ArcStandard{
		Relations:   relations,
		Transitions: transitions,
		SHIFT:       shift,
		LEFT:        left,
		RIGHT:       right,
	}
}

func (a *ArcStandard) Transition(from abstract.Configuration, rawTransition abstract.Transition) abstract.Configuration {
	conf, ok := from.Copy().(*SimpleConfiguration)
	if !ok {
		panic("got wrong configuration type")
	}
	t := int(rawTransition)
	switch {
	case t >= a.RIGHT:
		// pop the stack top as a dependent of the element below it
		wi, wiExists := conf.Stack().Pop()
		wj, wjExists := conf.Stack().Peek()
		if !(wiExists && wjExists) {
			panic(fmt.Sprintf("can't RA, stack is too small: %v", conf))
		}
		rel := nlp.DepRel(a.Relations.ValueOf(t - a.RIGHT))
		conf.AddArc(&nlp.BasicDepArc{Head: wj, Relation: rel, Modifier: wi})
	case t >= a.LEFT:
		// pop the element below the stack top as its dependent
		wi, wiExists := conf.Stack().Pop()
		wj, wjExists := conf.Stack().Pop()
		if !(wiExists && wjExists) {
			panic(fmt.Sprintf("can't LA, stack is too small: %v", conf))
		}
		if wj == 0 {
			panic("attempted to LA the root")
		}
		conf.Stack().Push(wi)
		rel := nlp.DepRel(a.Relations.ValueOf(t - a.LEFT))
		conf.AddArc(&nlp.BasicDepArc{Head: wi, Relation: rel, Modifier: wj})
	case t == a.SHIFT:
		wi, wiExists := conf.Queue().Dequeue()
		if !wiExists {
			panic("can't shift, queue is empty")
		}
		conf.Stack().Push(wi)
	default:
		panic(fmt.Sprintf("unknown transition %v, SHIFT is %v", t, a.SHIFT))
	}
	conf.SetLastTransition(rawTransition)
	return conf
}

func (a *ArcStandard) Legal(from abstract.Configuration) []abstract.Transition {
	conf, ok := from.(*SimpleConfiguration)
	if !ok {
		panic("got wrong configuration type")
	}
	transitions := make([]abstract.Transition, 0, a.Transitions.Len())
	if conf.Queue().Size() > 0 {
		transitions = append(transitions, abstract.Transition(a.SHIFT))
	}
	if conf.Stack().Size() >= 2 {
		second, _ := conf.Stack().Index(1)
		if second != 0 {
			for rel := 0; rel < a.Relations.Len(); rel++ {
				transitions = append(transitions, abstract.Transition(a.LEFT+rel))
			}
		}
		for rel := 0; rel < a.Relations.Len(); rel++ {
			transitions = append(transitions, abstract.Transition(a.RIGHT+rel))
		}
	}
	return transitions
}

func (a *ArcStandard) TransitionTypes() []string {
	return []string{"SH", "LA-*", "RA-*"}
}

func (a *ArcStandard) TransitionName(t abstract.Transition) string {
	return a.Transitions.ValueOf(int(t))
}

func (a *ArcStandard) Projective() bool {
	return true
}

func (a *ArcStandard) Labeled() bool {
	return true
}

func (a *ArcStandard) Oracle() abstract.Oracle {
	return a.oracle
}

func (a *ArcStandard) AddDefaultOracle() {
	a.oracle = &ArcStandardOracle{arcSystem: a}
}

func (a *ArcStandard) Name() string {
	return "Arc Standard"
}

// ArcStandardOracle yields the gold transition for a configuration:
//
//	LA-r    if the gold head of the element below the stack top is the top
//	RA-r    if the gold head of the top is the element below it, and all
//	        gold dependents of the top are already attached
//	SH      otherwise
type ArcStandardOracle struct {
	arcSystem *ArcStandard
	gold      nlp.LabeledDependencyGraph
	heads     []int
	rels      []nlp.DepRel
	deps      [][]int
}

var _ abstract.Oracle = &ArcStandardOracle{}

func (o *ArcStandardOracle) SetGold(g interface{}) {
	labeledGold, ok := g.(nlp.LabeledDependencyGraph)
	if !ok {
		panic("gold is not a labeled dependency graph")
	}
	o.gold = labeledGold
	numNodes := labeledGold.NumberOfNodes()
	o.heads = make([]int, numNodes)
	o.rels = make([]nlp.DepRel, numNodes)
	o.deps = make([][]int, numNodes)
	for i := 0; i < numNodes; i++ {
		o.heads[i] = -1
	}
	for i := 1; i < numNodes; i++ {
		if arc, exists := labeledGold.GetArc(i); exists {
			o.heads[i] = arc.Head
			o.rels[i] = arc.Relation
			o.deps[arc.Head] = append(o.deps[arc.Head], i)
		}
	}
}

func (o *ArcStandardOracle) Transition(conf abstract.Configuration) abstract.Transition {
	c := conf.(*SimpleConfiguration)
	if o.gold == nil {
		panic("oracle needs gold reference, use SetGold")
	}

	if c.Stack().Size() >= 2 {
		wi, _ := c.Stack().Index(0)
		wj, _ := c.Stack().Index(1)
		if wj != 0 && o.heads[wj] == wi {
			rel, exists := o.arcSystem.Relations.IndexOf(string(o.rels[wj]))
			if !exists {
				panic(fmt.Sprintf("gold relation not in relation set: %v", o.rels[wj]))
			}
			return abstract.Transition(o.arcSystem.LEFT + rel)
		}
		if o.heads[wi] == wj && o.attachedAll(c, wi) {
			rel, exists := o.arcSystem.Relations.IndexOf(string(o.rels[wi]))
			if !exists {
				panic(fmt.Sprintf("gold relation not in relation set: %v", o.rels[wi]))
			}
			return abstract.Transition(o.arcSystem.RIGHT + rel)
		}
	}
	if c.Queue().Size() == 0 {
		// only happens for non-projective or malformed gold trees
		panic(fmt.Sprintf("oracle is stuck, gold tree is not parsable by arc standard: %v", c))
	}
	return abstract.Transition(o.arcSystem.SHIFT)
}

// attachedAll verifies every gold dependent of head has been attached.
func (o *ArcStandardOracle) attachedAll(c *SimpleConfiguration, head int) bool {
	for _, dep := range o.deps[head] {
		if !c.Attached(dep) {
			return false
		}
	}
	return true
}

func (o *ArcStandardOracle) Name() string {
	return "Arc Standard"
}
