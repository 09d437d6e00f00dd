package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	abstract "arcparse/alg/transition"
	nlp "arcparse/nlp/types"
)

// deriveOracle runs the oracle derivation to the terminal configuration.
func deriveOracle(t *testing.T, sent nlp.TaggedSentence, gold *nlp.BasicDepGraph) (*ArcStandard, *SimpleConfiguration) {
	t.Helper()
	arcSystem := NewArcStandard(testRelations(gold.Arcs))
	arcSystem.AddDefaultOracle()
	oracle := arcSystem.Oracle()
	oracle.SetGold(nlp.LabeledDependencyGraph(gold))

	conf := abstract.Configuration(&SimpleConfiguration{})
	conf.Init(sent)
	for !conf.Terminal() {
		conf = arcSystem.Transition(conf, oracle.Transition(conf))
	}
	return arcSystem, conf.(*SimpleConfiguration)
}

// transitionNames returns the derivation's transitions in order.
func transitionNames(arcSystem *ArcStandard, terminal *SimpleConfiguration) []string {
	sequence := terminal.GetSequence()
	names := make([]string, 0, len(sequence)-1)
	for i := len(sequence) - 2; i >= 0; i-- {
		conf := sequence[i].(*SimpleConfiguration)
		names = append(names, arcSystem.TransitionName(conf.Last))
	}
	return names
}

func TestOracleDerivation(t *testing.T) {
	gold := testGraph(shortSent, shortArcs)
	arcSystem, terminal := deriveOracle(t, shortSent, gold)

	assert.Equal(t, []string{
		"SH",
		"SH",
		"LA-nsubj",
		"SH",
		"SH",
		"LA-det",
		"RA-dobj",
		"SH",
		"RA-advmod",
		"RA-root",
	}, transitionNames(arcSystem, terminal))

	require.True(t, terminal.Terminal())
	assert.True(t, gold.Equal(terminal.Graph()), "derived graph %v does not equal gold %v", terminal.Graph().Arcs, gold.Arcs)
}

// A sentence of n words always parses in exactly 2n transitions.
func TestDerivationLength(t *testing.T) {
	for _, tc := range []struct {
		name string
		sent nlp.TaggedSentence
		arcs []*nlp.BasicDepArc
	}{
		{"five words", shortSent, shortArcs},
		{"nine words", testSent, testArcs},
		{"single word", nlp.TaggedSentence{{Token: "Go", POS: "VERB"}},
			[]*nlp.BasicDepArc{{Head: 0, Relation: nlp.RootLabel, Modifier: 1}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			gold := testGraph(tc.sent, tc.arcs)
			_, terminal := deriveOracle(t, tc.sent, gold)
			// the initial configuration is part of the sequence
			assert.Equal(t, 2*len(tc.sent)+1, len(terminal.GetSequence()))
			assert.True(t, gold.Equal(terminal.Graph()))
		})
	}
}

func TestTransitionSemantics(t *testing.T) {
	arcSystem := NewArcStandard(testRelations(shortArcs))
	conf := abstract.Configuration(&SimpleConfiguration{})
	conf.Init(shortSent)

	shift := abstract.Transition(arcSystem.SHIFT)

	// SH moves the buffer front onto the stack
	shifted := arcSystem.Transition(arcSystem.Transition(conf, shift), shift).(*SimpleConfiguration)
	sPeek, sExists := shifted.Stack().Peek()
	require.True(t, sExists)
	assert.Equal(t, 2, sPeek)
	qPeek, qExists := shifted.Queue().Peek()
	require.True(t, qExists)
	assert.Equal(t, 3, qPeek)
	assert.Equal(t, 3, shifted.Stack().Size())

	// LA pops the element below the top as its dependent
	rel, _ := arcSystem.Relations.IndexOf("nsubj")
	la := arcSystem.Transition(shifted, abstract.Transition(arcSystem.LEFT+rel)).(*SimpleConfiguration)
	sPeek, _ = la.Stack().Peek()
	assert.Equal(t, 2, sPeek)
	assert.Equal(t, 2, la.Stack().Size())
	arc, exists := la.LastArc()
	require.True(t, exists)
	assert.Equal(t, &nlp.BasicDepArc{Head: 2, Relation: "nsubj", Modifier: 1}, arc)

	// the original configuration is unchanged
	assert.Equal(t, 3, shifted.Stack().Size())
	assert.Equal(t, 0, len(shifted.ArcsAdded))

	// RA pops the top as a dependent of the element below it
	shifted = arcSystem.Transition(la, shift).(*SimpleConfiguration)
	rel, _ = arcSystem.Relations.IndexOf("dobj")
	ra := arcSystem.Transition(shifted, abstract.Transition(arcSystem.RIGHT+rel)).(*SimpleConfiguration)
	sPeek, _ = ra.Stack().Peek()
	assert.Equal(t, 2, sPeek)
	arc, exists = ra.LastArc()
	require.True(t, exists)
	assert.Equal(t, &nlp.BasicDepArc{Head: 2, Relation: "dobj", Modifier: 3}, arc)
}

func TestLeftArcOfRootPanics(t *testing.T) {
	arcSystem := NewArcStandard(testRelations(shortArcs))
	conf := abstract.Configuration(&SimpleConfiguration{})
	conf.Init(shortSent)
	conf = arcSystem.Transition(conf, abstract.Transition(arcSystem.SHIFT))

	// stack is [ROOT, I]; a left arc would attach the root as a dependent
	assert.Panics(t, func() {
		arcSystem.Transition(conf, abstract.Transition(arcSystem.LEFT))
	})
}

func TestLegalTransitions(t *testing.T) {
	arcSystem := NewArcStandard(testRelations(shortArcs))
	numRels := arcSystem.Relations.Len()
	conf := abstract.Configuration(&SimpleConfiguration{})
	conf.Init(shortSent)

	// initial: only SH
	assert.Equal(t, []abstract.Transition{abstract.Transition(arcSystem.SHIFT)}, arcSystem.Legal(conf))

	// stack [ROOT, I]: SH and RA-*, no LA-* (second element is the root)
	conf = arcSystem.Transition(conf, abstract.Transition(arcSystem.SHIFT))
	legal := arcSystem.Legal(conf)
	assert.Equal(t, 1+numRels, len(legal))

	// stack [ROOT, I, parsed]: everything
	conf = arcSystem.Transition(conf, abstract.Transition(arcSystem.SHIFT))
	legal = arcSystem.Legal(conf)
	assert.Equal(t, 1+2*numRels, len(legal))
}

func TestOracleStuckOnNonProjective(t *testing.T) {
	sent := nlp.TaggedSentence{
		{Token: "a", POS: "X"},
		{Token: "b", POS: "X"},
		{Token: "c", POS: "X"},
		{Token: "d", POS: "X"},
	}
	// arcs (3,1) and (4,2) cross
	gold := testGraph(sent, []*nlp.BasicDepArc{
		{Head: 3, Relation: "dep", Modifier: 1},
		{Head: 4, Relation: "dep", Modifier: 2},
		{Head: 0, Relation: nlp.RootLabel, Modifier: 3},
		{Head: 3, Relation: "dep", Modifier: 4},
	})

	arcSystem := NewArcStandard(testRelations(gold.Arcs))
	arcSystem.AddDefaultOracle()
	oracle := arcSystem.Oracle()
	oracle.SetGold(nlp.LabeledDependencyGraph(gold))

	assert.Panics(t, func() {
		conf := abstract.Configuration(&SimpleConfiguration{})
		conf.Init(sent)
		for !conf.Terminal() {
			conf = arcSystem.Transition(conf, oracle.Transition(conf))
		}
	})
}

// Parsers copy a zero-value template configuration before Init.
func TestCopyOfZeroValue(t *testing.T) {
	base := &SimpleConfiguration{}
	conf := base.Copy()
	conf.Init(shortSent)

	assert.False(t, conf.Terminal())
	assert.Equal(t, 6, conf.(*SimpleConfiguration).NumberOfNodes())

	arcSystem := NewArcStandard(testRelations(shortArcs))
	conf = arcSystem.Transition(conf, abstract.Transition(arcSystem.SHIFT))
	top, exists := conf.(*SimpleConfiguration).Stack().Peek()
	assert.True(t, exists)
	assert.Equal(t, 1, top)
}

func TestConfigurationTerminal(t *testing.T) {
	conf := &SimpleConfiguration{}
	conf.Init(shortSent)
	assert.False(t, conf.Terminal())
	assert.Equal(t, 6, conf.NumberOfNodes())
	assert.Equal(t, nlp.RootToken, conf.GetNode(0).Token)
	assert.Equal(t, abstract.None, conf.GetLastTransition())
}
