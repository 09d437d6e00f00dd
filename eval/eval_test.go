package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nlp "arcparse/nlp/types"
)

var evalSent = nlp.TaggedSentence{
	{Token: "I", POS: "PRON"},
	{Token: "ate", POS: "VERB"},
	{Token: "fish", POS: "NOUN"},
	{Token: "with", POS: "ADP"},
	{Token: "forks", POS: "NOUN"},
	{Token: "quickly", POS: "ADV"},
	{Token: "and", POS: "CCONJ"},
	{Token: "slept", POS: "VERB"},
}

func graphOf(heads []int, rels []string) *nlp.BasicDepGraph {
	graph := nlp.NewRootedGraph(evalSent)
	for i, head := range heads {
		graph.Arcs = append(graph.Arcs, &nlp.BasicDepArc{
			Head:     head,
			Relation: nlp.DepRel(rels[i]),
			Modifier: i + 1,
		})
	}
	return graph
}

func TestGraphs(t *testing.T) {
	gold := graphOf(
		[]int{2, 0, 2, 5, 3, 2, 8, 2},
		[]string{"nsubj", "root", "dobj", "case", "nmod", "advmod", "cc", "conj"})
	// token 1 has the right head but the wrong label, token 2 is fully
	// correct, every other token is mis-headed
	test := graphOf(
		[]int{2, 0, 5, 2, 2, 8, 2, 6},
		[]string{"dobj", "root", "dobj", "case", "nmod", "advmod", "cc", "conj"})

	result := Graphs(nlp.LabeledDependencyGraph(test), nlp.LabeledDependencyGraph(gold))
	assert.Equal(t, 8, result.Tokens)
	assert.Equal(t, 2, result.UnlabeledHits)
	assert.Equal(t, 1, result.LabeledHits)
	assert.Equal(t, 6, result.Incorrect())
	assert.InDelta(t, 0.25, result.UAS(), 1e-9)
	assert.InDelta(t, 0.125, result.LAS(), 1e-9)

	require.Equal(t, 6, len(result.Errors))
	assert.Equal(t, map[string]int{
		// "with" is an adposition, "forks" governs one
		ClassPPAttachment: 2,
		// "quickly" is an adverb
		ClassModifierAttachment: 1,
		// "and" and the conj arc of "slept"
		ClassCoordinationAttachment: 2,
		// "fish" is a plain nominal
		ClassOtherAttachment: 1,
	}, result.Errors.ByType())
}

func TestClassifyVerbPhrase(t *testing.T) {
	sent := nlp.TaggedSentence{
		{Token: "wanted", POS: "VERB"},
		{Token: "sleep", POS: "VERB"},
	}
	gold := nlp.NewRootedGraph(sent)
	gold.Arcs = append(gold.Arcs,
		&nlp.BasicDepArc{Head: 0, Relation: nlp.RootLabel, Modifier: 1},
		&nlp.BasicDepArc{Head: 1, Relation: "xcomp", Modifier: 2},
	)

	goldArc, _ := gold.GetArc(2)
	err := NewAttachmentError(nlp.LabeledDependencyGraph(gold),
		&nlp.BasicDepArc{Head: 0, Relation: "root", Modifier: 2}, goldArc)
	assert.Equal(t, ClassVPAttachment, err.Class())
	assert.Contains(t, err.String(), ClassVPAttachment)
	assert.Contains(t, err.String(), "sleep")
}

func TestUnattachedToken(t *testing.T) {
	sent := nlp.TaggedSentence{{Token: "word", POS: "NOUN"}}
	gold := nlp.NewRootedGraph(sent)
	gold.Arcs = append(gold.Arcs, &nlp.BasicDepArc{Head: 0, Relation: nlp.RootLabel, Modifier: 1})
	test := nlp.NewRootedGraph(sent)

	result := Graphs(nlp.LabeledDependencyGraph(test), nlp.LabeledDependencyGraph(gold))
	assert.Equal(t, 1, result.Tokens)
	assert.Equal(t, 0, result.UnlabeledHits)
	require.Equal(t, 1, len(result.Errors))
	assert.Contains(t, result.Errors[0].String(), "unattached")
}

func TestEmptyScores(t *testing.T) {
	var result Result
	assert.Equal(t, 0.0, result.UAS())
	assert.Equal(t, 0.0, result.LAS())

	var total Total
	assert.Equal(t, 0.0, total.ExactMatch())
	assert.NotContains(t, total.String(), "NaN")
}

func TestTotal(t *testing.T) {
	var total Total
	total.Add(&Result{Tokens: 5, UnlabeledHits: 5, LabeledHits: 5})
	total.Add(&Result{Tokens: 5, UnlabeledHits: 3, LabeledHits: 2,
		Errors: Errors{&AttachmentError{class: ClassOtherAttachment}}})

	assert.Equal(t, 10, total.Tokens)
	assert.InDelta(t, 0.8, total.UAS(), 1e-9)
	assert.InDelta(t, 0.7, total.LAS(), 1e-9)
	assert.InDelta(t, 0.5, total.ExactMatch(), 1e-9)
	assert.Equal(t, 1, len(total.Errors))
	assert.Contains(t, total.String(), "UAS 0.8000")
}
