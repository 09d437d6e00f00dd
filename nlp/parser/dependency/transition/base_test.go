package transition

import (
	nlp "arcparse/nlp/types"
	"arcparse/util"
)

var testSent nlp.TaggedSentence = nlp.TaggedSentence{
	{Token: "Economic", POS: "ADJ"},
	{Token: "news", POS: "NOUN"},
	{Token: "had", POS: "VERB"},
	{Token: "little", POS: "ADJ"},
	{Token: "effect", POS: "NOUN"},
	{Token: "on", POS: "ADP"},
	{Token: "financial", POS: "ADJ"},
	{Token: "markets", POS: "NOUN"},
	{Token: ".", POS: "PUNCT"},
}

var testArcs = []*nlp.BasicDepArc{
	{Head: 2, Relation: "ATT", Modifier: 1},
	{Head: 3, Relation: "SBJ", Modifier: 2},
	{Head: 0, Relation: nlp.RootLabel, Modifier: 3},
	{Head: 5, Relation: "ATT", Modifier: 4},
	{Head: 3, Relation: "OBJ", Modifier: 5},
	{Head: 5, Relation: "ATT", Modifier: 6},
	{Head: 8, Relation: "ATT", Modifier: 7},
	{Head: 6, Relation: "PC", Modifier: 8},
	{Head: 3, Relation: "PU", Modifier: 9},
}

var shortSent nlp.TaggedSentence = nlp.TaggedSentence{
	{Token: "I", POS: "PRON"},
	{Token: "parsed", POS: "VERB"},
	{Token: "this", POS: "DET"},
	{Token: "sentence", POS: "NOUN"},
	{Token: "correctly", POS: "ADV"},
}

var shortArcs = []*nlp.BasicDepArc{
	{Head: 2, Relation: "nsubj", Modifier: 1},
	{Head: 0, Relation: nlp.RootLabel, Modifier: 2},
	{Head: 4, Relation: "det", Modifier: 3},
	{Head: 2, Relation: "dobj", Modifier: 4},
	{Head: 2, Relation: "advmod", Modifier: 5},
}

func testGraph(sent nlp.TaggedSentence, arcs []*nlp.BasicDepArc) *nlp.BasicDepGraph {
	graph := nlp.NewRootedGraph(sent)
	graph.Arcs = append(graph.Arcs, arcs...)
	return graph
}

func testRelations(arcs []*nlp.BasicDepArc) *util.EnumSet {
	relations := util.NewEnumSet(len(arcs))
	for _, arc := range arcs {
		relations.Add(string(arc.Relation))
	}
	relations.Freeze(nlp.RootLabel)
	return relations
}
