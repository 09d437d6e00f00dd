// Package vocab builds the closed vocabularies a trained model is scored
// over: word forms above a frequency cutoff, POS tags and dependency
// relations.
package vocab

import (
	"strings"

	nlp "arcparse/nlp/types"
	"arcparse/util"
)

// UnknownToken is the vocabulary form of out-of-vocabulary words.
const UnknownToken = "<UNK>"

const (
	approxWords     = 10000
	approxPOS       = 64
	approxRelations = 64
)

type Vocab struct {
	Words  *util.EnumSet
	POS    *util.EnumSet
	Rels   *util.EnumSet
	Cutoff int
}

// Build constructs the frozen vocabularies from a gold corpus. Word forms
// are lowercased; forms occurring fewer than cutoff times collapse to the
// unknown token.
func Build(corpus []*nlp.BasicDepGraph, cutoff int) *Vocab {
	if cutoff < 1 {
		cutoff = 1
	}
	v := &Vocab{
		Words:  util.NewEnumSet(approxWords),
		POS:    util.NewEnumSet(approxPOS),
		Rels:   util.NewEnumSet(approxRelations),
		Cutoff: cutoff,
	}

	counts := make(map[string]int, approxWords)
	for _, graph := range corpus {
		for i := 1; i < graph.NumberOfNodes(); i++ {
			node := graph.GetNode(i)
			counts[strings.ToLower(node.Token)]++
			v.POS.Add(node.POS)
		}
		for _, arc := range graph.Arcs {
			v.Rels.Add(string(arc.Relation))
		}
	}
	for _, graph := range corpus {
		for i := 1; i < graph.NumberOfNodes(); i++ {
			form := strings.ToLower(graph.GetNode(i).Token)
			if counts[form] >= cutoff {
				v.Words.Add(form)
			}
		}
	}

	// the root relation is always scorable, even if absent from the corpus
	v.Rels.Add(nlp.RootLabel)

	v.Words.Freeze(UnknownToken)
	v.POS.Freeze(UnknownToken)
	v.Rels.Freeze(nlp.RootLabel)
	return v
}

// NormalizeForm maps a raw word form to its vocabulary form.
func (v *Vocab) NormalizeForm(form string) string {
	lowered := strings.ToLower(form)
	if _, exists := v.Words.IndexOf(lowered); !exists {
		return UnknownToken
	}
	return lowered
}
