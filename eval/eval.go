// Package eval scores predicted dependency graphs against gold graphs.
package eval

import (
	"fmt"

	nlp "arcparse/nlp/types"
)

type Error interface {
	String() string
	Class() string
}

type Errors []Error

func (ers Errors) ByType() map[string]int {
	retval := make(map[string]int)
	for _, e := range ers {
		retval[e.Class()]++
	}
	return retval
}

// Result is the attachment score of a single sentence.
type Result struct {
	Tokens        int
	UnlabeledHits int
	LabeledHits   int
	Errors        Errors
}

func (r *Result) UAS() float64 {
	if r.Tokens == 0 {
		return 0
	}
	return float64(r.UnlabeledHits) / float64(r.Tokens)
}

func (r *Result) LAS() float64 {
	if r.Tokens == 0 {
		return 0
	}
	return float64(r.LabeledHits) / float64(r.Tokens)
}

func (r *Result) Incorrect() int {
	return r.Tokens - r.UnlabeledHits
}

// Total accumulates sentence results into corpus scores.
type Total struct {
	Result
	Exact, Population int
}

func (t *Total) Add(r *Result) {
	t.Tokens += r.Tokens
	t.UnlabeledHits += r.UnlabeledHits
	t.LabeledHits += r.LabeledHits
	t.Errors = append(t.Errors, r.Errors...)
	if r.Incorrect() == 0 {
		t.Exact++
	}
	t.Population++
}

func (t *Total) ExactMatch() float64 {
	if t.Population == 0 {
		return 0
	}
	return float64(t.Exact) / float64(t.Population)
}

func (t *Total) String() string {
	return fmt.Sprintf("UAS %.4f LAS %.4f ExactMatch %.4f (%d tokens, %d sentences)",
		t.UAS(), t.LAS(), t.ExactMatch(), t.Tokens, t.Population)
}

// Graphs scores a predicted graph against its gold counterpart, collecting
// a classified attachment error for every mis-headed token.
func Graphs(test, gold nlp.LabeledDependencyGraph) *Result {
	if test.NumberOfNodes() != gold.NumberOfNodes() {
		panic("test and gold graphs are over different sentences")
	}
	result := &Result{Tokens: gold.NumberOfNodes() - 1}
	for i := 1; i < gold.NumberOfNodes(); i++ {
		testArc, testExists := test.GetArc(i)
		goldArc, goldExists := gold.GetArc(i)
		if !goldExists {
			// unattached gold tokens are not scored
			result.Tokens--
			continue
		}
		if testExists && testArc.Head == goldArc.Head {
			result.UnlabeledHits++
			if testArc.Relation == goldArc.Relation {
				result.LabeledHits++
			}
			continue
		}
		result.Errors = append(result.Errors, NewAttachmentError(gold, testArc, goldArc))
	}
	return result
}
