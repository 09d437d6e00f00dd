package eval

import (
	"fmt"

	nlp "arcparse/nlp/types"
)

// Attachment error classes, assigned from the linguistic context of a
// mis-headed token.
const (
	ClassPPAttachment           = "Prepositional Phrase Attachment Error"
	ClassVPAttachment           = "Verb Phrase Attachment Error"
	ClassModifierAttachment     = "Modifier Attachment Error"
	ClassCoordinationAttachment = "Coordination Attachment Error"
	ClassOtherAttachment        = "Other Attachment Error"
)

// AttachmentError records one incorrect dependency with its correction.
type AttachmentError struct {
	Modifier      nlp.TaggedToken
	Predicted     *nlp.BasicDepArc // nil when the parser left the token unattached
	Gold          *nlp.BasicDepArc
	PredictedHead nlp.TaggedToken
	GoldHead      nlp.TaggedToken
	class         string
}

var _ Error = &AttachmentError{}

// NewAttachmentError classifies a wrong attachment of the gold graph's
// token. testArc may be nil.
func NewAttachmentError(gold nlp.LabeledDependencyGraph, testArc, goldArc *nlp.BasicDepArc) *AttachmentError {
	e := &AttachmentError{
		Modifier: gold.GetNode(goldArc.Modifier),
		Gold:     goldArc,
		GoldHead: gold.GetNode(goldArc.Head),
	}
	if testArc != nil {
		e.Predicted = testArc
		e.PredictedHead = gold.GetNode(testArc.Head)
	}
	e.class = classify(gold, goldArc)
	return e
}

// classify follows the dependent's POS and gold relation:
// coordination first (conjuncts and conjunctions), then prepositional
// phrases (the dependent is or governs an adposition), verbs, and
// adverbial/adjectival modifiers.
func classify(gold nlp.LabeledDependencyGraph, goldArc *nlp.BasicDepArc) string {
	depPOS := gold.GetNode(goldArc.Modifier).POS
	rel := string(goldArc.Relation)

	switch {
	case rel == "conj" || rel == "cc" || depPOS == "CCONJ" || depPOS == "CONJ":
		return ClassCoordinationAttachment
	case depPOS == "ADP" || governsAdposition(gold, goldArc.Modifier):
		return ClassPPAttachment
	case depPOS == "VERB":
		return ClassVPAttachment
	case depPOS == "ADV" || depPOS == "ADJ" || rel == "advmod" || rel == "amod":
		return ClassModifierAttachment
	}
	return ClassOtherAttachment
}

// governsAdposition reports whether any gold dependent of nodeID is an
// adposition, i.e. the node heads a prepositional phrase.
func governsAdposition(gold nlp.LabeledDependencyGraph, nodeID int) bool {
	for i := 1; i < gold.NumberOfNodes(); i++ {
		arc, exists := gold.GetArc(i)
		if exists && arc.Head == nodeID && gold.GetNode(i).POS == "ADP" {
			return true
		}
	}
	return false
}

func (e *AttachmentError) String() string {
	if e.Predicted == nil {
		return fmt.Sprintf("%s: unattached %q (correct: %q -> %q)",
			e.class, e.Modifier.Token, e.GoldHead.Token, e.Modifier.Token)
	}
	return fmt.Sprintf("%s: incorrect %q -> %q (correct: %q -> %q)",
		e.class, e.PredictedHead.Token, e.Modifier.Token, e.GoldHead.Token, e.Modifier.Token)
}

func (e *AttachmentError) Class() string {
	return e.class
}
