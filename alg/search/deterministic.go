// Package search drives a transition system from an initial configuration
// to a terminal one.
package search

import (
	"fmt"

	"arcparse/alg/perceptron"
	"arcparse/alg/transition"
)

// FeatureExtractor produces the classifier's view of a configuration.
type FeatureExtractor interface {
	Features(transition.Configuration) []string
}

// ScoringModel scores all transitions for a feature set.
type ScoringModel interface {
	Score(features []string) []float64
	Best(scores []float64, legal []transition.Transition) transition.Transition
}

// Deterministic is the greedy parser: at every configuration it takes the
// highest-scoring legal transition.
type Deterministic struct {
	Model         ScoringModel
	TransFunc     transition.TransitionSystem
	FeatExtractor FeatureExtractor
	Base          transition.Configuration

	// NoRecover propagates transition-system panics instead of converting
	// them to errors; used by tests.
	NoRecover bool
}

// Parse greedily parses a problem instance to a terminal configuration.
func (d *Deterministic) Parse(problem interface{}) (configuration transition.Configuration, err error) {
	if d.TransFunc == nil {
		panic("can't parse without a transition system")
	}
	if !d.NoRecover {
		defer func() {
			if r := recover(); r != nil {
				configuration = nil
				err = fmt.Errorf("parse failed: %v", r)
			}
		}()
	}
	c := d.Base.Copy()
	c.Init(problem)
	for !c.Terminal() {
		legal := d.TransFunc.Legal(c)
		if len(legal) == 0 {
			return nil, fmt.Errorf("parse stuck, no legal transition in %v", c)
		}
		scores := d.Model.Score(d.FeatExtractor.Features(c))
		best := d.Model.Best(scores, legal)
		c = d.TransFunc.Transition(c, best)
	}
	return c, nil
}

// ParseOracle derives the gold derivation for a problem instance using the
// transition system's oracle.
func (d *Deterministic) ParseOracle(problem interface{}, gold interface{}) (configuration transition.Configuration, err error) {
	if d.TransFunc == nil {
		panic("can't parse without a transition system")
	}
	oracle := d.TransFunc.Oracle()
	if oracle == nil {
		panic("transition system has no oracle, use AddDefaultOracle")
	}
	if !d.NoRecover {
		defer func() {
			if r := recover(); r != nil {
				configuration = nil
				err = fmt.Errorf("oracle parse failed: %v", r)
			}
		}()
	}
	oracle.SetGold(gold)
	c := d.Base.Copy()
	c.Init(problem)
	for !c.Terminal() {
		c = d.TransFunc.Transition(c, oracle.Transition(c))
	}
	return c, nil
}

// Decisions replays the oracle derivation for a gold instance, emitting one
// training decision per configuration.
func (d *Deterministic) Decisions(problem interface{}, gold interface{}) (decisions []perceptron.Decision, err error) {
	if d.TransFunc == nil {
		panic("can't parse without a transition system")
	}
	oracle := d.TransFunc.Oracle()
	if oracle == nil {
		panic("transition system has no oracle, use AddDefaultOracle")
	}
	if !d.NoRecover {
		defer func() {
			if r := recover(); r != nil {
				decisions = nil
				err = fmt.Errorf("oracle decode failed: %v", r)
			}
		}()
	}
	oracle.SetGold(gold)
	c := d.Base.Copy()
	c.Init(problem)
	for !c.Terminal() {
		goldTransition := oracle.Transition(c)
		decisions = append(decisions, perceptron.Decision{
			Features: d.FeatExtractor.Features(c),
			Gold:     goldTransition,
			Legal:    d.TransFunc.Legal(c),
		})
		c = d.TransFunc.Transition(c, goldTransition)
	}
	return decisions, nil
}
