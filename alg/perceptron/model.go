package perceptron

import (
	"arcparse/alg/transition"
)

// Decision is one supervised classification instance: the features of a
// configuration, the gold transition the oracle chose in it, and the
// transitions that were legal in it.
type Decision struct {
	Features []string
	Gold     transition.Transition
	Legal    []transition.Transition
}

// Model is a sparse linear model scoring transitions by feature weights.
type Model struct {
	NumTransitions int
	Weights        map[string][]float64
}

func NewModel(numTransitions int) *Model {
	return &Model{
		NumTransitions: numTransitions,
		Weights:        make(map[string][]float64),
	}
}

func (m *Model) New() *Model {
	return NewModel(m.NumTransitions)
}

// Score sums the weight vectors of the given features into a per-transition
// score vector.
func (m *Model) Score(features []string) []float64 {
	scores := make([]float64, m.NumTransitions)
	for _, feature := range features {
		if weights, exists := m.Weights[feature]; exists {
			for i, w := range weights {
				scores[i] += w
			}
		}
	}
	return scores
}

// Update applies a perceptron update: amount toward gold, -amount away from
// predicted, for every feature.
func (m *Model) Update(features []string, gold, predicted transition.Transition, amount float64) {
	for _, feature := range features {
		weights, exists := m.Weights[feature]
		if !exists {
			weights = make([]float64, m.NumTransitions)
			m.Weights[feature] = weights
		}
		weights[gold] += amount
		weights[predicted] -= amount
	}
}

func (m *Model) AddModel(other *Model) {
	for feature, otherWeights := range other.Weights {
		weights, exists := m.Weights[feature]
		if !exists {
			weights = make([]float64, m.NumTransitions)
			m.Weights[feature] = weights
		}
		for i, w := range otherWeights {
			weights[i] += w
		}
	}
}

func (m *Model) ScalarDivide(n float64) {
	for _, weights := range m.Weights {
		for i := range weights {
			weights[i] /= n
		}
	}
}

func (m *Model) Copy() *Model {
	newModel := NewModel(m.NumTransitions)
	newModel.AddModel(m)
	return newModel
}

// Best returns the highest-scoring transition among the legal ones, ties
// broken toward the lowest transition id.
func (m *Model) Best(scores []float64, legal []transition.Transition) transition.Transition {
	best := transition.None
	var bestScore float64
	for _, t := range legal {
		if best == transition.None || scores[t] > bestScore {
			best, bestScore = t, scores[t]
		}
	}
	return best
}
