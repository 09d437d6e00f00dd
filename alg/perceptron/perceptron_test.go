package perceptron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcparse/alg/transition"
)

var allLegal = []transition.Transition{0, 1, 2}

func TestModelScoreUpdate(t *testing.T) {
	model := NewModel(3)

	scores := model.Score([]string{"a", "b"})
	assert.Equal(t, []float64{0, 0, 0}, scores)

	model.Update([]string{"a", "b"}, 2, 0, 1.0)
	scores = model.Score([]string{"a", "b"})
	assert.Equal(t, []float64{-2, 0, 2}, scores)

	// unknown features contribute nothing
	scores = model.Score([]string{"a", "never-seen"})
	assert.Equal(t, []float64{-1, 0, 1}, scores)
}

func TestModelBest(t *testing.T) {
	model := NewModel(3)

	// all zero: tie broken toward the lowest transition id
	assert.Equal(t, transition.Transition(0), model.Best([]float64{0, 0, 0}, allLegal))
	assert.Equal(t, transition.Transition(2), model.Best([]float64{0, 0, 1}, allLegal))

	// the best transition must be legal
	assert.Equal(t, transition.Transition(1),
		model.Best([]float64{5, 1, 3}, []transition.Transition{1}))
	assert.Equal(t, transition.None, model.Best([]float64{5, 1, 3}, nil))
}

func TestModelCopyIsDetached(t *testing.T) {
	model := NewModel(2)
	model.Update([]string{"a"}, 1, 0, 1.0)

	clone := model.Copy()
	model.Update([]string{"a"}, 1, 0, 1.0)

	assert.Equal(t, []float64{-2, 2}, model.Score([]string{"a"}))
	assert.Equal(t, []float64{-1, 1}, clone.Score([]string{"a"}))
}

func TestAveragedStrategy(t *testing.T) {
	model := NewModel(2)
	strategy := &AveragedStrategy{}
	strategy.Init(model, 1)

	// generation 1: weights (−1, 1); generation 2: weights (−2, 2)
	model.Update([]string{"a"}, 1, 0, 1.0)
	strategy.Update(model)
	model.Update([]string{"a"}, 1, 0, 1.0)
	strategy.Update(model)

	averaged := strategy.Finalize(model)
	assert.Equal(t, []float64{-1.5, 1.5}, averaged.Score([]string{"a"}))
}

func trainingDecisions() []Decision {
	return []Decision{
		{Features: []string{"f:x", "g:p"}, Gold: 1, Legal: allLegal},
		{Features: []string{"f:y", "g:p"}, Gold: 2, Legal: allLegal},
		{Features: []string{"f:x", "g:q"}, Gold: 1, Legal: allLegal},
		{Features: []string{"f:z", "g:q"}, Gold: 0, Legal: allLegal},
	}
}

func TestTrainerConverges(t *testing.T) {
	decisions := trainingDecisions()
	trainer := &Trainer{
		Iterations: 10,
		Updater:    &TrivialStrategy{},
	}
	trainer.Init(NewModel(3))
	model := trainer.Train(decisions)

	for _, decision := range decisions {
		predicted := model.Best(model.Score(decision.Features), decision.Legal)
		assert.Equal(t, decision.Gold, predicted, "features %v", decision.Features)
	}
}

func TestTrainerOnIteration(t *testing.T) {
	var iterations []int
	trainer := &Trainer{
		Iterations: 3,
		Updater:    &AveragedStrategy{},
		OnIteration: func(iteration int, model *Model) {
			require.NotNil(t, model)
			iterations = append(iterations, iteration)
		},
	}
	trainer.Init(NewModel(3))
	trainer.Train(trainingDecisions())

	assert.Equal(t, []int{0, 1, 2}, iterations)
}
