// Package perceptron implements a multiclass averaged perceptron over
// sparse string features.
package perceptron

import (
	"arcparse/xlog"
)

type StopCondition func(curIt, numIt int, model *Model) bool

func DefaultStopCondition(iteration, iterations int, model *Model) bool {
	return iteration < iterations
}

// UpdateStrategy hooks into training after every decision; it owns the
// finalized model returned by training.
type UpdateStrategy interface {
	Init(m *Model, iterations int)
	Update(model *Model)
	Finalize(m *Model) *Model
}

// Averager is an UpdateStrategy that can produce an averaged snapshot
// mid-training, used for per-iteration validation.
type Averager interface {
	Average() *Model
}

type TrivialStrategy struct{}

func (u *TrivialStrategy) Init(m *Model, iterations int) {}

func (u *TrivialStrategy) Update(m *Model) {}

func (u *TrivialStrategy) Finalize(m *Model) *Model {
	return m
}

// AveragedStrategy accumulates the model after every update generation and
// finalizes to the generation average.
type AveragedStrategy struct {
	N          float64
	accumModel *Model
}

func (u *AveragedStrategy) Init(m *Model, iterations int) {
	// explicitly reset in case of strategy reuse
	u.N = 0
	u.accumModel = m.New()
}

func (u *AveragedStrategy) Update(m *Model) {
	u.accumModel.AddModel(m)
	u.N += 1
}

func (u *AveragedStrategy) Finalize(m *Model) *Model {
	u.accumModel.ScalarDivide(u.N)
	return u.accumModel
}

func (u *AveragedStrategy) Average() *Model {
	avg := u.accumModel.Copy()
	avg.ScalarDivide(u.N)
	return avg
}

// Trainer runs iterations of perceptron updates over oracle decisions.
type Trainer struct {
	Iterations int
	Updater    UpdateStrategy
	Model      *Model
	Continue   StopCondition
	Log        bool

	// OnIteration, when set, receives the iteration number and the
	// averaged model so far, e.g. for validation against a dev set.
	OnIteration func(iteration int, model *Model)

	FailedInstances int
}

func (t *Trainer) Init(model *Model) {
	t.Model = model
	t.Updater.Init(model, t.Iterations)
}

func (t *Trainer) Train(decisions []Decision) *Model {
	if t.Model == nil {
		panic("model not initialized")
	}
	if t.Continue == nil {
		t.Continue = DefaultStopCondition
	}
	logger := xlog.WithComponent("perceptron")
	for i := 0; t.Continue(i, t.Iterations, t.Model); i++ {
		var mistakes int
		for _, decision := range decisions {
			scores := t.Model.Score(decision.Features)
			predicted := t.Model.Best(scores, decision.Legal)
			if predicted != decision.Gold {
				t.Model.Update(decision.Features, decision.Gold, predicted, 1.0)
				mistakes++
			}
			t.Updater.Update(t.Model)
		}
		if t.Log {
			logger.Info().
				Int("iteration", i).
				Int("decisions", len(decisions)).
				Int("mistakes", mistakes).
				Msg("iteration complete")
		}
		if t.OnIteration != nil {
			t.OnIteration(i, t.snapshot())
		}
	}
	return t.Updater.Finalize(t.Model)
}

func (t *Trainer) snapshot() *Model {
	if averager, ok := t.Updater.(Averager); ok {
		return averager.Average()
	}
	return t.Model.Copy()
}
