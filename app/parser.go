package app

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"arcparse/alg/perceptron"
	"arcparse/alg/search"
	"arcparse/nlp/parser/dependency/transition"
	nlp "arcparse/nlp/types"
	"arcparse/nlp/vocab"
)

// DepParser bundles a trained model with its transition system and feature
// extractor into a ready-to-use greedy parser.
type DepParser struct {
	ArcSystem *transition.ArcStandard
	Vocab     *vocab.Vocab
	parser    *search.Deterministic
}

func NewDepParser(model *perceptron.Model, v *vocab.Vocab) (*DepParser, error) {
	arcSystem := transition.NewArcStandard(v.Rels)
	arcSystem.AddDefaultOracle()
	if model.NumTransitions != arcSystem.Transitions.Len() {
		return nil, fmt.Errorf("model scores %d transitions but the relation set yields %d",
			model.NumTransitions, arcSystem.Transitions.Len())
	}
	return &DepParser{
		ArcSystem: arcSystem,
		Vocab:     v,
		parser: &search.Deterministic{
			Model:         model,
			TransFunc:     arcSystem,
			FeatExtractor: &transition.SimpleExtractor{Normalize: v.NormalizeForm},
			Base:          &transition.SimpleConfiguration{},
		},
	}, nil
}

// Parse greedily parses one tagged sentence.
func (p *DepParser) Parse(sent nlp.TaggedSentence) (*nlp.BasicDepGraph, error) {
	conf, err := p.parser.Parse(sent)
	if err != nil {
		return nil, err
	}
	return conf.(*transition.SimpleConfiguration).Graph(), nil
}

// ParseCorpus parses sentences concurrently with at most workers
// goroutines (0 = GOMAXPROCS), preserving corpus order.
func (p *DepParser) ParseCorpus(ctx context.Context, sents []nlp.TaggedSentence, workers int) ([]*nlp.BasicDepGraph, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	graphs := make([]*nlp.BasicDepGraph, len(sents))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sent := range sents {
		i, sent := i, sent
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			graph, err := p.Parse(sent)
			if err != nil {
				return fmt.Errorf("sentence %d: %w", i, err)
			}
			graphs[i] = graph
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return graphs, nil
}
