package app

import (
	"context"
	"fmt"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"arcparse/alg/perceptron"
	"arcparse/alg/search"
	"arcparse/eval"
	"arcparse/nlp/format/conllu"
	"arcparse/nlp/parser/dependency/transition"
	nlp "arcparse/nlp/types"
	"arcparse/nlp/vocab"
	"arcparse/util"
	"arcparse/xlog"
)

func Train(cmd *commander.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if Iterations > 0 {
		cfg.Train.Iterations = Iterations
	}
	if WordCutoff > 0 {
		cfg.Train.WordCutoff = WordCutoff
	}
	logger := xlog.WithComponent("train")

	if !util.VerifyExists(trainFile) {
		return fmt.Errorf("train file does not exist: %s", trainFile)
	}
	logger.Info().
		Str("train", trainFile).
		Str("dev", devFile).
		Str("model", modelFile).
		Int("iterations", cfg.Train.Iterations).
		Int("word_cutoff", cfg.Train.WordCutoff).
		Msg("configuration")

	trainGraphs, err := readCorpus(trainFile)
	if err != nil {
		return err
	}
	logger.Info().Int("sentences", len(trainGraphs)).Msg("read training corpus")

	v := vocab.Build(trainGraphs, cfg.Train.WordCutoff)
	logger.Info().
		Int("words", v.Words.Len()).
		Int("pos", v.POS.Len()).
		Int("relations", v.Rels.Len()).
		Msg("built vocabulary")

	arcSystem := transition.NewArcStandard(v.Rels)
	arcSystem.AddDefaultOracle()
	deterministic := &search.Deterministic{
		TransFunc:     arcSystem,
		FeatExtractor: &transition.SimpleExtractor{Normalize: v.NormalizeForm},
		Base:          &transition.SimpleConfiguration{},
	}

	var (
		decisions []perceptron.Decision
		skipped   int
	)
	for i, graph := range trainGraphs {
		sentDecisions, err := deterministic.Decisions(graph.TaggedSentence(), nlp.LabeledDependencyGraph(graph))
		if err != nil {
			logger.Debug().Int("sentence", i).Err(err).Msg("skipped (oracle)")
			skipped++
			continue
		}
		decisions = append(decisions, sentDecisions...)
	}
	if skipped > 0 {
		logger.Warn().Int("skipped", skipped).Msg("sentences not derivable by arc standard, excluded from training")
	}
	logger.Info().Int("decisions", len(decisions)).Msg("derived oracle decisions")

	var devGraphs []*nlp.BasicDepGraph
	if devFile != "" {
		devGraphs, err = readCorpus(devFile)
		if err != nil {
			return err
		}
	}

	model := perceptron.NewModel(arcSystem.Transitions.Len())
	trainer := &perceptron.Trainer{
		Iterations: cfg.Train.Iterations,
		Updater:    &perceptron.AveragedStrategy{},
		Log:        true,
	}
	trainer.Init(model)

	var (
		bestModel *perceptron.Model
		bestUAS   float64
	)
	if len(devGraphs) > 0 {
		trainer.OnIteration = func(iteration int, snapshot *perceptron.Model) {
			uas, err := devUAS(snapshot, v, devGraphs)
			if err != nil {
				logger.Warn().Int("iteration", iteration).Err(err).Msg("dev evaluation failed")
				return
			}
			logger.Info().Int("iteration", iteration).Float64("dev_uas", uas).Msg("validation")
			if bestModel == nil || uas > bestUAS {
				bestModel, bestUAS = snapshot, uas
			}
		}
	}

	final := trainer.Train(decisions)
	if bestModel != nil {
		logger.Info().Float64("dev_uas", bestUAS).Msg("keeping best model by dev score")
		final = bestModel
	}

	if err := WriteModel(modelFile, &Serialization{Model: final, Vocab: v}); err != nil {
		return err
	}
	logger.Info().Str("model", modelFile).Msg("wrote model")
	return nil
}

func readCorpus(filename string) ([]*nlp.BasicDepGraph, error) {
	sentences, err := conllu.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	graphs := make([]*nlp.BasicDepGraph, 0, len(sentences))
	for i, sentence := range sentences {
		graph, err := conllu.ToGraph(sentence)
		if err != nil {
			return nil, fmt.Errorf("sentence %d of %s: %w", i, filename, err)
		}
		graphs = append(graphs, graph)
	}
	return graphs, nil
}

func devUAS(model *perceptron.Model, v *vocab.Vocab, devGraphs []*nlp.BasicDepGraph) (float64, error) {
	parser, err := NewDepParser(model, v)
	if err != nil {
		return 0, err
	}
	sents := make([]nlp.TaggedSentence, len(devGraphs))
	for i, graph := range devGraphs {
		sents[i] = graph.TaggedSentence()
	}
	parsed, err := parser.ParseCorpus(context.Background(), sents, 0)
	if err != nil {
		return 0, err
	}
	total := &eval.Total{}
	for i, graph := range parsed {
		total.Add(eval.Graphs(graph, devGraphs[i]))
	}
	return total.UAS(), nil
}

func TrainCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Train,
		UsageLine: "train <file options> [arguments]",
		Short:     "trains a greedy arc-standard dependency parsing model",
		Long: `
trains a greedy arc-standard dependency parsing model

	$ ./arcparse train -tc <train conllu> [-dc <dev conllu>] -m <model> [options]

`,
		Flag: *flag.NewFlagSet("train", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&trainFile, "tc", "", "Train file (CoNLL-U)")
	cmd.Flag.StringVar(&devFile, "dc", "", "Dev file (CoNLL-U), enables per-iteration validation")
	cmd.Flag.StringVar(&modelFile, "m", "model.b1", "Model file to write")
	cmd.Flag.IntVar(&Iterations, "it", 0, "Number of perceptron iterations (0 = from config)")
	cmd.Flag.IntVar(&WordCutoff, "cutoff", 0, "Word frequency cutoff for the vocabulary (0 = from config)")
	return cmd
}
