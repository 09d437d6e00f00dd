package app

import (
	"context"
	"fmt"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"arcparse/nlp/format/conllu"
	nlp "arcparse/nlp/types"
	"arcparse/util"
	"arcparse/xlog"
)

func Parse(cmd *commander.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if Workers > 0 {
		cfg.Parse.Workers = Workers
	}
	logger := xlog.WithComponent("parse")

	if !util.VerifyExists(modelFile) {
		return fmt.Errorf("model file does not exist: %s", modelFile)
	}
	if !util.VerifyExists(inputFile) {
		return fmt.Errorf("input file does not exist: %s", inputFile)
	}
	logger.Info().
		Str("model", modelFile).
		Str("input", inputFile).
		Str("output", outputFile).
		Int("workers", cfg.Parse.Workers).
		Msg("configuration")

	data, err := ReadModel(modelFile)
	if err != nil {
		return err
	}
	parser, err := NewDepParser(data.Model, data.Vocab)
	if err != nil {
		return err
	}

	sentences, err := conllu.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputFile, err)
	}
	sents := make([]nlp.TaggedSentence, len(sentences))
	for i, sentence := range sentences {
		sents[i] = conllu.ToTaggedSentence(sentence)
	}
	logger.Info().Int("sentences", len(sents)).Msg("read input corpus")

	graphs, err := parser.ParseCorpus(context.Background(), sents, cfg.Parse.Workers)
	if err != nil {
		return err
	}

	output := make(conllu.Sentences, len(graphs))
	for i, graph := range graphs {
		output[i] = conllu.FromGraph(graph)
		output[i].Comments = sentences[i].Comments
	}
	if err := conllu.WriteFile(outputFile, output); err != nil {
		return fmt.Errorf("writing %s: %w", outputFile, err)
	}
	logger.Info().Str("output", outputFile).Int("sentences", len(output)).Msg("wrote parsed corpus")
	return nil
}

func ParseCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Parse,
		UsageLine: "parse <file options> [arguments]",
		Short:     "greedily parses a tagged corpus",
		Long: `
greedily parses a tagged corpus

	$ ./arcparse parse -m <model> -in <input conllu> -oc <output conllu> [options]

`,
		Flag: *flag.NewFlagSet("parse", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&modelFile, "m", "model.b1", "Model file to read")
	cmd.Flag.StringVar(&inputFile, "in", "", "Input file (CoNLL-U, FORM/UPOSTAG columns used)")
	cmd.Flag.StringVar(&outputFile, "oc", "", "Output file (CoNLL-U)")
	cmd.Flag.IntVar(&Workers, "w", 0, "Parallel parse workers (0 = from config / GOMAXPROCS)")
	return cmd
}
