package app

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"arcparse/eval"
	nlp "arcparse/nlp/types"
	"arcparse/util"
)

func Evaluate(cmd *commander.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}
	if !util.VerifyExists(inputFile) {
		return fmt.Errorf("parsed file does not exist: %s", inputFile)
	}
	if !util.VerifyExists(goldFile) {
		return fmt.Errorf("gold file does not exist: %s", goldFile)
	}

	parsedGraphs, err := readCorpus(inputFile)
	if err != nil {
		return err
	}
	goldGraphs, err := readCorpus(goldFile)
	if err != nil {
		return err
	}
	if len(parsedGraphs) != len(goldGraphs) {
		return fmt.Errorf("corpus size mismatch: %d parsed vs %d gold sentences", len(parsedGraphs), len(goldGraphs))
	}

	total := &eval.Total{}
	for i, parsed := range parsedGraphs {
		gold := goldGraphs[i]
		if parsed.NumberOfNodes() != gold.NumberOfNodes() {
			return fmt.Errorf("sentence %d length mismatch", i)
		}
		total.Add(eval.Graphs(nlp.LabeledDependencyGraph(parsed), nlp.LabeledDependencyGraph(gold)))
	}

	fmt.Println(total.String())
	printErrorBreakdown(total.Errors)
	return nil
}

func printErrorBreakdown(errors eval.Errors) {
	if len(errors) == 0 {
		return
	}
	byType := errors.ByType()
	classes := make([]string, 0, len(byType))
	for class := range byType {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool {
		if byType[classes[i]] != byType[classes[j]] {
			return byType[classes[i]] > byType[classes[j]]
		}
		return classes[i] < classes[j]
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ERRORS\tCLASS")
	for _, class := range classes {
		fmt.Fprintf(w, "%d\t%s\n", byType[class], class)
	}
	w.Flush()
}

func EvalCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Evaluate,
		UsageLine: "eval <file options> [arguments]",
		Short:     "scores parsed output against a gold corpus",
		Long: `
scores parsed output against a gold corpus, reporting UAS, LAS, exact match
and a breakdown of attachment errors by linguistic class

	$ ./arcparse eval -in <parsed conllu> -g <gold conllu>

`,
		Flag: *flag.NewFlagSet("eval", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&inputFile, "in", "", "Parsed file (CoNLL-U)")
	cmd.Flag.StringVar(&goldFile, "g", "", "Gold file (CoNLL-U)")
	return cmd
}
