package app

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"arcparse/alg/search"
	"arcparse/nlp/parser/dependency/transition"
	nlp "arcparse/nlp/types"
	"arcparse/nlp/vocab"
	"arcparse/util"
)

func Trace(cmd *commander.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}
	if !util.VerifyExists(inputFile) {
		return fmt.Errorf("input file does not exist: %s", inputFile)
	}
	graphs, err := readCorpus(inputFile)
	if err != nil {
		return err
	}

	v := vocab.Build(graphs, 1)
	arcSystem := transition.NewArcStandard(v.Rels)
	arcSystem.AddDefaultOracle()
	deterministic := &search.Deterministic{
		TransFunc:     arcSystem,
		FeatExtractor: &transition.SimpleExtractor{},
		Base:          &transition.SimpleConfiguration{},
	}

	for i, graph := range graphs {
		fmt.Printf("# sentence %d: %s\n", i+1, graph.TaggedSentence())
		conf, err := deterministic.ParseOracle(graph.TaggedSentence(), nlp.LabeledDependencyGraph(graph))
		if err != nil {
			fmt.Printf("no oracle derivation: %v\n\n", err)
			continue
		}
		printDerivation(arcSystem, conf.(*transition.SimpleConfiguration))
		fmt.Println()
	}
	return nil
}

// printDerivation renders the oracle transition sequence as a table of
// stack, buffer, new dependency and transition per step.
func printDerivation(arcSystem *transition.ArcStandard, terminal *transition.SimpleConfiguration) {
	sequence := terminal.GetSequence()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tSTACK\tBUFFER\tNEW DEPENDENCY\tTRANSITION")
	for i := len(sequence) - 1; i >= 0; i-- {
		conf := sequence[i].(*transition.SimpleConfiguration)
		step := len(sequence) - 1 - i

		transitionName := ""
		dependency := ""
		if conf.Last != -1 {
			transitionName = arcSystem.TransitionName(conf.Last)
		}
		if arc, exists := conf.LastArc(); exists {
			dependency = fmt.Sprintf("%s -%s-> %s",
				conf.Nodes[arc.Head].Token, arc.Relation, conf.Nodes[arc.Modifier].Token)
		}
		fmt.Fprintf(w, "%d\t[%s]\t[%s]\t%s\t%s\n",
			step, conf.StringStack(), conf.StringQueue(), dependency, transitionName)
	}
	w.Flush()
}

func TraceCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Trace,
		UsageLine: "trace <file options> [arguments]",
		Short:     "prints the oracle transition sequence of gold sentences",
		Long: `
prints the oracle arc-standard transition sequence of gold sentences as a
step table of stack, buffer, added dependency and transition

	$ ./arcparse trace -in <gold conllu>

`,
		Flag: *flag.NewFlagSet("trace", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&inputFile, "in", "", "Gold file (CoNLL-U)")
	return cmd
}
