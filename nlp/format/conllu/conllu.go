// Package conllu reads and writes the token-level subset of the CoNLL-U
// format. For a description see
// https://universaldependencies.org/format.html
package conllu

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	nlp "arcparse/nlp/types"
)

const (
	FieldSeparator = '\t'
	NumFields      = 10
)

// A Row is a single parsed row of a CoNLL-U sentence.
type Row struct {
	ID      int
	Form    string
	Lemma   string
	UPosTag string
	XPosTag string
	FeatStr string
	Head    int
	DepRel  string
	Deps    string
	Misc    string
}

func (r Row) String() string {
	fields := []string{
		strconv.Itoa(r.ID),
		r.Form,
		r.Lemma,
		r.UPosTag,
		r.XPosTag,
		r.FeatStr,
		strconv.Itoa(r.Head),
		r.DepRel,
		r.Deps,
		r.Misc,
	}
	for i, field := range fields {
		if len(field) == 0 {
			fields[i] = "_"
		}
	}
	return strings.Join(fields, string(FieldSeparator))
}

// A Sentence is the ordered rows of one sentence with its comment lines.
type Sentence struct {
	Rows     []Row
	Comments []string
}

type Sentences []*Sentence

func ParseInt(value string) (int, error) {
	if value == "_" {
		return 0, nil
	}
	i, err := strconv.ParseInt(value, 10, 0)
	return int(i), err
}

func ParseString(value string) string {
	if value == "_" {
		return ""
	}
	return value
}

func ParseRow(record []string) (Row, error) {
	var row Row
	if len(record) != NumFields {
		return row, fmt.Errorf("expected %d fields, got %d", NumFields, len(record))
	}

	id, err := ParseInt(record[0])
	if err != nil {
		return row, fmt.Errorf("error parsing ID field (%s): %s", record[0], err.Error())
	}
	row.ID = id

	row.Form = ParseString(record[1])
	if row.Form == "" {
		return row, fmt.Errorf("empty FORM field")
	}
	row.Lemma = ParseString(record[2])
	row.UPosTag = ParseString(record[3])
	if row.UPosTag == "" {
		return row, fmt.Errorf("empty UPOSTAG field")
	}
	row.XPosTag = ParseString(record[4])
	row.FeatStr = ParseString(record[5])

	head, err := ParseInt(record[6])
	if err != nil {
		return row, fmt.Errorf("error parsing HEAD field (%s): %s", record[6], err.Error())
	}
	row.Head = head

	row.DepRel = ParseString(record[7])
	row.Deps = ParseString(record[8])
	row.Misc = ParseString(record[9])
	return row, nil
}

// skipID reports multiword-token ranges (1-2) and empty nodes (1.1), which
// the parser does not model.
func skipID(field string) bool {
	return strings.ContainsAny(field, "-.")
}

// Read parses sentences from a CoNLL-U stream.
func Read(reader io.Reader) (Sentences, error) {
	sentences := make(Sentences, 0, 100)
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	currentSent := &Sentence{}
	var lineNum int
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		switch {
		case len(strings.TrimSpace(line)) == 0:
			if len(currentSent.Rows) > 0 {
				sentences = append(sentences, currentSent)
				currentSent = &Sentence{}
			}
		case line[0] == '#':
			currentSent.Comments = append(currentSent.Comments, line)
		default:
			record := strings.Split(line, string(FieldSeparator))
			if len(record) > 0 && skipID(record[0]) {
				continue
			}
			row, err := ParseRow(record)
			if err != nil {
				return nil, fmt.Errorf("error processing sentence %d at line %d: %s", len(sentences), lineNum, err.Error())
			}
			currentSent.Rows = append(currentSent.Rows, row)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(currentSent.Rows) > 0 {
		sentences = append(sentences, currentSent)
	}
	return sentences, nil
}

func ReadFile(filename string) (Sentences, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file)
}

// Write serializes sentences to a CoNLL-U stream.
func Write(writer io.Writer, sentences Sentences) error {
	for _, sentence := range sentences {
		for _, comment := range sentence.Comments {
			if _, err := fmt.Fprintln(writer, comment); err != nil {
				return err
			}
		}
		for _, row := range sentence.Rows {
			if _, err := fmt.Fprintln(writer, row.String()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(writer); err != nil {
			return err
		}
	}
	return nil
}

func WriteFile(filename string, sentences Sentences) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	buffered := bufio.NewWriter(file)
	if err := Write(buffered, sentences); err != nil {
		return err
	}
	return buffered.Flush()
}

// ToGraph converts a sentence into a labeled dependency graph with the
// synthetic root at node 0.
func ToGraph(sentence *Sentence) (*nlp.BasicDepGraph, error) {
	tagged := ToTaggedSentence(sentence)
	graph := nlp.NewRootedGraph(tagged)
	for i, row := range sentence.Rows {
		if row.Head < 0 || row.Head > len(sentence.Rows) {
			return nil, fmt.Errorf("head out of range for token %d: %d", row.ID, row.Head)
		}
		rel := nlp.DepRel(row.DepRel)
		if rel == "" && row.Head == 0 {
			rel = nlp.RootLabel
		}
		graph.Arcs = append(graph.Arcs, &nlp.BasicDepArc{
			Head:     row.Head,
			Relation: rel,
			Modifier: i + 1,
		})
	}
	return graph, nil
}

// ToTaggedSentence extracts the FORM/UPOSTAG projection of a sentence.
func ToTaggedSentence(sentence *Sentence) nlp.TaggedSentence {
	tagged := make(nlp.TaggedSentence, len(sentence.Rows))
	for i, row := range sentence.Rows {
		tagged[i] = nlp.TaggedToken{Token: row.Form, POS: row.UPosTag}
	}
	return tagged
}

// FromGraph renders a parsed graph as a writable sentence. Lemma and tag
// columns beyond FORM/UPOSTAG are left underscored.
func FromGraph(graph *nlp.BasicDepGraph) *Sentence {
	sentence := &Sentence{Rows: make([]Row, 0, graph.NumberOfNodes()-1)}
	for i := 1; i < graph.NumberOfNodes(); i++ {
		node := graph.GetNode(i)
		row := Row{
			ID:      i,
			Form:    node.Token,
			UPosTag: node.POS,
		}
		if arc, exists := graph.GetArc(i); exists {
			row.Head = arc.Head
			row.DepRel = string(arc.Relation)
		}
		sentence.Rows = append(sentence.Rows, row)
	}
	return sentence
}
