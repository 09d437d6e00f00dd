package app

import (
	"encoding/gob"
	"fmt"
	"os"

	"arcparse/alg/perceptron"
	"arcparse/nlp/vocab"
)

var (
	// processing options
	CPUs       int
	Iterations int
	WordCutoff int
	Workers    int

	// file names
	configFile string
	modelFile  string
	trainFile  string
	devFile    string
	inputFile  string
	outputFile string
	goldFile   string

	// server options
	listenAddr string
)

// Serialization is the on-disk model: the trained weights together with the
// frozen vocabularies they are defined over.
type Serialization struct {
	Model *perceptron.Model
	Vocab *vocab.Vocab
}

func WriteModel(file string, data *Serialization) error {
	fObj, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("failed creating model file %s: %w", file, err)
	}
	defer fObj.Close()
	writer := gob.NewEncoder(fObj)
	return writer.Encode(data)
}

func ReadModel(file string) (*Serialization, error) {
	fObj, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed reading model file %s: %w", file, err)
	}
	defer fObj.Close()
	reader := gob.NewDecoder(fObj)
	data := &Serialization{}
	if err := reader.Decode(data); err != nil {
		return nil, fmt.Errorf("failed decoding model file %s: %w", file, err)
	}
	return data, nil
}
