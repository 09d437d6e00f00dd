package transition

import (
	abstract "arcparse/alg/transition"
)

// NullToken fills feature slots whose configuration position is empty.
const NullToken = "<NULL>"

// SimpleExtractor produces the classifier's view of a configuration:
// word and POS of the top stack and buffer positions, plus word, POS and
// relation of the outermost children of the top two stack elements.
type SimpleExtractor struct {
	// Normalize maps a word form to its vocabulary form (e.g. lowercased,
	// rare words collapsed to an unknown symbol). Nil leaves forms as-is.
	Normalize func(string) string
}

func (x *SimpleExtractor) word(c *SimpleConfiguration, nodeID int, exists bool) string {
	if !exists {
		return NullToken
	}
	form := c.Nodes[nodeID].Token
	if x.Normalize != nil {
		form = x.Normalize(form)
	}
	return form
}

func (x *SimpleExtractor) pos(c *SimpleConfiguration, nodeID int, exists bool) string {
	if !exists {
		return NullToken
	}
	return c.Nodes[nodeID].POS
}

func (x *SimpleExtractor) rel(c *SimpleConfiguration, nodeID int, exists bool) string {
	if !exists || !c.Attached(nodeID) {
		return NullToken
	}
	return string(c.Rels[nodeID])
}

// Features extracts the feature strings for the given configuration.
func (x *SimpleExtractor) Features(conf abstract.Configuration) []string {
	c, ok := conf.(*SimpleConfiguration)
	if !ok {
		panic("got wrong configuration type")
	}

	feats := make([]string, 0, 48)
	add := func(name, value string) string {
		feat := name + "=" + value
		feats = append(feats, feat)
		return value
	}

	// top three stack and buffer positions
	var words, tags [6]string
	for i := 0; i < 3; i++ {
		sID, sExists := c.Stack().Index(i)
		name := stackNames[i]
		words[i] = add(name+"w", x.word(c, sID, sExists))
		tags[i] = add(name+"p", x.pos(c, sID, sExists))

		bID, bExists := c.Queue().Index(i)
		name = bufferNames[i]
		words[3+i] = add(name+"w", x.word(c, bID, bExists))
		tags[3+i] = add(name+"p", x.pos(c, bID, bExists))
	}

	// outermost and second-outermost children of the top two stack items
	for i := 0; i < 2; i++ {
		sID, sExists := c.Stack().Index(i)
		name := stackNames[i]
		for k := 1; k <= 2; k++ {
			lID, lExists := 0, false
			rID, rExists := 0, false
			if sExists {
				lID, lExists = c.LeftChild(sID, k)
				rID, rExists = c.RightChild(sID, k)
			}
			suffix := childSuffixes[k-1]
			add(name+"lc"+suffix+"w", x.word(c, lID, lExists))
			add(name+"lc"+suffix+"p", x.pos(c, lID, lExists))
			add(name+"lc"+suffix+"l", x.rel(c, lID, lExists))
			add(name+"rc"+suffix+"w", x.word(c, rID, rExists))
			add(name+"rc"+suffix+"p", x.pos(c, rID, rExists))
			add(name+"rc"+suffix+"l", x.rel(c, rID, rExists))
		}
	}

	// conjoined context features
	add("S0pS1p", tags[0]+"|"+tags[1])
	add("S0pB0p", tags[0]+"|"+tags[3])
	add("S0wB0w", words[0]+"|"+words[3])
	add("S0wS1w", words[0]+"|"+words[1])
	add("S0pB0pB1p", tags[0]+"|"+tags[3]+"|"+tags[4])
	add("S1pS0pB0p", tags[1]+"|"+tags[0]+"|"+tags[3])

	return feats
}

var (
	stackNames    = [3]string{"S0", "S1", "S2"}
	bufferNames   = [3]string{"B0", "B1", "B2"}
	childSuffixes = [2]string{"1", "2"}
)
