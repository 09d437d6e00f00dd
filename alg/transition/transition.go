// Package transition defines the abstraction a transition system, its
// configurations and its oracle must satisfy.
package transition

// Transition is a dense integer encoding of a parser action. A transition
// system partitions the integer range among its action types (e.g. SHIFT,
// then one LEFT-ARC per relation, then one RIGHT-ARC per relation).
type Transition int

// None marks the absence of a transition, e.g. on an initial configuration.
const None Transition = -1

// Configuration is a parser state.
type Configuration interface {
	// Init resets the configuration for the given problem instance.
	Init(interface{})
	Terminal() bool

	Copy() Configuration

	Previous() Configuration
	GetSequence() ConfigurationSequence
	SetLastTransition(Transition)
	GetLastTransition() Transition
	String() string
}

// ConfigurationSequence is a derivation, ordered from last to first.
type ConfigurationSequence []Configuration

type TransitionSystem interface {
	// Transition applies t to a copy of from. It panics when t is not
	// legal in from; callers recover at the parse boundary.
	Transition(from Configuration, t Transition) Configuration

	// Legal yields the transitions applicable in the given configuration.
	Legal(from Configuration) []Transition

	TransitionTypes() []string
	TransitionName(t Transition) string

	Oracle() Oracle
	AddDefaultOracle()

	Name() string
}

// Oracle decides the gold transition for a configuration, given a gold
// parse set beforehand via SetGold.
type Oracle interface {
	SetGold(interface{})
	Transition(Configuration) Transition
	Name() string
}

// Decision is anything that can choose a transition for a configuration.
type Decision interface {
	Transition(Configuration) Transition
}
