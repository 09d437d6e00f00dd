package util

import (
	"fmt"
	"sync"
)

// EnumSet interns strings to dense integer indices. Training grows the set;
// a trained model freezes it so parse-time lookups of unseen values map to
// the designated unknown index instead of growing the vocabulary.
type EnumSet struct {
	mu      sync.RWMutex
	Enum    map[string]int
	Index   []string
	Frozen  bool
	Unknown int
}

func NewEnumSet(capacity int) *EnumSet {
	return &EnumSet{
		Enum:    make(map[string]int, capacity),
		Index:   make([]string, 0, capacity),
		Unknown: -1,
	}
}

// Add interns value, returning its index and whether it was newly added.
// Adding to a frozen set returns the unknown index.
func (e *EnumSet) Add(value string) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if enum, exists := e.Enum[value]; exists {
		return enum, false
	}
	if e.Frozen {
		return e.Unknown, false
	}
	enum := len(e.Index)
	e.Enum[value] = enum
	e.Index = append(e.Index, value)
	return enum, true
}

func (e *EnumSet) IndexOf(value string) (int, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	enum, exists := e.Enum[value]
	if !exists && e.Frozen && e.Unknown >= 0 {
		return e.Unknown, false
	}
	return enum, exists
}

func (e *EnumSet) ValueOf(index int) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if index < 0 || index >= len(e.Index) {
		panic(fmt.Sprintf("unknown index requested: %v of %v", index, len(e.Index)))
	}
	return e.Index[index]
}

func (e *EnumSet) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.Index)
}

// Freeze closes the set for additions; unknown lookups will map to the
// given value, which is added first if missing.
func (e *EnumSet) Freeze(unknownValue string) {
	unk, _ := e.Add(unknownValue)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Frozen = true
	e.Unknown = unk
}

func (e *EnumSet) Values() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	retval := make([]string, len(e.Index))
	copy(retval, e.Index)
	return retval
}
