package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumSetAdd(t *testing.T) {
	e := NewEnumSet(4)

	id, isNew := e.Add("a")
	assert.Equal(t, 0, id)
	assert.True(t, isNew)

	id, isNew = e.Add("b")
	assert.Equal(t, 1, id)
	assert.True(t, isNew)

	// re-adding returns the existing index
	id, isNew = e.Add("a")
	assert.Equal(t, 0, id)
	assert.False(t, isNew)

	assert.Equal(t, 2, e.Len())
	assert.Equal(t, []string{"a", "b"}, e.Values())
	assert.Equal(t, "b", e.ValueOf(1))
}

func TestEnumSetFreeze(t *testing.T) {
	e := NewEnumSet(4)
	e.Add("a")
	e.Freeze("<UNK>")

	// the unknown value is interned by freezing
	unk, exists := e.IndexOf("<UNK>")
	assert.True(t, exists)
	assert.Equal(t, unk, e.Unknown)
	assert.Equal(t, 2, e.Len())

	// adds and misses map to the unknown index
	id, isNew := e.Add("c")
	assert.Equal(t, unk, id)
	assert.False(t, isNew)
	id, exists = e.IndexOf("c")
	assert.Equal(t, unk, id)
	assert.False(t, exists)

	// known values still resolve
	id, exists = e.IndexOf("a")
	assert.Equal(t, 0, id)
	assert.True(t, exists)
}

func TestEnumSetFreezeExistingUnknown(t *testing.T) {
	e := NewEnumSet(4)
	e.Add("root")
	e.Add("nsubj")
	e.Freeze("root")

	assert.Equal(t, 0, e.Unknown)
	assert.Equal(t, 2, e.Len())
}

func TestEnumSetValueOfPanics(t *testing.T) {
	e := NewEnumSet(1)
	e.Add("a")
	assert.Panics(t, func() { e.ValueOf(5) })
	assert.Panics(t, func() { e.ValueOf(-1) })
}
