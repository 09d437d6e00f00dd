package alg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackArray(t *testing.T) {
	s := NewStackArray(4)

	_, exists := s.Pop()
	assert.False(t, exists)

	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, s.Size())

	// Index counts from the top
	top, _ := s.Index(0)
	assert.Equal(t, 3, top)
	second, _ := s.Index(1)
	assert.Equal(t, 2, second)
	_, exists = s.Index(3)
	assert.False(t, exists)

	popped, _ := s.Pop()
	assert.Equal(t, 3, popped)
	peeked, _ := s.Peek()
	assert.Equal(t, 2, peeked)

	clone := s.Copy()
	s.Push(9)
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, 2, clone.Size())
}

func TestQueueSlice(t *testing.T) {
	q := NewQueueSlice(4)

	_, exists := q.Dequeue()
	assert.False(t, exists)

	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	assert.Equal(t, 3, q.Size())

	// Index counts from the front
	front, _ := q.Index(0)
	assert.Equal(t, 1, front)
	next, _ := q.Index(1)
	assert.Equal(t, 2, next)

	dequeued, _ := q.Dequeue()
	assert.Equal(t, 1, dequeued)
	peeked, _ := q.Peek()
	assert.Equal(t, 2, peeked)

	clone := q.Copy()
	q.Enqueue(9)
	assert.Equal(t, 3, q.Size())
	assert.Equal(t, 2, clone.Size())
}
