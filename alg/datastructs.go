package alg

type Index interface {
	Index(int) (int, bool)
}

type Stack interface {
	Index
	Clear()
	Push(int)
	Pop() (int, bool)
	Peek() (int, bool)
	Size() int

	Copy() Stack
}

type Queue interface {
	Index
	Clear()
	Enqueue(int)
	Dequeue() (int, bool)
	Peek() (int, bool)
	Size() int

	Copy() Queue
}

type StackArray struct {
	Array []int
}

var _ Stack = &StackArray{}

func (s *StackArray) Clear() {
	s.Array = s.Array[0:0]
}

func (s *StackArray) Push(val int) {
	s.Array = append(s.Array, val)
}

func (s *StackArray) Pop() (int, bool) {
	if s.Size() == 0 {
		return 0, false
	}
	retval := s.Array[len(s.Array)-1]
	s.Array = s.Array[:len(s.Array)-1]
	return retval, true
}

// Index counts from the top of the stack: Index(0) is the topmost element.
func (s *StackArray) Index(index int) (int, bool) {
	if index >= s.Size() {
		return 0, false
	}
	return s.Array[len(s.Array)-1-index], true
}

func (s *StackArray) Peek() (int, bool) {
	return s.Index(0)
}

func (s *StackArray) Size() int {
	return len(s.Array)
}

func (s *StackArray) Copy() Stack {
	newArray := make([]int, len(s.Array), cap(s.Array))
	copy(newArray, s.Array)
	return &StackArray{newArray}
}

func NewStackArray(size int) *StackArray {
	return &StackArray{make([]int, 0, size)}
}

type QueueSlice struct {
	Slice []int
}

var _ Queue = &QueueSlice{}

func (q *QueueSlice) Clear() {
	q.Slice = q.Slice[0:0]
}

func (q *QueueSlice) Enqueue(val int) {
	q.Slice = append(q.Slice, val)
}

func (q *QueueSlice) Dequeue() (int, bool) {
	if q.Size() == 0 {
		return 0, false
	}
	retval := q.Slice[0]
	q.Slice = q.Slice[1:]
	return retval, true
}

// Index counts from the front of the queue: Index(0) is the next element.
func (q *QueueSlice) Index(index int) (int, bool) {
	if index >= q.Size() {
		return 0, false
	}
	return q.Slice[index], true
}

func (q *QueueSlice) Peek() (int, bool) {
	return q.Index(0)
}

func (q *QueueSlice) Size() int {
	return len(q.Slice)
}

func (q *QueueSlice) Copy() Queue {
	newSlice := make([]int, len(q.Slice), cap(q.Slice))
	copy(newSlice, q.Slice)
	return &QueueSlice{newSlice}
}

func NewQueueSlice(size int) *QueueSlice {
	return &QueueSlice{make([]int, 0, size)}
}
