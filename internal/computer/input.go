package computer

// InputQueue supplies values to input instructions in FIFO order.
type InputQueue struct {
	values []int64
}

// NewInputQueue returns a queue holding a copy of the given values.
func NewInputQueue(values ...int64) *InputQueue {
	q := &InputQueue{
		values: make([]int64, len(values)),
	}
	copy(q.values, values)
	return q
}

// Push appends a value to the back of the queue.
func (q *InputQueue) Push(value int64) {
	q.values = append(q.values, value)
}

// Pop removes and returns the front value of the queue.
func (q *InputQueue) Pop() (int64, error) {
	if len(q.values) == 0 {
		return 0, ErrInputExhausted
	}
	value := q.values[0]
	q.values = q.values[1:]
	return value, nil
}

// Len returns the number of values left in the queue.
func (q *InputQueue) Len() int {
	return len(q.values)
}
